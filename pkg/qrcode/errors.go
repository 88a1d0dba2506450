package qrcode

import "errors"

var (
	// ErrEmptyContent is returned when content is empty or only whitespace.
	ErrEmptyContent = errors.New("content cannot be empty")
	// ErrFailedToGenerateQRCode wraps encoder failures.
	ErrFailedToGenerateQRCode = errors.New("failed to generate QR code")
	// ErrInvalidRUT is returned by ForRUT for the zero RUT.
	ErrInvalidRUT = errors.New("cannot encode an empty rut")
)
