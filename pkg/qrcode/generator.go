package qrcode

import (
	"encoding/base64"
	"errors"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"

	"github.com/dmitrymomot/rutkit/pkg/rut"
)

const (
	// DefaultSize is used when size is not positive.
	DefaultSize = 256
	// MaxSize caps the rendered edge length in pixels.
	MaxSize = 1024
)

// Generate renders content as a square PNG QR code with medium error
// correction. Non-positive sizes use DefaultSize; larger than MaxSize is
// clamped.
func Generate(content string, size int) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	png, err := skipqrcode.Encode(content, skipqrcode.Medium, clamp(size))
	if err != nil {
		return nil, errors.Join(ErrFailedToGenerateQRCode, err)
	}
	return png, nil
}

// GenerateBase64Image returns the PNG from Generate as a data URI suitable
// for an <img src>.
func GenerateBase64Image(content string, size int) (string, error) {
	png, err := Generate(content, size)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

// ForRUT encodes r rendered in notation n.
func ForRUT(r rut.RUT, n rut.Notation, size int) ([]byte, error) {
	if r.IsZero() {
		return nil, ErrInvalidRUT
	}
	return Generate(r.Format(n), size)
}

func clamp(size int) int {
	if size <= 0 {
		return DefaultSize
	}
	return min(size, MaxSize)
}
