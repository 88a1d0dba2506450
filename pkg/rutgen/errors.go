package rutgen

import "errors"

var (
	// ErrExhausted is returned when no unreserved RUT was found within the attempt limit.
	ErrExhausted = errors.New("no unused rut found within attempt limit")

	// ErrStore wraps failures reported by a Store.
	ErrStore = errors.New("reservation store failed")
)
