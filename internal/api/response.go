package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/rutkit/pkg/rut"
	"github.com/dmitrymomot/rutkit/pkg/rutgen"
	"github.com/dmitrymomot/rutkit/pkg/validator"
)

// Response renders itself to an http.ResponseWriter.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// JSONResponse is the envelope of every API response.
type JSONResponse struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail describes a failed request. Details maps field names to
// validation messages.
type ErrorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Details map[string][]string `json:"details,omitempty"`
}

// HTTPError is an error with a fixed status and code.
type HTTPError struct {
	Status  int
	Code    string
	Message string
}

func (e HTTPError) Error() string { return e.Message }

var (
	errNotFound      = HTTPError{Status: http.StatusNotFound, Code: "not_found", Message: "resource not found"}
	errMethod        = HTTPError{Status: http.StatusMethodNotAllowed, Code: "method_not_allowed", Message: "method not allowed"}
	errBadJSON       = HTTPError{Status: http.StatusBadRequest, Code: "invalid_json", Message: "request body is not valid JSON"}
	errBodyTooLarge  = HTTPError{Status: http.StatusRequestEntityTooLarge, Code: "body_too_large", Message: "request body too large"}
	errInternalError = HTTPError{Status: http.StatusInternalServerError, Code: "internal_error", Message: http.StatusText(http.StatusInternalServerError)}
)

type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSON wraps v in the data envelope with status 200.
func JSON(v any) Response {
	return jsonResponse{status: http.StatusOK, body: JSONResponse{Data: v}}
}

// JSONError maps err to a status and error envelope.
func JSONError(err error) Response {
	status, detail := errorToDetail(err)
	return jsonResponse{status: status, body: JSONResponse{Error: detail}}
}

// errorToDetail classifies err. Unknown errors are reported as a generic 500
// so internal messages do not leak.
func errorToDetail(err error) (int, *ErrorDetail) {
	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		return http.StatusUnprocessableEntity, &ErrorDetail{
			Code:    "validation_error",
			Message: verrs.Error(),
			Details: verrs.Map(),
		}
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Status, &ErrorDetail{Code: httpErr.Code, Message: httpErr.Message}
	}

	if code, ok := parseErrorCode(err); ok {
		return http.StatusBadRequest, &ErrorDetail{Code: code, Message: err.Error()}
	}

	if errors.Is(err, rutgen.ErrExhausted) {
		return http.StatusConflict, &ErrorDetail{Code: "exhausted", Message: err.Error()}
	}

	return errInternalError.Status, &ErrorDetail{Code: errInternalError.Code, Message: errInternalError.Message}
}

// parseErrorCode names the rut parse failures.
func parseErrorCode(err error) (string, bool) {
	switch {
	case errors.Is(err, rut.ErrEmptyInput):
		return "empty_input", true
	case errors.Is(err, rut.ErrNotANumber):
		return "not_a_number", true
	case errors.Is(err, rut.ErrInvalidRange):
		return "invalid_range", true
	case errors.Is(err, rut.ErrOutOfRange):
		return "out_of_range", true
	case errors.Is(err, rut.ErrCheckDigitOutOfBounds):
		return "invalid_check_digit_symbol", true
	case errors.Is(err, rut.ErrInvalidCheckDigit):
		return "check_digit_mismatch", true
	case errors.Is(err, rut.ErrInvalidFormat):
		return "invalid_notation", true
	default:
		return "", false
	}
}

type pngResponse []byte

func (p pngResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	_, err := w.Write(p)
	return err
}
