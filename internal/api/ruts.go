package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/rutkit/pkg/qrcode"
	"github.com/dmitrymomot/rutkit/pkg/rut"
	"github.com/dmitrymomot/rutkit/pkg/validator"
)

// RUTView is the JSON representation of a parsed RUT.
type RUTView struct {
	Body       uint32 `json:"body"`
	CheckDigit string `json:"check_digit"`
	Bare       string `json:"bare"`
	Dash       string `json:"dash"`
	Dots       string `json:"dots"`
}

func newRUTView(r rut.RUT) RUTView {
	return RUTView{
		Body:       r.Body(),
		CheckDigit: r.CheckDigit().String(),
		Bare:       r.Format(rut.Bare),
		Dash:       r.Format(rut.Dash),
		Dots:       r.Format(rut.Dots),
	}
}

// ValidResult answers GET /api/ruts/{rut}/valid.
type ValidResult struct {
	Input string `json:"input"`
	Valid bool   `json:"valid"`
}

// FormatResult answers GET /api/ruts/{rut}/format/{notation}.
type FormatResult struct {
	Notation string `json:"notation"`
	Value    string `json:"value"`
}

// ValidateRequest is the body of POST /api/ruts/validate.
type ValidateRequest struct {
	RUTs []string `json:"ruts"`
}

// ValidateItem is the outcome for one input of a batch.
type ValidateItem struct {
	Input string   `json:"input"`
	Valid bool     `json:"valid"`
	RUT   *RUTView `json:"rut,omitempty"`
	Error string   `json:"error,omitempty"`
}

// ValidateResult answers POST /api/ruts/validate.
type ValidateResult struct {
	Results []ValidateItem `json:"results"`
	Valid   int            `json:"valid"`
	Invalid int            `json:"invalid"`
}

// rutParam returns the {rut} segment decoded once. chi matches on RawPath when
// the request carries one, leaving the segment escaped.
func rutParam(r *http.Request) string {
	raw := chi.URLParam(r, "rut")
	if r.URL.RawPath == "" {
		return raw
	}
	if s, err := url.PathUnescape(raw); err == nil {
		return s
	}
	return raw
}

func (h *Handler) parse(r *http.Request) Response {
	parsed, err := rut.Parse(rutParam(r))
	if err != nil {
		return JSONError(err)
	}
	return JSON(newRUTView(parsed))
}

func (h *Handler) valid(r *http.Request) Response {
	input := rutParam(r)
	_, err := rut.Parse(input)
	return JSON(ValidResult{Input: input, Valid: err == nil})
}

func (h *Handler) format(r *http.Request) Response {
	name := chi.URLParam(r, "notation")
	if err := validator.Apply(validator.ValidNotation("notation", name)); err != nil {
		return JSONError(err)
	}
	n, _ := rut.ParseNotation(name)

	parsed, err := rut.Parse(rutParam(r))
	if err != nil {
		return JSONError(err)
	}
	return JSON(FormatResult{Notation: n.String(), Value: parsed.Format(n)})
}

func (h *Handler) random(r *http.Request) Response {
	lo, hi, err := h.rangeFromQuery(r.URL.Query())
	if err != nil {
		return JSONError(err)
	}
	generated, err := h.draw(r, lo, hi)
	if err != nil {
		return JSONError(err)
	}
	return JSON(newRUTView(generated))
}

// draw uses the deduplicating generator when one is configured.
func (h *Handler) draw(r *http.Request, lo, hi uint32) (rut.RUT, error) {
	if h.gen != nil {
		return h.gen.NextInRange(r.Context(), lo, hi)
	}
	return rut.RandomInRange(lo, hi)
}

func (h *Handler) rangeFromQuery(q url.Values) (uint32, uint32, error) {
	lo, loErr := uintParam(q, "min", h.lo)
	hi, hiErr := uintParam(q, "max", h.hi)

	rules := []validator.Rule{
		numberRule("min", loErr),
		numberRule("max", hiErr),
	}
	if loErr == nil && hiErr == nil {
		rules = append(rules,
			validator.BodyInRange("min", lo),
			validator.BodyInRange("max", hi),
			validator.BodyOrder("min", lo, hi),
		)
	}
	if err := validator.Apply(rules...); err != nil {
		return 0, 0, err
	}
	return lo, hi, nil
}

func (h *Handler) qr(r *http.Request) Response {
	size, sizeErr := intParam(r.URL.Query(), "size", h.qrSize)
	notation := r.URL.Query().Get("notation")
	if notation == "" {
		notation = rut.Dots.String()
	}

	rules := []validator.Rule{
		numberRule("size", sizeErr),
		validator.ValidNotation("notation", notation),
	}
	if sizeErr == nil {
		rules = append(rules,
			validator.MinNum("size", size, 1),
			validator.MaxNum("size", size, qrcode.MaxSize),
		)
	}
	if err := validator.Apply(rules...); err != nil {
		return JSONError(err)
	}
	n, _ := rut.ParseNotation(notation)

	parsed, err := rut.Parse(rutParam(r))
	if err != nil {
		return JSONError(err)
	}
	png, err := qrcode.ForRUT(parsed, n, size)
	if err != nil {
		return JSONError(err)
	}
	return pngResponse(png)
}

func (h *Handler) validateBatch(r *http.Request) Response {
	var req ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return JSONError(errBodyTooLarge)
		}
		return JSONError(errBadJSON)
	}

	if err := validator.Apply(
		validator.RequiredSlice("ruts", req.RUTs),
		validator.MaxLenSlice("ruts", req.RUTs, h.maxBatch),
	); err != nil {
		return JSONError(err)
	}

	res := ValidateResult{Results: make([]ValidateItem, 0, len(req.RUTs))}
	for _, input := range req.RUTs {
		item := ValidateItem{Input: input}
		if parsed, err := rut.Parse(input); err != nil {
			item.Error = err.Error()
			res.Invalid++
		} else {
			view := newRUTView(parsed)
			item.Valid, item.RUT = true, &view
			res.Valid++
		}
		res.Results = append(res.Results, item)
	}
	return JSON(res)
}

func uintParam(q url.Values, key string, def uint32) (uint32, error) {
	s := q.Get(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseUint(strings.ReplaceAll(s, ".", ""), 10, 32)
	return uint32(v), err
}

func intParam(q url.Values, key string, def int) (int, error) {
	s := q.Get(key)
	if s == "" {
		return def, nil
	}
	return strconv.Atoi(s)
}

func numberRule(field string, err error) validator.Rule {
	return validator.Rule{
		Check: func() bool { return err == nil },
		Error: validator.ValidationError{
			Field:             field,
			Message:           "must be a whole number",
			TranslationKey:    "validation.numeric",
			TranslationValues: map[string]any{"field": field},
		},
	}
}
