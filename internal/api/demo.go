package api

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"strings"

	"github.com/dmitrymomot/rutkit/pkg/logger"
	"github.com/dmitrymomot/rutkit/pkg/qrcode"
	"github.com/dmitrymomot/rutkit/pkg/rut"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type demoPage struct {
	Generated     *RUTView
	QRCode        template.URL
	QRSize        int
	GenerateError string

	Input      string
	Checked    *RUTView
	CheckError string
}

type htmlResponse struct {
	status int
	body   []byte
}

func (h htmlResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(h.status)
	_, err := w.Write(h.body)
	return err
}

// demo shows a fresh random RUT in every notation with its QR code, and
// optionally checks the RUT passed in ?rut=.
func (h *Handler) demo(r *http.Request) Response {
	page := demoPage{QRSize: h.qrSize}

	if generated, err := h.draw(r, h.lo, h.hi); err != nil {
		h.log.WarnContext(r.Context(), "demo generation failed", logger.Error(err))
		page.GenerateError = err.Error()
	} else {
		view := newRUTView(generated)
		page.Generated = &view
		if uri, err := qrcode.GenerateBase64Image(view.Dots, h.qrSize); err == nil {
			page.QRCode = template.URL(uri)
		} else {
			h.log.WarnContext(r.Context(), "demo qr code failed", logger.Error(err))
		}
	}

	if input := strings.TrimSpace(r.URL.Query().Get("rut")); input != "" {
		page.Input = input
		if checked, err := rut.Parse(input); err != nil {
			page.CheckError = err.Error()
		} else {
			view := newRUTView(checked)
			page.Checked = &view
		}
	}

	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, "index.html", page); err != nil {
		h.log.ErrorContext(r.Context(), "demo template failed", logger.Error(err))
		return JSONError(errInternalError)
	}
	return htmlResponse{status: http.StatusOK, body: buf.Bytes()}
}
