package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/rutkit/pkg/httpserver"
	"github.com/dmitrymomot/rutkit/pkg/logger"
	"github.com/dmitrymomot/rutkit/pkg/qrcode"
	"github.com/dmitrymomot/rutkit/pkg/requestid"
	"github.com/dmitrymomot/rutkit/pkg/rut"
	"github.com/dmitrymomot/rutkit/pkg/rutgen"
)

const maxBodyBytes = 1 << 20

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the request and error logger.
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.log = l
		}
	}
}

// WithGenerator deduplicates random RUTs through gen.
func WithGenerator(gen *rutgen.Generator) Option {
	return func(h *Handler) { h.gen = gen }
}

// WithRange sets the default body range of /api/ruts/random and the demo page.
func WithRange(lo, hi uint32) Option {
	return func(h *Handler) { h.lo, h.hi = lo, hi }
}

// WithQRSize sets the default QR code edge length in pixels.
func WithQRSize(size int) Option {
	return func(h *Handler) {
		if size > 0 {
			h.qrSize = size
		}
	}
}

// WithMaxBatch limits the number of inputs accepted by POST /api/ruts/validate.
func WithMaxBatch(n int) Option {
	return func(h *Handler) {
		if n > 0 {
			h.maxBatch = n
		}
	}
}

// WithReadinessChecks adds checks to GET /readyz.
func WithReadinessChecks(checks ...func(context.Context) error) Option {
	return func(h *Handler) { h.checks = append(h.checks, checks...) }
}

// Handler serves the RUT API and the demo page.
type Handler struct {
	log      *slog.Logger
	gen      *rutgen.Generator
	lo, hi   uint32
	qrSize   int
	maxBatch int
	checks   []func(context.Context) error
	router   chi.Router
}

// NewHandler builds the router.
func NewHandler(opts ...Option) *Handler {
	h := &Handler{
		log:      logger.Noop(),
		lo:       rut.MinBody,
		hi:       rut.MaxBody,
		qrSize:   qrcode.DefaultSize,
		maxBatch: 1000,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.log = h.log.With(logger.Component("api"))
	h.router = h.routes()
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(requestLogger(h.log))
	r.Use(middleware.Recoverer)

	r.NotFound(h.wrap(func(*http.Request) Response { return JSONError(errNotFound) }))
	r.MethodNotAllowed(h.wrap(func(*http.Request) Response { return JSONError(errMethod) }))

	r.Get("/", h.wrap(h.demo))
	r.Get("/healthz", httpserver.HealthCheckHandler(h.log))
	r.Get("/readyz", httpserver.HealthCheckHandler(h.log, h.readiness()...))

	r.Route("/api/ruts", func(r chi.Router) {
		r.Get("/random", h.wrap(h.random))
		r.With(middleware.RequestSize(maxBodyBytes)).Post("/validate", h.wrap(h.validateBatch))
		r.Route("/{rut}", func(r chi.Router) {
			r.Get("/", h.wrap(h.parse))
			r.Get("/valid", h.wrap(h.valid))
			r.Get("/format/{notation}", h.wrap(h.format))
			r.Get("/qr.png", h.wrap(h.qr))
		})
	})
	return r
}

// readiness always includes a check so /readyz differs from /healthz even
// without external dependencies.
func (h *Handler) readiness() []func(context.Context) error {
	checks := []func(context.Context) error{
		func(ctx context.Context) error { return ctx.Err() },
	}
	return append(checks, h.checks...)
}

type handlerFunc func(r *http.Request) Response

// wrap renders the Response returned by fn and logs server-side failures.
func (h *Handler) wrap(fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := fn(r)
		if resp == nil {
			resp = JSONError(errInternalError)
		}
		if jr, ok := resp.(jsonResponse); ok && jr.status >= http.StatusInternalServerError {
			h.log.ErrorContext(r.Context(), "request failed", slog.Int("status", jr.status))
		}
		if err := resp.Render(w, r); err != nil {
			h.log.ErrorContext(r.Context(), "render failed", logger.Error(err))
		}
	}
}
