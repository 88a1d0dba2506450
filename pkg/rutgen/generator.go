package rutgen

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/dmitrymomot/rutkit/pkg/logger"
	"github.com/dmitrymomot/rutkit/pkg/rut"
)

// DefaultMaxAttempts bounds the draws made by a single Next call.
const DefaultMaxAttempts = 100

// Option configures a Generator.
type Option func(*Generator)

// WithRange limits draws to bodies in the closed range [lo, hi].
// The bounds are validated on every draw.
func WithRange(lo, hi uint32) Option {
	return func(g *Generator) {
		g.lo, g.hi = lo, hi
	}
}

// WithMaxAttempts overrides DefaultMaxAttempts. Values below 1 are ignored.
func WithMaxAttempts(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.maxAttempts = n
		}
	}
}

// WithCheck installs a callback that can veto candidates after they have
// been reserved. It runs without any lock held.
func WithCheck(check func(rut.RUT) bool) Option {
	return func(g *Generator) { g.check = check }
}

// WithSource draws from src instead of the global source.
func WithSource(src rand.Source) Option {
	return func(g *Generator) {
		if src != nil {
			g.draw = rut.NewGenerator(src).RandomInRange
		}
	}
}

// WithLogger sets the logger used for collisions and exhaustion.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.log = l
		}
	}
}

// Generator issues RUTs that have not been issued before according to its
// Store. It is safe for concurrent use when the Store is.
type Generator struct {
	store       Store
	lo, hi      uint32
	maxAttempts int
	check       func(rut.RUT) bool
	draw        func(lo, hi uint32) (rut.RUT, error)
	log         *slog.Logger
}

// New returns a Generator reserving candidates in store.
// A nil store gets a fresh MemoryStore.
func New(store Store, opts ...Option) *Generator {
	if store == nil {
		store = NewMemoryStore()
	}
	g := &Generator{
		store:       store,
		lo:          rut.MinBody,
		hi:          rut.MaxBody,
		maxAttempts: DefaultMaxAttempts,
		draw:        rut.RandomInRange,
		log:         logger.Noop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.log = g.log.With(logger.Component("rutgen"))
	return g
}

// Next returns an unissued RUT from the configured range.
func (g *Generator) Next(ctx context.Context) (rut.RUT, error) {
	return g.NextInRange(ctx, g.lo, g.hi)
}

// NextInRange returns an unissued RUT with a body in [lo, hi].
//
// Errors:
//   - rut.ErrOutOfRange / rut.ErrInvalidRange for illegal bounds
//   - ErrStore when the store fails
//   - ErrExhausted after the attempt limit
//   - ctx.Err() when ctx is done
func (g *Generator) NextInRange(ctx context.Context, lo, hi uint32) (rut.RUT, error) {
	for attempt := range g.maxAttempts {
		if err := ctx.Err(); err != nil {
			return rut.RUT{}, err
		}

		candidate, err := g.draw(lo, hi)
		if err != nil {
			return rut.RUT{}, err
		}

		ok, err := g.store.Reserve(ctx, candidate)
		if err != nil {
			return rut.RUT{}, err
		}
		if !ok {
			g.log.DebugContext(ctx, "candidate already issued",
				logger.RUT(candidate),
				slog.Int("attempt", attempt+1),
			)
			continue
		}

		if g.check != nil && !g.check(candidate) {
			if err := g.store.Release(ctx, candidate); err != nil {
				return rut.RUT{}, err
			}
			g.log.DebugContext(ctx, "candidate rejected by check", logger.RUT(candidate))
			continue
		}

		return candidate, nil
	}

	g.log.WarnContext(ctx, "rut range exhausted",
		slog.Uint64("lo", uint64(lo)),
		slog.Uint64("hi", uint64(hi)),
		logger.Count("attempts", g.maxAttempts),
	)
	return rut.RUT{}, fmt.Errorf("%w: %d attempts in [%d, %d]", ErrExhausted, g.maxAttempts, lo, hi)
}

// Reset forgets every issued RUT.
func (g *Generator) Reset(ctx context.Context) error {
	return g.store.Reset(ctx)
}
