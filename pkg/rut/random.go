package rut

import (
	"fmt"
	"math/rand/v2"
	"sync"
)

// Random returns a RUT drawn uniformly from the legal range.
// Successive calls may repeat; see package rutgen for deduplication.
func Random() RUT {
	r, _ := RandomInRange(MinBody, MaxBody)
	return r
}

// RandomInRange draws a body uniformly from the closed range [lo, hi].
// Both bounds must be legal bodies.
func RandomInRange(lo, hi uint32) (RUT, error) {
	return randomInRange(rand.Uint32N, lo, hi)
}

func randomInRange(uint32n func(uint32) uint32, lo, hi uint32) (RUT, error) {
	if err := checkRange(lo, hi); err != nil {
		return RUT{}, err
	}
	return New(lo + uint32n(hi-lo+1))
}

func checkRange(lo, hi uint32) error {
	if lo < MinBody || lo > MaxBody {
		return fmt.Errorf("%w: %d", ErrOutOfRange, lo)
	}
	if hi < MinBody || hi > MaxBody {
		return fmt.Errorf("%w: %d", ErrOutOfRange, hi)
	}
	if lo > hi {
		return fmt.Errorf("%w: %d > %d", ErrInvalidRange, lo, hi)
	}
	return nil
}

// Generator draws RUTs from a caller-supplied source, which makes sequences
// reproducible in tests. It is safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewGenerator returns a Generator reading from src.
//
//	g := rut.NewGenerator(rand.NewPCG(1, 2))
func NewGenerator(src rand.Source) *Generator {
	return &Generator{rnd: rand.New(src)}
}

// Random returns a RUT drawn uniformly from the legal range.
func (g *Generator) Random() RUT {
	r, _ := g.RandomInRange(MinBody, MaxBody)
	return r
}

// RandomInRange draws a body uniformly from the closed range [lo, hi].
func (g *Generator) RandomInRange(lo, hi uint32) (RUT, error) {
	return randomInRange(g.uint32n, lo, hi)
}

func (g *Generator) uint32n(n uint32) uint32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rnd.Uint32N(n)
}
