package rut_test

import (
	"errors"
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rutkit/pkg/rut"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("accepts range boundaries", func(t *testing.T) {
		t.Parallel()

		lo, err := rut.New(1_000_000)
		require.NoError(t, err)
		assert.Equal(t, rut.Nine, lo.CheckDigit())
		assert.Equal(t, rut.Min(), lo)

		hi, err := rut.New(99_999_999)
		require.NoError(t, err)
		assert.Equal(t, rut.Nine, hi.CheckDigit())
		assert.Equal(t, rut.Max(), hi)
	})

	t.Run("rejects bodies outside the range", func(t *testing.T) {
		t.Parallel()
		for _, body := range []uint32{0, 1, 999_999, 100_000_000, 4_294_967_295} {
			_, err := rut.New(body)
			assert.ErrorIs(t, err, rut.ErrOutOfRange, "body %d", body)
		}
	})
}

func TestStrip(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "179515857", rut.Strip("17.951.585-7"))
	assert.Equal(t, "179515857", rut.Strip("17951585-7"))
	assert.Equal(t, "", rut.Strip(".-.-"))
	assert.Equal(t, "abc", rut.Strip("a.b-c"))
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("ignores decoration", func(t *testing.T) {
		t.Parallel()

		want, err := rut.New(17_951_585)
		require.NoError(t, err)

		for _, in := range []string{"17.951.585-7", "17951585-7", "179515857", "1.7.9-5158.5-7", "-179515857."} {
			got, err := rut.Parse(in)
			require.NoError(t, err, "input %q", in)
			assert.Equal(t, want, got, "input %q", in)
			assert.Equal(t, uint32(17_951_585), got.Body())
			assert.Equal(t, rut.Seven, got.CheckDigit())
		}
	})

	t.Run("detects check digit mismatch", func(t *testing.T) {
		t.Parallel()

		_, err := rut.Parse("1.111.111-1")
		require.Error(t, err)
		assert.True(t, errors.Is(err, rut.ErrInvalidCheckDigit))

		var mismatch *rut.MismatchError
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, '1', mismatch.Have)
		assert.Equal(t, '4', mismatch.Want)
		assert.Equal(t, "invalid check digit: have 1, want 4", err.Error())
	})

	t.Run("accepts lowercase k", func(t *testing.T) {
		t.Parallel()

		lower, err := rut.Parse("15441715-k")
		require.NoError(t, err)
		upper, err := rut.Parse("15441715-K")
		require.NoError(t, err)

		assert.True(t, lower.Equal(upper))
		assert.Equal(t, rut.K, lower.CheckDigit())
		assert.Equal(t, "15441715K", lower.String())
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()
		for _, in := range []string{"", "-", "...", ".-."} {
			_, err := rut.Parse(in)
			assert.ErrorIs(t, err, rut.ErrEmptyInput, "input %q", in)
		}
	})

	t.Run("rejects non numeric bodies", func(t *testing.T) {
		t.Parallel()
		for _, in := range []string{"7", "abc-1", "17.95x.585-7", "+17951585-7", " 17951585-7"} {
			_, err := rut.Parse(in)
			require.Error(t, err, "input %q", in)
			assert.ErrorIs(t, err, rut.ErrNotANumber, "input %q", in)

			var numErr *strconv.NumError
			assert.ErrorAs(t, err, &numErr, "input %q", in)
		}
	})

	t.Run("rejects bodies out of range", func(t *testing.T) {
		t.Parallel()
		for _, in := range []string{"999.999-3", "100.000.000-1", "0-0"} {
			_, err := rut.Parse(in)
			assert.ErrorIs(t, err, rut.ErrOutOfRange, "input %q", in)
		}
	})

	t.Run("rejects unknown check symbols", func(t *testing.T) {
		t.Parallel()
		_, err := rut.Parse("17951585-X")
		assert.ErrorIs(t, err, rut.ErrCheckDigitOutOfBounds)
	})

	t.Run("accepts range boundaries", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, rut.Min(), rut.MustParse(rut.Min().String()))
		assert.Equal(t, rut.Max(), rut.MustParse(rut.Max().String()))
	})
}

func TestMustParse(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() { rut.MustParse("17.951.585-7") })
	assert.Panics(t, func() { rut.MustParse("1.111.111-1") })
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	g := newSeededGenerator()
	for range 500 {
		r := g.Random()
		for _, n := range rut.Notations {
			parsed, err := rut.Parse(r.Format(n))
			require.NoError(t, err, "notation %s, rut %s", n, r)
			assert.Equal(t, r, parsed)
		}
	}
}

func TestOrdering(t *testing.T) {
	t.Parallel()

	a := rut.MustParse("27.388.094-1")
	b := rut.MustParse("27.962.409-2")
	c := rut.MustParse("92.635.843-K")
	d := rut.MustParse("75.303.649-0")

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, d.Compare(a))
	assert.Equal(t, 0, a.Compare(rut.MustParse("273880941")))
	assert.True(t, d.Less(c))
	assert.False(t, c.Less(d))

	sorted := []rut.RUT{c, a, d, b}
	slices.SortFunc(sorted, rut.RUT.Compare)
	assert.Equal(t, []rut.RUT{a, b, d, c}, sorted)

	assert.Equal(t, -1, rut.Min().Compare(rut.Max()))
}

func TestEqual(t *testing.T) {
	t.Parallel()

	a := rut.MustParse("17951585-7")
	assert.True(t, a.Equal(rut.MustParse("17.951.585-7")))
	assert.False(t, a.Equal(rut.MustParse("15441715-K")))
	assert.False(t, a.IsZero())
	assert.True(t, rut.RUT{}.IsZero())
	assert.Equal(t, "", rut.RUT{}.String())
}
