package rut_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rutkit/pkg/rut"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		bare string
		dash string
		dots string
	}{
		{"minimum", "1000000-9", "10000009", "1000000-9", "1.000.000-9"},
		{"maximum", "99999999-9", "999999999", "99999999-9", "99.999.999-9"},
		{"regular", "273880941", "273880941", "27388094-1", "27.388.094-1"},
		{"from dots", "17.951.585-7", "179515857", "17951585-7", "17.951.585-7"},
		{"k digit", "15.441.715-k", "15441715K", "15441715-K", "15.441.715-K"},
		{"seven digits", "1.111.111-4", "11111114", "1111111-4", "1.111.111-4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r, err := rut.Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.bare, r.Format(rut.Bare))
			assert.Equal(t, tt.dash, r.Format(rut.Dash))
			assert.Equal(t, tt.dots, r.Format(rut.Dots))
			assert.Equal(t, tt.bare, r.String())
		})
	}

	t.Run("unknown notation falls back to bare", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "179515857", rut.MustParse("17951585-7").Format(rut.Notation(42)))
	})
}

func TestParseNotation(t *testing.T) {
	t.Parallel()

	cases := map[string]rut.Notation{
		"bare": rut.Bare,
		"sans": rut.Bare,
		"DASH": rut.Dash,
		" dots ": rut.Dots,
	}
	for in, want := range cases {
		got, err := rut.ParseNotation(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got)
	}

	_, err := rut.ParseNotation("spaces")
	assert.ErrorIs(t, err, rut.ErrInvalidFormat)

	for _, n := range rut.Notations {
		back, err := rut.ParseNotation(n.String())
		require.NoError(t, err)
		assert.Equal(t, n, back)
	}
}

func BenchmarkFormatDots(b *testing.B) {
	r := rut.MustParse("17.951.585-7")
	for b.Loop() {
		_ = r.Format(rut.Dots)
	}
}

func BenchmarkParse(b *testing.B) {
	for b.Loop() {
		if _, err := rut.Parse("17.951.585-7"); err != nil {
			b.Fatal(err)
		}
	}
}
