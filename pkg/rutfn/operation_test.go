package rutfn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rutkit/pkg/rutfn"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	t.Run("map operations", func(t *testing.T) {
		t.Parallel()
		for _, name := range []string{"bare", "dash", "dots"} {
			op, err := rutfn.Lookup(name)
			require.NoError(t, err, name)
			assert.Equal(t, name, op.Name)
			assert.False(t, op.IsFilter())
			assert.NotNil(t, op.Map)
		}
	})

	t.Run("filter operation", func(t *testing.T) {
		t.Parallel()
		op, err := rutfn.Lookup("valid")
		require.NoError(t, err)
		assert.True(t, op.IsFilter())
		assert.True(t, op.Filter("17951585-7"))
	})

	t.Run("unknown", func(t *testing.T) {
		t.Parallel()
		_, err := rutfn.Lookup("upper")
		require.ErrorIs(t, err, rutfn.ErrUnknownOperation)
		assert.Contains(t, err.Error(), `"upper"`)
	})
}

func TestMustLookup(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() { rutfn.MustLookup("dots") })
	assert.Panics(t, func() { rutfn.MustLookup("nope") })
}

func TestOperations(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"bare", "dash", "dots", "valid"}, rutfn.Operations())
}
