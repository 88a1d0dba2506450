package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rutkit/pkg/rut"
	"github.com/dmitrymomot/rutkit/pkg/validator"
)

func TestValidRUT(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.ValidRUT("rut", "17.951.585-7").Check())
	assert.True(t, validator.ValidRUT("rut", "15441715k").Check())

	rule := validator.ValidRUT("rut", "1.111.111-1")
	assert.False(t, rule.Check())
	assert.Equal(t, "validation.rut", rule.Error.TranslationKey)
	assert.Equal(t, "must be a valid RUT: invalid check digit: have 1, want 4", rule.Error.Message)
	assert.Equal(t, "1.111.111-1", rule.Error.TranslationValues["value"])

	assert.False(t, validator.ValidRUT("rut", "").Check())
}

func TestRUTInRange(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.RUTInRange("rut", "17951585-7", 17_000_000, 18_000_000).Check())
	assert.False(t, validator.RUTInRange("rut", "17951585-7", 1_000_000, 17_000_000).Check())
	assert.False(t, validator.RUTInRange("rut", "garbage", rut.MinBody, rut.MaxBody).Check())
}

func TestBodyRules(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.BodyInRange("min", rut.MinBody).Check())
	assert.True(t, validator.BodyInRange("max", rut.MaxBody).Check())
	assert.False(t, validator.BodyInRange("min", rut.MinBody-1).Check())
	assert.False(t, validator.BodyInRange("max", rut.MaxBody+1).Check())

	assert.True(t, validator.BodyOrder("min", 5, 5).Check())
	assert.False(t, validator.BodyOrder("min", 6, 5).Check())

	err := validator.Apply(
		validator.BodyInRange("min", 999_999),
		validator.BodyInRange("max", 2_000_000),
		validator.BodyOrder("min", 999_999, 2_000_000),
	)
	verrs := validator.ExtractValidationErrors(err)
	require.Len(t, verrs, 1)
	assert.Equal(t, "min", verrs[0].Field)
	assert.Equal(t, "validation.rut_body", verrs[0].TranslationKey)
}

func TestValidNotation(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"bare", "sans", "DASH", " dots "} {
		assert.True(t, validator.ValidNotation("notation", name).Check(), name)
	}

	rule := validator.ValidNotation("notation", "slashes")
	assert.False(t, rule.Check())
	assert.Equal(t, []string{"bare", "dash", "dots"}, rule.Error.TranslationValues["allowed_values"])
}
