package rut_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rutkit/pkg/rut"
)

func TestComputeCheckDigit(t *testing.T) {
	t.Parallel()

	units := []struct {
		body uint32
		want rut.CheckDigit
	}{
		{75_303_649, rut.Zero},
		{27_388_094, rut.One},
		{27_962_409, rut.Two},
		{98_127_523, rut.Three},
		{30_686_957, rut.Four},
		{45_022_275, rut.Five},
		{61_570_639, rut.Six},
		{59_608_778, rut.Seven},
		{43_496_204, rut.Eight},
		{70_059_381, rut.Nine},
		{92_635_843, rut.K},
		{rut.MinBody, rut.Nine},
		{rut.MaxBody, rut.Nine},
		{17_951_585, rut.Seven},
		{15_441_715, rut.K},
		{1_111_111, rut.Four},
	}

	for _, u := range units {
		got, err := rut.ComputeCheckDigit(u.body)
		require.NoError(t, err, "body %d", u.body)
		assert.Equal(t, u.want, got, "body %d", u.body)
	}

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()
		for body := rut.MinBody; body < rut.MinBody+2_000; body++ {
			first, err := rut.ComputeCheckDigit(body)
			require.NoError(t, err)
			second, err := rut.ComputeCheckDigit(body)
			require.NoError(t, err)
			assert.Equal(t, first, second)
		}
	})
}

func TestCheckDigitFromChar(t *testing.T) {
	t.Parallel()

	t.Run("accepts digits and K in both cases", func(t *testing.T) {
		t.Parallel()
		for c := '0'; c <= '9'; c++ {
			d, err := rut.CheckDigitFromChar(c)
			require.NoError(t, err)
			assert.Equal(t, c, d.Char())
		}

		upper, err := rut.CheckDigitFromChar('K')
		require.NoError(t, err)
		lower, err := rut.CheckDigitFromChar('k')
		require.NoError(t, err)
		assert.Equal(t, rut.K, upper)
		assert.Equal(t, rut.K, lower)
		assert.Equal(t, 'K', lower.Char())
	})

	t.Run("rejects other symbols", func(t *testing.T) {
		t.Parallel()
		for _, c := range []rune{'a', 'X', ' ', '-', '.', 'ñ'} {
			_, err := rut.CheckDigitFromChar(c)
			require.Error(t, err)
			assert.True(t, errors.Is(err, rut.ErrCheckDigitOutOfBounds))
			assert.Contains(t, err.Error(), string(c))
		}
	})
}

func TestParseCheckDigit(t *testing.T) {
	t.Parallel()

	d, err := rut.ParseCheckDigit("7")
	require.NoError(t, err)
	assert.Equal(t, rut.Seven, d)

	d, err = rut.ParseCheckDigit("k")
	require.NoError(t, err)
	assert.Equal(t, rut.K, d)

	for _, s := range []string{"", "10", "KK", "x"} {
		_, err := rut.ParseCheckDigit(s)
		assert.ErrorIs(t, err, rut.ErrCheckDigitOutOfBounds, "input %q", s)
	}
}

func TestCheckDigitNumeric(t *testing.T) {
	t.Parallel()

	for n := uint32(0); n <= 10; n++ {
		d, err := rut.CheckDigitFromNumeric(n)
		require.NoError(t, err)
		assert.Equal(t, n, d.Numeric())
		assert.True(t, d.IsValid())

		back, err := rut.CheckDigitFromChar(d.Char())
		require.NoError(t, err)
		assert.Equal(t, d, back)
	}

	_, err := rut.CheckDigitFromNumeric(11)
	assert.ErrorIs(t, err, rut.ErrCheckDigitOutOfBounds)
	assert.False(t, rut.CheckDigit(11).IsValid())
	assert.Equal(t, "K", rut.K.String())
}

func TestCheckDigitCompare(t *testing.T) {
	t.Parallel()

	assert.Equal(t, -1, rut.Zero.Compare(rut.One))
	assert.Equal(t, -1, rut.Nine.Compare(rut.K))
	assert.Equal(t, 1, rut.K.Compare(rut.Zero))
	assert.Equal(t, 0, rut.Five.Compare(rut.Five))
}
