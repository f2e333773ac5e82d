package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuantityIntervalRejectsMissingUnit(t *testing.T) {
	_, err := ParseQuantityInterval("[0, 100)")
	require.ErrorIs(t, err, ErrInvalidExpression)
}

func TestParseQuantityIntervalRoundTrip(t *testing.T) {
	qi, err := ParseQuantityInterval("[0, 100) kg")
	require.NoError(t, err)
	assert.Equal(t, "[0, 100) kg", qi.String())
}

func TestQuantityIntervalContainsConverts(t *testing.T) {
	qi, err := ParseQuantityInterval("(0, 2560] MiB")
	require.NoError(t, err)

	gib, err := ParseUnit("GiB")
	require.NoError(t, err)
	ok, err := qi.Contains(numberFromFloat(2.5), gib)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestQuantityIntervalNormalise(t *testing.T) {
	qi, err := ParseQuantityInterval("(0, 2560] MiB")
	require.NoError(t, err)

	gib, err := ParseUnit("GiB")
	require.NoError(t, err)
	normalised, err := qi.Normalise(gib)
	require.NoError(t, err)
	assert.Equal(t, "(0, 2.5] GiB", normalised.String())
}

func TestQuantityIntervalIncompatibleUnit(t *testing.T) {
	qi, err := ParseQuantityInterval("(0, 100] kg")
	require.NoError(t, err)
	s, err := ParseUnit("s")
	require.NoError(t, err)
	_, err = qi.Contains(numberFromFloat(1), s)
	require.ErrorIs(t, err, ErrIncompatibleUnit)
}
