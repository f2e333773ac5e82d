package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuantitySplitsNumberAndUnit(t *testing.T) {
	n, u, err := ParseQuantity("2.5 GiB")
	require.NoError(t, err)
	assert.Equal(t, 2.5, n.Float())
	assert.Equal(t, "GiB", u.Render())
}

func TestParseQuantityBareNumberIsDimensionless(t *testing.T) {
	n, u, err := ParseQuantity("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), n.i)
	assert.Equal(t, "", u.Render())
}

func TestParseQuantityRejectsNonNumericPrefix(t *testing.T) {
	_, _, err := ParseQuantity("abc")
	require.ErrorIs(t, err, ErrNotANumber)
}
