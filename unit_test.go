package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUnitRenderKilometresPerHour(t *testing.T) {
	u, err := ParseUnit("kilometres/h")
	require.NoError(t, err)
	assert.Equal(t, "km/h", u.Render())

	v, err := ParseUnit("m/h")
	require.NoError(t, err)
	ratio, err := u.To(v)
	require.NoError(t, err)
	assert.InDelta(t, 1000.0, ratio, 1e-9)
}

func TestParseUnitKibibytesSquaredOverKibibytes(t *testing.T) {
	u, err := ParseUnit("kibibytes²·kibibytes⁻¹")
	require.NoError(t, err)
	assert.Equal(t, "KiB", u.Render())

	kb, err := ParseUnit("kB")
	require.NoError(t, err)
	ratio, err := u.To(kb)
	require.NoError(t, err)
	assert.InDelta(t, 1.024, ratio, 1e-9)
}

func TestParseUnitWeberEquivalentForms(t *testing.T) {
	a, err := ParseUnit("metres²·seconds⁻²·kilogram·ampere⁻¹")
	require.NoError(t, err)
	assert.Equal(t, "m²·kg/s²·A", a.Render())

	b, err := ParseUnit("A⁻¹·second⁻²/(kg⁻¹·meter⁻²)")
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
}

func TestParseUnitDimensionless(t *testing.T) {
	u, err := ParseUnit("")
	require.NoError(t, err)
	assert.Equal(t, "", u.Render())
	assert.Equal(t, 1.0, u.Scalar)
}

func TestParseUnitUnbalancedParenthesesIsError(t *testing.T) {
	_, err := ParseUnit("m/(s")
	require.ErrorIs(t, err, ErrInvalidExpression)
}

func TestParseUnitMultipleTopLevelDivisionIsError(t *testing.T) {
	_, err := ParseUnit("m/s/s")
	require.ErrorIs(t, err, ErrInvalidExpression)
}

func TestDimensionalUnitToNonCommensurableIsError(t *testing.T) {
	m, err := ParseUnit("m")
	require.NoError(t, err)
	s, err := ParseUnit("s")
	require.NoError(t, err)
	_, err = m.To(s)
	require.ErrorIs(t, err, ErrNonScalarDimension)
}

// Universal property 1: parse_unit(u.render()) is a fixed point of render.
func TestParseUnitRenderIsFixedPoint(t *testing.T) {
	exprs := []string{"km/h", "m²·kg/s²·A", "KiB", "kg", ""}
	for _, expr := range exprs {
		u, err := ParseUnit(expr)
		require.NoError(t, err, expr)
		reparsed, err := ParseUnit(u.Render())
		require.NoError(t, err, expr)
		assert.Equal(t, u.Render(), reparsed.Render(), expr)
	}
}

// Universal property 2: for commensurable pairs, u.to(v) * v.to(u) == 1.
func TestToIsReciprocal(t *testing.T) {
	u, err := ParseUnit("km")
	require.NoError(t, err)
	v, err := ParseUnit("m")
	require.NoError(t, err)

	ratio1, err := u.To(v)
	require.NoError(t, err)
	ratio2, err := v.To(u)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, ratio1*ratio2, 1e-9)
}

func TestHashIsOrderIndependent(t *testing.T) {
	a, err := ParseUnit("m·s⁻¹")
	require.NoError(t, err)
	b, err := ParseUnit("s⁻¹·m")
	require.NoError(t, err)
	assert.Equal(t, a.Hash(), b.Hash())
}
