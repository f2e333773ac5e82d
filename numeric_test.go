package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumberPrefersInt(t *testing.T) {
	n, ok := parseNumber("42")
	assert.True(t, ok)
	assert.Equal(t, kindInt, n.kind)
	assert.Equal(t, "42", n.String())
}

func TestParseNumberFallsBackToFloat(t *testing.T) {
	n, ok := parseNumber("1.5")
	assert.True(t, ok)
	assert.Equal(t, kindFloat, n.kind)
	assert.Equal(t, 1.5, n.Float())
}

func TestParseNumberRejectsGarbage(t *testing.T) {
	_, ok := parseNumber("not-a-number")
	assert.False(t, ok)
}

func TestSuperscriptRoundTrip(t *testing.T) {
	assert.Equal(t, "²", exponentToSuperscript(2))
	assert.Equal(t, "⁻²", exponentToSuperscript(-2))

	n, ok := parseSuperscriptExponent("⁻²")
	assert.True(t, ok)
	assert.Equal(t, -2, n)
}

func TestTrimTrailingSuperscript(t *testing.T) {
	n, rest, ok := trimTrailingSuperscript("m²")
	assert.True(t, ok)
	assert.Equal(t, 2, n)
	assert.Equal(t, "m", rest)

	_, _, ok = trimTrailingSuperscript("m")
	assert.False(t, ok)
}

func TestQuantityPatternSplitsNumberFromUnit(t *testing.T) {
	m := quantityPattern.FindStringSubmatch("2.5 GiB")
	assert.Equal(t, "2.5", m[1])
	assert.Equal(t, "GiB", m[2])

	m = quantityPattern.FindStringSubmatch("-1e3")
	assert.Equal(t, "-1e3", m[1])
	assert.Equal(t, "", m[2])
}
