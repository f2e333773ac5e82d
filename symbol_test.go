package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalSymbol(t *testing.T) {
	assert.Equal(t, "m", canonicalSymbol("metres"))
	assert.Equal(t, "m", canonicalSymbol("meter"))
	assert.Equal(t, "g", canonicalSymbol("gram"))
	assert.Equal(t, "B", canonicalSymbol("bytes"))
	assert.Equal(t, "b", canonicalSymbol("bit"))
	assert.Equal(t, "parsecs", canonicalSymbol("parsecs"))
}

func TestIsKnownAlias(t *testing.T) {
	assert.True(t, isKnownAlias("metres"))
	assert.True(t, isKnownAlias("m"))
	assert.False(t, isKnownAlias("bps"))
	assert.False(t, isKnownAlias(""))
}

func TestAliases(t *testing.T) {
	got := aliases("meter")
	assert.Contains(t, got, "metres")
	assert.Contains(t, got, "m")

	assert.Equal(t, []string{"widgets"}, aliases("widgets"))
}
