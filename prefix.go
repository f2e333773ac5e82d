package units

import (
	"fmt"
	"math"
	"sort"

	"golang.org/x/exp/slices"
)

// PrefixFamily selects which prefix table governs a unit expression: the
// metric (powers of ten) table or the binary (IEC 80000-13 powers of 1024)
// table. A DimensionalUnit picks one family for its whole expression.
type PrefixFamily int

const (
	// MetricPrefixes is the default SI (powers-of-ten) table.
	MetricPrefixes PrefixFamily = iota
	// BinaryPrefixes is the IEC (powers-of-1024) table.
	BinaryPrefixes
)

// prefixEntry is one row of a prefix table: every accepted textual label
// (short form first) sharing a single numeric factor.
type prefixEntry struct {
	labels []string
	factor float64
}

var metricPrefixTable = []prefixEntry{
	{[]string{"y", "yocto"}, 1e-24},
	{[]string{"z", "zepto"}, 1e-21},
	{[]string{"a", "atto"}, 1e-18},
	{[]string{"f", "femto"}, 1e-15},
	{[]string{"p", "pico"}, 1e-12},
	{[]string{"n", "nano"}, 1e-9},
	{[]string{"µ", "μ", "micro"}, 1e-6},
	{[]string{"m", "milli"}, 1e-3},
	{[]string{"c", "centi"}, 1e-2},
	{[]string{"d", "deci"}, 1e-1},
	{[]string{""}, 1},
	{[]string{"da", "deca", "deka"}, 1e1},
	{[]string{"h", "hecto"}, 1e2},
	{[]string{"k", "kilo"}, 1e3},
	{[]string{"M", "mega"}, 1e6},
	{[]string{"G", "giga"}, 1e9},
	{[]string{"T", "tera"}, 1e12},
	{[]string{"P", "peta"}, 1e15},
	{[]string{"E", "exa"}, 1e18},
	{[]string{"Z", "zetta"}, 1e21},
	{[]string{"Y", "yotta"}, 1e24},
}

var binaryPrefixTable = []prefixEntry{
	{[]string{""}, 1},
	{[]string{"Ki", "kibi"}, math.Pow(2, 10)},
	{[]string{"Mi", "mebi"}, math.Pow(2, 20)},
	{[]string{"Gi", "gibi"}, math.Pow(2, 30)},
	{[]string{"Ti", "tebi"}, math.Pow(2, 40)},
	{[]string{"Pi", "pebi"}, math.Pow(2, 50)},
	{[]string{"Ei", "exbi"}, math.Pow(2, 60)},
	{[]string{"Zi", "zebi"}, math.Pow(2, 70)},
	{[]string{"Yi", "yobi"}, math.Pow(2, 80)},
}

func init() {
	sort.Slice(metricPrefixTable, func(i, j int) bool { return metricPrefixTable[i].factor < metricPrefixTable[j].factor })
	sort.Slice(binaryPrefixTable, func(i, j int) bool { return binaryPrefixTable[i].factor < binaryPrefixTable[j].factor })
}

func prefixTableFor(family PrefixFamily) []prefixEntry {
	if family == BinaryPrefixes {
		return binaryPrefixTable
	}
	return metricPrefixTable
}

type prefixLabel struct {
	label  string
	factor float64
}

// orderedLabels returns (label, factor) pairs for a family sorted with the
// longest labels first, so prefix matching greedily prefers long forms
// ("kilo" over "k" when both are present in the input).
func orderedLabels(family PrefixFamily) []prefixLabel {
	table := prefixTableFor(family)
	var out []prefixLabel
	for _, entry := range table {
		for _, l := range entry.labels {
			if l == "" {
				continue
			}
			out = append(out, prefixLabel{l, entry.factor})
		}
	}
	sort.Slice(out, func(i, j int) bool { return len(out[i].label) > len(out[j].label) })
	return out
}

// parsePrefix returns the numeric factor for a prefix label. An empty label
// is the identity prefix 1. Unknown labels fail with ErrUnknownPrefix.
func parsePrefix(label string, family PrefixFamily) (float64, error) {
	if label == "" {
		return 1, nil
	}
	for _, entry := range prefixTableFor(family) {
		if slices.Contains(entry.labels, label) {
			return entry.factor, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPrefix, label)
}

// canonicalPrefixLabel returns the short form label for a prefix factor,
// or the empty string for the identity prefix / an unrecognised factor.
func canonicalPrefixLabel(factor float64, family PrefixFamily) string {
	for _, entry := range prefixTableFor(family) {
		if entry.factor == factor {
			return entry.labels[0]
		}
	}
	return ""
}

// forValue returns the canonical short-form prefix label whose factor p
// satisfies p <= v^(1/exp), choosing the largest such p. If v^(1/exp) is
// below the smallest table entry, the smallest entry is returned.
func forValue(v float64, exp int, family PrefixFamily) string {
	table := prefixTableFor(family)
	if v <= 0 || exp == 0 {
		return ""
	}
	target := math.Pow(v, 1/float64(exp))

	idx, exact := slices.BinarySearchFunc(table, target, func(e prefixEntry, t float64) int {
		switch {
		case e.factor < t:
			return -1
		case e.factor > t:
			return 1
		default:
			return 0
		}
	})
	if exact {
		return table[idx].labels[0]
	}
	// idx is the insertion point: the first entry greater than target, so
	// the largest entry <= target sits just before it.
	if idx == 0 {
		return table[0].labels[0]
	}
	return table[idx-1].labels[0]
}
