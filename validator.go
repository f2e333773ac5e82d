package units

import (
	"fmt"
	"strings"
)

// IntervalsValidator holds an ordered, non-overlapping list of
// QuantityIntervals that all share one target unit, and validates values
// against whichever interval in the list contains them.
type IntervalsValidator struct {
	Unit      DimensionalUnit
	Intervals []QuantityInterval
}

// ParseIntervals parses a colon-separated unit label followed by a run of
// bracketed intervals sharing that unit, e.g. "kg: [0, 10), [10, 100]".
// Every interval inherits the leading unit directly, then the list is
// checked for duplicates and for ascending, non-overlapping order.
func ParseIntervals(text string) (IntervalsValidator, error) {
	text = strings.TrimSpace(text)
	colonIdx := strings.Index(text, ":")
	if colonIdx == -1 {
		// No unit-label prefix at all: still run the bracket grammar so a
		// malformed interval (e.g. a closed bracket around an infinite
		// endpoint) is reported with its own specific error kind rather
		// than being masked by the missing-prefix complaint.
		if chunks, chunkErr := splitIntervalChunks(text); chunkErr == nil {
			for _, chunk := range chunks {
				if _, err := ParseInterval(chunk); err != nil {
					return IntervalsValidator{}, err
				}
			}
		}
		return IntervalsValidator{}, fmt.Errorf("%w: %q is missing the unit-label prefix", ErrInvalidExpression, text)
	}

	unitText := strings.TrimSpace(text[:colonIdx])
	unit, err := ParseUnit(unitText)
	if err != nil {
		return IntervalsValidator{}, err
	}

	rest := text[colonIdx+1:]
	chunks, err := splitIntervalChunks(rest)
	if err != nil {
		return IntervalsValidator{}, err
	}

	var intervals []QuantityInterval
	for _, chunk := range chunks {
		qi, err := parseChunk(chunk, unit)
		if err != nil {
			return IntervalsValidator{}, err
		}
		intervals = append(intervals, qi)
	}

	if err := checkDuplicates(intervals); err != nil {
		return IntervalsValidator{}, err
	}
	if err := checkOrder(intervals); err != nil {
		return IntervalsValidator{}, err
	}

	return IntervalsValidator{Unit: unit, Intervals: intervals}, nil
}

// MustParseIntervals is like ParseIntervals but panics on error.
func MustParseIntervals(text string) IntervalsValidator {
	v, err := ParseIntervals(text)
	if err != nil {
		panic(err)
	}
	return v
}

// parseChunk parses one bracketed interval; it always inherits unit, since
// the grammar carries a single leading unit_label for the whole list, not
// one per bracket.
func parseChunk(chunk string, unit DimensionalUnit) (QuantityInterval, error) {
	iv, err := ParseInterval(chunk)
	if err != nil {
		return QuantityInterval{}, err
	}
	return QuantityInterval{Interval: iv, Unit: unit}, nil
}

// splitIntervalChunks scans a run of bracketed intervals into one chunk per
// bracket pair. Each chunk opens on the first "[", "]" or "(" seen outside
// a pair and closes on the next "]", "[" or ")" — since "]" and "[" serve
// double duty as ISO 80000-2 outward-pointing opens and closes, the
// distinction is purely positional, not per-character. Whitespace and
// commas between chunks are separators, not part of either interval.
func splitIntervalChunks(s string) ([]string, error) {
	runes := []rune(s)
	var out []string
	i := 0
	for i < len(runes) {
		for i < len(runes) && (runes[i] == ' ' || runes[i] == ',' || runes[i] == '\t') {
			i++
		}
		if i >= len(runes) {
			break
		}
		switch runes[i] {
		case '[', ']', '(':
		default:
			return nil, fmt.Errorf("%w: unexpected character %q in %q", ErrInvalidExpression, string(runes[i]), s)
		}
		start := i
		i++
		closed := false
		for i < len(runes) {
			switch runes[i] {
			case ']', '[', ')':
				i++
				closed = true
			}
			if closed {
				break
			}
			i++
		}
		if !closed {
			return nil, fmt.Errorf("%w: unterminated interval in %q", ErrInvalidExpression, s)
		}
		out = append(out, string(runes[start:i]))
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no intervals found in %q", ErrInvalidExpression, s)
	}
	return out, nil
}

// checkDuplicates rejects two intervals with identical canonical string
// renderings.
func checkDuplicates(intervals []QuantityInterval) error {
	seen := make(map[string]bool, len(intervals))
	for _, qi := range intervals {
		key := qi.String()
		if seen[key] {
			return fmt.Errorf("%w: %s appears more than once", ErrDuplicateInterval, key)
		}
		seen[key] = true
	}
	return nil
}

// checkOrder verifies the list is ascending and non-overlapping: each
// interval's low endpoint must be at or above the previous interval's high
// endpoint, using the dual-channel int64/float64 comparison so that large
// magnitudes near the float64 precision limit are ordered exactly when
// both endpoints happen to be integers.
func checkOrder(intervals []QuantityInterval) error {
	for i := 1; i < len(intervals); i++ {
		prev := intervals[i-1].Interval
		cur := intervals[i].Interval

		if prev.HighInf {
			return fmt.Errorf("%w: %s precedes %s but has an infinite upper bound", ErrNotInOrder, intervals[i-1].String(), intervals[i].String())
		}
		if cur.LowInf {
			return fmt.Errorf("%w: %s has an infinite lower bound but follows %s", ErrNotInOrder, intervals[i].String(), intervals[i-1].String())
		}

		cmp := compareNumbers(prev.High, cur.Low)
		if cmp > 0 {
			return fmt.Errorf("%w: %s overlaps %s", ErrNotInOrder, intervals[i-1].String(), intervals[i].String())
		}
	}
	return nil
}

// compareNumbers compares two numbers preferring exact int64 comparison
// when both are tagged as integers, falling back to float64 comparison.
func compareNumbers(a, b number) int {
	if a.kind == kindInt && b.kind == kindInt {
		switch {
		case a.i < b.i:
			return -1
		case a.i > b.i:
			return 1
		default:
			return 0
		}
	}
	af, bf := a.Float(), b.Float()
	switch {
	case af < bf:
		return -1
	case af > bf:
		return 1
	default:
		return 0
	}
}

// IsValid reports whether value (in unit) falls within any interval in the
// list, converting as needed.
func (v IntervalsValidator) IsValid(value number, unit DimensionalUnit) (bool, error) {
	for _, qi := range v.Intervals {
		ok, err := qi.Contains(value, unit)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// IsValidFloat is IsValid for a plain float64 already expressed in v's unit.
func (v IntervalsValidator) IsValidFloat(value float64) bool {
	ok, _ := v.IsValid(numberFromFloat(value), v.Unit)
	return ok
}

// IsValidInt is IsValid for a plain int64 already expressed in v's unit.
func (v IntervalsValidator) IsValidInt(value int64) bool {
	ok, _ := v.IsValid(number{kind: kindInt, i: value}, v.Unit)
	return ok
}

// IsValidText is IsValid for a "<number> <unit>" quantity string, per the
// is_valid(text_or_number) external operation: every failure, including an
// unparseable quantity or an incompatible unit, downgrades to false.
func (v IntervalsValidator) IsValidText(text string) bool {
	n, unit, err := ParseQuantity(text)
	if err != nil {
		return false
	}
	ok, err := v.IsValid(n, unit)
	if err != nil {
		return false
	}
	return ok
}

// Normalize parses a "<number> <unit>" quantity string, converts it onto
// v's own unit, checks it falls within one of v's intervals, and renders
// it in canonical "<number> <unit>" form. Unlike IsValidText, every
// failure surfaces to the caller rather than downgrading to false.
func (v IntervalsValidator) Normalize(text string) (string, error) {
	n, unit, err := ParseQuantity(text)
	if err != nil {
		return "", err
	}
	ratio, err := unit.To(v.Unit)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrIncompatibleUnit, err)
	}
	converted := numberFromFloat(n.Float() * ratio)

	ok, err := v.IsValid(converted, v.Unit)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("%w: %s %s is not within %s", ErrNotWithin, converted.String(), v.Unit.Render(), v.String())
	}
	return converted.String() + " " + v.Unit.Render(), nil
}

// Rebase rewrites every interval in v onto target, failing if any
// interval's own unit is incommensurable with it.
func (v IntervalsValidator) Rebase(target DimensionalUnit) (IntervalsValidator, error) {
	out := make([]QuantityInterval, len(v.Intervals))
	for i, qi := range v.Intervals {
		nqi, err := qi.Normalise(target)
		if err != nil {
			return IntervalsValidator{}, err
		}
		out[i] = nqi
	}
	return IntervalsValidator{Unit: target, Intervals: out}, nil
}

// String renders the canonical "<unit>: <interval>, <interval>, ..." form.
func (v IntervalsValidator) String() string {
	parts := make([]string, len(v.Intervals))
	for i, qi := range v.Intervals {
		parts[i] = qi.Interval.String()
	}
	return v.Unit.Render() + ": " + strings.Join(parts, ", ")
}
