package units

import (
	"fmt"
	"strings"
)

// QuantityInterval pairs an Interval with the unit its endpoints are
// expressed in.
type QuantityInterval struct {
	Interval Interval
	Unit     DimensionalUnit
}

// ParseQuantityInterval parses a bracketed interval immediately followed
// by a unit label, e.g. "[0, 100) kg". The unit label must be non-empty;
// an absent unit is rejected rather than defaulting to a dimensionless one.
func ParseQuantityInterval(text string) (QuantityInterval, error) {
	bracketText, unitText, err := extractBracket(text)
	if err != nil {
		return QuantityInterval{}, err
	}

	unitText = strings.TrimSpace(unitText)
	if unitText == "" {
		return QuantityInterval{}, fmt.Errorf("%w: quantity interval %q has no unit label", ErrInvalidExpression, text)
	}

	iv, err := ParseInterval(bracketText)
	if err != nil {
		return QuantityInterval{}, err
	}

	unit, err := ParseUnit(unitText)
	if err != nil {
		return QuantityInterval{}, err
	}

	return QuantityInterval{Interval: iv, Unit: unit}, nil
}

// extractBracket finds the bracketed interval substring of text using a
// reluctant (shortest-match) scan for the first balanced bracket pair,
// returning it and the remainder as the unit label.
func extractBracket(text string) (bracket, rest string, err error) {
	text = strings.TrimSpace(text)
	runes := []rune(text)
	if len(runes) == 0 {
		return "", "", fmt.Errorf("%w: empty quantity interval", ErrInvalidExpression)
	}

	start := -1
	for i, r := range runes {
		if r == '[' || r == '(' || r == ']' {
			start = i
			break
		}
	}
	if start == -1 {
		return "", "", fmt.Errorf("%w: %q has no opening bracket", ErrInvalidExpression, text)
	}

	end := -1
	for i := start + 1; i < len(runes); i++ {
		switch runes[i] {
		case ')', ']', '[':
			end = i
		}
		if end != -1 {
			break
		}
	}
	if end == -1 {
		return "", "", fmt.Errorf("%w: %q has no closing bracket", ErrInvalidExpression, text)
	}

	return string(runes[start : end+1]), string(runes[end+1:]), nil
}

// Contains reports whether value, expressed in unit, falls inside qi,
// converting value into qi's own unit first. An incommensurable unit
// fails with ErrIncompatibleUnit.
func (qi QuantityInterval) Contains(value number, unit DimensionalUnit) (bool, error) {
	ratio, err := unit.To(qi.Unit)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrIncompatibleUnit, err)
	}
	return qi.Interval.ContainsNumber(value.Float() * ratio), nil
}

// Normalise converts qi's endpoints into target and returns the equivalent
// QuantityInterval expressed in that unit. Infinite endpoints pass through
// unscaled.
func (qi QuantityInterval) Normalise(target DimensionalUnit) (QuantityInterval, error) {
	ratio, err := qi.Unit.To(target)
	if err != nil {
		return QuantityInterval{}, fmt.Errorf("%w: %v", ErrIncompatibleUnit, err)
	}

	out := qi.Interval
	if !out.LowInf {
		out.Low = numberFromFloat(out.Low.Float() * ratio)
	}
	if !out.HighInf {
		out.High = numberFromFloat(out.High.Float() * ratio)
	}
	return QuantityInterval{Interval: out, Unit: target}, nil
}

// String renders the canonical form "<interval> <unit>".
func (qi QuantityInterval) String() string {
	return qi.Interval.String() + " " + qi.Unit.Render()
}
