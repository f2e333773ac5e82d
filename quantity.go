package units

import "fmt"

// ParseQuantity splits a leading numeric literal from a trailing unit
// expression, e.g. "2.5 GiB" -> (2.5, GiB). A bare number with no unit
// label parses against the dimensionless unit.
func ParseQuantity(text string) (number, DimensionalUnit, error) {
	m := quantityPattern.FindStringSubmatch(text)
	if m == nil {
		return number{}, DimensionalUnit{}, fmt.Errorf("%w: %q has no leading numeric literal", ErrNotANumber, text)
	}

	n, ok := parseNumber(m[1])
	if !ok {
		return number{}, DimensionalUnit{}, fmt.Errorf("%w: %q", ErrNotANumber, m[1])
	}

	unit, err := ParseUnit(m[2])
	if err != nil {
		return number{}, DimensionalUnit{}, err
	}
	return n, unit, nil
}
