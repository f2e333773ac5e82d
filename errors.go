package units

import "errors"

// Sentinel errors identify the error kinds from the taxonomy. Callers use
// errors.Is to recover the kind; the wrapped message carries the detail.
var (
	// ErrInvalidExpression is returned when a token does not match the grammar.
	ErrInvalidExpression = errors.New("invalid expression")
	// ErrUnknownPrefix is returned when a prefix label is not in any table.
	ErrUnknownPrefix = errors.New("unknown prefix")
	// ErrDifferentSymbols is returned when combining factors with different symbols.
	ErrDifferentSymbols = errors.New("different symbols")
	// ErrNonScalarDimension is returned when a conversion leaves residual factors.
	ErrNonScalarDimension = errors.New("non-scalar dimension")
	// ErrAmbiguousInfinite is returned when an infinite endpoint is closed.
	ErrAmbiguousInfinite = errors.New("ambiguous infinite endpoint")
	// ErrNotANumber is returned when an endpoint or quantity cannot be parsed as a number.
	ErrNotANumber = errors.New("not a number")
	// ErrDuplicateInterval is returned when the same canonical interval appears twice.
	ErrDuplicateInterval = errors.New("duplicate interval")
	// ErrNotInOrder is returned when endpoints are not monotonically non-decreasing.
	ErrNotInOrder = errors.New("intervals not in order")
	// ErrIncompatibleUnit is returned when an incoming unit cannot convert to the target.
	ErrIncompatibleUnit = errors.New("incompatible unit")
	// ErrNotWithin is returned by Normalize when a value matches no interval.
	ErrNotWithin = errors.New("value not within any interval")
)
