package units

import (
	"fmt"
	"strings"
)

// Factor is one multiplicative term in a unit expression: a scalar value
// not absorbed into the prefix, a prefix label, a base or unknown symbol,
// and an integer exponent. The effective factor is value * prefixFactor^exponent.
type Factor struct {
	Value    float64
	Prefix   string
	Symbol   string
	Exponent int
}

// effectiveFactor computes value * prefixFactor(prefix)^exponent for the
// given prefix family. The prefix is assumed to already have been
// validated against that family.
func (f Factor) effectiveFactor(family PrefixFamily) float64 {
	pf, err := parsePrefix(f.Prefix, family)
	if err != nil {
		// Unknown factors never carry a prefix outside the known table;
		// construction guarantees this cannot happen for live Factors.
		pf = 1
	}
	return f.Value * intPow(pf, f.Exponent)
}

func intPow(base float64, exp int) float64 {
	if exp == 0 {
		return 1
	}
	neg := exp < 0
	if neg {
		exp = -exp
	}
	result := 1.0
	for i := 0; i < exp; i++ {
		result *= base
	}
	if neg {
		return 1 / result
	}
	return result
}

// combine merges two symbol-equal factors: the resulting exponent is the
// sum of the inputs', the resulting value is the product of both inputs'
// effective factors, and the prefix is reset to the identity (the caller
// re-assigns a best-fit prefix via simplify or normalise).
func combine(a, b Factor, family PrefixFamily) (Factor, error) {
	if a.Symbol != b.Symbol {
		return Factor{}, fmt.Errorf("%w: %q vs %q", ErrDifferentSymbols, a.Symbol, b.Symbol)
	}
	return Factor{
		Value:    a.effectiveFactor(family) * b.effectiveFactor(family),
		Prefix:   "",
		Symbol:   a.Symbol,
		Exponent: a.Exponent + b.Exponent,
	}, nil
}

// simplify re-assigns the best-fit canonical prefix for f's effective
// factor, returning the ratio between old and new effective factors.
func simplify(f Factor, family PrefixFamily) (Factor, float64) {
	old := f.effectiveFactor(family)
	if f.Exponent == 0 {
		return Factor{Value: 1, Prefix: "", Symbol: f.Symbol, Exponent: 0}, old
	}
	best := forValue(old, f.Exponent, family)
	nf := Factor{Value: 1, Prefix: best, Symbol: f.Symbol, Exponent: f.Exponent}
	return nf, old / nf.effectiveFactor(family)
}

// raise multiplies a factor's exponent by k.
func raise(f Factor, k int) Factor {
	f.Exponent *= k
	return f
}

// render renders one factor as "[value ]prefix symbol[superscript exponent]".
func (f Factor) render() string {
	var sb strings.Builder
	if f.Value != 1 {
		fmt.Fprintf(&sb, "%g ", f.Value)
	}
	sb.WriteString(f.Prefix)
	sb.WriteString(f.Symbol)
	if f.Exponent != 1 {
		sb.WriteString(exponentToSuperscript(f.Exponent))
	}
	return sb.String()
}

// parseTerm parses one term of the grammar:
//
//	term       := exp_pre? label exp_post?
//	exp_pre    := "square " | "cubic "
//	exp_post   := " squared" | sup_minus? sup_digit+
//	label      := prefixed_known | prefixed_unknown | bare
//
// The known-label match is always attempted before the unknown-label
// fallback, so that e.g. "metres" resolves to the metre alias directly
// instead of the prefix "m" plus the unknown symbol "etres".
func parseTerm(raw string, family PrefixFamily) (Factor, error) {
	term := strings.TrimSpace(raw)
	if term == "" {
		return Factor{}, fmt.Errorf("%w: empty term", ErrInvalidExpression)
	}

	preExp := 0
	switch {
	case strings.HasPrefix(term, "square "):
		preExp = 2
		term = term[len("square "):]
	case strings.HasPrefix(term, "cubic "):
		preExp = 3
		term = term[len("cubic "):]
	}

	postExp := 0
	switch {
	case strings.HasSuffix(term, " squared"):
		postExp = 2
		term = strings.TrimSuffix(term, " squared")
	default:
		if n, rest, ok := trimTrailingSuperscript(term); ok {
			postExp = n
			term = rest
		}
	}

	if preExp != 0 && postExp != 0 {
		return Factor{}, fmt.Errorf("%w: both exponent prefix and suffix given in %q", ErrInvalidExpression, raw)
	}

	exponent := 1
	switch {
	case preExp != 0:
		exponent = preExp
	case postExp != 0:
		exponent = postExp
	}

	label := strings.TrimSpace(term)
	if label == "" {
		return Factor{}, fmt.Errorf("%w: missing label in %q", ErrInvalidExpression, raw)
	}

	prefixStr, symbol, err := resolveLabel(label, family)
	if err != nil {
		return Factor{}, err
	}

	return Factor{Value: 1, Prefix: prefixStr, Symbol: symbol, Exponent: exponent}, nil
}

// trimTrailingSuperscript strips a trailing run of superscript digits
// (with optional leading superscript minus) from s, returning the parsed
// exponent and the remaining label.
func trimTrailingSuperscript(s string) (int, string, bool) {
	runes := []rune(s)
	end := len(runes)
	start := end
	for start > 0 && isSuperscriptDigit(runes[start-1]) {
		start--
	}
	if start == end {
		return 0, s, false
	}
	if start > 0 && runes[start-1] == superscriptMinus {
		start--
	}
	n, ok := parseSuperscriptExponent(string(runes[start:end]))
	if !ok {
		return 0, s, false
	}
	return n, string(runes[:start]), true
}

// resolveLabel implements the label grammar:
//
//	label := prefixed_known | prefixed_unknown | bare
//
// Known-label forms (with or without a prefix) are tried first; only when
// none match does the parser fall back to treating the label as an
// arbitrary, possibly prefixed, unknown symbol.
func resolveLabel(label string, family PrefixFamily) (prefix, symbol string, err error) {
	if isKnownAlias(label) {
		return "", canonicalSymbol(label), nil
	}

	for _, pl := range orderedLabels(family) {
		if !strings.HasPrefix(label, pl.label) {
			continue
		}
		rest := label[len(pl.label):]
		if rest != "" && isKnownAlias(rest) {
			return pl.label, canonicalSymbol(rest), nil
		}
	}

	for _, pl := range orderedLabels(family) {
		if !strings.HasPrefix(label, pl.label) {
			continue
		}
		rest := label[len(pl.label):]
		if rest != "" {
			return pl.label, rest, nil
		}
	}

	return "", label, nil
}
