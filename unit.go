package units

import (
	"fmt"
	"hash/fnv"
	"sort"
	"strings"
)

const multiplicationOperators = "· ×⋅*"
const divisionOperators = "/÷⁄∕"

// DimensionalUnit is a product of factors representing a unit of
// measurement: a scalar conversion-bookkeeping value plus an ordered list
// of combined, non-zero-exponent factors with distinct symbols. Positive
// exponents always precede negative ones; within each group, first
// occurrence order from the parsed expression is preserved.
type DimensionalUnit struct {
	Scalar  float64
	Factors []Factor
	Family  PrefixFamily
}

// ParseUnit parses a unit expression, auto-detecting whether it uses the
// metric or binary prefix family.
func ParseUnit(text string) (DimensionalUnit, error) {
	return ParseUnitWith(text, detectFamily(text))
}

// MustParseUnit is like ParseUnit but panics on error. Use only when the
// input is known to be valid, e.g. a compile-time constant.
func MustParseUnit(text string) DimensionalUnit {
	u, err := ParseUnit(text)
	if err != nil {
		panic(err)
	}
	return u
}

// ParseUnitWith parses a unit expression against an explicit prefix family.
func ParseUnitWith(text string, family PrefixFamily) (DimensionalUnit, error) {
	text = strings.TrimSpace(text)
	if text == "" || text == "1" {
		return DimensionalUnit{Scalar: 1, Family: family}, nil
	}

	numerStr, denomStr, hasDiv, err := splitTopLevelDivision(text)
	if err != nil {
		return DimensionalUnit{}, err
	}

	var rawFactors []Factor

	numerTerms := splitTerms(numerStr)
	for _, t := range numerTerms {
		f, err := parseTerm(t, family)
		if err != nil {
			return DimensionalUnit{}, err
		}
		rawFactors = append(rawFactors, f)
	}

	if hasDiv {
		denomTerms := splitTerms(denomStr)
		for _, t := range denomTerms {
			f, err := parseTerm(t, family)
			if err != nil {
				return DimensionalUnit{}, err
			}
			rawFactors = append(rawFactors, raise(f, -1))
		}
	}

	grouped, err := groupFactors(rawFactors, family)
	if err != nil {
		return DimensionalUnit{}, err
	}

	scalar := 1.0
	var out []Factor
	for _, gf := range grouped {
		if gf.Exponent == 0 {
			scalar *= gf.Value
			continue
		}
		nf, ratio := simplify(gf, family)
		scalar *= ratio
		out = append(out, nf)
	}

	return DimensionalUnit{Scalar: scalar, Factors: partitionFactors(out), Family: family}, nil
}

// detectFamily scans the raw term labels of an expression for a prefix that
// belongs only to the binary table; if found, the whole expression is
// parsed against the binary table, otherwise the metric table is used.
func detectFamily(text string) PrefixFamily {
	numerStr, denomStr, hasDiv, err := splitTopLevelDivision(text)
	if err != nil {
		return MetricPrefixes
	}
	terms := splitTerms(numerStr)
	if hasDiv {
		terms = append(terms, splitTerms(denomStr)...)
	}
	for _, raw := range terms {
		label := stripExponentMarkers(raw)
		if label == "" || isKnownAlias(label) {
			continue
		}
		for _, pl := range orderedLabels(BinaryPrefixes) {
			if pl.label == "" {
				continue
			}
			if strings.HasPrefix(label, pl.label) && len(label) > len(pl.label) {
				return BinaryPrefixes
			}
		}
	}
	return MetricPrefixes
}

// stripExponentMarkers removes the exp_pre/exp_post grammar markers from a
// raw term so the remaining text can be tested against the prefix tables.
func stripExponentMarkers(raw string) string {
	term := strings.TrimSpace(raw)
	switch {
	case strings.HasPrefix(term, "square "):
		term = term[len("square "):]
	case strings.HasPrefix(term, "cubic "):
		term = term[len("cubic "):]
	}
	if strings.HasSuffix(term, " squared") {
		term = strings.TrimSuffix(term, " squared")
	} else if _, rest, ok := trimTrailingSuperscript(term); ok {
		term = rest
	}
	return strings.TrimSpace(term)
}

// splitTopLevelDivision splits text at the single division operator
// allowed outside parentheses. A second top-level division operator is an
// error. Every term after the operator is a denominator term, whether or
// not the denominator is wrapped in parentheses, so the rendered form
// "m²·kg/s²·A" parses back to the same unit.
func splitTopLevelDivision(text string) (numer, denom string, hasDiv bool, err error) {
	runes := []rune(text)
	depth := 0
	divIdx := -1
	for i, r := range runes {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return "", "", false, fmt.Errorf("%w: unbalanced parentheses in %q", ErrInvalidExpression, text)
			}
		default:
			if depth == 0 && strings.ContainsRune(divisionOperators, r) {
				if divIdx != -1 {
					return "", "", false, fmt.Errorf("%w: multiple top-level division operators in %q; parenthesise the denominator", ErrInvalidExpression, text)
				}
				divIdx = i
			}
		}
	}
	if depth != 0 {
		return "", "", false, fmt.Errorf("%w: unbalanced parentheses in %q", ErrInvalidExpression, text)
	}
	if divIdx == -1 {
		return text, "", false, nil
	}
	numer = string(runes[:divIdx])
	denom = string(runes[divIdx+1:])

	trimmed := strings.TrimSpace(denom)
	if strings.HasPrefix(trimmed, "(") && strings.HasSuffix(trimmed, ")") && isBalancedWhole(trimmed) {
		denom = trimmed[1 : len(trimmed)-1]
	}
	return numer, denom, true, nil
}

func isBalancedWhole(s string) bool {
	depth := 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 && i != len(s)-1 {
				return false
			}
		}
	}
	return depth == 0
}

func containsTopLevelOperator(s string, operators string) bool {
	depth := 0
	for _, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		default:
			if depth == 0 && strings.ContainsRune(operators, r) {
				return true
			}
		}
	}
	return false
}

// splitTerms splits a numerator or denominator string into its
// multiplicative terms, respecting parenthesis nesting.
func splitTerms(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	var terms []string
	depth := 0
	start := 0
	runes := []rune(s)
	for i, r := range runes {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		default:
			if depth == 0 && strings.ContainsRune(multiplicationOperators, r) {
				terms = append(terms, string(runes[start:i]))
				start = i + 1
			}
		}
	}
	terms = append(terms, string(runes[start:]))
	for i := range terms {
		terms[i] = strings.Trim(terms[i], "() ")
	}
	return terms
}

// groupFactors combines like-symbol factors (preserving first-occurrence
// order), returning one combined Factor per distinct symbol with its
// prefix reset to the identity and its value holding the accumulated
// effective-factor product, per the combine rule in §4.3.
func groupFactors(factors []Factor, family PrefixFamily) ([]Factor, error) {
	order := make([]string, 0, len(factors))
	acc := make(map[string]Factor, len(factors))
	for _, f := range factors {
		if existing, ok := acc[f.Symbol]; ok {
			combined, err := combine(existing, f, family)
			if err != nil {
				return nil, err
			}
			acc[f.Symbol] = combined
			continue
		}
		acc[f.Symbol] = Factor{Value: f.effectiveFactor(family), Prefix: "", Symbol: f.Symbol, Exponent: f.Exponent}
		order = append(order, f.Symbol)
	}
	out := make([]Factor, len(order))
	for i, s := range order {
		out[i] = acc[s]
	}
	return out, nil
}

// partitionFactors moves all positive-exponent factors before all
// negative-exponent factors, preserving relative order within each group.
func partitionFactors(factors []Factor) []Factor {
	var positives, negatives []Factor
	for _, f := range factors {
		if f.Exponent > 0 {
			positives = append(positives, f)
		} else {
			negatives = append(negatives, f)
		}
	}
	return append(positives, negatives...)
}

// accEntry accumulates one symbol's running effective value and exponent
// while two DimensionalUnits (possibly from different prefix families) are
// merged for conversion.
type accEntry struct {
	value    float64
	exponent int
}

// To computes the scalar ratio converting a quantity in u to the same
// quantity expressed in other, failing with ErrNonScalarDimension if any
// factor survives after cancellation. Each side's factors are resolved to
// plain numeric values in their own prefix family before merging, so
// converting between a metric-family unit and a binary-family unit (e.g.
// KiB to kB) is exact.
func (u DimensionalUnit) To(other DimensionalUnit) (float64, error) {
	acc := make(map[string]accEntry)
	var order []string

	add := func(f Factor, family PrefixFamily) {
		val := f.effectiveFactor(family)
		if e, ok := acc[f.Symbol]; ok {
			acc[f.Symbol] = accEntry{value: e.value * val, exponent: e.exponent + f.Exponent}
			return
		}
		acc[f.Symbol] = accEntry{value: val, exponent: f.Exponent}
		order = append(order, f.Symbol)
	}

	for _, f := range u.Factors {
		add(f, u.Family)
	}
	for _, f := range other.Factors {
		add(raise(f, -1), other.Family)
	}

	scalar := u.Scalar / other.Scalar
	var residual []Factor
	for _, sym := range order {
		e := acc[sym]
		if e.exponent == 0 {
			scalar *= e.value
			continue
		}
		residual = append(residual, Factor{Value: e.value, Prefix: "", Symbol: sym, Exponent: e.exponent})
	}

	if len(residual) > 0 {
		return 0, fmt.Errorf("%w: residual factors %s", ErrNonScalarDimension, renderFactors(residual))
	}
	return scalar, nil
}

// Equal reports whether u and other are commensurable with a 1:1 ratio.
func (u DimensionalUnit) Equal(other DimensionalUnit) bool {
	ratio, err := u.To(other)
	if err != nil {
		return false
	}
	return ratio == 1.0
}

// Render produces the canonical string form: positive-exponent factors
// joined by "·", then (if any negative-exponent factors exist) a "/"
// followed by the negative-exponent factors joined by "·" with their
// exponents negated.
func (u DimensionalUnit) Render() string {
	return renderFactors(u.Factors)
}

func renderFactors(factors []Factor) string {
	var positives, negatives []Factor
	for _, f := range factors {
		if f.Exponent > 0 {
			positives = append(positives, f)
		} else {
			negatives = append(negatives, f)
		}
	}

	var sb strings.Builder
	for i, f := range positives {
		if i > 0 {
			sb.WriteString("·")
		}
		sb.WriteString(f.render())
	}
	if len(negatives) > 0 {
		sb.WriteString("/")
		for i, f := range negatives {
			if i > 0 {
				sb.WriteString("·")
			}
			neg := f
			neg.Exponent = -neg.Exponent
			sb.WriteString(neg.render())
		}
	}
	return sb.String()
}

// Hash returns an order-independent hash over the scalar value and every
// factor's effective value, symbol and exponent.
func (u DimensionalUnit) Hash() uint64 {
	sorted := make([]Factor, len(u.Factors))
	copy(sorted, u.Factors)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Symbol < sorted[j].Symbol })

	h := fnv.New64a()
	fmt.Fprintf(h, "%g|", u.Scalar)
	for _, f := range sorted {
		fmt.Fprintf(h, "%s:%g:%d|", f.Symbol, f.effectiveFactor(u.Family), f.Exponent)
	}
	return h.Sum64()
}
