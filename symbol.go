package units

// symbolGroup is a set of aliases for one base unit, the canonical symbol
// being the last element. Lookup is exact and case-sensitive; the canonical
// symbol is always itself a valid alias.
type symbolGroup []string

var symbolGroups = []symbolGroup{
	{"metres", "meters", "metre", "meter", "m"},
	{"grams", "gram", "g"},
	{"seconds", "second", "secs", "sec", "s"},
	{"amperes", "ampere", "amps", "amp", "A"},
	{"kelvins", "kelvin", "K"},
	{"candelas", "candela", "cd"},
	{"moles", "mole", "mol"},
	{"bytes", "byte", "B"},
	{"bits", "bit", "b"},
}

var aliasToCanonical = func() map[string]string {
	m := make(map[string]string)
	for _, group := range symbolGroups {
		canonical := group[len(group)-1]
		for _, alias := range group {
			m[alias] = canonical
		}
	}
	return m
}()

// canonicalSymbol returns the canonical symbol for a known alias, or the
// input unchanged if the label is not a known base unit.
func canonicalSymbol(label string) string {
	if canonical, ok := aliasToCanonical[label]; ok {
		return canonical
	}
	return label
}

// aliases returns every alias of the group containing label, or a
// singleton slice containing label itself when it is unknown.
func aliases(label string) []string {
	for _, group := range symbolGroups {
		for _, alias := range group {
			if alias == label {
				out := make([]string, len(group))
				copy(out, group)
				return out
			}
		}
	}
	return []string{label}
}

// isKnownAlias reports whether label is an exact alias of a base symbol.
func isKnownAlias(label string) bool {
	_, ok := aliasToCanonical[label]
	return ok
}
