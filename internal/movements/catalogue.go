package movements

// Catalogue is an ordered list of rules. Order is precedence: the first rule
// that accepts a title wins.
type Catalogue []Rule

// Match is the outcome of running a catalogue over one title.
type Match struct {
	Rule     Rule
	Work     string
	Movement string
}

// DefaultCatalogue returns the built-in grammars, most constrained first and
// the whole-title fallback last. The returned slice is a copy.
func DefaultCatalogue() Catalogue {
	c := make(Catalogue, len(defaultRules))
	copy(c, defaultRules)
	return c
}

// Best returns the first rule, in order, that accepts text. If no rule
// accepts it (only possible for a catalogue without a universal last rule)
// the whole-title fallback is used, so Best never fails.
func (c Catalogue) Best(text string) Match {
	for _, r := range c {
		if work, movement, ok := r.Match(text); ok {
			return Match{Rule: r, Work: work, Movement: movement}
		}
	}
	return Match{Rule: wholeTitle{}, Work: text}
}

// Names returns the rule names in precedence order.
func (c Catalogue) Names() []string {
	names := make([]string, len(c))
	for i, r := range c {
		names[i] = r.Name()
	}
	return names
}
