package marley

import "fmt"

// Grammar is an immutable mapping from a nonterminal's name to the list of
// productions (alternatives) that recognize it. The order of the list is
// preserved for callers that care (e.g. for reproducible diagnostics), but
// the engine's correctness never depends on it.
type Grammar struct {
	rules map[string][]Production
}

// NewGrammar builds a Grammar from a literal rule set: a mapping from
// nonterminal name to its alternative productions. The map and its slices
// are copied, so later mutation of rules by the caller has no effect on the
// returned Grammar.
func NewGrammar(rules map[string][]Production) *Grammar {
	cp := make(map[string][]Production, len(rules))
	for name, alternatives := range rules {
		copied := make([]Production, len(alternatives))
		for i, p := range alternatives {
			copied[i] = append(Production(nil), p...)
		}
		cp[name] = copied
	}
	return &Grammar{rules: cp}
}

// rulesOf returns the productions for the nonterminal named name, and
// whether that name is present in the grammar at all.
func (g *Grammar) rulesOf(name string) ([]Production, bool) {
	p, ok := g.rules[name]
	return p, ok
}

// hasRule reports whether name is a nonterminal defined in g.
func (g *Grammar) hasRule(name string) bool {
	_, ok := g.rules[name]
	return ok
}

// undefinedNonterminalMsg builds the panic message used when Prediction needs
// a rule the grammar doesn't define. Per the parent spec, this is a
// malformed-grammar programming error, not a parse failure: the grammar
// should have been validated before any tokens were fed to it.
func undefinedNonterminalMsg(name string) string {
	return fmt.Sprintf("marley: grammar has no rule named %q", name)
}
