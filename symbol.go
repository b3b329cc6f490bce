package marley

// Symbol is one element of a Production: either a terminal, matched against
// an input token by a Matcher, or a nonterminal, identifying another rule in
// the Grammar by name.
type Symbol struct {
	terminal bool
	matcher  Matcher
	name     string
}

// Terminal returns a Symbol that matches a single input token using m.
func Terminal(m Matcher) Symbol {
	return Symbol{terminal: true, matcher: m}
}

// Nonterminal returns a Symbol referring to the rule named name.
func Nonterminal(name string) Symbol {
	return Symbol{name: name}
}

// IsTerminal reports whether s is a terminal symbol.
func (s Symbol) IsTerminal() bool {
	return s.terminal
}

// Name returns the nonterminal name s refers to. It panics if s is a
// terminal; callers should check IsTerminal first.
func (s Symbol) Name() string {
	if s.terminal {
		panic("marley: Name called on a terminal symbol")
	}
	return s.name
}

func (s Symbol) String() string {
	if s.terminal {
		return s.matcher.Error()
	}
	return s.name
}

func symbolsEqual(a, b Symbol) bool {
	if a.terminal != b.terminal {
		return false
	}
	if a.terminal {
		return matchersEqual(a.matcher, b.matcher)
	}
	return a.name == b.name
}

// Production is an ordered, possibly empty, sequence of Symbols: the
// right-hand side of one alternative of a grammar rule.
type Production []Symbol

func productionsEqual(a, b Production) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !symbolsEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}
