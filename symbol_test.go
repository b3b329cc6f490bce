package marley

import "testing"

func TestNonterminalName(t *testing.T) {
	s := Nonterminal("expr")
	if s.IsTerminal() {
		t.Fatalf("Nonterminal(\"expr\").IsTerminal() = true, want false")
	}
	if got := s.Name(); got != "expr" {
		t.Errorf("Name() = %q, want %q", got, "expr")
	}
}

func TestNameOnTerminalPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Name() on a terminal symbol should panic")
		}
	}()
	Terminal(Exactly("x")).Name()
}

func TestSymbolsEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Symbol
		want bool
	}{
		{"same nonterminal", Nonterminal("A"), Nonterminal("A"), true},
		{"different nonterminal", Nonterminal("A"), Nonterminal("B"), false},
		{"same terminal", Terminal(Exactly("x")), Terminal(Exactly("x")), true},
		{"different terminal", Terminal(Exactly("x")), Terminal(Exactly("y")), false},
		{"terminal vs nonterminal", Terminal(Exactly("x")), Nonterminal("x"), false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := symbolsEqual(test.a, test.b); got != test.want {
				t.Errorf("symbolsEqual(%v, %v) = %v, want %v", test.a, test.b, got, test.want)
			}
		})
	}
}

func TestProductionsEqual(t *testing.T) {
	a := Production{Nonterminal("A"), Terminal(Exactly("x"))}
	b := Production{Nonterminal("A"), Terminal(Exactly("x"))}
	c := Production{Nonterminal("A")}

	if !productionsEqual(a, b) {
		t.Errorf("identical productions should be equal")
	}
	if productionsEqual(a, c) {
		t.Errorf("productions of different lengths should not be equal")
	}
}
