package marley

import (
	"errors"
	"testing"

	"github.com/go-marley/marley/marleyerr"
)

func TestUnexpectedTokenListsExpectedLabels(t *testing.T) {
	g, start := arithmeticGrammar()
	p, err := MakeMarley(g, start)
	if err != nil {
		t.Fatalf("MakeMarley failed: %v", err)
	}

	p.Feed("+")

	var unexpected *marleyerr.UnexpectedToken
	if !errors.As(p.Failure(), &unexpected) {
		t.Fatalf("Failure() = %v (%T), want *marleyerr.UnexpectedToken", p.Failure(), p.Failure())
	}
	if len(unexpected.Expected) == 0 {
		t.Errorf("UnexpectedToken.Expected should not be empty")
	}
}

func TestNoProgressAfterPriorFailure(t *testing.T) {
	g, start := parensGrammar()
	p, err := MakeMarley(g, start)
	if err != nil {
		t.Fatalf("MakeMarley failed: %v", err)
	}

	p.Feed(")") // UnexpectedToken: nothing can scan ")"
	if !p.Failed() {
		t.Fatalf("expected the parser to fail on an unmatched close paren")
	}

	// advance() is exercised directly here (rather than through Feed, which
	// is sticky once failed) to confirm NoProgress fires when the prior
	// state set is empty.
	_, err = advance(p.grammar, p.chart, p.position+1, "(")
	var noProgress *marleyerr.NoProgress
	if !errors.As(err, &noProgress) {
		t.Fatalf("advance() on an empty prior state set = %v (%T), want *marleyerr.NoProgress", err, err)
	}
}

func TestSeedInitialChartClosesUnderPrediction(t *testing.T) {
	g, start := arithmeticGrammar()
	c := seedInitialChart(g, start)

	set0 := c.getSet(0)
	if len(set0) == 0 {
		t.Fatalf("state set 0 should be non-empty after seeding")
	}

	heads := map[string]bool{}
	for _, it := range set0 {
		heads[it.head] = true
	}
	for _, want := range []string{"P", "S", "M", "T"} {
		if !heads[want] {
			t.Errorf("state set 0 should contain an item for %q after closure, got heads %v", want, heads)
		}
	}
}

func TestSeedInitialChartPanicsOnUndefinedStartRule(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("seedInitialChart should panic when the grammar has no rule for the requested start symbol")
		}
	}()
	g := NewGrammar(map[string][]Production{})
	seedInitialChart(g, "Missing")
}
