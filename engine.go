package marley

import "github.com/go-marley/marley/marleyerr"

// workItem is one (state-set index, item) pair waiting to be closed over.
// The queue discipline is unspecified by the parent spec beyond "must
// terminate"; we pop from the end, i.e. LIFO, same as the reference.
type workItem struct {
	set int
	it  *item
}

// seedInitialChart builds state set 0 of a fresh chart: one item per
// production of start, closed under Prediction only. No Completion or
// Scanning is possible yet, since nothing has matched any input and there is
// no token to scan.
func seedInitialChart(g *Grammar, start string) *chart {
	c := newChart()
	var queue []*item

	enqueue := func(it *item) {
		if c.add(0, it) {
			queue = append(queue, it)
		}
	}

	productions, ok := g.rulesOf(start)
	if !ok {
		panic(undefinedNonterminalMsg(start))
	}
	for _, p := range productions {
		enqueue(&item{head: start, remaining: p, origin: 0, tree: []any{start}})
	}

	for len(queue) > 0 {
		it := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		if it.complete() {
			continue
		}
		first := it.next()
		if first.terminal {
			continue
		}
		predictions, ok := g.rulesOf(first.name)
		if !ok {
			panic(undefinedNonterminalMsg(first.name))
		}
		for _, p := range predictions {
			enqueue(&item{head: first.name, remaining: p, origin: 0, tree: []any{first.name}})
		}
	}

	return c
}

// advance computes the chart after scanning token at position, given the
// chart as it stood after position-1 tokens. It returns the updated chart
// and, on failure, a *marleyerr.NoProgress or *marleyerr.UnexpectedToken
// describing why the token could not be accepted. The chart is mutated and
// returned, rather than copied, per the "equivalent in-place mutation is
// permitted" allowance in spec §5 — advance has exactly one caller
// (Parser.Feed), which never needs the pre-advance chart again.
func advance(g *Grammar, c *chart, position int, token any) (*chart, error) {
	prior := position - 1
	priorItems := c.getSet(prior)
	if len(priorItems) == 0 {
		return c, &marleyerr.NoProgress{Position: position}
	}

	var queue []workItem
	enqueue := func(set int, it *item) {
		if c.add(set, it) {
			queue = append(queue, workItem{set: set, it: it})
		}
	}
	for _, it := range priorItems {
		queue = append(queue, workItem{set: prior, it: it})
	}

	expected := marleyerr.NewExpectedSet()

	for len(queue) > 0 {
		w := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		k, it := w.set, w.it

		switch {
		case it.complete():
			// Completion: propagate into every item at the origin state set
			// that was waiting on this nonterminal.
			for _, parent := range c.getSet(it.origin) {
				if parent.complete() {
					continue
				}
				first := parent.next()
				if first.terminal || first.name != it.head {
					continue
				}
				enqueue(k, parent.withChild(it.tree))
			}

		case it.next().terminal:
			// Scanning only fires for items sitting at the position we're
			// currently extending from; items left behind at earlier
			// positions stay put for Completion to consume later.
			if k != prior {
				continue
			}
			m := it.next().matcher
			if m.Matches(token) {
				enqueue(k+1, it.withChild(token))
			} else {
				expected.Add(m.Error())
			}

		default:
			// Prediction: expand the nonterminal into one item per
			// production, seeded fresh at this position.
			name := it.next().name
			productions, ok := g.rulesOf(name)
			if !ok {
				panic(undefinedNonterminalMsg(name))
			}
			for _, p := range productions {
				enqueue(k, &item{head: name, remaining: p, origin: k, tree: []any{name}})
			}
		}
	}

	if len(c.getSet(position)) == 0 {
		return c, &marleyerr.UnexpectedToken{Position: position, Expected: expected.Labels()}
	}
	return c, nil
}
