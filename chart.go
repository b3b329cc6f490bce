package marley

// stateSet holds the items associated with a single chart position. It
// dedups on insertion, which is what keeps the engine from looping forever
// on a left-recursive grammar: the same item can only ever be enqueued once.
type stateSet struct {
	items []*item
}

func (s *stateSet) contains(candidate *item) bool {
	for _, it := range s.items {
		if it.equal(candidate) {
			return true
		}
	}
	return false
}

func (s *stateSet) add(candidate *item) bool {
	if s.contains(candidate) {
		return false
	}
	s.items = append(s.items, candidate)
	return true
}

// chart is the ordered sequence of state sets that makes up a parse in
// progress. State set k describes every parse consistent with the first k
// input tokens. A chart grows by exactly one state set per accepted token;
// growth is the only mutation it ever undergoes, so a position once written
// is never invalidated by a later one (spec §5's monotone-growth guarantee).
type chart struct {
	sets []*stateSet
}

func newChart() *chart {
	return &chart{}
}

// len returns the number of state sets the chart currently holds.
func (c *chart) len() int {
	return len(c.sets)
}

// ensure grows the chart, if necessary, so that set k exists.
func (c *chart) ensure(k int) {
	for len(c.sets) <= k {
		c.sets = append(c.sets, &stateSet{})
	}
}

// contains reports whether state set k already holds an item equal to it.
// A position past the end of the chart is treated as an empty set.
func (c *chart) contains(k int, it *item) bool {
	if k < 0 || k >= len(c.sets) {
		return false
	}
	return c.sets[k].contains(it)
}

// add inserts it into state set k, growing the chart as needed so that set
// k exists. Insertion is idempotent: adding an item already present is
// a no-op. add reports whether it was newly inserted.
func (c *chart) add(k int, it *item) bool {
	c.ensure(k)
	return c.sets[k].add(it)
}

// getSet returns the items of state set k, or nil if k is past the end of
// the chart.
func (c *chart) getSet(k int) []*item {
	if k < 0 || k >= len(c.sets) {
		return nil
	}
	return c.sets[k].items
}

// completedHead is one completed, origin-0 item found at a chart position:
// a candidate top-level parse.
type completedHead struct {
	head string
	tree []any
}

// completedHeadsAt returns every item in state set k that is complete and
// originated at position 0 — the candidates for "parse accepted after k
// tokens".
func (c *chart) completedHeadsAt(k int) []completedHead {
	var heads []completedHead
	for _, it := range c.getSet(k) {
		if it.complete() && it.origin == 0 {
			heads = append(heads, completedHead{head: it.head, tree: it.tree})
		}
	}
	return heads
}
