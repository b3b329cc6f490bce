package marley

import "reflect"

// item is the element of a state set (spec: EarleyItem): the nonterminal
// being recognized, the suffix of its production still to be matched, the
// chart index recognition began at, and the partial parse tree accumulated
// so far. tree's first element is always head; the rest are children, each
// either a scanned token or a completed subtree (itself a []any in the same
// shape).
type item struct {
	head      string
	remaining Production
	origin    int
	tree      []any
}

// complete reports whether the item's production has been fully matched.
func (it *item) complete() bool {
	return len(it.remaining) == 0
}

// next returns the first unmatched symbol. Callers must only call this when
// !it.complete().
func (it *item) next() Symbol {
	return it.remaining[0]
}

// equal implements the state-set membership test: two items are the same
// iff all four fields match, trees included (spec §3). Trees are compared
// structurally because they hold a mix of caller-supplied tokens and nested
// []any subtrees, which the caller's token type isn't guaranteed to support
// == over.
func (it *item) equal(other *item) bool {
	return it.head == other.head &&
		it.origin == other.origin &&
		productionsEqual(it.remaining, other.remaining) &&
		reflect.DeepEqual(it.tree, other.tree)
}

// withChild returns a new item advancing past the first remaining symbol,
// appending child to the accumulated tree. The receiver is left untouched:
// items are shared across many derived items (spec §9), so mutating in
// place would corrupt whichever other item still references this one's
// tree.
func (it *item) withChild(child any) *item {
	tree := make([]any, len(it.tree), len(it.tree)+1)
	copy(tree, it.tree)
	tree = append(tree, child)
	return &item{
		head:      it.head,
		remaining: it.remaining[1:],
		origin:    it.origin,
		tree:      tree,
	}
}
