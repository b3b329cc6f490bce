package marley

import (
	"fmt"
	"strings"
)

// Matcher is a predicate over a single input token, used as the payload of a
// terminal Symbol. Error returns a short, human-readable label describing
// what the matcher expects; it is used to assemble "expected one of ..."
// diagnostics when scanning fails (see marleyerr.UnexpectedToken).
//
// Matchers must be value-like: two matchers built from equal arguments must
// report themselves equal, or state-set deduplication (and therefore
// termination on recursive grammars) breaks. Matcher implementations are
// responsible for their own equality; the engine never compares matchers by
// identity.
type Matcher interface {
	Matches(token any) bool
	Error() string

	// equalTo reports whether other is a matcher built from the same
	// arguments as this one. It is unexported because callers outside this
	// package have no business comparing matchers; only the chart's
	// dedup logic needs it.
	equalTo(other Matcher) bool
}

func matchersEqual(a, b Matcher) bool {
	return a.equalTo(b)
}

// TaggedToken is implemented by token types that carry a string tag as
// their leading component. Tag matches such a token by comparing its Tag()
// against the tag the matcher was built with. This is the Go expression of
// the "token is a pair whose first field equals t" rule: rather than
// reaching into an arbitrary pair type by reflection, the caller's token
// type says so itself.
type TaggedToken interface {
	Tag() string
}

type exactMatcher struct {
	value any
}

// Exactly returns a Matcher that matches a token iff it equals value under
// ==. If value's type is not comparable, Matches panics when given a token
// of that same type, exactly as comparing two incomparable values with ==
// would; tokens of any other type simply do not match.
func Exactly(value any) Matcher {
	return exactMatcher{value: value}
}

func (m exactMatcher) Matches(token any) bool {
	return token == m.value
}

func (m exactMatcher) Error() string {
	return fmt.Sprintf("exactly %v", m.value)
}

func (m exactMatcher) equalTo(other Matcher) bool {
	o, ok := other.(exactMatcher)
	return ok && o.value == m.value
}

type tagMatcher struct {
	tag string
}

// Tag returns a Matcher that matches a token iff the token is the string
// name, or the token implements TaggedToken and its Tag() equals name.
func Tag(name string) Matcher {
	return tagMatcher{tag: name}
}

func (m tagMatcher) Matches(token any) bool {
	switch t := token.(type) {
	case string:
		return t == m.tag
	case TaggedToken:
		return t.Tag() == m.tag
	default:
		return false
	}
}

func (m tagMatcher) Error() string {
	return "tag " + m.tag
}

func (m tagMatcher) equalTo(other Matcher) bool {
	o, ok := other.(tagMatcher)
	return ok && o.tag == m.tag
}

type oneOfMatcher struct {
	matchers []Matcher
}

// OneOf returns a Matcher that matches a token iff any of matchers does. Its
// label joins the children's labels with " or ". OneOf with no matchers
// never matches anything.
func OneOf(matchers ...Matcher) Matcher {
	cp := append([]Matcher(nil), matchers...)
	return oneOfMatcher{matchers: cp}
}

func (m oneOfMatcher) Matches(token any) bool {
	for _, child := range m.matchers {
		if child.Matches(token) {
			return true
		}
	}
	return false
}

func (m oneOfMatcher) Error() string {
	labels := make([]string, len(m.matchers))
	for i, child := range m.matchers {
		labels[i] = child.Error()
	}
	return strings.Join(labels, " or ")
}

func (m oneOfMatcher) equalTo(other Matcher) bool {
	o, ok := other.(oneOfMatcher)
	if !ok || len(o.matchers) != len(m.matchers) {
		return false
	}
	for i := range m.matchers {
		if !matchersEqual(m.matchers[i], o.matchers[i]) {
			return false
		}
	}
	return true
}

type predicateMatcher struct {
	label string
	fn    func(token any) bool
}

// Predicate returns a Matcher that matches a token iff fn(token) is true.
// Because fn cannot be compared for equality, two Predicate matchers are
// considered equal (for dedup purposes) iff they share the same label;
// callers that build distinct predicates must give them distinct labels, or
// the chart will conflate them.
func Predicate(label string, fn func(token any) bool) Matcher {
	return predicateMatcher{label: label, fn: fn}
}

func (m predicateMatcher) Matches(token any) bool {
	return m.fn(token)
}

func (m predicateMatcher) Error() string {
	return m.label
}

func (m predicateMatcher) equalTo(other Matcher) bool {
	o, ok := other.(predicateMatcher)
	return ok && o.label == m.label
}
