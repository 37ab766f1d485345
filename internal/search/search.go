package search

import (
	"regexp"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/dshills/synless/internal/errs"
	"github.com/dshills/synless/internal/store"
)

// Target selects what a Query matches against (spec §4.6).
type Target int

const (
	// TargetSubstring matches a literal substring within a Texty node's
	// text.
	TargetSubstring Target = iota
	// TargetRegex matches a regular expression against a Texty node's
	// text.
	TargetRegex
	// TargetStructural matches subtrees structurally equal to a
	// reference subtree (construct shape and text, ignoring node-ids).
	TargetStructural
	// TargetConstruct matches nodes of a specific construct name,
	// for jump-to-next-of-type.
	TargetConstruct
)

// Query describes one search request.
type Query struct {
	Target        Target
	Pattern       string      // TargetSubstring, TargetRegex
	CaseSensitive bool        // TargetSubstring, TargetRegex
	Construct     string      // TargetConstruct
	Reference     store.NodeID // TargetStructural
}

var foldCaser = cases.Fold()

// foldNormalize prepares s for case-insensitive, Unicode-normalized
// comparison.
func foldNormalize(s string) string {
	return norm.NFC.String(foldCaser.String(s))
}

// Searcher holds compiled query state and walks a Store depth-first
// from a starting node (spec §4.6: "a depth-first walk from the
// cursor"). Search never mutates the document.
type Searcher struct {
	store *store.Store
	query Query
	re    *regexp.Regexp
}

// New creates a Searcher bound to a Store.
func New(s *store.Store) *Searcher {
	return &Searcher{store: s}
}

// ReboundTo returns a fresh Searcher over a different Store, used when
// the scripting host switches its active document. Any in-progress
// query is dropped since node-ids from the old store are meaningless
// in the new one.
func (se *Searcher) ReboundTo(s *store.Store) *Searcher {
	return New(s)
}

// SetQuery installs a new query, compiling its regex if needed.
func (se *Searcher) SetQuery(q Query) error {
	se.query = q
	se.re = nil
	if q.Target == TargetRegex {
		pattern := q.Pattern
		if !q.CaseSensitive {
			pattern = "(?i)" + pattern
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return errs.New(errs.Parse, "search.set-query", err)
		}
		se.re = re
	}
	return nil
}

// ClearHighlight resets any active query so subsequent Next/Prev calls
// find nothing until a new query is set.
func (se *Searcher) ClearHighlight() {
	se.query = Query{}
	se.re = nil
}

func (se *Searcher) matches(id store.NodeID) bool {
	v, ok := se.store.Get(id)
	if !ok {
		return false
	}
	switch se.query.Target {
	case TargetSubstring:
		if !v.IsTexty {
			return false
		}
		if se.query.CaseSensitive {
			return containsRunes(v.Text, se.query.Pattern)
		}
		return containsRunes(foldNormalize(v.Text), foldNormalize(se.query.Pattern))
	case TargetRegex:
		return v.IsTexty && se.re != nil && se.re.MatchString(v.Text)
	case TargetConstruct:
		return v.Construct == se.query.Construct
	case TargetStructural:
		return se.query.Reference != 0 && se.structurallyEqual(id, se.query.Reference)
	default:
		return false
	}
}

func containsRunes(haystack, needle string) bool {
	if needle == "" {
		return false
	}
	hr, nr := []rune(haystack), []rune(needle)
	if len(nr) > len(hr) {
		return false
	}
	for i := 0; i+len(nr) <= len(hr); i++ {
		match := true
		for j := range nr {
			if hr[i+j] != nr[j] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// structurallyEqual compares two subtrees by construct shape and text,
// ignoring node-ids.
func (se *Searcher) structurallyEqual(a, b store.NodeID) bool {
	av, aok := se.store.Get(a)
	bv, bok := se.store.Get(b)
	if !aok || !bok {
		return false
	}
	if av.IsHole != bv.IsHole || av.Construct != bv.Construct {
		return false
	}
	if av.IsHole {
		return true
	}
	switch {
	case av.IsTexty:
		return av.Text == bv.Text
	case av.IsFixed:
		if len(av.Children) != len(bv.Children) {
			return false
		}
		for i := range av.Children {
			if !se.structurallyEqual(av.Children[i], bv.Children[i]) {
				return false
			}
		}
		return true
	case av.IsListy:
		if len(av.Items) != len(bv.Items) {
			return false
		}
		for i := range av.Items {
			if !se.structurallyEqual(av.Items[i], bv.Items[i]) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// order returns every node-id reachable from root, depth-first
// pre-order.
func (se *Searcher) order(root store.NodeID) []store.NodeID {
	var out []store.NodeID
	se.store.ForEachDescendant(root, func(id store.NodeID) { out = append(out, id) })
	return out
}

// Next returns the first match strictly after from in document order,
// walking depth-first from root.
func (se *Searcher) Next(root, from store.NodeID) (store.NodeID, bool) {
	order := se.order(root)
	idx := indexOf(order, from)
	for i := idx + 1; i < len(order); i++ {
		if se.matches(order[i]) {
			return order[i], true
		}
	}
	return 0, false
}

// Prev returns the first match strictly before from in document order.
func (se *Searcher) Prev(root, from store.NodeID) (store.NodeID, bool) {
	order := se.order(root)
	idx := indexOf(order, from)
	if idx < 0 {
		idx = len(order)
	}
	for i := idx - 1; i >= 0; i-- {
		if se.matches(order[i]) {
			return order[i], true
		}
	}
	return 0, false
}

func indexOf(order []store.NodeID, id store.NodeID) int {
	for i, v := range order {
		if v == id {
			return i
		}
	}
	return -1
}
