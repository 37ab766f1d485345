package scripting

import (
	"github.com/dshills/synless/internal/cursor"
	"github.com/dshills/synless/internal/errs"
	"github.com/dshills/synless/internal/search"
)

// SearchForSubstring implements search_for_substring(pattern,
// case_sensitive).
func (h *Host) SearchForSubstring(pattern string, caseSensitive bool) error {
	return h.Search.SetQuery(search.Query{
		Target:        search.TargetSubstring,
		Pattern:       pattern,
		CaseSensitive: caseSensitive,
	})
}

// SearchForRegex implements search_for_regex(pattern, case_sensitive).
func (h *Host) SearchForRegex(pattern string, caseSensitive bool) error {
	return h.Search.SetQuery(search.Query{
		Target:        search.TargetRegex,
		Pattern:       pattern,
		CaseSensitive: caseSensitive,
	})
}

// SearchForConstruct implements search_for_construct(name).
func (h *Host) SearchForConstruct(name string) error {
	return h.Search.SetQuery(search.Query{Target: search.TargetConstruct, Construct: name})
}

// SearchForNodeAtCursor implements search_for_node_at_cursor():
// structural search for the subtree currently under the cursor.
func (h *Host) SearchForNodeAtCursor() error {
	c := h.Active.Cursor()
	if c.Kind != cursor.TreeOn {
		return errs.Newf(errs.Navigation, "search_for_node_at_cursor", "cursor is not on a node")
	}
	return h.Search.SetQuery(search.Query{Target: search.TargetStructural, Reference: c.Node})
}

// SearchNext implements search_next(): advances the cursor to the next
// match after the current position.
func (h *Host) SearchNext() error {
	c := h.Active.Cursor()
	id, ok := h.Search.Next(h.Active.Root, c.Node)
	if !ok {
		return errs.Newf(errs.NotFound, "search_next", "no further matches")
	}
	h.Active.SetCursor(cursor.OnNode(id))
	return nil
}

// SearchPrev implements search_prev().
func (h *Host) SearchPrev() error {
	c := h.Active.Cursor()
	id, ok := h.Search.Prev(h.Active.Root, c.Node)
	if !ok {
		return errs.Newf(errs.NotFound, "search_prev", "no prior matches")
	}
	h.Active.SetCursor(cursor.OnNode(id))
	return nil
}

// SearchHighlightOff implements search_highlight_off().
func (h *Host) SearchHighlightOff() {
	h.Search.ClearHighlight()
}
