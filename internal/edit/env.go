package edit

import (
	"github.com/dshills/synless/internal/cursor"
	"github.com/dshills/synless/internal/lang"
	"github.com/dshills/synless/internal/store"
)

// Env is the mutable state a primitive applies against: the node
// store, the language registry used to validate attachments, the
// document's single cursor, and its bookmark table. Document owns the
// concrete values and hands pointers/maps to the Log so primitives can
// mutate them in place.
type Env struct {
	Store     *store.Store
	Lang      *lang.Registry
	LangName  string
	Cursor    *cursor.Cursor
	Bookmarks map[rune]store.NodeID
}

// slotSort returns the sort name declared for a Fixed slot.
func (e *Env) slotSort(parent store.NodeID, slot int) (string, error) {
	pv, ok := e.Store.Get(parent)
	if !ok {
		return "", store.ErrNotFound
	}
	ct, ok := e.Lang.Construct(e.LangName, pv.Construct)
	if !ok {
		return "", store.ErrNotFound
	}
	if ct.Arity.Kind != lang.Fixed || slot < 0 || slot >= len(ct.Arity.Slots) {
		return "", store.ErrSlotRange
	}
	return ct.Arity.Slots[slot], nil
}

// listSort returns the sort name declared for a Listy node's elements.
func (e *Env) listSort(parent store.NodeID) (string, error) {
	pv, ok := e.Store.Get(parent)
	if !ok {
		return "", store.ErrNotFound
	}
	ct, ok := e.Lang.Construct(e.LangName, pv.Construct)
	if !ok {
		return "", store.ErrNotFound
	}
	if ct.Arity.Kind != lang.Listy {
		return "", store.ErrNotListy
	}
	return ct.Arity.ListSort, nil
}

// accepts reports whether candidate may occupy a slot of the given
// sort. Holes are always accepted (spec §3: "a well-typed placeholder
// ... satisfying any sort").
func (e *Env) accepts(parent store.NodeID, sort string, candidate store.NodeID) (bool, error) {
	cv, ok := e.Store.Get(candidate)
	if !ok {
		return false, store.ErrNotFound
	}
	if cv.IsHole {
		return true, nil
	}
	pv, ok := e.Store.Get(parent)
	if !ok {
		return false, store.ErrNotFound
	}
	return e.Lang.Accepts(e.LangName, pv.Construct, sort, cv.Construct), nil
}
