package edit

import (
	"github.com/dshills/synless/internal/cursor"
	"github.com/dshills/synless/internal/errs"
	"github.com/dshills/synless/internal/store"
)

// Primitive is a single reversible edit (spec §4.3). Do and Undo are
// called repeatedly as the user moves through the undo/redo stack, the
// same Execute/Undo shape keystorm's history.Command uses.
type Primitive interface {
	// Do applies the primitive in its forward direction.
	Do(env *Env) error
	// Undo applies the primitive's inverse.
	Undo(env *Env) error
	// Detached reports the node this primitive currently holds detached
	// from the tree — whichever payload its *last-applied* direction
	// evicted, Do's or Undo's — and whether one exists. Called for
	// undo-log GC (spec §3 Lifecycles) only after a group has settled on
	// one direction (pushed onto the undo or redo stack), so it always
	// reflects the tree's actual current state, not just Do's.
	Detached() (store.NodeID, bool)
}

// AttachAt attaches Child into parent's Fixed slot, which must
// currently hold a Hole. Its inverse is DetachFrom. Undo restores the
// exact displaced Hole id (via AttachReplacing/ReplaceAt) rather than a
// freshly minted one, so a cursor resolved to that Hole before the
// attach stays valid after undo.
type AttachAt struct {
	Parent store.NodeID
	Slot   int
	Child  store.NodeID

	Hole    store.NodeID // the Hole displaced by Do; populated by Do
	forward bool         // true once Do has run more recently than Undo
}

func (p *AttachAt) Do(env *Env) error {
	sort, err := env.slotSort(p.Parent, p.Slot)
	if err != nil {
		return errs.New(errs.Navigation, "attach", err)
	}
	ok, err := env.accepts(p.Parent, sort, p.Child)
	if err != nil {
		return errs.New(errs.Navigation, "attach", err)
	}
	if !ok {
		return errs.Newf(errs.Grammar, "attach", "construct not accepted in sort %q", sort)
	}
	hole, err := env.Store.AttachReplacing(p.Parent, p.Slot, p.Child)
	if err != nil {
		return errs.New(errs.Grammar, "attach", err)
	}
	p.Hole = hole
	p.forward = true
	return nil
}

func (p *AttachAt) Undo(env *Env) error {
	_, err := env.Store.ReplaceAt(p.Parent, p.Slot, p.Hole)
	if err != nil {
		return err
	}
	p.forward = false
	return nil
}

func (p *AttachAt) Detached() (store.NodeID, bool) {
	if p.forward {
		return p.Hole, p.Hole != 0
	}
	return p.Child, p.Child != 0
}

// DetachFrom removes the child from parent's Fixed slot, replacing it
// with a fresh Hole. Its inverse is AttachAt.
type DetachFrom struct {
	Parent store.NodeID
	Slot   int
	Child  store.NodeID // populated by Do

	forward bool // true once Do has run more recently than Undo
}

func (p *DetachFrom) Do(env *Env) error {
	child, err := env.Store.Detach(p.Parent, p.Slot)
	if err != nil {
		return err
	}
	p.Child = child
	p.forward = true
	return nil
}

func (p *DetachFrom) Undo(env *Env) error {
	if err := env.Store.Attach(p.Parent, p.Slot, p.Child); err != nil {
		return err
	}
	p.forward = false
	return nil
}

func (p *DetachFrom) Detached() (store.NodeID, bool) {
	if p.forward {
		return p.Child, p.Child != 0
	}
	return 0, false
}

// ReplaceAt swaps parent's Fixed slot occupant (Hole or not) for New,
// returning the prior occupant as Old. Self-inverse: applying it again
// with New:=Old swaps back.
type ReplaceAt struct {
	Parent store.NodeID
	Slot   int
	New    store.NodeID
	Old    store.NodeID // populated by Do

	forward bool // true once Do has run more recently than Undo
}

func (p *ReplaceAt) Do(env *Env) error {
	sort, err := env.slotSort(p.Parent, p.Slot)
	if err != nil {
		return errs.New(errs.Navigation, "replace", err)
	}
	ok, err := env.accepts(p.Parent, sort, p.New)
	if err != nil {
		return errs.New(errs.Navigation, "replace", err)
	}
	if !ok {
		return errs.Newf(errs.Grammar, "replace", "construct not accepted in sort %q", sort)
	}
	old, err := env.Store.ReplaceAt(p.Parent, p.Slot, p.New)
	if err != nil {
		return err
	}
	p.Old = old
	p.forward = true
	return nil
}

func (p *ReplaceAt) Undo(env *Env) error {
	_, err := env.Store.ReplaceAt(p.Parent, p.Slot, p.Old)
	if err != nil {
		return err
	}
	p.forward = false
	return nil
}

func (p *ReplaceAt) Detached() (store.NodeID, bool) {
	if p.forward {
		return p.Old, p.Old != 0
	}
	return p.New, p.New != 0
}

// InsertListItem inserts Child at Index in a Listy node. Its inverse is
// RemoveListItem.
type InsertListItem struct {
	Parent store.NodeID
	Index  int
	Child  store.NodeID

	forward bool // true once Do has run more recently than Undo
}

func (p *InsertListItem) Do(env *Env) error {
	sort, err := env.listSort(p.Parent)
	if err != nil {
		return errs.New(errs.Navigation, "insert-item", err)
	}
	ok, err := env.accepts(p.Parent, sort, p.Child)
	if err != nil {
		return errs.New(errs.Navigation, "insert-item", err)
	}
	if !ok {
		return errs.Newf(errs.Grammar, "insert-item", "construct not accepted in sort %q", sort)
	}
	if err := env.Store.InsertListItem(p.Parent, p.Index, p.Child); err != nil {
		return err
	}
	p.forward = true
	return nil
}

func (p *InsertListItem) Undo(env *Env) error {
	_, err := env.Store.RemoveListItem(p.Parent, p.Index)
	if err != nil {
		return err
	}
	p.forward = false
	return nil
}

func (p *InsertListItem) Detached() (store.NodeID, bool) {
	if p.forward {
		return 0, false
	}
	return p.Child, p.Child != 0
}

// RemoveListItem removes the element at Index from a Listy node. Its
// inverse is InsertListItem.
type RemoveListItem struct {
	Parent store.NodeID
	Index  int
	Child  store.NodeID // populated by Do

	forward bool // true once Do has run more recently than Undo
}

func (p *RemoveListItem) Do(env *Env) error {
	child, err := env.Store.RemoveListItem(p.Parent, p.Index)
	if err != nil {
		return err
	}
	p.Child = child
	p.forward = true
	return nil
}

func (p *RemoveListItem) Undo(env *Env) error {
	if err := env.Store.InsertListItem(p.Parent, p.Index, p.Child); err != nil {
		return err
	}
	p.forward = false
	return nil
}

func (p *RemoveListItem) Detached() (store.NodeID, bool) {
	if p.forward {
		return p.Child, p.Child != 0
	}
	return 0, false
}

// SetText replaces a Texty node's text payload.
type SetText struct {
	Node    store.NodeID
	OldText string
	NewText string
}

func (p *SetText) Do(env *Env) error   { return env.Store.SetText(p.Node, p.NewText) }
func (p *SetText) Undo(env *Env) error { return env.Store.SetText(p.Node, p.OldText) }
func (p *SetText) Detached() (store.NodeID, bool) { return 0, false }

// MoveTextCursor moves the text-mode cursor offset within a Texty node.
type MoveTextCursor struct {
	Node   store.NodeID
	OldOff int
	NewOff int
}

func (p *MoveTextCursor) Do(env *Env) error   { return env.Store.SetTextCursor(p.Node, p.NewOff) }
func (p *MoveTextCursor) Undo(env *Env) error { return env.Store.SetTextCursor(p.Node, p.OldOff) }
func (p *MoveTextCursor) Detached() (store.NodeID, bool) { return 0, false }

// MoveCursor records a document cursor transition.
type MoveCursor struct {
	Old cursor.Cursor
	New cursor.Cursor
}

func (p *MoveCursor) Do(env *Env) error {
	*env.Cursor = p.New
	return nil
}

func (p *MoveCursor) Undo(env *Env) error {
	*env.Cursor = p.Old
	return nil
}

func (p *MoveCursor) Detached() (store.NodeID, bool) { return 0, false }

// SetBookmark records a bookmark table change. A zero NodeID means "no
// bookmark" (deletion).
type SetBookmark struct {
	Char rune
	Old  store.NodeID
	New  store.NodeID
}

func (p *SetBookmark) Do(env *Env) error {
	setBookmark(env.Bookmarks, p.Char, p.New)
	return nil
}

func (p *SetBookmark) Undo(env *Env) error {
	setBookmark(env.Bookmarks, p.Char, p.Old)
	return nil
}

func (p *SetBookmark) Detached() (store.NodeID, bool) { return 0, false }

func setBookmark(table map[rune]store.NodeID, char rune, id store.NodeID) {
	if id == 0 {
		delete(table, char)
		return
	}
	table[char] = id
}
