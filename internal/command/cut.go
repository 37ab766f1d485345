package command

import (
	"github.com/dshills/synless/internal/cursor"
	"github.com/dshills/synless/internal/doc"
	"github.com/dshills/synless/internal/edit"
	"github.com/dshills/synless/internal/errs"
	"github.com/dshills/synless/internal/store"
)

// Cut removes the subtree at the cursor like Remove, but pushes the
// detached subtree onto the cut register instead of letting it live
// only in the undo log (spec §4.5). Cutting a Hole is a no-op.
func Cut(d *doc.Document) error {
	c := d.Cursor()
	if c.Kind != cursor.TreeOn {
		return errs.Newf(errs.Navigation, "cut", "cursor is not on a node")
	}
	v, ok := d.Store.Get(c.Node)
	if !ok {
		return errs.New(errs.NotFound, "cut", nil)
	}
	if v.IsHole {
		return nil
	}

	parent, slot, listy, err := removalTarget(d, c.Node)
	if err != nil {
		return err
	}

	log := d.Log()
	log.Begin()

	var cut = c.Node
	if listy {
		if err := log.Apply(&edit.RemoveListItem{Parent: parent, Index: slot}); err != nil {
			_ = log.Abort()
			return err
		}
		newCursor := nextAfterRemoval(d, parent, slot)
		if err := log.Apply(&edit.MoveCursor{Old: c, New: newCursor}); err != nil {
			_ = log.Abort()
			return err
		}
	} else {
		if err := log.Apply(&edit.DetachFrom{Parent: parent, Slot: slot}); err != nil {
			_ = log.Abort()
			return err
		}
		pv, _ := d.Store.Get(parent)
		newCursor := cursor.OnNode(pv.Children[slot])
		if err := log.Apply(&edit.MoveCursor{Old: c, New: newCursor}); err != nil {
			_ = log.Abort()
			return err
		}
	}
	log.Commit()
	d.PushCut(cut)
	return nil
}

// Copy clones the subtree at the cursor (re-allocating fresh node-ids,
// spec §4.5) onto the cut register, without disturbing the document.
func Copy(d *doc.Document) error {
	c := d.Cursor()
	if c.Kind != cursor.TreeOn {
		return errs.Newf(errs.Navigation, "copy", "cursor is not on a node")
	}
	clone, err := d.Store.Clone(c.Node)
	if err != nil {
		return err
	}
	d.PushCut(clone)
	return nil
}

// attachPasted attaches node into the cursor's position following
// Insert's placement rules: Fixed slot replaces a Hole only, Listy
// inserts after the current element, TreeBefore inserts at index 0.
func attachPasted(d *doc.Document, c cursor.Cursor, node store.NodeID) (err error) {
	log := d.Log()
	switch c.Kind {
	case cursor.TreeBefore:
		return log.Apply(&edit.InsertListItem{Parent: c.Parent, Index: 0, Child: node})
	case cursor.TreeOn:
		link, ok := d.Store.ParentOf(c.Node)
		if !ok {
			return errs.Newf(errs.Navigation, "paste", "node %d has no parent", c.Node)
		}
		v, _ := d.Store.Get(c.Node)
		pv, pok := d.Store.Get(link.Parent)
		switch {
		case v.IsHole && pok && pv.IsFixed:
			return log.Apply(&edit.AttachAt{Parent: link.Parent, Slot: link.Slot, Child: node})
		case pok && pv.IsListy:
			return log.Apply(&edit.InsertListItem{Parent: link.Parent, Index: link.Slot + 1, Child: node})
		default:
			return errs.Newf(errs.Grammar, "paste", "cursor is not on a hole or list element")
		}
	default:
		return errs.Newf(errs.Navigation, "paste", "cursor is not in a tree position")
	}
}

// Paste pops the cut register and attaches it at the cursor. On
// grammar failure the register is left unchanged.
func Paste(d *doc.Document) error {
	top, ok := d.PeekCut()
	if !ok {
		return errs.Newf(errs.NotFound, "paste", "cut register is empty")
	}
	c := d.Cursor()

	log := d.Log()
	log.Begin()
	if err := attachPasted(d, c, top); err != nil {
		_ = log.Abort()
		return err
	}
	if err := log.Apply(&edit.MoveCursor{Old: c, New: cursor.OnNode(top)}); err != nil {
		_ = log.Abort()
		return err
	}
	log.Commit()
	d.PopCut()
	return nil
}

// PasteSwap atomically exchanges the node at the cursor with the top
// of the cut register, subject to sort acceptance on both ends.
func PasteSwap(d *doc.Document) error {
	top, ok := d.PeekCut()
	if !ok {
		return errs.Newf(errs.NotFound, "paste-swap", "cut register is empty")
	}
	c := d.Cursor()
	if c.Kind != cursor.TreeOn {
		return errs.Newf(errs.Navigation, "paste-swap", "cursor is not on a node")
	}
	link, ok := d.Store.ParentOf(c.Node)
	if !ok {
		return errs.Newf(errs.Navigation, "paste-swap", "node %d has no parent", c.Node)
	}
	pv, ok := d.Store.Get(link.Parent)
	if !ok {
		return errs.New(errs.NotFound, "paste-swap", nil)
	}

	log := d.Log()
	log.Begin()

	var old store.NodeID
	if pv.IsFixed {
		p := &edit.ReplaceAt{Parent: link.Parent, Slot: link.Slot, New: top}
		if err := log.Apply(p); err != nil {
			_ = log.Abort()
			return err
		}
		old = p.Old
	} else {
		rm := &edit.RemoveListItem{Parent: link.Parent, Index: link.Slot}
		if err := log.Apply(rm); err != nil {
			_ = log.Abort()
			return err
		}
		if err := log.Apply(&edit.InsertListItem{Parent: link.Parent, Index: link.Slot, Child: top}); err != nil {
			_ = log.Abort()
			return err
		}
		old = rm.Child
	}

	if err := log.Apply(&edit.MoveCursor{Old: c, New: cursor.OnNode(top)}); err != nil {
		_ = log.Abort()
		return err
	}
	log.Commit()
	d.SwapCutTop(old)
	return nil
}
