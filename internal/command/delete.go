package command

import (
	"github.com/dshills/synless/internal/cursor"
	"github.com/dshills/synless/internal/doc"
	"github.com/dshills/synless/internal/edit"
	"github.com/dshills/synless/internal/errs"
	"github.com/dshills/synless/internal/store"
)

// Remove implements Backspace/Delete (spec §4.5): the spec describes
// both keys as the same tree operation, differing only in which key
// triggers them. If the cursor's parent slot is Fixed, the node is
// replaced with a Hole and the detached subtree is retained by the
// Edit Log (not moved to any register). If the parent is Listy, the
// element is removed and the cursor follows the element that took its
// place, or moves to TreeBefore if the list becomes empty.
func Remove(d *doc.Document) error {
	c := d.Cursor()
	if c.Kind != cursor.TreeOn {
		return errs.Newf(errs.Navigation, "remove", "cursor is not on a node")
	}
	parent, slot, listy, err := removalTarget(d, c.Node)
	if err != nil {
		return err
	}

	log := d.Log()
	log.Begin()

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
		log.Commit()
		return nil
	}

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
	log.Commit()
	return nil
}

// Backspace is an alias for Remove (spec §4.5 treats Backspace and
// Delete identically at the tree-editing level).
func Backspace(d *doc.Document) error { return Remove(d) }

// Delete is an alias for Remove.
func Delete(d *doc.Document) error { return Remove(d) }

func nextAfterRemoval(d *doc.Document, parent store.NodeID, index int) cursor.Cursor {
	pv, _ := d.Store.Get(parent)
	if len(pv.Items) == 0 {
		return cursor.BeforeEmptyList(parent)
	}
	if index < len(pv.Items) {
		return cursor.OnNode(pv.Items[index])
	}
	return cursor.OnNode(pv.Items[len(pv.Items)-1])
}
