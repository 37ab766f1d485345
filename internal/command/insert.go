package command

import (
	"github.com/dshills/synless/internal/cursor"
	"github.com/dshills/synless/internal/doc"
	"github.com/dshills/synless/internal/edit"
	"github.com/dshills/synless/internal/errs"
	"github.com/dshills/synless/internal/lang"
	"github.com/dshills/synless/internal/store"
)

// Insert places a fresh node of construct ct at the cursor (spec
// §4.5). The cursor must be on a Hole (Fixed slot), in a Listy
// context, or on an empty-list TreeBefore position. On success the
// cursor lands on the newly created node itself (the deterministic
// choice resolved by the spec's Open Question (a)).
func Insert(d *doc.Document, ct *lang.Construct) error {
	c := d.Cursor()
	newNode := d.Store.Make(d.LangName, ct)

	log := d.Log()
	log.Begin()

	var err error
	switch c.Kind {
	case cursor.TreeBefore:
		err = log.Apply(&edit.InsertListItem{Parent: c.Parent, Index: 0, Child: newNode})
	case cursor.TreeOn:
		link, ok := d.Store.ParentOf(c.Node)
		if !ok {
			err = errs.Newf(errs.Navigation, "insert", "node %d has no parent", c.Node)
			break
		}
		v, _ := d.Store.Get(c.Node)
		pv, pok := d.Store.Get(link.Parent)
		switch {
		case v.IsHole && pok && pv.IsFixed:
			err = log.Apply(&edit.AttachAt{Parent: link.Parent, Slot: link.Slot, Child: newNode})
		case pok && pv.IsListy:
			err = log.Apply(&edit.InsertListItem{Parent: link.Parent, Index: link.Slot + 1, Child: newNode})
		default:
			err = errs.Newf(errs.Grammar, "insert", "cursor is not on a hole or list element")
		}
	default:
		err = errs.Newf(errs.Navigation, "insert", "cursor is not in a tree position")
	}

	if err != nil {
		_ = log.Abort()
		d.Store.FreeSubtree(newNode)
		return err
	}

	if err := log.Apply(&edit.MoveCursor{Old: c, New: cursor.OnNode(newNode)}); err != nil {
		_ = log.Abort()
		return err
	}
	log.Commit()
	return nil
}

// removalTarget resolves the parent/slot (or parent/index for Listy)
// that Backspace/Delete/Cut operate on, given a TreeOn cursor.
func removalTarget(d *doc.Document, node store.NodeID) (parent store.NodeID, slotOrIndex int, listy bool, err error) {
	link, ok := d.Store.ParentOf(node)
	if !ok || link.Parent == 0 {
		return 0, 0, false, errs.Newf(errs.Navigation, "remove", "node %d has no parent", node)
	}
	pv, ok := d.Store.Get(link.Parent)
	if !ok {
		return 0, 0, false, store.ErrNotFound
	}
	return link.Parent, link.Slot, pv.IsListy, nil
}
