package scripting

import (
	"github.com/dshills/synless/internal/command"
	"github.com/dshills/synless/internal/cursor"
	"github.com/dshills/synless/internal/errs"
)

// TreeNavParent implements tree_nav_parent().
func (h *Host) TreeNavParent() error {
	next, err := cursor.Parent(h.Active.Store, h.Active.Cursor())
	if err != nil {
		return err
	}
	h.Active.SetCursor(next)
	return nil
}

// TreeNavFirstChild implements tree_nav_first_child().
func (h *Host) TreeNavFirstChild() error {
	next, err := cursor.FirstChild(h.Active.Store, h.Active.Cursor())
	if err != nil {
		return err
	}
	h.Active.SetCursor(next)
	return nil
}

// TreeNavLastChild implements tree_nav_last_child().
func (h *Host) TreeNavLastChild() error {
	next, err := cursor.LastChild(h.Active.Store, h.Active.Cursor())
	if err != nil {
		return err
	}
	h.Active.SetCursor(next)
	return nil
}

// TreeNavNext implements tree_nav_next() (next sibling).
func (h *Host) TreeNavNext() error {
	next, err := cursor.Next(h.Active.Store, h.Active.Cursor())
	if err != nil {
		return err
	}
	h.Active.SetCursor(next)
	return nil
}

// TreeNavPrev implements tree_nav_prev() (previous sibling).
func (h *Host) TreeNavPrev() error {
	next, err := cursor.Prev(h.Active.Store, h.Active.Cursor())
	if err != nil {
		return err
	}
	h.Active.SetCursor(next)
	return nil
}

// TreeNavFirst implements tree_nav_first() (first item of the
// enclosing list).
func (h *Host) TreeNavFirst() error {
	next, err := cursor.First(h.Active.Store, h.Active.Cursor())
	if err != nil {
		return err
	}
	h.Active.SetCursor(next)
	return nil
}

// TreeNavLast implements tree_nav_last() (last item of the enclosing
// list).
func (h *Host) TreeNavLast() error {
	next, err := cursor.Last(h.Active.Store, h.Active.Cursor())
	if err != nil {
		return err
	}
	h.Active.SetCursor(next)
	return nil
}

// TreeNavNextLeaf implements tree_nav_next_leaf(): document-order walk
// to the next leaf position.
func (h *Host) TreeNavNextLeaf() error {
	next, err := cursor.NextLeaf(h.Active.Store, h.Active.Root, h.Active.Cursor())
	if err != nil {
		return err
	}
	h.Active.SetCursor(next)
	return nil
}

// TreeNavPrevLeaf implements tree_nav_prev_leaf().
func (h *Host) TreeNavPrevLeaf() error {
	next, err := cursor.PrevLeaf(h.Active.Store, h.Active.Root, h.Active.Cursor())
	if err != nil {
		return err
	}
	h.Active.SetCursor(next)
	return nil
}

// TreeEdInsert implements tree_ed_insert(construct): inserts a new
// node of the named construct at the cursor.
func (h *Host) TreeEdInsert(construct string) error {
	ct, ok := h.Lang.Construct(h.Active.LangName, construct)
	if !ok {
		return errs.Newf(errs.NotFound, "tree_ed_insert", "construct %q not found", construct)
	}
	return command.Insert(h.Active, ct)
}

// TreeEdRemove implements tree_ed_remove() (Backspace/Delete are
// identical at the tree level, per spec §4.5).
func (h *Host) TreeEdRemove() error {
	return command.Remove(h.Active)
}
