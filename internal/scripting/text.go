package scripting

import (
	"github.com/dshills/synless/internal/command"
	"github.com/dshills/synless/internal/cursor"
)

// TreeEdEnterText implements tree_ed_enter_text(): switches from tree
// mode into text mode on the current node.
func (h *Host) TreeEdEnterText() error {
	next, err := cursor.EnterText(h.Active.Store, h.Active.Cursor())
	if err != nil {
		return err
	}
	h.Active.SetCursor(next)
	return nil
}

// TextNavExit implements text_nav_exit(): leaves text mode back onto
// the enclosing node.
func (h *Host) TextNavExit() error {
	next, err := cursor.ExitText(h.Active.Cursor())
	if err != nil {
		return err
	}
	h.Active.SetCursor(next)
	return nil
}

// TextNavLeft implements text_nav_left().
func (h *Host) TextNavLeft() error {
	next, err := cursor.TextLeft(h.Active.Store, h.Active.Cursor())
	if err != nil {
		return err
	}
	h.Active.SetCursor(next)
	return nil
}

// TextNavRight implements text_nav_right().
func (h *Host) TextNavRight() error {
	next, err := cursor.TextRight(h.Active.Store, h.Active.Cursor())
	if err != nil {
		return err
	}
	h.Active.SetCursor(next)
	return nil
}

// TextEdInsert implements text_ed_insert(s): inserts a string at the
// text cursor (this is also how an unmatched printable key is applied
// per spec §4.4).
func (h *Host) TextEdInsert(s string) error {
	return command.InsertText(h.Active, s)
}

// TextEdBackspace implements text_ed_backspace().
func (h *Host) TextEdBackspace() error {
	return command.TextBackspace(h.Active)
}

// TextEdDelete implements text_ed_delete().
func (h *Host) TextEdDelete() error {
	return command.TextDelete(h.Active)
}
