package command

import (
	"github.com/dshills/synless/internal/cursor"
	"github.com/dshills/synless/internal/doc"
	"github.com/dshills/synless/internal/edit"
	"github.com/dshills/synless/internal/errs"
	"github.com/dshills/synless/internal/text"
)

// InsertText implements the spec §4.4 "unmatched printable key appends
// via SetText" rule: inserts s at a TextAt cursor, moving the cursor
// past the inserted content.
func InsertText(d *doc.Document, s string) error {
	c := d.Cursor()
	if c.Kind != cursor.TextAt {
		return errs.Newf(errs.Navigation, "text-insert", "cursor is not in text mode")
	}
	old, err := d.Store.Text(c.Node)
	if err != nil {
		return errs.New(errs.NotFound, "text-insert", err)
	}
	newText, newOff := text.InsertAt(old, s, c.Offset)

	log := d.Log()
	log.Begin()
	if err := log.Apply(&edit.SetText{Node: c.Node, OldText: old, NewText: newText}); err != nil {
		_ = log.Abort()
		return err
	}
	next := cursor.InText(c.Node, newOff)
	if err := log.Apply(&edit.MoveTextCursor{Node: c.Node, OldOff: c.Offset, NewOff: newOff}); err != nil {
		_ = log.Abort()
		return err
	}
	if err := log.Apply(&edit.MoveCursor{Old: c, New: next}); err != nil {
		_ = log.Abort()
		return err
	}
	log.Commit()
	d.SetModified(true)
	return nil
}

// TextBackspace deletes the grapheme cluster before a TextAt cursor.
func TextBackspace(d *doc.Document) error {
	return textDelete(d, true)
}

// TextDelete deletes the grapheme cluster after a TextAt cursor.
func TextDelete(d *doc.Document) error {
	return textDelete(d, false)
}

func textDelete(d *doc.Document, backward bool) error {
	c := d.Cursor()
	if c.Kind != cursor.TextAt {
		return errs.Newf(errs.Navigation, "text-delete", "cursor is not in text mode")
	}
	old, err := d.Store.Text(c.Node)
	if err != nil {
		return errs.New(errs.NotFound, "text-delete", err)
	}

	var newText string
	var newOff int
	if backward {
		newText, newOff = text.DeleteBackward(old, c.Offset)
	} else {
		newText = text.DeleteForward(old, c.Offset)
		newOff = c.Offset
	}
	if newText == old {
		return nil
	}

	log := d.Log()
	log.Begin()
	if err := log.Apply(&edit.SetText{Node: c.Node, OldText: old, NewText: newText}); err != nil {
		_ = log.Abort()
		return err
	}
	next := cursor.InText(c.Node, newOff)
	if err := log.Apply(&edit.MoveTextCursor{Node: c.Node, OldOff: c.Offset, NewOff: newOff}); err != nil {
		_ = log.Abort()
		return err
	}
	if err := log.Apply(&edit.MoveCursor{Old: c, New: next}); err != nil {
		_ = log.Abort()
		return err
	}
	log.Commit()
	d.SetModified(true)
	return nil
}
