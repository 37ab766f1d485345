package command

import (
	"github.com/dshills/synless/internal/cursor"
	"github.com/dshills/synless/internal/doc"
	"github.com/dshills/synless/internal/edit"
	"github.com/dshills/synless/internal/errs"
)

// SaveBookmark stores the current cursor's node-id under char (spec
// §4.5). Pure navigation-table bookkeeping — the cursor is unaffected,
// so the primitive is applied in its own undo group.
func SaveBookmark(d *doc.Document, char rune) error {
	c := d.Cursor()
	if c.Node == 0 {
		return errs.Newf(errs.Navigation, "bookmark-save", "cursor is not on a node")
	}
	old, _ := d.Bookmark(char)

	log := d.Log()
	log.Begin()
	if err := log.Apply(&edit.SetBookmark{Char: char, Old: old, New: c.Node}); err != nil {
		_ = log.Abort()
		return err
	}
	log.Commit()
	return nil
}

// GotoBookmark moves the cursor to the node saved under char, failing
// with NotFound if no live node is associated with it.
func GotoBookmark(d *doc.Document, char rune) error {
	id, ok := d.Bookmark(char)
	if !ok {
		return errs.Newf(errs.NotFound, "bookmark-goto", "no live bookmark %q", string(char))
	}
	c := d.Cursor()

	log := d.Log()
	log.Begin()
	if err := log.Apply(&edit.MoveCursor{Old: c, New: cursor.OnNode(id)}); err != nil {
		_ = log.Abort()
		return err
	}
	log.Commit()
	return nil
}
