package command

import "github.com/dshills/synless/internal/doc"

// Undo reverses the most recently committed undo group and restores
// the cursor to that group's pre-edit position (spec §4.5).
func Undo(d *doc.Document) (bool, error) {
	return d.Log().Undo()
}

// Redo re-applies the most recently undone group.
func Redo(d *doc.Document) (bool, error) {
	return d.Log().Redo()
}
