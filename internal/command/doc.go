// Package command implements the Editing Commands (spec §4.5): Insert,
// Backspace, Delete, Cut, Copy, Paste, PasteSwap, Undo, Redo, and
// Bookmarks. Each command composes one or more internal/edit
// primitives inside a begin/commit undo group, mirroring how
// keystorm's history.Command implementations (InsertCommand,
// DeleteCommand, ReplaceCommand) are built from lower-level buffer
// operations.
package command
