package scripting

import "github.com/dshills/synless/internal/command"

// Undo implements undo(). Returns false when the undo stack was
// empty, matching spec §4.2's "Undo/Redo have no effect, not an
// error" edge case.
func (h *Host) Undo() (bool, error) { return command.Undo(h.Active) }

// Redo implements redo().
func (h *Host) Redo() (bool, error) { return command.Redo(h.Active) }
