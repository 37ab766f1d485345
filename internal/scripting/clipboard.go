package scripting

import "github.com/dshills/synless/internal/command"

// Cut implements cut(): detaches the node under the cursor into the
// cut register.
func (h *Host) Cut() error { return command.Cut(h.Active) }

// Copy implements copy(): clones the node under the cursor onto the
// cut register without touching the Edit Log.
func (h *Host) Copy() error { return command.Copy(h.Active) }

// Paste implements paste(): attaches the top of the cut register at
// the cursor.
func (h *Host) Paste() error { return command.Paste(h.Active) }

// PasteSwap implements paste_swap(): replaces the node under the
// cursor with the top of the cut register, swapping the displaced
// node back onto the register.
func (h *Host) PasteSwap() error { return command.PasteSwap(h.Active) }
