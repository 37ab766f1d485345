package scripting

import "github.com/dshills/synless/internal/command"

// SaveBookmark implements save_bookmark(char).
func (h *Host) SaveBookmark(char rune) error {
	return command.SaveBookmark(h.Active, char)
}

// GotoBookmark implements goto_bookmark(char).
func (h *Host) GotoBookmark(char rune) error {
	return command.GotoBookmark(h.Active, char)
}
