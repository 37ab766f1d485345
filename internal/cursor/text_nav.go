package cursor

import (
	"github.com/dshills/synless/internal/store"
	"github.com/dshills/synless/internal/text"
)

func textLenGraphemes(s string) int { return text.Len(s) }

// TextLeft moves a TextAt cursor one grapheme cluster to the left.
func TextLeft(s *store.Store, c Cursor) (Cursor, error) {
	if c.Kind != TextAt {
		return Cursor{}, navErr("text-left")
	}
	v, ok := s.Get(c.Node)
	if !ok || !v.IsTexty {
		return Cursor{}, navErr("text-left")
	}
	off := text.LeftOf(v.Text, c.Offset)
	_ = s.SetTextCursor(c.Node, off)
	return InText(c.Node, off), nil
}

// TextRight moves a TextAt cursor one grapheme cluster to the right.
func TextRight(s *store.Store, c Cursor) (Cursor, error) {
	if c.Kind != TextAt {
		return Cursor{}, navErr("text-right")
	}
	v, ok := s.Get(c.Node)
	if !ok || !v.IsTexty {
		return Cursor{}, navErr("text-right")
	}
	off := text.RightOf(v.Text, c.Offset)
	_ = s.SetTextCursor(c.Node, off)
	return InText(c.Node, off), nil
}
