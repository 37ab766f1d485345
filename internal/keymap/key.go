package keymap

import "strings"

// Modifier is a bitmask of held modifier keys.
type Modifier int

const (
	Ctrl Modifier = 1 << iota
	Alt
	Shift
	Meta
)

// KeySpec identifies one key event: a modifier mask plus a code (a
// printable rune as a one-rune string, or a named key like "Enter",
// "Esc", "Tab", "Backspace", arrows, function keys).
type KeySpec struct {
	Mods Modifier
	Code string
}

// String renders a KeySpec in "ctrl+alt+x" form, for display and log
// output (Keymap bindings are keyed by the KeySpec value itself).
func (k KeySpec) String() string {
	var b strings.Builder
	if k.Mods&Ctrl != 0 {
		b.WriteString("ctrl+")
	}
	if k.Mods&Alt != 0 {
		b.WriteString("alt+")
	}
	if k.Mods&Shift != 0 {
		b.WriteString("shift+")
	}
	if k.Mods&Meta != 0 {
		b.WriteString("meta+")
	}
	b.WriteString(k.Code)
	return b.String()
}

// Printable reports whether this key, unmatched by any binding, should
// be treated as literal text input (spec §4.7 dispatch rule for Text
// mode): a single rune with no Ctrl/Alt/Meta held.
func (k KeySpec) Printable() bool {
	if k.Mods&(Ctrl|Alt|Meta) != 0 {
		return false
	}
	return len([]rune(k.Code)) == 1
}
