package keymap

import "fmt"

// Mode is one of the three dispatch contexts (spec §4.7). In Menu mode,
// Menu carries the open menu's name so a Layer can bind a keymap to it
// specifically.
type Mode struct {
	Kind ModeKind
	Menu string // populated only when Kind == ModeMenu
}

// ModeKind distinguishes Tree/Text/Menu dispatch contexts.
type ModeKind int

const (
	ModeTree ModeKind = iota
	ModeText
	ModeMenu
)

func (m Mode) key() string {
	switch m.Kind {
	case ModeTree:
		return "tree"
	case ModeText:
		return "text"
	case ModeMenu:
		return "menu:" + m.Menu
	default:
		return fmt.Sprintf("mode(%d)", m.Kind)
	}
}

// Layer is a named bundle of keymaps, one per mode or menu name (spec
// §4.7: "{ mode → keymap, menu_name → keymap }").
type Layer struct {
	Name    string
	keymaps map[string]*Keymap
}

// NewLayer creates an empty, named Layer.
func NewLayer(name string) *Layer {
	return &Layer{Name: name, keymaps: make(map[string]*Keymap)}
}

// AddModeKeymap binds a keymap to a Tree/Text mode.
func (l *Layer) AddModeKeymap(mode Mode, km *Keymap) {
	l.keymaps[mode.key()] = km
}

// AddMenuKeymap binds a keymap to a named menu.
func (l *Layer) AddMenuKeymap(menuName string, km *Keymap) {
	l.keymaps[Mode{Kind: ModeMenu, Menu: menuName}.key()] = km
}

// Keymap returns the keymap bound to a mode in this layer, if any.
func (l *Layer) Keymap(mode Mode) (*Keymap, bool) {
	km, ok := l.keymaps[mode.key()]
	return km, ok
}

// Stack is the ordered layer stack; lookup walks it top-down, first
// match wins (spec §4.7). The stack is resolved at the instant of
// dispatch (spec §5): push/pop during a command takes effect for the
// next key, never the one being processed.
type Stack struct {
	layers []*Layer
}

// NewStack creates an empty layer stack.
func NewStack() *Stack { return &Stack{} }

// Push adds a layer on top of the stack.
func (s *Stack) Push(l *Layer) { s.layers = append(s.layers, l) }

// Pop removes the topmost layer, if any.
func (s *Stack) Pop() (*Layer, bool) {
	if len(s.layers) == 0 {
		return nil, false
	}
	l := s.layers[len(s.layers)-1]
	s.layers = s.layers[:len(s.layers)-1]
	return l, true
}

// Len reports the number of layers currently on the stack.
func (s *Stack) Len() int { return len(s.layers) }

// Resolve walks the stack top-down for the given mode and key,
// returning the first matching binding.
func (s *Stack) Resolve(mode Mode, key KeySpec) (Binding, bool) {
	for i := len(s.layers) - 1; i >= 0; i-- {
		km, ok := s.layers[i].Keymap(mode)
		if !ok {
			continue
		}
		if b, ok := km.Lookup(key); ok {
			return b, true
		}
	}
	return Binding{}, false
}

// ResolveKeymap returns the first layer's keymap bound to mode,
// top-down — used to reach candidate-mode state (RegularCandidates
// etc.) for the currently active menu.
func (s *Stack) ResolveKeymap(mode Mode) (*Keymap, bool) {
	for i := len(s.layers) - 1; i >= 0; i-- {
		if km, ok := s.layers[i].Keymap(mode); ok {
			return km, true
		}
	}
	return nil, false
}
