package scripting

import "github.com/dshills/synless/internal/keymap"

// NewLayer implements new_layer(name).
func (h *Host) NewLayer(name string) *keymap.Layer { return keymap.NewLayer(name) }

// AddModeKeymap implements add_mode_keymap(layer, mode, km).
func (h *Host) AddModeKeymap(l *keymap.Layer, mode keymap.Mode, km *keymap.Keymap) {
	l.AddModeKeymap(mode, km)
}

// AddMenuKeymap implements add_menu_keymap(layer, menu_name, km).
func (h *Host) AddMenuKeymap(l *keymap.Layer, menuName string, km *keymap.Keymap) {
	l.AddMenuKeymap(menuName, km)
}

// RegisterLayer implements register_layer(layer): pushes a layer onto
// the active stack. A script's init-time-registered layers stay on the
// stack for the process lifetime; add_global_layer is an alias kept
// for the common case of a single base layer.
func (h *Host) RegisterLayer(l *keymap.Layer) { h.Layers.Push(l) }

// AddGlobalLayer implements add_global_layer(layer).
func (h *Host) AddGlobalLayer(l *keymap.Layer) { h.Layers.Push(l) }

// PopLayer implements the layer-stack pop half of push/pop (spec
// §4.7): removes the topmost layer, such as a completed menu's
// temporary layer.
func (h *Host) PopLayer() (*keymap.Layer, bool) { return h.Layers.Pop() }
