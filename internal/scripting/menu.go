package scripting

import (
	"context"
	"strings"

	"github.com/dshills/synless/internal/errs"
	"github.com/dshills/synless/internal/keymap"
)

// MakeMenu implements make_menu(name, kind).
func (h *Host) MakeMenu(name string, kind keymap.MenuKind) *keymap.Menu {
	m := keymap.NewMenu(name, kind)
	h.menus[name] = m
	return m
}

// SetMenuKindToCandidate implements set_menu_kind_to_candidate(name).
func (h *Host) SetMenuKindToCandidate(name string) error {
	m, ok := h.menus[name]
	if !ok {
		return errs.Newf(errs.NotFound, "set_menu_kind_to_candidate", "menu %q not found", name)
	}
	m.Kind = keymap.KindCandidate
	return nil
}

// SetMenuKindToInputString implements set_menu_kind_to_input_string(name).
func (h *Host) SetMenuKindToInputString(name string) error {
	m, ok := h.menus[name]
	if !ok {
		return errs.Newf(errs.NotFound, "set_menu_kind_to_input_string", "menu %q not found", name)
	}
	m.Kind = keymap.KindInputString
	return nil
}

// OpenMenu implements open_menu(name): makes the menu the currently
// blocking menu, so the engine dispatches keys in Menu mode in place of
// Tree mode (Text mode still takes precedence), then suspends the
// calling script frame until it is confirmed or canceled (spec §5's
// single suspension point).
func (h *Host) OpenMenu(ctx context.Context, name string) (any, error) {
	m, ok := h.menus[name]
	if !ok {
		return nil, errs.Newf(errs.NotFound, "open_menu", "menu %q not found", name)
	}
	h.openMenu = m
	payload, err := m.Block(ctx)
	h.openMenu = nil
	if err != nil {
		return nil, err
	}
	return payload, nil
}

// CloseMenu implements close_menu(): confirms the open menu with a nil
// payload, used when a script wants to dismiss a menu it opened without
// a selection having been made through the normal keymap path.
func (h *Host) CloseMenu() error {
	if h.openMenu == nil {
		return errs.Newf(errs.Script, "close_menu", "no menu is open")
	}
	h.openMenu.Confirm(nil)
	return nil
}

// SetMenuKeymap implements set_menu_keymap(menu, keymap): binds a
// keymap directly to a named menu, independent of the layer stack. This
// is the shortcut scripts use for a menu's own candidate list, as
// opposed to add_menu_keymap which binds a keymap to a menu name within
// a particular Layer.
func (h *Host) SetMenuKeymap(menuName string, km *keymap.Keymap) error {
	if _, ok := h.menus[menuName]; !ok {
		return errs.Newf(errs.NotFound, "set_menu_keymap", "menu %q not found", menuName)
	}
	h.menuKeymaps[menuName] = km
	return nil
}

// currentMenuKeymap resolves the keymap bound to the open menu's name,
// checking a direct set_menu_keymap binding first, then the layer
// stack, used by the selection-movement helpers.
func (h *Host) currentMenuKeymap() (*keymap.Keymap, error) {
	if h.openMenu == nil {
		return nil, errs.Newf(errs.Script, "menu-selection", "no menu is open")
	}
	if km, ok := h.menuKeymaps[h.openMenu.Name]; ok {
		return km, nil
	}
	km, ok := h.Layers.ResolveKeymap(keymap.Mode{Kind: keymap.ModeMenu, Menu: h.openMenu.Name})
	if !ok {
		return nil, errs.Newf(errs.NotFound, "menu-selection", "no keymap bound to menu %q", h.openMenu.Name)
	}
	return km, nil
}

// filteredCandidates returns the RegularCandidates whose name contains
// the menu's current filter text, case-insensitively.
func (h *Host) filteredCandidates(km *keymap.Keymap) []keymap.Candidate {
	if h.openMenu.Filter == "" {
		return km.RegularCandidates
	}
	needle := strings.ToLower(h.openMenu.Filter)
	var out []keymap.Candidate
	for _, c := range km.RegularCandidates {
		if strings.Contains(strings.ToLower(c.Name), needle) {
			out = append(out, c)
		}
	}
	return out
}

// MenuSelectionDown implements menu_selection_down(): moves the
// candidate-mode selection cursor forward, wrapping at the end.
func (h *Host) MenuSelectionDown() error {
	km, err := h.currentMenuKeymap()
	if err != nil {
		return err
	}
	cands := h.filteredCandidates(km)
	if len(cands) == 0 {
		return nil
	}
	h.openMenu.Selection = (h.openMenu.Selection + 1) % len(cands)
	return nil
}

// MenuSelectionUp implements menu_selection_up(): moves the selection
// cursor backward, wrapping at the start.
func (h *Host) MenuSelectionUp() error {
	km, err := h.currentMenuKeymap()
	if err != nil {
		return err
	}
	cands := h.filteredCandidates(km)
	if len(cands) == 0 {
		return nil
	}
	h.openMenu.Selection = (h.openMenu.Selection - 1 + len(cands)) % len(cands)
	return nil
}

// MenuSelectionBackspace implements menu_selection_backspace(): removes
// the last character of the filter (Candidate kind) or input
// (InputString kind) text.
func (h *Host) MenuSelectionBackspace() error {
	if h.openMenu == nil {
		return errs.Newf(errs.Script, "menu_selection_backspace", "no menu is open")
	}
	switch h.openMenu.Kind {
	case keymap.KindInputString:
		if r := []rune(h.openMenu.Input); len(r) > 0 {
			h.openMenu.Input = string(r[:len(r)-1])
		}
	default:
		if r := []rune(h.openMenu.Filter); len(r) > 0 {
			h.openMenu.Filter = string(r[:len(r)-1])
			h.openMenu.Selection = 0
		}
	}
	return nil
}

// MenuAppendInput feeds one printable key into the open menu's filter
// or input text, depending on its kind (spec §4.7).
func (h *Host) MenuAppendInput(s string) error {
	if h.openMenu == nil {
		return errs.Newf(errs.Script, "menu_append_input", "no menu is open")
	}
	switch h.openMenu.Kind {
	case keymap.KindInputString, keymap.KindChar:
		h.openMenu.Input += s
	default:
		h.openMenu.Filter += s
		h.openMenu.Selection = 0
	}
	return nil
}

// MenuConfirmSelection confirms the currently selected candidate (or
// the raw input, for InputString/Char menus).
func (h *Host) MenuConfirmSelection() error {
	if h.openMenu == nil {
		return errs.Newf(errs.Script, "menu_confirm_selection", "no menu is open")
	}
	if h.openMenu.Kind != keymap.KindCandidate {
		h.openMenu.Confirm(h.openMenu.Input)
		return nil
	}
	km, err := h.currentMenuKeymap()
	if err != nil {
		return err
	}
	cands := h.filteredCandidates(km)
	if h.openMenu.Selection < 0 || h.openMenu.Selection >= len(cands) {
		return errs.Newf(errs.NotFound, "menu_confirm_selection", "no candidate selected")
	}
	h.openMenu.Confirm(cands[h.openMenu.Selection].Payload)
	return nil
}
