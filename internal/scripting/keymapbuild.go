package scripting

import "github.com/dshills/synless/internal/keymap"

// NewKeymap implements new_keymap(name).
func (h *Host) NewKeymap(name string) *keymap.Keymap { return keymap.New(name) }

// BindKey implements bind_key(km, key, binding).
func (h *Host) BindKey(km *keymap.Keymap, key keymap.KeySpec, b keymap.Binding) {
	km.Bind(key, b)
}

// BindKeyForRegularCandidates implements
// bind_key_for_regular_candidates(km, key, binding): binds a key that
// opens candidate-mode filtering for the keymap's RegularCandidates.
func (h *Host) BindKeyForRegularCandidates(km *keymap.Keymap, key keymap.KeySpec, b keymap.Binding) {
	km.Bind(key, b)
}

// BindKeyForSpecialCandidate implements
// bind_key_for_special_candidate(km, key, candidate).
func (h *Host) BindKeyForSpecialCandidate(km *keymap.Keymap, key keymap.KeySpec, c keymap.Candidate) {
	km.BindSpecialCandidate(key, c)
}

// BindKeyForCustomCandidate implements
// bind_key_for_custom_candidate(km, fn).
func (h *Host) BindKeyForCustomCandidate(km *keymap.Keymap, fn func(input string) (keymap.Candidate, bool)) {
	km.SetCustomCandidateHandler(fn)
}

// AddRegularCandidate implements add_regular_candidate(km, candidate).
func (h *Host) AddRegularCandidate(km *keymap.Keymap, c keymap.Candidate) {
	km.AddRegularCandidate(c)
}
