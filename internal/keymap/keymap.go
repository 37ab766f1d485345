package keymap

// Keymap is a mapping from KeySpec to Binding (spec §4.7). In
// candidate mode it additionally holds the parallel candidate
// sequences a menu presents.
type Keymap struct {
	Name     string
	Bindings map[KeySpec]Binding

	// Candidate-mode state, populated only for keymaps backing a
	// Candidate menu.
	RegularCandidates []Candidate
	SpecialCandidates []SpecialCandidate
	CustomCandidate   func(input string) (Candidate, bool)
}

// New creates an empty, named Keymap.
func New(name string) *Keymap {
	return &Keymap{Name: name, Bindings: make(map[KeySpec]Binding)}
}

// Bind adds or replaces a key binding.
func (k *Keymap) Bind(key KeySpec, b Binding) {
	k.Bindings[key] = b
}

// Lookup returns the binding for a key, if any.
func (k *Keymap) Lookup(key KeySpec) (Binding, bool) {
	b, ok := k.Bindings[key]
	return b, ok
}

// AddRegularCandidate appends a regular (filterable) candidate.
func (k *Keymap) AddRegularCandidate(c Candidate) {
	k.RegularCandidates = append(k.RegularCandidates, c)
}

// BindSpecialCandidate adds a candidate with its own dedicated key.
func (k *Keymap) BindSpecialCandidate(key KeySpec, c Candidate) {
	k.SpecialCandidates = append(k.SpecialCandidates, SpecialCandidate{Candidate: c, Key: key})
}

// SetCustomCandidateHandler installs a handler consuming the current
// input string directly, for candidate lists too large or dynamic to
// enumerate up front.
func (k *Keymap) SetCustomCandidateHandler(fn func(input string) (Candidate, bool)) {
	k.CustomCandidate = fn
}
