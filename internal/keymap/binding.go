package keymap

// Program is what a Binding runs: either a built-in command identifier
// or a callback into the scripting host (spec §4.7).
type Program struct {
	// Builtin names a built-in command (e.g. "tree_ed_remove"); empty
	// when Script is set.
	Builtin string
	// Script is an opaque scripting-host callback handle; empty when
	// Builtin is set.
	Script string
}

// IsScript reports whether this program runs through the scripting
// host rather than a built-in command.
func (p Program) IsScript() bool { return p.Script != "" }

// Binding maps one key to a human label and a program.
type Binding struct {
	Label   string
	Program Program
}

// Candidate is one entry in a candidate menu: a display name plus an
// opaque payload handed back to the caller on selection.
type Candidate struct {
	Name    string
	Payload any
}

// SpecialCandidate is a candidate with its own dedicated key binding,
// bypassing the regular candidate list filter.
type SpecialCandidate struct {
	Candidate
	Key KeySpec
}
