package lang

import (
	"fmt"
)

// Spec is a single language specification as loaded from a language file
// (spec §6). The core consumes an already-decoded Spec; decoding the
// on-disk format is an external concern (see internal/langfile).
type Spec struct {
	Name            string
	FileExtensions  []string
	Constructs      []Construct
	Sorts           []Sort
	RootConstruct   string
	DefaultDisplay  string // notation-set name
	DefaultSource   string // notation-set name, optional ("" if none)
	NotationSetDocs []string
}

// compiled holds the per-language derived lookup structures.
type compiled struct {
	spec           Spec
	constructs     map[string]*Construct
	sorts          map[string]*Sort
	closure        map[string]map[string]bool // sort name -> set of construct names it accepts
	defaultDisplay string
	defaultSource  string
}

// Registry holds compiled grammars for every loaded language (spec
// §4.1). Acceptance queries are O(1) against a table computed once per
// language at Load time.
type Registry struct {
	langs map[string]*compiled
}

// NewRegistry creates an empty Language Registry.
func NewRegistry() *Registry {
	return &Registry{langs: make(map[string]*compiled)}
}

// Load compiles and registers a language spec, replacing any existing
// language of the same name.
func (r *Registry) Load(spec Spec) error {
	c := &compiled{
		spec:       spec,
		constructs: make(map[string]*Construct, len(spec.Constructs)),
		sorts:      make(map[string]*Sort, len(spec.Sorts)),
	}

	for i := range spec.Constructs {
		ct := &spec.Constructs[i]
		if _, dup := c.constructs[ct.Name]; dup {
			return fmt.Errorf("lang %q: duplicate construct %q", spec.Name, ct.Name)
		}
		c.constructs[ct.Name] = ct
	}

	for i := range spec.Sorts {
		s := &spec.Sorts[i]
		c.sorts[s.Name] = s
	}

	// Validate every sort member references either a known construct or
	// a known sort.
	for _, s := range c.sorts {
		for _, m := range s.Members {
			if _, ok := c.constructs[m]; ok {
				continue
			}
			if _, ok := c.sorts[m]; ok {
				continue
			}
			return fmt.Errorf("lang %q: sort %q references undeclared construct/sort %q", spec.Name, s.Name, m)
		}
	}

	closure, err := computeClosures(c.sorts)
	if err != nil {
		return fmt.Errorf("lang %q: %w", spec.Name, err)
	}
	c.closure = closure

	root, ok := c.constructs[spec.RootConstruct]
	if !ok {
		return fmt.Errorf("lang %q: root construct %q not declared", spec.Name, spec.RootConstruct)
	}
	if root.Arity.Kind != Fixed || len(root.Arity.Slots) != 1 {
		return fmt.Errorf("lang %q: root construct %q must have arity Fixed([one sort])", spec.Name, spec.RootConstruct)
	}

	if spec.DefaultDisplay == "" {
		return fmt.Errorf("lang %q: no default display notation set", spec.Name)
	}
	for _, ct := range c.constructs {
		if _, ok := ct.Notations[spec.DefaultDisplay]; !ok {
			return fmt.Errorf("lang %q: construct %q missing notation under default set %q", spec.Name, ct.Name, spec.DefaultDisplay)
		}
	}
	c.defaultDisplay = spec.DefaultDisplay
	c.defaultSource = spec.DefaultSource

	r.langs = cloneLangsWith(r.langs, spec.Name, c)
	return nil
}

func cloneLangsWith(existing map[string]*compiled, name string, c *compiled) map[string]*compiled {
	out := make(map[string]*compiled, len(existing)+1)
	for k, v := range existing {
		out[k] = v
	}
	out[name] = c
	return out
}

// computeClosures expands each sort's member set transitively through
// nested sort references, detecting cycles.
func computeClosures(sorts map[string]*Sort) (map[string]map[string]bool, error) {
	closure := make(map[string]map[string]bool, len(sorts))
	for name := range sorts {
		set := make(map[string]bool)
		visiting := make(map[string]bool)
		if err := expandSort(name, sorts, set, visiting); err != nil {
			return nil, err
		}
		closure[name] = set
	}
	return closure, nil
}

func expandSort(name string, sorts map[string]*Sort, into map[string]bool, visiting map[string]bool) error {
	if visiting[name] {
		return fmt.Errorf("cyclic sort inclusion involving %q", name)
	}
	s, ok := sorts[name]
	if !ok {
		return nil
	}
	visiting[name] = true
	for _, m := range s.Members {
		if _, isSort := sorts[m]; isSort {
			if err := expandSort(m, sorts, into, visiting); err != nil {
				return err
			}
			continue
		}
		into[m] = true
	}
	visiting[name] = false
	return nil
}

// Languages returns the names of all registered languages.
func (r *Registry) Languages() []string {
	out := make([]string, 0, len(r.langs))
	for name := range r.langs {
		out = append(out, name)
	}
	return out
}

// Language returns the spec for a registered language.
func (r *Registry) Language(name string) (Spec, bool) {
	c, ok := r.langs[name]
	if !ok {
		return Spec{}, false
	}
	return c.spec, true
}

// Constructs returns the constructs declared by a language.
func (r *Registry) Constructs(lang string) ([]Construct, bool) {
	c, ok := r.langs[lang]
	if !ok {
		return nil, false
	}
	return c.spec.Constructs, true
}

// Construct returns a single construct by name.
func (r *Registry) Construct(lang, name string) (*Construct, bool) {
	c, ok := r.langs[lang]
	if !ok {
		return nil, false
	}
	ct, ok := c.constructs[name]
	return ct, ok
}

// Sorts returns the sorts declared by a language.
func (r *Registry) Sorts(lang string) ([]Sort, bool) {
	c, ok := r.langs[lang]
	if !ok {
		return nil, false
	}
	return c.spec.Sorts, true
}

// RootConstruct returns the designated root construct name for a language.
func (r *Registry) RootConstruct(lang string) (string, bool) {
	c, ok := r.langs[lang]
	if !ok {
		return "", false
	}
	return c.spec.RootConstruct, true
}

// Accepts answers "may construct candidate appear in slot sort slotSort
// of parentConstruct?" in O(1) against the precomputed closure table.
// parentConstruct is accepted for forward-compatible validation (e.g. a
// future per-parent override) but is not currently consulted beyond
// existing.
func (r *Registry) Accepts(langName, parentConstruct, slotSort, candidate string) bool {
	c, ok := r.langs[langName]
	if !ok {
		return false
	}
	if _, ok := c.constructs[parentConstruct]; !ok {
		return false
	}
	set, ok := c.closure[slotSort]
	if !ok {
		// A sort name with no declared Sort entry accepts only an exact
		// construct-name match (degenerate singleton sort).
		return slotSort == candidate
	}
	return set[candidate]
}

// Notation returns the notation for a construct under a named notation
// set.
func (r *Registry) Notation(langName, notationSet, construct string) (Notation, bool) {
	c, ok := r.langs[langName]
	if !ok {
		return Notation{}, false
	}
	ct, ok := c.constructs[construct]
	if !ok {
		return Notation{}, false
	}
	n, ok := ct.Notations[notationSet]
	return n, ok
}

// DefaultDisplayNotation returns the default display notation-set name.
func (r *Registry) DefaultDisplayNotation(langName string) (string, bool) {
	c, ok := r.langs[langName]
	if !ok {
		return "", false
	}
	return c.defaultDisplay, true
}

// DefaultSourceNotation returns the default source notation-set name, if any.
func (r *Registry) DefaultSourceNotation(langName string) (string, bool) {
	c, ok := r.langs[langName]
	if !ok || c.defaultSource == "" {
		return "", false
	}
	return c.defaultSource, true
}

// QuickKey returns the construct bound to a quick-insert key, if any.
func (r *Registry) QuickKey(langName string, key rune) (*Construct, bool) {
	c, ok := r.langs[langName]
	if !ok {
		return nil, false
	}
	for i := range c.spec.Constructs {
		if c.spec.Constructs[i].QuickKey == key {
			return &c.spec.Constructs[i], true
		}
	}
	return nil, false
}
