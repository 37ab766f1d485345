// Package langfile decodes the on-disk YAML language-file format into a
// lang.Spec (spec §6). Grounded on keystorm's Taskfile decoder
// (internal/integration/task/sources/taskfile.go), which unmarshals a
// structured YAML document into plain tagged Go structs with
// gopkg.in/yaml.v3; here the notation Expr union additionally needs a
// small hand-written conversion step since lang.Expr is a closed
// interface, not something yaml.v3 can populate directly.
package langfile

import (
	"fmt"
	"os"

	"github.com/dshills/synless/internal/lang"
	"gopkg.in/yaml.v3"
)

// file is the on-disk shape of one language file.
type file struct {
	Name            string         `yaml:"name"`
	FileExtensions  []string       `yaml:"file_extensions"`
	RootConstruct   string         `yaml:"root_construct"`
	DefaultDisplay  string         `yaml:"default_display"`
	DefaultSource   string         `yaml:"default_source"`
	NotationSetDocs []string       `yaml:"notation_set_docs"`
	Sorts           []sortDef      `yaml:"sorts"`
	Constructs      []constructDef `yaml:"constructs"`
}

type sortDef struct {
	Name    string   `yaml:"name"`
	Members []string `yaml:"members"`
}

type constructDef struct {
	Name      string             `yaml:"name"`
	QuickKey  string             `yaml:"quick_key"`
	Arity     arityDef           `yaml:"arity"`
	Notations map[string]exprDef `yaml:"notations"`
}

type arityDef struct {
	Kind     string   `yaml:"kind"` // "fixed" | "listy" | "texty"
	Slots    []string `yaml:"slots"`
	ListSort string   `yaml:"list_sort"`
}

// Load reads and decodes a language file from disk.
func Load(path string) (lang.Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return lang.Spec{}, fmt.Errorf("langfile: read %s: %w", path, err)
	}
	return Decode(data)
}

// Decode parses a language file's YAML bytes into a lang.Spec.
func Decode(data []byte) (lang.Spec, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return lang.Spec{}, fmt.Errorf("langfile: %w", err)
	}

	spec := lang.Spec{
		Name:            f.Name,
		FileExtensions:  f.FileExtensions,
		RootConstruct:   f.RootConstruct,
		DefaultDisplay:  f.DefaultDisplay,
		DefaultSource:   f.DefaultSource,
		NotationSetDocs: f.NotationSetDocs,
	}

	for _, s := range f.Sorts {
		spec.Sorts = append(spec.Sorts, lang.Sort{Name: s.Name, Members: s.Members})
	}

	for _, c := range f.Constructs {
		ct, err := c.toConstruct()
		if err != nil {
			return lang.Spec{}, fmt.Errorf("langfile: construct %q: %w", c.Name, err)
		}
		spec.Constructs = append(spec.Constructs, ct)
	}

	return spec, nil
}

func (c constructDef) toConstruct() (lang.Construct, error) {
	var quickKey rune
	if c.QuickKey != "" {
		runes := []rune(c.QuickKey)
		if len(runes) != 1 {
			return lang.Construct{}, fmt.Errorf("quick_key must be a single character, got %q", c.QuickKey)
		}
		quickKey = runes[0]
	}

	arity, err := c.Arity.toArity()
	if err != nil {
		return lang.Construct{}, err
	}

	notations := make(map[string]lang.Notation, len(c.Notations))
	for set, e := range c.Notations {
		expr, err := e.toExpr()
		if err != nil {
			return lang.Construct{}, fmt.Errorf("notation %q: %w", set, err)
		}
		notations[set] = lang.Notation{Expr: expr}
	}

	return lang.Construct{
		Name:      c.Name,
		Arity:     arity,
		QuickKey:  quickKey,
		Notations: notations,
	}, nil
}

func (a arityDef) toArity() (lang.Arity, error) {
	switch a.Kind {
	case "fixed":
		return lang.Arity{Kind: lang.Fixed, Slots: a.Slots}, nil
	case "listy":
		return lang.Arity{Kind: lang.Listy, ListSort: a.ListSort}, nil
	case "texty":
		return lang.Arity{Kind: lang.Texty}, nil
	default:
		return lang.Arity{}, fmt.Errorf("unknown arity kind %q", a.Kind)
	}
}
