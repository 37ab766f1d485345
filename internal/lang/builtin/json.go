// Package builtin supplies a demo JSON-shaped language (spec §8's
// scenarios all edit a document in this language) so the engine and its
// tests have something to construct without requiring a .ron-equivalent
// file on disk.
package builtin

import "github.com/dshills/synless/internal/lang"

const (
	// DisplaySet is the only notation set the JSON language declares.
	DisplaySet = "display"
)

// JSON returns the built-in JSON-shaped language spec.
func JSON() lang.Spec {
	return lang.Spec{
		Name:           "json",
		FileExtensions: []string{".json"},
		RootConstruct:  "Root",
		DefaultDisplay: DisplaySet,
		Sorts: []lang.Sort{
			{Name: "Value", Members: []string{"Number", "String", "Array", "Object"}},
			{Name: "Key", Members: []string{"String"}},
			{Name: "Member", Members: []string{"ObjectPair"}},
		},
		Constructs: []lang.Construct{
			{
				Name:  "Root",
				Arity: lang.Arity{Kind: lang.Fixed, Slots: []string{"Value"}},
				Notations: map[string]lang.Notation{
					DisplaySet: {Expr: lang.Child{Index: 0}},
				},
			},
			{
				Name:  "Array",
				Arity: lang.Arity{Kind: lang.Listy, ListSort: "Value"},
				Notations: map[string]lang.Notation{
					DisplaySet: {Expr: lang.Concat{
						A: lang.Literal{Text: "["},
						B: lang.Concat{
							A: lang.Fold{
								First: lang.ElementRef{},
								Join: lang.Concat{
									A: lang.FoldRef{Side: lang.Left},
									B: lang.Concat{
										A: lang.Literal{Text: ", "},
										B: lang.FoldRef{Side: lang.Right},
									},
								},
							},
							B: lang.Literal{Text: "]"},
						},
					}},
				},
			},
			{
				Name:  "Object",
				Arity: lang.Arity{Kind: lang.Listy, ListSort: "Member"},
				Notations: map[string]lang.Notation{
					DisplaySet: {Expr: lang.Concat{
						A: lang.Literal{Text: "{"},
						B: lang.Concat{
							A: lang.Fold{
								First: lang.ElementRef{},
								Join: lang.Concat{
									A: lang.FoldRef{Side: lang.Left},
									B: lang.Concat{
										A: lang.Literal{Text: ", "},
										B: lang.FoldRef{Side: lang.Right},
									},
								},
							},
							B: lang.Literal{Text: "}"},
						},
					}},
				},
			},
			{
				Name:  "ObjectPair",
				Arity: lang.Arity{Kind: lang.Fixed, Slots: []string{"Key", "Value"}},
				Notations: map[string]lang.Notation{
					DisplaySet: {Expr: lang.Concat{
						A: lang.Child{Index: 0},
						B: lang.Concat{
							A: lang.Literal{Text: ": "},
							B: lang.Child{Index: 1},
						},
					}},
				},
			},
			{
				Name:     "Number",
				Arity:    lang.Arity{Kind: lang.Texty},
				QuickKey: 'n',
				Notations: map[string]lang.Notation{
					DisplaySet: {Expr: lang.TextExpr{}},
				},
			},
			{
				Name:     "String",
				Arity:    lang.Arity{Kind: lang.Texty},
				QuickKey: 's',
				Notations: map[string]lang.Notation{
					DisplaySet: {Expr: lang.Concat{
						A: lang.Literal{Text: "\""},
						B: lang.Concat{
							A: lang.TextExpr{},
							B: lang.Literal{Text: "\""},
						},
					}},
				},
			},
		},
	}
}
