package langfile

import (
	"fmt"

	"github.com/dshills/synless/internal/lang"
)

// exprDef is the on-disk shape of one notation Expr node (spec §6). The
// tag field selects which of the remaining, mostly-optional fields
// apply; this mirrors a discriminated union the way config-driven
// interface fields are commonly decoded from YAML, since yaml.v3 cannot
// populate a Go interface on its own.
type exprDef struct {
	Kind string `yaml:"kind"`

	Text  string `yaml:"text,omitempty"`  // literal
	Index int    `yaml:"index,omitempty"` // child

	A *exprDef `yaml:"a,omitempty"` // concat, choice
	B *exprDef `yaml:"b,omitempty"`

	Prefix *exprDef `yaml:"prefix,omitempty"` // indent
	Marker *exprDef `yaml:"marker,omitempty"`
	Body   *exprDef `yaml:"body,omitempty"`

	E *exprDef `yaml:"e,omitempty"` // flat, style

	First *exprDef `yaml:"first,omitempty"` // fold
	Join  *exprDef `yaml:"join,omitempty"`

	Side string `yaml:"side,omitempty"` // fold_ref: "left" | "right"

	Predicate string   `yaml:"predicate,omitempty"` // check
	Locus     *exprDef `yaml:"locus,omitempty"`
	Then      *exprDef `yaml:"then,omitempty"`
	Else      *exprDef `yaml:"else,omitempty"`

	Zero *exprDef `yaml:"zero,omitempty"` // count
	One  *exprDef `yaml:"one,omitempty"`
	Many *exprDef `yaml:"many,omitempty"`

	Style *styleDef `yaml:"style,omitempty"`
}

type styleDef struct {
	FgColor  *int `yaml:"fg_color,omitempty"`
	BgColor  *int `yaml:"bg_color,omitempty"`
	Bold     bool `yaml:"bold,omitempty"`
	Priority int  `yaml:"priority,omitempty"`
}

func (e *exprDef) toExpr() (lang.Expr, error) {
	if e == nil {
		return nil, nil
	}
	switch e.Kind {
	case "literal":
		return lang.Literal{Text: e.Text}, nil
	case "text":
		return lang.TextExpr{}, nil
	case "child":
		return lang.Child{Index: e.Index}, nil
	case "concat":
		a, err := e.A.toExpr()
		if err != nil {
			return nil, err
		}
		b, err := e.B.toExpr()
		if err != nil {
			return nil, err
		}
		return lang.Concat{A: a, B: b}, nil
	case "choice":
		a, err := e.A.toExpr()
		if err != nil {
			return nil, err
		}
		b, err := e.B.toExpr()
		if err != nil {
			return nil, err
		}
		return lang.Choice{A: a, B: b}, nil
	case "indent":
		prefix, err := e.Prefix.toExpr()
		if err != nil {
			return nil, err
		}
		marker, err := e.Marker.toExpr()
		if err != nil {
			return nil, err
		}
		body, err := e.Body.toExpr()
		if err != nil {
			return nil, err
		}
		return lang.Indent{Prefix: prefix, Marker: marker, Body: body}, nil
	case "newline":
		return lang.NewlineExpr{}, nil
	case "flat":
		inner, err := e.E.toExpr()
		if err != nil {
			return nil, err
		}
		return lang.Flat{E: inner}, nil
	case "fold":
		first, err := e.First.toExpr()
		if err != nil {
			return nil, err
		}
		join, err := e.Join.toExpr()
		if err != nil {
			return nil, err
		}
		return lang.Fold{First: first, Join: join}, nil
	case "element_ref":
		return lang.ElementRef{}, nil
	case "fold_ref":
		side, err := parseFoldSide(e.Side)
		if err != nil {
			return nil, err
		}
		return lang.FoldRef{Side: side}, nil
	case "check":
		pred, err := parsePredicate(e.Predicate)
		if err != nil {
			return nil, err
		}
		locus, err := e.Locus.toExpr()
		if err != nil {
			return nil, err
		}
		then, err := e.Then.toExpr()
		if err != nil {
			return nil, err
		}
		els, err := e.Else.toExpr()
		if err != nil {
			return nil, err
		}
		return lang.Check{Predicate: pred, Locus: locus, Then: then, Else: els}, nil
	case "count":
		zero, err := e.Zero.toExpr()
		if err != nil {
			return nil, err
		}
		one, err := e.One.toExpr()
		if err != nil {
			return nil, err
		}
		many, err := e.Many.toExpr()
		if err != nil {
			return nil, err
		}
		return lang.Count{Zero: zero, One: one, Many: many}, nil
	case "style":
		inner, err := e.E.toExpr()
		if err != nil {
			return nil, err
		}
		return lang.Style{Props: e.Style.toProps(), E: inner}, nil
	default:
		return nil, fmt.Errorf("unknown expr kind %q", e.Kind)
	}
}

func parseFoldSide(s string) (lang.FoldSide, error) {
	switch s {
	case "left":
		return lang.Left, nil
	case "right":
		return lang.Right, nil
	default:
		return 0, fmt.Errorf("unknown fold side %q", s)
	}
}

func parsePredicate(s string) (lang.Predicate, error) {
	switch s {
	case "is_empty_text":
		return lang.IsEmptyText, nil
	default:
		return 0, fmt.Errorf("unknown predicate %q", s)
	}
}

func (s *styleDef) toProps() lang.StyleProps {
	if s == nil {
		return lang.StyleProps{}
	}
	props := lang.StyleProps{Bold: s.Bold, Priority: s.Priority}
	if s.FgColor != nil {
		v := lang.ShadeToken(*s.FgColor)
		props.FgColor = &v
	}
	if s.BgColor != nil {
		v := lang.ShadeToken(*s.BgColor)
		props.BgColor = &v
	}
	return props
}
