package langfile

import (
	"testing"

	"github.com/dshills/synless/internal/lang"
)

const jsonLike = `
name: json
file_extensions: [.json]
root_construct: Root
default_display: display
sorts:
  - name: Value
    members: [Number, String]
constructs:
  - name: Root
    arity:
      kind: fixed
      slots: [Value]
    notations:
      display:
        kind: child
        index: 0
  - name: Number
    quick_key: "n"
    arity:
      kind: texty
    notations:
      display:
        kind: text
  - name: String
    quick_key: "s"
    arity:
      kind: texty
    notations:
      display:
        kind: concat
        a: {kind: literal, text: '"'}
        b:
          kind: concat
          a: {kind: text}
          b: {kind: literal, text: '"'}
`

func TestDecodeBasicLanguage(t *testing.T) {
	spec, err := Decode([]byte(jsonLike))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if spec.Name != "json" || spec.RootConstruct != "Root" || spec.DefaultDisplay != "display" {
		t.Fatalf("unexpected spec header: %+v", spec)
	}
	if len(spec.Sorts) != 1 || spec.Sorts[0].Name != "Value" {
		t.Fatalf("unexpected sorts: %+v", spec.Sorts)
	}
	if len(spec.Constructs) != 3 {
		t.Fatalf("expected 3 constructs, got %d", len(spec.Constructs))
	}

	reg := lang.NewRegistry()
	if err := reg.Load(spec); err != nil {
		t.Fatalf("load decoded spec: %v", err)
	}

	num, ok := reg.Construct("json", "Number")
	if !ok {
		t.Fatalf("Number construct not found")
	}
	if num.QuickKey != 'n' {
		t.Fatalf("expected quick key 'n', got %q", num.QuickKey)
	}
	if num.Arity.Kind != lang.Texty {
		t.Fatalf("expected Texty arity, got %v", num.Arity.Kind)
	}

	str, ok := reg.Construct("json", "String")
	if !ok {
		t.Fatalf("String construct not found")
	}
	expr, ok := str.Notations["display"]
	if !ok {
		t.Fatalf("String missing display notation")
	}
	concat, ok := expr.Expr.(lang.Concat)
	if !ok {
		t.Fatalf("expected top-level Concat, got %T", expr.Expr)
	}
	lit, ok := concat.A.(lang.Literal)
	if !ok || lit.Text != `"` {
		t.Fatalf("expected opening quote literal, got %#v", concat.A)
	}
}

func TestDecodeUnknownExprKindErrors(t *testing.T) {
	const bad = `
name: bad
root_construct: Root
default_display: display
constructs:
  - name: Root
    arity:
      kind: fixed
      slots: []
    notations:
      display:
        kind: bogus
`
	if _, err := Decode([]byte(bad)); err == nil {
		t.Fatalf("expected error for unknown expr kind")
	}
}

func TestDecodeUnknownArityKindErrors(t *testing.T) {
	const bad = `
name: bad
root_construct: Root
default_display: display
constructs:
  - name: Root
    arity:
      kind: weird
`
	if _, err := Decode([]byte(bad)); err == nil {
		t.Fatalf("expected error for unknown arity kind")
	}
}
