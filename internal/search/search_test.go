package search

import (
	"testing"

	"github.com/dshills/synless/internal/lang"
	"github.com/dshills/synless/internal/lang/builtin"
	"github.com/dshills/synless/internal/store"
)

func buildDoc(t *testing.T) (*store.Store, *lang.Registry, store.NodeID) {
	t.Helper()
	reg := lang.NewRegistry()
	if err := reg.Load(builtin.JSON()); err != nil {
		t.Fatalf("load: %v", err)
	}
	s := store.New()
	rootCt, _ := reg.Construct("json", "Root")
	root := s.Make("json", rootCt)

	arrCt, _ := reg.Construct("json", "Array")
	arr := s.Make("json", arrCt)

	numCt, _ := reg.Construct("json", "Number")
	n1 := s.Make("json", numCt)
	_ = s.SetText(n1, "hello world")
	n2 := s.Make("json", numCt)
	_ = s.SetText(n2, "goodbye")

	_ = s.InsertListItem(arr, 0, n1)
	_ = s.InsertListItem(arr, 1, n2)
	if _, err := s.ReplaceAt(root, 0, arr); err != nil {
		t.Fatalf("replace: %v", err)
	}
	return s, reg, root
}

func TestSubstringSearch(t *testing.T) {
	s, _, root := buildDoc(t)
	se := New(s)
	if err := se.SetQuery(Query{Target: TargetSubstring, Pattern: "HELLO"}); err != nil {
		t.Fatalf("set query: %v", err)
	}
	match, ok := se.Next(root, root)
	if !ok {
		t.Fatalf("expected case-insensitive match")
	}
	v, _ := s.Get(match)
	if v.Text != "hello world" {
		t.Fatalf("unexpected match text %q", v.Text)
	}
}

func TestConstructSearch(t *testing.T) {
	s, _, root := buildDoc(t)
	se := New(s)
	if err := se.SetQuery(Query{Target: TargetConstruct, Construct: "Number"}); err != nil {
		t.Fatalf("set query: %v", err)
	}
	first, ok := se.Next(root, root)
	if !ok {
		t.Fatalf("expected a Number match")
	}
	second, ok := se.Next(root, first)
	if !ok {
		t.Fatalf("expected a second Number match")
	}
	if first == second {
		t.Fatalf("expected distinct matches")
	}
}
