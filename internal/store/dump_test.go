package store

import (
	"testing"

	"github.com/dshills/synless/internal/lang"
	"github.com/dshills/synless/internal/lang/builtin"
	"github.com/tidwall/gjson"
)

func TestDumpJSONRendersConstructAndChildren(t *testing.T) {
	reg := lang.NewRegistry()
	if err := reg.Load(builtin.JSON()); err != nil {
		t.Fatalf("load json lang: %v", err)
	}
	pairCt, _ := reg.Construct("json", "ObjectPair")
	numCt, _ := reg.Construct("json", "Number")

	s := New()
	pair := s.Make("json", pairCt)

	num := s.Make("json", numCt)
	if err := s.SetText(num, "42"); err != nil {
		t.Fatalf("SetText: %v", err)
	}
	if err := s.Attach(pair, 1, num); err != nil {
		t.Fatalf("Attach: %v", err)
	}

	out, err := s.DumpJSON(pair)
	if err != nil {
		t.Fatalf("DumpJSON: %v", err)
	}

	if got := gjson.Get(out, "construct").String(); got != "ObjectPair" {
		t.Fatalf("expected construct ObjectPair, got %q", got)
	}
	if !gjson.Get(out, "children.0.hole").Bool() {
		t.Fatalf("expected children.0 (the untouched key slot) to render as a hole")
	}
	if got := gjson.Get(out, "children.1.construct").String(); got != "Number" {
		t.Fatalf("expected children.1.construct Number, got %q", got)
	}
	if got := gjson.Get(out, "children.1.text").String(); got != "42" {
		t.Fatalf("expected children.1.text 42, got %q", got)
	}
}
