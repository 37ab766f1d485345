package scripting

import (
	"testing"

	"github.com/dshills/synless/internal/doc"
	"github.com/dshills/synless/internal/keymap"
	"github.com/dshills/synless/internal/lang"
	"github.com/dshills/synless/internal/lang/builtin"
)

type stubDocIO struct {
	files, dirs []string
	opened      map[string]*doc.Document
}

func (s *stubDocIO) Open(path string) (*doc.Document, string, error) {
	return s.opened[path], "json", nil
}

func (s *stubDocIO) Save(d *doc.Document, path string) error { return nil }

func (s *stubDocIO) CurrentDir() (string, error) { return "/work", nil }

func (s *stubDocIO) ListFilesAndDirs(path string) (files, dirs []string, err error) {
	return s.files, s.dirs, nil
}

func newTestHost(t *testing.T, io DocIO) *Host {
	t.Helper()
	reg := lang.NewRegistry()
	if err := reg.Load(builtin.JSON()); err != nil {
		t.Fatalf("load json lang: %v", err)
	}
	d, err := doc.New(reg, "json")
	if err != nil {
		t.Fatalf("doc.New: %v", err)
	}
	return NewHost(d, reg, keymap.NewStack(), io)
}

func TestListFilesAndDirsMatchingFiltersByGlob(t *testing.T) {
	io := &stubDocIO{
		files: []string{"a.json", "b.txt", "nested/c.json"},
		dirs:  []string{"nested", "other"},
	}
	h := newTestHost(t, io)

	files, dirs, err := h.ListFilesAndDirsMatching(".", "**/*.json")
	if err != nil {
		t.Fatalf("ListFilesAndDirsMatching: %v", err)
	}
	if len(files) != 2 || files[0] != "a.json" || files[1] != "nested/c.json" {
		t.Fatalf("unexpected files: %v", files)
	}
	if len(dirs) != 0 {
		t.Fatalf("expected no directories to match *.json, got %v", dirs)
	}
}

func TestListFilesAndDirsMatchingEmptyPatternPassesThrough(t *testing.T) {
	io := &stubDocIO{files: []string{"a.json"}, dirs: []string{"nested"}}
	h := newTestHost(t, io)

	files, dirs, err := h.ListFilesAndDirsMatching(".", "")
	if err != nil {
		t.Fatalf("ListFilesAndDirsMatching: %v", err)
	}
	if len(files) != 1 || len(dirs) != 1 {
		t.Fatalf("expected passthrough of all entries, got files=%v dirs=%v", files, dirs)
	}
}

func TestOpenDocWithoutIOFails(t *testing.T) {
	h := newTestHost(t, nil)
	if err := h.OpenDoc("x.json"); err == nil {
		t.Fatalf("expected error opening a doc with no DocIO configured")
	}
}

func TestCanonicalizeAndJoinPath(t *testing.T) {
	h := newTestHost(t, nil)
	if got := h.CanonicalizePath("a/b/../c"); got != "a/c" {
		t.Fatalf("CanonicalizePath: got %q", got)
	}
	if got := h.JoinPath("a", "b"); got != "a/b" {
		t.Fatalf("JoinPath: got %q", got)
	}
	if got := h.PathFileName("a/b/c.json"); got != "c.json" {
		t.Fatalf("PathFileName: got %q", got)
	}
}
