package scripting

import (
	"path"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/dshills/synless/internal/doc"
	"github.com/dshills/synless/internal/errs"
	"github.com/dshills/synless/internal/lang"
)

// OpenDoc implements open_doc(path).
func (h *Host) OpenDoc(p string) error {
	if h.IO == nil {
		return h.noDocIO("open_doc")
	}
	d, _, err := h.IO.Open(p)
	if err != nil {
		return errs.New(errs.IO, "open_doc", err)
	}
	h.Active = d
	h.Search = h.Search.ReboundTo(d.Store)
	return nil
}

// NewDoc implements new_doc(path): creates an empty document of the
// language named by langName and makes it active. p is not used; the
// language is not inferred from the path.
func (h *Host) NewDoc(p string, langName string) error {
	d, err := doc.New(h.Lang, langName)
	if err != nil {
		return err
	}
	h.Active = d
	h.Search = h.Search.ReboundTo(d.Store)
	return nil
}

// SaveDoc implements save_doc().
func (h *Host) SaveDoc(p string) error {
	if h.IO == nil {
		return h.noDocIO("save_doc")
	}
	if err := h.IO.Save(h.Active, p); err != nil {
		return errs.New(errs.IO, "save_doc", err)
	}
	h.Active.SetModified(false)
	return nil
}

// SaveDocAs implements save_doc_as(path).
func (h *Host) SaveDocAs(p string) error { return h.SaveDoc(p) }

// CloseDoc implements close_doc(). The caller (engine loop) owns
// swapping in the next active document from its document set; Host
// only reports whether the active document has unsaved changes.
func (h *Host) CloseDoc() error {
	if h.Active.IsModified() {
		return errs.Newf(errs.Script, "close_doc", "document has unsaved changes")
	}
	return nil
}

// ForceCloseVisibleDoc implements force_close_visible_doc(). Unlike
// CloseDoc it never reports unsaved changes; it does nothing else, and
// leaves Host.Active and its modified flag unchanged.
func (h *Host) ForceCloseVisibleDoc() {}

// SwitchToDoc implements switch_to_doc(path). Document-set management
// is a frontend/engine-loop concern; Host exposes the single-document
// swap point a multi-document engine would call.
func (h *Host) SwitchToDoc(d *doc.Document) {
	h.Active = d
	h.Search = h.Search.ReboundTo(d.Store)
}

// HasUnsavedChanges implements has_unsaved_changes().
func (h *Host) HasUnsavedChanges() bool { return h.Active.IsModified() }

// DocSwitchingCandidates implements doc_switching_candidates().
func (h *Host) DocSwitchingCandidates(all []*doc.Document) []string {
	names := make([]string, 0, len(all))
	for _, d := range all {
		names = append(names, d.LangName)
	}
	return names
}

// CurrentDir implements current_dir().
func (h *Host) CurrentDir() (string, error) {
	if h.IO == nil {
		return "", h.noDocIO("current_dir")
	}
	return h.IO.CurrentDir()
}

// CanonicalizePath implements canonicalize_path(p).
func (h *Host) CanonicalizePath(p string) string { return path.Clean(p) }

// JoinPath implements join_path(a,b).
func (h *Host) JoinPath(a, b string) string { return path.Join(a, b) }

// PathFileName implements path_file_name(p).
func (h *Host) PathFileName(p string) string { return path.Base(p) }

// ListFilesAndDirs implements list_files_and_dirs(p).
func (h *Host) ListFilesAndDirs(p string) (files, dirs []string, err error) {
	if h.IO == nil {
		return nil, nil, h.noDocIO("list_files_and_dirs")
	}
	return h.IO.ListFilesAndDirs(p)
}

// ListFilesAndDirsMatching implements list_files_and_dirs(p) for a menu
// seeded with a glob filter (e.g. an open_doc file picker restricted to
// "*.json"), matching doublestar's double-star-aware glob semantics
// rather than path.Match's single-component matching.
func (h *Host) ListFilesAndDirsMatching(p, pattern string) (files, dirs []string, err error) {
	allFiles, allDirs, err := h.ListFilesAndDirs(p)
	if err != nil {
		return nil, nil, err
	}
	if pattern == "" {
		return allFiles, allDirs, nil
	}
	files, err = filterGlob(allFiles, pattern)
	if err != nil {
		return nil, nil, errs.New(errs.Script, "list_files_and_dirs", err)
	}
	dirs, err = filterGlob(allDirs, pattern)
	if err != nil {
		return nil, nil, errs.New(errs.Script, "list_files_and_dirs", err)
	}
	return files, dirs, nil
}

func filterGlob(names []string, pattern string) ([]string, error) {
	var out []string
	for _, name := range names {
		ok, err := doublestar.Match(pattern, name)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, name)
		}
	}
	return out, nil
}

// LoadLanguage implements load_language(spec): registers a decoded
// language spec (the on-disk .ron-equivalent decoding is
// internal/langfile's concern, out of the core per spec §1).
func (h *Host) LoadLanguage(spec lang.Spec) error {
	return h.Lang.Load(spec)
}

// GetLanguage implements get_language(name).
func (h *Host) GetLanguage(name string) (lang.Spec, bool) {
	return h.Lang.Language(name)
}

// LanguageConstructs implements language_constructs(name).
func (h *Host) LanguageConstructs(name string) []string {
	cts, ok := h.Lang.Constructs(name)
	if !ok {
		return nil
	}
	names := make([]string, len(cts))
	for i, c := range cts {
		names[i] = c.Name
	}
	return names
}

// ConstructName implements construct_name(lang, token): identity
// passthrough since constructs are addressed by name directly in this
// implementation (no separate opaque construct token type).
func (h *Host) ConstructName(token string) string { return token }

// ConstructKey implements construct_key(lang, construct).
func (h *Host) ConstructKey(langName, construct string) (rune, bool) {
	ct, ok := h.Lang.Construct(langName, construct)
	if !ok || ct.QuickKey == 0 {
		return 0, false
	}
	return ct.QuickKey, true
}
