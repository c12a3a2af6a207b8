package adapter

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/cprobe/internal/model"
)

type stringWriterTo string

func (s stringWriterTo) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, string(s))

	return int64(n), err
}

type failingWriterTo struct{}

func (failingWriterTo) WriteTo(io.Writer) (int64, error) {
	return 0, errors.New("boom")
}

func TestLocalManifestStore_SaveAndLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out", "coverage.manifest")
	store := NewManifestStore()

	if err := store.SaveManifest(m.Path(path), stringWriterTo("mm/page.c:4\n\nmain.c:10\n")); err != nil {
		t.Fatalf("SaveManifest returned error: %v", err)
	}

	entries, err := store.LoadManifest(m.Path(path))
	if err != nil {
		t.Fatalf("LoadManifest returned error: %v", err)
	}

	want := []m.ProbeInsertion{{Path: "mm/page.c", Line: 4}, {Path: "main.c", Line: 10}}
	if len(entries) != len(want) {
		t.Fatalf("LoadManifest returned %d entries, want %d", len(entries), len(want))
	}

	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, entries[i], want[i])
		}
	}
}

func TestLocalManifestStore_SaveManifestFailureLeavesNoFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "coverage.manifest")

	if err := NewManifestStore().SaveManifest(m.Path(path), failingWriterTo{}); err == nil {
		t.Fatal("expected SaveManifest to fail")
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("manifest should not exist, stat err = %v", err)
	}
}

func TestLocalManifestStore_LoadManifestErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := NewManifestStore()

	if _, err := store.LoadManifest(m.Path(filepath.Join(dir, "missing"))); err == nil {
		t.Error("expected error for a missing manifest")
	}

	bad := filepath.Join(dir, "bad.manifest")
	if err := os.WriteFile(bad, []byte("a.c:1\nnot-an-entry\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := store.LoadManifest(m.Path(bad))
	if err == nil || !strings.Contains(err.Error(), ":2:") {
		t.Errorf("expected error naming line 2, got %v", err)
	}
}

func TestLocalManifestStore_SaveSummary(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "summary.yaml")
	summary := m.RunSummary{
		Mode:     m.ModeStatement,
		Manifest: "out/coverage.manifest",
		Files: []m.FileResult{
			{Source: m.Source{Rel: "main.c", Output: "out/main.c"}, Probes: 7},
			{Source: m.Source{Rel: "mm/page.c", Output: "out/mm/page.c"}, Err: errors.New("permission denied")},
		},
	}

	if err := NewManifestStore().SaveSummary(m.Path(path), summary); err != nil {
		t.Fatalf("SaveSummary returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var doc summaryDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		t.Fatalf("summary is not valid YAML: %v", err)
	}

	if doc.Mode != "statement" || doc.Succeeded != 1 || doc.Failed != 1 || doc.Probes != 7 {
		t.Errorf("unexpected summary header: %+v", doc)
	}

	if len(doc.Files) != 2 || doc.Files[0].Error != "" || doc.Files[1].Error != "permission denied" {
		t.Errorf("unexpected summary files: %+v", doc.Files)
	}
}
