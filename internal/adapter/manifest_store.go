package adapter

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/cprobe/internal/model"
)

// ManifestStore persists the probe manifest and the run summary of a run.
type ManifestStore interface {
	// SaveManifest writes manifest to path in one atomic step.
	SaveManifest(path m.Path, manifest io.WriterTo) error
	// LoadManifest reads path:line entries back, in file order.
	LoadManifest(path m.Path) ([]m.ProbeInsertion, error)
	// SaveSummary writes summary to path as YAML.
	SaveSummary(path m.Path, summary m.RunSummary) error
}

// LocalManifestStore implements ManifestStore on the local disk.
type LocalManifestStore struct{}

// NewManifestStore constructs a ManifestStore implementation.
func NewManifestStore() ManifestStore {
	return &LocalManifestStore{}
}

// SaveManifest renders manifest in memory first so a failing writer leaves
// no file behind.
func (s *LocalManifestStore) SaveManifest(path m.Path, manifest io.WriterTo) error {
	var buf bytes.Buffer
	if _, err := manifest.WriteTo(&buf); err != nil {
		return fmt.Errorf("render manifest: %w", err)
	}

	if err := writeFileAtomic(string(path), buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write manifest %s: %w", path, err)
	}

	return nil
}

// LoadManifest parses a manifest file. Blank lines are ignored.
func (s *LocalManifestStore) LoadManifest(path m.Path) ([]m.ProbeInsertion, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}

	defer func() { _ = f.Close() }()

	var entries []m.ProbeInsertion

	scanner := bufio.NewScanner(f)
	lineNo := 0

	for scanner.Scan() {
		lineNo++

		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		entry, err := m.ParseProbeInsertion(text)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, lineNo, err)
		}

		entries = append(entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	return entries, nil
}

type summaryDoc struct {
	Mode      string        `yaml:"mode"`
	Manifest  string        `yaml:"manifest,omitempty"`
	Succeeded int           `yaml:"succeeded"`
	Failed    int           `yaml:"failed"`
	Probes    int           `yaml:"probes"`
	Files     []summaryFile `yaml:"files"`
}

type summaryFile struct {
	Path   string `yaml:"path"`
	Output string `yaml:"output"`
	Probes int    `yaml:"probes"`
	Error  string `yaml:"error,omitempty"`
}

// SaveSummary writes the per-file outcome of a run.
func (s *LocalManifestStore) SaveSummary(path m.Path, summary m.RunSummary) error {
	doc := summaryDoc{
		Mode:      string(summary.Mode),
		Manifest:  string(summary.Manifest),
		Succeeded: summary.Succeeded(),
		Failed:    summary.Failed(),
		Probes:    summary.TotalProbes(),
		Files:     make([]summaryFile, 0, len(summary.Files)),
	}

	for _, f := range summary.Files {
		entry := summaryFile{
			Path:   string(f.Source.Rel),
			Output: string(f.Source.Output),
			Probes: f.Probes,
		}
		if f.Err != nil {
			entry.Error = f.Err.Error()
		}

		doc.Files = append(doc.Files, entry)
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}

	if err := writeFileAtomic(string(path), data, 0o644); err != nil {
		return fmt.Errorf("write summary %s: %w", path, err)
	}

	return nil
}
