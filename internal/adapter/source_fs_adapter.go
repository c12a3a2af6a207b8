// Package adapter contains the filesystem adapters of the cprobe CLI.
package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/cprobe/internal/model"
)

const cFileExt = ".c"

// DefaultExclude lists the path components skipped during discovery.
var DefaultExclude = []string{"test", "build"}

// DiscoverOptions tunes source discovery.
type DiscoverOptions struct {
	// Exclude holds filepath.Match patterns tested against every path
	// component below the source root. A file is skipped when any of its
	// directories or its own name matches. Nil means DefaultExclude.
	Exclude []string
}

func (o DiscoverOptions) patterns() []string {
	if o.Exclude == nil {
		return DefaultExclude
	}

	return o.Exclude
}

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when reading a source tree and writing its instrumented copy. It
// hides direct `os` access so the workflow logic can be tested without
// touching the disk.
type SourceFSAdapter interface {
	// Get walks root recursively and returns every production C file in
	// lexical order, each mapped to the same relative location under out.
	// An empty out leaves Source.Output unset.
	Get(root, out m.Path, opts DiscoverOptions) ([]m.Source, error)

	// Walk traverses root recursively.
	Walk(root m.Path, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// FileInfo returns metadata for a path so the domain can check existence or
	// distinguish between files and directories when necessary.
	FileInfo(path m.Path) (os.FileInfo, error)

	// WriteFile replaces path with content, creating parent directories first.
	// Readers never observe a partially written file.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// RelPath returns the relative path from base to target.
	RelPath(base, target m.Path) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter implements SourceFSAdapter on the local disk.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Get collects the C sources under root. The output directory is never
// descended into, so instrumenting into a subdirectory of root is safe.
func (a *LocalSourceFSAdapter) Get(root, out m.Path, opts DiscoverOptions) ([]m.Source, error) {
	rootPath, err := normalizeRootPath(string(root))
	if err != nil {
		return nil, err
	}

	outPath := ""
	if out != "" {
		if outPath, err = normalizeRootPath(string(out)); err != nil {
			return nil, err
		}
	}

	info, err := a.FileInfo(m.Path(rootPath))
	if err != nil {
		return nil, fmt.Errorf("root path error: %w", err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("root path error: %s is not a directory", rootPath)
	}

	exclude := opts.patterns()

	var sources []m.Source

	err = a.Walk(m.Path(rootPath), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if path == rootPath {
			return nil
		}

		if info.IsDir() {
			if path == outPath || excluded(info.Name(), exclude) {
				return filepath.SkipDir
			}

			return nil
		}

		if filepath.Ext(path) != cFileExt || excluded(info.Name(), exclude) {
			return nil
		}

		rel, err := a.RelPath(m.Path(rootPath), m.Path(path))
		if err != nil {
			return err
		}

		source := m.Source{
			Origin: m.Path(path),
			Rel:    m.Path(filepath.ToSlash(string(rel))),
		}
		if outPath != "" {
			source.Output = a.JoinPath(outPath, string(rel))
		}

		sources = append(sources, source)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return sources, nil
}

// Walk iterates over everything under root in lexical order.
func (a *LocalSourceFSAdapter) Walk(root m.Path, fn FilepathWalkFunc) error {
	return filepath.Walk(string(root), func(path string, info os.FileInfo, err error) error {
		return fn(path, info, err)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// WriteFile writes content next to path under a temporary name and renames it
// into place.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	return writeFileAtomic(string(path), content, perm)
}

// RelPath returns the relative path from base to target.
func (a *LocalSourceFSAdapter) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}

func writeFileAtomic(path string, content []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}

	tmpName := tmp.Name()

	defer func() {
		// No-op once the rename succeeded.
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()

		return err
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, perm); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}

func excluded(name string, patterns []string) bool {
	for _, p := range patterns {
		if ok, _ := filepath.Match(p, name); ok {
			return true
		}
	}

	return false
}

func normalizeRootPath(root string) (string, error) {
	rootStr := root

	if strings.HasPrefix(rootStr, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}

		suffix := strings.TrimPrefix(rootStr, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		rootStr = filepath.Join(home, suffix)
	}

	if rootStr == "" {
		rootStr = "."
	}

	return filepath.Abs(rootStr)
}
