package adapter

import (
	"os"
	"path/filepath"
	"testing"

	m "github.com/mouse-blink/cprobe/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalSourceFSAdapter_Get(t *testing.T) {
	t.Run("finds C files and skips test and build trees", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		out := filepath.Join(t.TempDir(), "out")

		mustMkdir(t, filepath.Join(root, "mm"))
		mustMkdir(t, filepath.Join(root, "kernel"))
		mustMkdir(t, filepath.Join(root, "test"))
		mustMkdir(t, filepath.Join(root, "kernel", "build"))
		writeTestFile(t, filepath.Join(root, "main.c"), "int main(void)\n{\n}\n")
		writeTestFile(t, filepath.Join(root, "mm", "page.c"), "")
		writeTestFile(t, filepath.Join(root, "mm", "page.h"), "")
		writeTestFile(t, filepath.Join(root, "kernel", "sched.c"), "")
		writeTestFile(t, filepath.Join(root, "kernel", "build", "gen.c"), "")
		writeTestFile(t, filepath.Join(root, "test", "unit.c"), "")

		sources, err := adapter.Get(m.Path(root), m.Path(out), DiscoverOptions{})
		require.NoError(t, err)

		rels := make([]m.Path, 0, len(sources))
		for _, s := range sources {
			rels = append(rels, s.Rel)
		}

		assert.Equal(t, []m.Path{"kernel/sched.c", "main.c", "mm/page.c"}, rels)

		page := sources[2]
		assert.Equal(t, m.Path(filepath.Join(root, "mm", "page.c")), page.Origin)
		assert.Equal(t, m.Path(filepath.Join(out, "mm", "page.c")), page.Output)
	})

	t.Run("custom exclude patterns replace the defaults", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		mustMkdir(t, filepath.Join(root, "test"))
		mustMkdir(t, filepath.Join(root, "arch_x86"))
		writeTestFile(t, filepath.Join(root, "test", "unit.c"), "")
		writeTestFile(t, filepath.Join(root, "arch_x86", "gdt.c"), "")
		writeTestFile(t, filepath.Join(root, "boot_stub.c"), "")

		sources, err := adapter.Get(m.Path(root), m.Path(t.TempDir()), DiscoverOptions{Exclude: []string{"arch_*", "*_stub.c"}})
		require.NoError(t, err)
		require.Len(t, sources, 1)
		assert.Equal(t, m.Path("test/unit.c"), sources[0].Rel)
	})

	t.Run("output directory inside the root is skipped", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		out := filepath.Join(root, "instrumented")
		mustMkdir(t, out)
		writeTestFile(t, filepath.Join(root, "a.c"), "")
		writeTestFile(t, filepath.Join(out, "a.c"), "")

		sources, err := adapter.Get(m.Path(root), m.Path(out), DiscoverOptions{})
		require.NoError(t, err)
		require.Len(t, sources, 1)
		assert.Equal(t, m.Path("a.c"), sources[0].Rel)
	})

	t.Run("missing root", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		_, err := adapter.Get(m.Path(filepath.Join(t.TempDir(), "nope")), m.Path(t.TempDir()), DiscoverOptions{})
		require.Error(t, err)
	})

	t.Run("root is a file", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		file := filepath.Join(t.TempDir(), "a.c")
		writeTestFile(t, file, "")

		_, err := adapter.Get(m.Path(file), m.Path(t.TempDir()), DiscoverOptions{})
		require.Error(t, err)
	})

	t.Run("fixture tree", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		sources, err := adapter.Get(m.Path("../../examples/kernel"), m.Path(t.TempDir()), DiscoverOptions{})
		require.NoError(t, err)
		require.NotEmpty(t, sources)

		for _, s := range sources {
			assert.Equal(t, ".c", filepath.Ext(string(s.Rel)))
			assert.NotContains(t, string(s.Rel), "test/")
		}
	})
}

func TestLocalSourceFSAdapter_ReadFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "main.c")
	content := "int main(void)\n{\n\treturn 0;\n}\n"
	writeTestFile(t, path, content)

	got, err := adapter.ReadFile(m.Path(path))
	require.NoError(t, err)

	assert.Equal(t, content, string(got))
}

func TestLocalSourceFSAdapter_WriteFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "deep", "er", "out.c")

	require.NoError(t, adapter.WriteFile(m.Path(path), []byte("first"), 0o644))
	require.NoError(t, adapter.WriteFile(m.Path(path), []byte("second"), 0o644))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(got))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestLocalSourceFSAdapter_PathHelpers(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	rel, err := adapter.RelPath("/src", "/src/mm/page.c")
	require.NoError(t, err)
	assert.Equal(t, m.Path(filepath.Join("mm", "page.c")), rel)

	assert.Equal(t, m.Path(filepath.Join("out", "mm", "page.c")), adapter.JoinPath("out", "mm", "page.c"))

	info, err := adapter.FileInfo(m.Path(t.TempDir()))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()

	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()

	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", path, err)
	}
}
