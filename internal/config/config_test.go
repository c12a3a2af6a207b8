package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
mode = "function"
probe = "TRACE_LINE"
parallel = 4
exclude = ["test", "arch_*"]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "function", cfg.Mode)
	assert.Equal(t, "TRACE_LINE", cfg.Probe)
	assert.Equal(t, 4, cfg.Parallel)
	assert.Equal(t, []string{"test", "arch_*"}, cfg.Exclude)
	assert.Equal(t, Default().Feature, cfg.Feature)
	assert.Equal(t, Default().Include, cfg.Include)
}

func TestLoad_EmptyExcludeDisablesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, t.TempDir(), "exclude = []\n"))
	require.NoError(t, err)
	assert.Empty(t, cfg.Exclude)
	assert.NotNil(t, cfg.Exclude)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("unknown key", func(t *testing.T) {
		_, err := Load(writeConfig(t, t.TempDir(), "modes = \"function\"\n"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnknownKey))
	})

	t.Run("bad syntax", func(t *testing.T) {
		_, err := Load(writeConfig(t, t.TempDir(), "mode = \n"))
		require.Error(t, err)
	})

	t.Run("bad mode", func(t *testing.T) {
		_, err := Load(writeConfig(t, t.TempDir(), "mode = \"branch\"\n"))
		require.Error(t, err)
	})

	t.Run("bad probe", func(t *testing.T) {
		_, err := Load(writeConfig(t, t.TempDir(), "probe = \"COVERAGE_LINE();\"\n"))
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), FileName))
		require.Error(t, err)
	})
}

func TestFind_WalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "kernel", "mm")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	want := writeConfig(t, root, "mode = \"function\"\n")

	got, ok, err := Find(nested)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, want, got)
}

func TestResolve(t *testing.T) {
	t.Run("defaults without a file", func(t *testing.T) {
		cfg, path, err := Resolve("", t.TempDir())
		require.NoError(t, err)
		assert.Empty(t, path)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("explicit path wins", func(t *testing.T) {
		root := t.TempDir()
		writeConfig(t, root, "mode = \"function\"\n")

		otherDir := t.TempDir()
		explicit := filepath.Join(otherDir, "custom.toml")
		require.NoError(t, os.WriteFile(explicit, []byte("parallel = 8\n"), 0o644))

		cfg, path, err := Resolve(explicit, root)
		require.NoError(t, err)
		assert.Equal(t, explicit, path)
		assert.Equal(t, "statement", cfg.Mode)
		assert.Equal(t, 8, cfg.Parallel)
	})

	t.Run("discovered file", func(t *testing.T) {
		root := t.TempDir()
		want := writeConfig(t, root, "feature = \"KFS_COVERAGE\"\n")

		cfg, path, err := Resolve("", root)
		require.NoError(t, err)
		assert.Equal(t, want, path)
		assert.Equal(t, "KFS_COVERAGE", cfg.Feature)
	})
}

func TestMerge_KeepsUnsetFields(t *testing.T) {
	got := Default().Merge(Config{Manifest: "out.manifest"})

	want := Default()
	want.Manifest = "out.manifest"

	assert.Equal(t, want, got)
}
