package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/cprobe/internal/config"
	domainmocks "github.com/mouse-blink/cprobe/internal/domain/mocks"
	"github.com/mouse-blink/cprobe/internal/logging"
)

// newTestRoot returns a root command carrying sub and swaps the global
// workflow for a mock until the test ends.
func newTestRoot(t *testing.T, sub *cobra.Command) (*cobra.Command, *domainmocks.MockWorkflow) {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	originalWorkflow := workflow
	originalConfig := configFlag
	workflow = mockWorkflow
	configFlag = ""

	t.Cleanup(func() {
		workflow = originalWorkflow
		configFlag = originalConfig
	})

	cmd := newRootCmd()
	cmd.AddCommand(sub)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	return cmd, mockWorkflow
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, "cprobe.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()

	assert.Equal(t, "cprobe", cmd.Use)
	assert.Equal(t, rootLongDescription, cmd.Long)
	assert.True(t, cmd.SilenceUsage)

	for _, name := range []string{"config", "log-level", "log-format"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	assert.True(t, names["instrument"])
	assert.True(t, names["list"])
	assert.True(t, names["report"])
}

func TestSetup_InvalidConfigFails(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "mode = \"branch\"\n")

	cmd, _ := newTestRoot(t, newListCmd())
	cmd.SetArgs([]string{"list", root})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cprobe.toml")
}

func TestSetup_UnknownConfigKeyFails(t *testing.T) {
	root := t.TempDir()
	path := writeConfig(t, t.TempDir(), "colour = \"blue\"\n")

	cmd, _ := newTestRoot(t, newListCmd())
	cmd.SetArgs([]string{"list", "--config", path, root})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "colour")
}

func TestSetup_MissingExplicitConfigFails(t *testing.T) {
	root := t.TempDir()

	cmd, _ := newTestRoot(t, newListCmd())
	cmd.SetArgs([]string{"list", "--config", filepath.Join(root, "nope.toml"), root})

	require.Error(t, cmd.Execute())
}

func TestSetup_LogsWithComponent(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "mode = \"function\"\n")

	cmd, mockWorkflow := newTestRoot(t, newListCmd())

	var stderr bytes.Buffer
	cmd.SetErr(&stderr)

	mockWorkflow.On("Estimate", mock.Anything, mock.Anything).Return(nil)

	cmd.SetArgs([]string{"list", "--log-level", "debug", "--log-format", "json", root})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, stderr.String(), `"component":"cli"`)
	assert.Contains(t, stderr.String(), "configuration loaded")
}

func TestNewWorkflow_WiresAdapters(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	logCfg := logging.DefaultConfig()
	logCfg.Output = &bytes.Buffer{}

	assert.NotNil(t, newWorkflow(cmd, config.Default(), logCfg))
}
