package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/cprobe/internal/domain"
	m "github.com/mouse-blink/cprobe/internal/model"
)

func TestListCmd_Defaults(t *testing.T) {
	root := t.TempDir()
	cmd, mockWorkflow := newTestRoot(t, newListCmd())

	mockWorkflow.On("Estimate", mock.Anything, mock.MatchedBy(func(args domain.EstimateArgs) bool {
		return args.Root == m.Path(root) &&
			args.Mode == m.ModeStatement &&
			assert.ObjectsAreEqual([]string{"test", "build"}, args.Exclude)
	})).Return(nil)

	cmd.SetArgs([]string{"list", root})
	require.NoError(t, cmd.Execute())
}

func TestListCmd_FlagsOverrideConfig(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "mode = \"statement\"\nexclude = [\"vendor\"]\n")

	cmd, mockWorkflow := newTestRoot(t, newListCmd())

	mockWorkflow.On("Estimate", mock.Anything, mock.MatchedBy(func(args domain.EstimateArgs) bool {
		return args.Mode == m.ModeFunction &&
			assert.ObjectsAreEqual([]string{"drivers", "arch"}, args.Exclude)
	})).Return(nil)

	cmd.SetArgs([]string{"list", "--mode", "function", "-x", "drivers", "-x", "arch", root})
	require.NoError(t, cmd.Execute())
}

func TestListCmd_UsesConfigFile(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "mode = \"function\"\nexclude = []\n")

	cmd, mockWorkflow := newTestRoot(t, newListCmd())

	mockWorkflow.On("Estimate", mock.Anything, mock.MatchedBy(func(args domain.EstimateArgs) bool {
		return args.Mode == m.ModeFunction && len(args.Exclude) == 0 && args.Exclude != nil
	})).Return(nil)

	cmd.SetArgs([]string{"list", root})
	require.NoError(t, cmd.Execute())
}

func TestListCmd_RejectsUnknownMode(t *testing.T) {
	root := t.TempDir()
	cmd, _ := newTestRoot(t, newListCmd())

	cmd.SetArgs([]string{"list", "--mode", "branch", root})
	require.Error(t, cmd.Execute())
}

func TestListCmd_PropagatesWorkflowError(t *testing.T) {
	root := t.TempDir()
	cmd, mockWorkflow := newTestRoot(t, newListCmd())

	boom := errors.New("boom")
	mockWorkflow.On("Estimate", mock.Anything, mock.Anything).Return(boom)

	cmd.SetArgs([]string{"list", root})
	require.ErrorIs(t, cmd.Execute(), boom)
}

func TestListCmd_RequiresOneArg(t *testing.T) {
	cmd, _ := newTestRoot(t, newListCmd())

	cmd.SetArgs([]string{"list"})
	require.Error(t, cmd.Execute())
}

func TestNewListCmd(t *testing.T) {
	cmd := newListCmd()

	assert.Equal(t, "list <source-root>", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, listLongDescription, cmd.Long)
	assert.NotNil(t, cmd.Flags().Lookup("exclude"))
	assert.NotNil(t, cmd.Flags().Lookup("mode"))
}
