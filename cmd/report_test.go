package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/cprobe/internal/domain"
	m "github.com/mouse-blink/cprobe/internal/model"
)

func TestReportCmd_PassesPaths(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "coverage.manifest")
	log := filepath.Join(dir, "serial.log")

	cmd, mockWorkflow := newTestRoot(t, newReportCmd())

	mockWorkflow.On("Report", mock.Anything, domain.ReportArgs{
		Manifest: m.Path(manifest),
		Log:      m.Path(log),
	}).Return(nil)

	cmd.SetArgs([]string{"report", manifest, log})
	require.NoError(t, cmd.Execute())
}

func TestReportCmd_RequiresTwoArgs(t *testing.T) {
	cmd, _ := newTestRoot(t, newReportCmd())

	cmd.SetArgs([]string{"report", "coverage.manifest"})
	require.Error(t, cmd.Execute())
}

func TestNewReportCmd(t *testing.T) {
	cmd := newReportCmd()

	assert.Equal(t, "report <manifest> <runtime-log>", cmd.Use)
	assert.Equal(t, reportLongDescription, cmd.Long)
}
