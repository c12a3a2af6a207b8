package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/cprobe/internal/domain"
	m "github.com/mouse-blink/cprobe/internal/model"
)

// reportCmd represents the report command.
var reportCmd = newReportCmd()

const reportLongDescription = `Join a probe manifest with the log of an instrumented run.

The probe runtime prints COVERAGE_START, one "file:line:executed" record
per probe and COVERAGE_END, usually on the serial console. Other log lines
are ignored. Records are matched to manifest entries by path, allowing for
a build directory prefix, and per-file hit counts are printed.`

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report <manifest> <runtime-log>",
		Short: "Report which probes ran",
		Long:  reportLongDescription,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := setup(cmd, filepath.Dir(args[0])); err != nil {
				return err
			}

			return workflow.Report(cmd.Context(), domain.ReportArgs{
				Manifest: m.Path(args[0]),
				Log:      m.Path(args[1]),
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
