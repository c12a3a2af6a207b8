package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/cprobe/internal/domain"
	m "github.com/mouse-blink/cprobe/internal/model"
)

var instrumentModeFlag string
var instrumentParallelFlag int
var instrumentExcludeFlags []string
var instrumentManifestFlag string
var instrumentSummaryFlag string

// instrumentCmd represents the instrument command.
var instrumentCmd = newInstrumentCmd()

const instrumentLongDescription = `Copy every C file under <source-root> into <output-dir> with coverage
probes inserted, keeping relative paths.

Files below a directory named test or build are skipped (see --exclude).
Blocks guarded by the coverage feature macro are unwrapped so the output
always builds with coverage enabled. The probe header include is added
where it is missing.

The manifest, one "path:line" entry per probe, is written once all files
are done, to <output-dir>/coverage.manifest unless --manifest says
otherwise. The command fails when any file could not be read or written;
the other files are still instrumented and listed in the manifest.`

func newInstrumentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "instrument <source-root> <output-dir>",
		Short: "Insert coverage probes into a copy of a C source tree",
		Long:  instrumentLongDescription,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := setup(cmd, args[0]); err != nil {
				return err
			}

			cfg := settings
			flags := cmd.Flags()

			if flags.Changed("mode") {
				cfg.Mode = instrumentModeFlag
			}

			if flags.Changed("parallel") {
				cfg.Parallel = instrumentParallelFlag
			}

			if flags.Changed("exclude") {
				cfg.Exclude = instrumentExcludeFlags
			}

			if flags.Changed("manifest") {
				cfg.Manifest = instrumentManifestFlag
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			return workflow.Instrument(cmd.Context(), domain.InstrumentArgs{
				EstimateArgs: domain.EstimateArgs{
					Root:    m.Path(args[0]),
					Exclude: cfg.Exclude,
					Mode:    m.Mode(cfg.Mode),
				},
				Output:   m.Path(args[1]),
				Threads:  cfg.Parallel,
				Manifest: m.Path(cfg.Manifest),
				Summary:  m.Path(instrumentSummaryFlag),
			})
		},
	}
	cmd.Flags().StringVarP(&instrumentModeFlag, "mode", "m", "statement", "instrumentation mode: statement or function")
	cmd.Flags().IntVarP(&instrumentParallelFlag, "parallel", "p", 1, "number of files instrumented in parallel")
	cmd.Flags().StringArrayVarP(&instrumentExcludeFlags, "exclude", "x", nil, "skip paths with a component matching this glob (can be repeated)")
	cmd.Flags().StringVar(&instrumentManifestFlag, "manifest", "", "manifest path (default <output-dir>/coverage.manifest)")
	cmd.Flags().StringVar(&instrumentSummaryFlag, "summary", "", "write a YAML run summary to this path")

	return cmd
}

func init() {
	rootCmd.AddCommand(instrumentCmd)
}
