package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/cprobe/internal/domain"
	m "github.com/mouse-blink/cprobe/internal/model"
)

// listCmd represents the list command.
var listCmd = newListCmd()
var listModeFlag string
var listExcludeFlags []string

const listLongDescription = `List the C files instrument would process under <source-root> and the
number of probes each would receive. Nothing is written.`

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <source-root>",
		Short: "List source files and probe counts",
		Long:  listLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := setup(cmd, args[0]); err != nil {
				return err
			}

			cfg := settings

			if cmd.Flags().Changed("mode") {
				cfg.Mode = listModeFlag
			}

			if cmd.Flags().Changed("exclude") {
				cfg.Exclude = listExcludeFlags
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			return workflow.Estimate(cmd.Context(), domain.EstimateArgs{
				Root:    m.Path(args[0]),
				Exclude: cfg.Exclude,
				Mode:    m.Mode(cfg.Mode),
			})
		},
	}
	cmd.Flags().StringVarP(&listModeFlag, "mode", "m", "statement", "instrumentation mode: statement or function")
	cmd.Flags().StringArrayVarP(&listExcludeFlags, "exclude", "x", nil, "skip paths with a component matching this glob (can be repeated)")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
