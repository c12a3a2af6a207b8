// Package cmd provides the root command and CLI setup for cprobe.
package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mouse-blink/cprobe/internal/adapter"
	"github.com/mouse-blink/cprobe/internal/config"
	"github.com/mouse-blink/cprobe/internal/controller"
	"github.com/mouse-blink/cprobe/internal/domain"
	"github.com/mouse-blink/cprobe/internal/domain/cscan"
	"github.com/mouse-blink/cprobe/internal/logging"
)

var configFlag string
var logLevelFlag string
var logFormatFlag string

// workflow is built on first use from the resolved configuration. Tests
// replace it with a mock.
var workflow domain.Workflow
var settings = config.Default()
var logger = zerolog.Nop()

// newWorkflow wires the production adapters.
var newWorkflow = func(cmd *cobra.Command, cfg config.Config, logCfg logging.Config) domain.Workflow {
	fsAdapter := adapter.NewLocalSourceFSAdapter()
	instrumenter := domain.NewInstrumenter(cscan.Options{
		Feature: cfg.Feature,
		Probe:   cfg.Probe,
		Header:  cfg.Header,
		Include: cfg.Include,
	})

	return domain.NewWorkflow(
		fsAdapter,
		adapter.NewManifestStore(),
		adapter.NewLocalCoverageLogAdapter(),
		controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout())),
		domain.NewOrchestrator(fsAdapter, instrumenter),
		instrumenter,
		logging.NewWithComponent(logCfg, "workflow"),
	)
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

const rootLongDescription = `cprobe inserts line coverage probes into C sources.

It copies a source tree into an output directory, adding a call to the
probe macro before every executable statement (statement mode) or at the
top of every function body (function mode), and writes a manifest listing
the file and line of each probe. The probe runtime reports which probes
ran; "cprobe report" joins that report with the manifest.

Settings are read from cprobe.toml, looked up from the source root
upwards, unless --config names a file. Flags override the file.`

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "cprobe",
		Short:        "Line coverage instrumenter for C sources",
		Long:         rootLongDescription,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to a cprobe.toml file")
	cmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level: trace, debug, info, warn or error")
	cmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", logging.FormatConsole, "log format: console or json")

	return cmd
}

// setup resolves the configuration for a command working under startDir,
// builds the logger and, unless one is already set, the workflow.
func setup(cmd *cobra.Command, startDir string) error {
	cfg, path, err := config.Resolve(configFlag, startDir)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevelFlag
	}

	settings = cfg

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.LogLevel
	logCfg.Format = logFormatFlag
	logCfg.Output = cmd.ErrOrStderr()
	logger = logging.NewWithComponent(logCfg, "cli")

	if path != "" {
		logger.Debug().Str("config", path).Msg("configuration loaded")
	}

	if workflow == nil {
		workflow = newWorkflow(cmd, cfg, logCfg)
	}

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
// Any error, including a run in which some files failed, exits with status 1.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}
