// Package domain holds the instrumentation workflow: discovery, per-file
// orchestration, manifest accumulation and coverage reporting.
package domain

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/cprobe/internal/adapter"
	"github.com/mouse-blink/cprobe/internal/controller"
	m "github.com/mouse-blink/cprobe/internal/model"
)

// EstimateArgs selects the sources of a run.
type EstimateArgs struct {
	Root    m.Path
	Exclude []string // nil means adapter.DefaultExclude
	Mode    m.Mode
}

// InstrumentArgs configures an instrumentation run.
type InstrumentArgs struct {
	EstimateArgs
	Output   m.Path
	Threads  int
	Manifest m.Path // defaults to DefaultManifestName under Output
	Summary  m.Path // YAML run summary, skipped when empty
}

// ReportArgs names the inputs of a coverage report.
type ReportArgs struct {
	Manifest m.Path
	Log      m.Path
}

// Workflow defines the operations behind the CLI commands.
type Workflow interface {
	Estimate(ctx context.Context, args EstimateArgs) error
	Instrument(ctx context.Context, args InstrumentArgs) error
	Report(ctx context.Context, args ReportArgs) error
}

type workflow struct {
	fsAdapter     adapter.SourceFSAdapter
	manifestStore adapter.ManifestStore
	coverageLog   adapter.CoverageLogAdapter
	ui            controller.UI
	orchestrator  Orchestrator
	instrumenter  Instrumenter
	log           zerolog.Logger
}

// NewWorkflow creates a Workflow wired to the given adapters.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	manifestStore adapter.ManifestStore,
	coverageLog adapter.CoverageLogAdapter,
	ui controller.UI,
	orchestrator Orchestrator,
	instrumenter Instrumenter,
	log zerolog.Logger,
) Workflow {
	return &workflow{
		fsAdapter:     fsAdapter,
		manifestStore: manifestStore,
		coverageLog:   coverageLog,
		ui:            ui,
		orchestrator:  orchestrator,
		instrumenter:  instrumenter,
		log:           log,
	}
}

// Estimate counts, without writing anything, the probes every source would
// receive.
func (w *workflow) Estimate(ctx context.Context, args EstimateArgs) error {
	if err := w.ui.Start(controller.WithEstimateMode()); err != nil {
		return err
	}
	defer w.ui.Close()

	estimates, err := w.estimate(ctx, args)
	if displayErr := w.ui.DisplayEstimation(estimates, err); displayErr != nil && err == nil {
		err = displayErr
	}

	if err != nil {
		return err
	}

	w.ui.Wait()

	return nil
}

func (w *workflow) estimate(ctx context.Context, args EstimateArgs) ([]m.FileResult, error) {
	if !args.Mode.Valid() {
		return nil, fmt.Errorf("unknown instrumentation mode %q", args.Mode)
	}

	sources, err := w.getSources(args.Root, "", args.Exclude)
	if err != nil {
		return nil, err
	}

	estimates := make([]m.FileResult, 0, len(sources))

	for _, source := range sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		result := m.FileResult{Source: source}

		text, err := w.fsAdapter.ReadFile(source.Origin)
		if err == nil {
			result.Probes, err = w.instrumenter.EstimateProbes(source, text, args.Mode)
		} else {
			err = fmt.Errorf("%w %s: %w", ErrReadSource, source.Origin, err)
		}

		if err != nil {
			w.log.Error().Err(err).Str("file", string(source.Rel)).Msg("estimate failed")
			result.Err = err
		}

		estimates = append(estimates, result)
	}

	return estimates, nil
}

// Instrument transforms every source under the root into the output
// directory. Files are processed by up to args.Threads workers, each with a
// file-scoped manifest; the manifests are merged in discovery order once all
// workers are done, so the result matches a sequential run. The manifest is
// written once at the end and not at all when ctx is cancelled first.
func (w *workflow) Instrument(ctx context.Context, args InstrumentArgs) error {
	if !args.Mode.Valid() {
		return fmt.Errorf("unknown instrumentation mode %q", args.Mode)
	}

	if args.Output == "" {
		return fmt.Errorf("output directory is required")
	}

	threads := max(args.Threads, 1)

	manifestPath := args.Manifest
	if manifestPath == "" {
		manifestPath = w.fsAdapter.JoinPath(string(args.Output), DefaultManifestName)
	}

	sources, err := w.getSources(args.Root, args.Output, args.Exclude)
	if err != nil {
		return err
	}

	if err := w.ui.Start(controller.WithInstrumentMode()); err != nil {
		return err
	}
	defer w.ui.Close()

	w.ui.DisplayRunInfo(args.Mode, len(sources), threads)

	results, manifests, err := w.instrumentAll(ctx, sources, args.Mode, threads)
	if err != nil {
		w.log.Warn().Err(err).Msg("run aborted, manifest not written")

		return err
	}

	run := NewManifest()
	for i, result := range results {
		run.Merge(manifests[i])
		w.ui.DisplayFileResult(result)
	}

	if err := w.manifestStore.SaveManifest(manifestPath, run); err != nil {
		return err
	}

	summary := m.RunSummary{Mode: args.Mode, Files: results, Manifest: manifestPath}

	if args.Summary != "" {
		if err := w.manifestStore.SaveSummary(args.Summary, summary); err != nil {
			return err
		}
	}

	w.log.Info().
		Int("files", len(results)).
		Int("failed", summary.Failed()).
		Int("probes", run.Len()).
		Str("manifest", string(manifestPath)).
		Msg("instrumentation finished")

	if err := w.ui.DisplayRunSummary(summary); err != nil {
		return err
	}

	w.ui.Wait()

	if failed := summary.Failed(); failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrFilesFailed, failed, len(results))
	}

	return nil
}

func (w *workflow) instrumentAll(ctx context.Context, sources []m.Source, mode m.Mode, threads int) ([]m.FileResult, []*Manifest, error) {
	results := make([]m.FileResult, len(sources))
	manifests := make([]*Manifest, len(sources))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(threads)

	for i, source := range sources {
		if groupCtx.Err() != nil {
			break
		}

		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			result, manifest := w.orchestrator.InstrumentFile(source, mode)
			results[i] = result
			manifests[i] = manifest

			if result.Err != nil {
				w.log.Error().Err(result.Err).Str("file", string(source.Rel)).Msg("instrumentation failed")
			} else {
				w.log.Debug().Str("file", string(source.Rel)).Int("probes", result.Probes).Msg("instrumented")
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	return results, manifests, nil
}

// Report joins a manifest with a runtime coverage log.
func (w *workflow) Report(ctx context.Context, args ReportArgs) error {
	if err := w.ui.Start(controller.WithReportMode()); err != nil {
		return err
	}
	defer w.ui.Close()

	report, err := w.report(ctx, args)
	if displayErr := w.ui.DisplayCoverage(report, err); displayErr != nil && err == nil {
		err = displayErr
	}

	if err != nil {
		return err
	}

	w.ui.Wait()

	return nil
}

func (w *workflow) report(ctx context.Context, args ReportArgs) (m.CoverageReport, error) {
	entries, err := w.manifestStore.LoadManifest(args.Manifest)
	if err != nil {
		return m.CoverageReport{}, err
	}

	if err := ctx.Err(); err != nil {
		return m.CoverageReport{}, err
	}

	hits, err := w.coverageLog.ReadCoverageLog(args.Log)
	if err != nil {
		return m.CoverageReport{}, err
	}

	report := BuildCoverageReport(entries, hits)
	probes, hit := report.Totals()

	w.log.Info().
		Int("files", len(report.Files)).
		Int("probes", probes).
		Int("hit", hit).
		Int("unmatched", report.Unmatched).
		Msg("coverage report built")

	return report, nil
}

func (w *workflow) getSources(root, out m.Path, exclude []string) ([]m.Source, error) {
	sources, err := w.fsAdapter.Get(root, out, adapter.DiscoverOptions{Exclude: exclude})
	if err != nil {
		return nil, err
	}

	if len(sources) == 0 {
		return nil, fmt.Errorf("%w under %s", ErrNoSources, root)
	}

	w.log.Debug().Int("files", len(sources)).Str("root", string(root)).Msg("sources discovered")

	return sources, nil
}
