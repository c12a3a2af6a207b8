package domain

import (
	"fmt"

	"github.com/mouse-blink/cprobe/internal/adapter"
	m "github.com/mouse-blink/cprobe/internal/model"
)

const outputPerm = 0o644

// Orchestrator carries one source file through read, instrument and write.
// Failures are reported in the returned FileResult rather than as an error so
// that a run can go on with the remaining files.
type Orchestrator interface {
	InstrumentFile(source m.Source, mode m.Mode) (m.FileResult, *Manifest)
}

type orchestrator struct {
	fsAdapter    adapter.SourceFSAdapter
	instrumenter Instrumenter
}

// NewOrchestrator constructs an Orchestrator backed by the provided
// filesystem adapter and instrumenter.
func NewOrchestrator(fsAdapter adapter.SourceFSAdapter, instrumenter Instrumenter) Orchestrator {
	return &orchestrator{
		fsAdapter:    fsAdapter,
		instrumenter: instrumenter,
	}
}

// InstrumentFile returns the file's result and a manifest holding only its
// own probes. The manifest is empty when the file failed.
func (o *orchestrator) InstrumentFile(source m.Source, mode m.Mode) (m.FileResult, *Manifest) {
	manifest := NewManifest()
	result := m.FileResult{Source: source}

	text, err := o.fsAdapter.ReadFile(source.Origin)
	if err != nil {
		result.Err = fmt.Errorf("%w %s: %w", ErrReadSource, source.Origin, err)

		return result, manifest
	}

	file, err := o.instrumenter.Instrument(source, text, mode)
	if err != nil {
		result.Err = fmt.Errorf("instrument %s: %w", source.Origin, err)

		return result, manifest
	}

	if err := o.fsAdapter.WriteFile(file.Target, file.Content, outputPerm); err != nil {
		result.Err = fmt.Errorf("%w %s: %w", ErrWriteOutput, file.Target, err)

		return result, manifest
	}

	for _, p := range file.Probes {
		manifest.Record(p)
	}

	result.Probes = manifest.Len()

	return result, manifest
}
