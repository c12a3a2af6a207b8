package domain

import (
	"github.com/mouse-blink/cprobe/internal/domain/cscan"
	m "github.com/mouse-blink/cprobe/internal/model"
)

// Instrumenter turns the text of one C file into its instrumented copy.
// Implementations are pure: they neither read nor write files.
type Instrumenter interface {
	Instrument(source m.Source, text []byte, mode m.Mode) (m.InstrumentedFile, error)
	EstimateProbes(source m.Source, text []byte, mode m.Mode) (int, error)
}

type instrumenter struct {
	opts cscan.Options
}

// NewInstrumenter creates an Instrumenter using the given probe symbols.
// Empty fields of opts fall back to the cscan defaults.
func NewInstrumenter(opts cscan.Options) Instrumenter {
	return &instrumenter{opts: opts}
}

// Instrument rewrites text. Probes are keyed by the source's relative path.
func (in *instrumenter) Instrument(source m.Source, text []byte, mode m.Mode) (m.InstrumentedFile, error) {
	var probes []m.ProbeInsertion

	out, err := cscan.Rewrite(string(text), source.Rel, mode, in.opts, cscan.RecorderFunc(func(p m.ProbeInsertion) {
		probes = append(probes, p)
	}))
	if err != nil {
		return m.InstrumentedFile{}, err
	}

	return m.InstrumentedFile{
		Target:  source.Output,
		Content: []byte(out),
		Probes:  probes,
	}, nil
}

// EstimateProbes counts the probes Instrument would insert.
func (in *instrumenter) EstimateProbes(source m.Source, text []byte, mode m.Mode) (int, error) {
	file, err := in.Instrument(source, text, mode)
	if err != nil {
		return 0, err
	}

	return len(file.Probes), nil
}
