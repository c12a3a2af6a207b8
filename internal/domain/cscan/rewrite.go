package cscan

import (
	"fmt"
	"strings"

	m "github.com/mouse-blink/cprobe/internal/model"
)

// Defaults matching the probe runtime shipped with the kernel test harness.
const (
	DefaultProbe   = "COVERAGE_LINE"
	DefaultHeader  = "simple_coverage.h"
	DefaultInclude = `#include "coverage/simple_coverage.h"`
)

// Options names the symbols the rewriter works with.
type Options struct {
	// Feature is the build-time coverage toggle stripped by Normalize.
	Feature string
	// Probe is the zero-argument probe macro.
	Probe string
	// Header is looked for to decide whether Include is already present.
	Header string
	// Include is the directive inserted when Header is missing.
	Include string
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Feature: DefaultFeature,
		Probe:   DefaultProbe,
		Header:  DefaultHeader,
		Include: DefaultInclude,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()

	if o.Feature == "" {
		o.Feature = d.Feature
	}

	if o.Probe == "" {
		o.Probe = d.Probe
	}

	if o.Header == "" {
		o.Header = d.Header
	}

	if o.Include == "" {
		o.Include = d.Include
	}

	return o
}

func (o Options) call() string {
	return o.Probe + "();"
}

// Recorder receives every inserted probe in emission order.
type Recorder interface {
	Record(p m.ProbeInsertion)
}

// RecorderFunc adapts a function to Recorder.
type RecorderFunc func(p m.ProbeInsertion)

// Record calls f(p).
func (f RecorderFunc) Record(p m.ProbeInsertion) {
	f(p)
}

// InjectInclude adds the probe header include unless the header is already
// mentioned. It goes right after the last #include line, or on top of the
// file when there is none.
func InjectInclude(text string, opts Options) string {
	opts = opts.withDefaults()

	if strings.Contains(text, opts.Header) {
		return text
	}

	lines := splitLines(text)
	last := -1

	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "#include") {
			last = i
		}
	}

	if last < 0 {
		return opts.Include + "\n" + text
	}

	out := make([]string, 0, len(lines)+1)
	out = append(out, lines[:last+1]...)
	out = append(out, opts.Include)
	out = append(out, lines[last+1:]...)

	return joinLines(out)
}

// Rewrite instruments one file. path is the logical key under which every
// inserted probe is reported to rec, together with its 1-based line in the
// returned text. Every original line is kept byte for byte; probe lines are
// only ever added, and copy the line ending of their neighbour.
func Rewrite(text string, path m.Path, mode m.Mode, opts Options, rec Recorder) (string, error) {
	if !mode.Valid() {
		return "", fmt.Errorf("unknown instrumentation mode %q", mode)
	}

	if rec == nil {
		rec = RecorderFunc(func(m.ProbeInsertion) {})
	}

	opts = opts.withDefaults()
	text = Normalize(text, opts.Feature)
	text = InjectInclude(text, opts)

	raw := splitLines(text)
	tracker := NewTracker(raw)
	out := make([]string, 0, len(raw)+len(raw)/4)

	emit := func(indent, like string) {
		line := indent + opts.call()
		if strings.HasSuffix(like, "\r") {
			line += "\r"
		}

		out = append(out, line)
		rec.Record(m.ProbeInsertion{Path: path, Line: len(out)})
	}

	for i := range raw {
		step := tracker.Step(i)

		switch mode {
		case m.ModeFunction:
			out = append(out, raw[i])

			if step.FunctionOpen && !nextIgnored(tracker, i) && !nextHasProbe(raw, i, opts.Probe) {
				emit(step.Line.Indent+"\t", raw[i])
			}
		case m.ModeStatement:
			if step.Eligible() && Classify(step, opts.Probe).Instrumentable() {
				emit(step.Line.Indent, raw[i])
			}

			out = append(out, raw[i])
		}
	}

	return joinLines(out), nil
}

func nextHasProbe(raw []string, i int, probe string) bool {
	return i+1 < len(raw) && hasProbe(raw[i+1], probe)
}

func nextIgnored(t *Tracker, i int) bool {
	return i+1 < t.Len() && Ignored(t.Line(i+1))
}
