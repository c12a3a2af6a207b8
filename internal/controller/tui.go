package controller

import (
	"io"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	m "github.com/mouse-blink/cprobe/internal/model"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// TUI implements UI using Bubble Tea for interactive display. Start runs the
// program in the background; the Display methods feed it messages and Wait
// blocks until the user quits.
type TUI struct {
	output io.Writer
	input  io.Reader

	mu      sync.Mutex
	program *tea.Program
	started bool
	done    chan struct{}
	runErr  error
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output, input: os.Stdin}
}

// Start launches the view matching the selected mode.
func (t *TUI) Start(options ...StartOption) error {
	cfg := newStartConfig(options...)
	width, height := terminalSize(t.output)

	var model tea.Model

	switch cfg.mode {
	case ModeInstrument:
		model = newRunModel(width, height)
	case ModeReport:
		model = newCoverageModel(width, height)
	default:
		model = newEstimateModel(width, height)
	}

	return t.startWithModel(model)
}

func (t *TUI) startWithModel(model tea.Model) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return nil
	}

	t.program = tea.NewProgram(model,
		tea.WithOutput(t.output),
		tea.WithInput(t.input),
		tea.WithAltScreen(),
	)
	t.done = make(chan struct{})
	t.started = true

	go func(p *tea.Program, done chan struct{}) {
		_, err := p.Run()

		t.mu.Lock()
		t.runErr = err
		t.mu.Unlock()

		close(done)
	}(t.program, t.done)

	return nil
}

// Close stops the program if the user has not quit yet.
func (t *TUI) Close() {
	t.mu.Lock()
	p, done := t.program, t.done
	t.mu.Unlock()

	if p == nil {
		return
	}

	p.Quit()
	<-done
}

// Wait blocks until the user leaves the view.
func (t *TUI) Wait() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done != nil {
		<-done
	}
}

// Err returns the error the program stopped with, if any.
func (t *TUI) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.runErr
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	p := t.program
	t.mu.Unlock()

	if p != nil {
		p.Send(msg)
	}
}

// DisplayEstimation shows the probe estimate of every file.
func (t *TUI) DisplayEstimation(estimates []m.FileResult, err error) error {
	msg := estimationMsg{err: err}

	for _, e := range estimates {
		msg.files = append(msg.files, newFileItem(e))
		msg.total += e.Probes
	}

	t.send(msg)

	return err
}

// DisplayRunInfo sets up the progress view.
func (t *TUI) DisplayRunInfo(mode m.Mode, files int, threads int) {
	t.send(runInfoMsg{mode: mode, files: files, threads: threads})
}

// DisplayFileResult advances the progress view by one file.
func (t *TUI) DisplayFileResult(result m.FileResult) {
	t.send(fileResultMsg{result: result})
}

// DisplayRunSummary switches to the final status list.
func (t *TUI) DisplayRunSummary(summary m.RunSummary) error {
	t.send(runSummaryMsg{summary: summary})

	return nil
}

// DisplayCoverage shows the coverage report in a pager.
func (t *TUI) DisplayCoverage(report m.CoverageReport, err error) error {
	t.send(coverageMsg{report: report, err: err})

	return err
}

// terminalSize returns the size of w when it is a terminal, and a default
// size otherwise.
func terminalSize(w io.Writer) (int, int) {
	f, ok := w.(*os.File)
	if !ok {
		return defaultWidth, defaultHeight
	}

	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return defaultWidth, defaultHeight
	}

	return width, height
}
