package controller

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/cprobe/internal/model"
)

// runModel follows an instrumentation run: a progress bar while files
// complete, then the per-file status list and the totals.
type runModel struct {
	width       int
	height      int
	progressBar progress.Model
	fileList    list.Model
	mode        m.Mode
	files       int
	threads     int
	done        int
	failed      int
	probes      int
	summary     *m.RunSummary
}

func newRunModel(width, height int) runModel {
	return runModel{
		width:  width,
		height: height,
		progressBar: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(40),
			progress.WithoutPercentage(),
		),
		fileList: newFileList(fileDelegate{withMark: true}, "Filter by path…"),
	}
}

func (m runModel) Init() tea.Cmd {
	return nil
}

func (m runModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		if isQuitKey(msg, m.fileList.FilterState() == list.Filtering) {
			return m, tea.Quit
		}

		m.fileList, cmd = m.fileList.Update(msg)

	case runInfoMsg:
		m.mode = msg.mode
		m.files = msg.files
		m.threads = msg.threads

	case fileResultMsg:
		m.done++
		m.probes += msg.result.Probes

		if msg.result.Err != nil {
			m.failed++
		}

		cmd = m.fileList.InsertItem(len(m.fileList.Items()), newFileItem(msg.result))

	case runSummaryMsg:
		summary := msg.summary
		m.summary = &summary
	}

	return m, cmd
}

func (m runModel) percent() float64 {
	if m.files == 0 {
		return 0
	}

	return float64(m.done) / float64(m.files)
}

func (m runModel) View() string {
	if m.files == 0 && m.summary == nil {
		return "Discovering sources…\n"
	}

	if m.summary != nil {
		return m.viewSummary()
	}

	info := summaryStyle.Render(fmt.Sprintf(
		"Files: %s / %s  •  Mode: %s  •  Workers: %s",
		accentStyle.Render(fmt.Sprintf("%d", m.done)),
		accentStyle.Render(fmt.Sprintf("%d", m.files)),
		accentStyle.Render(string(m.mode)),
		accentStyle.Render(fmt.Sprintf("%d", m.threads)),
	))

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("cprobe instrumentation"),
		info,
		lipgloss.NewStyle().Padding(0, 2).Render(m.progressBar.ViewAs(m.percent())),
		footer(m.width, "q quit"),
	)
}

func (m runModel) viewSummary() string {
	s := m.summary

	totals := summaryStyle.Render(fmt.Sprintf(
		"Success: %s  •  Errors: %s  •  Probes: %s",
		okStyle.Render(fmt.Sprintf("%d", s.Succeeded())),
		failedStyle.Render(fmt.Sprintf("%d", s.Failed())),
		accentStyle.Render(fmt.Sprintf("%d", s.TotalProbes())),
	))

	parts := []string{
		titleStyle.Render("cprobe instrumentation finished"),
		totals,
		framedList(m.fileList, fmt.Sprintf("   %*s  %s", countWidth, "Probes", "File Path"), m.width, m.height),
	}

	if s.Manifest != "" {
		parts = append(parts, summaryStyle.Render("Manifest: "+accentStyle.Render(string(s.Manifest))))
	}

	parts = append(parts, footer(m.width, "↑/k up • ↓/j down • / filter • q quit"))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
