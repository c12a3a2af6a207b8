package controller

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/cprobe/internal/model"
)

// coverageChrome is the number of lines around the viewport: title, summary
// and footer.
const coverageChrome = 6

// coverageModel pages through a coverage report.
type coverageModel struct {
	width    int
	height   int
	viewport viewport.Model
	report   m.CoverageReport
	err      error
	rendered bool
}

func newCoverageModel(width, height int) coverageModel {
	return coverageModel{
		width:    width,
		height:   height,
		viewport: viewport.New(width, max(height-coverageChrome, 3)),
	}
}

func (m coverageModel) Init() tea.Cmd {
	return nil
}

func (m coverageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-coverageChrome, 3)

		if m.rendered {
			m.viewport.SetContent(renderCoverage(m.report, m.width))
		}

	case tea.KeyMsg:
		if isQuitKey(msg, false) {
			return m, tea.Quit
		}

		m.viewport, cmd = m.viewport.Update(msg)

	case coverageMsg:
		m.report = msg.report
		m.err = msg.err
		m.rendered = true
		m.viewport.SetContent(renderCoverage(m.report, m.width))
		m.viewport.GotoTop()
	}

	return m, cmd
}

func (m coverageModel) View() string {
	if !m.rendered {
		return "Loading coverage report…\n"
	}

	if m.err != nil {
		return fmt.Sprintf("report error: %v\n", m.err)
	}

	probes, hit := m.report.Totals()
	summary := summaryStyle.Render(fmt.Sprintf(
		"Covered: %s / %s (%s)  •  Files: %s  •  Unmatched: %s",
		okStyle.Render(fmt.Sprintf("%d", hit)),
		accentStyle.Render(fmt.Sprintf("%d", probes)),
		accentStyle.Render(formatPercent(totalPercent(probes, hit))),
		accentStyle.Render(fmt.Sprintf("%d", len(m.report.Files))),
		accentStyle.Render(fmt.Sprintf("%d", m.report.Unmatched)),
	))

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("cprobe coverage"),
		summary,
		m.viewport.View(),
		footer(m.width, fmt.Sprintf("↑/k up • ↓/j down • pgup/pgdn page • q quit  %3.0f%%", m.viewport.ScrollPercent()*100)),
	)
}

// renderCoverage lays out one row per file, followed by the output lines of
// the probes that never ran.
func renderCoverage(report m.CoverageReport, width int) string {
	var b strings.Builder

	pathWidth := max(width-24, 10)

	for _, f := range report.Files {
		style := okStyle
		if f.Hit < f.Probes {
			style = failedStyle
		}

		fmt.Fprintf(&b, "  %s  %5d/%-5d %s\n",
			style.Render(fmt.Sprintf("%6s", formatPercent(f.Percent()))),
			f.Hit,
			f.Probes,
			truncatePath(string(f.Path), pathWidth),
		)

		if len(f.Missed) > 0 {
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(
				"            missed: " + joinLines(f.Missed)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func joinLines(lines []int) string {
	parts := make([]string, len(lines))
	for i, l := range lines {
		parts[i] = strconv.Itoa(l)
	}

	return strings.Join(parts, ", ")
}
