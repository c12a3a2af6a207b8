package controller

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// estimateModel lists the probes every file would receive.
type estimateModel struct {
	width    int
	height   int
	fileList list.Model
	total    int
	files    int
	err      error
	rendered bool
}

func newEstimateModel(width, height int) estimateModel {
	return estimateModel{
		width:    width,
		height:   height,
		fileList: newFileList(fileDelegate{}, "Filter by path…"),
	}
}

func (m estimateModel) Init() tea.Cmd {
	return nil
}

func (m estimateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

	case estimationMsg:
		m = m.handleEstimationMsg(msg)
	}

	return m, cmd
}

func (m estimateModel) handleEstimationMsg(msg estimationMsg) estimateModel {
	m.total = msg.total
	m.files = len(msg.files)
	m.err = msg.err

	items := make([]list.Item, 0, len(msg.files))
	for _, f := range msg.files {
		items = append(items, f)
	}

	m.fileList.SetItems(items)
	m.rendered = true

	return m
}

func (m estimateModel) View() string {
	if !m.rendered {
		return "Loading probe estimate…\n"
	}

	if m.err != nil {
		return fmt.Sprintf("estimation error: %v\n", m.err)
	}

	summary := summaryStyle.Render(fmt.Sprintf(
		"Total Probes: %s   Files: %s",
		accentStyle.Render(fmt.Sprintf("%d", m.total)),
		accentStyle.Render(fmt.Sprintf("%d", m.files)),
	))

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("cprobe probe estimate"),
		summary,
		framedList(m.fileList, fmt.Sprintf("%*s  %s", countWidth, "Probes", "File Path"), m.width, m.height),
		footer(m.width, "↑/k up • ↓/j down • / filter • q quit"),
	)
}

// isQuitKey reports whether msg ends the viewer. While a filter is being
// typed only ctrl+c does.
func isQuitKey(msg tea.KeyMsg, filtering bool) bool {
	switch msg.String() {
	case "ctrl+c":
		return true
	case "q":
		return !filtering
	}

	return false
}
