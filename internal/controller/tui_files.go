package controller

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const countWidth = 6

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 0, 0, 2)
	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 0, 1, 2)
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	failedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Align(lipgloss.Center)
)

// fileDelegate renders one fileItem per line: status mark, probe count and
// path. withMark is false for estimates, where nothing has run yet.
type fileDelegate struct {
	withMark bool
}

func (d fileDelegate) Height() int  { return 1 }
func (d fileDelegate) Spacing() int { return 0 }
func (d fileDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d fileDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	file, ok := item.(fileItem)
	if !ok {
		return
	}

	pathStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	countStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("11")).
		Bold(true).
		Width(countWidth).
		Align(lipgloss.Right)

	if index == lm.Index() {
		selected := lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		pathStyle = selected
		countStyle = selected.Width(countWidth).Align(lipgloss.Right)
	}

	width := lm.Width() - countWidth - 2

	count := fmt.Sprintf("%d", file.count)
	if file.failed {
		count = markFailed
	}

	line := countStyle.Render(count) + "  "

	if d.withMark {
		mark := okStyle.Render(markOK)
		if file.failed {
			mark = failedStyle.Render(markFailed)
		}

		line = mark + " " + line
		width -= 2
	}

	_, _ = fmt.Fprint(w, line+pathStyle.Render(truncatePath(file.path, width)))
}

func newFileList(delegate list.ItemDelegate, placeholder string) list.Model {
	files := list.New([]list.Item{}, delegate, 80, 20)
	files.SetShowPagination(false)
	files.SetShowFilter(true)
	files.SetShowHelp(false)
	files.SetShowTitle(false)
	files.SetShowStatusBar(false)
	files.FilterInput.Placeholder = placeholder

	return files
}

// truncatePath shortens path to width cells by dropping its leading part, so
// the file name stays visible.
func truncatePath(path string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(path) <= width {
		return path
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	runes := []rune(path)
	keep := min(width-lipgloss.Width(ellipsis), len(runes))

	for lipgloss.Width(string(runes[len(runes)-keep:])) > keep {
		keep--
	}

	return ellipsis + string(runes[len(runes)-keep:])
}

// framedList draws the list in a rounded box under a column header. height
// and width are the window size.
func framedList(files list.Model, header string, width, height int) string {
	listHeight := max(height-9, 5)
	listWidth := max(width-6, 20)

	files.SetHeight(listHeight)
	files.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return box.Render(lipgloss.JoinVertical(lipgloss.Left, headerStyle.Render(header), files.View()))
}

func footer(width int, text string) string {
	return footerStyle.Width(width).Render(text)
}
