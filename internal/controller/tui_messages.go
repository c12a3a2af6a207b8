package controller

import m "github.com/mouse-blink/cprobe/internal/model"

// Message types.
type estimationMsg struct {
	files []fileItem
	total int
	err   error
}

type runInfoMsg struct {
	mode    m.Mode
	files   int
	threads int
}

type fileResultMsg struct {
	result m.FileResult
}

type runSummaryMsg struct {
	summary m.RunSummary
}

type coverageMsg struct {
	report m.CoverageReport
	err    error
}

// List item types.
type fileItem struct {
	path   string
	count  int
	failed bool
}

func (f fileItem) FilterValue() string {
	return f.path
}

func newFileItem(result m.FileResult) fileItem {
	return fileItem{
		path:   string(result.Source.Rel),
		count:  result.Probes,
		failed: result.Err != nil,
	}
}
