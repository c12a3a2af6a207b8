package controller

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/cprobe/internal/model"
)

const (
	markOK     = "✓"
	markFailed = "✗"
)

// SimpleUI implements UI using cobra Command's output streams.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(_ ...StartOption) error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {
}

// Wait returns at once; plain output needs no interaction.
func (s *SimpleUI) Wait() {
}

// DisplayEstimation prints the probes every file would receive.
func (s *SimpleUI) DisplayEstimation(estimates []m.FileResult, err error) error {
	if err != nil {
		s.errorf("estimation error: %v\n", err)
		return err
	}

	table, buf := newTable("Path", "Probes")
	total := 0

	for _, e := range estimates {
		probes := fmt.Sprintf("%d", e.Probes)
		if e.Err != nil {
			probes = markFailed
		}

		table.Append([]string{string(e.Source.Rel), probes})

		total += e.Probes
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(estimates)),
		fmt.Sprintf("%d", total),
	})

	table.Render()
	s.printf("\n%s", buf.String())

	return nil
}

// DisplayRunInfo announces a run.
func (s *SimpleUI) DisplayRunInfo(mode m.Mode, files int, threads int) {
	s.printf("Instrumenting %d file(s) in %s mode with %d worker(s)\n", files, mode, threads)
}

// DisplayFileResult reports failures as they are collected. Successful files
// only show up in the run summary.
func (s *SimpleUI) DisplayFileResult(result m.FileResult) {
	if result.Err == nil {
		return
	}

	s.errorf("%s %s: %v\n", markFailed, result.Source.Rel, result.Err)
}

// DisplayRunSummary prints the per-file status table of a run.
func (s *SimpleUI) DisplayRunSummary(summary m.RunSummary) error {
	table, buf := newTable("", "Path", "Probes")

	for _, f := range summary.Files {
		mark := markOK
		if f.Err != nil {
			mark = markFailed
		}

		table.Append([]string{mark, string(f.Source.Rel), fmt.Sprintf("%d", f.Probes)})
	}

	table.SetFooter([]string{
		"",
		fmt.Sprintf("Success %d Errors %d", summary.Succeeded(), summary.Failed()),
		fmt.Sprintf("%d", summary.TotalProbes()),
	})

	table.Render()
	s.printf("\n%s", buf.String())

	if summary.Manifest != "" {
		s.printf("\nManifest: %s\n", summary.Manifest)
	}

	return nil
}

// DisplayCoverage prints hit and total probes per file.
func (s *SimpleUI) DisplayCoverage(report m.CoverageReport, err error) error {
	if err != nil {
		s.errorf("report error: %v\n", err)
		return err
	}

	table, buf := newTable("Path", "Hit", "Probes", "Coverage")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
	})

	for _, f := range report.Files {
		table.Append([]string{
			string(f.Path),
			fmt.Sprintf("%d", f.Hit),
			fmt.Sprintf("%d", f.Probes),
			formatPercent(f.Percent()),
		})
	}

	probes, hit := report.Totals()
	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(report.Files)),
		fmt.Sprintf("%d", hit),
		fmt.Sprintf("%d", probes),
		formatPercent(totalPercent(probes, hit)),
	})

	table.Render()
	s.printf("\n%s", buf.String())

	if report.Unmatched > 0 {
		s.printf("\n%d executed probe(s) matched no manifest entry\n", report.Unmatched)
	}

	return nil
}

func newTable(header ...string) (*tablewriter.Table, *bytes.Buffer) {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")

	alignment := make([]int, len(header))
	for i := range alignment {
		alignment[i] = tablewriter.ALIGN_LEFT
	}

	alignment[len(alignment)-1] = tablewriter.ALIGN_CENTER
	table.SetColumnAlignment(alignment)

	return table, &buf
}

func formatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}

func totalPercent(probes, hit int) float64 {
	return m.FileCoverage{Probes: probes, Hit: hit}.Percent()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func (s *SimpleUI) errorf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), format, args...)
}
