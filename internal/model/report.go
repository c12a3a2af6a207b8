package model

// FileResult holds the outcome of instrumenting a single source file.
type FileResult struct {
	Source Source
	Probes int   // number of probes inserted
	Err    error // read or write failure; nil on success
}

// RunSummary aggregates the per-file results of one run in processing order.
type RunSummary struct {
	Mode     Mode
	Files    []FileResult
	Manifest Path
}

// Succeeded returns the number of files instrumented without error.
func (s RunSummary) Succeeded() int {
	n := 0

	for _, f := range s.Files {
		if f.Err == nil {
			n++
		}
	}

	return n
}

// Failed returns the number of files that could not be instrumented.
func (s RunSummary) Failed() int {
	return len(s.Files) - s.Succeeded()
}

// TotalProbes returns the number of probes inserted across all files.
func (s RunSummary) TotalProbes() int {
	n := 0

	for _, f := range s.Files {
		n += f.Probes
	}

	return n
}

// CoverageHit is one entry of a runtime coverage dump.
type CoverageHit struct {
	File     string
	Line     int
	Executed bool
}

// FileCoverage joins the manifest entries of one file with runtime hits.
type FileCoverage struct {
	Path   Path
	Probes int
	Hit    int
	// Missed lists the output line numbers of probes that never ran.
	Missed []int
}

// Percent returns the share of probes that ran, 0 when the file has none.
func (f FileCoverage) Percent() float64 {
	if f.Probes == 0 {
		return 0
	}

	return float64(f.Hit) * 100 / float64(f.Probes)
}

// CoverageReport is the result of joining a manifest with a runtime dump.
type CoverageReport struct {
	Files     []FileCoverage
	Unmatched int // executed hits with no manifest entry
}

// Totals returns the summed probe and hit counts.
func (r CoverageReport) Totals() (probes, hit int) {
	for _, f := range r.Files {
		probes += f.Probes
		hit += f.Hit
	}

	return probes, hit
}
