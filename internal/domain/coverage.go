package domain

import (
	"path"
	"slices"
	"strings"

	m "github.com/mouse-blink/cprobe/internal/model"
)

// BuildCoverageReport joins manifest entries with the executed records of a
// runtime dump. Files appear in manifest order.
//
// The runtime reports __FILE__, which may carry a build directory prefix or
// lack the path the manifest uses. A record is matched to the manifest path
// it equals, or else to the longest manifest path that is a whole-component
// suffix of it. A record whose path is itself a suffix of several manifest
// paths is ambiguous and left unmatched. Executed records that match no
// probe are counted as unmatched; records that did not execute are ignored.
func BuildCoverageReport(entries []m.ProbeInsertion, hits []m.CoverageHit) m.CoverageReport {
	var order []m.Path

	probes := make(map[m.Path]map[int]bool)

	for _, e := range entries {
		lines, ok := probes[e.Path]
		if !ok {
			lines = make(map[int]bool)
			probes[e.Path] = lines
			order = append(order, e.Path)
		}

		lines[e.Line] = false
	}

	report := m.CoverageReport{}

	for _, hit := range hits {
		if !hit.Executed {
			continue
		}

		p, ok := matchCoveragePath(cleanHitPath(hit.File), order)
		if !ok {
			report.Unmatched++

			continue
		}

		if _, ok := probes[p][hit.Line]; !ok {
			report.Unmatched++

			continue
		}

		probes[p][hit.Line] = true
	}

	for _, p := range order {
		fc := m.FileCoverage{Path: p, Probes: len(probes[p])}

		for line, hit := range probes[p] {
			if hit {
				fc.Hit++
			} else {
				fc.Missed = append(fc.Missed, line)
			}
		}

		slices.Sort(fc.Missed)
		report.Files = append(report.Files, fc)
	}

	return report
}

func cleanHitPath(file string) string {
	file = strings.ReplaceAll(file, "\\", "/")

	return strings.TrimPrefix(path.Clean(file), "./")
}

// matchCoveragePath prefers the longest manifest path that file ends with.
// Failing that, file may be a shortened form of a manifest path; it matches
// only when exactly one manifest path ends with it.
func matchCoveragePath(file string, paths []m.Path) (m.Path, bool) {
	var (
		best      m.Path
		shortened []m.Path
	)

	for _, p := range paths {
		candidate := string(p)

		switch {
		case candidate == file:
			return p, true
		case hasComponentSuffix(file, candidate):
			if len(candidate) > len(best) {
				best = p
			}
		case hasComponentSuffix(candidate, file):
			shortened = append(shortened, p)
		}
	}

	if best != "" {
		return best, true
	}

	if len(shortened) == 1 {
		return shortened[0], true
	}

	return "", false
}

// hasComponentSuffix reports whether s ends with suffix on a path component
// boundary.
func hasComponentSuffix(s, suffix string) bool {
	return strings.HasSuffix(s, "/"+suffix)
}
