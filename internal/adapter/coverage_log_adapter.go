package adapter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	m "github.com/mouse-blink/cprobe/internal/model"
)

// Markers framing a coverage dump in the runtime log.
const (
	CoverageStartMarker = "COVERAGE_START"
	CoverageEndMarker   = "COVERAGE_END"
)

var (
	// ErrNoCoverageData is returned when the log holds no coverage dump.
	ErrNoCoverageData = errors.New("no coverage data in log")
	// ErrIncompleteCoverage is returned when a dump starts but never ends.
	ErrIncompleteCoverage = errors.New("coverage dump not terminated")
)

// CoverageLogAdapter extracts the coverage dump the probe runtime prints on
// its log (usually the serial console).
type CoverageLogAdapter interface {
	// ReadCoverageLog opens path and parses it with ParseCoverageLog.
	ReadCoverageLog(path m.Path) ([]m.CoverageHit, error)
	// ParseCoverageLog returns the file:line:executed records found between
	// the start and end markers. Several dumps are concatenated.
	ParseCoverageLog(r io.Reader) ([]m.CoverageHit, error)
}

// LocalCoverageLogAdapter implements CoverageLogAdapter.
type LocalCoverageLogAdapter struct{}

// NewLocalCoverageLogAdapter constructs a LocalCoverageLogAdapter.
func NewLocalCoverageLogAdapter() *LocalCoverageLogAdapter {
	return &LocalCoverageLogAdapter{}
}

// ReadCoverageLog parses the log stored at path.
func (a *LocalCoverageLogAdapter) ReadCoverageLog(path m.Path) ([]m.CoverageHit, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return nil, fmt.Errorf("open coverage log: %w", err)
	}

	defer func() { _ = f.Close() }()

	hits, err := a.ParseCoverageLog(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return hits, nil
}

// ParseCoverageLog scans r for coverage dumps. Markers may carry a log prefix
// such as a timestamp; lines inside a dump that are not records are skipped,
// since console output can interleave with the dump.
func (a *LocalCoverageLogAdapter) ParseCoverageLog(r io.Reader) ([]m.CoverageHit, error) {
	var hits []m.CoverageHit

	inDump := false
	seen := false

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch {
		case strings.HasSuffix(line, CoverageStartMarker):
			inDump = true
			seen = true
		case strings.HasSuffix(line, CoverageEndMarker):
			inDump = false
		case inDump:
			if hit, ok := parseCoverageRecord(line); ok {
				hits = append(hits, hit)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read coverage log: %w", err)
	}

	if !seen {
		return nil, ErrNoCoverageData
	}

	if inDump {
		return nil, ErrIncompleteCoverage
	}

	return hits, nil
}

// parseCoverageRecord reads "file:line:executed". The file part may itself
// contain colons.
func parseCoverageRecord(line string) (m.CoverageHit, bool) {
	last := strings.LastIndexByte(line, ':')
	if last <= 0 {
		return m.CoverageHit{}, false
	}

	mid := strings.LastIndexByte(line[:last], ':')
	if mid <= 0 {
		return m.CoverageHit{}, false
	}

	lineNo, err := strconv.Atoi(line[mid+1 : last])
	if err != nil || lineNo < 1 {
		return m.CoverageHit{}, false
	}

	executed, err := strconv.Atoi(line[last+1:])
	if err != nil {
		return m.CoverageHit{}, false
	}

	return m.CoverageHit{
		File:     line[:mid],
		Line:     lineNo,
		Executed: executed != 0,
	}, true
}
