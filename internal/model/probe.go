package model

import (
	"fmt"
	"strconv"
	"strings"
)

// ProbeInsertion identifies one inserted probe by the logical path of the
// output file and the 1-based line the probe occupies in that file.
type ProbeInsertion struct {
	Path Path
	Line int
}

// String renders the insertion in manifest form, path:line.
func (p ProbeInsertion) String() string {
	return fmt.Sprintf("%s:%d", p.Path, p.Line)
}

// ParseProbeInsertion reads one manifest line. The line number follows the
// last colon, so paths containing colons are accepted.
func ParseProbeInsertion(s string) (ProbeInsertion, error) {
	s = strings.TrimSpace(s)

	i := strings.LastIndexByte(s, ':')
	if i <= 0 {
		return ProbeInsertion{}, fmt.Errorf("malformed manifest entry %q", s)
	}

	line, err := strconv.Atoi(s[i+1:])
	if err != nil || line < 1 {
		return ProbeInsertion{}, fmt.Errorf("malformed line number in manifest entry %q", s)
	}

	return ProbeInsertion{Path: Path(s[:i]), Line: line}, nil
}

// InstrumentedFile is the transformed text of one source file and its target.
type InstrumentedFile struct {
	Target  Path
	Content []byte
	Probes  []ProbeInsertion
}
