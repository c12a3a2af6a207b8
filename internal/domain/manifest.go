package domain

import (
	"bufio"
	"io"

	m "github.com/mouse-blink/cprobe/internal/model"
)

// DefaultManifestName is the manifest file written into the output
// directory when no other location is given.
const DefaultManifestName = "coverage.manifest"

// Manifest accumulates probe insertions in the order they are recorded. It
// never deduplicates or reorders. A Manifest is not safe for concurrent use;
// parallel runs give every file its own and merge them afterwards.
type Manifest struct {
	entries []m.ProbeInsertion
}

// NewManifest returns an empty manifest.
func NewManifest() *Manifest {
	return &Manifest{}
}

// Record appends p.
func (mf *Manifest) Record(p m.ProbeInsertion) {
	mf.entries = append(mf.entries, p)
}

// Merge appends every entry of other, keeping its order. A nil other is a
// no-op.
func (mf *Manifest) Merge(other *Manifest) {
	if other == nil {
		return
	}

	mf.entries = append(mf.entries, other.entries...)
}

// Entries returns a copy of the recorded insertions.
func (mf *Manifest) Entries() []m.ProbeInsertion {
	out := make([]m.ProbeInsertion, len(mf.entries))
	copy(out, mf.entries)

	return out
}

// Len returns the number of recorded insertions.
func (mf *Manifest) Len() int {
	return len(mf.entries)
}

// WriteTo writes one path:line entry per line.
func (mf *Manifest) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)

	var total int64

	for _, e := range mf.entries {
		n, err := bw.WriteString(e.String() + "\n")
		total += int64(n)

		if err != nil {
			return total, err
		}
	}

	return total, bw.Flush()
}
