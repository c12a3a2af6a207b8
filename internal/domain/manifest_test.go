package domain

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/cprobe/internal/model"
)

func TestManifest_RecordAndMerge(t *testing.T) {
	first := NewManifest()
	first.Record(m.ProbeInsertion{Path: "a.c", Line: 4})
	first.Record(m.ProbeInsertion{Path: "a.c", Line: 2})

	second := NewManifest()
	second.Record(m.ProbeInsertion{Path: "b.c", Line: 9})
	second.Record(m.ProbeInsertion{Path: "a.c", Line: 4})

	run := NewManifest()
	run.Merge(first)
	run.Merge(nil)
	run.Merge(second)

	assert.Equal(t, 4, run.Len())
	assert.Equal(t, []m.ProbeInsertion{
		{Path: "a.c", Line: 4},
		{Path: "a.c", Line: 2},
		{Path: "b.c", Line: 9},
		{Path: "a.c", Line: 4},
	}, run.Entries())
}

func TestManifest_EntriesIsACopy(t *testing.T) {
	mf := NewManifest()
	mf.Record(m.ProbeInsertion{Path: "a.c", Line: 1})

	entries := mf.Entries()
	entries[0].Line = 99

	assert.Equal(t, 1, mf.Entries()[0].Line)
}

func TestManifest_WriteTo(t *testing.T) {
	mf := NewManifest()
	mf.Record(m.ProbeInsertion{Path: "kernel/main.c", Line: 12})
	mf.Record(m.ProbeInsertion{Path: "mm/page_alloc.c", Line: 3})

	var buf bytes.Buffer
	n, err := mf.WriteTo(&buf)
	require.NoError(t, err)

	want := "kernel/main.c:12\nmm/page_alloc.c:3\n"
	assert.Equal(t, want, buf.String())
	assert.Equal(t, int64(len(want)), n)
}

func TestManifest_WriteToEmpty(t *testing.T) {
	var buf bytes.Buffer
	n, err := NewManifest().WriteTo(&buf)

	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestManifest_WriteToError(t *testing.T) {
	mf := NewManifest()
	mf.Record(m.ProbeInsertion{Path: "a.c", Line: 1})

	_, err := mf.WriteTo(failingWriter{})
	assert.EqualError(t, err, "disk full")
}
