package controller

import (
	"errors"
	"testing"

	m "github.com/mouse-blink/cprobe/internal/model"
)

func TestFileItem_FilterValue(t *testing.T) {
	item := fileItem{path: "mm/page_alloc.c", count: 2}
	if got := item.FilterValue(); got != item.path {
		t.Fatalf("FilterValue() = %q, want %q", got, item.path)
	}
}

func TestNewFileItem(t *testing.T) {
	ok := newFileItem(m.FileResult{Source: m.Source{Rel: "kernel/main.c"}, Probes: 9})
	if ok != (fileItem{path: "kernel/main.c", count: 9}) {
		t.Fatalf("newFileItem() = %+v", ok)
	}

	failed := newFileItem(m.FileResult{Source: m.Source{Rel: "a.c"}, Err: errors.New("denied")})
	if !failed.failed {
		t.Fatalf("newFileItem() on failure = %+v, want failed", failed)
	}
}
