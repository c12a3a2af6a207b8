package domain

import "errors"

var (
	// ErrReadSource wraps failures to read an input file.
	ErrReadSource = errors.New("read source")
	// ErrWriteOutput wraps failures to write an instrumented file.
	ErrWriteOutput = errors.New("write output")
	// ErrFilesFailed is returned by a run in which at least one file failed.
	ErrFilesFailed = errors.New("some files failed")
	// ErrNoSources is returned when discovery finds no C file.
	ErrNoSources = errors.New("no C source files found")
)
