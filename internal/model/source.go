// Package model defines the data structures shared by the instrumenter layers.
package model

// Path represents a file system path.
type Path string

// Mode selects how densely a file is instrumented.
type Mode string

const (
	// ModeFunction places one probe right after every function-opening brace.
	ModeFunction Mode = "function"

	// ModeStatement places a probe before every executable statement,
	// control-flow header and return (C1 coverage).
	ModeStatement Mode = "statement"
)

// Valid reports whether the mode is one of the known modes.
func (m Mode) Valid() bool {
	return m == ModeFunction || m == ModeStatement
}

// Source represents a production C file discovered under a source root.
type Source struct {
	// Origin is the absolute path of the file being instrumented.
	Origin Path
	// Rel is the path relative to the source root. It doubles as the
	// logical key used in the manifest.
	Rel Path
	// Output is where the instrumented copy is written.
	Output Path
}

// SourceLine is one physical line of a file together with the lexical facts
// the classifier needs.
type SourceLine struct {
	Index    int    // 0-based index in the normalized file
	Raw      string // line as read, without the newline
	Stripped string // Raw with surrounding whitespace removed
	Code     string // Stripped with comments removed
	Indent   string // leading whitespace of Raw
	Units    int    // indentation depth in tab units

	// Directive is set for preprocessor lines, including the
	// backslash-continued lines of a multi-line directive.
	Directive bool
	// BraceDelta and ParenDelta are the net counts of { } and ( ) in Code,
	// ignoring string and character literals.
	BraceDelta int
	ParenDelta int
}

// Blank reports whether the line has no text at all.
func (l SourceLine) Blank() bool {
	return l.Stripped == ""
}

// CommentOnly reports whether the line has text but no code.
func (l SourceLine) CommentOnly() bool {
	return !l.Directive && l.Stripped != "" && l.Code == ""
}

// EndsWithTerminator reports whether the code part of the line ends a statement.
func (l SourceLine) EndsWithTerminator() bool {
	return len(l.Code) > 0 && l.Code[len(l.Code)-1] == ';'
}

// ScanState is the mutable state carried across the lines of one file.
type ScanState struct {
	BraceDepth       int
	InFunction       bool
	InitializerDepth int
}

// Eligible reports whether the current line may be offered to the
// statement classifier.
func (s ScanState) Eligible() bool {
	return s.InFunction && s.BraceDepth > 0 && s.InitializerDepth == 0
}
