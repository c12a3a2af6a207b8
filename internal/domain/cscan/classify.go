package cscan

import (
	"regexp"
	"strings"

	m "github.com/mouse-blink/cprobe/internal/model"
)

// Kind is the classifier's verdict on one line.
type Kind int

// Verdicts. Only KindStatement, KindControl and KindReturn receive a probe.
const (
	KindOther Kind = iota
	KindBlank
	KindComment
	KindDirective
	KindProbe
	KindIgnored
	KindBrace
	KindLabel
	KindElse
	KindBracelessBody
	KindContinuation
	KindAsmOperands
	KindForHeader
	KindDeclaration
	KindStatement
	KindControl
	KindReturn
)

var kindNames = [...]string{
	KindOther:         "other",
	KindBlank:         "blank",
	KindComment:       "comment",
	KindDirective:     "directive",
	KindProbe:         "probe",
	KindIgnored:       "ignored",
	KindBrace:         "brace",
	KindLabel:         "label",
	KindElse:          "else",
	KindBracelessBody: "braceless-body",
	KindContinuation:  "continuation",
	KindAsmOperands:   "asm-operands",
	KindForHeader:     "for-header",
	KindDeclaration:   "declaration",
	KindStatement:     "statement",
	KindControl:       "control",
	KindReturn:        "return",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}

	return kindNames[k]
}

// Instrumentable reports whether a probe goes before a line of this kind.
func (k Kind) Instrumentable() bool {
	return k == KindStatement || k == KindControl || k == KindReturn
}

var (
	elseLine     = regexp.MustCompile(`^else\b`)
	caseLabel    = regexp.MustCompile(`^(?:case\b|default\s*:)`)
	gotoLabel    = regexp.MustCompile(`^[A-Za-z_]\w*\s*:$`)
	controlStart = regexp.MustCompile(`^(?:if|while|for|switch|do)[ (]`)
	returnStart  = regexp.MustCompile(`^return\b`)
	oneLineFor   = regexp.MustCompile(`^for\s*\(`)
)

var declarationWords = map[string]struct{}{
	"typedef": {}, "extern": {}, "struct": {}, "union": {}, "enum": {},
}

// continuationDepth is the indentation, in units, from which a line that
// follows an unfinished one is taken as its continuation.
const continuationDepth = 2

// Classify decides what an eligible line is. probe is the name of the probe
// macro, used to keep already instrumented code untouched.
//
// Vetoes come first: blank, comment and directive lines, lines carrying or
// following a probe, lines marked with IgnoreMarker, bare braces, case labels, else lines and the body of a
// brace-less control header. Then a line ending in ';' is a statement unless
// it continues an unfinished line, starts with ':' (asm operands), is a
// complete one-line for header or is a declaration. Lines starting with a
// control keyword or return are instrumented even without a ';'.
func Classify(s Step, probe string) Kind {
	l := s.Line

	switch {
	case l.Blank():
		return KindBlank
	case l.Directive:
		return KindDirective
	case l.CommentOnly():
		return KindComment
	case hasProbe(l.Stripped, probe) || hasProbe(s.Prev.Stripped, probe):
		return KindProbe
	case Ignored(l):
		return KindIgnored
	case l.Stripped == "{" || l.Stripped == "}":
		return KindBrace
	case caseLabel.MatchString(l.Code):
		return KindLabel
	case elseLine.MatchString(l.Stripped):
		return KindElse
	case s.BracelessBody:
		return KindBracelessBody
	}

	if l.EndsWithTerminator() {
		switch {
		case isContinuation(s):
			return KindContinuation
		case strings.HasPrefix(l.Code, ":"):
			return KindAsmOperands
		case oneLineFor.MatchString(l.Code):
			return KindForHeader
		}

		if _, ok := declarationWords[firstWord(l.Code)]; ok {
			return KindDeclaration
		}

		return KindStatement
	}

	switch {
	case s.InParens:
		return KindContinuation
	case controlStart.MatchString(l.Code):
		return KindControl
	case returnStart.MatchString(l.Code):
		return KindReturn
	}

	return KindOther
}

// isContinuation tells fragments of a still-open statement apart from
// statements. A line is a fragment when it starts inside an open
// parenthesis, or when it is indented at least continuationDepth units and
// the line right above ends in '=', '(', ',' or ':'. A case, default or
// goto label ending in ':' does not make the next line a fragment.
func isContinuation(s Step) bool {
	if s.InParens {
		return true
	}

	if s.Line.Units < continuationDepth {
		return false
	}

	prev := s.Prev.Code
	if prev == "" {
		return false
	}

	switch prev[len(prev)-1] {
	case '=', '(', ',':
		return true
	case ':':
		return !caseLabel.MatchString(prev) && !gotoLabel.MatchString(prev)
	}

	return false
}

func hasProbe(text, probe string) bool {
	return probe != "" && strings.Contains(text, probe+"(")
}

// IgnoreMarker, written in a comment on a line, keeps the probe that would
// precede that line away, in both modes.
const IgnoreMarker = "cprobe:ignore"

// Ignored reports whether the comment part of l carries IgnoreMarker.
func Ignored(l m.SourceLine) bool {
	return strings.Contains(l.Stripped, IgnoreMarker) && !strings.Contains(l.Code, IgnoreMarker)
}
