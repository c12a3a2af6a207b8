package cscan

import (
	"regexp"
	"strings"

	m "github.com/mouse-blink/cprobe/internal/model"
)

var (
	// initializerOpen matches "name[] = {", "name[N] = {" and "name = {".
	// It also matches plain assignments that happen to end in "= {"; that
	// coarseness is accepted.
	initializerOpen = regexp.MustCompile(`[A-Za-z_]\w*\s*(?:\[[^\]]*\]\s*)*=\s*\{`)
	loopOrBranch    = regexp.MustCompile(`^(?:if|while|for)\b`)

	// controlHeader matches headers whose body may follow on the next line.
	controlHeader = regexp.MustCompile(`^(?:\}\s*)?(?:if|for|while|switch|else\s+if)\s*\(`)
	bareElseOrDo  = regexp.MustCompile(`^(?:\}\s*)?(?:else|do)$`)
)

// Step is what the tracker learned about one line.
type Step struct {
	Line m.SourceLine
	// Prev is the line immediately above, zero for the first line.
	Prev m.SourceLine
	// State is the scan state after the line was taken into account.
	State m.ScanState
	// FunctionOpen is set on a bare "{" that opened a function body.
	FunctionOpen bool
	// InParens is set when the line starts inside an open parenthesis left
	// by previous lines.
	InParens bool
	// BracelessBody is set on the single statement that forms the body of
	// an if/else/for/while/do written without braces.
	BracelessBody bool
	// Initializer is set on every line of a multi-line aggregate
	// initializer, from the line that opens it to the one that closes it.
	Initializer bool
}

// Eligible reports whether the line may be offered to the classifier.
func (s Step) Eligible() bool {
	return !s.Initializer && s.State.Eligible()
}

// Tracker is the single forward pass over a file. It keeps the brace depth,
// whether the pass is inside a function body and whether it is inside an
// aggregate initializer. Apart from the bounded lookback of
// IsFunctionBrace it never looks back.
type Tracker struct {
	raw   []string
	lines []m.SourceLine
	state m.ScanState

	parenDepth   int
	headerOpen   bool
	awaitingBody bool
}

// NewTracker prepares a pass over raw, the lines of a normalized file.
func NewTracker(raw []string) *Tracker {
	return &Tracker{raw: raw, lines: Lex(raw)}
}

// Len returns the number of lines in the pass.
func (t *Tracker) Len() int {
	return len(t.lines)
}

// Line returns the lexed line i. It does not step the pass.
func (t *Tracker) Line(i int) m.SourceLine {
	return t.lines[i]
}

// Step updates the scan state with line i and describes it. Lines must be
// stepped in order.
func (t *Tracker) Step(i int) Step {
	l := t.lines[i]
	step := Step{Line: l, InParens: t.parenDepth > 0}

	if i > 0 {
		step.Prev = t.lines[i-1]
	}

	if l.Directive || l.Code == "" {
		step.State = t.state

		return step
	}

	if t.awaitingBody {
		t.awaitingBody = false
		step.BracelessBody = !strings.HasPrefix(l.Code, "{")
	}

	switch {
	case t.state.InitializerDepth > 0:
		t.state.InitializerDepth = max(t.state.InitializerDepth+l.BraceDelta, 0)
		step.Initializer = true
	case l.Stripped == "{" && t.state.BraceDepth == 0 && IsFunctionBrace(t.raw, i):
		t.state.InFunction = true
		t.state.BraceDepth = 1
		t.parenDepth = 0
		t.headerOpen = false
		step.FunctionOpen = true
	case isInitializerOpen(l.Code) && l.BraceDelta > 0:
		t.state.InitializerDepth = l.BraceDelta
		step.Initializer = true
	default:
		t.state.BraceDepth += l.BraceDelta
		if t.state.BraceDepth <= 0 {
			t.state.BraceDepth = 0
			t.state.InFunction = false
		}
	}

	t.parenDepth = max(t.parenDepth+l.ParenDelta, 0)
	t.trackHeader(l)

	step.State = t.state

	return step
}

// trackHeader notices control headers whose body is not a braced block, so
// that the single statement forming that body is never separated from it.
func (t *Tracker) trackHeader(l m.SourceLine) {
	if bareElseOrDo.MatchString(l.Code) {
		t.awaitingBody = true

		return
	}

	if controlHeader.MatchString(l.Code) {
		t.headerOpen = true
	}

	if !t.headerOpen || t.parenDepth > 0 {
		return
	}

	t.headerOpen = false
	t.awaitingBody = !strings.HasSuffix(l.Code, "{") && !strings.HasSuffix(l.Code, ";")
}

func isInitializerOpen(code string) bool {
	return !loopOrBranch.MatchString(code) && initializerOpen.MatchString(code)
}
