package cscan

import (
	"testing"

	m "github.com/mouse-blink/cprobe/internal/model"
)

// classifyBody wraps body in a function and returns the verdict for every
// body line, in order.
func classifyBody(body ...string) []Kind {
	raw := append([]string{"void f(void)", "{"}, body...)
	raw = append(raw, "}")

	tr := NewTracker(raw)
	kinds := make([]Kind, 0, len(body))

	for i := range raw {
		step := tr.Step(i)
		if i < 2 || i == len(raw)-1 {
			continue
		}

		if !step.Eligible() {
			kinds = append(kinds, KindOther)
			continue
		}

		kinds = append(kinds, Classify(step, DefaultProbe))
	}

	return kinds
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		body []string
		want []Kind
	}{
		{
			name: "blank comment directive",
			body: []string{"", "\t// note", "\t/* x = 1; */", "#ifdef DEBUG", "\tdebug();", "#endif"},
			want: []Kind{KindBlank, KindComment, KindComment, KindDirective, KindStatement, KindDirective},
		},
		{
			name: "statement with trailing comment",
			body: []string{"\tx = 1; /* reset */"},
			want: []Kind{KindStatement},
		},
		{
			name: "control headers without terminator",
			body: []string{"\twhile (count > 0) {", "\t\tcount--;", "\t}", "\tdo {", "\t} while (0);", "\tswitch(x) {", "\t}"},
			want: []Kind{KindControl, KindStatement, KindBrace, KindControl, KindStatement, KindControl, KindBrace},
		},
		{
			name: "return forms",
			body: []string{"\treturn (a +", "\t\tb);"},
			want: []Kind{KindReturn, KindContinuation},
		},
		{
			name: "else never instrumented",
			body: []string{"\tif (x)", "\t{", "\t\ta();", "\t}", "\telse if (y)", "\t{", "\t}", "\telse", "\t{", "\t}"},
			want: []Kind{KindControl, KindBrace, KindStatement, KindBrace, KindElse, KindBrace, KindBrace, KindElse, KindBrace, KindBrace},
		},
		{
			name: "closing brace before else on one line",
			body: []string{"\tif (x) {", "\t\ta();", "\t} else {", "\t\tb();", "\t}"},
			want: []Kind{KindControl, KindStatement, KindOther, KindStatement, KindBrace},
		},
		{
			name: "case labels",
			body: []string{"\tswitch (v)", "\t{", "\tcase 1:", "\t\treturn 10;", "\tcase 'c': {", "\t\tint c = 2;", "\t}", "\tdefault:", "\t\tbreak;", "\t}"},
			want: []Kind{KindControl, KindBrace, KindLabel, KindStatement, KindLabel, KindStatement, KindBrace, KindLabel, KindStatement, KindBrace},
		},
		{
			name: "continuations",
			body: []string{"\tint x =", "\t\ta + b;", "\tcall(a,", "\t\tb);", "\tint y = 0,", "\t\tz = 1;", "\tv = c ? d :", "\t\te;"},
			want: []Kind{KindOther, KindContinuation, KindOther, KindContinuation, KindOther, KindContinuation, KindOther, KindContinuation},
		},
		{
			name: "statement below goto label",
			body: []string{"\tif (a) {", "retry:", "\t\ta--;", "\t\tif (a) goto retry;", "\t}", "out :", "\t\tdone();"},
			want: []Kind{KindControl, KindOther, KindStatement, KindStatement, KindBrace, KindOther, KindStatement},
		},
		{
			name: "shallow line after open line is a statement",
			body: []string{"\tint x = 0,", "\ty = 1;"},
			want: []Kind{KindOther, KindStatement},
		},
		{
			name: "inline assembly",
			body: []string{"\tasm volatile(\"mov %%esp, %0\"", "\t\t     : \"=r\"(sp)", "\t\t     : : \"memory\");", "\tasm volatile(\"hlt\");"},
			want: []Kind{KindOther, KindContinuation, KindContinuation, KindStatement},
		},
		{
			name: "one-line for",
			body: []string{"\tfor (i = 0; i < n; i++) total += i;", "\tfor (i = 0; i < n; i++)", "\t{", "\t}"},
			want: []Kind{KindForHeader, KindControl, KindBrace, KindBrace},
		},
		{
			name: "declarations",
			body: []string{"\ttypedef int idx_t;", "\textern int jiffies;", "\tstruct page *p = alloc();", "\tenum mode m = ON;", "\tunion u v;", "\tstatic int calls;"},
			want: []Kind{KindDeclaration, KindDeclaration, KindDeclaration, KindDeclaration, KindDeclaration, KindStatement},
		},
		{
			name: "already instrumented",
			body: []string{"\tCOVERAGE_LINE();", "\tx = 1;", "\ty = 2;"},
			want: []Kind{KindProbe, KindProbe, KindStatement},
		},
		{
			name: "braceless bodies",
			body: []string{"\tif (err)", "\t\treturn err;", "\twhile (busy())", "\t\tcpu_relax();", "\tif (ok) done();", "\tif(ok)", "\t\tx();"},
			want: []Kind{KindControl, KindBracelessBody, KindControl, KindBracelessBody, KindStatement, KindControl, KindBracelessBody},
		},
		{
			name: "words starting like keywords",
			body: []string{"\telsewhere = 1;", "\treturned = 2;", "\tdone();"},
			want: []Kind{KindStatement, KindStatement, KindStatement},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyBody(tt.body...)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d verdicts, want %d: %v", len(got), len(tt.want), got)
			}

			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d %q: got %s, want %s", i, tt.body[i], got[i], tt.want[i])
				}
			}
		})
	}
}

func TestClassify_AsmOperandsOutsideParens(t *testing.T) {
	step := Step{
		Line:  newLexed("\t: \"memory\";"),
		Prev:  newLexed("\tasm_body();"),
		State: m.ScanState{BraceDepth: 1, InFunction: true},
	}

	if got := Classify(step, DefaultProbe); got != KindAsmOperands {
		t.Fatalf("Classify() = %s, want %s", got, KindAsmOperands)
	}
}

func TestKind_String(t *testing.T) {
	if KindStatement.String() != "statement" || Kind(99).String() != "unknown" {
		t.Fatalf("unexpected names: %s %s", KindStatement, Kind(99))
	}

	for _, k := range []Kind{KindStatement, KindControl, KindReturn} {
		if !k.Instrumentable() {
			t.Errorf("%s should be instrumentable", k)
		}
	}

	if KindElse.Instrumentable() || KindLabel.Instrumentable() {
		t.Error("vetoed kinds must not be instrumentable")
	}
}

func newLexed(raw string) m.SourceLine {
	return Lex([]string{raw})[0]
}

func TestClassify_IgnoreMarker(t *testing.T) {
	got := classifyBody("\tslow_path(); /* cprobe:ignore */", "\tfast_path();", "\tputs(\"cprobe:ignore\");")
	want := []Kind{KindIgnored, KindStatement, KindStatement}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d: got %s, want %s", i, got[i], want[i])
		}
	}
}
