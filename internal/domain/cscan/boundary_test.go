package cscan

import (
	"strings"
	"testing"
)

func TestIsFunctionBrace(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  bool
	}{
		{
			name:  "plain signature",
			lines: []string{"int add(int a, int b)", "{"},
			want:  true,
		},
		{
			name:  "static signature over two lines",
			lines: []string{"static void *kmalloc_node(size_t size,", "\t\t\t  gfp_t flags)", "{"},
			want:  true,
		},
		{
			name:  "comments and blanks between signature and brace",
			lines: []string{"void init(void)", "", "/* set up */", " * more", "// note", "{"},
			want:  true,
		},
		{
			name:  "if header",
			lines: []string{"\tif (ready)", "\t{"},
			want:  false,
		},
		{
			name:  "else if header",
			lines: []string{"else if (x)", "{"},
			want:  false,
		},
		{
			name:  "while header",
			lines: []string{"while (count > 0)", "{"},
			want:  false,
		},
		{
			name:  "switch header",
			lines: []string{"switch (c)", "{"},
			want:  false,
		},
		{
			name:  "struct definition",
			lines: []string{"struct list_head", "{"},
			want:  false,
		},
		{
			name:  "macro-built struct name ending in paren",
			lines: []string{"struct DECLARE_NAME(foo)", "{"},
			want:  false,
		},
		{
			name:  "parameter mentioning struct is rejected",
			lines: []string{"void schedule(struct task *next)", "{"},
			want:  false,
		},
		{
			name:  "initializer",
			lines: []string{"static int table[] =", "{"},
			want:  false,
		},
		{
			name:  "statement before bare block",
			lines: []string{"\tx = 1;", "\t{"},
			want:  false,
		},
		{
			name:  "brace on first line",
			lines: []string{"{"},
			want:  false,
		},
		{
			name:  "only blank lines above",
			lines: []string{"", "", "{"},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsFunctionBrace(tt.lines, len(tt.lines)-1)
			if got != tt.want {
				t.Fatalf("IsFunctionBrace(%q) = %v, want %v", tt.lines, got, tt.want)
			}
		})
	}
}

func TestIsFunctionBrace_LookbackIsBounded(t *testing.T) {
	within := append([]string{"int f(void)"}, make([]string, lookbackLimit-1)...)
	within = append(within, "{")

	if !IsFunctionBrace(within, len(within)-1) {
		t.Fatalf("signature %d lines above the brace should be found", lookbackLimit)
	}

	beyond := append([]string{"int f(void)"}, make([]string, lookbackLimit)...)
	beyond = append(beyond, "{")

	if IsFunctionBrace(beyond, len(beyond)-1) {
		t.Fatalf("signature %d lines above the brace should be out of reach", lookbackLimit+1)
	}
}

func TestIsFunctionBrace_OutOfRange(t *testing.T) {
	lines := strings.Split("int f(void)\n{", "\n")

	if IsFunctionBrace(lines, 5) || IsFunctionBrace(lines, -1) {
		t.Fatal("out of range index must not be a function brace")
	}
}
