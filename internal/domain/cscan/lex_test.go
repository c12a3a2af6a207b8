package cscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanCode(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		inComment bool
		code      string
		braces    int
		parens    int
		open      bool
	}{
		{name: "plain statement", in: "x = f(a);", code: "x = f(a);", parens: 0},
		{name: "trailing line comment", in: "x = 1; // set {", code: "x = 1;"},
		{name: "trailing block comment", in: "x = 1; /* { */", code: "x = 1;"},
		{name: "comment in the middle", in: "a /* b */ = c;", code: "a   = c;"},
		{name: "brace in string", in: `printk("{%d}\n", x);`, code: `printk("{%d}\n", x);`},
		{name: "brace in char", in: `if (c == '{') {`, code: `if (c == '{') {`, braces: 1},
		{name: "escaped quote", in: `s = "\"{";`, code: `s = "\"{";`},
		{name: "opening block comment", in: "x = 1; /* start", code: "x = 1;", open: true},
		{name: "inside block comment", in: " * still { comment", inComment: true, code: "", open: true},
		{name: "closing block comment", in: "end */ y = 2;", inComment: true, code: "y = 2;"},
		{name: "open paren", in: "foo(a,", code: "foo(a,", parens: 1},
		{name: "close brace", in: "} else {", code: "} else {", braces: 0},
		{name: "close two", in: "}}", code: "}}", braces: -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, braces, parens, open := scanCode(tt.in, tt.inComment)

			assert.Equal(t, tt.code, code)
			assert.Equal(t, tt.braces, braces, "braces")
			assert.Equal(t, tt.parens, parens, "parens")
			assert.Equal(t, tt.open, open, "still in comment")
		})
	}
}

func TestLex_CarriesCommentsAndDirectives(t *testing.T) {
	raw := []string{
		"/*",
		" * header {",
		" */",
		"#define SWAP(a, b) \\",
		"\tdo { int t = a; a = b; b = t; } while (0)",
		"int x;",
		"        y = 1;",
	}

	lines := Lex(raw)
	require.Len(t, lines, len(raw))

	assert.True(t, lines[0].CommentOnly())
	assert.True(t, lines[1].CommentOnly())
	assert.Equal(t, 0, lines[1].BraceDelta)
	assert.True(t, lines[2].CommentOnly())

	assert.True(t, lines[3].Directive)
	assert.True(t, lines[4].Directive, "continued directive line")
	assert.False(t, lines[4].CommentOnly())
	assert.Equal(t, 0, lines[4].BraceDelta, "directive braces are not counted")

	assert.False(t, lines[5].Directive)
	assert.True(t, lines[5].EndsWithTerminator())

	assert.Equal(t, "        ", lines[6].Indent)
	assert.Equal(t, 2, lines[6].Units)
}

func TestIndentUnits(t *testing.T) {
	assert.Equal(t, 0, indentUnits(""))
	assert.Equal(t, 1, indentUnits("\t"))
	assert.Equal(t, 2, indentUnits("\t\t"))
	assert.Equal(t, 1, indentUnits("    "))
	assert.Equal(t, 1, indentUnits("\t  "))
	assert.Equal(t, 3, indentUnits("\t\t    "))
}
