// Package cscan is a line-oriented quasi-parser for C sources. It decides,
// line by line, where coverage probes can be inserted without changing what
// the program means. It never builds a syntax tree: every decision is a
// heuristic over one line, its neighbours and a handful of counters.
package cscan

import (
	"strings"
	"unicode"

	m "github.com/mouse-blink/cprobe/internal/model"
)

// tabWidth is the number of spaces counted as one indentation unit.
const tabWidth = 4

func splitLines(text string) []string {
	return strings.Split(text, "\n")
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

// Lex derives the lexical facts of every line. Block comments are followed
// across lines, so a line sitting inside /* ... */ has no code.
func Lex(raw []string) []m.SourceLine {
	out := make([]m.SourceLine, len(raw))
	inComment := false
	inDirective := false

	for i, text := range raw {
		l := newSourceLine(i, text)

		if !inComment && (inDirective || strings.HasPrefix(l.Stripped, "#")) {
			l.Directive = true
			inDirective = strings.HasSuffix(l.Stripped, "\\")
			l.Code, _, _, inComment = scanCode(l.Stripped, false)
			out[i] = l

			continue
		}

		l.Code, l.BraceDelta, l.ParenDelta, inComment = scanCode(l.Stripped, inComment)
		out[i] = l
	}

	return out
}

func newSourceLine(index int, raw string) m.SourceLine {
	body := strings.TrimLeft(raw, " \t")
	indent := raw[:len(raw)-len(body)]

	return m.SourceLine{
		Index:    index,
		Raw:      raw,
		Stripped: strings.TrimSpace(raw),
		Indent:   indent,
		Units:    indentUnits(indent),
	}
}

func indentUnits(indent string) int {
	tabs, spaces := 0, 0

	for _, r := range indent {
		if r == '\t' {
			tabs++
		} else {
			spaces++
		}
	}

	return tabs + spaces/tabWidth
}

// scanCode strips comments from s and counts braces and parentheses outside
// string and character literals. inComment says whether s starts inside a
// block comment; the returned flag says whether it ends inside one.
func scanCode(s string, inComment bool) (code string, braces, parens int, stillInComment bool) {
	var b strings.Builder

	var quote byte

scan:
	for i := 0; i < len(s); i++ {
		c := s[i]

		switch {
		case inComment:
			if c == '*' && i+1 < len(s) && s[i+1] == '/' {
				inComment = false
				i++
			}
		case quote != 0:
			b.WriteByte(c)

			if c == '\\' && i+1 < len(s) {
				b.WriteByte(s[i+1])
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '/' && i+1 < len(s) && s[i+1] == '/':
			break scan
		case c == '/' && i+1 < len(s) && s[i+1] == '*':
			inComment = true
			i++

			b.WriteByte(' ')
		case c == '"' || c == '\'':
			quote = c

			b.WriteByte(c)
		default:
			b.WriteByte(c)

			switch c {
			case '{':
				braces++
			case '}':
				braces--
			case '(':
				parens++
			case ')':
				parens--
			}
		}
	}

	return strings.TrimSpace(b.String()), braces, parens, inComment
}

// firstWord returns the leading identifier of s, so "if(x)" yields "if".
func firstWord(s string) string {
	s = strings.TrimSpace(s)
	end := strings.IndexFunc(s, func(r rune) bool {
		return r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	if end < 0 {
		return s
	}

	return s[:end]
}

func isCommentMarker(stripped string) bool {
	return strings.HasPrefix(stripped, "//") ||
		strings.HasPrefix(stripped, "/*") ||
		strings.HasPrefix(stripped, "*")
}
