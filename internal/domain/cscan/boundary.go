package cscan

import "strings"

// lookbackLimit bounds how many lines before a bare brace are searched for
// the function signature. Blank and comment lines count against it.
const lookbackLimit = 10

var braceKeywords = map[string]struct{}{
	"if": {}, "else": {}, "for": {}, "while": {}, "do": {}, "switch": {},
}

// IsFunctionBrace reports whether lines[idx], a line that is exactly "{",
// opens a function body.
//
// The first non-blank, non-comment line among the lookbackLimit lines above
// it decides: it must end in ')', must not start with a control keyword and
// must not mention struct, union or enum. If no such line is found the brace
// is not a function opener. Comment lines are recognised by their leading
// marker only (//, /*, *).
func IsFunctionBrace(lines []string, idx int) bool {
	if idx <= 0 || idx >= len(lines) {
		return false
	}

	for i := idx - 1; i >= 0 && i >= idx-lookbackLimit; i-- {
		prev := strings.TrimSpace(lines[i])

		if prev == "" || isCommentMarker(prev) {
			continue
		}

		if !strings.HasSuffix(prev, ")") {
			return false
		}

		if _, ok := braceKeywords[firstWord(prev)]; ok {
			return false
		}

		if strings.Contains(prev, "struct") || strings.Contains(prev, "union") || strings.Contains(prev, "enum") {
			return false
		}

		return true
	}

	return false
}
