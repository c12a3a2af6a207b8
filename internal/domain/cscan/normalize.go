package cscan

import "strings"

// DefaultFeature is the symbol that toggles coverage at build time.
const DefaultFeature = "ENABLE_COVERAGE"

// Normalize removes the directives of every block guarded by the coverage
// feature symbol so the output always behaves as "coverage enabled".
//
// Only the directive lines of a guard block are deleted: its #ifdef or
// #ifndef, an #else or #elif belonging to it, and its matching #endif. Body
// lines always pass through. Unrelated conditionals nested inside a guard
// keep their own directives. A guard without an #endif leaves skipLevel
// raised until the end of the file.
func Normalize(text, feature string) string {
	if feature == "" {
		feature = DefaultFeature
	}

	lines := splitLines(text)
	out := make([]string, 0, len(lines))

	// frames holds one entry per open conditional; true marks a guard.
	var frames []bool

	skipLevel := 0

	for _, line := range lines {
		name, arg := directive(line)

		switch name {
		case "ifdef", "ifndef":
			guard := arg == feature
			frames = append(frames, guard)

			if guard {
				skipLevel++

				continue
			}
		case "if":
			frames = append(frames, false)
		case "else", "elif", "elifdef", "elifndef":
			if len(frames) > 0 && frames[len(frames)-1] {
				continue
			}
		case "endif":
			if len(frames) == 0 {
				break
			}

			guard := frames[len(frames)-1]
			frames = frames[:len(frames)-1]

			if guard && skipLevel > 0 {
				skipLevel--

				continue
			}
		}

		out = append(out, line)
	}

	return joinLines(out)
}

// directive splits a preprocessor line into its name and first argument.
// Both are empty for ordinary lines. "#  ifdef X" is accepted.
func directive(line string) (name, arg string) {
	s := strings.TrimSpace(line)
	if !strings.HasPrefix(s, "#") {
		return "", ""
	}

	fields := strings.Fields(strings.TrimSpace(s[1:]))
	if len(fields) == 0 {
		return "", ""
	}

	name = fields[0]
	if len(fields) > 1 {
		arg = fields[1]
	}

	return name, arg
}
