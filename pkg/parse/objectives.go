package parse

import "strings"

// Objectives splits a model reply into one objective per non-empty line,
// stripping the list marker models tend to add despite being told not to
// number anything.
func Objectives(text string) []string {
	objectives := make([]string, 0, 5)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		objectives = append(objectives, stripListMarker(line))
	}
	return objectives
}

// stripListMarker removes a leading "-", "*", "•", or "1." / "1)" style
// enumeration, leaving the line as-is when none is present.
func stripListMarker(line string) string {
	for _, marker := range []string{"-", "*", "•"} {
		if rest, ok := strings.CutPrefix(line, marker); ok {
			return strings.TrimSpace(rest)
		}
	}

	digits := 0
	for digits < len(line) && line[digits] >= '0' && line[digits] <= '9' {
		digits++
	}
	if digits > 0 && digits < len(line) && (line[digits] == '.' || line[digits] == ')') {
		return strings.TrimSpace(line[digits+1:])
	}

	return line
}
