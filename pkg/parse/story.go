package parse

import (
	"strings"
	"unicode/utf8"
)

// terminalPunctuation disqualifies a line from being a title.
const terminalPunctuation = ".!?,:;"

// CleanStory strips any preamble the model added before the title. The
// reply is split into non-empty trimmed lines and scanned for the first
// line that looks like a title; that line and everything after it is
// rejoined with blank-line separators. If no line qualifies the whole
// reply is rejoined unchanged.
//
// The title test is a heuristic: it drops a real title that ends in
// punctuation, and a preamble written as one long unpunctuated sentence
// slips through.
func CleanStory(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	for i, line := range lines {
		if looksLikeTitle(line) {
			return strings.Join(lines[i:], "\n\n")
		}
	}

	return strings.Join(lines, "\n\n")
}

// looksLikeTitle reports whether a line passes the title test: non-empty,
// under 100 runes, no terminal punctuation, and not an intro phrase
// ("Here..." or any casing of "once...").
func looksLikeTitle(line string) bool {
	if line == "" || utf8.RuneCountInString(line) >= 100 {
		return false
	}
	last, _ := utf8.DecodeLastRuneInString(line)
	if strings.ContainsRune(terminalPunctuation, last) {
		return false
	}
	if strings.HasPrefix(line, "Here") {
		return false
	}
	if len(line) >= 4 && strings.EqualFold(line[:4], "once") {
		return false
	}
	return true
}
