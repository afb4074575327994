package utils

import (
	"unicode"
)

// CountWords counts runs of word runes (letters, numbers, and the joiners
// ' - _) separated by anything else. Used to log how close a generated
// story stayed to the requested word count.
func CountWords(s string) int {
	count := 0
	inWord := false
	for _, r := range s {
		isWord := unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_' || r == '-' || r == '\''
		if isWord && !inWord {
			count++
		}
		inWord = isWord
	}
	return count
}
