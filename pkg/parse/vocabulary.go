package parse

import (
	"strings"

	"fabula/pkg/schema"
)

type vocabState int

const (
	vocabIdle vocabState = iota
	vocabInWord
)

// Vocabulary scans a model reply in the Word:/Definition:/Example:/Part of
// Speech: layout into one record per word. Unlike the quiz layout, a blank
// line closes the open record here in addition to the next Word: marker; a
// record still open at end of input is flushed.
func Vocabulary(text string) []schema.VocabularyEntry {
	entries := make([]schema.VocabularyEntry, 0, 7)
	var current schema.VocabularyEntry
	state := vocabIdle

	flush := func() {
		if state == vocabInWord {
			entries = append(entries, current)
		}
		current = schema.VocabularyEntry{}
		state = vocabIdle
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			flush()
			continue
		}

		switch {
		case strings.HasPrefix(line, "Word:"):
			flush()
			current.Word = strings.TrimSpace(strings.TrimPrefix(line, "Word:"))
			state = vocabInWord
		case strings.HasPrefix(line, "Definition:"):
			if state == vocabInWord {
				current.Definition = strings.TrimSpace(strings.TrimPrefix(line, "Definition:"))
			}
		case strings.HasPrefix(line, "Example:"):
			if state == vocabInWord {
				current.Example = strings.TrimSpace(strings.TrimPrefix(line, "Example:"))
			}
		case strings.HasPrefix(line, "Part of Speech:"):
			if state == vocabInWord {
				current.PartOfSpeech = strings.TrimSpace(strings.TrimPrefix(line, "Part of Speech:"))
			}
		}
	}

	flush()
	return entries
}
