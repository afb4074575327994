package parse

import (
	"strings"

	"fabula/pkg/schema"
)

type quizState int

const (
	quizIdle quizState = iota
	quizInQuestion
)

// Option markers in answer order. Each is two bytes, so the remainder is
// always line[2:].
var optionMarkers = [...]string{"A:", "B:", "C:", "D:"}

// Quiz scans a model reply in the Q:/A:-D:/Correct:/Explanation: layout
// into one record per question. Single pass, forward only: a Q: line
// closes the open record and starts the next, the other markers fill
// fields on the open record, and whatever is still open at end of input is
// flushed. Blank lines, unmarked lines, and markers seen before the first
// Q: are ignored.
func Quiz(text string) []schema.QuizQuestion {
	questions := make([]schema.QuizQuestion, 0, 3)
	var current schema.QuizQuestion
	state := quizIdle

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "Q:"):
			if state == quizInQuestion {
				questions = append(questions, current)
			}
			current = schema.QuizQuestion{
				Question: strings.TrimSpace(line[2:]),
				Options:  []string{},
			}
			state = quizInQuestion
		case isOptionMarker(line):
			if state == quizInQuestion {
				current.Options = append(current.Options, strings.TrimSpace(line[2:]))
			}
		case strings.HasPrefix(line, "Correct:"):
			if state == quizInQuestion {
				current.CorrectAnswer = strings.TrimSpace(strings.TrimPrefix(line, "Correct:"))
			}
		case strings.HasPrefix(line, "Explanation:"):
			if state == quizInQuestion {
				current.Explanation = strings.TrimSpace(strings.TrimPrefix(line, "Explanation:"))
			}
		}
	}

	if state == quizInQuestion {
		questions = append(questions, current)
	}

	return questions
}

func isOptionMarker(line string) bool {
	for _, marker := range optionMarkers {
		if strings.HasPrefix(line, marker) {
			return true
		}
	}
	return false
}
