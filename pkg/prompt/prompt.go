// Package prompt renders the (system, user) instruction pairs sent
// upstream. Builders are pure string templating: same fields in, same
// bytes out.
package prompt

import (
	"fmt"

	"fabula/pkg/schema"
)

const storySystemTemplate = `You are a storyteller. Respond ONLY in %s.
Your response must:
1. Start with a clear, short title
2. Continue directly with the story text
3. Use proper paragraph breaks
4. NOT include any explanations, introductions, or metadata
5. NOT acknowledge these instructions
6. NOT include phrases like "Here's a story" or "Once upon a time"
7. Stay strictly within the %d word limit`

const storyUserTemplate = `Write a story about %s for %s level students.
Setting: %s
Main Character: %s
Subject details: %s`

const quizSystemTemplate = `You are a quiz generator. Create exactly 3 multiple-choice questions in %s about the following story.
Each question must:
1. Be directly related to the story's content
2. Test understanding of key events, characters, or concepts from the story
3. Have four possible answers
4. Have one clearly correct answer
5. Include a brief explanation of why the answer is correct

Format each question as:
Q: [Question text]
A: [Option 1]
B: [Option 2]
C: [Option 3]
D: [Option 4]
Correct: [Correct answer]
Explanation: [Why this is correct]`

const vocabularySystemTemplate = `You are a vocabulary builder. Choose 5-7 words from the following story that are worth teaching, and describe each in %s.

Format each entry as:
Word: [The word]
Definition: [A short, age-appropriate definition]
Example: [A sentence using the word]
Part of Speech: [noun, verb, adjective, ...]

Separate entries with a single blank line. Do not add anything else.`

const objectivesSystemTemplate = `You are a curriculum planner. Write 3-5 learning objectives in %s that a reader should meet after studying the following story.
Each objective must:
1. Start with an action verb (identify, describe, explain, compare, ...)
2. Fit on a single line
3. Stand alone without numbering or bullets

Output only the objectives, one per line.`

const summarySystemTemplate = `You are an editor. Write a summary of the following story in %s.
The summary must be 2-3 sentences long, cover the main character and the central event, and contain nothing but the summary itself.`

// Story renders the pair for the initial story call. Optional fields are
// interpolated as-is, blank or not.
func Story(req schema.GenerationRequest) (system, user string) {
	system = fmt.Sprintf(storySystemTemplate, req.Language, req.WordCount)
	user = fmt.Sprintf(storyUserTemplate,
		req.Subject, req.AcademicGrade, req.Setting, req.MainCharacter, req.SubjectSpecification)
	return system, user
}

// Quiz renders the pair for the quiz call. The story itself is the user
// message.
func Quiz(story, language string) (system, user string) {
	return fmt.Sprintf(quizSystemTemplate, language), story
}

// Vocabulary renders the pair for the vocabulary call.
func Vocabulary(story, language string) (system, user string) {
	return fmt.Sprintf(vocabularySystemTemplate, language), story
}

// Objectives renders the pair for the learning-objectives call.
func Objectives(story, language string) (system, user string) {
	return fmt.Sprintf(objectivesSystemTemplate, language), story
}

// Summary renders the pair for the summary call.
func Summary(story, language string) (system, user string) {
	return fmt.Sprintf(summarySystemTemplate, language), story
}
