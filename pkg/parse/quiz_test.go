package parse_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fabula/pkg/parse"
	"fabula/pkg/schema"
)

func TestQuizSingleQuestion(t *testing.T) {
	in := "Q: What happened?\nA: X\nB: Y\nC: Z\nD: W\nCorrect: X\nExplanation: because\n"

	got := parse.Quiz(in)
	require.Len(t, got, 1)
	assert.Equal(t, schema.QuizQuestion{
		Question:      "What happened?",
		Options:       []string{"X", "Y", "Z", "W"},
		CorrectAnswer: "X",
		Explanation:   "because",
	}, got[0])
}

func TestQuizMultipleQuestions(t *testing.T) {
	in := `Q: Where did the comet live?
A: In the asteroid belt
B: Behind the moon
C: At the edge of the solar system
D: Inside a crater
Correct: C
Explanation: The story opens at the edge of the solar system.

Q: Who noticed the comet first?
A: A telescope operator
B: A school class
C: A pilot
D: Nobody
Correct: B
Explanation: The class saw it during a field trip.

Q: What did the comet want?
A: A friend
B: To disappear
C: More speed
D: A new tail
Correct: A
Explanation: The comet was lonely.`

	got := parse.Quiz(in)
	require.Len(t, got, 3)
	assert.Equal(t, "Where did the comet live?", got[0].Question)
	assert.Equal(t, []string{"In the asteroid belt", "Behind the moon", "At the edge of the solar system", "Inside a crater"}, got[0].Options)
	assert.Equal(t, "B", got[1].CorrectAnswer)
	assert.Equal(t, "The comet was lonely.", got[2].Explanation, "trailing question must be flushed without a terminator")
}

func TestQuizIgnoresMarkersBeforeFirstQuestion(t *testing.T) {
	in := "A: stray option\nCorrect: nothing\nExplanation: noise\nQ: Real question?\nA: yes"

	got := parse.Quiz(in)
	require.Len(t, got, 1)
	assert.Equal(t, "Real question?", got[0].Question)
	assert.Equal(t, []string{"yes"}, got[0].Options)
	assert.Empty(t, got[0].CorrectAnswer)
	assert.Empty(t, got[0].Explanation)
}

func TestQuizIgnoresNarrativeLines(t *testing.T) {
	in := "Here are your questions:\nQ: One?\nGreat question coming up.\nA: a\nB: b\nCorrect: a"

	got := parse.Quiz(in)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"a", "b"}, got[0].Options)
	assert.Equal(t, "a", got[0].CorrectAnswer)
}

func TestQuizMissingFieldsStayAbsent(t *testing.T) {
	got := parse.Quiz("Q: Only a question line")
	require.Len(t, got, 1)

	data, err := json.Marshal(got[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"question": "Only a question line", "options": []}`, string(data),
		"options serialize as an empty list, absent fields stay absent")
}

func TestQuizEmptyInput(t *testing.T) {
	assert.Empty(t, parse.Quiz(""))
	assert.Empty(t, parse.Quiz("no markers at all\njust prose\n"))
}
