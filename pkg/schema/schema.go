package schema

import "cmp"

// Response format selectors accepted by the story service. Any other value,
// including an absent field, yields both the story and the quiz.
const (
	FormatStoryOnly = "story_only"
	FormatQuizOnly  = "quiz_only"
)

// GenerationRequest is the JSON body of POST /generate-story. One instance
// per call; nothing is persisted.
type GenerationRequest struct {
	AcademicGrade        string `json:"academic_grade" validate:"required"`
	Subject              string `json:"subject" validate:"required"`
	SubjectSpecification string `json:"subject_specification,omitempty"`
	Setting              string `json:"setting,omitempty"`
	MainCharacter        string `json:"main_character,omitempty"`
	WordCount            int    `json:"word_count,omitempty"`
	Language             string `json:"language,omitempty"`
	ResponseFormat       string `json:"response_format,omitempty"`
}

// WithDefaults returns a copy with the documented fallbacks applied:
// 300 words and English unless the caller said otherwise.
func (r GenerationRequest) WithDefaults() GenerationRequest {
	r.WordCount = cmp.Or(r.WordCount, 300)
	r.Language = cmp.Or(r.Language, "English")
	return r
}

// QuizQuestion is one multiple-choice question scanned out of a model
// reply. Options arrive in encounter order; CorrectAnswer and Explanation
// stay absent when the reply omitted their marker lines. CorrectAnswer is
// whatever the model wrote after "Correct:" and is not checked against
// Options.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer,omitempty"`
	Explanation   string   `json:"explanation,omitempty"`
}

// VocabularyEntry is one word record scanned out of a model reply. All
// fields but Word are best-effort and omitted when missing.
type VocabularyEntry struct {
	Word         string `json:"word"`
	Definition   string `json:"definition,omitempty"`
	Example      string `json:"example,omitempty"`
	PartOfSpeech string `json:"part_of_speech,omitempty"`
}

// Lesson is the full bundle returned by the lesson service: the story and
// every derived artifact. Slices are non-nil so empty results serialize as
// [] rather than null.
type Lesson struct {
	Content            string            `json:"content"`
	Quiz               []QuizQuestion    `json:"quiz"`
	LearningObjectives []string          `json:"learning_objectives"`
	Vocabulary         []VocabularyEntry `json:"vocabulary"`
	Summary            string            `json:"summary"`
}
