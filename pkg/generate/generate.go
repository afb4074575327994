// Package generate runs the prompt → inference → parse pipeline behind
// both services. Stages are sequential: every derived artifact consumes
// the cleaned story text, so nothing runs until the story call finishes.
package generate

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/openai/openai-go/v3"

	"fabula/pkg/inference"
	"fabula/pkg/parse"
	"fabula/pkg/prompt"
	"fabula/pkg/schema"
	"fabula/pkg/utils"
)

// Generator turns generation requests into artifacts through a single
// Inferencer. Callers resolve request defaults (word count, language)
// before handing the request over.
type Generator struct {
	inf inference.Inferencer
}

func New(inf inference.Inferencer) *Generator {
	return &Generator{inf: inf}
}

// Story generates the story and strips any preamble ahead of the title.
func (g *Generator) Story(ctx context.Context, req schema.GenerationRequest) (string, error) {
	system, user := prompt.Story(req)

	budget := int64(max(inference.DefaultMaxCompletionTokens, req.WordCount*2))
	if tokens, err := utils.NumTokens(system + user); err == nil {
		budget = max(budget, int64(tokens)*2)
	}
	log.Debug("sized story budget", "budget", budget, "requested_words", req.WordCount)

	params := &openai.ChatCompletionNewParams{
		MaxCompletionTokens: openai.Int(budget),
	}
	reply, err := g.infer(ctx, "story", params, system, user)
	if err != nil {
		return "", err
	}

	story := parse.CleanStory(reply)
	log.Info("story generated", "words", utils.CountWords(story), "requested", req.WordCount)
	return story, nil
}

// Quiz generates and parses the multiple-choice quiz for a story.
func (g *Generator) Quiz(ctx context.Context, story, language string) ([]schema.QuizQuestion, error) {
	system, user := prompt.Quiz(story, language)
	reply, err := g.infer(ctx, "quiz", nil, system, user)
	if err != nil {
		return nil, err
	}

	questions := parse.Quiz(reply)
	log.Info("quiz generated", "questions", len(questions))
	return questions, nil
}

// Vocabulary generates and parses the vocabulary list for a story.
func (g *Generator) Vocabulary(ctx context.Context, story, language string) ([]schema.VocabularyEntry, error) {
	system, user := prompt.Vocabulary(story, language)
	reply, err := g.infer(ctx, "vocabulary", nil, system, user)
	if err != nil {
		return nil, err
	}

	entries := parse.Vocabulary(reply)
	log.Info("vocabulary generated", "entries", len(entries))
	return entries, nil
}

// Objectives generates and parses the learning objectives for a story.
func (g *Generator) Objectives(ctx context.Context, story, language string) ([]string, error) {
	system, user := prompt.Objectives(story, language)
	reply, err := g.infer(ctx, "objectives", nil, system, user)
	if err != nil {
		return nil, err
	}

	objectives := parse.Objectives(reply)
	log.Info("objectives generated", "objectives", len(objectives))
	return objectives, nil
}

// Summary generates the free-form summary for a story. No markers, no
// parsing; the reply is trimmed and returned.
func (g *Generator) Summary(ctx context.Context, story, language string) (string, error) {
	system, user := prompt.Summary(story, language)
	reply, err := g.infer(ctx, "summary", nil, system, user)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(reply), nil
}

// Lesson runs the full pipeline: story first, then quiz, objectives,
// vocabulary, and summary against the cleaned story text. The first
// failing stage aborts the lesson; nothing already computed is returned.
func (g *Generator) Lesson(ctx context.Context, req schema.GenerationRequest) (*schema.Lesson, error) {
	story, err := g.Story(ctx, req)
	if err != nil {
		return nil, err
	}

	quiz, err := g.Quiz(ctx, story, req.Language)
	if err != nil {
		return nil, err
	}

	objectives, err := g.Objectives(ctx, story, req.Language)
	if err != nil {
		return nil, err
	}

	vocabulary, err := g.Vocabulary(ctx, story, req.Language)
	if err != nil {
		return nil, err
	}

	summary, err := g.Summary(ctx, story, req.Language)
	if err != nil {
		return nil, err
	}

	return &schema.Lesson{
		Content:            story,
		Quiz:               quiz,
		LearningObjectives: objectives,
		Vocabulary:         vocabulary,
		Summary:            summary,
	}, nil
}

// infer makes the one upstream call for an artifact and tags any failure
// with ErrUpstream.
func (g *Generator) infer(ctx context.Context, artifact string, params *openai.ChatCompletionNewParams, system, user string) (string, error) {
	if tokens, err := utils.NumTokens(system + user); err == nil {
		log.Debug("calling model", "artifact", artifact, "tokens", tokens)
	} else {
		log.Debug("calling model", "artifact", artifact, "chars", len(system)+len(user))
	}

	reply, err := g.inf.Infer(ctx, params, system, user)
	if err != nil {
		return "", fmt.Errorf("generate %s: %w: %w", artifact, ErrUpstream, err)
	}
	return reply, nil
}
