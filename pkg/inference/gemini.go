package inference

import (
	"cmp"
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"google.golang.org/genai"
)

// GeminiInferencer implements Inferencer using the Google GenAI SDK.
type GeminiInferencer struct {
	client *genai.Client
	model  string
}

// NewGeminiInferencer creates a new inferencer instance using the GenAI
// client.
func NewGeminiInferencer(apiKey string, model string) (*GeminiInferencer, error) {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, err
	}
	return &GeminiInferencer{
		client: client,
		model:  model,
	}, nil
}

// Infer sends the instruction pair to the generate-content endpoint and
// returns the reply text. The endpoint takes a single input channel here,
// so the system instruction is folded into the prompt itself.
func (g *GeminiInferencer) Infer(ctx context.Context, params *openai.ChatCompletionNewParams, system, user string) (string, error) {
	if params == nil {
		params = new(openai.ChatCompletionNewParams)
	}
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "text/plain",
		MaxOutputTokens:  int32(cmp.Or(params.MaxCompletionTokens.Value, DefaultMaxCompletionTokens)),
		Temperature:      genai.Ptr(float32(cmp.Or(params.Temperature.Value, DefaultTemperature))),
	}

	prompt := system + "\n\n" + user
	result, err := g.client.Models.GenerateContent(
		ctx,
		cmp.Or(params.Model, g.model),
		genai.Text(prompt),
		config,
	)
	if err != nil {
		return "", fmt.Errorf("gemini inference error: %w", err)
	}

	text := result.Text()
	if text == "" {
		return "", ErrEmptyCompletion
	}

	return text, nil
}
