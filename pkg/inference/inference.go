package inference

import (
	"context"
	"errors"

	"github.com/openai/openai-go/v3"
)

// Upstream defaults applied when the caller leaves params unset.
const (
	DefaultMaxCompletionTokens = 2000
	DefaultTemperature         = 0.7
	DefaultTopP                = 1.0
)

// ErrEmptyCompletion is returned when the provider answered successfully
// but the reply carries no text.
var ErrEmptyCompletion = errors.New("empty completion content")

// Inferencer is a single round trip to a text-generation model. params may
// carry a model override, a completion budget, and sampling settings;
// providers fill anything left unset with the defaults above. One call per
// invocation: no retry, no rate limiting, no caching.
type Inferencer interface {
	Infer(ctx context.Context, params *openai.ChatCompletionNewParams, system, user string) (string, error)
}
