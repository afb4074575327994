package utils

import (
	"github.com/pkoukk/tiktoken-go"
)

// NumTokens counts tokens in text using the gpt-4 encoding. The count is
// approximate for other model families, which is fine for sizing
// completion budgets and logging.
func NumTokens(text string) (int, error) {
	tkm, err := tiktoken.EncodingForModel("gpt-4-0613")
	if err != nil {
		return 0, err
	}

	return len(tkm.Encode(text, nil, nil)), nil
}
