package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fabula/pkg/schema"
)

func TestWithDefaults(t *testing.T) {
	req := schema.GenerationRequest{
		AcademicGrade: "5th grade",
		Subject:       "astronomy",
	}

	got := req.WithDefaults()
	assert.Equal(t, 300, got.WordCount)
	assert.Equal(t, "English", got.Language)
	assert.Zero(t, req.WordCount, "the receiver is left untouched")
}

func TestWithDefaultsKeepsExplicitValues(t *testing.T) {
	req := schema.GenerationRequest{
		AcademicGrade: "5th grade",
		Subject:       "astronomy",
		WordCount:     150,
		Language:      "Spanish",
	}

	got := req.WithDefaults()
	assert.Equal(t, 150, got.WordCount)
	assert.Equal(t, "Spanish", got.Language)
}
