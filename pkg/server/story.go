package server

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"fabula/pkg/schema"
)

// GET /
func (s *Server) handleGetStatus(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "API is running",
	})
}

// POST /generate-story
//
// Generates the story, then the quiz when asked for: response_format
// selects story_only, quiz_only, or (any other value) both. The quiz is
// always derived from the story, so even quiz_only pays for the story
// call first.
func (s *Server) handleGenerateStory(c echo.Context) error {
	var req schema.GenerationRequest
	if c.Request().ContentLength == 0 {
		log.Warn("empty body in /generate-story")
		return c.JSON(http.StatusBadRequest, errJSON("No data provided"))
	}
	if err := c.Bind(&req); err != nil {
		log.Warn("invalid JSON in /generate-story", "error", err)
		return c.JSON(http.StatusBadRequest, errJSON("No data provided"))
	}
	if err := validate.Struct(&req); err != nil {
		log.Warn("missing required fields in /generate-story", "error", err)
		return c.JSON(http.StatusBadRequest, errJSON("Missing required fields"))
	}
	req = req.WithDefaults()

	id := requestID(c)
	ctx := c.Request().Context()

	story, err := s.Generator.Story(ctx, req)
	if err != nil {
		log.Error("story generation failed", "id", id, "error", err)
		return c.JSON(http.StatusInternalServerError, errJSON(err.Error()))
	}

	if req.ResponseFormat == schema.FormatStoryOnly {
		log.Info("request served", "id", id, "artifacts", "story")
		return c.JSON(http.StatusOK, map[string]any{"story": story})
	}

	quiz, err := s.Generator.Quiz(ctx, story, req.Language)
	if err != nil {
		log.Error("quiz generation failed", "id", id, "error", err)
		return c.JSON(http.StatusInternalServerError, errJSON(err.Error()))
	}

	if req.ResponseFormat == schema.FormatQuizOnly {
		log.Info("request served", "id", id, "artifacts", "quiz")
		return c.JSON(http.StatusOK, map[string]any{"quiz": quiz})
	}

	log.Info("request served", "id", id, "artifacts", "story+quiz")
	return c.JSON(http.StatusOK, map[string]any{"story": story, "quiz": quiz})
}
