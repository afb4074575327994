package server

import (
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"fabula/pkg/schema"
)

// landingPage is served at the lesson service root, resolved relative to
// the working directory.
const landingPage = "web/index.html"

// GET /
func (s *Server) handleGetLanding(c echo.Context) error {
	b, err := os.ReadFile(landingPage)
	if err != nil {
		// No page shipped next to the binary; answer with the liveness
		// payload instead.
		return s.handleGetStatus(c)
	}
	return c.HTML(http.StatusOK, string(b))
}

// POST /generate-story
//
// Always returns the full bundle: story content, quiz, learning
// objectives, vocabulary, and summary. response_format is ignored here.
func (s *Server) handleGenerateLesson(c echo.Context) error {
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

	lesson, err := s.Generator.Lesson(c.Request().Context(), req)
	if err != nil {
		log.Error("lesson generation failed", "id", id, "error", err)
		return c.JSON(http.StatusInternalServerError, errJSON(err.Error()))
	}

	log.Info("request served", "id", id, "artifacts", "lesson")
	return c.JSON(http.StatusOK, lesson)
}
