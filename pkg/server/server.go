package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/segmentio/ksuid"

	"fabula/pkg/generate"
)

// Server wraps echo and the generation pipeline behind one of the two
// route sets.
type Server struct {
	Echo      *echo.Echo
	Generator *generate.Generator
}

var validate = validator.New()

// NewStoryServer mounts the story routes: a JSON liveness payload at the
// root and story-or-quiz generation dispatched on response_format.
func NewStoryServer(gen *generate.Generator) *Server {
	s := newServer(gen)
	s.Echo.GET("/", s.handleGetStatus)
	s.Echo.POST("/generate-story", s.handleGenerateStory)
	return s
}

// NewLessonServer mounts the lesson routes: a static landing page at the
// root and full-bundle generation.
func NewLessonServer(gen *generate.Generator) *Server {
	s := newServer(gen)
	s.Echo.GET("/", s.handleGetLanding)
	s.Echo.POST("/generate-story", s.handleGenerateLesson)
	return s
}

func newServer(gen *generate.Generator) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return ksuid.New().String() },
	}))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	return &Server{Echo: e, Generator: gen}
}

func (s *Server) Start(addr string) error {
	log.Info("server listening", "addr", addr)
	return s.Echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	log.Info("shutting down server")
	return s.Echo.Shutdown(ctx)
}

// errorHandler renders every unhandled error as the {"error": ...}
// envelope: route misses become 404 Not Found, other echo errors keep
// their status text, and anything else (including recovered panics) is a
// plain 500.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal Server Error"

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		} else {
			message = http.StatusText(code)
		}
	}

	if jsonErr := c.JSON(code, errJSON(message)); jsonErr != nil {
		log.Error("failed writing error response", "error", jsonErr)
	}
}

// errJSON is the error envelope every failure path shares.
func errJSON(msg string) map[string]string {
	return map[string]string{"error": msg}
}

// requestID reads the ID the middleware assigned to this request.
func requestID(c echo.Context) string {
	return c.Response().Header().Get(echo.HeaderXRequestID)
}
