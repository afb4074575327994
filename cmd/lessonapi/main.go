package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	_ "github.com/joho/godotenv/autoload"
	gommon "github.com/labstack/gommon/log"

	"fabula/pkg/config"
	"fabula/pkg/generate"
	"fabula/pkg/inference"
	"fabula/pkg/server"
)

func main() {
	ctx, done := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer done()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("configuration error", "error", err)
	}
	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	}

	if cfg.GeminiKey == "" {
		log.Fatal("GEMINI_API_KEY is required")
	}
	gemini, err := inference.NewGeminiInferencer(cfg.GeminiKey, cfg.GeminiModel)
	if err != nil {
		log.Fatal("gemini client error", "error", err)
	}

	srv := server.NewLessonServer(generate.New(gemini))
	srv.Echo.Logger.SetLevel(echoLevel(cfg.LogLevel))

	finishedShutDown := make(chan struct{})
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown failed", "error", err)
		}
		close(finishedShutDown)
	}()

	if err := srv.Start(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server stopped", "error", err)
	}
	<-finishedShutDown
}

func echoLevel(level string) gommon.Lvl {
	switch level {
	case "debug":
		return gommon.DEBUG
	case "warn":
		return gommon.WARN
	case "error":
		return gommon.ERROR
	default:
		return gommon.INFO
	}
}
