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

	openAI := inference.NewOpenAIInferencer(cfg.OpenAIKey, cfg.OpenAIModel)
	switch {
	case cfg.OpenAIBaseURL != "":
		log.Info("using custom endpoint", "base_url", cfg.OpenAIBaseURL)
		openAI.ChangeBaseURL(cfg.OpenAIBaseURL)
	case cfg.OpenAIKey == "":
		log.Warn("OPENAI_API_KEY not set, using local endpoint", "base_url", config.LocalBaseURL)
		openAI.ChangeBaseURL(config.LocalBaseURL)
		openAI.SetModel("")
	}

	srv := server.NewStoryServer(generate.New(openAI))
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
