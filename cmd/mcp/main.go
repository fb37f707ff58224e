package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	mcpadapter "github.com/MaanyaGupta/Document-Text-summariser/internal/adapters/mcp"
	"github.com/MaanyaGupta/Document-Text-summariser/internal/config"
	"github.com/MaanyaGupta/Document-Text-summariser/internal/core/usecase"
	"github.com/MaanyaGupta/Document-Text-summariser/internal/infrastructure/engine"
	"github.com/MaanyaGupta/Document-Text-summariser/internal/infrastructure/engine/extractive"
	"github.com/MaanyaGupta/Document-Text-summariser/internal/infrastructure/engine/gemini"
	"github.com/MaanyaGupta/Document-Text-summariser/internal/observability/logging"
)

const version = "1.0.0"

// The MCP binary runs without Postgres or NATS: tools summarize text
// handed to them over stdio and never persist anything.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	// Stdout carries the MCP stream, so logs must stay on stderr.
	slog.SetDefault(logging.NewJSONLoggerTo(os.Stderr, "mcp", cfg.LogLevel))

	if err := extractive.InitStopwords(cfg.StopwordsPath); err != nil {
		log.Fatalf("load stopwords: %v", err)
	}

	localEngine := extractive.NewEngine(extractive.Config{
		Damping:             cfg.EngineDamping,
		Tolerance:           cfg.EngineTolerance,
		MaxIterations:       cfg.EngineMaxIterations,
		SimilarityThreshold: cfg.EngineSimilarityThreshold,
		KeyPointCount:       cfg.EngineKeyPointCount,
	})
	selector := engine.NewSelector(localEngine, gemini.Config{
		BaseURL:    cfg.GeminiBaseURL,
		Model:      cfg.GeminiModel,
		Credential: cfg.GeminiCredential,
	})
	service := usecase.NewSummarizeUseCase(selector, nil)

	srv := mcpadapter.NewServer(service, version)
	if err := srv.ServeStdio(); err != nil {
		log.Fatalf("mcp server error: %v", err)
	}
}
