package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/MaanyaGupta/Document-Text-summariser/internal/config"
	"github.com/MaanyaGupta/Document-Text-summariser/internal/core/ports"
	"github.com/MaanyaGupta/Document-Text-summariser/internal/core/usecase"
	"github.com/MaanyaGupta/Document-Text-summariser/internal/infrastructure/engine"
	"github.com/MaanyaGupta/Document-Text-summariser/internal/infrastructure/engine/extractive"
	"github.com/MaanyaGupta/Document-Text-summariser/internal/infrastructure/engine/gemini"
	"github.com/MaanyaGupta/Document-Text-summariser/internal/infrastructure/extractor"
	"github.com/MaanyaGupta/Document-Text-summariser/internal/infrastructure/queue/nats"
	"github.com/MaanyaGupta/Document-Text-summariser/internal/infrastructure/repository/postgres"
	"github.com/MaanyaGupta/Document-Text-summariser/internal/infrastructure/resilience"
	"github.com/MaanyaGupta/Document-Text-summariser/internal/infrastructure/storage/localfs"
)

type App struct {
	Config config.Config

	Queue ports.MessageQueue
	Repo  ports.DocumentRepository

	SummarizeUC ports.SummaryService
	IngestUC    ports.DocumentIngestor
	ProcessUC   *usecase.ProcessDocumentUseCase
	BrowseUC    ports.SummaryBrowser

	closeFn func()
}

func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, error) {
	if err := extractive.InitStopwords(cfg.StopwordsPath); err != nil {
		return nil, fmt.Errorf("load stopwords: %w", err)
	}

	db, err := postgres.OpenDB(cfg.PostgresDSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	repo := postgres.NewDocumentRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	store := postgres.NewSummaryRepository(db)

	storage, err := localfs.New(cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("init object storage: %w", err)
	}

	executor := resilience.NewExecutor(resilience.DefaultConfig())
	queue, err := nats.NewWithOptions(cfg.NATSURL, cfg.NATSSubject, nats.Options{
		Executor: executor,
	})
	if err != nil {
		return nil, fmt.Errorf("init message queue: %w", err)
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
		Timeout:    time.Duration(cfg.GeminiTimeoutSeconds) * time.Second,
		Executor:   executor,
	})

	reader := extractor.New(storage)

	summarizeUC := usecase.NewSummarizeUseCase(selector, store)
	ingestUC := usecase.NewIngestDocumentUseCase(repo, storage, queue, logger)
	processUC := usecase.NewProcessDocumentUseCase(repo, reader, selector, store, logger)
	browseUC := usecase.NewBrowseSummariesUseCase(store)

	return &App{
		Config: cfg,
		Queue:  queue,
		Repo:   repo,

		SummarizeUC: summarizeUC,
		IngestUC:    ingestUC,
		ProcessUC:   processUC,
		BrowseUC:    browseUC,

		closeFn: func() {
			queue.Close()
			_ = db.Close()
		},
	}, nil
}

func (a *App) Close() {
	if a.closeFn != nil {
		a.closeFn()
	}
}
