package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/MaanyaGupta/Document-Text-summariser/internal/core/domain"
	"github.com/MaanyaGupta/Document-Text-summariser/internal/core/ports"
)

// ProcessDocumentUseCase turns an uploaded document into a saved summary.
// It is driven by the worker off the queue; every state transition is
// written back to the repository so the status endpoint can follow along.
type ProcessDocumentUseCase struct {
	repo      ports.DocumentRepository
	extractor ports.TextExtractor
	selector  ports.EngineSelector
	store     ports.SummaryStore
	logger    *slog.Logger
}

func NewProcessDocumentUseCase(
	repo ports.DocumentRepository,
	extractor ports.TextExtractor,
	selector ports.EngineSelector,
	store ports.SummaryStore,
	logger *slog.Logger,
) *ProcessDocumentUseCase {
	return &ProcessDocumentUseCase{
		repo:      repo,
		extractor: extractor,
		selector:  selector,
		store:     store,
		logger:    logger,
	}
}

func (uc *ProcessDocumentUseCase) ProcessByID(ctx context.Context, documentID string) error {
	doc, err := uc.repo.GetByID(ctx, documentID)
	if err != nil {
		return fmt.Errorf("load document %s: %w", documentID, err)
	}

	if err := uc.repo.UpdateStatus(ctx, doc.ID, domain.StatusProcessing, ""); err != nil {
		return fmt.Errorf("mark document %s processing: %w", doc.ID, err)
	}

	record, sourceType, err := uc.process(ctx, doc)
	if err != nil {
		if stErr := uc.repo.UpdateStatus(ctx, doc.ID, domain.StatusFailed, err.Error()); stErr != nil {
			uc.logger.Error("mark document failed",
				slog.String("document_id", doc.ID),
				slog.String("error", stErr.Error()))
		}
		return err
	}

	if err := uc.repo.AttachSummary(ctx, doc.ID, sourceType, record.ID); err != nil {
		// Without the failed transition the row would sit in
		// processing forever; the queue does not redeliver.
		err = fmt.Errorf("attach summary to document %s: %w", doc.ID, err)
		if stErr := uc.repo.UpdateStatus(ctx, doc.ID, domain.StatusFailed, err.Error()); stErr != nil {
			uc.logger.Error("mark document failed",
				slog.String("document_id", doc.ID),
				slog.String("error", stErr.Error()))
		}
		return err
	}

	uc.logger.Info("document processed",
		slog.String("document_id", doc.ID),
		slog.String("summary_id", record.ID),
		slog.String("mode", string(record.Mode)),
		slog.Int("summary_length", record.SummaryChars))
	return nil
}

func (uc *ProcessDocumentUseCase) process(ctx context.Context, doc *domain.Document) (*domain.SummaryRecord, domain.SourceType, error) {
	text, sourceType, err := uc.extractor.Extract(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("extract text from %s: %w", doc.Filename, err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, "", domain.WrapError(domain.ErrEmptyInput, "process document",
			errors.New("document contains no extractable text"))
	}

	// The worker holds no per-request credential; online documents fall
	// back to the credential configured on the selector.
	engine, err := uc.selector.Select(doc.Mode, "")
	if err != nil {
		return nil, "", err
	}
	summary, keyPoints, err := engine.Summarize(ctx, text, doc.Length)
	if err != nil {
		return nil, "", fmt.Errorf("run %s engine: %w", doc.Mode, err)
	}
	if keyPoints == nil {
		keyPoints = []string{}
	}

	record := &domain.SummaryRecord{
		ID:            uuid.NewString(),
		Filename:      doc.Filename,
		SourceType:    sourceType,
		Mode:          doc.Mode,
		Length:        doc.Length,
		OriginalText:  text,
		Summary:       summary,
		KeyPoints:     keyPoints,
		OriginalChars: utf8.RuneCountInString(text),
		SummaryChars:  utf8.RuneCountInString(summary),
		CreatedAt:     time.Now().UTC(),
	}
	if err := uc.store.Save(ctx, record); err != nil {
		return nil, "", fmt.Errorf("save summary record: %w", err)
	}
	return record, sourceType, nil
}

// GetByID exposes document state for the status endpoint.
func (uc *ProcessDocumentUseCase) GetByID(ctx context.Context, id string) (*domain.Document, error) {
	return uc.repo.GetByID(ctx, id)
}
