package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MaanyaGupta/Document-Text-summariser/internal/core/domain"
	"github.com/MaanyaGupta/Document-Text-summariser/internal/core/ports"
)

// IngestDocumentUseCase accepts an uploaded file, stores the raw bytes
// and enqueues the document for asynchronous summarization.
type IngestDocumentUseCase struct {
	repo    ports.DocumentRepository
	storage ports.ObjectStorage
	queue   ports.MessageQueue
	logger  *slog.Logger
}

func NewIngestDocumentUseCase(
	repo ports.DocumentRepository,
	storage ports.ObjectStorage,
	queue ports.MessageQueue,
	logger *slog.Logger,
) *IngestDocumentUseCase {
	return &IngestDocumentUseCase{
		repo:    repo,
		storage: storage,
		queue:   queue,
		logger:  logger,
	}
}

func (uc *IngestDocumentUseCase) Upload(ctx context.Context, filename, mimeType, mode, length string, body io.Reader) (*domain.Document, error) {
	filename = sanitizeFilename(filename)
	if filename == "" {
		return nil, domain.WrapError(domain.ErrInvalidInput, "upload document", errors.New("missing filename"))
	}

	parsedLength, err := domain.ParseLengthSetting(length)
	if err != nil {
		return nil, err
	}
	parsedMode, err := domain.ParseEngineMode(mode)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	doc := &domain.Document{
		ID:        uuid.NewString(),
		Filename:  filename,
		MimeType:  mimeType,
		Mode:      parsedMode,
		Length:    parsedLength,
		Status:    domain.StatusUploaded,
		CreatedAt: now,
		UpdatedAt: now,
	}
	doc.StoragePath = doc.ID + path.Ext(filename)

	if err := uc.storage.Save(ctx, doc.StoragePath, body); err != nil {
		return nil, fmt.Errorf("store upload %q: %w", filename, err)
	}
	if err := uc.repo.Create(ctx, doc); err != nil {
		return nil, fmt.Errorf("create document row: %w", err)
	}

	if err := uc.queue.PublishDocumentUploaded(ctx, doc.ID); err != nil {
		// The row exists and a later re-publish can recover it, so the
		// upload itself still succeeds.
		uc.logger.Error("publish document uploaded",
			slog.String("document_id", doc.ID),
			slog.String("error", err.Error()))
	}

	uc.logger.Info("document uploaded",
		slog.String("document_id", doc.ID),
		slog.String("filename", filename),
		slog.String("mode", string(parsedMode)),
		slog.String("length", string(parsedLength)))
	return doc, nil
}

// sanitizeFilename strips any directory components and characters that
// are unsafe in a storage key.
func sanitizeFilename(name string) string {
	name = path.Base(strings.ReplaceAll(strings.TrimSpace(name), "\\", "/"))
	if name == "." || name == "/" {
		return ""
	}
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return strings.TrimLeft(b.String(), ".")
}
