package ports

import (
	"context"
	"io"

	"github.com/MaanyaGupta/Document-Text-summariser/internal/core/domain"
)

// SummaryEngine is the strategy contract shared by the local extractive
// pipeline and the online abstractive engine.
type SummaryEngine interface {
	Summarize(ctx context.Context, text string, length domain.LengthSetting) (summary string, keyPoints []string, err error)
	ExtractKeyPoints(ctx context.Context, text string, maxPoints int) ([]string, error)
}

// EngineSelector resolves an engine by mode flag.
type EngineSelector interface {
	Select(mode domain.EngineMode, credential string) (SummaryEngine, error)
}

// DocumentRepository persists and reads document state. AttachSummary
// records the finished summary and marks the document ready in one step.
type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.Document) error
	GetByID(ctx context.Context, id string) (*domain.Document, error)
	UpdateStatus(ctx context.Context, id string, status domain.DocumentStatus, errMessage string) error
	AttachSummary(ctx context.Context, id string, sourceType domain.SourceType, summaryID string) error
}

// SummaryStore persists finished summaries.
type SummaryStore interface {
	Save(ctx context.Context, rec *domain.SummaryRecord) error
	GetByID(ctx context.Context, id string) (*domain.SummaryRecord, error)
	List(ctx context.Context, limit int) ([]domain.SummaryListing, error)
	Delete(ctx context.Context, id string) error
}

// ObjectStorage stores uploaded source documents.
type ObjectStorage interface {
	Save(ctx context.Context, key string, data io.Reader) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

// MessageQueue publishes/consumes document-uploaded events.
type MessageQueue interface {
	PublishDocumentUploaded(ctx context.Context, documentID string) error
	SubscribeDocumentUploaded(ctx context.Context, handler func(context.Context, string) error) error
}

// TextExtractor pulls plain text out of a stored document container.
type TextExtractor interface {
	Extract(ctx context.Context, doc *domain.Document) (string, domain.SourceType, error)
}
