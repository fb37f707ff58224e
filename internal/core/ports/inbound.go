package ports

import (
	"context"
	"io"

	"github.com/MaanyaGupta/Document-Text-summariser/internal/core/domain"
)

// SummarizeRequest carries everything one synchronous summarization needs.
type SummarizeRequest struct {
	Text       string
	Filename   string
	SourceType domain.SourceType
	Length     string
	Mode       string
	Credential string
	Save       bool
}

// SummarizeReply is the result plus the record id when Save was requested.
type SummarizeReply struct {
	Result  domain.SummaryResult
	SavedID string
}

// SummaryService is the inbound contract for summarization.
type SummaryService interface {
	Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeReply, error)
	ExtractKeyPoints(ctx context.Context, text string, maxPoints int) ([]string, error)
}

// DocumentIngestor is the inbound contract for document upload orchestration.
type DocumentIngestor interface {
	Upload(ctx context.Context, filename, mimeType, mode, length string, body io.Reader) (*domain.Document, error)
}

// DocumentProcessor is the inbound contract for asynchronous summarization.
type DocumentProcessor interface {
	ProcessByID(ctx context.Context, documentID string) error
}

// DocumentStatusReader is the inbound read model for document state.
type DocumentStatusReader interface {
	GetByID(ctx context.Context, id string) (*domain.Document, error)
}

// SummaryBrowser is the inbound contract over saved summaries.
type SummaryBrowser interface {
	List(ctx context.Context, limit int) ([]domain.SummaryListing, error)
	Get(ctx context.Context, id string) (*domain.SummaryRecord, error)
	Delete(ctx context.Context, id string) error
	Export(ctx context.Context, id, format string) (content, contentType string, err error)
}
