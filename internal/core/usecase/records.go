package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/MaanyaGupta/Document-Text-summariser/internal/core/domain"
	"github.com/MaanyaGupta/Document-Text-summariser/internal/core/ports"
)

const exportDivider = "=================================================="

// BrowseSummariesUseCase is the read/delete/export surface over saved
// summaries.
type BrowseSummariesUseCase struct {
	store ports.SummaryStore
}

func NewBrowseSummariesUseCase(store ports.SummaryStore) *BrowseSummariesUseCase {
	return &BrowseSummariesUseCase{store: store}
}

func (uc *BrowseSummariesUseCase) List(ctx context.Context, limit int) ([]domain.SummaryListing, error) {
	return uc.store.List(ctx, limit)
}

func (uc *BrowseSummariesUseCase) Get(ctx context.Context, id string) (*domain.SummaryRecord, error) {
	return uc.store.GetByID(ctx, id)
}

func (uc *BrowseSummariesUseCase) Delete(ctx context.Context, id string) error {
	return uc.store.Delete(ctx, id)
}

// Export renders a record as a downloadable text report or as JSON.
func (uc *BrowseSummariesUseCase) Export(ctx context.Context, id, format string) (string, string, error) {
	record, err := uc.store.GetByID(ctx, id)
	if err != nil {
		return "", "", err
	}

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "txt":
		return renderTextExport(record), "text/plain; charset=utf-8", nil
	case "json":
		data, err := json.MarshalIndent(record, "", "  ")
		if err != nil {
			return "", "", fmt.Errorf("encode summary %s: %w", id, err)
		}
		return string(data), "application/json", nil
	default:
		return "", "", domain.WrapError(domain.ErrInvalidInput, "export summary",
			errors.New("format must be txt or json"))
	}
}

func renderTextExport(record *domain.SummaryRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Document: %s\n", record.Filename)
	fmt.Fprintf(&b, "Date: %s\n", record.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Mode: %s | Length: %s\n\n", record.Mode, record.Length)

	b.WriteString(exportDivider + "\n")
	b.WriteString("SUMMARY\n")
	b.WriteString(exportDivider + "\n")
	b.WriteString(record.Summary + "\n")

	if len(record.KeyPoints) > 0 {
		b.WriteString("\n" + exportDivider + "\n")
		b.WriteString("KEY POINTS\n")
		b.WriteString(exportDivider + "\n")
		for i, point := range record.KeyPoints {
			fmt.Fprintf(&b, "%d. %s\n", i+1, point)
		}
	}
	return b.String()
}
