package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MaanyaGupta/Document-Text-summariser/internal/core/domain"
)

const listPreviewChars = 200

type SummaryRepository struct {
	db *sql.DB
}

func NewSummaryRepository(db *sql.DB) *SummaryRepository {
	return &SummaryRepository{db: db}
}

func (r *SummaryRepository) Save(ctx context.Context, rec *domain.SummaryRecord) error {
	keyPoints, err := json.Marshal(rec.KeyPoints)
	if err != nil {
		return fmt.Errorf("marshal key points: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
INSERT INTO summaries (
	id, filename, source_type, mode, length, original_text, summary, key_points, original_chars, summary_chars, created_at
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
`,
		rec.ID, rec.Filename, string(rec.SourceType), string(rec.Mode), string(rec.Length),
		rec.OriginalText, rec.Summary, keyPoints, rec.OriginalChars, rec.SummaryChars, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert summary: %w", err)
	}
	return nil
}

func (r *SummaryRepository) GetByID(ctx context.Context, id string) (*domain.SummaryRecord, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, filename, source_type, mode, length, original_text, summary, key_points, original_chars, summary_chars, created_at
FROM summaries
WHERE id = $1
`, id)

	var rec domain.SummaryRecord
	var sourceType, mode, length string
	var keyPointsRaw []byte

	err := row.Scan(
		&rec.ID, &rec.Filename, &sourceType, &mode, &length, &rec.OriginalText,
		&rec.Summary, &keyPointsRaw, &rec.OriginalChars, &rec.SummaryChars, &rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.WrapError(domain.ErrSummaryNotFound, "get summary", errors.New(id))
		}
		return nil, fmt.Errorf("scan summary: %w", err)
	}

	if err := json.Unmarshal(keyPointsRaw, &rec.KeyPoints); err != nil {
		return nil, fmt.Errorf("unmarshal key points: %w", err)
	}
	rec.SourceType = domain.SourceType(sourceType)
	rec.Mode = domain.EngineMode(mode)
	rec.Length = domain.LengthSetting(length)
	return &rec, nil
}

func (r *SummaryRepository) List(ctx context.Context, limit int) ([]domain.SummaryListing, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.QueryContext(ctx, `
SELECT id, filename, source_type, mode, length, substr(summary, 1, $2) AS summary_preview, created_at
FROM summaries
ORDER BY created_at DESC
LIMIT $1
`, limit, listPreviewChars)
	if err != nil {
		return nil, fmt.Errorf("query summaries: %w", err)
	}
	defer rows.Close()

	listings := make([]domain.SummaryListing, 0, limit)
	for rows.Next() {
		var item domain.SummaryListing
		var sourceType, mode, length string
		if err := rows.Scan(&item.ID, &item.Filename, &sourceType, &mode, &length, &item.Preview, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan summary listing: %w", err)
		}
		item.SourceType = domain.SourceType(sourceType)
		item.Mode = domain.EngineMode(mode)
		item.Length = domain.LengthSetting(length)
		listings = append(listings, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate summaries: %w", err)
	}
	return listings, nil
}

func (r *SummaryRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM summaries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete summary: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete summary rows affected: %w", err)
	}
	if affected == 0 {
		return domain.WrapError(domain.ErrSummaryNotFound, "delete summary", errors.New(id))
	}
	return nil
}
