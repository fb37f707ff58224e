package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/MaanyaGupta/Document-Text-summariser/internal/core/domain"
)

func newSummaryRepoWithMock(t *testing.T) (*SummaryRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	return &SummaryRepository{db: db}, mock, func() { _ = db.Close() }
}

func TestSaveMarshalsKeyPointsAsJSON(t *testing.T) {
	repo, mock, done := newSummaryRepoWithMock(t)
	defer done()

	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	rec := &domain.SummaryRecord{
		ID:            "sum-1",
		Filename:      "report.pdf",
		SourceType:    domain.SourcePDF,
		Mode:          domain.ModeLocal,
		Length:        domain.LengthMedium,
		OriginalText:  "Cats sleep a lot. Dogs bark at night.",
		Summary:       "Cats sleep a lot.",
		KeyPoints:     []string{"Cats sleep a lot.", "Dogs bark at night."},
		OriginalChars: 37,
		SummaryChars:  17,
		CreatedAt:     now,
	}

	mock.ExpectExec("INSERT INTO summaries").
		WithArgs(
			"sum-1", "report.pdf", "pdf", "local", "medium",
			rec.OriginalText, rec.Summary,
			[]byte(`["Cats sleep a lot.","Dogs bark at night."]`),
			37, 17, now,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Save(context.Background(), rec); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestSummaryGetByIDDecodesKeyPoints(t *testing.T) {
	repo, mock, done := newSummaryRepoWithMock(t)
	defer done()

	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"id", "filename", "source_type", "mode", "length", "original_text",
		"summary", "key_points", "original_chars", "summary_chars", "created_at",
	}).AddRow(
		"sum-1", "report.pdf", "pdf", "online", "short", "full text",
		"short text", []byte(`["alpha","beta"]`), 9, 10, now,
	)

	mock.ExpectQuery("SELECT id, filename, source_type, mode").
		WithArgs("sum-1").
		WillReturnRows(rows)

	rec, err := repo.GetByID(context.Background(), "sum-1")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if rec.Mode != domain.ModeOnline {
		t.Errorf("Mode = %q, want %q", rec.Mode, domain.ModeOnline)
	}
	if len(rec.KeyPoints) != 2 || rec.KeyPoints[0] != "alpha" || rec.KeyPoints[1] != "beta" {
		t.Errorf("KeyPoints = %v, want [alpha beta]", rec.KeyPoints)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestSummaryGetByIDReturnsDomainNotFound(t *testing.T) {
	repo, mock, done := newSummaryRepoWithMock(t)
	defer done()

	mock.ExpectQuery("SELECT id, filename, source_type, mode").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.ErrSummaryNotFound) {
		t.Fatalf("expected ErrSummaryNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestListReturnsPreviewsNewestFirst(t *testing.T) {
	repo, mock, done := newSummaryRepoWithMock(t)
	defer done()

	newer := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	older := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"id", "filename", "source_type", "mode", "length", "summary_preview", "created_at",
	}).
		AddRow("sum-2", "notes.txt", "text", "local", "short", "newer preview", newer).
		AddRow("sum-1", "report.pdf", "pdf", "local", "medium", "older preview", older)

	mock.ExpectQuery("SELECT id, filename, source_type, mode").
		WithArgs(10, listPreviewChars).
		WillReturnRows(rows)

	listings, err := repo.List(context.Background(), 10)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(listings) != 2 {
		t.Fatalf("len(listings) = %d, want 2", len(listings))
	}
	if listings[0].ID != "sum-2" || listings[1].ID != "sum-1" {
		t.Errorf("listing order = [%s %s], want [sum-2 sum-1]", listings[0].ID, listings[1].ID)
	}
	if listings[0].Preview != "newer preview" {
		t.Errorf("Preview = %q, want %q", listings[0].Preview, "newer preview")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestListUsesDefaultLimitForNonPositiveValues(t *testing.T) {
	repo, mock, done := newSummaryRepoWithMock(t)
	defer done()

	rows := sqlmock.NewRows([]string{
		"id", "filename", "source_type", "mode", "length", "summary_preview", "created_at",
	})

	mock.ExpectQuery("SELECT id, filename, source_type, mode").
		WithArgs(50, listPreviewChars).
		WillReturnRows(rows)

	listings, err := repo.List(context.Background(), 0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(listings) != 0 {
		t.Fatalf("len(listings) = %d, want 0", len(listings))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestDeleteReturnsDomainNotFoundWhenNoRowsAffected(t *testing.T) {
	repo, mock, done := newSummaryRepoWithMock(t)
	defer done()

	mock.ExpectExec("DELETE FROM summaries").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "missing")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.ErrSummaryNotFound) {
		t.Fatalf("expected ErrSummaryNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestDeleteRemovesSummary(t *testing.T) {
	repo, mock, done := newSummaryRepoWithMock(t)
	defer done()

	mock.ExpectExec("DELETE FROM summaries").
		WithArgs("sum-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), "sum-1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
