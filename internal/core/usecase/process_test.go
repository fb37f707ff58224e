package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/MaanyaGupta/Document-Text-summariser/internal/core/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type statusCall struct {
	status domain.DocumentStatus
	errMsg string
}

type processRepoFake struct {
	doc         *domain.Document
	getErr      error
	attachErr   error
	statusCalls []statusCall
	attachedID  string
	attachedSrc domain.SourceType
}

func (f *processRepoFake) Create(context.Context, *domain.Document) error { return nil }

func (f *processRepoFake) GetByID(context.Context, string) (*domain.Document, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	copyDoc := *f.doc
	return &copyDoc, nil
}

func (f *processRepoFake) UpdateStatus(_ context.Context, _ string, status domain.DocumentStatus, errMessage string) error {
	f.statusCalls = append(f.statusCalls, statusCall{status: status, errMsg: errMessage})
	return nil
}

func (f *processRepoFake) AttachSummary(_ context.Context, _ string, sourceType domain.SourceType, summaryID string) error {
	if f.attachErr != nil {
		return f.attachErr
	}
	f.attachedID = summaryID
	f.attachedSrc = sourceType
	return nil
}

type textExtractorFake struct {
	text       string
	sourceType domain.SourceType
	err        error
}

func (f *textExtractorFake) Extract(context.Context, *domain.Document) (string, domain.SourceType, error) {
	if f.err != nil {
		return "", "", f.err
	}
	return f.text, f.sourceType, nil
}

func TestProcessByIDSuccess(t *testing.T) {
	repo := &processRepoFake{doc: &domain.Document{
		ID:     "doc-1",
		Mode:   domain.ModeLocal,
		Length: domain.LengthShort,
	}}
	engine := &engineFake{summary: "Summary.", keyPoints: []string{"point"}}
	selector := &selectorFake{engine: engine}
	store := &storeFake{}

	uc := NewProcessDocumentUseCase(
		repo,
		&textExtractorFake{text: "Cats are mammals. Dogs are mammals too.", sourceType: domain.SourcePDF},
		selector,
		store,
		testLogger(),
	)

	if err := uc.ProcessByID(context.Background(), "doc-1"); err != nil {
		t.Fatalf("ProcessByID() error = %v", err)
	}
	if len(repo.statusCalls) != 1 || repo.statusCalls[0].status != domain.StatusProcessing {
		t.Fatalf("unexpected status sequence: %+v", repo.statusCalls)
	}
	if len(store.saved) != 1 {
		t.Fatalf("expected one saved record, got %d", len(store.saved))
	}
	if repo.attachedID != store.saved[0].ID {
		t.Fatalf("attached summary %q, saved %q", repo.attachedID, store.saved[0].ID)
	}
	if repo.attachedSrc != domain.SourcePDF {
		t.Fatalf("expected pdf source type, got %s", repo.attachedSrc)
	}
	if engine.lastLength != domain.LengthShort {
		t.Fatalf("engine received length %s", engine.lastLength)
	}
	if selector.lastMode != domain.ModeLocal {
		t.Fatalf("selector received mode %s", selector.lastMode)
	}
}

func TestProcessByIDMarksFailedOnExtractError(t *testing.T) {
	repo := &processRepoFake{doc: &domain.Document{ID: "doc-1", Mode: domain.ModeLocal, Length: domain.LengthMedium}}
	uc := NewProcessDocumentUseCase(
		repo,
		&textExtractorFake{err: errors.New("extract fail")},
		&selectorFake{engine: &engineFake{}},
		&storeFake{},
		testLogger(),
	)

	err := uc.ProcessByID(context.Background(), "doc-1")
	if err == nil {
		t.Fatalf("expected error")
	}
	if len(repo.statusCalls) != 2 {
		t.Fatalf("expected processing + failed status updates, got %d", len(repo.statusCalls))
	}
	if repo.statusCalls[1].status != domain.StatusFailed || repo.statusCalls[1].errMsg == "" {
		t.Fatalf("expected failed status with message, got %+v", repo.statusCalls[1])
	}
}

func TestProcessByIDMarksFailedOnBlankExtraction(t *testing.T) {
	repo := &processRepoFake{doc: &domain.Document{ID: "doc-1", Mode: domain.ModeLocal, Length: domain.LengthMedium}}
	uc := NewProcessDocumentUseCase(
		repo,
		&textExtractorFake{text: "   \n  ", sourceType: domain.SourceText},
		&selectorFake{engine: &engineFake{}},
		&storeFake{},
		testLogger(),
	)

	err := uc.ProcessByID(context.Background(), "doc-1")
	if !errors.Is(err, domain.ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
	if repo.statusCalls[len(repo.statusCalls)-1].status != domain.StatusFailed {
		t.Fatalf("expected final failed status, got %+v", repo.statusCalls)
	}
}

func TestProcessByIDMarksFailedOnEngineError(t *testing.T) {
	repo := &processRepoFake{doc: &domain.Document{ID: "doc-1", Mode: domain.ModeOnline, Length: domain.LengthLong}}
	uc := NewProcessDocumentUseCase(
		repo,
		&textExtractorFake{text: "text", sourceType: domain.SourceText},
		&selectorFake{engine: &engineFake{err: domain.ErrRemoteService}},
		&storeFake{},
		testLogger(),
	)

	err := uc.ProcessByID(context.Background(), "doc-1")
	if !errors.Is(err, domain.ErrRemoteService) {
		t.Fatalf("expected ErrRemoteService, got %v", err)
	}
	if repo.statusCalls[len(repo.statusCalls)-1].status != domain.StatusFailed {
		t.Fatalf("expected final failed status, got %+v", repo.statusCalls)
	}
}

func TestProcessByIDMarksFailedOnAttachError(t *testing.T) {
	repo := &processRepoFake{
		doc:       &domain.Document{ID: "doc-1", Mode: domain.ModeLocal, Length: domain.LengthMedium},
		attachErr: errors.New("attach fail"),
	}
	store := &storeFake{}
	uc := NewProcessDocumentUseCase(
		repo,
		&textExtractorFake{text: "Cats are mammals. Dogs are mammals too.", sourceType: domain.SourceText},
		&selectorFake{engine: &engineFake{summary: "Summary.", keyPoints: []string{"point"}}},
		store,
		testLogger(),
	)

	err := uc.ProcessByID(context.Background(), "doc-1")
	if err == nil {
		t.Fatalf("expected error")
	}
	if len(store.saved) != 1 {
		t.Fatalf("expected the summary record saved before the failure, got %d", len(store.saved))
	}
	last := repo.statusCalls[len(repo.statusCalls)-1]
	if last.status != domain.StatusFailed {
		t.Fatalf("document left in %s, want %s", last.status, domain.StatusFailed)
	}
	if !strings.Contains(last.errMsg, "attach fail") {
		t.Fatalf("failure message %q should carry the attach error", last.errMsg)
	}
}

func TestProcessByIDUnknownDocument(t *testing.T) {
	repo := &processRepoFake{getErr: domain.ErrDocumentNotFound}
	uc := NewProcessDocumentUseCase(
		repo,
		&textExtractorFake{},
		&selectorFake{engine: &engineFake{}},
		&storeFake{},
		testLogger(),
	)

	err := uc.ProcessByID(context.Background(), "missing")
	if !errors.Is(err, domain.ErrDocumentNotFound) {
		t.Fatalf("expected ErrDocumentNotFound, got %v", err)
	}
	if len(repo.statusCalls) != 0 {
		t.Fatalf("expected no status updates, got %+v", repo.statusCalls)
	}
}
