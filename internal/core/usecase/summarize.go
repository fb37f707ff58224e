package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/MaanyaGupta/Document-Text-summariser/internal/core/domain"
	"github.com/MaanyaGupta/Document-Text-summariser/internal/core/ports"
)

// SummarizeUseCase validates the request, resolves the engine strategy
// and optionally persists the result. All summarization state lives
// inside the single call.
type SummarizeUseCase struct {
	selector ports.EngineSelector
	store    ports.SummaryStore
}

func NewSummarizeUseCase(selector ports.EngineSelector, store ports.SummaryStore) *SummarizeUseCase {
	return &SummarizeUseCase{
		selector: selector,
		store:    store,
	}
}

func (uc *SummarizeUseCase) Summarize(ctx context.Context, req ports.SummarizeRequest) (*ports.SummarizeReply, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, domain.WrapError(domain.ErrEmptyInput, "summarize", errors.New("no text provided"))
	}

	length, err := domain.ParseLengthSetting(req.Length)
	if err != nil {
		return nil, err
	}
	mode, err := domain.ParseEngineMode(req.Mode)
	if err != nil {
		return nil, err
	}

	engine, err := uc.selector.Select(mode, req.Credential)
	if err != nil {
		return nil, err
	}

	summary, keyPoints, err := engine.Summarize(ctx, req.Text, length)
	if err != nil {
		return nil, fmt.Errorf("run %s engine: %w", mode, err)
	}
	if keyPoints == nil {
		keyPoints = []string{}
	}

	reply := &ports.SummarizeReply{
		Result: domain.SummaryResult{
			Summary:       summary,
			KeyPoints:     keyPoints,
			Mode:          mode,
			Length:        length,
			OriginalChars: utf8.RuneCountInString(req.Text),
			SummaryChars:  utf8.RuneCountInString(summary),
		},
	}

	if req.Save {
		record, err := uc.save(ctx, req, reply.Result)
		if err != nil {
			return nil, err
		}
		reply.SavedID = record.ID
	}
	return reply, nil
}

// ExtractKeyPoints is the standalone key-point view; it always runs the
// local engine.
func (uc *SummarizeUseCase) ExtractKeyPoints(ctx context.Context, text string, maxPoints int) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.WrapError(domain.ErrEmptyInput, "extract key points", errors.New("no text provided"))
	}

	engine, err := uc.selector.Select(domain.ModeLocal, "")
	if err != nil {
		return nil, err
	}
	return engine.ExtractKeyPoints(ctx, text, maxPoints)
}

func (uc *SummarizeUseCase) save(ctx context.Context, req ports.SummarizeRequest, result domain.SummaryResult) (*domain.SummaryRecord, error) {
	filename := strings.TrimSpace(req.Filename)
	if filename == "" {
		filename = "pasted_text"
	}
	sourceType := req.SourceType
	if sourceType == "" {
		sourceType = domain.SourceText
	}

	record := &domain.SummaryRecord{
		ID:            uuid.NewString(),
		Filename:      filename,
		SourceType:    sourceType,
		Mode:          result.Mode,
		Length:        result.Length,
		OriginalText:  req.Text,
		Summary:       result.Summary,
		KeyPoints:     result.KeyPoints,
		OriginalChars: result.OriginalChars,
		SummaryChars:  result.SummaryChars,
		CreatedAt:     time.Now().UTC(),
	}
	if err := uc.store.Save(ctx, record); err != nil {
		return nil, fmt.Errorf("save summary record: %w", err)
	}
	return record, nil
}
