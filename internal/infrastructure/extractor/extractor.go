// Package extractor is the document reader: it turns stored PDF, DOCX,
// XLSX and plain-text containers into a single decoded text string plus a
// source-type tag. The summarization core never sees file formats.
package extractor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/MaanyaGupta/Document-Text-summariser/internal/core/domain"
	"github.com/MaanyaGupta/Document-Text-summariser/internal/core/ports"
)

type Reader struct {
	storage ports.ObjectStorage
}

func New(storage ports.ObjectStorage) *Reader {
	return &Reader{storage: storage}
}

// Extract detects the container by filename extension and returns the
// extracted text. Unknown extensions are read as UTF-8 plain text.
func (r *Reader) Extract(ctx context.Context, doc *domain.Document) (string, domain.SourceType, error) {
	rc, err := r.storage.Open(ctx, doc.StoragePath)
	if err != nil {
		return "", "", fmt.Errorf("open source document: %w", err)
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return "", "", fmt.Errorf("read source document: %w", err)
	}

	switch strings.ToLower(filepath.Ext(doc.Filename)) {
	case ".pdf":
		text, err := extractPDF(raw)
		if err != nil {
			return "", "", fmt.Errorf("extract pdf %s: %w", doc.Filename, err)
		}
		return text, domain.SourcePDF, nil
	case ".docx":
		text, err := extractDocx(raw)
		if err != nil {
			return "", "", fmt.Errorf("extract docx %s: %w", doc.Filename, err)
		}
		return text, domain.SourceDocx, nil
	case ".xlsx":
		text, err := extractXLSX(raw)
		if err != nil {
			return "", "", fmt.Errorf("extract xlsx %s: %w", doc.Filename, err)
		}
		return text, domain.SourceXLSX, nil
	default:
		if !utf8.Valid(raw) {
			return "", "", domain.WrapError(domain.ErrInvalidInput, "extract text",
				errors.New("file is not valid utf-8 and has no recognized container format"))
		}
		return strings.TrimSpace(string(raw)), domain.SourceText, nil
	}
}
