package domain

import "time"

type DocumentStatus string

const (
	StatusUploaded   DocumentStatus = "uploaded"
	StatusProcessing DocumentStatus = "processing"
	StatusReady      DocumentStatus = "ready"
	StatusFailed     DocumentStatus = "failed"
)

// SourceType tags the container the raw text was extracted from.
type SourceType string

const (
	SourcePDF  SourceType = "pdf"
	SourceDocx SourceType = "docx"
	SourceXLSX SourceType = "xlsx"
	SourceText SourceType = "text"
)

// Document is an uploaded source file awaiting (or holding) a summary.
type Document struct {
	ID          string         `json:"id"`
	Filename    string         `json:"filename"`
	MimeType    string         `json:"mime_type"`
	StoragePath string         `json:"storage_path"`
	SourceType  SourceType     `json:"source_type,omitempty"`
	Mode        EngineMode     `json:"mode"`
	Length      LengthSetting  `json:"length"`
	Status      DocumentStatus `json:"status"`
	Error       string         `json:"error,omitempty"`
	SummaryID   string         `json:"summary_id,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
