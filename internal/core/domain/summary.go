package domain

import "time"

// SummaryResult is the outcome of a single summarization invocation.
type SummaryResult struct {
	Summary       string        `json:"summary"`
	KeyPoints     []string      `json:"key_points"`
	Mode          EngineMode    `json:"mode"`
	Length        LengthSetting `json:"length"`
	OriginalChars int           `json:"original_length"`
	SummaryChars  int           `json:"summary_length"`
}

// SummaryRecord is a persisted summary together with the source text.
type SummaryRecord struct {
	ID            string        `json:"id"`
	Filename      string        `json:"filename"`
	SourceType    SourceType    `json:"source_type"`
	Mode          EngineMode    `json:"mode"`
	Length        LengthSetting `json:"length"`
	OriginalText  string        `json:"original_text"`
	Summary       string        `json:"summary"`
	KeyPoints     []string      `json:"key_points"`
	OriginalChars int           `json:"original_length"`
	SummaryChars  int           `json:"summary_length"`
	CreatedAt     time.Time     `json:"created_at"`
}

// SummaryListing is the truncated view used by list endpoints.
type SummaryListing struct {
	ID         string        `json:"id"`
	Filename   string        `json:"filename"`
	SourceType SourceType    `json:"source_type"`
	Mode       EngineMode    `json:"mode"`
	Length     LengthSetting `json:"length"`
	Preview    string        `json:"summary_preview"`
	CreatedAt  time.Time     `json:"created_at"`
}
