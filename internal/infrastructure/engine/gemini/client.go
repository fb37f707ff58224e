// Package gemini implements the online abstractive engine on top of the
// Google Generative Language REST API. It satisfies the same strategy
// contract as the extractive engine; falling back to local mode on
// failure is the caller's decision, never done here.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/MaanyaGupta/Document-Text-summariser/internal/core/domain"
	"github.com/MaanyaGupta/Document-Text-summariser/internal/infrastructure/resilience"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-1.5-flash"
	defaultTimeout = 60 * time.Second
)

type Config struct {
	BaseURL    string
	Model      string
	Credential string
	Timeout    time.Duration
	Executor   *resilience.Executor
}

type Engine struct {
	baseURL    string
	model      string
	credential string
	executor   *resilience.Executor
	httpClient *http.Client
}

// New fails without a credential instead of silently degrading; the
// caller is expected to prompt for configuration, not retry.
func New(cfg Config) (*Engine, error) {
	if strings.TrimSpace(cfg.Credential) == "" {
		return nil, domain.WrapError(domain.ErrMissingCredential, "init online engine", errors.New("no api key configured"))
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Engine{
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		credential: cfg.Credential,
		executor:   cfg.Executor,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

func (e *Engine) Summarize(ctx context.Context, text string, length domain.LengthSetting) (string, []string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil, domain.WrapError(domain.ErrEmptyInput, "online summarize", errors.New("no non-whitespace characters"))
	}

	summary, err := e.generate(ctx, buildSummaryPrompt(text, length))
	if err != nil {
		return "", nil, err
	}

	keyPoints, err := e.ExtractKeyPoints(ctx, text, 0)
	if err != nil {
		return "", nil, err
	}
	return summary, keyPoints, nil
}

func (e *Engine) ExtractKeyPoints(ctx context.Context, text string, maxPoints int) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.WrapError(domain.ErrEmptyInput, "online key points", errors.New("no non-whitespace characters"))
	}
	if maxPoints <= 0 {
		maxPoints = 5
	}

	raw, err := e.generate(ctx, buildKeyPointsPrompt(text, maxPoints))
	if err != nil {
		return nil, err
	}
	return parseBulletList(raw, maxPoints), nil
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (e *Engine) generate(ctx context.Context, prompt string) (string, error) {
	var out string
	call := func(ctx context.Context) error {
		text, err := e.doGenerate(ctx, prompt)
		if err != nil {
			return err
		}
		out = text
		return nil
	}

	var err error
	if e.executor != nil {
		err = e.executor.Execute(ctx, "gemini.generate", call, classifyRemoteError)
	} else {
		err = call(ctx)
	}
	return out, err
}

func (e *Engine) doGenerate(ctx context.Context, prompt string) (string, error) {
	payload := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal generate request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", e.baseURL, e.model, e.credential)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return "", domain.WrapError(domain.ErrRemoteService, "gemini generate", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return "", domain.WrapError(domain.ErrRemoteService, "gemini generate", newStatusError(resp))
	}

	var parsed generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", domain.WrapError(domain.ErrRemoteService, "gemini generate", fmt.Errorf("decode response: %w", err))
	}
	if parsed.Error != nil {
		return "", domain.WrapError(domain.ErrRemoteService, "gemini generate",
			fmt.Errorf("api error %d: %s", parsed.Error.Code, parsed.Error.Message))
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", domain.WrapError(domain.ErrRemoteService, "gemini generate", errors.New("empty candidate list"))
	}

	text := strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", domain.WrapError(domain.ErrRemoteService, "gemini generate", errors.New("blank generation"))
	}
	return text, nil
}

type statusError struct {
	StatusCode int
	Status     string
	Body       string
}

func newStatusError(resp *http.Response) *statusError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	return &statusError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Body:       strings.TrimSpace(string(body)),
	}
}

func (e *statusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("gemini status: %s", e.Status)
	}
	return fmt.Sprintf("gemini status: %s: %s", e.Status, e.Body)
}
