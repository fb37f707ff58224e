package httpadapter

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/MaanyaGupta/Document-Text-summariser/internal/core/ports"
	"github.com/MaanyaGupta/Document-Text-summariser/internal/observability/metrics"
)

const (
	maxUploadBytes  = 32 << 20
	maxInFlight     = 64
	inFlightWaitFor = 2 * time.Second
)

type RouterConfig struct {
	ServiceName    string
	RateLimitRPS   float64
	RateLimitBurst int
	ListLimit      int
}

type Router struct {
	cfg       RouterConfig
	summaries ports.SummaryService
	ingest    ports.DocumentIngestor
	documents ports.DocumentStatusReader
	browser   ports.SummaryBrowser
	metrics   *metrics.HTTPServerMetrics
}

func NewRouter(
	cfg RouterConfig,
	summaries ports.SummaryService,
	ingest ports.DocumentIngestor,
	documents ports.DocumentStatusReader,
	browser ports.SummaryBrowser,
	m *metrics.HTTPServerMetrics,
) *Router {
	if cfg.ServiceName == "" {
		cfg.ServiceName = "api"
	}
	if cfg.ListLimit <= 0 {
		cfg.ListLimit = 50
	}
	return &Router{
		cfg:       cfg,
		summaries: summaries,
		ingest:    ingest,
		documents: documents,
		browser:   browser,
		metrics:   m,
	}
}

func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", rt.healthz)
	mux.HandleFunc("/v1/summaries", rt.summariesCollection)
	mux.HandleFunc("/v1/summaries/", rt.summaryByID)
	mux.HandleFunc("/v1/keypoints", rt.extractKeyPoints)
	mux.HandleFunc("/v1/documents", rt.uploadDocument)
	mux.HandleFunc("/v1/documents/", rt.getDocumentByID)
	if rt.metrics != nil {
		mux.Handle("/metrics", rt.metrics.Handler())
	}

	var handler http.Handler = mux
	if rt.metrics != nil {
		handler = rt.metrics.Middleware(rt.cfg.ServiceName, handler)
	}
	handler = backpressureMiddleware(handler, maxInFlight, inFlightWaitFor)
	handler = rateLimitMiddleware(handler, rt.cfg.RateLimitRPS, rt.cfg.RateLimitBurst)
	handler = accessLogMiddleware(handler)
	handler = requestIDMiddleware(handler)
	return handler
}

func (rt *Router) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (rt *Router) summariesCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		rt.summarize(w, r)
	case http.MethodGet:
		rt.listSummaries(w, r)
	default:
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
	}
}

func (rt *Router) summarize(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text     string `json:"text"`
		Filename string `json:"filename"`
		Length   string `json:"length"`
		Mode     string `json:"mode"`
		APIKey   string `json:"api_key"`
		Save     bool   `json:"save"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	start := time.Now()
	reply, err := rt.summaries.Summarize(r.Context(), ports.SummarizeRequest{
		Text:       req.Text,
		Filename:   req.Filename,
		Length:     req.Length,
		Mode:       req.Mode,
		Credential: req.APIKey,
		Save:       req.Save,
	})
	if rt.metrics != nil {
		mode, length := req.Mode, req.Length
		original, summary := 0, 0
		if reply != nil {
			mode = string(reply.Result.Mode)
			length = string(reply.Result.Length)
			original = reply.Result.OriginalChars
			summary = reply.Result.SummaryChars
		}
		rt.metrics.RecordSummarization(rt.cfg.ServiceName, mode, length, original, summary, time.Since(start), err)
	}
	if err != nil {
		writeError(w, err)
		return
	}

	resp := map[string]any{
		"summary":         reply.Result.Summary,
		"key_points":      reply.Result.KeyPoints,
		"mode":            reply.Result.Mode,
		"length":          reply.Result.Length,
		"original_length": reply.Result.OriginalChars,
		"summary_length":  reply.Result.SummaryChars,
	}
	if reply.SavedID != "" {
		resp["saved_id"] = reply.SavedID
	}
	writeJSON(w, http.StatusOK, resp)
}

func (rt *Router) extractKeyPoints(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	var req struct {
		Text      string `json:"text"`
		MaxPoints int    `json:"max_points"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	points, err := rt.summaries.ExtractKeyPoints(r.Context(), req.Text, req.MaxPoints)
	if rt.metrics != nil {
		rt.metrics.RecordKeyPointExtraction(rt.cfg.ServiceName, err)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"key_points": points})
}

func (rt *Router) uploadDocument(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "multipart field 'file' is required"})
		return
	}
	defer file.Close()

	doc, err := rt.ingest.Upload(
		r.Context(),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		r.FormValue("mode"),
		r.FormValue("length"),
		file,
	)
	if err != nil {
		writeError(w, err)
		return
	}
	if rt.metrics != nil {
		rt.metrics.RecordUpload(rt.cfg.ServiceName, filepath.Ext(doc.Filename))
	}

	writeJSON(w, http.StatusAccepted, doc)
}

func (rt *Router) getDocumentByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/v1/documents/")
	if id == "" || strings.Contains(id, "/") {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "document id is required"})
		return
	}

	doc, err := rt.documents.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (rt *Router) listSummaries(w http.ResponseWriter, r *http.Request) {
	limit := rt.cfg.ListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	listings, err := rt.browser.List(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"summaries": listings, "count": len(listings)})
}

func (rt *Router) summaryByID(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/v1/summaries/")
	if rest == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "summary id is required"})
		return
	}

	if id, ok := strings.CutSuffix(rest, "/export"); ok {
		rt.exportSummary(w, r, id)
		return
	}
	if strings.Contains(rest, "/") {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}

	switch r.Method {
	case http.MethodGet:
		rec, err := rt.browser.Get(r.Context(), rest)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, rec)
	case http.MethodDelete:
		if err := rt.browser.Delete(r.Context(), rest); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "deleted", "id": rest})
	default:
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
	}
}

func (rt *Router) exportSummary(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}
	if id == "" || strings.Contains(id, "/") {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "summary id is required"})
		return
	}

	format := r.URL.Query().Get("format")
	content, contentType, err := rt.browser.Export(r.Context(), id, format)
	if err != nil {
		writeError(w, err)
		return
	}
	if rt.metrics != nil {
		rt.metrics.RecordExport(rt.cfg.ServiceName, format)
	}

	ext := "txt"
	if strings.HasPrefix(contentType, "application/json") {
		ext = "json"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="summary_`+id+"."+ext+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(content))
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, mapErrorToHTTPStatus(err), map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
