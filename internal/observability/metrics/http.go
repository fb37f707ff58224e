package metrics

import (
	"bufio"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type HTTPServerMetrics struct {
	registry *prometheus.Registry

	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestInFlight prometheus.Gauge

	summariesTotal    *prometheus.CounterVec
	summaryDuration   *prometheus.HistogramVec
	summaryInputChars *prometheus.HistogramVec
	summaryReduction  *prometheus.HistogramVec
	keyPointsExtracts *prometheus.CounterVec
	uploadsTotal      *prometheus.CounterVec
	exportsTotal      *prometheus.CounterVec
}

func NewHTTPServerMetrics(service string) *HTTPServerMetrics {
	registry := prometheus.NewRegistry()

	requestTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dts",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed.",
		},
		[]string{"service", "method", "path", "status"},
	)
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "dts",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "method", "path"},
	)
	requestInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "dts",
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Number of in-flight HTTP requests.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	summariesTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dts",
			Subsystem: "summarize",
			Name:      "requests_total",
			Help:      "Total completed summarization requests by engine mode and length.",
		},
		[]string{"service", "mode", "length", "status"},
	)
	summaryDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "dts",
			Subsystem: "summarize",
			Name:      "duration_seconds",
			Help:      "Summarization duration in seconds by engine mode.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "mode"},
	)
	summaryInputChars := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "dts",
			Subsystem: "summarize",
			Name:      "input_chars",
			Help:      "Distribution of input size in characters per request.",
			Buckets:   []float64{100, 500, 1000, 5000, 10000, 50000, 100000, 500000},
		},
		[]string{"service", "mode"},
	)
	summaryReduction := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "dts",
			Subsystem: "summarize",
			Name:      "compression_ratio",
			Help:      "Summary length divided by original length.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.2, 0.3, 0.5, 0.7, 1},
		},
		[]string{"service", "mode"},
	)
	keyPointsExtracts := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dts",
			Subsystem: "summarize",
			Name:      "key_point_requests_total",
			Help:      "Total standalone key-point extraction requests.",
		},
		[]string{"service", "status"},
	)
	uploadsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dts",
			Subsystem: "documents",
			Name:      "uploads_total",
			Help:      "Total accepted document uploads by file extension.",
		},
		[]string{"service", "extension"},
	)
	exportsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dts",
			Subsystem: "summaries",
			Name:      "exports_total",
			Help:      "Total summary exports by format.",
		},
		[]string{"service", "format"},
	)

	registry.MustRegister(
		requestTotal,
		requestDuration,
		requestInFlight,
		summariesTotal,
		summaryDuration,
		summaryInputChars,
		summaryReduction,
		keyPointsExtracts,
		uploadsTotal,
		exportsTotal,
	)

	return &HTTPServerMetrics{
		registry:          registry,
		requestTotal:      requestTotal,
		requestDuration:   requestDuration,
		requestInFlight:   requestInFlight,
		summariesTotal:    summariesTotal,
		summaryDuration:   summaryDuration,
		summaryInputChars: summaryInputChars,
		summaryReduction:  summaryReduction,
		keyPointsExtracts: keyPointsExtracts,
		uploadsTotal:      uploadsTotal,
		exportsTotal:      exportsTotal,
	}
}

func (m *HTTPServerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *HTTPServerMetrics) Middleware(service string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		path := normalizePath(r.URL.Path)
		recorder := &statusRecorder{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		m.requestInFlight.Inc()
		defer m.requestInFlight.Dec()

		next.ServeHTTP(recorder, r)

		m.requestTotal.WithLabelValues(
			service,
			r.Method,
			path,
			strconv.Itoa(recorder.statusCode),
		).Inc()
		m.requestDuration.WithLabelValues(service, r.Method, path).Observe(time.Since(start).Seconds())
	})
}

func normalizePath(path string) string {
	switch {
	case strings.HasPrefix(path, "/v1/documents/"):
		return "/v1/documents/{document_id}"
	case strings.HasPrefix(path, "/v1/summaries/"):
		if strings.HasSuffix(path, "/export") {
			return "/v1/summaries/{summary_id}/export"
		}
		return "/v1/summaries/{summary_id}"
	default:
		return path
	}
}

func (m *HTTPServerMetrics) RecordSummarization(service, mode, length string, originalChars, summaryChars int, duration time.Duration, err error) {
	if mode == "" {
		mode = "unknown"
	}
	if length == "" {
		length = "unknown"
	}
	status := "success"
	if err != nil {
		status = "error"
	}

	m.summariesTotal.WithLabelValues(service, mode, length, status).Inc()
	if err != nil {
		return
	}
	m.summaryDuration.WithLabelValues(service, mode).Observe(duration.Seconds())
	m.summaryInputChars.WithLabelValues(service, mode).Observe(float64(originalChars))
	if originalChars > 0 {
		m.summaryReduction.WithLabelValues(service, mode).Observe(float64(summaryChars) / float64(originalChars))
	}
}

func (m *HTTPServerMetrics) RecordKeyPointExtraction(service string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	m.keyPointsExtracts.WithLabelValues(service, status).Inc()
}

func (m *HTTPServerMetrics) RecordUpload(service, extension string) {
	if extension == "" {
		extension = "none"
	}
	m.uploadsTotal.WithLabelValues(service, strings.TrimPrefix(extension, ".")).Inc()
}

func (m *HTTPServerMetrics) RecordExport(service, format string) {
	if format == "" {
		format = "txt"
	}
	m.exportsTotal.WithLabelValues(service, format).Inc()
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusRecorder) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *statusRecorder) Flush() {
	flusher, ok := w.ResponseWriter.(http.Flusher)
	if ok {
		flusher.Flush()
	}
}

func (w *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hijacker, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, fmt.Errorf("response writer does not implement http.Hijacker")
	}
	return hijacker.Hijack()
}

func (w *statusRecorder) Push(target string, opts *http.PushOptions) error {
	pusher, ok := w.ResponseWriter.(http.Pusher)
	if !ok {
		return http.ErrNotSupported
	}
	return pusher.Push(target, opts)
}
