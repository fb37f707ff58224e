package gemini

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/MaanyaGupta/Document-Text-summariser/internal/infrastructure/resilience"
)

// classifyRemoteError decides which online-engine failures are worth a
// retry. Caller cancellation is terminal; timeouts, transport failures,
// 429 and 5xx are transient.
func classifyRemoteError(err error) resilience.ErrorClassification {
	if err == nil {
		return resilience.ErrorClassification{}
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return resilience.ErrorClassification{Retryable: false, RecordFailure: false}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return resilience.ErrorClassification{Retryable: true, RecordFailure: true}
	}

	var status *statusError
	if errors.As(err, &status) {
		retryable := status.StatusCode == http.StatusTooManyRequests || status.StatusCode >= 500
		return resilience.ErrorClassification{Retryable: retryable, RecordFailure: retryable}
	}

	// Unknown failure shape: count it against the breaker but do not
	// hammer the API.
	return resilience.ErrorClassification{Retryable: false, RecordFailure: true}
}
