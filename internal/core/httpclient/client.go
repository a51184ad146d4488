package httpclient

import (
	"net/http"
	"time"

	"dispatch-console/internal/core/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDHeader correlates an outgoing call with the order service's own logs.
const RequestIDHeader = "X-Request-ID"

// RequestIDRoundTripper tags requests that carry no request ID with a fresh UUID.
type RequestIDRoundTripper struct {
	// Proxied is the underlying RoundTripper to execute the request.
	Proxied http.RoundTripper
}

// RoundTrip sets the request ID on a copy of req and executes it.
func (rt *RequestIDRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get(RequestIDHeader) == "" {
		req = req.Clone(req.Context())
		req.Header.Set(RequestIDHeader, uuid.NewString())
	}
	return rt.Proxied.RoundTrip(req)
}

// LoggingRoundTripper captures request details for debugging.
type LoggingRoundTripper struct {
	// Proxied is the underlying RoundTripper to execute the request.
	Proxied http.RoundTripper
}

// RoundTrip executes the request and logs details.
func (lrt *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	log := logger.Get().With(
		zap.String("method", req.Method),
		zap.String("url", req.URL.Redacted()),
		zap.String("request_id", req.Header.Get(RequestIDHeader)),
	)

	log.Debug("HTTP Request Started")

	resp, err := lrt.Proxied.RoundTrip(req)
	duration := time.Since(start)

	if err != nil {
		log.Error("HTTP Request Failed", zap.Duration("duration", duration), zap.Error(err))
		return nil, err
	}

	log.Debug("HTTP Request Completed",
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("duration", duration),
	)

	return resp, nil
}

// NewClient returns an http.Client that tags and logs every outgoing request.
func NewClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: &RequestIDRoundTripper{
			Proxied: &LoggingRoundTripper{
				Proxied: http.DefaultTransport,
			},
		},
		Timeout: timeout,
	}
}
