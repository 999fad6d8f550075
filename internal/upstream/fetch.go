package upstream

import (
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"safety-hub-go/internal/observability"
)

// DefaultTimeout bounds every outbound call. A request that cannot complete
// within it is reported as unavailable and never retried.
const DefaultTimeout = 12 * time.Second

// Outcome is the result of a single upstream GET: either a 2xx body or
// "unavailable", with no further distinction of cause.
type Outcome struct {
	Available bool
	Body      []byte
}

// Fetcher issues one GET per call with a fixed timeout. Connection errors,
// timeouts, non-2xx statuses and unreadable bodies all collapse to an
// unavailable Outcome; nothing is ever raised to the caller.
type Fetcher struct {
	httpClient *http.Client
	logger     *logrus.Logger
	metrics    *observability.Metrics
}

// NewFetcher creates a fetch helper shared by all upstream clients.
func NewFetcher(logger *logrus.Logger, metrics *observability.Metrics) *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     logger,
		metrics:    metrics,
	}
}

// Get performs a single GET against rawURL with optional query parameters
// and headers. The provider name labels logs and metrics only.
func (f *Fetcher) Get(provider, rawURL string, params url.Values, headers map[string]string) Outcome {
	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return f.unavailable(provider, rawURL, err)
	}
	if params != nil {
		req.URL.RawQuery = params.Encode()
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return f.unavailable(provider, rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		f.logger.WithFields(logrus.Fields{
			"provider": provider,
			"status":   resp.StatusCode,
		}).Debug("upstream returned non-2xx status")
		f.metrics.UpstreamFetches.WithLabelValues(provider, "unavailable").Inc()
		return Outcome{}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return f.unavailable(provider, rawURL, err)
	}

	f.metrics.UpstreamFetches.WithLabelValues(provider, "success").Inc()
	return Outcome{Available: true, Body: body}
}

func (f *Fetcher) unavailable(provider, rawURL string, err error) Outcome {
	f.logger.WithError(err).WithFields(logrus.Fields{
		"provider": provider,
		"url":      rawURL,
	}).Debug("upstream fetch failed")
	f.metrics.UpstreamFetches.WithLabelValues(provider, "unavailable").Inc()
	return Outcome{}
}
