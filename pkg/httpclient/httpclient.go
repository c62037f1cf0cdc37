// Package httpclient builds the resty clients used by the metric providers.
// Every client shares the configured timeout and user agent, logs through zap
// and records request latency per provider.
package httpclient

import (
	"appraiser/internal/config"
	"appraiser/pkg/logger"
	"appraiser/pkg/metrics"
	"appraiser/pkg/serrors"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// maxBodyInError bounds how much of an upstream body ends up in error messages.
const maxBodyInError = 512

// Options configure the resty clients built by New.
type Options struct {
	// Timeout bounds a single request, including reading the body.
	Timeout time.Duration
	// UserAgent is sent with every request unless a provider overrides it.
	UserAgent string
}

// NewOptions constructs Options from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Timeout:   cfg.Client.Timeout,
		UserAgent: cfg.Client.UserAgent,
	}
}

// New returns a resty client for provider that sends requests through
// httpClient. Passing the same httpClient to every provider shares its
// connection pool. A nil httpClient uses a fresh http.Client.
func New(ctx context.Context, httpClient *http.Client, provider string, opts Options) *resty.Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	client := resty.NewWithClient(httpClient)
	client.SetLogger(logger.Get(ctx).Named("resty").Sugar())
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}
	if opts.UserAgent != "" {
		client.SetHeader("User-Agent", opts.UserAgent)
	}

	client.OnAfterResponse(func(_ *resty.Client, res *resty.Response) error {
		metrics.UpstreamRequestDuration.
			WithLabelValues(provider, strconv.Itoa(res.StatusCode())).
			Observe(res.Time().Seconds())
		logger.Debug(res.Request.Context(), "upstream request done",
			zap.String("provider", provider),
			zap.String("method", res.Request.Method),
			zap.String("url", res.Request.URL),
			zap.Int("status", res.StatusCode()),
			zap.Duration("took", res.Time()))

		return nil
	})
	client.OnError(func(req *resty.Request, err error) {
		metrics.UpstreamRequestDuration.
			WithLabelValues(provider, "error").
			Observe(time.Since(req.Time).Seconds())
		logger.Debug(req.Context(), "upstream request failed",
			zap.String("provider", provider),
			zap.String("method", req.Method),
			zap.String("url", req.URL),
			zap.Error(err))
	})

	return client
}

// NewStd returns a plain *http.Client for libraries that do not work with
// resty. It reuses the transport and cookie jar of httpClient and records
// the same latency metric as New.
func NewStd(ctx context.Context, httpClient *http.Client, provider string, opts Options) *http.Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	next := httpClient.Transport
	if next == nil {
		next = http.DefaultTransport
	}

	return &http.Client{
		Transport: &transport{
			next:      next,
			provider:  provider,
			userAgent: opts.UserAgent,
			log:       logger.Get(ctx),
		},
		Jar:     httpClient.Jar,
		Timeout: opts.Timeout,
	}
}

type transport struct {
	next      http.RoundTripper
	provider  string
	userAgent string
	log       *zap.Logger
}

func (t *transport) RoundTrip(r *http.Request) (*http.Response, error) {
	if t.userAgent != "" && r.Header.Get("User-Agent") == "" {
		r = r.Clone(r.Context())
		r.Header.Set("User-Agent", t.userAgent)
	}

	start := time.Now()
	res, err := t.next.RoundTrip(r)
	took := time.Since(start)

	status := "error"
	if err == nil {
		status = strconv.Itoa(res.StatusCode)
	}
	metrics.UpstreamRequestDuration.WithLabelValues(t.provider, status).Observe(took.Seconds())
	t.log.Debug("upstream request done",
		zap.String("provider", t.provider),
		zap.String("method", r.Method),
		zap.String("url", r.URL.Redacted()),
		zap.String("status", status),
		zap.Duration("took", took))

	return res, err //nolint: wrapcheck
}

// RequestError classifies a transport error returned by resty. Deadlines and
// network timeouts become serrors.ErrTimeout.
func RequestError(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return serrors.Wrap(serrors.ErrTimeout, err, "request timed out")
	}

	return fmt.Errorf("could not send request: %w", err)
}

// CheckResponse returns nil for 2xx responses. Other statuses are mapped to a
// semantic kind when one applies, and the (truncated) body is kept in the
// message.
func CheckResponse(res *resty.Response) error {
	if res.IsSuccess() {
		return nil
	}

	body := strings.TrimSpace(res.String())
	if len(body) > maxBodyInError {
		body = body[:maxBodyInError] + "..."
	}

	if kind := serrors.FromStatus(res.StatusCode()); kind != nil {
		return serrors.With(kind, "unexpected status %d: %s", res.StatusCode(), body)
	}

	return fmt.Errorf("unexpected status %d: %s", res.StatusCode(), body)
}

// DecodeJSON unmarshals the response body into v. A body that cannot be
// decoded is reported as serrors.ErrMalformed.
func DecodeJSON(res *resty.Response, v any) error {
	if err := json.Unmarshal(res.Body(), v); err != nil {
		return serrors.Wrap(serrors.ErrMalformed, err, "could not decode response")
	}

	return nil
}
