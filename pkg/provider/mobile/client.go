// Package mobile provides a provider.MobileFriendlyFetcher backed by the
// Search Console mobile-friendly test.
package mobile

import (
	"appraiser/internal/config"
	"appraiser/pkg/domain"
	"appraiser/pkg/httpclient"
	"appraiser/pkg/provider"
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// Name labels this provider in logs and metrics.
const Name = "mobile"

const (
	verdictMobileFriendly = "MOBILE_FRIENDLY"
	verdictUnspecified    = "MOBILE_FRIENDLY_TEST_RESULT_UNSPECIFIED"
)

// Options configure the mobile-friendly test client.
type Options struct {
	BaseURL string
	APIKey  string
}

// NewOptions constructs Options from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		BaseURL: cfg.Providers.Mobile.BaseURL,
		APIKey:  cfg.Providers.Mobile.APIKey,
	}
}

type Client struct {
	http   *resty.Client
	apiKey string
}

// MobileFriendly tests http://name. An unspecified or missing verdict yields
// domain.ErrAbsent.
func (c *Client) MobileFriendly(ctx context.Context, name string) (domain.MobileFriendly, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"url": "http://" + name}).
		Post("/v1/urlTestingTools/mobileFriendlyTest:run")
	if err != nil {
		return domain.MobileFriendly{}, httpclient.RequestError(err)
	}
	if err := httpclient.CheckResponse(res); err != nil {
		return domain.MobileFriendly{}, fmt.Errorf("could not run mobile-friendly test: %w", err)
	}

	var body struct {
		TestStatus struct {
			Status  string `json:"status"`
			Details string `json:"details"`
		} `json:"testStatus"`
		MobileFriendliness string `json:"mobileFriendliness"`
	}
	if err := httpclient.DecodeJSON(res, &body); err != nil {
		return domain.MobileFriendly{}, err
	}
	if body.MobileFriendliness == "" || body.MobileFriendliness == verdictUnspecified {
		return domain.MobileFriendly{}, fmt.Errorf("no verdict for %s (test status %q): %w",
			name, body.TestStatus.Status, domain.ErrAbsent)
	}

	return domain.MobileFriendly{
		Friendly: body.MobileFriendliness == verdictMobileFriendly,
		Verdict:  body.MobileFriendliness,
	}, nil
}

var _ provider.MobileFriendlyFetcher = (*Client)(nil)

// New constructs a Client sending requests through client.
func New(client *resty.Client, opts Options) *Client {
	client.SetBaseURL(opts.BaseURL)

	return &Client{http: client, apiKey: opts.APIKey}
}
