// Package traffic provides a provider.TrafficFetcher backed by a traffic
// estimation API.
package traffic

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
const Name = "traffic"

// Options configure the traffic client.
type Options struct {
	BaseURL string
	APIKey  string
}

// NewOptions constructs Options from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		BaseURL: cfg.Providers.Traffic.BaseURL,
		APIKey:  cfg.Providers.Traffic.APIKey,
	}
}

type Client struct {
	http   *resty.Client
	apiKey string
}

// Traffic returns the estimated total visits of name.
func (c *Client) Traffic(ctx context.Context, name string) (domain.Traffic, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"site":    name,
			"api_key": c.apiKey,
		}).
		Get("/api/v1/traffic")
	if err != nil {
		return domain.Traffic{}, httpclient.RequestError(err)
	}
	if err := httpclient.CheckResponse(res); err != nil {
		return domain.Traffic{}, fmt.Errorf("could not get traffic: %w", err)
	}

	var body struct {
		TotalVisits *int64 `json:"total_visits"`
	}
	if err := httpclient.DecodeJSON(res, &body); err != nil {
		return domain.Traffic{}, err
	}
	if body.TotalVisits == nil {
		return domain.Traffic{}, fmt.Errorf("no traffic estimate for %s: %w", name, domain.ErrAbsent)
	}

	return domain.Traffic{Visits: *body.TotalVisits}, nil
}

var _ provider.TrafficFetcher = (*Client)(nil)

// New constructs a Client sending requests through client.
func New(client *resty.Client, opts Options) *Client {
	client.SetBaseURL(opts.BaseURL)

	return &Client{http: client, apiKey: opts.APIKey}
}
