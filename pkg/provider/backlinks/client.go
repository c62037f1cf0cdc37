// Package backlinks provides a provider.BacklinksFetcher backed by a Moz-style
// link metrics API.
package backlinks

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
const Name = "backlinks"

// Options configure the backlinks client.
type Options struct {
	BaseURL string
	APIKey  string
}

// NewOptions constructs Options from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		BaseURL: cfg.Providers.Backlinks.BaseURL,
		APIKey:  cfg.Providers.Backlinks.APIKey,
	}
}

// Client fetches link metrics. It is safe for concurrent use.
type Client struct {
	http   *resty.Client
	apiKey string
}

// Backlinks returns the link metrics of name. A response without any of the
// known fields yields domain.ErrAbsent.
func (c *Client) Backlinks(ctx context.Context, name string) (domain.Backlinks, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"site":    name,
			"api_key": c.apiKey,
		}).
		Get("/api/v1/links")
	if err != nil {
		return domain.Backlinks{}, httpclient.RequestError(err)
	}
	if err := httpclient.CheckResponse(res); err != nil {
		return domain.Backlinks{}, fmt.Errorf("could not get backlinks: %w", err)
	}

	var body struct {
		TotalExternalLinks *int64   `json:"total_external_links"`
		FollowedLinks      *int64   `json:"followed_links"`
		DomainAuthority    *float64 `json:"domain_authority"`
		LinkingDomains     *int64   `json:"linking_domains"`
	}
	if err := httpclient.DecodeJSON(res, &body); err != nil {
		return domain.Backlinks{}, err
	}
	if body.TotalExternalLinks == nil && body.FollowedLinks == nil &&
		body.DomainAuthority == nil && body.LinkingDomains == nil {
		return domain.Backlinks{}, fmt.Errorf("no link metrics for %s: %w", name, domain.ErrAbsent)
	}

	return domain.Backlinks{
		TotalExternalLinks: deref(body.TotalExternalLinks),
		FollowedLinks:      deref(body.FollowedLinks),
		DomainAuthority:    deref(body.DomainAuthority),
		LinkingDomains:     deref(body.LinkingDomains),
	}, nil
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}

	return *v
}

var _ provider.BacklinksFetcher = (*Client)(nil)

// New constructs a Client sending requests through client.
func New(client *resty.Client, opts Options) *Client {
	client.SetBaseURL(opts.BaseURL)

	return &Client{
		http:   client,
		apiKey: opts.APIKey,
	}
}
