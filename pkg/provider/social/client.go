// Package social provides a provider.SocialFetcher backed by a social media
// mentions API.
package social

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
const Name = "social"

// Options configure the social mentions client.
type Options struct {
	BaseURL string
	APIKey  string
}

// NewOptions constructs Options from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		BaseURL: cfg.Providers.Social.BaseURL,
		APIKey:  cfg.Providers.Social.APIKey,
	}
}

// Client counts social media mentions of a domain.
type Client struct {
	http   *resty.Client
	apiKey string
}

// SocialMentions returns the total number of mentions of name.
func (c *Client) SocialMentions(ctx context.Context, name string) (domain.SocialMentions, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"site":    name,
			"api_key": c.apiKey,
		}).
		Get("/api/v1/mentions")
	if err != nil {
		return domain.SocialMentions{}, httpclient.RequestError(err)
	}
	if err := httpclient.CheckResponse(res); err != nil {
		return domain.SocialMentions{}, fmt.Errorf("could not get social mentions: %w", err)
	}

	var body struct {
		TotalMentions *int64 `json:"total_mentions"`
	}
	if err := httpclient.DecodeJSON(res, &body); err != nil {
		return domain.SocialMentions{}, err
	}
	if body.TotalMentions == nil {
		return domain.SocialMentions{}, fmt.Errorf("no mention count for %s: %w", name, domain.ErrAbsent)
	}

	return domain.SocialMentions{Total: *body.TotalMentions}, nil
}

var _ provider.SocialFetcher = (*Client)(nil)

// New constructs a Client sending requests through client.
func New(client *resty.Client, opts Options) *Client {
	client.SetBaseURL(opts.BaseURL)

	return &Client{http: client, apiKey: opts.APIKey}
}
