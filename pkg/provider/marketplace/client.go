// Package marketplace provides a provider.SalesFetcher backed by the GoDaddy
// domain marketplace API.
package marketplace

import (
	"appraiser/internal/config"
	"appraiser/pkg/domain"
	"appraiser/pkg/httpclient"
	"appraiser/pkg/provider"
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
)

// Name labels this provider in logs and metrics.
const Name = "marketplace"

// Options configure the marketplace client.
type Options struct {
	BaseURL string
	// APIKey is sent as an sso-key authorization, "<key>:<secret>".
	APIKey string
}

// NewOptions constructs Options from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		BaseURL: cfg.Providers.Marketplace.BaseURL,
		APIKey:  cfg.Providers.Marketplace.APIKey,
	}
}

// Client lists recently sold domains comparable to a given one.
type Client struct {
	http *resty.Client
}

type listing struct {
	Domain string              `json:"domain"`
	Price  decimal.NullDecimal `json:"price"`
}

// ComparableSales returns the sale prices of listings comparable to name.
// Listings without a price are kept as invalid entries. A response without a
// listings field yields domain.ErrAbsent; an empty list is a valid result.
func (c *Client) ComparableSales(ctx context.Context, name string) (domain.ComparableSales, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("domain", name).
		Get("/v1/marketplace/listings/sold")
	if err != nil {
		return domain.ComparableSales{}, httpclient.RequestError(err)
	}
	if err := httpclient.CheckResponse(res); err != nil {
		return domain.ComparableSales{}, fmt.Errorf("could not get comparable sales: %w", err)
	}

	var body struct {
		Listings *[]listing `json:"listings"`
	}
	if err := httpclient.DecodeJSON(res, &body); err != nil {
		return domain.ComparableSales{}, err
	}
	if body.Listings == nil {
		return domain.ComparableSales{}, fmt.Errorf("no listings for %s: %w", name, domain.ErrAbsent)
	}

	prices := make([]decimal.NullDecimal, 0, len(*body.Listings))
	for _, l := range *body.Listings {
		prices = append(prices, l.Price)
	}

	return domain.ComparableSales{Prices: prices}, nil
}

var _ provider.SalesFetcher = (*Client)(nil)

// New constructs a Client sending requests through client.
func New(client *resty.Client, opts Options) *Client {
	client.SetBaseURL(opts.BaseURL)
	client.SetHeader("Authorization", "sso-key "+opts.APIKey)
	client.SetHeader("Accept", "application/json")

	return &Client{http: client}
}
