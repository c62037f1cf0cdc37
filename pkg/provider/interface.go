// Package provider defines the interfaces implemented by metric providers.
// Each provider fetches one raw metric for a domain from an external service;
// implementations live in the sub-packages. A provider returns
// domain.ErrAbsent when the service answered without the requested value.
package provider

import (
	"appraiser/pkg/domain"
	"context"
)

//go:generate mockgen -package mockprovider -source=interface.go -destination=mock/mockprovider.go *

// TrendFetcher returns the search-interest history of keywords.
type TrendFetcher interface {
	Interest(ctx context.Context, keywords []string) (domain.TrendSeries, error)
}

// AgeFetcher returns the registration age of a domain.
type AgeFetcher interface {
	Age(ctx context.Context, name string) (domain.DomainAge, error)
}

// BacklinksFetcher returns backlink statistics of a domain.
type BacklinksFetcher interface {
	Backlinks(ctx context.Context, name string) (domain.Backlinks, error)
}

// SiteSpeedFetcher returns page-speed scores of a domain's landing page.
type SiteSpeedFetcher interface {
	SiteSpeed(ctx context.Context, name string) (domain.SiteSpeed, error)
}

// MobileFriendlyFetcher runs a mobile-friendliness test against a domain.
type MobileFriendlyFetcher interface {
	MobileFriendly(ctx context.Context, name string) (domain.MobileFriendly, error)
}

// ContentFetcher summarizes the landing page content of a domain.
type ContentFetcher interface {
	Content(ctx context.Context, name string) (domain.Content, error)
}

// SocialFetcher returns the number of social media mentions of a domain.
type SocialFetcher interface {
	SocialMentions(ctx context.Context, name string) (domain.SocialMentions, error)
}

// TrafficFetcher returns the estimated traffic of a domain.
type TrafficFetcher interface {
	Traffic(ctx context.Context, name string) (domain.Traffic, error)
}

// SalesFetcher returns recent sale prices of domains comparable to name.
type SalesFetcher interface {
	ComparableSales(ctx context.Context, name string) (domain.ComparableSales, error)
}
