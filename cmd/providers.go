package main

import (
	"appraiser/internal/appraiser"
	"appraiser/internal/config"
	"appraiser/pkg/httpclient"
	"appraiser/pkg/logger"
	"appraiser/pkg/provider/backlinks"
	"appraiser/pkg/provider/content"
	"appraiser/pkg/provider/marketplace"
	"appraiser/pkg/provider/mobile"
	"appraiser/pkg/provider/pagespeed"
	"appraiser/pkg/provider/rdap"
	"appraiser/pkg/provider/social"
	"appraiser/pkg/provider/traffic"
	"appraiser/pkg/provider/trends"
	"appraiser/pkg/provider/whois"
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// newProviders builds the metric providers configured in cfg. Keyed
// providers are only enabled when their API key is set; trends, content and
// the domain age source need no key. Every provider gets its own http.Client
// (resty sets timeouts and cookie jars on it) around one shared transport.
func newProviders(ctx context.Context, cfg *config.Config, transport http.RoundTripper) (appraiser.Providers, error) {
	var (
		p    appraiser.Providers
		opts = httpclient.NewOptions(cfg)
	)
	newClient := func() *http.Client { return &http.Client{Transport: transport} }
	enabled := func(name, key string) bool {
		if key == "" {
			logger.Info(ctx, "provider disabled: no API key", zap.String("provider", name))

			return false
		}

		return true
	}

	tr, err := trends.New(httpclient.New(ctx, newClient(), trends.Name, opts), trends.NewOptions(cfg))
	if err != nil {
		return p, fmt.Errorf("could not create trends client: %w", err)
	}
	p.Trend = tr

	switch cfg.Providers.Age.Source {
	case config.AgeSourceRDAP:
		c, err := rdap.New(httpclient.NewStd(ctx, newClient(), rdap.Name, opts), rdap.NewOptions(cfg), nil)
		if err != nil {
			return p, fmt.Errorf("could not create rdap client: %w", err)
		}
		p.Age = c
	default:
		p.Age = whois.New(httpclient.New(ctx, newClient(), whois.Name, opts), whois.NewOptions(cfg), nil)
	}

	if bl := backlinks.NewOptions(cfg); enabled(backlinks.Name, bl.APIKey) {
		p.Backlinks = backlinks.New(httpclient.New(ctx, newClient(), backlinks.Name, opts), bl)
	}

	if ps := pagespeed.NewOptions(cfg); enabled(pagespeed.Name, ps.APIKey) {
		c, err := pagespeed.New(ctx, httpclient.NewStd(ctx, newClient(), pagespeed.Name, opts), ps)
		if err != nil {
			return p, fmt.Errorf("could not create pagespeed client: %w", err)
		}
		p.SiteSpeed = c
	}

	if mf := mobile.NewOptions(cfg); enabled(mobile.Name, mf.APIKey) {
		p.MobileFriendly = mobile.New(httpclient.New(ctx, newClient(), mobile.Name, opts), mf)
	}

	p.Content = content.New(httpclient.New(ctx, newClient(), content.Name, opts))

	if so := social.NewOptions(cfg); enabled(social.Name, so.APIKey) {
		p.Social = social.New(httpclient.New(ctx, newClient(), social.Name, opts), so)
	}

	if to := traffic.NewOptions(cfg); enabled(traffic.Name, to.APIKey) {
		p.Traffic = traffic.New(httpclient.New(ctx, newClient(), traffic.Name, opts), to)
	}

	if mo := marketplace.NewOptions(cfg); enabled(marketplace.Name, mo.APIKey) {
		p.Sales = marketplace.New(httpclient.New(ctx, newClient(), marketplace.Name, opts), mo)
	}

	return p, nil
}

// newAppraiser builds an Appraiser from cfg using a fresh transport.
func newAppraiser(ctx context.Context, cfg *config.Config) (appraiser.Appraiser, error) {
	providers, err := newProviders(ctx, cfg, http.DefaultTransport.(*http.Transport).Clone()) //nolint: forcetypeassert
	if err != nil {
		return nil, err
	}

	a, err := appraiser.New(providers, appraiser.NewOptions(cfg), nil)
	if err != nil {
		return nil, fmt.Errorf("could not create appraiser: %w", err)
	}

	return a, nil
}
