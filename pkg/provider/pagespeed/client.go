// Package pagespeed provides a provider.SiteSpeedFetcher backed by the
// PageSpeed Insights v5 API. Desktop and mobile strategies are run one after
// the other; the lighthouse performance score of each is reported on a 0..100
// scale.
package pagespeed

import (
	"appraiser/internal/config"
	"appraiser/pkg/domain"
	"appraiser/pkg/logger"
	"appraiser/pkg/provider"
	"appraiser/pkg/serrors"
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"go.uber.org/zap"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/pagespeedonline/v5"
)

// Name labels this provider in logs and metrics.
const Name = "pagespeed"

const (
	strategyDesktop = "DESKTOP"
	strategyMobile  = "MOBILE"

	categoryPerformance = "PERFORMANCE"
)

// Options configure the PageSpeed client.
type Options struct {
	// BaseURL is the API endpoint and must end with a slash.
	BaseURL string
	APIKey  string
}

// NewOptions constructs Options from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		BaseURL: cfg.Providers.PageSpeed.BaseURL,
		APIKey:  cfg.Providers.PageSpeed.APIKey,
	}
}

type Client struct {
	svc    *pagespeedonline.Service
	apiKey string
}

// SiteSpeed runs the desktop and mobile analyses of http://name. A desktop
// run without a performance score yields domain.ErrAbsent. A failed or empty
// mobile run leaves SiteSpeed.Mobile nil.
func (c *Client) SiteSpeed(ctx context.Context, name string) (domain.SiteSpeed, error) {
	desktop, err := c.performance(ctx, name, strategyDesktop)
	if err != nil {
		return domain.SiteSpeed{}, fmt.Errorf("could not run desktop analysis: %w", err)
	}
	if desktop == nil {
		return domain.SiteSpeed{}, fmt.Errorf("no desktop performance score for %s: %w", name, domain.ErrAbsent)
	}

	mobile, err := c.performance(ctx, name, strategyMobile)
	if err != nil {
		logger.Warn(ctx, "could not run mobile analysis", zap.String("domain", name), zap.Error(err))
		mobile = nil
	}

	return domain.SiteSpeed{Desktop: *desktop, Mobile: mobile}, nil
}

func (c *Client) performance(ctx context.Context, name, strategy string) (*float64, error) {
	call := c.svc.Pagespeedapi.Runpagespeed("http://" + name).
		Strategy(strategy).
		Category(categoryPerformance).
		Context(ctx)

	var opts []googleapi.CallOption
	if c.apiKey != "" {
		opts = append(opts, googleapi.QueryParameter("key", c.apiKey))
	}

	resp, err := call.Do(opts...)
	if err != nil {
		return nil, classify(err)
	}

	return PerformanceScore(resp), nil
}

// PerformanceScore extracts the lighthouse performance score of resp scaled
// to 0..100, or nil when the report carries none or a score outside 0..1.
func PerformanceScore(resp *pagespeedonline.PagespeedApiPagespeedResponseV5) *float64 {
	if resp == nil || resp.LighthouseResult == nil || resp.LighthouseResult.Categories == nil ||
		resp.LighthouseResult.Categories.Performance == nil {
		return nil
	}

	var score float64
	switch v := resp.LighthouseResult.Categories.Performance.Score.(type) {
	case float64:
		score = v
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil
		}
		score = f
	default:
		return nil
	}
	if math.IsNaN(score) || score < 0 || score > 1 {
		return nil
	}
	score *= 100

	return &score
}

func classify(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		if kind := serrors.FromStatus(gerr.Code); kind != nil {
			return serrors.Wrap(kind, err, "pagespeed request failed")
		}

		return fmt.Errorf("pagespeed request failed: %w", err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return serrors.Wrap(serrors.ErrTimeout, err, "pagespeed request timed out")
	}

	return fmt.Errorf("could not send request: %w", err)
}

var _ provider.SiteSpeedFetcher = (*Client)(nil)

// New constructs a Client sending requests through httpClient.
func New(ctx context.Context, httpClient *http.Client, opts Options) (*Client, error) {
	svc, err := pagespeedonline.NewService(ctx,
		option.WithHTTPClient(httpClient),
		option.WithEndpoint(opts.BaseURL))
	if err != nil {
		return nil, fmt.Errorf("could not create pagespeed service: %w", err)
	}

	return &Client{svc: svc, apiKey: opts.APIKey}, nil
}
