// Package trends provides a provider.TrendFetcher backed by the Google Trends
// web API. A lookup takes two calls: explore returns the TIMESERIES widget
// token, and widgetdata/multiline returns the interest-over-time rows.
package trends

import (
	"appraiser/internal/config"
	"appraiser/pkg/domain"
	"appraiser/pkg/httpclient"
	"appraiser/pkg/logger"
	"appraiser/pkg/provider"
	"appraiser/pkg/serrors"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http/cookiejar"
	"strconv"
	"time"

	"github.com/go-faster/jx"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/net/publicsuffix"
)

// Name labels this provider in logs and metrics.
const Name = "trends"

const timeseriesWidgetID = "TIMESERIES"

// Options configure the trends client.
type Options struct {
	BaseURL string
	// Language is the hl parameter, e.g. en-US.
	Language string
	// TZOffset is the tz parameter in minutes.
	TZOffset int
	// Timeframe is the explore time window, e.g. "today 5-y".
	Timeframe string
	// Geo restricts interest to a region; empty means worldwide.
	Geo string
}

// NewOptions constructs Options from the application config.
func NewOptions(cfg *config.Config) Options {
	t := cfg.Providers.Trends

	return Options{
		BaseURL:   t.BaseURL,
		Language:  t.Language,
		TZOffset:  t.TZOffset,
		Timeframe: t.Timeframe,
		Geo:       t.Geo,
	}
}

// Client queries Google Trends. It keeps a cookie jar because the API refuses
// requests without the consent cookies set by the explore page.
type Client struct {
	http *resty.Client
	opts Options
}

// Interest returns the interest-over-time series of keywords. An empty keyword
// list or a series without rows yields domain.ErrAbsent.
func (c *Client) Interest(ctx context.Context, keywords []string) (domain.TrendSeries, error) {
	if len(keywords) == 0 {
		return domain.TrendSeries{}, fmt.Errorf("no keywords: %w", domain.ErrAbsent)
	}

	c.warmUp(ctx)

	token, widgetReq, err := c.explore(ctx, keywords)
	if err != nil {
		return domain.TrendSeries{}, fmt.Errorf("could not explore keywords: %w", err)
	}

	points, err := c.multiline(ctx, token, widgetReq)
	if err != nil {
		return domain.TrendSeries{}, fmt.Errorf("could not get interest over time: %w", err)
	}
	if len(points) == 0 {
		return domain.TrendSeries{}, fmt.Errorf("no interest rows for %v: %w", keywords, domain.ErrAbsent)
	}

	return domain.TrendSeries{Keywords: keywords, Points: points}, nil
}

// warmUp loads the explore page so the cookie jar holds the NID cookie. Errors
// are only logged: the following calls report the actual failure.
func (c *Client) warmUp(ctx context.Context) {
	geo := c.opts.Geo
	if geo == "" {
		geo = "US"
	}
	if _, err := c.http.R().SetContext(ctx).SetQueryParam("geo", geo).Get("/trends/explore"); err != nil {
		logger.Debug(ctx, "could not load trends cookies", zap.Error(err))
	}
}

func (c *Client) commonParams() map[string]string {
	return map[string]string{
		"hl": c.opts.Language,
		"tz": strconv.Itoa(c.opts.TZOffset),
	}
}

// exploreRequest encodes the explore "req" parameter.
func (c *Client) exploreRequest(keywords []string) string {
	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("comparisonItem")
	e.ArrStart()
	for _, kw := range keywords {
		e.ObjStart()
		e.FieldStart("keyword")
		e.Str(kw)
		e.FieldStart("geo")
		e.Str(c.opts.Geo)
		e.FieldStart("time")
		e.Str(c.opts.Timeframe)
		e.ObjEnd()
	}
	e.ArrEnd()
	e.FieldStart("category")
	e.Int(0)
	e.FieldStart("property")
	e.Str("")
	e.ObjEnd()

	return e.String()
}

func (c *Client) explore(ctx context.Context, keywords []string) (string, json.RawMessage, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(c.commonParams()).
		SetQueryParam("req", c.exploreRequest(keywords)).
		Get("/trends/api/explore")
	if err != nil {
		return "", nil, httpclient.RequestError(err)
	}
	if err := httpclient.CheckResponse(res); err != nil {
		return "", nil, err
	}

	var body struct {
		Widgets []struct {
			ID      string          `json:"id"`
			Token   string          `json:"token"`
			Request json.RawMessage `json:"request"`
		} `json:"widgets"`
	}
	if err := decodeGuarded(res.Body(), &body); err != nil {
		return "", nil, err
	}
	for _, w := range body.Widgets {
		if w.ID == timeseriesWidgetID {
			return w.Token, w.Request, nil
		}
	}

	return "", nil, serrors.With(serrors.ErrMalformed, "explore response has no %s widget", timeseriesWidgetID)
}

func (c *Client) multiline(ctx context.Context, token string, widgetReq json.RawMessage) ([]domain.TrendPoint, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(c.commonParams()).
		SetQueryParam("req", string(widgetReq)).
		SetQueryParam("token", token).
		Get("/trends/api/widgetdata/multiline")
	if err != nil {
		return nil, httpclient.RequestError(err)
	}
	if err := httpclient.CheckResponse(res); err != nil {
		return nil, err
	}

	var body struct {
		Default struct {
			TimelineData []struct {
				Time      string    `json:"time"`
				Value     []float64 `json:"value"`
				IsPartial bool      `json:"isPartial"`
			} `json:"timelineData"`
		} `json:"default"`
	}
	if err := decodeGuarded(res.Body(), &body); err != nil {
		return nil, err
	}

	points := make([]domain.TrendPoint, 0, len(body.Default.TimelineData))
	for _, row := range body.Default.TimelineData {
		sec, err := strconv.ParseInt(row.Time, 10, 64)
		if err != nil {
			return nil, serrors.Wrap(serrors.ErrMalformed, err, "invalid timeline time %q", row.Time)
		}
		points = append(points, domain.TrendPoint{
			Time:    time.Unix(sec, 0).UTC(),
			Values:  row.Value,
			Partial: row.IsPartial,
		})
	}

	return points, nil
}

// decodeGuarded strips the anti-JSON-hijacking prefix (")]}'" optionally
// followed by a comma) the Trends API puts in front of every payload.
func decodeGuarded(b []byte, v any) error {
	if i := bytes.IndexByte(b, '\n'); i >= 0 && bytes.HasPrefix(b, []byte(")]}'")) {
		b = b[i+1:]
	}
	if err := json.Unmarshal(b, v); err != nil {
		return serrors.Wrap(serrors.ErrMalformed, err, "could not decode trends response")
	}

	return nil
}

var _ provider.TrendFetcher = (*Client)(nil)

// New constructs a Client sending requests through client.
func New(client *resty.Client, opts Options) (*Client, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("could not create cookie jar: %w", err)
	}

	client.SetBaseURL(opts.BaseURL)
	client.SetCookieJar(jar)

	return &Client{http: client, opts: opts}, nil
}
