// Package appraiser coordinates an appraisal: it fetches every raw metric of a
// domain from the configured providers one after another, turns each result
// into a domain.Metric and hands them to the scoring pipeline.
package appraiser

import (
	"appraiser/internal/config"
	"appraiser/internal/scoring"
	"appraiser/pkg/domain"
	"appraiser/pkg/logger"
	"appraiser/pkg/metrics"
	"appraiser/pkg/provider"
	"appraiser/pkg/serrors"
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const instrumentationName = "appraiser/internal/appraiser"

// Metric names used in logs, spans and the fetch counter.
const (
	MetricTrend          = "trend"
	MetricDomainAge      = "domain_age"
	MetricBacklinks      = "backlinks"
	MetricSiteSpeed      = "site_speed"
	MetricMobileFriendly = "mobile_friendly"
	MetricContent        = "content"
	MetricSocialMentions = "social_mentions"
	MetricTraffic        = "traffic"
	MetricSales          = "comparable_sales"
)

// Options configure how metrics are combined into an appraisal.
type Options struct {
	// FailurePolicy is config.FailurePolicyPartial or config.FailurePolicyStrict.
	FailurePolicy string
	// References are the normalization maxima of the scoring pipeline.
	References scoring.References
}

// NewOptions constructs Options from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		FailurePolicy: cfg.Appraiser.FailurePolicy,
		References:    scoring.NewReferences(cfg),
	}
}

// Providers are the metric sources of an appraisal. A nil provider is
// disabled and its metric is reported as absent.
type Providers struct {
	Trend          provider.TrendFetcher
	Age            provider.AgeFetcher
	Backlinks      provider.BacklinksFetcher
	SiteSpeed      provider.SiteSpeedFetcher
	MobileFriendly provider.MobileFriendlyFetcher
	Content        provider.ContentFetcher
	Social         provider.SocialFetcher
	Traffic        provider.TrafficFetcher
	Sales          provider.SalesFetcher
}

// appraiser is the concrete implementation of the Appraiser interface.
type appraiser struct {
	options   Options
	providers Providers
	now       func() time.Time

	tracer     trace.Tracer
	appraisals metric.Int64Counter
	scores     metric.Float64Histogram
}

// Appraise normalizes name, fetches all metrics sequentially and scores them.
// Under the partial failure policy failed metrics score 0; under the strict
// policy the first failure aborts the appraisal. A cancelled or expired
// context aborts under either policy, even when it ends during the last fetch.
func (a *appraiser) Appraise(ctx context.Context, raw string) (*domain.Appraisal, error) {
	name, err := NormalizeDomain(raw)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid domain")
	}
	keywords := Keywords(name)
	id := domain.AppraisalID(uuid.New())

	ctx = logger.WithFields(ctx, zap.Stringer("appraisal_id", id), zap.String("domain", name))
	ctx, span := a.tracer.Start(ctx, "appraise", trace.WithAttributes(
		attribute.String("domain", name),
		attribute.String("appraisal_id", id.String())))
	defer span.End()

	logger.Info(ctx, "appraising domain", zap.Strings("keywords", keywords))

	m, err := a.fetchAll(ctx, name, keywords)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "appraisal aborted")

		return nil, err
	}

	subScores := scoring.Score(m, a.options.References)
	total := subScores.Total()
	if math.IsNaN(total) || math.IsInf(total, 0) {
		err := serrors.With(serrors.ErrMalformed, "total score is not finite")
		span.RecordError(err)
		span.SetStatus(codes.Error, "appraisal aborted")

		return nil, err
	}

	var prices []decimal.NullDecimal
	if sales, ok := m.Sales.Get(); ok {
		prices = sales.Prices
	}

	res := &domain.Appraisal{
		ID:             id,
		Domain:         name,
		Keywords:       keywords,
		SubScores:      subScores,
		TotalScore:     total,
		Comparables:    scoring.Comparables(prices),
		EstimatedValue: scoring.EstimateValue(prices, total),
		Metrics:        m,
		AppraisedAt:    a.now().UTC(),
	}

	a.appraisals.Add(ctx, 1)
	a.scores.Record(ctx, total)
	span.SetAttributes(attribute.Float64("total_score", total))
	logger.Info(ctx, "domain appraised",
		zap.Float64("total_score", total),
		zap.String("estimated_value", res.EstimatedValue.StringFixed(2)),
		zap.Int("comparables", res.Comparables.Count))

	return res, nil
}

func (a *appraiser) fetchAll(ctx context.Context, name string, keywords []string) (domain.Metrics, error) {
	var (
		m   domain.Metrics
		err error
		p   = a.providers
	)

	if m.Trend, err = fetch(ctx, a, MetricTrend, p.Trend != nil,
		func(ctx context.Context) (domain.TrendSeries, error) { return p.Trend.Interest(ctx, keywords) }); err != nil {
		return m, err
	}
	if m.DomainAge, err = fetch(ctx, a, MetricDomainAge, p.Age != nil,
		func(ctx context.Context) (domain.DomainAge, error) { return p.Age.Age(ctx, name) }); err != nil {
		return m, err
	}
	if m.Backlinks, err = fetch(ctx, a, MetricBacklinks, p.Backlinks != nil,
		func(ctx context.Context) (domain.Backlinks, error) { return p.Backlinks.Backlinks(ctx, name) }); err != nil {
		return m, err
	}
	if m.SiteSpeed, err = fetch(ctx, a, MetricSiteSpeed, p.SiteSpeed != nil,
		func(ctx context.Context) (domain.SiteSpeed, error) { return p.SiteSpeed.SiteSpeed(ctx, name) }); err != nil {
		return m, err
	}
	if m.MobileFriendly, err = fetch(ctx, a, MetricMobileFriendly, p.MobileFriendly != nil,
		func(ctx context.Context) (domain.MobileFriendly, error) { return p.MobileFriendly.MobileFriendly(ctx, name) }); err != nil {
		return m, err
	}
	if m.Content, err = fetch(ctx, a, MetricContent, p.Content != nil,
		func(ctx context.Context) (domain.Content, error) { return p.Content.Content(ctx, name) }); err != nil {
		return m, err
	}
	if m.SocialMentions, err = fetch(ctx, a, MetricSocialMentions, p.Social != nil,
		func(ctx context.Context) (domain.SocialMentions, error) { return p.Social.SocialMentions(ctx, name) }); err != nil {
		return m, err
	}
	if m.Traffic, err = fetch(ctx, a, MetricTraffic, p.Traffic != nil,
		func(ctx context.Context) (domain.Traffic, error) { return p.Traffic.Traffic(ctx, name) }); err != nil {
		return m, err
	}
	if m.Sales, err = fetch(ctx, a, MetricSales, p.Sales != nil,
		func(ctx context.Context) (domain.ComparableSales, error) { return p.Sales.ComparableSales(ctx, name) }); err != nil {
		return m, err
	}

	return m, nil
}

// fetch runs one provider call and converts its outcome into a Metric. The
// returned error is non-nil only when the appraisal must stop.
func fetch[T any](ctx context.Context,
	a *appraiser,
	metricName string,
	enabled bool,
	fn func(context.Context) (T, error)) (domain.Metric[T], error) {
	if err := ctx.Err(); err != nil {
		return domain.Metric[T]{}, serrors.Wrap(serrors.ErrTimeout, err, "appraisal interrupted before %s", metricName)
	}
	if !enabled {
		metrics.MetricFetches.WithLabelValues(metricName, "DISABLED").Inc()
		logger.Debug(ctx, "provider disabled", zap.String("metric", metricName))

		return domain.Absent[T](), nil
	}

	ctx, span := a.tracer.Start(ctx, "fetch "+metricName, trace.WithAttributes(attribute.String("metric", metricName)))
	defer span.End()

	start := time.Now()
	v, err := fn(ctx)
	res := domain.FromResult(v, err)

	metrics.MetricFetches.WithLabelValues(metricName, string(res.Status)).Inc()
	span.SetAttributes(attribute.String("status", string(res.Status)))
	fields := []zap.Field{
		zap.String("metric", metricName),
		zap.String("status", string(res.Status)),
		zap.Duration("took", time.Since(start)),
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		span.RecordError(ctxErr)
		span.SetStatus(codes.Error, "appraisal interrupted")
		logger.Warn(ctx, "appraisal interrupted", append(fields, zap.Error(ctxErr))...)

		return res, serrors.Wrap(serrors.ErrTimeout, ctxErr, "appraisal interrupted during %s", metricName)
	}

	switch res.Status {
	case domain.MetricStatusFailed:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Warn(ctx, "metric fetch failed", append(fields, zap.Error(err))...)

		if a.options.FailurePolicy == config.FailurePolicyStrict || errors.Is(err, context.Canceled) {
			return res, fmt.Errorf("could not fetch %s: %w", metricName, err)
		}
	case domain.MetricStatusAbsent:
		logger.Debug(ctx, "metric absent", append(fields, zap.Error(err))...)
	default:
		logger.Debug(ctx, "metric fetched", fields...)
	}

	return res, nil
}

// Trend returns the search-interest series of name. A missing series is
// reported as serrors.ErrNotFound.
func (a *appraiser) Trend(ctx context.Context, raw string) (domain.TrendSeries, error) {
	name, err := NormalizeDomain(raw)
	if err != nil {
		return domain.TrendSeries{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid domain")
	}
	if a.providers.Trend == nil {
		return domain.TrendSeries{}, serrors.With(serrors.ErrUnavailable, "trend provider is disabled")
	}

	ctx = logger.WithFields(ctx, zap.String("domain", name))
	ctx, span := a.tracer.Start(ctx, "trend", trace.WithAttributes(attribute.String("domain", name)))
	defer span.End()

	series, err := a.providers.Trend.Interest(ctx, Keywords(name))
	if errors.Is(err, domain.ErrAbsent) {
		return domain.TrendSeries{}, serrors.Wrap(serrors.ErrNotFound, err, "no trend data")
	}
	if err != nil {
		span.RecordError(err)

		return domain.TrendSeries{}, fmt.Errorf("could not get trend: %w", err)
	}

	return series, nil
}

// New creates an Appraiser using providers. now defaults to time.Now when nil.
// Telemetry goes through the global OpenTelemetry providers.
func New(providers Providers, options Options, now func() time.Time) (Appraiser, error) {
	if now == nil {
		now = time.Now
	}

	meter := otel.Meter(instrumentationName)
	appraisals, err := meter.Int64Counter("appraiser.appraisals",
		metric.WithDescription("Number of completed appraisals."))
	if err != nil {
		return nil, fmt.Errorf("could not create appraisals counter: %w", err)
	}
	scores, err := meter.Float64Histogram("appraiser.total_score",
		metric.WithDescription("Total score of completed appraisals."))
	if err != nil {
		return nil, fmt.Errorf("could not create total score histogram: %w", err)
	}

	return &appraiser{
		options:    options,
		providers:  providers,
		now:        now,
		tracer:     otel.Tracer(instrumentationName),
		appraisals: appraisals,
		scores:     scores,
	}, nil
}
