// Package render writes appraisals and trend series as terminal tables, JSON
// or YAML.
package render

import (
	"appraiser/pkg/domain"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// Format selects an output encoding.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat validates an output format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", errors.Wrapf(ErrUnknownFormat, "%q (want table, json or yaml)", s)
	}
}

// Appraisal writes a in the given format.
func Appraisal(w io.Writer, f Format, a *domain.Appraisal) error {
	switch f {
	case FormatTable:
		return appraisalTable(w, a)
	case FormatJSON:
		return writeJSON(w, func(e *jx.Encoder) { EncodeAppraisal(e, a) })
	case FormatYAML:
		return writeYAML(w, newAppraisalView(a))
	default:
		return errors.Wrapf(ErrUnknownFormat, "%q", f)
	}
}

// Trend writes s in the given format.
func Trend(w io.Writer, f Format, s domain.TrendSeries) error {
	switch f {
	case FormatTable:
		return trendTable(w, s)
	case FormatJSON:
		return writeJSON(w, func(e *jx.Encoder) { EncodeTrend(e, s) })
	case FormatYAML:
		return writeYAML(w, newTrendView(s))
	default:
		return errors.Wrapf(ErrUnknownFormat, "%q", f)
	}
}

// metricRow is the human readable form of one raw metric.
type metricRow struct {
	Name   string
	Status domain.MetricStatus
	Value  string
	Error  string
}

func metricRows(m domain.Metrics) []metricRow {
	return []metricRow{
		row("trend", m.Trend, func(v domain.TrendSeries) string {
			mean, ok := v.Mean()
			if !ok {
				return "no data"
			}

			return fmt.Sprintf("mean %.2f over %d points", mean, len(v.Points))
		}),
		row("domain_age", m.DomainAge, func(v domain.DomainAge) string {
			return fmt.Sprintf("%.2f years (since %s)", v.Years, v.CreatedAt.Format(time.DateOnly))
		}),
		row("backlinks", m.Backlinks, func(v domain.Backlinks) string {
			return fmt.Sprintf("%d links, %d followed, %d domains, DA %.1f",
				v.TotalExternalLinks, v.FollowedLinks, v.LinkingDomains, v.DomainAuthority)
		}),
		row("site_speed", m.SiteSpeed, func(v domain.SiteSpeed) string {
			if v.Mobile == nil {
				return fmt.Sprintf("desktop %.1f", v.Desktop)
			}

			return fmt.Sprintf("desktop %.1f, mobile %.1f", v.Desktop, *v.Mobile)
		}),
		row("mobile_friendly", m.MobileFriendly, func(v domain.MobileFriendly) string {
			return fmt.Sprintf("%t (%s)", v.Friendly, v.Verdict)
		}),
		row("content", m.Content, func(v domain.Content) string {
			return strconv.Itoa(v.WordCount) + " words"
		}),
		row("social_mentions", m.SocialMentions, func(v domain.SocialMentions) string {
			return strconv.FormatInt(v.Total, 10)
		}),
		row("traffic", m.Traffic, func(v domain.Traffic) string {
			return strconv.FormatInt(v.Visits, 10) + " visits"
		}),
		row("comparable_sales", m.Sales, func(v domain.ComparableSales) string {
			return fmt.Sprintf("%d sales, %d priced", len(v.Prices), len(v.Valid()))
		}),
	}
}

func row[T any](name string, m domain.Metric[T], describe func(T) string) metricRow {
	r := metricRow{Name: name, Status: m.Status, Error: m.Err}
	if v, ok := m.Get(); ok {
		r.Value = describe(v)
	}

	return r
}
