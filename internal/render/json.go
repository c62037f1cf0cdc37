package render

import (
	"appraiser/pkg/domain"
	"io"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/shopspring/decimal"
)

func writeJSON(w io.Writer, encode func(e *jx.Encoder)) error {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	e.SetIdent(2)
	encode(e)
	e.RawStr("\n")

	if _, err := w.Write(e.Bytes()); err != nil {
		return errors.Wrap(err, "write json")
	}

	return nil
}

// EncodeAppraisal writes a as a JSON object. Money values are encoded as
// strings with two decimals to keep them exact.
func EncodeAppraisal(e *jx.Encoder, a *domain.Appraisal) {
	e.ObjStart()
	e.FieldStart("id")
	e.Str(a.ID.String())
	e.FieldStart("domain")
	e.Str(a.Domain)
	e.FieldStart("keywords")
	encodeStrings(e, a.Keywords)

	e.FieldStart("subScores")
	e.ObjStart()
	for _, s := range a.SubScores.Named() {
		e.FieldStart(s.Key)
		e.Float64(s.Value)
	}
	e.ObjEnd()
	e.FieldStart("totalScore")
	e.Float64(a.TotalScore)

	e.FieldStart("comparables")
	e.ObjStart()
	e.FieldStart("count")
	e.Int(a.Comparables.Count)
	e.FieldStart("mean")
	encodeMoney(e, a.Comparables.Mean)
	e.ObjEnd()
	e.FieldStart("estimatedValue")
	encodeMoney(e, a.EstimatedValue)

	e.FieldStart("metrics")
	encodeMetrics(e, a.Metrics)

	e.FieldStart("appraisedAt")
	encodeTime(e, a.AppraisedAt)
	e.ObjEnd()
}

// EncodeTrend writes s as a JSON object.
func EncodeTrend(e *jx.Encoder, s domain.TrendSeries) {
	e.ObjStart()
	e.FieldStart("keywords")
	encodeStrings(e, s.Keywords)
	e.FieldStart("points")
	e.ArrStart()
	for _, p := range s.Points {
		e.ObjStart()
		e.FieldStart("time")
		encodeTime(e, p.Time)
		e.FieldStart("values")
		e.ArrStart()
		for _, v := range p.Values {
			e.Float64(v)
		}
		e.ArrEnd()
		if p.Partial {
			e.FieldStart("partial")
			e.Bool(true)
		}
		e.ObjEnd()
	}
	e.ArrEnd()
	if mean, ok := s.Mean(); ok {
		e.FieldStart("mean")
		e.Float64(mean)
	}
	e.ObjEnd()
}

func encodeMetrics(e *jx.Encoder, m domain.Metrics) {
	e.ObjStart()
	encodeMetric(e, "trend", m.Trend, func(e *jx.Encoder, v domain.TrendSeries) {
		EncodeTrend(e, v)
	})
	encodeMetric(e, "domainAge", m.DomainAge, func(e *jx.Encoder, v domain.DomainAge) {
		e.ObjStart()
		e.FieldStart("createdAt")
		encodeTime(e, v.CreatedAt)
		e.FieldStart("years")
		e.Float64(v.Years)
		e.ObjEnd()
	})
	encodeMetric(e, "backlinks", m.Backlinks, func(e *jx.Encoder, v domain.Backlinks) {
		e.ObjStart()
		e.FieldStart("totalExternalLinks")
		e.Int64(v.TotalExternalLinks)
		e.FieldStart("followedLinks")
		e.Int64(v.FollowedLinks)
		e.FieldStart("domainAuthority")
		e.Float64(v.DomainAuthority)
		e.FieldStart("linkingDomains")
		e.Int64(v.LinkingDomains)
		e.ObjEnd()
	})
	encodeMetric(e, "siteSpeed", m.SiteSpeed, func(e *jx.Encoder, v domain.SiteSpeed) {
		e.ObjStart()
		e.FieldStart("desktop")
		e.Float64(v.Desktop)
		if v.Mobile != nil {
			e.FieldStart("mobile")
			e.Float64(*v.Mobile)
		}
		e.ObjEnd()
	})
	encodeMetric(e, "mobileFriendly", m.MobileFriendly, func(e *jx.Encoder, v domain.MobileFriendly) {
		e.ObjStart()
		e.FieldStart("friendly")
		e.Bool(v.Friendly)
		e.FieldStart("verdict")
		e.Str(v.Verdict)
		e.ObjEnd()
	})
	encodeMetric(e, "content", m.Content, func(e *jx.Encoder, v domain.Content) {
		e.ObjStart()
		e.FieldStart("wordCount")
		e.Int(v.WordCount)
		e.ObjEnd()
	})
	encodeMetric(e, "socialMentions", m.SocialMentions, func(e *jx.Encoder, v domain.SocialMentions) {
		e.ObjStart()
		e.FieldStart("total")
		e.Int64(v.Total)
		e.ObjEnd()
	})
	encodeMetric(e, "traffic", m.Traffic, func(e *jx.Encoder, v domain.Traffic) {
		e.ObjStart()
		e.FieldStart("visits")
		e.Int64(v.Visits)
		e.ObjEnd()
	})
	encodeMetric(e, "sales", m.Sales, func(e *jx.Encoder, v domain.ComparableSales) {
		e.ObjStart()
		e.FieldStart("prices")
		e.ArrStart()
		for _, p := range v.Prices {
			if !p.Valid {
				e.Null()

				continue
			}
			encodeMoney(e, p.Decimal)
		}
		e.ArrEnd()
		e.ObjEnd()
	})
	e.ObjEnd()
}

// encodeMetric writes a {"status", "value", "error"} object under name. The
// value is only present for OK metrics.
func encodeMetric[T any](e *jx.Encoder, name string, m domain.Metric[T], value func(*jx.Encoder, T)) {
	e.FieldStart(name)
	e.ObjStart()
	e.FieldStart("status")
	e.Str(string(m.Status))
	if v, ok := m.Get(); ok {
		e.FieldStart("value")
		value(e, v)
	}
	if m.Err != "" {
		e.FieldStart("error")
		e.Str(m.Err)
	}
	e.ObjEnd()
}

func encodeStrings(e *jx.Encoder, ss []string) {
	e.ArrStart()
	for _, s := range ss {
		e.Str(s)
	}
	e.ArrEnd()
}

func encodeMoney(e *jx.Encoder, d decimal.Decimal) {
	e.Str(d.StringFixed(2))
}

func encodeTime(e *jx.Encoder, t time.Time) {
	e.Str(t.UTC().Format(time.RFC3339))
}
