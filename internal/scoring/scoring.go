// Package scoring turns raw domain metrics into normalized sub-scores, a total
// appraisal score and a value estimate derived from comparable sales.
package scoring

import (
	"appraiser/internal/config"
	"appraiser/pkg/domain"
	"math"

	"github.com/shopspring/decimal"
)

// DefaultScale is the upper bound of a normalized sub-score when the raw value
// equals its reference maximum.
const DefaultScale = 20.0

// References are the per-metric maximum values raw metrics are normalized
// against. A zero maximum turns the matching sub-score off.
type References struct {
	// Scale is the output scale of every normalized sub-score.
	Scale float64

	Trend              float64
	DomainAgeYears     float64
	TotalExternalLinks float64
	FollowedLinks      float64
	DomainAuthority    float64
	LinkingDomains     float64
	ContentWordCount   float64
	SocialMentions     float64
	Traffic            float64
	// MobileFriendlyBonus is added as-is when the domain is mobile friendly.
	MobileFriendlyBonus float64
}

// DefaultReferences returns the reference table used when nothing is configured.
func DefaultReferences() References {
	return References{
		Scale:               DefaultScale,
		Trend:               100,
		DomainAgeYears:      20,
		TotalExternalLinks:  1000,
		FollowedLinks:       1000,
		DomainAuthority:     100,
		LinkingDomains:      100,
		ContentWordCount:    1000,
		SocialMentions:      1000,
		Traffic:             1000,
		MobileFriendlyBonus: 10,
	}
}

// NewReferences builds References from the application config. Scores named
// in the disabled list get a zero maximum.
func NewReferences(cfg *config.Config) References {
	m := cfg.Appraiser.MaxValues

	ref := References{
		Scale:               DefaultScale,
		Trend:               m.Trend,
		DomainAgeYears:      m.DomainAgeYears,
		TotalExternalLinks:  m.TotalExternalLinks,
		FollowedLinks:       m.FollowedLinks,
		DomainAuthority:     m.DomainAuthority,
		LinkingDomains:      m.LinkingDomains,
		ContentWordCount:    m.ContentWordCount,
		SocialMentions:      m.SocialMentions,
		Traffic:             m.Traffic,
		MobileFriendlyBonus: m.MobileFriendlyBonus,
	}
	for _, name := range cfg.Appraiser.DisabledScores {
		ref.disable(name)
	}

	return ref
}

func (r *References) disable(name string) {
	switch name {
	case config.ScoreTrend:
		r.Trend = 0
	case config.ScoreDomainAge:
		r.DomainAgeYears = 0
	case config.ScoreBacklinks:
		r.TotalExternalLinks = 0
	case config.ScoreFollowedLinks:
		r.FollowedLinks = 0
	case config.ScoreDomainAuthority:
		r.DomainAuthority = 0
	case config.ScoreLinkingDomains:
		r.LinkingDomains = 0
	case config.ScoreMobileFriendly:
		r.MobileFriendlyBonus = 0
	case config.ScoreContent:
		r.ContentWordCount = 0
	case config.ScoreSocialMentions:
		r.SocialMentions = 0
	case config.ScoreTraffic:
		r.Traffic = 0
	}
}

// Normalize maps value onto [0, scale] relative to maxValue. Values above
// maxValue are not clamped. A zero maxValue or a non-finite result yields 0.
func Normalize(value, maxValue, scale float64) float64 {
	if maxValue == 0 {
		return 0
	}

	return finite((value / maxValue) * scale)
}

// finite returns v, or 0 when v is NaN or infinite.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}

	return v
}

// normalizeMetric is Normalize for an optional value: absent values yield 0.
func normalizeMetric(value float64, ok bool, maxValue, scale float64) float64 {
	if !ok {
		return 0
	}

	return Normalize(value, maxValue, scale)
}

// SiteSpeed averages the desktop and mobile scores. A missing or zero mobile
// score falls back to the desktop score alone.
func SiteSpeed(s domain.SiteSpeed) float64 {
	if s.Mobile != nil && *s.Mobile != 0 {
		return finite((s.Desktop + *s.Mobile) / 2)
	}

	return finite(s.Desktop)
}

// Score computes every sub-score from the fetched metrics. Metrics that are
// absent or failed contribute 0; Score never fails.
func Score(m domain.Metrics, ref References) domain.SubScores {
	var s domain.SubScores

	if series, ok := m.Trend.Get(); ok {
		mean, ok := series.Mean()
		s.Trend = normalizeMetric(mean, ok, ref.Trend, ref.Scale)
	}

	if age, ok := m.DomainAge.Get(); ok {
		s.DomainAge = Normalize(age.Years, ref.DomainAgeYears, ref.Scale)
	}

	if bl, ok := m.Backlinks.Get(); ok {
		s.Backlinks = Normalize(float64(bl.TotalExternalLinks), ref.TotalExternalLinks, ref.Scale)
		s.FollowedLinks = Normalize(float64(bl.FollowedLinks), ref.FollowedLinks, ref.Scale)
		s.DomainAuthority = Normalize(bl.DomainAuthority, ref.DomainAuthority, ref.Scale)
		s.LinkingDomains = Normalize(float64(bl.LinkingDomains), ref.LinkingDomains, ref.Scale)
	}

	if speed, ok := m.SiteSpeed.Get(); ok {
		s.SiteSpeed = SiteSpeed(speed)
	}

	if mf, ok := m.MobileFriendly.Get(); ok && mf.Friendly {
		s.MobileFriendly = ref.MobileFriendlyBonus
	}

	if c, ok := m.Content.Get(); ok {
		s.Content = Normalize(float64(c.WordCount), ref.ContentWordCount, ref.Scale)
	}

	if sm, ok := m.SocialMentions.Get(); ok {
		s.SocialMentions = Normalize(float64(sm.Total), ref.SocialMentions, ref.Scale)
	}

	if tr, ok := m.Traffic.Get(); ok {
		s.Traffic = Normalize(float64(tr.Visits), ref.Traffic, ref.Scale)
	}

	return s
}

var hundred = decimal.NewFromInt(100)

// Comparables returns the number of priced sales and their mean price.
func Comparables(prices []decimal.NullDecimal) domain.Comparables {
	valid := domain.ComparableSales{Prices: prices}.Valid()
	if len(valid) == 0 {
		return domain.Comparables{Mean: decimal.Zero}
	}

	return domain.Comparables{
		Count: len(valid),
		Mean:  decimal.Avg(valid[0], valid[1:]...),
	}
}

// EstimateValue scales the mean comparable price by totalScore/100. Prices
// that are not set are ignored; with no priced sale or a non-finite total the
// estimate is 0.
func EstimateValue(prices []decimal.NullDecimal, totalScore float64) decimal.Decimal {
	c := Comparables(prices)
	if c.Count == 0 || finite(totalScore) != totalScore {
		return decimal.Zero
	}

	return c.Mean.Mul(decimal.NewFromFloat(totalScore)).Div(hundred)
}
