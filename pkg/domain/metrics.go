package domain

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// TrendPoint is one time bucket of search interest. Values holds one interest
// value (0..100) per keyword, in the order of TrendSeries.Keywords.
type TrendPoint struct {
	Time    time.Time `json:"time"`
	Values  []float64 `json:"values"`
	Partial bool      `json:"partial,omitempty"`
}

// TrendSeries is the search-interest history of a set of keywords.
type TrendSeries struct {
	Keywords []string     `json:"keywords"`
	Points   []TrendPoint `json:"points"`
}

// Mean returns the average interest over every keyword and time point, and
// false when the series has no values.
func (s TrendSeries) Mean() (float64, bool) {
	var (
		sum   float64
		count int
	)
	for _, p := range s.Points {
		for _, v := range p.Values {
			sum += v
			count++
		}
	}
	if count == 0 {
		return 0, false
	}

	return sum / float64(count), true
}

// DomainAge is the registration age of a domain.
type DomainAge struct {
	CreatedAt time.Time `json:"createdAt"`
	// Years is the age in years (days/365), rounded to two decimals.
	Years float64 `json:"years"`
}

// NewDomainAge computes the age of a domain created at createdAt as seen at
// now. A creation date in the future yields a zero age.
func NewDomainAge(createdAt, now time.Time) DomainAge {
	days := math.Floor(now.Sub(createdAt).Hours() / 24)
	if days < 0 {
		days = 0
	}

	return DomainAge{
		CreatedAt: createdAt,
		Years:     math.Round(days/365*100) / 100,
	}
}

// Backlinks are the link metrics reported by a backlink index.
type Backlinks struct {
	TotalExternalLinks int64   `json:"totalExternalLinks"`
	FollowedLinks      int64   `json:"followedLinks"`
	DomainAuthority    float64 `json:"domainAuthority"`
	LinkingDomains     int64   `json:"linkingDomains"`
}

// SiteSpeed holds PageSpeed performance scores on a 0..100 scale. Mobile is
// nil when the mobile run produced no score.
type SiteSpeed struct {
	Desktop float64  `json:"desktop"`
	Mobile  *float64 `json:"mobile,omitempty"`
}

// MobileFriendly is the verdict of a mobile-friendliness test.
type MobileFriendly struct {
	Friendly bool `json:"friendly"`
	// Verdict is the raw classification, e.g. MOBILE_FRIENDLY.
	Verdict string `json:"verdict"`
}

// Content summarizes the text of the domain's landing page.
type Content struct {
	WordCount int `json:"wordCount"`
}

// SocialMentions is the number of social media mentions of the domain.
type SocialMentions struct {
	Total int64 `json:"total"`
}

// Traffic is the estimated number of visits to the domain.
type Traffic struct {
	Visits int64 `json:"visits"`
}

// ComparableSales are recent marketplace sale prices of similar domains.
// Entries without a price are kept as invalid NullDecimals.
type ComparableSales struct {
	Prices []decimal.NullDecimal `json:"prices"`
}

// Valid returns only the prices that are present.
func (c ComparableSales) Valid() []decimal.Decimal {
	out := make([]decimal.Decimal, 0, len(c.Prices))
	for _, p := range c.Prices {
		if p.Valid {
			out = append(out, p.Decimal)
		}
	}

	return out
}

// Metrics is the full set of raw metrics gathered for one appraisal.
type Metrics struct {
	Trend          Metric[TrendSeries]     `json:"trend"`
	DomainAge      Metric[DomainAge]       `json:"domainAge"`
	Backlinks      Metric[Backlinks]       `json:"backlinks"`
	SiteSpeed      Metric[SiteSpeed]       `json:"siteSpeed"`
	MobileFriendly Metric[MobileFriendly]  `json:"mobileFriendly"`
	Content        Metric[Content]         `json:"content"`
	SocialMentions Metric[SocialMentions]  `json:"socialMentions"`
	Traffic        Metric[Traffic]         `json:"traffic"`
	Sales          Metric[ComparableSales] `json:"sales"`
}
