package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AppraisalID uniquely identifies one appraisal run.
type AppraisalID uuid.UUID

// String returns the canonical UUID form.
func (id AppraisalID) String() string { return uuid.UUID(id).String() }

// SubScores are the normalized contributions of each raw metric.
type SubScores struct {
	Trend           float64 `json:"trend"`
	DomainAge       float64 `json:"domainAge"`
	Backlinks       float64 `json:"backlinks"`
	FollowedLinks   float64 `json:"followedLinks"`
	DomainAuthority float64 `json:"domainAuthority"`
	LinkingDomains  float64 `json:"linkingDomains"`
	SiteSpeed       float64 `json:"siteSpeed"`
	MobileFriendly  float64 `json:"mobileFriendly"`
	Content         float64 `json:"content"`
	SocialMentions  float64 `json:"socialMentions"`
	Traffic         float64 `json:"traffic"`
}

// Total returns the sum of all sub-scores.
func (s SubScores) Total() float64 {
	return s.Trend + s.DomainAge + s.Backlinks + s.FollowedLinks + s.DomainAuthority +
		s.LinkingDomains + s.SiteSpeed + s.MobileFriendly + s.Content + s.SocialMentions + s.Traffic
}

// Named returns the sub-scores as ordered name/value pairs for rendering.
func (s SubScores) Named() []NamedScore {
	return []NamedScore{
		{Name: "trend", Key: "trend", Value: s.Trend},
		{Name: "domain_age", Key: "domainAge", Value: s.DomainAge},
		{Name: "backlinks", Key: "backlinks", Value: s.Backlinks},
		{Name: "followed_links", Key: "followedLinks", Value: s.FollowedLinks},
		{Name: "domain_authority", Key: "domainAuthority", Value: s.DomainAuthority},
		{Name: "linking_domains", Key: "linkingDomains", Value: s.LinkingDomains},
		{Name: "site_speed", Key: "siteSpeed", Value: s.SiteSpeed},
		{Name: "mobile_friendly", Key: "mobileFriendly", Value: s.MobileFriendly},
		{Name: "content", Key: "content", Value: s.Content},
		{Name: "social_mentions", Key: "socialMentions", Value: s.SocialMentions},
		{Name: "traffic", Key: "traffic", Value: s.Traffic},
	}
}

// NamedScore is a single labelled sub-score.
type NamedScore struct {
	Name string
	// Key is the JSON field name, matching the SubScores json tags.
	Key   string
	Value float64
}

// Comparables summarizes the comparable sales used for the value estimate.
type Comparables struct {
	// Count is the number of sales that carried a price.
	Count int `json:"count"`
	// Mean is the average price of those sales; zero when Count is 0.
	Mean decimal.Decimal `json:"mean"`
}

// Appraisal is the result of appraising one domain.
type Appraisal struct {
	ID       AppraisalID `json:"id"`
	Domain   string      `json:"domain"`
	Keywords []string    `json:"keywords"`

	SubScores  SubScores `json:"subScores"`
	TotalScore float64   `json:"totalScore"`

	Comparables    Comparables     `json:"comparables"`
	EstimatedValue decimal.Decimal `json:"estimatedValue"`

	Metrics Metrics `json:"metrics"`

	AppraisedAt time.Time `json:"appraisedAt"`
}
