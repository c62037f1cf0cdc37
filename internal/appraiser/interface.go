package appraiser

import (
	"appraiser/pkg/domain"
	"context"
)

//go:generate mockgen -package mockappraiser -source=interface.go -destination=mock/mockappraiser.go *
type Appraiser interface {
	// Appraise fetches every metric of a domain, scores them and estimates
	// the domain's value.
	Appraise(ctx context.Context, name string) (*domain.Appraisal, error)
	// Trend returns the search-interest series used for the trend sub-score.
	Trend(ctx context.Context, name string) (domain.TrendSeries, error)
}
