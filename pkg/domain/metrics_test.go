package domain_test

import (
	"appraiser/pkg/domain"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestNewDomainAge(t *testing.T) {
	created := time.Date(2015, 3, 1, 0, 0, 0, 0, time.UTC)

	age := domain.NewDomainAge(created, created.AddDate(0, 0, 3650))
	require.InDelta(t, 10.0, age.Years, 1e-9)
	require.Equal(t, created, age.CreatedAt)

	age = domain.NewDomainAge(created, created.AddDate(0, 0, 500))
	require.InDelta(t, 1.37, age.Years, 1e-9)

	age = domain.NewDomainAge(created, created.Add(-time.Hour))
	require.Zero(t, age.Years)
}

func TestTrendSeries_Mean(t *testing.T) {
	s := domain.TrendSeries{Points: []domain.TrendPoint{
		{Values: []float64{10, 30}},
		{Values: []float64{20, 40}},
	}}
	mean, ok := s.Mean()
	require.True(t, ok)
	require.InDelta(t, 25.0, mean, 1e-9)

	_, ok = domain.TrendSeries{Points: []domain.TrendPoint{{}}}.Mean()
	require.False(t, ok)
}

func TestComparableSales_Valid(t *testing.T) {
	sales := domain.ComparableSales{Prices: []decimal.NullDecimal{
		decimal.NewNullDecimal(decimal.NewFromInt(5)),
		{},
		decimal.NewNullDecimal(decimal.NewFromInt(7)),
	}}

	valid := sales.Valid()
	require.Len(t, valid, 2)
	require.True(t, valid[1].Equal(decimal.NewFromInt(7)))
}

func TestFromResult(t *testing.T) {
	m := domain.FromResult(domain.Traffic{Visits: 3}, nil)
	v, ok := m.Get()
	require.True(t, ok)
	require.Equal(t, domain.MetricStatusOK, m.Status)
	require.Equal(t, int64(3), v.Visits)

	m = domain.FromResult(domain.Traffic{}, errors.Join(errors.New("no data"), domain.ErrAbsent))
	_, ok = m.Get()
	require.False(t, ok)
	require.Equal(t, domain.MetricStatusAbsent, m.Status)
	require.Empty(t, m.Err)

	m = domain.FromResult(domain.Traffic{}, errors.New("boom"))
	require.Equal(t, domain.MetricStatusFailed, m.Status)
	require.Equal(t, "boom", m.Err)
}
