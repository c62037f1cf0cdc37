package render

import (
	"appraiser/pkg/domain"
	"io"
	"time"

	"github.com/go-faster/errors"
	"gopkg.in/yaml.v3"
)

type appraisalView struct {
	ID             string             `yaml:"id"`
	Domain         string             `yaml:"domain"`
	Keywords       []string           `yaml:"keywords"`
	TotalScore     float64            `yaml:"total_score"`
	EstimatedValue string             `yaml:"estimated_value"`
	Comparables    comparablesView    `yaml:"comparables"`
	SubScores      map[string]float64 `yaml:"sub_scores"`
	Metrics        []metricView       `yaml:"metrics"`
	AppraisedAt    string             `yaml:"appraised_at"`
}

type comparablesView struct {
	Count int    `yaml:"count"`
	Mean  string `yaml:"mean"`
}

type metricView struct {
	Name   string `yaml:"name"`
	Status string `yaml:"status"`
	Value  string `yaml:"value,omitempty"`
	Error  string `yaml:"error,omitempty"`
}

type trendView struct {
	Keywords []string         `yaml:"keywords"`
	Mean     *float64         `yaml:"mean,omitempty"`
	Points   []trendPointView `yaml:"points"`
}

type trendPointView struct {
	Time    string    `yaml:"time"`
	Values  []float64 `yaml:"values,flow"`
	Partial bool      `yaml:"partial,omitempty"`
}

func newAppraisalView(a *domain.Appraisal) appraisalView {
	v := appraisalView{
		ID:             a.ID.String(),
		Domain:         a.Domain,
		Keywords:       a.Keywords,
		TotalScore:     a.TotalScore,
		EstimatedValue: a.EstimatedValue.StringFixed(2),
		Comparables: comparablesView{
			Count: a.Comparables.Count,
			Mean:  a.Comparables.Mean.StringFixed(2),
		},
		SubScores:   make(map[string]float64),
		AppraisedAt: a.AppraisedAt.UTC().Format(time.RFC3339),
	}
	for _, s := range a.SubScores.Named() {
		v.SubScores[s.Name] = s.Value
	}
	for _, r := range metricRows(a.Metrics) {
		v.Metrics = append(v.Metrics, metricView{
			Name:   r.Name,
			Status: string(r.Status),
			Value:  r.Value,
			Error:  r.Error,
		})
	}

	return v
}

func newTrendView(s domain.TrendSeries) trendView {
	v := trendView{Keywords: s.Keywords, Points: make([]trendPointView, 0, len(s.Points))}
	if mean, ok := s.Mean(); ok {
		v.Mean = &mean
	}
	for _, p := range s.Points {
		v.Points = append(v.Points, trendPointView{
			Time:    p.Time.UTC().Format(time.RFC3339),
			Values:  p.Values,
			Partial: p.Partial,
		})
	}

	return v
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "encode yaml")
	}

	if err := enc.Close(); err != nil {
		return errors.Wrap(err, "close yaml encoder")
	}

	return nil
}
