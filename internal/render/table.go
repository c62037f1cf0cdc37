package render

import (
	"appraiser/pkg/domain"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func newTable(w io.Writer, title string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(title)
	t.SetStyle(table.StyleRounded)

	return t
}

func appraisalTable(w io.Writer, a *domain.Appraisal) error {
	summary := newTable(w, a.Domain)
	summary.AppendRows([]table.Row{
		{"Appraisal", a.ID.String()},
		{"Keywords", strings.Join(a.Keywords, ", ")},
		{"Total score", fmt.Sprintf("%.2f", a.TotalScore)},
		{"Comparable sales", fmt.Sprintf("%d (mean %s)", a.Comparables.Count, a.Comparables.Mean.StringFixed(2))},
		{"Estimated value", a.EstimatedValue.StringFixed(2)},
		{"Appraised at", a.AppraisedAt.UTC().Format(time.RFC3339)},
	})
	summary.Render()

	metrics := newTable(w, "Metrics")
	metrics.AppendHeader(table.Row{"Metric", "Status", "Value"})
	for _, r := range metricRows(a.Metrics) {
		value := r.Value
		if r.Error != "" {
			value = r.Error
		}
		metrics.AppendRow(table.Row{r.Name, r.Status, value})
	}
	metrics.Render()

	scores := newTable(w, "Scores")
	scores.AppendHeader(table.Row{"Score", "Value"})
	for _, s := range a.SubScores.Named() {
		scores.AppendRow(table.Row{s.Name, s.Value})
	}
	scores.AppendFooter(table.Row{"Total", a.TotalScore})
	scores.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, Transformer: formatScore, TransformerFooter: formatScore},
	})
	scores.Render()

	return nil
}

func trendTable(w io.Writer, s domain.TrendSeries) error {
	t := newTable(w, "Interest over time: "+strings.Join(s.Keywords, ", "))

	header := table.Row{"Time"}
	for _, kw := range s.Keywords {
		header = append(header, kw)
	}
	t.AppendHeader(header)

	for _, p := range s.Points {
		r := table.Row{p.Time.Format(time.DateOnly)}
		for _, v := range p.Values {
			r = append(r, v)
		}
		if p.Partial {
			r[0] = fmt.Sprintf("%s*", r[0])
		}
		t.AppendRow(r)
	}
	if mean, ok := s.Mean(); ok {
		t.AppendFooter(table.Row{"Mean", fmt.Sprintf("%.2f", mean)})
	}
	t.Render()

	return nil
}

func formatScore(v any) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.2f", f)
	}

	return fmt.Sprint(v)
}
