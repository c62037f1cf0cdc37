package trends_test

import (
	"appraiser/pkg/domain"
	"appraiser/pkg/httpclient"
	"appraiser/pkg/provider/trends"
	"appraiser/pkg/serrors"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func textResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json; charset=utf-8"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

const exploreBody = `)]}'
{"widgets":[
	{"id":"RELATED_QUERIES","token":"other","request":{}},
	{"id":"TIMESERIES","token":"ts-token","request":{"time":"2020-01-01 2025-01-01","resolution":"WEEK"}}
]}`

func newTestClient(t *testing.T, multiline string) *trends.Client {
	t.Helper()

	fn := rtFunc(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "trends.test", r.URL.Host)
		q := r.URL.Query()

		switch r.URL.Path {
		case "/trends/explore":
			return textResponse(http.StatusOK, "<html></html>"), nil
		case "/trends/api/explore":
			require.Equal(t, "en-US", q.Get("hl"))
			require.Equal(t, "360", q.Get("tz"))

			var req struct {
				ComparisonItem []struct {
					Keyword string `json:"keyword"`
					Geo     string `json:"geo"`
					Time    string `json:"time"`
				} `json:"comparisonItem"`
				Category int    `json:"category"`
				Property string `json:"property"`
			}
			require.NoError(t, json.Unmarshal([]byte(q.Get("req")), &req))
			require.Len(t, req.ComparisonItem, 1)
			require.Equal(t, "example", req.ComparisonItem[0].Keyword)
			require.Equal(t, "today 5-y", req.ComparisonItem[0].Time)

			return textResponse(http.StatusOK, exploreBody), nil
		case "/trends/api/widgetdata/multiline":
			require.Equal(t, "ts-token", q.Get("token"))
			require.JSONEq(t, `{"time":"2020-01-01 2025-01-01","resolution":"WEEK"}`, q.Get("req"))

			return textResponse(http.StatusOK, multiline), nil
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)

			return nil, nil
		}
	})

	rc := httpclient.New(context.Background(), &http.Client{Transport: fn}, trends.Name, httpclient.Options{})
	c, err := trends.New(rc, trends.Options{
		BaseURL:   "https://trends.test",
		Language:  "en-US",
		TZOffset:  360,
		Timeframe: "today 5-y",
	})
	require.NoError(t, err)

	return c
}

func TestClient_Interest(t *testing.T) {
	c := newTestClient(t, `)]}',
{"default":{"timelineData":[
	{"time":"1577836800","formattedTime":"Jan 1, 2020","value":[40],"hasData":[true]},
	{"time":"1578441600","formattedTime":"Jan 8, 2020","value":[60],"hasData":[true],"isPartial":true}
]}}`)

	series, err := c.Interest(context.Background(), []string{"example"})
	require.NoError(t, err)
	require.Equal(t, []string{"example"}, series.Keywords)
	require.Equal(t, []domain.TrendPoint{
		{Time: time.Unix(1577836800, 0).UTC(), Values: []float64{40}},
		{Time: time.Unix(1578441600, 0).UTC(), Values: []float64{60}, Partial: true},
	}, series.Points)

	mean, ok := series.Mean()
	require.True(t, ok)
	require.InDelta(t, 50.0, mean, 1e-9)
}

func TestClient_Interest_noRows(t *testing.T) {
	c := newTestClient(t, `)]}',
{"default":{"timelineData":[]}}`)

	_, err := c.Interest(context.Background(), []string{"example"})
	require.ErrorIs(t, err, domain.ErrAbsent)
}

func TestClient_Interest_badTime(t *testing.T) {
	c := newTestClient(t, `)]}',
{"default":{"timelineData":[{"time":"yesterday","value":[1]}]}}`)

	_, err := c.Interest(context.Background(), []string{"example"})
	require.ErrorIs(t, err, serrors.ErrMalformed)
}

func TestClient_Interest_noKeywords(t *testing.T) {
	c := newTestClient(t, "")

	_, err := c.Interest(context.Background(), nil)
	require.ErrorIs(t, err, domain.ErrAbsent)
}

func TestClient_Interest_missingWidget(t *testing.T) {
	fn := rtFunc(func(r *http.Request) (*http.Response, error) {
		if r.URL.Path == "/trends/api/explore" {
			return textResponse(http.StatusOK, ")]}'\n{\"widgets\":[]}"), nil
		}

		return textResponse(http.StatusOK, ""), nil
	})
	rc := httpclient.New(context.Background(), &http.Client{Transport: fn}, trends.Name, httpclient.Options{})
	c, err := trends.New(rc, trends.Options{BaseURL: "https://trends.test", Timeframe: "today 5-y"})
	require.NoError(t, err)

	_, err = c.Interest(context.Background(), []string{"example"})
	require.ErrorIs(t, err, serrors.ErrMalformed)
}

func TestClient_Interest_rateLimited(t *testing.T) {
	fn := rtFunc(func(r *http.Request) (*http.Response, error) {
		if r.URL.Path == "/trends/api/explore" {
			return textResponse(http.StatusTooManyRequests, "quota"), nil
		}

		return textResponse(http.StatusOK, ""), nil
	})
	rc := httpclient.New(context.Background(), &http.Client{Transport: fn}, trends.Name, httpclient.Options{})
	c, err := trends.New(rc, trends.Options{BaseURL: "https://trends.test"})
	require.NoError(t, err)

	_, err = c.Interest(context.Background(), []string{"example"})
	require.ErrorIs(t, err, serrors.ErrRateLimited)
}
