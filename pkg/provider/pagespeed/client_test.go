package pagespeed_test

import (
	"appraiser/pkg/domain"
	"appraiser/pkg/provider/pagespeed"
	"appraiser/pkg/serrors"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/api/pagespeedonline/v5"
)

func report(score string) string {
	return fmt.Sprintf(`{"lighthouseResult":{"categories":{"performance":{"id":"performance","score":%s}}}}`, score)
}

// newTestClient serves one canned body per strategy.
func newTestClient(t *testing.T, bodies map[string]string, statuses map[string]int) *pagespeed.Client {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/pagespeedonline/v5/runPagespeed", r.URL.Path)
		q := r.URL.Query()
		require.Equal(t, "http://example.com", q.Get("url"))
		require.Equal(t, "PERFORMANCE", q.Get("category"))
		require.Equal(t, "google-key", q.Get("key"))

		strategy := q.Get("strategy")
		w.Header().Set("Content-Type", "application/json")
		if code, ok := statuses[strategy]; ok {
			w.WriteHeader(code)
			_, _ = w.Write([]byte(`{"error":{"code":` + fmt.Sprint(code) + `,"message":"failed"}}`))

			return
		}
		_, _ = w.Write([]byte(bodies[strategy]))
	}))
	t.Cleanup(srv.Close)

	c, err := pagespeed.New(context.Background(), srv.Client(), pagespeed.Options{
		BaseURL: srv.URL + "/",
		APIKey:  "google-key",
	})
	require.NoError(t, err)

	return c
}

func TestClient_SiteSpeed(t *testing.T) {
	c := newTestClient(t, map[string]string{
		"DESKTOP": report("0.92"),
		"MOBILE":  report("0.64"),
	}, nil)

	speed, err := c.SiteSpeed(context.Background(), "example.com")
	require.NoError(t, err)
	require.InDelta(t, 92.0, speed.Desktop, 1e-9)
	require.NotNil(t, speed.Mobile)
	require.InDelta(t, 64.0, *speed.Mobile, 1e-9)
}

func TestClient_SiteSpeed_mobileFailureKeepsDesktop(t *testing.T) {
	c := newTestClient(t,
		map[string]string{"DESKTOP": report("0.5")},
		map[string]int{"MOBILE": http.StatusInternalServerError})

	speed, err := c.SiteSpeed(context.Background(), "example.com")
	require.NoError(t, err)
	require.InDelta(t, 50.0, speed.Desktop, 1e-9)
	require.Nil(t, speed.Mobile)
}

func TestClient_SiteSpeed_noDesktopScore(t *testing.T) {
	c := newTestClient(t, map[string]string{"DESKTOP": report("null")}, nil)

	_, err := c.SiteSpeed(context.Background(), "example.com")
	require.ErrorIs(t, err, domain.ErrAbsent)
}

func TestClient_SiteSpeed_rateLimited(t *testing.T) {
	c := newTestClient(t, nil, map[string]int{"DESKTOP": http.StatusTooManyRequests})

	_, err := c.SiteSpeed(context.Background(), "example.com")
	require.ErrorIs(t, err, serrors.ErrRateLimited)
}

func TestPerformanceScore(t *testing.T) {
	require.Nil(t, pagespeed.PerformanceScore(nil))
	require.Nil(t, pagespeed.PerformanceScore(&pagespeedonline.PagespeedApiPagespeedResponseV5{}))

	resp := &pagespeedonline.PagespeedApiPagespeedResponseV5{
		LighthouseResult: &pagespeedonline.LighthouseResultV5{
			Categories: &pagespeedonline.Categories{
				Performance: &pagespeedonline.LighthouseCategoryV5{Score: "0.25"},
			},
		},
	}
	got := pagespeed.PerformanceScore(resp)
	require.NotNil(t, got)
	require.InDelta(t, 25.0, *got, 1e-9)
}

func TestPerformanceScore_outOfRange(t *testing.T) {
	for _, score := range []any{"1e307", "NaN", "-0.5", 1.5} {
		resp := &pagespeedonline.PagespeedApiPagespeedResponseV5{
			LighthouseResult: &pagespeedonline.LighthouseResultV5{
				Categories: &pagespeedonline.Categories{
					Performance: &pagespeedonline.LighthouseCategoryV5{Score: score},
				},
			},
		}

		require.Nil(t, pagespeed.PerformanceScore(resp), score)
	}
}
