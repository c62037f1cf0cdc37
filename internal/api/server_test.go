package api_test

import (
	"appraiser/internal/api"
	"appraiser/internal/api/handler/v1handler"
	mockappraiser "appraiser/internal/appraiser/mock"
	"appraiser/pkg/domain"
	"appraiser/pkg/logger"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

// The otel exporter registers with the default Prometheus registry, so the
// handler is built once per test binary.
func TestNewHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mockappraiser.NewMockAppraiser(ctrl)
	a.EXPECT().Trend(gomock.Any(), "example.com").Return(domain.TrendSeries{}, nil)

	h, err := api.NewHandler(api.Deps{Deps: v1handler.Deps{Appraiser: a}}, api.Options{
		RequestTimeout: time.Second,
		MetricsPath:    "/metrics",
		AllowedOrigin:  "*",
		EnablePprof:    true,
	})
	require.NoError(t, err)

	get := func(path string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		return rec
	}

	t.Run("health", func(t *testing.T) {
		rec := get("/healthz")
		require.Equal(t, http.StatusNoContent, rec.Code)
		require.NotEmpty(t, rec.Header().Get("X-Request-Id"))
	})

	t.Run("openapi document", func(t *testing.T) {
		rec := get("/specs/v1.yaml")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
		require.Contains(t, rec.Body.String(), "/v1/appraisals/{domain}")
	})

	t.Run("metrics", func(t *testing.T) {
		rec := get("/metrics")
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("pprof", func(t *testing.T) {
		rec := get("/debug/pprof/cmdline")
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("v1 trend", func(t *testing.T) {
		rec := get("/v1/appraisals/example.com/trend")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("docs", func(t *testing.T) {
		rec := get("/v1/docs/")
		require.Equal(t, http.StatusOK, rec.Code)
	})
}
