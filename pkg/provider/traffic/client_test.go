package traffic_test

import (
	"appraiser/pkg/domain"
	"appraiser/pkg/httpclient"
	"appraiser/pkg/provider/traffic"
	"appraiser/pkg/serrors"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(fn rtFunc) *traffic.Client {
	rc := httpclient.New(context.Background(), &http.Client{Transport: fn}, traffic.Name, httpclient.Options{})

	return traffic.New(rc, traffic.Options{BaseURL: "https://traffic.test", APIKey: "traffic-key"})
}

func ok(body string) rtFunc {
	return func(*http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(body)),
		}, nil
	}
}

func TestClient_Traffic(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "traffic.test", r.URL.Host)
		require.Equal(t, "/api/v1/traffic", r.URL.Path)
		require.Equal(t, "example.com", r.URL.Query().Get("site"))
		require.Equal(t, "traffic-key", r.URL.Query().Get("api_key"))

		return ok(`{"total_visits": 15000}`)(r)
	})

	tr, err := c.Traffic(context.Background(), "example.com")
	require.NoError(t, err)
	require.Equal(t, domain.Traffic{Visits: 15000}, tr)
}

func TestClient_Traffic_absent(t *testing.T) {
	_, err := newTestClient(ok(`{"total_visits": null}`)).Traffic(context.Background(), "example.com")
	require.ErrorIs(t, err, domain.ErrAbsent)
}

func TestClient_Traffic_malformed(t *testing.T) {
	_, err := newTestClient(ok(`{"total_visits": "lots"}`)).Traffic(context.Background(), "example.com")
	require.ErrorIs(t, err, serrors.ErrMalformed)
}

func TestClient_Traffic_transportError(t *testing.T) {
	c := newTestClient(func(*http.Request) (*http.Response, error) {
		return nil, errors.New("connection reset")
	})

	_, err := c.Traffic(context.Background(), "example.com")
	require.ErrorContains(t, err, "connection reset")
}
