package rdap_test

import (
	"appraiser/pkg/domain"
	"appraiser/pkg/serrors"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	provider "appraiser/pkg/provider/rdap"

	"github.com/openrdap/rdap"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 8, 14, 0, 0, 0, 0, time.UTC)

func newTestClient(t *testing.T, status int, body string) *provider.Client {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/domain/example.com", r.URL.Path)

		w.Header().Set("Content-Type", "application/rdap+json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	c, err := provider.New(srv.Client(), provider.Options{Server: srv.URL}, func() time.Time { return now })
	require.NoError(t, err)

	return c
}

func TestClient_Age(t *testing.T) {
	c := newTestClient(t, http.StatusOK, `{
		"objectClassName": "domain",
		"ldhName": "EXAMPLE.COM",
		"events": [
			{"eventAction": "expiration", "eventDate": "2026-08-13T04:00:00Z"},
			{"eventAction": "registration", "eventDate": "2005-08-14T00:00:00Z"}
		]
	}`)

	age, err := c.Age(context.Background(), "example.com")
	require.NoError(t, err)
	require.Equal(t, time.Date(2005, 8, 14, 0, 0, 0, 0, time.UTC), age.CreatedAt)
	require.InDelta(t, 20.01, age.Years, 1e-9)
}

func TestClient_Age_notRegistered(t *testing.T) {
	c := newTestClient(t, http.StatusNotFound, `{"errorCode":404,"title":"Not Found"}`)

	_, err := c.Age(context.Background(), "example.com")
	require.ErrorIs(t, err, domain.ErrAbsent)
	require.NotErrorIs(t, err, serrors.ErrNotFound)
	require.Equal(t, domain.MetricStatusAbsent, domain.FromResult(domain.DomainAge{}, err).Status)
}

func TestRegistrationDate(t *testing.T) {
	d := &rdap.Domain{
		LDHName: "example.com",
		Events: []rdap.Event{
			{Action: "last changed", Date: "2024-01-01T00:00:00Z"},
			{Action: "Registration", Date: "1995-08-14T04:00:00Z"},
		},
	}

	got, err := provider.RegistrationDate(d)
	require.NoError(t, err)
	require.Equal(t, time.Date(1995, 8, 14, 4, 0, 0, 0, time.UTC), got)
}

func TestRegistrationDate_missing(t *testing.T) {
	_, err := provider.RegistrationDate(&rdap.Domain{LDHName: "example.com"})
	require.ErrorIs(t, err, domain.ErrAbsent)
}

func TestRegistrationDate_invalid(t *testing.T) {
	_, err := provider.RegistrationDate(&rdap.Domain{Events: []rdap.Event{{Action: "registration", Date: "08/14/1995"}}})
	require.ErrorIs(t, err, serrors.ErrMalformed)
}

func TestNew_invalidServer(t *testing.T) {
	_, err := provider.New(nil, provider.Options{Server: "://bad"}, nil)
	require.Error(t, err)
}
