package social_test

import (
	"appraiser/pkg/domain"
	"appraiser/pkg/httpclient"
	"appraiser/pkg/provider/social"
	"appraiser/pkg/serrors"
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(status int, body string, check func(r *http.Request)) *social.Client {
	rc := httpclient.New(context.Background(), &http.Client{Transport: rtFunc(func(r *http.Request) (*http.Response, error) {
		if check != nil {
			check(r)
		}

		return &http.Response{
			StatusCode: status,
			Header:     http.Header{"Content-Type": []string{"application/json"}},
			Body:       io.NopCloser(strings.NewReader(body)),
		}, nil
	})}, social.Name, httpclient.Options{})

	return social.New(rc, social.Options{BaseURL: "https://social.test", APIKey: "social-key"})
}

func TestClient_SocialMentions(t *testing.T) {
	c := newTestClient(http.StatusOK, `{"total_mentions": 420}`, func(r *http.Request) {
		require.Equal(t, "/api/v1/mentions", r.URL.Path)
		require.Equal(t, "example.com", r.URL.Query().Get("site"))
		require.Equal(t, "social-key", r.URL.Query().Get("api_key"))
	})

	m, err := c.SocialMentions(context.Background(), "example.com")
	require.NoError(t, err)
	require.Equal(t, int64(420), m.Total)
}

func TestClient_SocialMentions_absent(t *testing.T) {
	c := newTestClient(http.StatusOK, `{"other": 1}`, nil)

	_, err := c.SocialMentions(context.Background(), "example.com")
	require.ErrorIs(t, err, domain.ErrAbsent)
}

func TestClient_SocialMentions_notFound(t *testing.T) {
	c := newTestClient(http.StatusNotFound, `{"error":"unknown site"}`, nil)

	_, err := c.SocialMentions(context.Background(), "example.com")
	require.ErrorIs(t, err, serrors.ErrNotFound)
	require.ErrorContains(t, err, "unknown site")
}
