package httpclient_test

import (
	"appraiser/pkg/httpclient"
	"appraiser/pkg/metrics"
	"appraiser/pkg/serrors"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func respond(status int, body string) rtFunc {
	return func(*http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: status,
			Header:     http.Header{"Content-Type": []string{"text/plain"}},
			Body:       io.NopCloser(strings.NewReader(body)),
		}, nil
	}
}

func TestNew_SetsUserAgentAndRecordsLatency(t *testing.T) {
	var gotUA string
	hc := &http.Client{Transport: rtFunc(func(r *http.Request) (*http.Response, error) {
		gotUA = r.Header.Get("User-Agent")

		return respond(http.StatusOK, "ok")(r)
	})}

	before := testutil.CollectAndCount(metrics.UpstreamRequestDuration)
	c := httpclient.New(context.Background(), hc, "httpclient-test-ua", httpclient.Options{
		Timeout:   time.Second,
		UserAgent: "appraiser-test/1.0",
	})

	res, err := c.R().Get("http://upstream.test/ping")
	require.NoError(t, err)
	require.NoError(t, httpclient.CheckResponse(res))
	require.Equal(t, "appraiser-test/1.0", gotUA)

	require.Equal(t, before+1, testutil.CollectAndCount(metrics.UpstreamRequestDuration))
}

func TestCheckResponse_MapsStatuses(t *testing.T) {
	cases := []struct {
		status int
		kind   serrors.Kind
	}{
		{status: http.StatusUnauthorized, kind: serrors.ErrUnauthorized},
		{status: http.StatusForbidden, kind: serrors.ErrUnauthorized},
		{status: http.StatusNotFound, kind: serrors.ErrNotFound},
		{status: http.StatusTooManyRequests, kind: serrors.ErrRateLimited},
		{status: http.StatusGatewayTimeout, kind: serrors.ErrTimeout},
		{status: http.StatusBadGateway, kind: serrors.ErrUnavailable},
	}

	for _, tc := range cases {
		t.Run(http.StatusText(tc.status), func(t *testing.T) {
			c := httpclient.New(context.Background(),
				&http.Client{Transport: respond(tc.status, "upstream says no")}, "httpclient-test", httpclient.Options{})

			res, err := c.R().Get("http://upstream.test/")
			require.NoError(t, err)

			err = httpclient.CheckResponse(res)
			require.ErrorIs(t, err, tc.kind)
			require.Contains(t, err.Error(), "upstream says no")
		})
	}
}

func TestCheckResponse_UnmappedStatus(t *testing.T) {
	c := httpclient.New(context.Background(),
		&http.Client{Transport: respond(http.StatusTeapot, strings.Repeat("x", 2000))}, "httpclient-test", httpclient.Options{})

	res, err := c.R().Get("http://upstream.test/")
	require.NoError(t, err)

	err = httpclient.CheckResponse(res)
	require.Error(t, err)
	require.Nil(t, serrors.KindOf(err))
	require.Contains(t, err.Error(), "418")
	require.Less(t, len(err.Error()), 600)
}

func TestRequestError(t *testing.T) {
	require.ErrorIs(t, httpclient.RequestError(context.DeadlineExceeded), serrors.ErrTimeout)

	err := httpclient.RequestError(errors.New("connection refused"))
	require.NotErrorIs(t, err, serrors.ErrTimeout)
	require.ErrorContains(t, err, "connection refused")
}

func TestDecodeJSON(t *testing.T) {
	c := httpclient.New(context.Background(),
		&http.Client{Transport: respond(http.StatusOK, `{"visits":12}`)}, "httpclient-test", httpclient.Options{})
	res, err := c.R().Get("http://upstream.test/")
	require.NoError(t, err)

	var out struct {
		Visits int `json:"visits"`
	}
	require.NoError(t, httpclient.DecodeJSON(res, &out))
	require.Equal(t, 12, out.Visits)

	c = httpclient.New(context.Background(),
		&http.Client{Transport: respond(http.StatusOK, `<html>`)}, "httpclient-test", httpclient.Options{})
	res, err = c.R().Get("http://upstream.test/")
	require.NoError(t, err)
	require.ErrorIs(t, httpclient.DecodeJSON(res, &out), serrors.ErrMalformed)
}

func TestNewStd_RecordsLatencyAndUserAgent(t *testing.T) {
	var gotUA string
	hc := &http.Client{Transport: rtFunc(func(r *http.Request) (*http.Response, error) {
		gotUA = r.Header.Get("User-Agent")

		return respond(http.StatusNoContent, "")(r)
	})}

	before := testutil.CollectAndCount(metrics.UpstreamRequestDuration)
	c := httpclient.NewStd(context.Background(), hc, "httpclient-test-std", httpclient.Options{UserAgent: "appraiser-test/2.0"})

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://upstream.test/std", nil)
	require.NoError(t, err)
	res, err := c.Do(req)
	require.NoError(t, err)
	_ = res.Body.Close()

	require.Equal(t, http.StatusNoContent, res.StatusCode)
	require.Equal(t, "appraiser-test/2.0", gotUA)
	require.Equal(t, before+1, testutil.CollectAndCount(metrics.UpstreamRequestDuration))
}
