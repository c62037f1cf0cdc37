package content_test

import (
	"appraiser/pkg/httpclient"
	"appraiser/pkg/provider/content"
	"appraiser/pkg/serrors"
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

const page = `<!doctype html>
<html>
<head><title>Example Domain</title><style>body { color: red; }</style></head>
<body>
  <script>var ignored = "these words do not count";</script>
  <h1>Example Domain</h1>
  <p>This domain is for use in illustrative examples.</p>
  <noscript>enable javascript please</noscript>
</body>
</html>`

func newTestClient(status int, body string) *content.Client {
	fn := rtFunc(func(r *http.Request) (*http.Response, error) {
		if r.URL.Host != "example.com" || r.URL.Scheme != "http" {
			return nil, io.ErrUnexpectedEOF
		}

		return &http.Response{
			StatusCode: status,
			Header:     http.Header{"Content-Type": []string{"text/html"}},
			Body:       io.NopCloser(strings.NewReader(body)),
		}, nil
	})
	rc := httpclient.New(context.Background(), &http.Client{Transport: fn}, content.Name, httpclient.Options{})

	return content.New(rc)
}

func TestClient_Content(t *testing.T) {
	c, err := newTestClient(http.StatusOK, page).Content(context.Background(), "example.com")
	require.NoError(t, err)
	require.Equal(t, 10, c.WordCount)
}

func TestClient_Content_notFound(t *testing.T) {
	_, err := newTestClient(http.StatusNotFound, "gone").Content(context.Background(), "example.com")
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestWordCount(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want int
	}{
		{name: "empty", in: "", want: 0},
		{name: "plain text", in: "one two  three\nfour", want: 4},
		{name: "nested markup", in: "<div><span>a</span> <b>b c</b></div>", want: 3},
		{name: "only scripts", in: "<script>x y z</script><style>.a{}</style>", want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := content.WordCount([]byte(tc.in))
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}
