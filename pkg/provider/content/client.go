// Package content provides a provider.ContentFetcher that downloads the
// landing page of a domain and counts the words of its visible text.
package content

import (
	"appraiser/pkg/domain"
	"appraiser/pkg/httpclient"
	"appraiser/pkg/provider"
	"appraiser/pkg/serrors"
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
)

// Name labels this provider in logs and metrics.
const Name = "content"

// invisible lists the elements whose text is never rendered.
const invisible = "script, style, noscript, template, head"

type Client struct {
	http *resty.Client
}

// Content fetches http://name, following redirects, and counts its words.
func (c *Client) Content(ctx context.Context, name string) (domain.Content, error) {
	res, err := c.http.R().
		SetContext(ctx).
		Get("http://" + name)
	if err != nil {
		return domain.Content{}, httpclient.RequestError(err)
	}
	if err := httpclient.CheckResponse(res); err != nil {
		return domain.Content{}, fmt.Errorf("could not get landing page: %w", err)
	}

	n, err := WordCount(res.Body())
	if err != nil {
		return domain.Content{}, err
	}

	return domain.Content{WordCount: n}, nil
}

// WordCount returns the number of whitespace-separated words in the visible
// text of an HTML page.
func WordCount(page []byte) (int, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return 0, serrors.Wrap(serrors.ErrMalformed, err, "could not parse page")
	}
	doc.Find(invisible).Remove()

	return len(strings.Fields(doc.Text())), nil
}

var _ provider.ContentFetcher = (*Client)(nil)

// New constructs a Client sending requests through client.
func New(client *resty.Client) *Client {
	client.SetRedirectPolicy(resty.FlexibleRedirectPolicy(10))

	return &Client{http: client}
}
