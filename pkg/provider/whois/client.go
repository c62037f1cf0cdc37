// Package whois provides a provider.AgeFetcher that scrapes the creation date
// of a domain from the whois.com lookup page.
package whois

import (
	"appraiser/internal/config"
	"appraiser/pkg/domain"
	"appraiser/pkg/httpclient"
	"appraiser/pkg/provider"
	"appraiser/pkg/serrors"
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
)

// Name labels this provider in logs and metrics.
const Name = "whois"

// creationLabels are the labels registrars use for the creation date, matched
// case-insensitively against structured rows and raw record lines.
var creationLabels = []string{"creation date", "registered on", "created on", "created", "registration time"} //nolint: gochecknoglobals

// dateLayouts are tried in order when parsing a creation date.
var dateLayouts = []string{ //nolint: gochecknoglobals
	time.RFC3339,
	"2006-01-02T15:04:05.000Z",
	"2006-01-02T15:04:05Z",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02-Jan-2006",
	"2006.01.02",
}

// Options configure the whois client.
type Options struct {
	BaseURL string
}

// NewOptions constructs Options from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{BaseURL: cfg.Providers.Age.WhoisBaseURL}
}

type Client struct {
	http *resty.Client
	now  func() time.Time
}

// Age returns the age of name derived from its creation date. A page without
// a creation date yields domain.ErrAbsent.
func (c *Client) Age(ctx context.Context, name string) (domain.DomainAge, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetPathParam("domain", name).
		Get("/whois/{domain}")
	if err != nil {
		return domain.DomainAge{}, httpclient.RequestError(err)
	}
	if err := httpclient.CheckResponse(res); err != nil {
		return domain.DomainAge{}, fmt.Errorf("could not get whois page: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
	if err != nil {
		return domain.DomainAge{}, serrors.Wrap(serrors.ErrMalformed, err, "could not parse whois page")
	}

	raw, ok := CreationDate(doc)
	if !ok {
		return domain.DomainAge{}, fmt.Errorf("no creation date for %s: %w", name, domain.ErrAbsent)
	}
	created, err := ParseDate(raw)
	if err != nil {
		return domain.DomainAge{}, err
	}

	return domain.NewDomainAge(created, c.now()), nil
}

// CreationDate finds the creation date text on a whois.com result page. The
// structured summary rows are preferred over the raw registrar record.
func CreationDate(doc *goquery.Document) (string, bool) {
	var found string
	doc.Find(".df-row").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		label := strings.TrimSuffix(strings.TrimSpace(row.Find(".df-label").Text()), ":")
		if !isCreationLabel(label) {
			return true
		}
		found = strings.TrimSpace(row.Find(".df-value").Text())

		return found == ""
	})
	if found != "" {
		return found, true
	}

	doc.Find("#registrarData, #registryData, pre.df-raw").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		for _, line := range strings.Split(s.Text(), "\n") {
			label, value, ok := strings.Cut(line, ":")
			if !ok || !isCreationLabel(strings.TrimSpace(label)) {
				continue
			}
			if value = strings.TrimSpace(value); value != "" {
				found = value

				return false
			}
		}

		return true
	})

	return found, found != ""
}

func isCreationLabel(label string) bool {
	for _, l := range creationLabels {
		if strings.EqualFold(label, l) {
			return true
		}
	}

	return false
}

// ParseDate parses a creation date in any of the layouts registrars commonly
// use. Only the first whitespace-separated token is considered when the full
// value does not parse, which drops trailing time zone names.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	candidates := []string{raw}
	if fields := strings.Fields(raw); len(fields) > 1 {
		candidates = append(candidates, fields[0])
	}

	for _, c := range candidates {
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, c); err == nil {
				return t.UTC(), nil
			}
		}
	}

	return time.Time{}, serrors.With(serrors.ErrMalformed, "unrecognized creation date %q", raw)
}

var _ provider.AgeFetcher = (*Client)(nil)

// New constructs a Client sending requests through client. now defaults to
// time.Now when nil.
func New(client *resty.Client, opts Options, now func() time.Time) *Client {
	if now == nil {
		now = time.Now
	}
	client.SetBaseURL(opts.BaseURL)

	return &Client{http: client, now: now}
}
