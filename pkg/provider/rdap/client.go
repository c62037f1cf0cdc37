// Package rdap provides a provider.AgeFetcher that reads the registration
// event of a domain over RDAP. Servers are found through the IANA bootstrap
// registry unless one is pinned in the options.
package rdap

import (
	"appraiser/internal/config"
	"appraiser/pkg/domain"
	"appraiser/pkg/provider"
	"appraiser/pkg/serrors"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/openrdap/rdap"
)

// Name labels this provider in logs and metrics.
const Name = "rdap"

const registrationAction = "registration"

// Options configure the RDAP client.
type Options struct {
	// Server pins the RDAP base URL, e.g. https://rdap.verisign.com/com/v1.
	// Empty uses bootstrap.
	Server string
}

// NewOptions constructs Options from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{Server: cfg.Providers.Age.RDAPServer}
}

type Client struct {
	rdap   *rdap.Client
	server *url.URL
	now    func() time.Time
}

// Age returns the age of name derived from its RDAP registration event.
func (c *Client) Age(ctx context.Context, name string) (domain.DomainAge, error) {
	req := rdap.NewDomainRequest(name).WithContext(ctx)
	if c.server != nil {
		req = req.WithServer(c.server)
	}

	resp, err := c.rdap.Do(req)
	if err != nil {
		return domain.DomainAge{}, classify(err)
	}

	d, ok := resp.Object.(*rdap.Domain)
	if !ok {
		return domain.DomainAge{}, serrors.With(serrors.ErrMalformed, "unexpected RDAP object %T", resp.Object)
	}

	created, err := RegistrationDate(d)
	if err != nil {
		return domain.DomainAge{}, err
	}

	return domain.NewDomainAge(created, c.now()), nil
}

// RegistrationDate returns the date of the registration event of d.
func RegistrationDate(d *rdap.Domain) (time.Time, error) {
	for _, e := range d.Events {
		if !strings.EqualFold(e.Action, registrationAction) {
			continue
		}
		t, err := time.Parse(time.RFC3339, e.Date)
		if err != nil {
			return time.Time{}, serrors.Wrap(serrors.ErrMalformed, err, "invalid registration date %q", e.Date)
		}

		return t.UTC(), nil
	}

	return time.Time{}, fmt.Errorf("no registration event for %s: %w", d.LDHName, domain.ErrAbsent)
}

func classify(err error) error {
	if t, ok := clientErrorType(err); ok {
		switch t {
		case rdap.ObjectDoesNotExist:
			return fmt.Errorf("domain not registered: %w", errors.Join(err, domain.ErrAbsent))
		case rdap.BootstrapNoMatch, rdap.BootstrapNotSupported:
			return fmt.Errorf("no RDAP server for domain: %w", errors.Join(err, domain.ErrAbsent))
		case rdap.RDAPServerError, rdap.NoWorkingServers:
			return serrors.Wrap(serrors.ErrUnavailable, err, "RDAP server failed")
		}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return serrors.Wrap(serrors.ErrTimeout, err, "RDAP request timed out")
	}

	return fmt.Errorf("could not query RDAP: %w", err)
}

func clientErrorType(err error) (rdap.ClientErrorType, bool) {
	var ptr *rdap.ClientError
	if errors.As(err, &ptr) {
		return ptr.Type, true
	}
	var val rdap.ClientError
	if errors.As(err, &val) {
		return val.Type, true
	}

	return 0, false
}

var _ provider.AgeFetcher = (*Client)(nil)

// New constructs a Client sending requests through httpClient. now defaults
// to time.Now when nil.
func New(httpClient *http.Client, opts Options, now func() time.Time) (*Client, error) {
	if now == nil {
		now = time.Now
	}

	c := &Client{
		rdap: &rdap.Client{HTTP: httpClient},
		now:  now,
	}
	if opts.Server != "" {
		u, err := url.Parse(opts.Server)
		if err != nil {
			return nil, fmt.Errorf("invalid RDAP server: %w", err)
		}
		c.server = u
	}

	return c, nil
}
