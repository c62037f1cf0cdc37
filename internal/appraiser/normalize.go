package appraiser

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"

	"golang.org/x/net/idna"
	"golang.org/x/net/publicsuffix"
)

const (
	maxDomainLength = 253
	maxLabelLength  = 63
)

// NormalizeDomain returns the canonical ASCII form of a domain name.
//
// The input may be a bare name or a URL:
//   - Surrounding whitespace, the scheme, port, path and query are dropped
//   - The name is lower-cased and a trailing dot is removed
//   - Internationalized names are converted to punycode
//   - IP addresses and bare public suffixes (e.g. "co.uk") are rejected
func NormalizeDomain(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", errors.New("empty domain")
	}

	if strings.Contains(s, "://") {
		u, err := url.Parse(s)
		if err != nil {
			return "", fmt.Errorf("could not parse URL: %w", err)
		}
		s = u.Hostname()
	} else {
		s, _, _ = strings.Cut(s, "/")
		s, _, _ = strings.Cut(s, "?")
		if host, _, err := net.SplitHostPort(s); err == nil {
			s = host
		}
	}
	s = strings.TrimSuffix(strings.ToLower(s), ".")

	if net.ParseIP(s) != nil {
		return "", fmt.Errorf("%q is an IP address", s)
	}

	name, err := idna.Lookup.ToASCII(s)
	if err != nil {
		return "", fmt.Errorf("invalid domain %q: %w", s, err)
	}
	if len(name) > maxDomainLength {
		return "", fmt.Errorf("domain is longer than %d characters", maxDomainLength)
	}
	for _, label := range strings.Split(name, ".") {
		if label == "" || len(label) > maxLabelLength {
			return "", fmt.Errorf("invalid label in domain %q", name)
		}
	}

	if _, err := publicsuffix.EffectiveTLDPlusOne(name); err != nil {
		return "", fmt.Errorf("domain %q has no registrable part: %w", name, err)
	}

	return name, nil
}

// Keywords derives the search keywords of a normalized domain: its registrable
// label without the public suffix, in Unicode form. "shop.example-store.co.uk"
// yields ["example-store"].
func Keywords(name string) []string {
	registrable, err := publicsuffix.EffectiveTLDPlusOne(name)
	if err != nil {
		registrable = name
	}
	suffix, _ := publicsuffix.PublicSuffix(registrable)
	label := strings.TrimSuffix(registrable, "."+suffix)
	if label == "" {
		return nil
	}

	if unicode, err := idna.Display.ToUnicode(label); err == nil {
		label = unicode
	}

	return []string{label}
}
