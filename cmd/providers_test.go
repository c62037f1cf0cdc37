package main

import (
	"appraiser/internal/config"
	"appraiser/pkg/provider/rdap"
	"appraiser/pkg/provider/whois"
	"context"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var apiKeyVars = []string{
	"BACKLINKS_API_KEY",
	"GOOGLE_API_KEY",
	"SOCIAL_API_KEY",
	"TRAFFIC_API_KEY",
	"MARKETPLACE_API_KEY",
}

func loadTestConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"), "")
	require.NoError(t, err)

	return cfg
}

func TestNewProviders_withoutKeys(t *testing.T) {
	for _, v := range apiKeyVars {
		t.Setenv(v, "")
	}
	t.Setenv("AGE_SOURCE", config.AgeSourceWhois)

	p, err := newProviders(context.Background(), loadTestConfig(t), http.DefaultTransport)
	require.NoError(t, err)

	require.NotNil(t, p.Trend)
	require.NotNil(t, p.Content)
	require.IsType(t, &whois.Client{}, p.Age)

	require.Nil(t, p.Backlinks)
	require.Nil(t, p.SiteSpeed)
	require.Nil(t, p.MobileFriendly)
	require.Nil(t, p.Social)
	require.Nil(t, p.Traffic)
	require.Nil(t, p.Sales)
}

func TestNewProviders_withKeys(t *testing.T) {
	for _, v := range apiKeyVars {
		t.Setenv(v, "key")
	}
	t.Setenv("AGE_SOURCE", config.AgeSourceRDAP)

	p, err := newProviders(context.Background(), loadTestConfig(t), http.DefaultTransport)
	require.NoError(t, err)

	require.IsType(t, &rdap.Client{}, p.Age)
	require.NotNil(t, p.Backlinks)
	require.NotNil(t, p.SiteSpeed)
	require.NotNil(t, p.MobileFriendly)
	require.NotNil(t, p.Social)
	require.NotNil(t, p.Traffic)
	require.NotNil(t, p.Sales)
}
