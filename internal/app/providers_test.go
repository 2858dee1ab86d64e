package app

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"sitesnap/config"
	"sitesnap/internal/infra/resilience"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBreakerConfig_AppliesOverrides(t *testing.T) {
	cfg := &config.Config{}
	assert.Equal(t, resilience.DefaultConfig(backendBreakerName), BreakerConfig(cfg))

	cfg.API.Breaker = &config.BreakerConfig{FailureThreshold: 2, Timeout: time.Minute}
	got := BreakerConfig(cfg)

	assert.Equal(t, uint32(2), got.FailureThreshold)
	assert.Equal(t, time.Minute, got.Timeout)
	assert.Equal(t, resilience.DefaultMaxRequests, got.MaxRequests)
}

func TestBuild_OfflineUsesLocalCatalog(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.BucketURL = "mem://"
	cfg.Catalog.Source = config.SourceLocal
	// Never dialed offline.
	cfg.API.BaseURL = "http://127.0.0.1:1"
	cfg.Storefront.URL = "https://shop.example.com"

	ctx := context.Background()
	a, err := Build(ctx, cfg, newDiscardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	seller, err := a.Catalog.GetSeller(ctx)
	require.NoError(t, err)
	assert.Equal(t, "seller-demo", seller.ID)

	png, err := a.Storefront.QRCode(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, png)

	user, err := a.Sessions.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)
}
