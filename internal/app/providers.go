// Package app builds the object graph shared by the sitesnap binaries. The
// storefront server hands these constructors to fx; the CLI calls them
// directly.
package app

import (
	"context"
	"log/slog"

	"sitesnap/config"
	"sitesnap/internal/domain/repository"
	"sitesnap/internal/domain/service"
	"sitesnap/internal/infra/api"
	"sitesnap/internal/infra/auth"
	"sitesnap/internal/infra/metrics"
	"sitesnap/internal/infra/qrcode"
	"sitesnap/internal/infra/resilience"
	"sitesnap/internal/infra/storage"
	"sitesnap/internal/usecase"
	"sitesnap/internal/usecase/impl"

	"gocloud.dev/blob"
)

const backendBreakerName = "sitesnap-backend"

// NewBucket opens the bucket behind the key-value store.
func NewBucket(ctx context.Context, cfg *config.Config) (*blob.Bucket, error) {
	return storage.OpenBucket(ctx, cfg.Storage.BucketURL)
}

// NewStore wraps the bucket as the key-value store.
func NewStore(bucket *blob.Bucket, logger *slog.Logger) repository.KeyValueRepository {
	return storage.NewBlobStore(bucket, logger)
}

// NewTokenStore keeps the bearer token in the store and drops it once expired.
func NewTokenStore(store repository.KeyValueRepository, logger *slog.Logger) service.TokenStore {
	return auth.NewTokenStore(store, auth.NewJWTInspector(), logger)
}

// NewMetrics creates the Prometheus collectors.
func NewMetrics(cfg *config.Config) *metrics.Metrics {
	return metrics.New(cfg.Env.ServiceName)
}

// BreakerConfig applies configured overrides to the breaker defaults.
func BreakerConfig(cfg *config.Config) resilience.Config {
	breaker := resilience.DefaultConfig(backendBreakerName)
	if override := cfg.API.Breaker; override != nil {
		if override.FailureThreshold > 0 {
			breaker.FailureThreshold = override.FailureThreshold
		}
		if override.Timeout > 0 {
			breaker.Timeout = override.Timeout
		}
	}

	return breaker
}

// NewAPIClient creates the backend client. m may be nil.
func NewAPIClient(cfg *config.Config, tokens service.TokenStore, m *metrics.Metrics, logger *slog.Logger) *api.Client {
	var opts []api.Option
	if m != nil {
		opts = append(opts, api.WithMetrics(m), api.WithBreakerObserver(m))
	}

	return api.NewClient(api.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
		Breaker: BreakerConfig(cfg),
	}, tokens, logger, opts...)
}

// NewBackend exposes the client through the interface the usecases consume.
func NewBackend(client *api.Client) impl.Backend {
	return client
}

// NewCatalog picks the network or the offline catalog.
func NewCatalog(
	cfg *config.Config,
	backend impl.Backend,
	session *impl.Session,
	store repository.KeyValueRepository,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	if cfg.Offline() {
		logger.Info("[App] Using offline catalog", slog.String("bucket", cfg.Storage.BucketURL))

		return impl.NewLocalCatalogService(store, logger)
	}

	return impl.NewRemoteCatalogService(backend, session, logger)
}

// NewQRCodeService creates the QR renderer, using defaults when unconfigured.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// NewStorefront creates the storefront usecase for the configured URL.
func NewStorefront(
	cfg *config.Config,
	catalog usecase.CatalogUsecase,
	qr service.QRCodeService,
	logger *slog.Logger,
) usecase.StorefrontUsecase {
	return impl.NewStorefrontService(catalog, qr, cfg.Storefront.URL, logger)
}

// App is the fully wired graph the CLI works with.
type App struct {
	Config     *config.Config
	Logger     *slog.Logger
	Bucket     *blob.Bucket
	Catalog    usecase.CatalogUsecase
	Sessions   usecase.SessionUsecase
	Sync       usecase.SyncUsecase
	Storefront usecase.StorefrontUsecase
}

// Build wires everything without a DI container. Close releases the bucket.
func Build(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	bucket, err := NewBucket(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store := NewStore(bucket, logger)
	tokens := NewTokenStore(store, logger)
	backend := NewBackend(NewAPIClient(cfg, tokens, nil, logger))
	session := impl.NewSession(backend, logger)
	catalog := NewCatalog(cfg, backend, session, store, logger)

	return &App{
		Config:     cfg,
		Logger:     logger,
		Bucket:     bucket,
		Catalog:    catalog,
		Sessions:   impl.NewSessionService(backend, tokens, session, logger),
		Sync:       impl.NewSyncService(catalog, logger),
		Storefront: NewStorefront(cfg, catalog, NewQRCodeService(cfg), logger),
	}, nil
}

// Close releases what Build opened.
func (a *App) Close() error {
	return a.Bucket.Close()
}
