package resolver

import (
	"time"

	"encore.dev"
	"encore.dev/rlog"
	"encore.dev/storage/sqldb"

	"pickup.app/resolver/business"
	"pickup.app/resolver/business/resolution"
	"pickup.app/resolver/cache"
	"pickup.app/resolver/config"
	"pickup.app/resolver/metrics"
	"pickup.app/resolver/proxy"
	"pickup.app/resolver/store"
)

var resolverDB = sqldb.NewDatabase("resolver", sqldb.DatabaseConfig{
	Migrations: "./migrations",
})

var secrets struct {
	InventoryAPIKey string
}

var cfg = mustLoadConfig()

// responseCache lives at package level so the sweep cron endpoint can reach it.
var responseCache = cache.NewMemory(cfg.CacheTTL(), nil)

//encore:service
type Service struct {
	business business.Businesses
	cache    cache.Cache
	metrics  *metrics.Metrics
	config   *config.Config
	now      func() time.Time
}

func initService() (*Service, error) {
	pgxdb := sqldb.Driver(resolverDB)

	rlog.Info("Initializing Store", "env", cfg.Env)
	repo := store.NewStore(pgxdb)

	m := metrics.New()

	var fallback resolution.Fallback
	if cfg.Backend.Enabled {
		fallback = newBackendAdapter(cfg, m)
		rlog.Info("inventory backend enabled", "base_url", cfg.Backend.BaseURL)
	} else {
		rlog.Info("inventory backend disabled")
	}

	businesses := business.NewBusinesses(repo, responseCache, fallback, resolution.Options{
		Guard:          cfg.GuardConfig(),
		Metrics:        m,
		FallbackBudget: cfg.Backend.Budget(),
	})

	return &Service{
		business: businesses,
		cache:    responseCache,
		metrics:  m,
		config:   cfg,
		now:      time.Now,
	}, nil
}

func newBackendAdapter(cfg *config.Config, m *metrics.Metrics) *proxy.Adapter {
	b := cfg.Backend
	transport := proxy.NewTransport(proxy.TransportOptions{
		Timeout:       b.Timeout(),
		Retries:       b.Retries,
		Concurrency:   b.Concurrency,
		RatePerSecond: b.RatePerSecond,
		Burst:         b.Burst,
	})
	client := proxy.NewClient(transport, proxy.ClientOptions{
		BaseURL:      b.BaseURL,
		PrimaryPath:  b.PrimaryPath,
		FallbackPath: b.FallbackPath,
		APIKey:       secrets.InventoryAPIKey,
		Metrics:      m,
	})
	return proxy.NewAdapter(client, proxy.AdapterOptions{
		Guard:             cfg.GuardConfig(),
		RadiusKM:          b.RadiusKM,
		DefaultConfidence: b.DefaultConfidence,
	})
}

func mustLoadConfig() *config.Config {
	c, err := config.Default(configEnv(encore.Meta().Environment.Type))
	if err != nil {
		panic(err)
	}
	return c
}

// configEnv maps the Encore environment type onto a config profile.
func configEnv(t encore.EnvironmentType) string {
	switch t {
	case encore.EnvProduction:
		return "prod"
	case encore.EnvDevelopment, encore.EnvEphemeral:
		return "dev"
	default:
		return "local"
	}
}
