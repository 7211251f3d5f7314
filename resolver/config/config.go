package config

import (
	_ "embed"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"pickup.app/resolver/guard"
)

//go:embed config.yaml
var defaultFile []byte

type Root struct {
	Env   string `yaml:"env"`
	Local Config `yaml:"local"`
	Dev   Config `yaml:"dev"`
	Prod  Config `yaml:"prod"`
}

type Config struct {
	Env string `yaml:"-"`

	Guard struct {
		MinMargin        float64 `yaml:"min_margin"`
		MinTrustScore    int     `yaml:"min_trust_score"`
		MaxETAMinutes    int     `yaml:"max_eta_minutes"`
		MaxDistanceMiles float64 `yaml:"max_distance_miles"`
	} `yaml:"guard"`

	Cache struct {
		TTLSeconds int `yaml:"ttl_seconds"`
	} `yaml:"cache"`

	Backend BackendConfig `yaml:"backend"`

	Activity struct {
		DefaultLimit int `yaml:"default_limit"`
		MaxLimit     int `yaml:"max_limit"`
	} `yaml:"activity"`
}

type BackendConfig struct {
	Enabled           bool    `yaml:"enabled"`
	BaseURL           string  `yaml:"base_url"`
	PrimaryPath       string  `yaml:"primary_path"`
	FallbackPath      string  `yaml:"fallback_path"`
	TimeoutSeconds    int     `yaml:"timeout_seconds"`
	BudgetSeconds     int     `yaml:"budget_seconds"`
	RadiusKM          float64 `yaml:"radius_km"`
	Retries           int     `yaml:"retries"`
	Concurrency       int     `yaml:"concurrency"`
	RatePerSecond     float64 `yaml:"rate_per_second"`
	Burst             int     `yaml:"burst"`
	DefaultConfidence float64 `yaml:"default_confidence"`
}

func (c *Config) GuardConfig() guard.Config {
	return guard.Config{
		MinMargin:        c.Guard.MinMargin,
		MinTrustScore:    c.Guard.MinTrustScore,
		MaxETAMinutes:    c.Guard.MaxETAMinutes,
		MaxDistanceMiles: c.Guard.MaxDistanceMiles,
	}
}

func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Cache.TTLSeconds) * time.Second
}

func (b BackendConfig) Timeout() time.Duration {
	return time.Duration(b.TimeoutSeconds) * time.Second
}

// Budget bounds one whole backend lookup, across candidate ids, paths and retries.
func (b BackendConfig) Budget() time.Duration {
	return time.Duration(b.BudgetSeconds) * time.Second
}

// Default loads the embedded config for env, falling back to the env named in the file.
func Default(env string) (*Config, error) {
	return Load(defaultFile, env)
}

func Load(b []byte, env string) (*Config, error) {
	// guard thresholds are seeded before decoding so an explicit zero in the file survives
	root := Root{Local: newProfile(), Dev: newProfile(), Prod: newProfile()}
	if err := yaml.Unmarshal(b, &root); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	env = strings.TrimSpace(strings.ToLower(env))
	if env == "" {
		env = strings.TrimSpace(strings.ToLower(root.Env))
	}
	if env == "" {
		env = "local"
	}

	var p Config
	switch env {
	case "local":
		p = root.Local
	case "dev":
		p = root.Dev
	case "prod":
		p = root.Prod
	default:
		return nil, fmt.Errorf("unknown env=%q (expected local|dev|prod)", env)
	}
	p.Env = env

	if err := validateGuard(&p); err != nil {
		return nil, fmt.Errorf("%s profile: %w", env, err)
	}

	applyDefaults(&p)
	return &p, nil
}

func newProfile() Config {
	var p Config
	def := guard.DefaultConfig()
	p.Guard.MinMargin = def.MinMargin
	p.Guard.MinTrustScore = def.MinTrustScore
	p.Guard.MaxETAMinutes = def.MaxETAMinutes
	p.Guard.MaxDistanceMiles = def.MaxDistanceMiles
	return p
}

func validateGuard(p *Config) error {
	g := p.Guard
	switch {
	case g.MinMargin < 0:
		return fmt.Errorf("guard.min_margin must not be negative")
	case g.MinTrustScore < 0 || g.MinTrustScore > 100:
		return fmt.Errorf("guard.min_trust_score must be within 0..100")
	case g.MaxETAMinutes < 0:
		return fmt.Errorf("guard.max_eta_minutes must not be negative")
	case g.MaxDistanceMiles < 0:
		return fmt.Errorf("guard.max_distance_miles must not be negative")
	}
	return nil
}

func applyDefaults(p *Config) {

	if p.Cache.TTLSeconds <= 0 {
		p.Cache.TTLSeconds = 300
	}

	b := &p.Backend
	b.BaseURL = strings.TrimRight(strings.TrimSpace(b.BaseURL), "/")
	if b.PrimaryPath == "" {
		b.PrimaryPath = "/v1/offers"
	}
	if b.FallbackPath == "" {
		b.FallbackPath = "/v1/offers/nearby"
	}
	if b.TimeoutSeconds <= 0 {
		b.TimeoutSeconds = 5
	}
	if b.BudgetSeconds <= 0 {
		b.BudgetSeconds = 10
	}
	if b.RadiusKM <= 0 {
		b.RadiusKM = 40
	}
	if b.Retries < 0 {
		b.Retries = 0
	}
	if b.Concurrency <= 0 {
		b.Concurrency = 8
	}
	if b.RatePerSecond <= 0 {
		b.RatePerSecond = 20
	}
	if b.Burst <= 0 {
		b.Burst = int(b.RatePerSecond)
	}
	if b.DefaultConfidence <= 0 || b.DefaultConfidence > 1 {
		b.DefaultConfidence = 0.8
	}
	if b.BaseURL == "" {
		b.Enabled = false
	}

	if p.Activity.DefaultLimit <= 0 {
		p.Activity.DefaultLimit = 20
	}
	if p.Activity.MaxLimit <= 0 {
		p.Activity.MaxLimit = 100
	}
	if p.Activity.DefaultLimit > p.Activity.MaxLimit {
		p.Activity.DefaultLimit = p.Activity.MaxLimit
	}
}
