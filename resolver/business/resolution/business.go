package resolution

import (
	"context"
	"time"

	"pickup.app/resolver/business/catalog"
	"pickup.app/resolver/cache"
	"pickup.app/resolver/guard"
	"pickup.app/resolver/metrics"
	"pickup.app/resolver/model"
)

type Business interface {
	Resolve(ctx context.Context, q model.ResolveQuery) (*model.ResolveResponse, error)
}

// Fallback is consulted when no local offer survives the guards.
// It returns nil when it has nothing eligible; it never fails the request.
type Fallback interface {
	Resolve(ctx context.Context, q model.ResolveQuery) *model.ResolveResponse
}

type Options struct {
	Guard   guard.Config
	Metrics *metrics.Metrics
	Now     func() time.Time

	// FallbackBudget caps the total time one resolve may spend in the fallback. Zero means no cap.
	FallbackBudget time.Duration
}

// business runs the resolve pipeline over the catalog, the response cache and the fallback
type business struct {
	catalog  catalog.Business
	cache    cache.Cache
	fallback Fallback
	budget   time.Duration
	guard    guard.Config
	metrics  *metrics.Metrics
	now      func() time.Time
}

// NewResolutionBusiness creates the resolution business layer. fallback may be nil.
func NewResolutionBusiness(catalog catalog.Business, c cache.Cache, fallback Fallback, opts Options) Business {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &business{
		catalog:  catalog,
		cache:    c,
		fallback: fallback,
		budget:   opts.FallbackBudget,
		guard:    opts.Guard,
		metrics:  opts.Metrics,
		now:      opts.Now,
	}
}
