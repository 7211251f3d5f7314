package resolution

import (
	"context"
	"fmt"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"pickup.app/resolver/cache"
	"pickup.app/resolver/guard"
	"pickup.app/resolver/metrics"
	"pickup.app/resolver/model"
	"pickup.app/resolver/priority"
)

// Resolve answers a query from the cache, the local catalog or the fallback, in that order.
// Only positive responses are cached. Every call leaves exactly one audit record.
func (b *business) Resolve(ctx context.Context, q model.ResolveQuery) (*model.ResolveResponse, error) {
	start := b.now()
	key := cache.Fingerprint(q)

	if entry, ok := b.cache.Get(key); ok {
		resp := entry.Response
		resp.Cached = true
		rlog.Info("resolve completed", "outcome", metrics.OutcomeCached, "fingerprint", key)
		b.audit(q, &resp, nil)
		b.metrics.RecordResolution(metrics.OutcomeCached, b.now().Sub(start))
		return &resp, nil
	}

	resp, outcome, err := b.resolve(ctx, q)
	if err != nil {
		rlog.Error("resolve failed", "fingerprint", key, "platform", q.Platform, "url", q.URL, "error", err)
		b.audit(q, nil, err)
		b.metrics.RecordResolution(metrics.OutcomeError, b.now().Sub(start))
		return nil, &errs.Error{Code: errs.Internal, Message: "internal server error"}
	}

	if resp.Eligible {
		b.cache.Set(key, *resp, b.now())
	}
	b.audit(q, resp, nil)
	b.metrics.RecordResolution(outcome, b.now().Sub(start))

	rlog.Info("resolve completed",
		"outcome", outcome,
		"fingerprint", key,
		"platform", q.Platform,
		"offers", len(resp.Offers),
	)
	return resp, nil
}

func (b *business) resolve(ctx context.Context, q model.ResolveQuery) (*model.ResolveResponse, string, error) {
	product, err := b.catalog.FindOrCreateProduct(ctx, q)
	if err != nil {
		return nil, "", fmt.Errorf("find product: %w", err)
	}

	offers, err := b.catalog.ListOffers(ctx, product.ID)
	if err != nil {
		return nil, "", fmt.Errorf("list offers for %s: %w", product.ID, err)
	}

	views, err := b.withStores(ctx, guard.Filter(b.guard, offers))
	if err != nil {
		return nil, "", err
	}

	if len(views) > 0 {
		priority.Sort(views)
		return &model.ResolveResponse{
			Eligible:  true,
			Offers:    views,
			Cached:    false,
			Timestamp: b.now().UTC(),
		}, metrics.OutcomeLocal, nil
	}

	if resp := b.resolveFallback(ctx, q); resp != nil && resp.Eligible && len(resp.Offers) > 0 {
		resp.Cached = false
		return resp, metrics.OutcomeBackend, nil
	}

	return model.Ineligible(b.now()), metrics.OutcomeIneligible, nil
}

func (b *business) resolveFallback(ctx context.Context, q model.ResolveQuery) *model.ResolveResponse {
	if b.fallback == nil {
		return nil
	}
	if b.budget > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.budget)
		defer cancel()
	}
	return b.fallback.Resolve(ctx, q)
}

// withStores joins each offer with its store. Offers whose store is missing or inactive are dropped.
func (b *business) withStores(ctx context.Context, offers []model.Offer) ([]model.OfferView, error) {
	views := make([]model.OfferView, 0, len(offers))
	stores := make(map[string]*model.Store)

	for _, offer := range offers {
		store, seen := stores[offer.StoreID]
		if !seen {
			var err error
			store, err = b.catalog.GetStore(ctx, offer.StoreID)
			if err != nil && errs.Code(err) != errs.NotFound {
				return nil, fmt.Errorf("get store %s: %w", offer.StoreID, err)
			}
			if store != nil && !store.Active {
				store = nil
			}
			stores[offer.StoreID] = store
		}
		if store == nil {
			rlog.Debug("offer dropped, store unavailable", "offer_id", offer.ID, "store_id", offer.StoreID)
			continue
		}
		views = append(views, offer.View(store))
	}
	return views, nil
}
