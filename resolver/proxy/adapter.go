package proxy

import (
	"context"
	"time"

	"encore.dev/rlog"

	"pickup.app/resolver/guard"
	"pickup.app/resolver/model"
	"pickup.app/resolver/priority"
)

// Backend is the inventory service as the adapter uses it.
type Backend interface {
	ByZIP(ctx context.Context, productID, zip string) ([]RawOffer, error)
	Nearby(ctx context.Context, productID string, lat, lon, radiusKM float64) ([]RawOffer, error)
}

type AdapterOptions struct {
	Guard             guard.Config
	RadiusKM          float64
	DefaultConfidence float64
	Now               func() time.Time
}

// Adapter resolves a query against the inventory backend when no local offer qualifies.
type Adapter struct {
	backend Backend
	opts    AdapterOptions
}

func NewAdapter(backend Backend, opts AdapterOptions) *Adapter {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.RadiusKM <= 0 {
		opts.RadiusKM = 40
	}
	if opts.DefaultConfidence <= 0 {
		opts.DefaultConfidence = 0.8
	}
	return &Adapter{backend: backend, opts: opts}
}

// Resolve returns an eligible response, or nil when the backend has nothing usable.
// Upstream failures are logged and reported as nil, never as an error.
func (a *Adapter) Resolve(ctx context.Context, q model.ResolveQuery) *model.ResolveResponse {
	ids := CandidateProductIDs(q.Identifiers)
	if len(ids) == 0 {
		return nil
	}

	coords, ok := LookupZIP(q.ZIP)
	if !ok {
		rlog.Debug("backend skipped, zip not geocoded", "zip", q.ZIP)
		return nil
	}

	raw, productID := a.queryPrimary(ctx, ids, q.ZIP)
	if len(raw) == 0 {
		raw, productID = a.queryFallback(ctx, ids, coords)
	}
	if len(raw) == 0 {
		return nil
	}

	now := a.opts.Now()
	n := normalizer{productID: productID, defaultConfidence: a.opts.DefaultConfidence, now: now}

	candidates := make([]model.ProxyOffer, 0, len(raw)*2)
	for _, r := range raw {
		candidates = append(candidates, n.normalize(r)...)
	}

	// the margin, trust and eligibility values are our own assumptions, so guard them again
	eligible := guard.Filter(a.opts.Guard, candidates)
	if len(eligible) == 0 {
		rlog.Debug("backend offers rejected by guards", "product_id", productID, "candidates", len(candidates))
		return nil
	}

	offers := make([]model.OfferView, 0, len(eligible))
	for _, o := range eligible {
		offers = append(offers, o.View())
	}
	priority.Sort(offers)

	return &model.ResolveResponse{
		Eligible:  true,
		Offers:    offers,
		Cached:    false,
		Timestamp: now.UTC(),
	}
}

func (a *Adapter) queryPrimary(ctx context.Context, ids []string, zip string) ([]RawOffer, string) {
	for _, id := range ids {
		offers, err := a.backend.ByZIP(ctx, id, zip)
		if err != nil {
			rlog.Warn("backend primary query failed", "product_id", id, "error", err)
			continue
		}
		if len(offers) > 0 {
			return offers, id
		}
	}
	return nil, ""
}

func (a *Adapter) queryFallback(ctx context.Context, ids []string, c Coordinates) ([]RawOffer, string) {
	for _, id := range ids {
		offers, err := a.backend.Nearby(ctx, id, c.Lat, c.Lon, a.opts.RadiusKM)
		if err != nil {
			rlog.Warn("backend fallback query failed", "product_id", id, "error", err)
			continue
		}
		if len(offers) > 0 {
			return offers, id
		}
	}
	return nil, ""
}

// CandidateProductIDs lists the product ids to try, composite forms first and global codes before asin.
func CandidateProductIDs(ids model.Identifiers) []string {
	codes := make([]string, 0, 3)
	for _, v := range []string{ids.GTIN, ids.UPC, ids.EAN} {
		if v != "" {
			codes = append(codes, v)
		}
	}

	seen := make(map[string]struct{})
	out := make([]string, 0, 2*(len(codes)+1))
	add := func(v string) {
		if _, ok := seen[v]; ok {
			return
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	for _, c := range codes {
		add("gtin::" + c)
	}
	if ids.ASIN != "" {
		add("asin::" + ids.ASIN)
	}
	for _, c := range codes {
		add(c)
	}
	if ids.ASIN != "" {
		add(ids.ASIN)
	}
	return out
}
