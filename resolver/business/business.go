package business

import (
	"pickup.app/resolver/business/catalog"
	"pickup.app/resolver/business/resolution"
	"pickup.app/resolver/cache"
	"pickup.app/resolver/store"
)

// Businesses holds all business layers
type Businesses struct {
	Catalog    catalog.Business
	Resolution resolution.Business
}

// NewBusinesses wires the business layers over the store. fallback may be nil.
func NewBusinesses(repo *store.Store, c cache.Cache, fallback resolution.Fallback, opts resolution.Options) Businesses {
	catalogBusiness := catalog.NewCatalogBusiness(repo.Products, repo.Stores, repo.Offers, repo.Requests)
	resolutionBusiness := resolution.NewResolutionBusiness(catalogBusiness, c, fallback, opts)

	return Businesses{
		Catalog:    catalogBusiness,
		Resolution: resolutionBusiness,
	}
}
