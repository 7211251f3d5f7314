package catalog

import (
	"context"

	"pickup.app/resolver/model"
	"pickup.app/resolver/store/offers"
	"pickup.app/resolver/store/products"
	"pickup.app/resolver/store/requests"
	"pickup.app/resolver/store/stores"
)

type Business interface {
	FindOrCreateProduct(ctx context.Context, q model.ResolveQuery) (*model.Product, error)
	ListOffers(ctx context.Context, productID string) ([]model.Offer, error)
	GetStore(ctx context.Context, id string) (*model.Store, error)

	RecordRequest(ctx context.Context, record *model.ResolveRecord) error
	RecentRequests(ctx context.Context, limit int) ([]model.ResolveRecord, error)
}

// business reads and writes the product catalog and the resolve audit log
type business struct {
	productRepo products.Querier
	storeRepo   stores.Querier
	offerRepo   offers.Querier
	requestRepo requests.Querier
}

// NewCatalogBusiness creates the catalog business layer
func NewCatalogBusiness(
	productRepo products.Querier,
	storeRepo stores.Querier,
	offerRepo offers.Querier,
	requestRepo requests.Querier,
) Business {
	return &business{
		productRepo: productRepo,
		storeRepo:   storeRepo,
		offerRepo:   offerRepo,
		requestRepo: requestRepo,
	}
}
