package store

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"pickup.app/resolver/store/offers"
	"pickup.app/resolver/store/products"
	"pickup.app/resolver/store/requests"
	"pickup.app/resolver/store/stores"
)

// Store combines all domain-specific repositories
type Store struct {
	Products products.Querier
	Stores   stores.Querier
	Offers   offers.Querier
	Requests requests.Querier
}

// NewStore creates a new Store with all domain queriers
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{
		Products: products.New(db),
		Stores:   stores.New(db),
		Offers:   offers.New(db),
		Requests: requests.New(db),
	}
}
