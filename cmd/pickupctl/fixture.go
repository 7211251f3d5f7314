package main

import (
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"pickup.app/resolver/model"
	"pickup.app/resolver/store/convert"
	"pickup.app/resolver/store/offers"
	"pickup.app/resolver/store/products"
	"pickup.app/resolver/store/stores"
)

// Fixture is a product with the stores and offers that carry it.
type Fixture struct {
	Product FixtureProduct `yaml:"product"`
	Stores  []FixtureStore `yaml:"stores"`
	Offers  []FixtureOffer `yaml:"offers"`
}

type FixtureProduct struct {
	ID       string `yaml:"id"`
	GTIN     string `yaml:"gtin"`
	UPC      string `yaml:"upc"`
	EAN      string `yaml:"ean"`
	ASIN     string `yaml:"asin"`
	SKU      string `yaml:"sku"`
	Brand    string `yaml:"brand"`
	Title    string `yaml:"title"`
	Variant  string `yaml:"variant"`
	Price    string `yaml:"price"`
	Currency string `yaml:"currency"`
	Platform string `yaml:"platform"`
	URL      string `yaml:"url"`
}

type FixtureStore struct {
	ID      string   `yaml:"id"`
	Name    string   `yaml:"name"`
	Chain   string   `yaml:"chain"`
	Address string   `yaml:"address"`
	City    string   `yaml:"city"`
	State   string   `yaml:"state"`
	ZIP     string   `yaml:"zip"`
	Lat     *float64 `yaml:"lat"`
	Lon     *float64 `yaml:"lon"`
	Phone   string   `yaml:"phone"`
	Active  *bool    `yaml:"active"`
}

type FixtureOffer struct {
	ID            string   `yaml:"id"`
	Store         string   `yaml:"store"`
	Price         string   `yaml:"price"`
	Currency      string   `yaml:"currency"`
	Availability  string   `yaml:"availability"`
	ETAMinutes    int      `yaml:"eta_minutes"`
	DistanceMiles float64  `yaml:"distance_miles"`
	InStock       *bool    `yaml:"in_stock"`
	StockLevel    *int     `yaml:"stock_level"`
	DeepLink      string   `yaml:"deep_link"`
	Margin        *float64 `yaml:"margin"`
	TrustScore    int      `yaml:"trust_score"`
	Eligible      *bool    `yaml:"eligible"`
}

func LoadFixture(r io.Reader) (*Fixture, error) {
	var f Fixture
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *Fixture) validate() error {
	p := f.Product
	if p.GTIN == "" && p.UPC == "" && p.EAN == "" && p.ASIN == "" && p.SKU == "" {
		return fmt.Errorf("product needs at least one identifier")
	}

	known := make(map[string]struct{}, len(f.Stores))
	for i, s := range f.Stores {
		if s.ID == "" {
			return fmt.Errorf("stores[%d]: id is required", i)
		}
		known[s.ID] = struct{}{}
	}

	for i, o := range f.Offers {
		if o.ID == "" {
			return fmt.Errorf("offers[%d]: id is required", i)
		}
		if _, ok := known[o.Store]; !ok {
			return fmt.Errorf("offers[%d]: unknown store %q", i, o.Store)
		}
		switch model.AvailabilityType(o.Availability) {
		case model.AvailabilityPickup, model.AvailabilityDelivery:
		default:
			return fmt.Errorf("offers[%d]: availability must be pickup or delivery, got %q", i, o.Availability)
		}
		if o.TrustScore < 0 || o.TrustScore > 100 {
			return fmt.Errorf("offers[%d]: trust_score must be within 0..100", i)
		}
	}
	return nil
}

func (p FixtureProduct) query() model.ResolveQuery {
	return model.ResolveQuery{
		Identifiers: model.Identifiers{
			GTIN: p.GTIN,
			UPC:  p.UPC,
			EAN:  p.EAN,
			ASIN: p.ASIN,
			SKU:  p.SKU,
		},
		Brand:    p.Brand,
		Title:    p.Title,
		Variant:  p.Variant,
		Price:    p.Price,
		Currency: p.Currency,
		Platform: p.Platform,
		URL:      p.URL,
	}
}

func (p FixtureProduct) lookupParams() products.GetProductByIdentifiersParams {
	return convert.ProductLookup(p.query().Identifiers)
}

// createParams keeps the fixture id when set so reseeding stays stable.
func (p FixtureProduct) createParams() products.CreateProductParams {
	return convert.NewProduct(p.ID, p.query(), nil)
}

func (s FixtureStore) toModel() model.Store {
	store := model.Store{
		ID:      s.ID,
		Name:    s.Name,
		Chain:   s.Chain,
		Address: s.Address,
		City:    s.City,
		State:   s.State,
		ZIP:     s.ZIP,
		Lat:     s.Lat,
		Lon:     s.Lon,
		Active:  boolOr(s.Active, true),
	}
	if s.Phone != "" {
		store.Phone = &s.Phone
	}
	return store
}

func (s FixtureStore) params() stores.UpsertStoreParams {
	return convert.UpsertStore(s.toModel())
}

func (o FixtureOffer) toModel(productID string) model.Offer {
	offer := model.Offer{
		ID:               o.ID,
		ProductID:        productID,
		StoreID:          o.Store,
		Price:            o.Price,
		Currency:         o.Currency,
		AvailabilityType: model.AvailabilityType(o.Availability),
		ETA:              model.FormatETA(o.ETAMinutes),
		ETAMinutes:       o.ETAMinutes,
		Distance:         model.FormatMiles(o.DistanceMiles),
		DistanceMiles:    o.DistanceMiles,
		InStock:          boolOr(o.InStock, true),
		StockLevel:       o.StockLevel,
		Margin:           o.Margin,
		TrustScore:       o.TrustScore,
		IsEligible:       boolOr(o.Eligible, true),
	}
	if o.DeepLink != "" {
		offer.DeepLink = &o.DeepLink
	}
	return offer
}

func (o FixtureOffer) params(productID string, now time.Time) offers.UpsertOfferParams {
	return convert.UpsertOffer(o.toModel(productID), now)
}

func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}
