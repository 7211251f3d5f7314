// Package convert maps between domain models and the sqlc query types. It carries no
// runtime dependencies so both the service and pickupctl can build rows the same way.
package convert

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"pickup.app/resolver/model"
	"pickup.app/resolver/store/offers"
	"pickup.app/resolver/store/products"
	"pickup.app/resolver/store/stores"
)

// ProductLookup matches a product on any of its identifiers.
func ProductLookup(ids model.Identifiers) products.GetProductByIdentifiersParams {
	return products.GetProductByIdentifiersParams{
		Gtin: Text(ids.GTIN),
		Upc:  Text(ids.UPC),
		Ean:  Text(ids.EAN),
		Asin: Text(ids.ASIN),
		Sku:  Text(ids.SKU),
	}
}

// NewProduct fills the placeholders for a product seen for the first time.
func NewProduct(id string, q model.ResolveQuery, attributes []byte) products.CreateProductParams {
	if id == "" {
		id = uuid.NewString()
	}
	if len(attributes) == 0 {
		attributes = []byte("{}")
	}
	return products.CreateProductParams{
		ID:         id,
		Gtin:       Text(q.Identifiers.GTIN),
		Upc:        Text(q.Identifiers.UPC),
		Ean:        Text(q.Identifiers.EAN),
		Asin:       Text(q.Identifiers.ASIN),
		Sku:        Text(q.Identifiers.SKU),
		Brand:      orDefault(q.Brand, model.UnknownBrand),
		Title:      orDefault(q.Title, model.UnknownTitle),
		Variant:    Text(q.Variant),
		Price:      Text(q.Price),
		Currency:   orDefault(q.Currency, model.DefaultCurrency),
		Platform:   q.Platform,
		Url:        q.URL,
		Attributes: attributes,
	}
}

// UpsertStore builds the row for s. An empty id gets a fresh one.
func UpsertStore(s model.Store) stores.UpsertStoreParams {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return stores.UpsertStoreParams{
		ID:      s.ID,
		Name:    s.Name,
		Chain:   s.Chain,
		Address: s.Address,
		City:    s.City,
		State:   s.State,
		Zip:     s.ZIP,
		Lat:     Float8Ptr(s.Lat),
		Lon:     Float8Ptr(s.Lon),
		Phone:   TextPtr(s.Phone),
		Active:  s.Active,
	}
}

// UpsertOffer builds the snapshot row for o. Missing id, currency and last-seen time are
// filled in, the latter with now.
func UpsertOffer(o model.Offer, now time.Time) offers.UpsertOfferParams {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.LastSeen.IsZero() {
		o.LastSeen = now
	}

	params := offers.UpsertOfferParams{
		ID:               o.ID,
		ProductID:        o.ProductID,
		StoreID:          o.StoreID,
		Price:            o.Price,
		Currency:         orDefault(o.Currency, model.DefaultCurrency),
		AvailabilityType: string(o.AvailabilityType),
		Eta:              o.ETA,
		EtaMinutes:       int32(o.ETAMinutes),
		Distance:         o.Distance,
		DistanceMiles:    o.DistanceMiles,
		InStock:          o.InStock,
		LastSeen:         pgtype.Timestamptz{Time: o.LastSeen, Valid: true},
		DeepLink:         TextPtr(o.DeepLink),
		Margin:           Float8Ptr(o.Margin),
		TrustScore:       int32(o.TrustScore),
		IsEligible:       o.IsEligible,
	}
	if o.StockLevel != nil {
		params.StockLevel = pgtype.Int4{Int32: int32(*o.StockLevel), Valid: true}
	}
	return params
}

func Store(row stores.Store) *model.Store {
	return &model.Store{
		ID:        row.ID,
		Name:      row.Name,
		Chain:     row.Chain,
		Address:   row.Address,
		City:      row.City,
		State:     row.State,
		ZIP:       row.Zip,
		Lat:       FloatOrNil(row.Lat),
		Lon:       FloatOrNil(row.Lon),
		Phone:     StringOrNil(row.Phone),
		Active:    row.Active,
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}
}

func Offer(row offers.Offer) *model.Offer {
	offer := &model.Offer{
		ID:               row.ID,
		ProductID:        row.ProductID,
		StoreID:          row.StoreID,
		Price:            row.Price,
		Currency:         row.Currency,
		AvailabilityType: model.AvailabilityType(row.AvailabilityType),
		ETA:              row.Eta,
		ETAMinutes:       int(row.EtaMinutes),
		Distance:         row.Distance,
		DistanceMiles:    row.DistanceMiles,
		InStock:          row.InStock,
		LastSeen:         row.LastSeen.Time,
		DeepLink:         StringOrNil(row.DeepLink),
		Margin:           FloatOrNil(row.Margin),
		TrustScore:       int(row.TrustScore),
		IsEligible:       row.IsEligible,
	}

	if row.StockLevel.Valid {
		level := int(row.StockLevel.Int32)
		offer.StockLevel = &level
	}

	return offer
}

// Text maps "" to NULL.
func Text(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: s, Valid: true}
}

func TextPtr(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return Text(*s)
}

func Float8Ptr(f *float64) pgtype.Float8 {
	if f == nil {
		return pgtype.Float8{}
	}
	return pgtype.Float8{Float64: *f, Valid: true}
}

func StringOrNil(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}

func FloatOrNil(f pgtype.Float8) *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Float64
	return &v
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
