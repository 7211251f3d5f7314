package model

import (
	"time"
)

type AvailabilityType string

const (
	AvailabilityPickup   AvailabilityType = "pickup"
	AvailabilityDelivery AvailabilityType = "delivery"
)

// ProxyMargin is the margin assumed for every backend offer, since the backend does not report one.
const ProxyMargin = 100.0

// GuardFields are the values the guard filter decides on.
type GuardFields struct {
	Margin           *float64
	TrustScore       int
	ETAMinutes       int
	DistanceMiles    float64
	AvailabilityType AvailabilityType
	InStock          bool
	IsEligible       bool
}

// Offer is a locally stored availability snapshot of a product at a store.
type Offer struct {
	ID               string           `json:"id"`
	ProductID        string           `json:"product_id"`
	StoreID          string           `json:"store_id"`
	Price            string           `json:"price"`
	Currency         string           `json:"currency"`
	AvailabilityType AvailabilityType `json:"availability_type"`
	ETA              string           `json:"eta"`
	ETAMinutes       int              `json:"eta_minutes"`
	Distance         string           `json:"distance"`
	DistanceMiles    float64          `json:"distance_miles"`
	InStock          bool             `json:"in_stock"`
	StockLevel       *int             `json:"stock_level,omitempty"`
	LastSeen         time.Time        `json:"last_seen"`
	DeepLink         *string          `json:"deep_link,omitempty"`
	Margin           *float64         `json:"margin,omitempty"`
	TrustScore       int              `json:"trust_score"`
	IsEligible       bool             `json:"is_eligible"`
}

func (o Offer) GuardFields() GuardFields {
	return GuardFields{
		Margin:           o.Margin,
		TrustScore:       o.TrustScore,
		ETAMinutes:       o.ETAMinutes,
		DistanceMiles:    o.DistanceMiles,
		AvailabilityType: o.AvailabilityType,
		InStock:          o.InStock,
		IsEligible:       o.IsEligible,
	}
}

// View joins the offer with its store into the response shape.
func (o Offer) View(store *Store) OfferView {
	return OfferView{
		ID:               o.ID,
		StoreName:        store.Name,
		StoreChain:       store.Chain,
		Address:          store.FullAddress(),
		Distance:         o.Distance,
		DistanceMiles:    o.DistanceMiles,
		AvailabilityType: o.AvailabilityType,
		ETA:              o.ETA,
		ETAMinutes:       o.ETAMinutes,
		Price:            o.Price,
		Currency:         o.Currency,
		LastSeen:         o.LastSeen.UTC(),
		DeepLink:         o.DeepLink,
		InStock:          o.InStock,
		StockLevel:       o.StockLevel,
	}
}

// ProxyOffer is an offer normalized from the inventory backend. It has no store row behind it;
// store name and chain come from the upstream payload, and the guard values are assumptions
// made during normalization rather than data verified against a store.
type ProxyOffer struct {
	ID               string
	StoreName        string
	StoreChain       string
	Address          string
	Price            string
	Currency         string
	AvailabilityType AvailabilityType
	ETA              string
	ETAMinutes       int
	Distance         string
	DistanceMiles    float64
	LastSeen         time.Time
	DeepLink         *string

	InStock    bool
	IsEligible bool
	Margin     float64
	TrustScore int
}

func (o ProxyOffer) GuardFields() GuardFields {
	margin := o.Margin
	return GuardFields{
		Margin:           &margin,
		TrustScore:       o.TrustScore,
		ETAMinutes:       o.ETAMinutes,
		DistanceMiles:    o.DistanceMiles,
		AvailabilityType: o.AvailabilityType,
		InStock:          o.InStock,
		IsEligible:       o.IsEligible,
	}
}

// View drops the guard-only fields, which the response schema does not expose.
func (o ProxyOffer) View() OfferView {
	return OfferView{
		ID:               o.ID,
		StoreName:        o.StoreName,
		StoreChain:       o.StoreChain,
		Address:          o.Address,
		Distance:         o.Distance,
		DistanceMiles:    o.DistanceMiles,
		AvailabilityType: o.AvailabilityType,
		ETA:              o.ETA,
		ETAMinutes:       o.ETAMinutes,
		Price:            o.Price,
		Currency:         o.Currency,
		LastSeen:         o.LastSeen.UTC(),
		DeepLink:         o.DeepLink,
		InStock:          o.InStock,
	}
}

// OfferView is an offer as returned to the extension.
type OfferView struct {
	ID               string           `json:"id"`
	StoreName        string           `json:"storeName"`
	StoreChain       string           `json:"storeChain"`
	Address          string           `json:"address"`
	Distance         string           `json:"distance"`
	DistanceMiles    float64          `json:"distanceMiles"`
	AvailabilityType AvailabilityType `json:"availabilityType"`
	ETA              string           `json:"eta"`
	ETAMinutes       int              `json:"etaMinutes"`
	Price            string           `json:"price"`
	Currency         string           `json:"currency"`
	LastSeen         time.Time        `json:"lastSeen"`
	DeepLink         *string          `json:"deepLink,omitempty"`
	InStock          bool             `json:"inStock"`
	StockLevel       *int             `json:"stockLevel,omitempty"`
}
