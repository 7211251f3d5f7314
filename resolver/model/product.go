package model

import (
	"time"
)

// Identifiers are the product codes scraped from a listing page. Any of them may be empty.
type Identifiers struct {
	GTIN string `json:"gtin,omitempty"`
	UPC  string `json:"upc,omitempty"`
	EAN  string `json:"ean,omitempty"`
	ASIN string `json:"asin,omitempty"`
	SKU  string `json:"sku,omitempty"`
}

// GlobalCode returns the first of gtin, upc and ean that is set.
func (i Identifiers) GlobalCode() string {
	switch {
	case i.GTIN != "":
		return i.GTIN
	case i.UPC != "":
		return i.UPC
	default:
		return i.EAN
	}
}

func (i Identifiers) IsEmpty() bool {
	return i.GTIN == "" && i.UPC == "" && i.EAN == "" && i.ASIN == "" && i.SKU == ""
}

type Product struct {
	ID          string            `json:"id"`
	Identifiers Identifiers       `json:"identifiers"`
	Brand       string            `json:"brand"`
	Title       string            `json:"title"`
	Variant     *string           `json:"variant,omitempty"`
	Price       *string           `json:"price,omitempty"`
	Currency    string            `json:"currency"`
	Platform    string            `json:"platform"`
	URL         string            `json:"url"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

const (
	UnknownBrand    = "Unknown Brand"
	UnknownTitle    = "Unknown Product"
	DefaultCurrency = "USD"
)
