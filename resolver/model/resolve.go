package model

import (
	"encoding/json"
	"time"
)

// ResolveQuery is a validated resolve request as the business layer sees it.
type ResolveQuery struct {
	Identifiers Identifiers       `json:"identifiers"`
	Brand       string            `json:"brand,omitempty"`
	Title       string            `json:"title,omitempty"`
	Variant     string            `json:"variant,omitempty"`
	Price       string            `json:"price,omitempty"`
	Currency    string            `json:"currency,omitempty"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	Platform    string            `json:"platform"`
	URL         string            `json:"url"`
	ZIP         string            `json:"zip,omitempty"`
}

type ResolveResponse struct {
	Eligible  bool        `json:"eligible"`
	Offers    []OfferView `json:"offers"`
	Cached    bool        `json:"cached"`
	Timestamp time.Time   `json:"timestamp"`
}

// Ineligible builds the empty response returned when no offer survives.
func Ineligible(now time.Time) *ResolveResponse {
	return &ResolveResponse{
		Eligible:  false,
		Offers:    []OfferView{},
		Cached:    false,
		Timestamp: now.UTC(),
	}
}

// ResolveRecord is one audit entry for a resolve call.
type ResolveRecord struct {
	ID           string          `json:"id"`
	Query        ResolveQuery    `json:"query"`
	Response     json.RawMessage `json:"response,omitempty"`
	Success      bool            `json:"success"`
	ErrorMessage *string         `json:"error_message,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}
