package proxy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"pickup.app/resolver/metrics"
)

const (
	apiKeyHeader = "X-API-Key"
	maxBodyBytes = 4 << 20

	pathPrimary  = "primary"
	pathFallback = "fallback"
)

type RawStore struct {
	Name     string `json:"name"`
	Retailer string `json:"retailer"`
	Chain    string `json:"chain"`
	Address  string `json:"address"`
}

type RawChannel struct {
	Available bool `json:"available"`
	ETAMin    *int `json:"eta_min"`
}

// RawOffer is one offer as the inventory backend reports it.
type RawOffer struct {
	ID          string      `json:"id"`
	Store       *RawStore   `json:"store"`
	DistanceKM  *float64    `json:"distance_km"`
	PriceCents  *int64      `json:"price_cents"`
	Price       string      `json:"price"`
	Currency    string      `json:"currency"`
	LastChecked string      `json:"last_checked"`
	DeepLink    string      `json:"deep_link"`
	URL         string      `json:"url"`
	Confidence  *float64    `json:"confidence"`
	Pickup      *RawChannel `json:"pickup"`
	Delivery    *RawChannel `json:"delivery"`
}

type offersResponse struct {
	Offers []RawOffer `json:"offers"`
}

type zipQuery struct {
	ProductID string `json:"product_id"`
	ZIP       string `json:"zip"`
}

type nearbyQuery struct {
	ProductID string  `json:"product_id"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	RadiusKM  float64 `json:"radius_km"`
}

type ClientOptions struct {
	BaseURL      string
	PrimaryPath  string
	FallbackPath string
	APIKey       string
	Metrics      *metrics.Metrics
}

// Client talks to the external inventory service.
type Client struct {
	doer Doer
	opts ClientOptions
}

func NewClient(doer Doer, opts ClientOptions) *Client {
	return &Client{doer: doer, opts: opts}
}

// ByZIP queries the primary path. It does not send credentials.
func (c *Client) ByZIP(ctx context.Context, productID, zip string) ([]RawOffer, error) {
	offers, err := c.post(ctx, c.opts.PrimaryPath, zipQuery{ProductID: productID, ZIP: zip}, false)
	c.record(pathPrimary, offers, err)
	return offers, err
}

// Nearby queries the fallback path by coordinates, with the API key when one is configured.
func (c *Client) Nearby(ctx context.Context, productID string, lat, lon, radiusKM float64) ([]RawOffer, error) {
	offers, err := c.post(ctx, c.opts.FallbackPath, nearbyQuery{
		ProductID: productID,
		Lat:       lat,
		Lon:       lon,
		RadiusKM:  radiusKM,
	}, true)
	c.record(pathFallback, offers, err)
	return offers, err
}

func (c *Client) post(ctx context.Context, path string, body any, withKey bool) ([]RawOffer, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if withKey && c.opts.APIKey != "" {
		req.Header.Set(apiKeyHeader, c.opts.APIKey)
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 32*1024))
		return nil, fmt.Errorf("post %s: status=%d", path, resp.StatusCode)
	}

	var out offersResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return out.Offers, nil
}

func (c *Client) record(path string, offers []RawOffer, err error) {
	switch {
	case err != nil:
		c.opts.Metrics.RecordBackendRequest(path, "error")
	case len(offers) == 0:
		c.opts.Metrics.RecordBackendRequest(path, "empty")
	default:
		c.opts.Metrics.RecordBackendRequest(path, "ok")
	}
}
