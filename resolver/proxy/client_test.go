package proxy

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pickup.app/resolver/metrics"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, apiKey string) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(NewTransport(TransportOptions{Timeout: time.Second}), ClientOptions{
		BaseURL:      srv.URL,
		PrimaryPath:  "/v1/offers",
		FallbackPath: "/v1/offers/nearby",
		APIKey:       apiKey,
		Metrics:      metrics.New(),
	})
}

func TestClientByZIP(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/offers", r.URL.Path)
		assert.Empty(t, r.Header.Get(apiKeyHeader), "primary path is unauthenticated")

		var q zipQuery
		require.NoError(t, json.NewDecoder(r.Body).Decode(&q))
		assert.Equal(t, "asin::B0BXQBHL5D", q.ProductID)
		assert.Equal(t, "10001", q.ZIP)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"offers":[{"store":{"name":"Target Chelsea","retailer":"target"},"distance_km":1.5,"price_cents":32999,"confidence":0.9,"pickup":{"available":true,"eta_min":60}}]}`))
	}, "secret")

	offers, err := client.ByZIP(context.Background(), "asin::B0BXQBHL5D", "10001")

	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Equal(t, "Target Chelsea", offers[0].Store.Name)
	assert.Equal(t, int64(32999), *offers[0].PriceCents)
	assert.Equal(t, 60, *offers[0].Pickup.ETAMin)
	assert.Nil(t, offers[0].Delivery)
}

func TestClientNearby(t *testing.T) {
	testCases := []struct {
		name       string
		apiKey     string
		expectedID string
	}{
		{name: "with_api_key", apiKey: "secret", expectedID: "secret"},
		{name: "without_api_key", apiKey: "", expectedID: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v1/offers/nearby", r.URL.Path)
				assert.Equal(t, tc.expectedID, r.Header.Get(apiKeyHeader))

				var q nearbyQuery
				require.NoError(t, json.NewDecoder(r.Body).Decode(&q))
				assert.Equal(t, 40.7506, q.Lat)
				assert.Equal(t, -73.9972, q.Lon)
				assert.Equal(t, 40.0, q.RadiusKM)

				_, _ = w.Write([]byte(`{"offers":[]}`))
			}, tc.apiKey)

			offers, err := client.Nearby(context.Background(), "B0BXQBHL5D", 40.7506, -73.9972, 40)
			require.NoError(t, err)
			assert.Empty(t, offers)
		})
	}
}

func TestClientErrors(t *testing.T) {
	testCases := []struct {
		name          string
		handler       http.HandlerFunc
		expectedError string
	}{
		{
			name: "server_error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			expectedError: "status=502",
		},
		{
			name: "not_found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			expectedError: "status=404",
		},
		{
			name: "malformed_body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"offers":`))
			},
			expectedError: "decode",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, tc.handler, "")

			offers, err := client.ByZIP(context.Background(), "B0BXQBHL5D", "10001")

			assert.Error(t, err)
			assert.Contains(t, err.Error(), tc.expectedError)
			assert.Nil(t, offers)
		})
	}
}

func TestClientTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	client := NewClient(NewTransport(TransportOptions{Timeout: 50 * time.Millisecond}), ClientOptions{
		BaseURL:     srv.URL,
		PrimaryPath: "/v1/offers",
	})

	start := time.Now()
	_, err := client.ByZIP(context.Background(), "B0BXQBHL5D", "10001")

	assert.Error(t, err)
	assert.Less(t, time.Since(start), time.Second)
}

func TestTransportRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var q zipQuery
		_ = json.NewDecoder(r.Body).Decode(&q)
		assert.Equal(t, "B0BXQBHL5D", q.ProductID, "body is replayed on retry")

		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"offers":[{"price":"$1.00","pickup":{"available":true}}]}`))
	}))
	defer srv.Close()

	client := NewClient(NewTransport(TransportOptions{
		Timeout:   time.Second,
		Retries:   2,
		BaseDelay: time.Millisecond,
		MaxDelay:  5 * time.Millisecond,
	}), ClientOptions{BaseURL: srv.URL, PrimaryPath: "/v1/offers"})

	offers, err := client.ByZIP(context.Background(), "B0BXQBHL5D", "10001")

	require.NoError(t, err)
	assert.Len(t, offers, 1)
	assert.Equal(t, int32(3), calls.Load())
}

func TestTransportRetriesExhausted(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	d := NewTransport(TransportOptions{Timeout: time.Second, Retries: 1, BaseDelay: time.Millisecond})
	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	require.NoError(t, err)

	_, err = d.Do(req)

	assert.ErrorContains(t, err, "retryable status=429")
	assert.Equal(t, int32(2), calls.Load())
}

func TestTransportConcurrencyLimit(t *testing.T) {
	var inFlight, peak atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(20 * time.Millisecond)
		inFlight.Add(-1)
	}))
	defer srv.Close()

	d := NewTransport(TransportOptions{Timeout: time.Second, Concurrency: 2})

	done := make(chan struct{})
	for i := 0; i < 6; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			req, _ := http.NewRequest(http.MethodGet, srv.URL, nil)
			if resp, err := d.Do(req); err == nil {
				resp.Body.Close()
			}
		}()
	}
	for i := 0; i < 6; i++ {
		<-done
	}

	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestTransportRateLimitHonorsContext(t *testing.T) {
	d := NewTransport(TransportOptions{Timeout: time.Second, RatePerSecond: 0.001, Burst: 1})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	first, _ := http.NewRequest(http.MethodGet, srv.URL, nil)
	resp, err := d.Do(first)
	require.NoError(t, err)
	resp.Body.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	second, _ := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL, nil)

	_, err = d.Do(second)
	assert.ErrorContains(t, err, "rate limit wait")
}
