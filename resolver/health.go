package resolver

import (
	"context"
	"time"
)

type CacheStats struct {
	Entries int `json:"entries"`
	// TTL in seconds.
	TTL int `json:"ttl"`
}

type HealthResponse struct {
	Status    string     `json:"status"`
	Timestamp time.Time  `json:"timestamp"`
	Cache     CacheStats `json:"cache"`
}

//encore:api public path=/v1/health method=GET
func (s *Service) Health(ctx context.Context) (*HealthResponse, error) {
	return &HealthResponse{
		Status:    "ok",
		Timestamp: s.now().UTC(),
		Cache: CacheStats{
			Entries: s.cache.Len(),
			TTL:     int(s.cache.TTL().Seconds()),
		},
	}, nil
}
