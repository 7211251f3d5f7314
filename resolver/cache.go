package resolver

import (
	"context"
	"time"

	"encore.dev/cron"
	"encore.dev/rlog"
)

type ClearCacheResponse struct {
	Cleared bool `json:"cleared"`
	Removed int  `json:"removed"`
}

// ClearCache drops every cached resolve response. Calling it on an empty cache is fine.
//
//encore:api public path=/v1/cache/clear method=POST tag:requestlog
func (s *Service) ClearCache(ctx context.Context) (*ClearCacheResponse, error) {
	removed := s.cache.Clear()
	rlog.Info("resolve cache cleared", "removed", removed)
	return &ClearCacheResponse{Cleared: true, Removed: removed}, nil
}

var _ = cron.NewJob("sweep-resolve-cache", cron.JobConfig{
	Title:    "Sweep expired resolve cache entries",
	Every:    1 * cron.Minute,
	Endpoint: SweepCache,
})

//encore:api private method=POST path=/internal/cache/sweep
func SweepCache(ctx context.Context) error {
	removed := responseCache.Sweep(time.Now())
	if removed > 0 {
		rlog.Debug("resolve cache swept", "removed", removed, "remaining", responseCache.Len())
	}
	return nil
}
