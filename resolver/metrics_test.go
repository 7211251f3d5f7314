package resolver

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"pickup.app/resolver/metrics"
)

func TestMetricsEndpoint(t *testing.T) {
	m := metrics.New()
	m.RecordResolution(metrics.OutcomeLocal, 20*time.Millisecond)

	service := &Service{metrics: m}

	rec := httptest.NewRecorder()
	service.Metrics(rec, httptest.NewRequest("GET", "/metrics", nil))

	assert.Equal(t, 200, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `pickup_resolutions_total{outcome="local"} 1`), body)
}
