package resolver

import (
	"net/http"
)

// Metrics exposes the resolver counters in the Prometheus text format.
//
//encore:api public raw path=/metrics method=GET
func (s *Service) Metrics(w http.ResponseWriter, req *http.Request) {
	s.metrics.Handler().ServeHTTP(w, req)
}
