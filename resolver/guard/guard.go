package guard

import (
	"pickup.app/resolver/model"
)

// Config holds the business-quality thresholds an offer must meet.
type Config struct {
	MinMargin        float64
	MinTrustScore    int
	MaxETAMinutes    int
	MaxDistanceMiles float64
}

func DefaultConfig() Config {
	return Config{
		MinMargin:        30,
		MinTrustScore:    80,
		MaxETAMinutes:    480,
		MaxDistanceMiles: 50,
	}
}

// Candidate is anything the guard can judge: local offers and normalized backend offers.
type Candidate interface {
	GuardFields() model.GuardFields
}

// Allows reports whether a single offer passes every guard.
func (c Config) Allows(f model.GuardFields) bool {
	// an offer without a margin is not disqualified by it
	if f.Margin != nil && *f.Margin < c.MinMargin {
		return false
	}
	if f.TrustScore < c.MinTrustScore {
		return false
	}
	if f.ETAMinutes > c.MaxETAMinutes {
		return false
	}
	if f.AvailabilityType == model.AvailabilityPickup && f.DistanceMiles > c.MaxDistanceMiles {
		return false
	}
	return f.InStock && f.IsEligible
}

// Filter returns the offers that pass, in their original order.
func Filter[T Candidate](c Config, offers []T) []T {
	out := make([]T, 0, len(offers))
	for _, o := range offers {
		if c.Allows(o.GuardFields()) {
			out = append(out, o)
		}
	}
	return out
}
