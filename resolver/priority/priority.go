package priority

import (
	"cmp"
	"math"
	"slices"
	"strconv"
	"strings"

	"pickup.app/resolver/model"
)

// Sort orders offers in place: pickup first, then by ETA, then by price.
// Equal offers keep their input order.
func Sort(offers []model.OfferView) {
	slices.SortStableFunc(offers, Compare)
}

func Compare(a, b model.OfferView) int {
	if c := cmp.Compare(availabilityRank(a.AvailabilityType), availabilityRank(b.AvailabilityType)); c != 0 {
		return c
	}
	if c := cmp.Compare(a.ETAMinutes, b.ETAMinutes); c != 0 {
		return c
	}
	return cmp.Compare(ParsePrice(a.Price), ParsePrice(b.Price))
}

// only pickup is privileged, every other type ties with delivery
func availabilityRank(t model.AvailabilityType) int {
	if t == model.AvailabilityPickup {
		return 0
	}
	return 1
}

// ParsePrice turns a display price such as "$1,234.50" into 1234.50.
// Prices without any number sort after all others.
func ParsePrice(s string) float64 {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil || math.IsNaN(v) {
		return math.Inf(1)
	}
	return v
}
