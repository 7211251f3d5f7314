package proxy

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"pickup.app/resolver/model"
)

const milesPerKM = 0.621371

var (
	offerNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://pickup.app/backend-offer"))
	titleCaser     = cases.Title(language.English)
)

type normalizer struct {
	productID         string
	defaultConfidence float64
	now               time.Time
}

// normalize expands one raw offer into a pickup and/or a delivery offer.
func (n normalizer) normalize(raw RawOffer) []model.ProxyOffer {
	base := model.ProxyOffer{
		StoreName:  "Unknown Store",
		Currency:   model.DefaultCurrency,
		Price:      displayPrice(raw),
		LastSeen:   n.lastSeen(raw.LastChecked),
		InStock:    true,
		IsEligible: true,
		Margin:     model.ProxyMargin,
		TrustScore: n.trustScore(raw.Confidence),
	}
	if raw.Store != nil {
		if name := strings.TrimSpace(raw.Store.Name); name != "" {
			base.StoreName = name
		}
		base.StoreChain = chainName(raw.Store)
		base.Address = strings.TrimSpace(raw.Store.Address)
	}
	if raw.Currency != "" {
		base.Currency = strings.ToUpper(raw.Currency)
	}
	if raw.DistanceKM != nil {
		miles := math.Round(*raw.DistanceKM*milesPerKM*10) / 10
		base.DistanceMiles = miles
		base.Distance = model.FormatMiles(miles)
	}
	if link := firstNonEmpty(raw.DeepLink, raw.URL); link != "" {
		base.DeepLink = &link
	}

	out := make([]model.ProxyOffer, 0, 2)
	for _, ch := range []struct {
		kind    model.AvailabilityType
		channel *RawChannel
	}{
		{model.AvailabilityPickup, raw.Pickup},
		{model.AvailabilityDelivery, raw.Delivery},
	} {
		if ch.channel == nil || !ch.channel.Available {
			continue
		}
		o := base
		o.AvailabilityType = ch.kind
		if ch.channel.ETAMin != nil {
			o.ETAMinutes = *ch.channel.ETAMin
		}
		o.ETA = model.FormatETA(o.ETAMinutes)
		o.ID = n.offerID(raw, ch.kind)
		out = append(out, o)
	}
	return out
}

// offerID is stable for the same upstream offer so repeated lookups yield the same ids.
func (n normalizer) offerID(raw RawOffer, kind model.AvailabilityType) string {
	if raw.ID != "" {
		return fmt.Sprintf("%s-%s", raw.ID, kind)
	}
	var store string
	if raw.Store != nil {
		store = raw.Store.Name + "|" + raw.Store.Address
	}
	key := strings.Join([]string{n.productID, store, string(kind)}, "|")
	return uuid.NewSHA1(offerNamespace, []byte(key)).String()
}

func (n normalizer) trustScore(confidence *float64) int {
	c := n.defaultConfidence
	if confidence != nil {
		c = *confidence
	}
	c = math.Max(0, math.Min(1, c))
	return int(math.Round(c * 100))
}

func (n normalizer) lastSeen(s string) time.Time {
	if s != "" {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return t.UTC()
		}
	}
	return n.now.UTC()
}

func displayPrice(raw RawOffer) string {
	if raw.PriceCents != nil {
		return fmt.Sprintf("$%.2f", float64(*raw.PriceCents)/100)
	}
	return strings.TrimSpace(raw.Price)
}

// chainName prefers the retailer. All-lowercase names are title-cased, anything else is kept as sent.
func chainName(s *RawStore) string {
	name := strings.TrimSpace(firstNonEmpty(s.Retailer, s.Chain))
	if name != "" && name == strings.ToLower(name) {
		return titleCaser.String(name)
	}
	return name
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
