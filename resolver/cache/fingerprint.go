package cache

import (
	"crypto/md5"
	"encoding/hex"
	"strconv"
	"strings"

	"pickup.app/resolver/model"
)

// Fingerprint derives the cache key of a resolve query. Only the fields that change the ranked
// result take part: the global code (gtin, upc or ean), asin, platform, variant and ZIP.
// Title, brand, attributes and the page url do not.
//
// When neither a global code nor an asin is present the product is matched by sku, so the sku
// joins the key. Without a sku either, the page url stands in for the product identity.
func Fingerprint(q model.ResolveQuery) string {
	parts := []string{
		strings.TrimSpace(q.Identifiers.GlobalCode()),
		strings.TrimSpace(q.Identifiers.ASIN),
		strings.ToLower(strings.TrimSpace(q.Platform)),
		strings.TrimSpace(q.Variant),
		strings.TrimSpace(q.ZIP),
	}
	if parts[0] == "" && parts[1] == "" {
		if sku := strings.TrimSpace(q.Identifiers.SKU); sku != "" {
			parts = append(parts, "sku", sku)
		} else {
			parts = append(parts, "url", normalizeURL(q.URL))
		}
	}
	return hashing(keyMaterial(parts))
}

// keyMaterial length-prefixes every part so no separator inside a value can shift the tuple.
func keyMaterial(parts []string) []byte {
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(strconv.Itoa(len(p)))
		b.WriteByte(':')
		b.WriteString(p)
	}
	return []byte(b.String())
}

func normalizeURL(raw string) string {
	return strings.TrimRight(strings.ToLower(strings.TrimSpace(raw)), "/")
}

// hashing creates a stable hash of the key material
func hashing(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	hash := md5.New()
	hash.Write(body)
	return hex.EncodeToString(hash.Sum(nil))
}
