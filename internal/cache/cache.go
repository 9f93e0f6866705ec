package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache stores fetched article pages and cross-reference search payloads so
// repeated analyses do not refetch or burn API quota.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// CacheKey hashes an identifier (a URL or a search query) into a stable,
// filesystem-safe key. The version segment lets a format change invalidate
// old entries.
func CacheKey(id string) string {
	hash := sha256.Sum256([]byte(id))
	return "fnd:v1:" + hex.EncodeToString(hash[:])
}
