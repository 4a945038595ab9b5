package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
	"time"
)

// Cache defines the interface for response caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// RequestKey generates a stable cache key for an API request from its URL
// and query parameters. Parameters are sorted so equivalent requests share
// a key regardless of map iteration order.
func RequestKey(url string, params map[string]string) string {
	var b strings.Builder
	b.WriteString(url)

	if len(params) > 0 {
		keys := make([]string, 0, len(params))
		for k := range params {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			b.WriteString("&")
			b.WriteString(k)
			b.WriteString("=")
			b.WriteString(params[k])
		}
	}

	hash := sha256.Sum256([]byte(b.String()))
	return "askengine:v1:" + hex.EncodeToString(hash[:])
}
