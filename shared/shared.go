package shared

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"reserva/shared/cache"
)

const cacheKeySeparator = ":"

// BuildCacheKey joins the given parts into a namespaced cache key.
func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, cacheKeySeparator)
}

// InvalidateCaches clears every cache entry under the given prefix. Failures
// are logged and swallowed; stale cache entries expire on their own TTL.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+"*"); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate cache")
	}
}
