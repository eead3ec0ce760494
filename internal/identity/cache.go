package identity

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// CachingProvider keeps recently resolved identities in redis so hot tokens
// skip the provider round-trip. Cache failures are ignored; the wrapped
// provider is always the source of truth. Only successful resolutions are
// cached, so a revoked token stops working once its entry expires.
type CachingProvider struct {
	next   Provider
	client *redis.Client
	ttl    time.Duration
}

func NewCachingProvider(next Provider, addr, password string, ttl time.Duration) *CachingProvider {
	c := redis.NewClient(&redis.Options{Addr: addr, Password: password})
	return &CachingProvider{next: next, client: c, ttl: ttl}
}

func (p *CachingProvider) Resolve(ctx context.Context, token string) (Identity, error) {
	key := cacheKey(token)

	if raw, err := p.client.Get(ctx, key).Result(); err == nil {
		var ident Identity
		if err := json.Unmarshal([]byte(raw), &ident); err == nil && ident.ID != "" {
			return ident, nil
		}
	}

	ident, err := p.next.Resolve(ctx, token)
	if err != nil {
		return Identity{}, err
	}

	if raw, err := json.Marshal(ident); err == nil {
		_ = p.client.Set(ctx, key, raw, p.ttl).Err()
	}
	return ident, nil
}

// cacheKey hashes the token so raw credentials never land in redis.
func cacheKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "identity:token:" + hex.EncodeToString(sum[:])
}
