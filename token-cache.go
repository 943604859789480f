package clever

import (
	"context"
	"time"

	"github.com/allegro/bigcache/v3"
	"github.com/golang-jwt/jwt/v5"
)

// TokenCache keeps API tokens per email address so long-running consumers do
// not have to repeat the user-secret exchange for every session. Entries
// expire after the configured lifetime; tokens that turn out to be JWTs
// additionally honor their own exp claim.
type TokenCache struct {
	cache *bigcache.BigCache
	Time  Time
}

func NewTokenCache(lifetime time.Duration) (*TokenCache, error) {
	config := bigcache.DefaultConfig(lifetime)
	config.CleanWindow = 1 * time.Minute
	config.HardMaxCacheSize = 1024

	cache, err := bigcache.New(context.Background(), config)
	if err != nil {
		return nil, err
	}
	return &TokenCache{
		cache: cache,
		Time:  new(RealTime),
	}, nil
}

func (c *TokenCache) Set(email string, apiToken string) {
	c.cache.Set(email, []byte(apiToken))
}

// Get returns the cached token for email, or "" when there is none or the
// cached one is about to expire.
func (c *TokenCache) Get(email string) string {
	token, err := c.cache.Get(email)
	if err != nil {
		return ""
	}
	if !c.isUsable(string(token)) {
		c.cache.Delete(email)
		return ""
	}
	return string(token)
}

// isUsable inspects the exp claim of a JWT-shaped token. The signature is
// not checked, the backend does that; this only avoids handing out a token
// that expires within the next few minutes. Opaque tokens are trusted for
// the cache lifetime.
func (c *TokenCache) isUsable(token string) bool {
	parsedToken, _ := jwt.Parse(token, nil)
	if parsedToken == nil || parsedToken.Claims == nil {
		return true
	}
	exp, err := parsedToken.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}
	limit := c.Time.UTCNow().Add(time.Minute * 5)
	return exp.UTC().After(limit)
}
