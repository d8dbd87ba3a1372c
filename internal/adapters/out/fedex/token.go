package fedex

import (
	"context"
	"sync"
	"time"

	"shiprates/internal/core/ports"
)

// tokenExpiryMargin is subtracted from the advertised lifetime so a token is
// never used in the last moments before the carrier rejects it.
const tokenExpiryMargin = 60 * time.Second

// fetchTokenFunc obtains a fresh bearer token and its advertised lifetime.
type fetchTokenFunc func(ctx context.Context) (token string, expiresIn time.Duration, err error)

// TokenCache holds the single cached bearer token for the carrier. It is an
// explicitly owned, explicitly expirable object injected into the client,
// never ambient global state. Safe for concurrent use.
type TokenCache struct {
	clock ports.Clock

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

// NewTokenCache creates an empty cache using the given clock for expiry checks.
func NewTokenCache(clock ports.Clock) *TokenCache {
	return &TokenCache{
		clock: clock,
	}
}

// Token returns the cached bearer token, fetching a new one when the cached
// value is missing or expired. Concurrent callers serialize on the fetch so
// the carrier sees at most one token request at a time.
func (c *TokenCache) Token(ctx context.Context, fetch fetchTokenFunc) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	if c.token != "" && now.Before(c.expiresAt) {
		return c.token, nil
	}

	token, expiresIn, err := fetch(ctx)
	if err != nil {
		return "", err
	}

	c.token = token
	c.expiresAt = now.Add(expiresIn - tokenExpiryMargin)
	return token, nil
}

// Invalidate drops the cached token so the next call fetches a fresh one.
func (c *TokenCache) Invalidate() {
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()
}
