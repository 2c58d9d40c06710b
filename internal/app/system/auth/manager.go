// internal/app/system/auth/manager.go
package auth

import (
	"fmt"
	"time"

	"github.com/gorilla/securecookie"
	"go.uber.org/zap"
)

// tokenName namespaces the HMAC so tokens minted for another purpose
// (or another app sharing a key) never verify here.
const tokenName = "hirelens-api-token"

// DefaultTokenTTL is how long an issued token stays valid.
const DefaultTokenTTL = 24 * time.Hour

// Manager mints and verifies the opaque bearer tokens the API accepts.
//
// Token issuance policy (who gets a token, how they prove who they are)
// lives outside this service; Manager only guarantees that a token it
// verifies was produced with our key, is fresh, and decodes to an
// Identity.
type Manager struct {
	codec *securecookie.SecureCookie
	log   *zap.Logger
}

// NewManager builds a Manager from the configured signing key.
func NewManager(tokenKey string, ttl time.Duration, logger *zap.Logger) (*Manager, error) {
	if tokenKey == "" {
		return nil, fmt.Errorf("token key is empty; provide ≥32 random chars")
	}
	if len(tokenKey) < 32 {
		logger.Warn("token key is short; 32+ chars recommended",
			zap.Int("length", len(tokenKey)))
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	codec := securecookie.New([]byte(tokenKey), nil)
	codec.MaxAge(int(ttl.Seconds()))
	codec.SetSerializer(securecookie.JSONEncoder{})

	return &Manager{codec: codec, log: logger}, nil
}

// Issue mints a bearer token carrying the given identity.
func (m *Manager) Issue(id Identity) (string, error) {
	token, err := m.codec.Encode(tokenName, id)
	if err != nil {
		return "", fmt.Errorf("encode token: %w", err)
	}
	return token, nil
}

// Verify checks the token's HMAC and age and returns the identity it
// carries. Errors cover tampering, expiry, and malformed payloads alike;
// callers treat them uniformly as "not authenticated".
func (m *Manager) Verify(token string) (*Identity, error) {
	var id Identity
	if err := m.codec.Decode(tokenName, token, &id); err != nil {
		return nil, fmt.Errorf("decode token: %w", err)
	}
	if id.ID == "" || id.Role == "" {
		return nil, fmt.Errorf("token missing identity fields")
	}
	return &id, nil
}
