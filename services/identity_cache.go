package services

import (
	"context"
	"encoding/json"
	"time"

	"eduhub/models"

	"github.com/redis/go-redis/v9"
)

const identityKeyPrefix = "identity:"

// cachedIdentity carries every user field the identity endpoint
// serves, so warm and cold lookups return the same document. Password
// hashes never enter the cache.
type cachedIdentity struct {
	FullName    string     `json:"full_name"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func newCachedIdentity(user *models.User) cachedIdentity {
	return cachedIdentity{
		FullName:    user.FullName,
		Email:       user.Email,
		Role:        user.Role,
		IsActive:    user.IsActive,
		LastLoginAt: user.LastLoginAt,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

func (ci cachedIdentity) user() *models.User {
	return &models.User{
		FullName:    ci.FullName,
		Email:       ci.Email,
		Role:        ci.Role,
		IsActive:    ci.IsActive,
		LastLoginAt: ci.LastLoginAt,
		CreatedAt:   ci.CreatedAt,
		UpdatedAt:   ci.UpdatedAt,
	}
}

// IdentityCache caches token-resolved identities in Redis so the auth
// middleware does not hit Mongo on every request. A nil client disables
// the cache.
type IdentityCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewIdentityCache(client *redis.Client, ttl time.Duration) *IdentityCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &IdentityCache{client: client, ttl: ttl}
}

// Get returns the cached identity for the user id, or nil on miss or
// any Redis error. Errors are swallowed: the caller falls through to
// Mongo.
func (ic *IdentityCache) Get(ctx context.Context, userID string) *models.User {
	if ic == nil || ic.client == nil {
		return nil
	}
	data, err := ic.client.Get(ctx, identityKeyPrefix+userID).Bytes()
	if err != nil {
		return nil
	}
	var ident cachedIdentity
	if err := json.Unmarshal(data, &ident); err != nil {
		return nil
	}
	return ident.user()
}

// Set stores the identity with the configured TTL.
func (ic *IdentityCache) Set(ctx context.Context, userID string, user *models.User) {
	if ic == nil || ic.client == nil || user == nil {
		return
	}
	data, err := json.Marshal(newCachedIdentity(user))
	if err != nil {
		return
	}
	ic.client.Set(ctx, identityKeyPrefix+userID, data, ic.ttl)
}

// Invalidate drops the cached identity, used after role changes.
func (ic *IdentityCache) Invalidate(ctx context.Context, userID string) {
	if ic == nil || ic.client == nil {
		return
	}
	ic.client.Del(ctx, identityKeyPrefix+userID)
}
