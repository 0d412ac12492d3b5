package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevocationLedger records revoked bearer tokens in Redis.
//
// Entries are keyed by the SHA-256 of the token, never the raw string, so a
// ledger dump yields no replayable credentials. Expiry uses Redis native TTLs,
// capped at the token lifetime: an entry never needs to outlive the token it
// blocks, and the ledger self-prunes.
type RevocationLedger struct {
	client *redis.Client
}

// NewRevocationLedger creates a RevocationLedger wrapping the given Redis client.
func NewRevocationLedger(client *redis.Client) *RevocationLedger {
	return &RevocationLedger{client: client}
}

// Revoke records the token as invalid for ttl.
func (l *RevocationLedger) Revoke(ctx context.Context, token, userID string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = time.Hour
	}
	value := fmt.Sprintf("%s:%d", userID, time.Now().UTC().Unix())
	if err := l.client.Set(ctx, l.key(token), value, ttl).Err(); err != nil {
		return fmt.Errorf("record revocation: %w", err)
	}
	return nil
}

// IsRevoked reports whether the token has been revoked.
func (l *RevocationLedger) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := l.client.Exists(ctx, l.key(token)).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return n > 0, nil
}

func (l *RevocationLedger) key(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "revoked:" + hex.EncodeToString(sum[:])
}
