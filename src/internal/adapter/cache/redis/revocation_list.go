package redis

import (
	"context"
	"fmt"
	"time"
)

// RevocationList stores revoked assertion ids as keys that expire together
// with the assertion itself.
type RevocationList struct {
	client *Client
	prefix string
	now    func() time.Time
}

func NewRevocationList(client *Client, prefix string) *RevocationList {
	if prefix == "" {
		prefix = "portal"
	}
	return &RevocationList{client: client, prefix: prefix, now: time.Now}
}

func (l *RevocationList) key(id string) string {
	return fmt.Sprintf("%s:revoked:%s", l.prefix, id)
}

func (l *RevocationList) Revoke(ctx context.Context, id string, until time.Time) error {
	ttl := until.Sub(l.now())
	if ttl <= 0 {
		return nil
	}
	if err := l.client.Set(ctx, l.key(id), 1, ttl).Err(); err != nil {
		return fmt.Errorf("redis revoke %s: %w", id, err)
	}
	return nil
}

func (l *RevocationList) IsRevoked(ctx context.Context, id string) (bool, error) {
	n, err := l.client.Exists(ctx, l.key(id)).Result()
	if err != nil {
		return false, fmt.Errorf("redis revocation lookup %s: %w", id, err)
	}
	return n > 0, nil
}
