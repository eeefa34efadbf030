// Package redis implements the persistent stores of walletd on top of Redis.
package redis

import (
	"context"

	redis "github.com/redis/go-redis/v9"
)

// defaultKeyPrefix namespaces every key written by walletd.
const defaultKeyPrefix = "walletcore"

type client struct {
	conn   *redis.Client
	prefix string
}

func (c *client) Close() error {
	return c.conn.Close()
}

// NewClient connects and pings the server. prefix namespaces every key; an
// empty prefix uses "walletcore".
func NewClient(ctx context.Context, addr, username, password string, db int, prefix string) (*client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	if prefix == "" {
		prefix = defaultKeyPrefix
	}

	return &client{
		conn:   conn,
		prefix: prefix,
	}, nil
}
