package storage

import (
    "context"
    "errors"

    "github.com/redis/go-redis/v9"
)

// Redis stores each document as a plain string value under prefix:key.
type Redis struct {
    rdb    *redis.Client
    prefix string
}

// NewRedis wraps an existing client.  The client is closed by Close.
func NewRedis(rdb *redis.Client, prefix string) *Redis {
    return &Redis{rdb: rdb, prefix: prefix}
}

func (r *Redis) key(k string) string {
    if r.prefix == "" {
        return k
    }
    return r.prefix + ":" + k
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
    b, err := r.rdb.Get(ctx, r.key(key)).Bytes()
    if errors.Is(err, redis.Nil) {
        return nil, ErrKeyNotFound
    }
    if err != nil {
        return nil, err
    }
    return b, nil
}

func (r *Redis) Set(ctx context.Context, key string, value []byte) error {
    return r.rdb.Set(ctx, r.key(key), value, 0).Err()
}

func (r *Redis) Close() error { return r.rdb.Close() }
