// Package cache keeps encoded values with expiration either in redis or in process memory.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// ErrMiss is returned when key is absent or expired
var ErrMiss = errors.New("cache miss")

// Store keeps raw values by key
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Put encodes v with msgpack and stores it under key
func Put(ctx context.Context, s Store, key string, v any, ttl time.Duration) error {
	encoded, err := msgpack.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s - %w", key, err)
	}
	return s.Set(ctx, key, encoded, ttl)
}

// Fetch decodes value stored under key into v, false is returned on miss
func Fetch(ctx context.Context, s Store, key string, v any) (bool, error) {
	raw, err := s.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrMiss) {
			return false, nil
		}
		return false, err
	}

	if err := msgpack.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("failed to decode %s - %w", key, err)
	}
	return true, nil
}
