package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/umalmyha/crmconsole/internal/cache"
)

// ErrStale is returned on save of session copy which was changed by another request meanwhile
var ErrStale = errors.New("session was changed by another request")

// Store persists sessions between browser requests
type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	// Save writes s only if stored revision is still base, absent entry matches base 0
	Save(ctx context.Context, s *Session, base int64, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}

type cacheStore struct {
	mu    sync.Mutex
	store cache.Store
}

// NewStore builds Store over redis or in-process cache, sessions are encoded with msgpack
func NewStore(store cache.Store) Store {
	return &cacheStore{store: store}
}

func (c *cacheStore) Get(ctx context.Context, id string) (*Session, error) {
	var s Session
	ok, err := cache.Fetch(ctx, c.store, c.key(id), &s)
	if err != nil {
		return nil, fmt.Errorf("failed to load session - %w", err)
	}
	if !ok {
		return nil, nil
	}
	s.stored = true
	return &s, nil
}

func (c *cacheStore) Save(ctx context.Context, s *Session, base int64, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	s.mu.RLock()
	defer s.mu.RUnlock()

	current, err := c.Get(ctx, s.ID)
	if err != nil {
		return err
	}

	var revision int64
	if current != nil {
		revision = current.Revision
	}
	if revision != base {
		return ErrStale
	}

	if err := cache.Put(ctx, c.store, c.key(s.ID), s, ttl); err != nil {
		return fmt.Errorf("failed to save session - %w", err)
	}
	return nil
}

func (c *cacheStore) Delete(ctx context.Context, id string) error {
	return c.store.Delete(ctx, c.key(id))
}

func (c *cacheStore) key(id string) string {
	return "session:" + id
}
