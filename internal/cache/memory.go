package cache

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/coocood/freecache"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	// freecache never allocates less than this
	minMemorySize = 512 * 1024
	// freecache header stored with every entry
	entryHeaderSize = 24
)

const (
	inlineEntry byte = iota
	chunkedEntry
)

// manifest describes value split into chunks because it doesn't fit single freecache entry
type manifest struct {
	Generation uint64 `msgpack:"g"`
	Chunks     int    `msgpack:"c"`
}

type memoryStore struct {
	cache       *freecache.Cache
	maxKeyValue int
	generation  uint64
}

// NewMemoryStore builds in-process Store of provided size.
// Single freecache entry can't exceed 1/1024 of the size, larger values are split into chunks
// and are reported as miss once any chunk is evicted.
func NewMemoryStore(sizeBytes int) Store {
	effective := sizeBytes
	if effective < minMemorySize {
		effective = minMemorySize
	}
	return &memoryStore{
		cache:       freecache.NewCache(sizeBytes),
		maxKeyValue: effective/1024 - entryHeaderSize,
	}
}

func (m *memoryStore) Get(_ context.Context, key string) ([]byte, error) {
	raw, err := m.get([]byte(key))
	if err != nil {
		return nil, err
	}

	switch raw[0] {
	case inlineEntry:
		return raw[1:], nil
	case chunkedEntry:
		var mf manifest
		if err := msgpack.Unmarshal(raw[1:], &mf); err != nil {
			return nil, fmt.Errorf("failed to decode manifest of %s - %w", key, err)
		}

		var value []byte
		for i := 0; i < mf.Chunks; i++ {
			chunk, err := m.get([]byte(chunkKey(key, mf.Generation, i)))
			if err != nil {
				return nil, err
			}
			value = append(value, chunk...)
		}
		return value, nil
	default:
		return nil, fmt.Errorf("unknown entry kind %d of %s", raw[0], key)
	}
}

func (m *memoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	expire := expireSeconds(ttl)
	previous := m.manifestOf(key)

	if len(key)+1+len(value) <= m.maxKeyValue {
		if err := m.cache.Set([]byte(key), append([]byte{inlineEntry}, value...), expire); err != nil {
			return fmt.Errorf("failed to set %s - %w", key, err)
		}
		m.dropChunks(key, previous)
		return nil
	}

	mf := manifest{Generation: atomic.AddUint64(&m.generation, 1)}
	for offset := 0; offset < len(value); mf.Chunks++ {
		ck := chunkKey(key, mf.Generation, mf.Chunks)
		size := m.maxKeyValue - len(ck)
		if size <= 0 {
			return fmt.Errorf("failed to set %s - key is too long for cache of this size", key)
		}

		end := offset + size
		if end > len(value) {
			end = len(value)
		}
		if err := m.cache.Set([]byte(ck), value[offset:end], expire); err != nil {
			return fmt.Errorf("failed to set chunk %d of %s - %w", mf.Chunks, key, err)
		}
		offset = end
	}

	encoded, err := msgpack.Marshal(&mf)
	if err != nil {
		return fmt.Errorf("failed to encode manifest of %s - %w", key, err)
	}
	if err := m.cache.Set([]byte(key), append([]byte{chunkedEntry}, encoded...), expire); err != nil {
		return fmt.Errorf("failed to set %s - %w", key, err)
	}
	m.dropChunks(key, previous)
	return nil
}

func (m *memoryStore) Delete(_ context.Context, key string) error {
	m.dropChunks(key, m.manifestOf(key))
	m.cache.Del([]byte(key))
	return nil
}

func (m *memoryStore) get(key []byte) ([]byte, error) {
	raw, err := m.cache.Get(key)
	if err != nil {
		if errors.Is(err, freecache.ErrNotFound) {
			return nil, ErrMiss
		}
		return nil, err
	}
	if len(raw) == 0 {
		return nil, ErrMiss
	}
	return raw, nil
}

// manifestOf returns chunks description of value stored under key, nil if value is not chunked
func (m *memoryStore) manifestOf(key string) *manifest {
	raw, err := m.get([]byte(key))
	if err != nil || raw[0] != chunkedEntry {
		return nil
	}

	var mf manifest
	if err := msgpack.Unmarshal(raw[1:], &mf); err != nil {
		return nil
	}
	return &mf
}

func (m *memoryStore) dropChunks(key string, mf *manifest) {
	if mf == nil {
		return
	}
	for i := 0; i < mf.Chunks; i++ {
		m.cache.Del([]byte(chunkKey(key, mf.Generation, i)))
	}
}

func chunkKey(key string, generation uint64, i int) string {
	return key + "#" + strconv.FormatUint(generation, 10) + "#" + strconv.Itoa(i)
}

// expireSeconds rounds ttl up to whole seconds, zero means no expiration
func expireSeconds(ttl time.Duration) int {
	if ttl <= 0 {
		return 0
	}
	return int(math.Ceil(ttl.Seconds()))
}
