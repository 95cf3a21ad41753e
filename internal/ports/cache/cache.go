package cache

import "context"

// Cache is a small byte-value cache used as a read-through layer in
// front of per-user storage reads. Implementations: in-process LRU and
// Redis. Misses are (nil, false, nil); errors are backend failures only.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
