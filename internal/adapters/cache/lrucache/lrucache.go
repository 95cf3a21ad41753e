package lrucache

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache is an in-process byte cache for single-instance deployments.
type Cache struct {
	inner *lru.Cache[string, []byte]
}

func New(size int) (*Cache, error) {
	inner, err := lru.New[string, []byte](size)
	if err != nil {
		return nil, err
	}
	return &Cache{inner: inner}, nil
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, ok := c.inner.Get(key)
	if !ok {
		return nil, false, nil
	}
	return v, true, nil
}

func (c *Cache) Set(ctx context.Context, key string, value []byte) error {
	c.inner.Add(key, value)
	return nil
}

func (c *Cache) Delete(ctx context.Context, key string) error {
	c.inner.Remove(key)
	return nil
}
