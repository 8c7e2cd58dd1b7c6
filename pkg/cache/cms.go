package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"letterboxd/pkg/cms"

	"go.uber.org/zap"
)

// CMSClient caches successful reads of an inner cms.Client.
// Not-found answers and failures are never cached; an insert drops every
// cached query for the inserted type.
type CMSClient struct {
	inner cms.Client
	store Store
	ttl   time.Duration
	log   *zap.Logger
}

func NewCMSClient(inner cms.Client, store Store, ttl time.Duration, log *zap.Logger) *CMSClient {
	return &CMSClient{
		inner: inner,
		store: store,
		ttl:   ttl,
		log:   log.With(zap.String("client", "cms-cache")),
	}
}

func (c *CMSClient) Find(ctx context.Context, q cms.Query) (*cms.FindResult, error) {
	key := q.CacheKey()

	var cached cms.FindResult
	if c.load(ctx, key, &cached) {
		return &cached, nil
	}

	result, err := c.inner.Find(ctx, q)
	if err != nil {
		return nil, err
	}

	c.save(ctx, key, result)
	return result, nil
}

func (c *CMSClient) FindOne(ctx context.Context, q cms.Query) (*cms.Object, error) {
	key := q.CacheKey() + ":one"

	var cached cms.Object
	if c.load(ctx, key, &cached) {
		return &cached, nil
	}

	obj, err := c.inner.FindOne(ctx, q)
	if err != nil {
		return nil, err
	}

	c.save(ctx, key, obj)
	return obj, nil
}

func (c *CMSClient) InsertOne(ctx context.Context, req cms.InsertRequest) (*cms.Object, error) {
	obj, err := c.inner.InsertOne(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := c.store.DeletePrefix(ctx, cms.TypeKeyPrefix(req.Type)); err != nil {
		c.log.Warn("Failed to invalidate cache", zap.String("type", req.Type), zap.Error(err))
	}
	return obj, nil
}

func (c *CMSClient) load(ctx context.Context, key string, out any) bool {
	raw, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrMiss) {
			c.log.Warn("Cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}

	if err := json.Unmarshal(raw, out); err != nil {
		c.log.Warn("Cache entry corrupt", zap.String("key", key), zap.Error(err))
		return false
	}

	c.log.Debug("Cache hit", zap.String("key", key))
	return true
}

func (c *CMSClient) save(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.store.Set(ctx, key, raw, c.ttl); err != nil {
		c.log.Warn("Cache write failed", zap.String("key", key), zap.Error(err))
	}
}
