package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"poster-board/services/poster/internal/entity"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned by Get when no entry exists for the poster.
var ErrCacheMiss = errors.New("poster cache miss")

type PosterCache interface {
	Get(ctx context.Context, id int64) (*entity.Poster, error)
	Set(ctx context.Context, poster *entity.Poster) error
	Invalidate(ctx context.Context, id int64) error
}

type redisPosterCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisPosterCache(client *redis.Client, ttl time.Duration) PosterCache {
	return &redisPosterCache{client: client, ttl: ttl}
}

func posterKey(id int64) string {
	return fmt.Sprintf("poster:%d", id)
}

func (c *redisPosterCache) Get(ctx context.Context, id int64) (*entity.Poster, error) {
	data, err := c.client.Get(ctx, posterKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var poster entity.Poster
	if err := json.Unmarshal(data, &poster); err != nil {
		return nil, fmt.Errorf("failed to decode cached poster %d: %w", id, err)
	}
	return &poster, nil
}

func (c *redisPosterCache) Set(ctx context.Context, poster *entity.Poster) error {
	data, err := json.Marshal(poster)
	if err != nil {
		return fmt.Errorf("failed to encode poster %d: %w", poster.ID, err)
	}
	return c.client.Set(ctx, posterKey(poster.ID), data, c.ttl).Err()
}

func (c *redisPosterCache) Invalidate(ctx context.Context, id int64) error {
	return c.client.Del(ctx, posterKey(id)).Err()
}
