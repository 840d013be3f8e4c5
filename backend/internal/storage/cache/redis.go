// Package cache keeps thread headers in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/itchan-dev/forum/shared/config"
	"github.com/itchan-dev/forum/shared/domain"
	"github.com/itchan-dev/forum/shared/logger"
	"github.com/redis/go-redis/v9"
)

const keyThread = "forum:thread:"

type ThreadCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// New connects to Redis and checks the connection.
func New(ctx context.Context, cfg *config.Config) (*ThreadCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Private.Redis.Addr,
		Password: cfg.Private.Redis.Password,
		DB:       cfg.Private.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	logger.Log.Info("connected to redis", "addr", cfg.Private.Redis.Addr, "ttl", cfg.Public.ThreadCacheTTL)
	return NewWithClient(rdb, cfg.Public.ThreadCacheTTL), nil
}

func NewWithClient(rdb *redis.Client, ttl time.Duration) *ThreadCache {
	return &ThreadCache{rdb: rdb, ttl: ttl}
}

// cachedThread fixes the stored JSON layout independent of the domain type.
type cachedThread struct {
	Id       string    `json:"id"`
	Title    string    `json:"title"`
	Body     string    `json:"body"`
	Date     time.Time `json:"date"`
	Username string    `json:"username"`
}

func (c *ThreadCache) Get(ctx context.Context, id domain.ThreadId) (domain.ThreadDetail, bool, error) {
	b, err := c.rdb.Get(ctx, keyThread+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.ThreadDetail{}, false, nil
	}
	if err != nil {
		return domain.ThreadDetail{}, false, err
	}

	var ct cachedThread
	if err := json.Unmarshal(b, &ct); err != nil {
		return domain.ThreadDetail{}, false, fmt.Errorf("corrupt cache entry %s: %w", id, err)
	}
	return domain.ThreadDetail{
		Id:       ct.Id,
		Title:    ct.Title,
		Body:     ct.Body,
		Date:     ct.Date,
		Username: ct.Username,
	}, true, nil
}

func (c *ThreadCache) Set(ctx context.Context, thread domain.ThreadDetail) error {
	b, err := json.Marshal(cachedThread{
		Id:       thread.Id,
		Title:    thread.Title,
		Body:     thread.Body,
		Date:     thread.Date,
		Username: thread.Username,
	})
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, keyThread+thread.Id, b, c.ttl).Err()
}

func (c *ThreadCache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

func (c *ThreadCache) Close() error {
	return c.rdb.Close()
}
