package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/hlifeacademy/dna-backend/internal/logger"
)

// ResultCache keeps each user's newest assessment payload warm so the
// dashboard does not hit Postgres on every load. Strictly best-effort: the
// database stays the source of truth and every miss falls through to it.
type ResultCache interface {
	GetLatest(ctx context.Context, userID uuid.UUID, dest interface{}) (bool, error)
	SetLatest(ctx context.Context, userID uuid.UUID, payload interface{}) error
	InvalidateLatest(ctx context.Context, userID uuid.UUID) error
	Close() error
}

type resultCache struct {
	log *logger.Logger
	rdb *goredis.Client
	ttl time.Duration
}

func NewResultCache(log *logger.Logger) (ResultCache, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}

	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &resultCache{
		log: log.With("service", "RedisResultCache"),
		rdb: rdb,
		ttl: 24 * time.Hour,
	}, nil
}

func latestKey(userID uuid.UUID) string {
	return "assessment:latest:" + userID.String()
}

func (c *resultCache) GetLatest(ctx context.Context, userID uuid.UUID, dest interface{}) (bool, error) {
	if c == nil || c.rdb == nil {
		return false, fmt.Errorf("result cache not initialized")
	}
	raw, err := c.rdb.Get(ctx, latestKey(userID)).Bytes()
	if err == goredis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		// A corrupt entry behaves like a miss.
		c.log.Warn("Dropping unreadable cache entry", "user_id", userID, "error", err)
		_ = c.rdb.Del(ctx, latestKey(userID)).Err()
		return false, nil
	}
	return true, nil
}

func (c *resultCache) SetLatest(ctx context.Context, userID uuid.UUID, payload interface{}) error {
	if c == nil || c.rdb == nil {
		return fmt.Errorf("result cache not initialized")
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, latestKey(userID), raw, c.ttl).Err()
}

func (c *resultCache) InvalidateLatest(ctx context.Context, userID uuid.UUID) error {
	if c == nil || c.rdb == nil {
		return fmt.Errorf("result cache not initialized")
	}
	return c.rdb.Del(ctx, latestKey(userID)).Err()
}

func (c *resultCache) Close() error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}
