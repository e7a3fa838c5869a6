package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/damoang/angple-forum/internal/domain"
	"github.com/redis/go-redis/v9"
)

// TTL 상수 정의
const (
	TTLRecords = 10 * time.Minute // source lists change only on reseed
)

// 캐시 키 접두사
const (
	PrefixRecords = "forum:records:"
)

// ErrMiss is returned when a key is absent or the cache is disabled
var ErrMiss = errors.New("cache miss")

// Service record cache
type Service interface {
	GetRecords(ctx context.Context, kind domain.Kind) ([]domain.Record, error)
	SetRecords(ctx context.Context, kind domain.Kind, records []domain.Record) error
	InvalidateRecords(ctx context.Context, kinds ...domain.Kind) error

	IsAvailable() bool
	Ping(ctx context.Context) error
}

// redisCache Redis 기반 캐시 구현
type redisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewService creates a record cache. A nil client yields a cache that
// always misses and silently drops writes.
func NewService(client *redis.Client) Service {
	return &redisCache{client: client, ttl: TTLRecords}
}

// cachedRecord is the stored JSON shape of a record
type cachedRecord struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
}

func recordsKey(kind domain.Kind) string {
	return PrefixRecords + string(kind)
}

func (c *redisCache) IsAvailable() bool {
	return c.client != nil
}

func (c *redisCache) Ping(ctx context.Context) error {
	if c.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	return c.client.Ping(ctx).Err()
}

func (c *redisCache) GetRecords(ctx context.Context, kind domain.Kind) ([]domain.Record, error) {
	if c.client == nil {
		return nil, ErrMiss
	}

	data, err := c.client.Get(ctx, recordsKey(kind)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, err
	}

	var stored []cachedRecord
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("decode cached %s records: %w", kind, err)
	}
	records := make([]domain.Record, len(stored))
	for i, r := range stored {
		records[i] = domain.Record{ID: r.ID, Text: r.Text}
	}
	return records, nil
}

func (c *redisCache) SetRecords(ctx context.Context, kind domain.Kind, records []domain.Record) error {
	if c.client == nil {
		return nil // Redis 없으면 무시
	}

	stored := make([]cachedRecord, len(records))
	for i, r := range records {
		stored[i] = cachedRecord{ID: r.ID, Text: r.Text}
	}
	data, err := json.Marshal(stored)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, recordsKey(kind), data, c.ttl).Err()
}

func (c *redisCache) InvalidateRecords(ctx context.Context, kinds ...domain.Kind) error {
	if c.client == nil || len(kinds) == 0 {
		return nil
	}
	keys := make([]string, len(kinds))
	for i, k := range kinds {
		keys[i] = recordsKey(k)
	}
	return c.client.Del(ctx, keys...).Err()
}
