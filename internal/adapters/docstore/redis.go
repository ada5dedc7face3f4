package docstore

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/zenhabit/zenhabit-engine/internal/core/domain"
)

// NewRedisClient dials redis and verifies the connection before handing the
// client out. The same client backs the document store, the rate limiter
// and the summary cache.
func NewRedisClient(host, port, password string, dbIndex int) (*redis.Client, error) {
	addr := fmt.Sprintf("%s:%s", host, port)

	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           dbIndex,
		DialTimeout:  10 * time.Second,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}

	return rdb, nil
}

// RedisStore keeps the journal document under a single redis key with no
// expiry.
type RedisStore struct {
	rdb *redis.Client
}

var _ domain.DocumentStore = (*RedisStore)(nil)

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Read(ctx context.Context) ([]byte, error) {
	val, err := s.rdb.Get(ctx, documentKey).Bytes()
	if err == redis.Nil {
		return nil, domain.ErrDocumentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read journal document: %w", err)
	}
	return val, nil
}

func (s *RedisStore) Write(ctx context.Context, document []byte) error {
	if err := s.rdb.Set(ctx, documentKey, document, 0).Err(); err != nil {
		return fmt.Errorf("write journal document: %w", err)
	}
	return nil
}
