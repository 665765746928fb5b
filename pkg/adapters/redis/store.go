package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/aretw0/mamdani/pkg/domain"
)

const (
	defaultPrefix = "mamdani:record:"
	// Index keys live outside the record prefix so no record ID can overwrite them.
	indexNamespace = "index:"
)

// Store implements ports.RecordStore using Redis.
// Records are stored as JSON strings. Two sorted sets index them: one scored by a
// save sequence (listing order) and one scored by expiry in milliseconds (pruning).
type Store struct {
	client backend.UniversalClient
	prefix string
	ttl    time.Duration
	now    func() time.Time
}

type Option func(*Store)

// WithTTL sets the expiration for records.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix for records.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// WithClock overrides the clock used to score the expiry index.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New creates a new Redis store with options.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis store from an existing client.
func NewFromClient(client backend.UniversalClient, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: defaultPrefix,
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(store)
	}

	return store
}

func (s *Store) key(id string) string {
	return s.prefix + id
}

func (s *Store) indexKey(name string) string {
	return indexNamespace + s.prefix + name
}

// Ping checks connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Save persists the record to Redis.
func (s *Store) Save(ctx context.Context, record *domain.Record) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	seq, err := s.client.Incr(ctx, s.indexKey("seq")).Result()
	if err != nil {
		return fmt.Errorf("failed to sequence record: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.key(record.ID), data, s.ttl)
	pipe.ZAdd(ctx, s.indexKey("order"), backend.Z{
		Score:  float64(seq),
		Member: record.ID,
	})
	if s.ttl > 0 {
		pipe.ZAdd(ctx, s.indexKey("expiry"), backend.Z{
			Score:  float64(s.now().Add(s.ttl).UnixMilli()),
			Member: record.ID,
		})
	} else {
		pipe.ZRem(ctx, s.indexKey("expiry"), record.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}

	return nil
}

// Load retrieves the record from Redis.
func (s *Store) Load(ctx context.Context, id string) (*domain.Record, error) {
	val, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}

	var rec domain.Record
	if err := json.Unmarshal(val, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record: %w", err)
	}

	return &rec, nil
}

// Delete removes the record and its index entry.
func (s *Store) Delete(ctx context.Context, id string) error {
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, s.key(id))
	pipe.ZRem(ctx, s.indexKey("order"), id)
	pipe.ZRem(ctx, s.indexKey("expiry"), id)

	_, err := pipe.Exec(ctx)
	return err
}

// List returns live record IDs in save order; saving an existing ID moves it last.
// Expired entries are pruned from the index lazily.
func (s *Store) List(ctx context.Context) ([]string, error) {
	expired, err := s.client.ZRangeByScore(ctx, s.indexKey("expiry"), &backend.ZRangeBy{
		Min: "-inf",
		Max: fmt.Sprintf("(%d", s.now().UnixMilli()),
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to scan expired records: %w", err)
	}
	if len(expired) > 0 {
		members := make([]any, len(expired))
		for i, id := range expired {
			members[i] = id
		}
		pipe := s.client.TxPipeline()
		pipe.ZRem(ctx, s.indexKey("order"), members...)
		pipe.ZRem(ctx, s.indexKey("expiry"), members...)
		if _, err := pipe.Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to prune expired records: %w", err)
		}
	}

	ids, err := s.client.ZRange(ctx, s.indexKey("order"), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	return ids, nil
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}
