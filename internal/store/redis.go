package store

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	domain "github.com/donaldgifford/medwatch/pkg/types"
)

const defaultKeyPrefix = "medwatch:fingerprints:"

// RedisFingerprintStore implements FingerprintStore with one Redis hash per
// search: field is the fingerprint key, value its JSON components.
type RedisFingerprintStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

var _ FingerprintStore = (*RedisFingerprintStore)(nil)

// RedisOption configures a RedisFingerprintStore.
type RedisOption func(*RedisFingerprintStore)

// WithKeyPrefix sets the prefix of the per-search hash keys.
func WithKeyPrefix(p string) RedisOption {
	return func(r *RedisFingerprintStore) {
		r.prefix = p
	}
}

// WithTTL expires a search's fingerprints d after its last commit. Zero
// keeps them forever.
func WithTTL(d time.Duration) RedisOption {
	return func(r *RedisFingerprintStore) {
		r.ttl = d
	}
}

// NewRedisClient parses redisURL and verifies connectivity.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	return client, nil
}

// NewRedisFingerprintStore wraps an existing client.
func NewRedisFingerprintStore(client *redis.Client, opts ...RedisOption) *RedisFingerprintStore {
	r := &RedisFingerprintStore{
		client: client,
		prefix: defaultKeyPrefix,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Ping verifies the Redis connection is alive.
func (r *RedisFingerprintStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close closes the underlying client.
func (r *RedisFingerprintStore) Close() error {
	return r.client.Close()
}

// LoadFingerprints returns the fingerprints committed for a search, ordered
// by key.
func (r *RedisFingerprintStore) LoadFingerprints(ctx context.Context, searchID string) ([]domain.Fingerprint, error) {
	fields, err := r.client.HGetAll(ctx, r.key(searchID)).Result()
	if err != nil {
		return nil, fmt.Errorf("loading fingerprints: %w", err)
	}

	fps := make([]domain.Fingerprint, 0, len(fields))
	for field, raw := range fields {
		var fp domain.Fingerprint
		if err := json.Unmarshal([]byte(raw), &fp); err != nil {
			return nil, fmt.Errorf("decoding fingerprint %s: %w", field, err)
		}
		fps = append(fps, fp)
	}

	slices.SortFunc(fps, func(a, b domain.Fingerprint) int {
		return strings.Compare(a.Key, b.Key)
	})
	return fps, nil
}

// CommitFingerprints stores fingerprints in one pipeline. HSETNX keeps the
// first stored components of a key.
func (r *RedisFingerprintStore) CommitFingerprints(ctx context.Context, searchID string, fps []domain.Fingerprint) error {
	if len(fps) == 0 {
		return nil
	}

	key := r.key(searchID)
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for i := range fps {
			raw, err := json.Marshal(fps[i])
			if err != nil {
				return fmt.Errorf("encoding fingerprint %s: %w", fps[i].Key, err)
			}
			pipe.HSetNX(ctx, key, fps[i].Key, raw)
		}
		if r.ttl > 0 {
			pipe.Expire(ctx, key, r.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("committing fingerprints: %w", err)
	}
	return nil
}

// ClearFingerprints forgets every fingerprint of a search.
func (r *RedisFingerprintStore) ClearFingerprints(ctx context.Context, searchID string) error {
	if err := r.client.Del(ctx, r.key(searchID)).Err(); err != nil {
		return fmt.Errorf("clearing fingerprints: %w", err)
	}
	return nil
}

func (r *RedisFingerprintStore) key(searchID string) string {
	return r.prefix + searchID
}
