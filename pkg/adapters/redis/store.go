package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/plin1112/mcell/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// DefaultPrefix namespaces site catalog keys.
const DefaultPrefix = "mcell:site:"

// noExpiry is the index score of entries saved without a TTL (2100-01-01).
const noExpiry = 4102444800

// Store implements ports.SiteStore using Redis.
// Records are stored as JSON under <prefix><name>; a sorted set at
// <prefix>index scores each name by its expiry. Sets at
// <prefix>by:<facet>:<value> index names by shape, method and molecule.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Store)

// WithTTL expires catalog entries, e.g. for per-run catalogs.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix, typically one per simulation run.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
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
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: DefaultPrefix,
	}

	for _, opt := range opts {
		opt(store)
	}

	return store
}

func (s *Store) key(name string) string {
	return s.prefix + name
}

func (s *Store) indexKey() string {
	return s.prefix + "index"
}

func (s *Store) facetKey(facet, value string) string {
	return s.prefix + "by:" + facet + ":" + value
}

// facets returns the set keys for the non-empty fields of f.
func (s *Store) facets(f domain.SiteFilter) []string {
	var keys []string
	if f.Shape != "" {
		keys = append(keys, s.facetKey("shape", f.Shape))
	}
	if f.Method != "" {
		keys = append(keys, s.facetKey("method", f.Method))
	}
	if f.Molecule != "" {
		keys = append(keys, s.facetKey("molecule", f.Molecule))
	}
	return keys
}

func facetsOf(r domain.SiteRecord) domain.SiteFilter {
	return domain.SiteFilter{Shape: r.Shape, Method: r.Method, Molecule: r.Molecule}
}

// Save persists the record to Redis.
func (s *Store) Save(ctx context.Context, record domain.SiteRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal site record: %w", err)
	}

	score := float64(noExpiry)
	if s.ttl > 0 {
		score = float64(time.Now().Add(s.ttl).Unix())
	}

	prev, err := s.Load(ctx, record.Name)
	if err != nil && !errors.Is(err, domain.ErrSiteNotFound) {
		return err
	}

	pipe := s.client.Pipeline()
	if prev != nil {
		for _, k := range s.facets(facetsOf(*prev)) {
			pipe.SRem(ctx, k, record.Name)
		}
	}
	pipe.Set(ctx, s.key(record.Name), data, s.ttl)
	pipe.ZAdd(ctx, s.indexKey(), backend.Z{
		Score:  score,
		Member: record.Name,
	})
	for _, k := range s.facets(facetsOf(record)) {
		pipe.SAdd(ctx, k, record.Name)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save site to redis: %w", err)
	}
	return nil
}

// Load retrieves the record from Redis.
func (s *Store) Load(ctx context.Context, name string) (*domain.SiteRecord, error) {
	val, err := s.client.Get(ctx, s.key(name)).Bytes()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return nil, domain.ErrSiteNotFound
		}
		return nil, fmt.Errorf("failed to get site from redis: %w", err)
	}

	var record domain.SiteRecord
	if err := json.Unmarshal(val, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal site record: %w", err)
	}
	return &record, nil
}

// Delete removes the record and its index entries.
func (s *Store) Delete(ctx context.Context, name string) error {
	prev, err := s.Load(ctx, name)
	if err != nil && !errors.Is(err, domain.ErrSiteNotFound) {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Del(ctx, s.key(name))
	pipe.ZRem(ctx, s.indexKey(), name)
	if prev != nil {
		for _, k := range s.facets(facetsOf(*prev)) {
			pipe.SRem(ctx, k, name)
		}
	}

	_, err = pipe.Exec(ctx)
	return err
}

// List returns the stored site names, pruning expired index entries first.
func (s *Store) List(ctx context.Context) ([]string, error) {
	now := float64(time.Now().Unix())
	err := s.client.ZRemRangeByScore(ctx, s.indexKey(), "-inf", fmt.Sprintf("%f", now)).Err()
	if err != nil {
		return nil, fmt.Errorf("failed to prune expired sites: %w", err)
	}

	names, err := s.client.ZRange(ctx, s.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list sites: %w", err)
	}
	return names, nil
}

// Find intersects the facet sets named by filter and loads the matching
// records in one round trip. An empty filter falls back to List. Names whose
// record has expired are dropped from the facet sets.
func (s *Store) Find(ctx context.Context, filter domain.SiteFilter) ([]domain.SiteRecord, error) {
	keys := s.facets(filter)

	var names []string
	var err error
	if len(keys) == 0 {
		names, err = s.List(ctx)
	} else {
		names, err = s.client.SInter(ctx, keys...).Result()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query site index: %w", err)
	}
	if len(names) == 0 {
		return nil, nil
	}
	sort.Strings(names)

	recordKeys := make([]string, len(names))
	for i, name := range names {
		recordKeys[i] = s.key(name)
	}
	vals, err := s.client.MGet(ctx, recordKeys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get sites from redis: %w", err)
	}

	var out []domain.SiteRecord
	var expired []any
	for i, v := range vals {
		data, ok := v.(string)
		if !ok {
			expired = append(expired, names[i])
			continue
		}
		var record domain.SiteRecord
		if err := json.Unmarshal([]byte(data), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal site record %q: %w", names[i], err)
		}
		if filter.Matches(record) {
			out = append(out, record)
		}
	}

	if len(expired) > 0 && len(keys) > 0 {
		pipe := s.client.Pipeline()
		for _, k := range keys {
			pipe.SRem(ctx, k, expired...)
		}
		if _, err := pipe.Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to prune site index: %w", err)
		}
	}
	return out, nil
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}
