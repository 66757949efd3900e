package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"talexu-jobs/internal/config"
	"talexu-jobs/internal/logging"
	"talexu-jobs/pkg/models"
)

const (
	searchKeyPrefix = "job_searches:"
	searchIndexKey  = "job_searches:index"
	resumeKeyPrefix = "parsed_resumes:"
)

// RedisStore implements Store on top of a Redis instance. Each search is one
// JSON document plus a membership in a timestamp-scored index, both written
// in a single MULTI/EXEC pipeline so jobs and status can never diverge.
type RedisStore struct {
	client *redis.Client
	logger logging.Logger
}

// NewRedisStore creates a Redis-backed store and verifies connectivity
func NewRedisStore(cfg *config.Config) (*RedisStore, error) {
	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL(%q): %w", cfg.Redis.URL, err)
	}

	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	opts.DB = cfg.Redis.DB
	opts.DialTimeout = cfg.Redis.Timeout
	opts.ReadTimeout = cfg.Redis.Timeout
	opts.WriteTimeout = cfg.Redis.Timeout

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Redis.Timeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &RedisStore{
		client: client,
		logger: logging.GetGlobalLogger(),
	}, nil
}

// PutSearch writes the document and its index entry atomically
func (s *RedisStore) PutSearch(ctx context.Context, doc *models.SearchDocument) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal search document: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, searchKeyPrefix+doc.SearchID, data, 0)
	pipe.ZAdd(ctx, searchIndexKey, redis.Z{
		Score:  float64(doc.Timestamp.UnixMilli()),
		Member: doc.SearchID,
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store search %s: %w", doc.SearchID, err)
	}

	return nil
}

// GetSearch returns the document for an explicit search identifier
func (s *RedisStore) GetSearch(ctx context.Context, searchID string) (*models.SearchDocument, error) {
	data, err := s.client.Get(ctx, searchKeyPrefix+searchID).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read search %s: %w", searchID, err)
	}

	var doc models.SearchDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal search %s: %w", searchID, err)
	}

	return &doc, nil
}

// LatestSearch returns the newest document by write timestamp. Concurrent
// searches race here; callers needing a specific search pass its identifier
// to GetSearch instead.
func (s *RedisStore) LatestSearch(ctx context.Context) (*models.SearchDocument, error) {
	ids, err := s.client.ZRevRange(ctx, searchIndexKey, 0, 0).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read search index: %w", err)
	}
	if len(ids) == 0 {
		return nil, ErrNotFound
	}

	return s.GetSearch(ctx, ids[0])
}

// PurgeOlderThan removes search documents written before the cutoff
func (s *RedisStore) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	maxScore := strconv.FormatInt(cutoff.UnixMilli(), 10)
	ids, err := s.client.ZRangeByScore(ctx, searchIndexKey, &redis.ZRangeBy{
		Min: "-inf",
		Max: "(" + maxScore,
	}).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to scan search index: %w", err)
	}
	if len(ids) == 0 {
		return 0, nil
	}

	pipe := s.client.TxPipeline()
	for _, id := range ids {
		pipe.Del(ctx, searchKeyPrefix+id)
		pipe.ZRem(ctx, searchIndexKey, id)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to purge %d searches: %w", len(ids), err)
	}

	s.logger.Info("Purged expired search documents", map[string]interface{}{
		"count":  len(ids),
		"cutoff": cutoff,
	})
	return len(ids), nil
}

// PutParsedResume stores a parser-output blob keyed by resume identifier
func (s *RedisStore) PutParsedResume(ctx context.Context, resumeID string, data json.RawMessage) error {
	record := ParsedResume{
		ResumeID:  resumeID,
		Data:      data,
		Timestamp: time.Now(),
	}

	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal parsed resume: %w", err)
	}

	if err := s.client.Set(ctx, resumeKeyPrefix+resumeID, payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to store parsed resume %s: %w", resumeID, err)
	}
	return nil
}

// GetParsedResume fetches a stored parser-output blob
func (s *RedisStore) GetParsedResume(ctx context.Context, resumeID string) (*ParsedResume, error) {
	data, err := s.client.Get(ctx, resumeKeyPrefix+resumeID).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read parsed resume %s: %w", resumeID, err)
	}

	var record ParsedResume
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal parsed resume %s: %w", resumeID, err)
	}

	return &record, nil
}

// Ping tests the Redis connection
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (s *RedisStore) Close() error {
	return s.client.Close()
}
