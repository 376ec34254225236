package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/portwave/portwave-backend/internal/platform/logger"
)

// VocabCache is a read-through cache for status vocabulary name->id
// resolution. Vocabulary rows are effectively immutable, so a generous TTL
// is fine; the store stays the source of truth on every miss.
type VocabCache struct {
	log *logger.Logger
	rdb *goredis.Client
	ttl time.Duration
}

func NewVocabCache(log *logger.Logger, addr string, ttl time.Duration) (*VocabCache, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil, fmt.Errorf("missing redis addr")
	}
	if ttl <= 0 {
		ttl = 12 * time.Hour
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

	return &VocabCache{
		log: log.With("client", "VocabCache"),
		rdb: rdb,
		ttl: ttl,
	}, nil
}

func vocabKey(kind, name string) string {
	return fmt.Sprintf("vocab:%s:%s", strings.TrimSpace(kind), strings.ToLower(strings.TrimSpace(name)))
}

// GetStatusID reports (id, true) on a cache hit. Any cache failure is a miss.
func (c *VocabCache) GetStatusID(ctx context.Context, kind, name string) (uuid.UUID, bool) {
	if c == nil || c.rdb == nil {
		return uuid.Nil, false
	}
	raw, err := c.rdb.Get(ctx, vocabKey(kind, name)).Result()
	if err != nil {
		if err != goredis.Nil {
			c.log.Debug("vocab cache get failed", "kind", kind, "name", name, "error", err)
		}
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// SetStatusID stores a resolution; failures are logged and swallowed.
func (c *VocabCache) SetStatusID(ctx context.Context, kind, name string, id uuid.UUID) {
	if c == nil || c.rdb == nil || id == uuid.Nil {
		return
	}
	if err := c.rdb.Set(ctx, vocabKey(kind, name), id.String(), c.ttl).Err(); err != nil {
		c.log.Debug("vocab cache set failed", "kind", kind, "name", name, "error", err)
	}
}

func (c *VocabCache) Close() error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}
