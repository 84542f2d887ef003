package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"ClubRoster/internal/rules"

	"github.com/redis/go-redis/v9"
)

// DefaultTotalsTTL applies when no TTL is configured
const DefaultTotalsTTL = 10 * time.Minute

// StatsCache caches per-player aggregated totals.
//
// Every invalidation bumps the player's generation. A reader takes the
// generation before loading from the store and passes it to
// SetPlayerTotals, which drops the write if the generation moved meanwhile.
type StatsCache interface {
	// GetPlayerTotals returns ok=false on a miss.
	GetPlayerTotals(ctx context.Context, playerID uint64) (totals rules.Totals, ok bool, err error)
	Generation(ctx context.Context, playerID uint64) (int64, error)
	// SetPlayerTotals reports whether the totals were stored.
	SetPlayerTotals(ctx context.Context, playerID uint64, gen int64, totals rules.Totals) (bool, error)
	InvalidatePlayers(ctx context.Context, playerIDs ...uint64) error
}

// RedisStatsCache stores totals as JSON strings with a TTL.
type RedisStatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStatsCache creates a Redis-backed cache
func NewRedisStatsCache(client *redis.Client, ttl time.Duration) *RedisStatsCache {
	if ttl <= 0 {
		ttl = DefaultTotalsTTL
	}
	return &RedisStatsCache{client: client, ttl: ttl}
}

func playerTotalsKey(playerID uint64) string {
	return fmt.Sprintf("player:%d:totals", playerID)
}

func playerGenKey(playerID uint64) string {
	return fmt.Sprintf("player:%d:gen", playerID)
}

func (c *RedisStatsCache) GetPlayerTotals(ctx context.Context, playerID uint64) (rules.Totals, bool, error) {
	data, err := c.client.Get(ctx, playerTotalsKey(playerID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return rules.Totals{}, false, nil
	}
	if err != nil {
		return rules.Totals{}, false, err
	}
	var t rules.Totals
	if err := json.Unmarshal(data, &t); err != nil {
		return rules.Totals{}, false, fmt.Errorf("unmarshaling totals: %w", err)
	}
	return t, true, nil
}

func (c *RedisStatsCache) Generation(ctx context.Context, playerID uint64) (int64, error) {
	return readGeneration(ctx, c.client, playerID)
}

func readGeneration(ctx context.Context, cmd redis.Cmdable, playerID uint64) (int64, error) {
	gen, err := cmd.Get(ctx, playerGenKey(playerID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

func (c *RedisStatsCache) SetPlayerTotals(ctx context.Context, playerID uint64, gen int64, totals rules.Totals) (bool, error) {
	data, err := json.Marshal(totals)
	if err != nil {
		return false, fmt.Errorf("marshaling totals: %w", err)
	}

	stored := false
	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := readGeneration(ctx, tx, playerID)
		if err != nil {
			return err
		}
		if cur != gen {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, playerTotalsKey(playerID), data, c.ttl)
			return nil
		})
		if err == nil {
			stored = true
		}
		return err
	}, playerGenKey(playerID))
	if errors.Is(err, redis.TxFailedErr) {
		// invalidated between WATCH and EXEC
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return stored, nil
}

// InvalidatePlayers bumps each player's generation and drops the cached totals.
func (c *RedisStatsCache) InvalidatePlayers(ctx context.Context, playerIDs ...uint64) error {
	if len(playerIDs) == 0 {
		return nil
	}
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, id := range playerIDs {
			pipe.Incr(ctx, playerGenKey(id))
			pipe.Del(ctx, playerTotalsKey(id))
		}
		return nil
	})
	return err
}

// NoopStatsCache is used when Redis is not configured.
type NoopStatsCache struct{}

func (NoopStatsCache) GetPlayerTotals(context.Context, uint64) (rules.Totals, bool, error) {
	return rules.Totals{}, false, nil
}

func (NoopStatsCache) Generation(context.Context, uint64) (int64, error) { return 0, nil }

func (NoopStatsCache) SetPlayerTotals(context.Context, uint64, int64, rules.Totals) (bool, error) {
	return false, nil
}

func (NoopStatsCache) InvalidatePlayers(context.Context, ...uint64) error { return nil }
