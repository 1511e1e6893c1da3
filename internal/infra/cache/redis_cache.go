package cache

import (
	"context"
	"log/slog"
	"time"

	"storemgr/config"
	"storemgr/internal/domain/lifecycle"
	"storemgr/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const reportKeyPrefix = "report:"

// Params defines the dependencies for creating the report cache.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the report cache. Without a redis section in the config it
// returns the no-op cache, so reporting works the same with or without a
// cache backend.
func New(params Params) ReportCache {
	redisCfg := params.Config.Redis
	if redisCfg == nil {
		params.Logger.Info("report cache disabled, no redis configured")

		return NewNoopReportCache()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     redisCfg.Addr,
		Password: redisCfg.Password,
		DB:       redisCfg.DB,
	})

	ttl := redisCfg.ReportTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(pingCtx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping redis")
			}

			params.Logger.Info("report cache enabled", slog.String("addr", redisCfg.Addr))

			return nil
		},
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	return &RedisReportCache{client: client, ttl: ttl}
}

// RedisReportCache caches rendered report payloads in redis under a
// shared key prefix, so one SCAN can flush them all.
type RedisReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

func (c *RedisReportCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	payload, err := c.client.Get(ctx, reportKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to read report cache")
	}

	return payload, true, nil
}

func (c *RedisReportCache) Set(ctx context.Context, key string, payload []byte) error {
	if err := c.client.Set(ctx, reportKeyPrefix+key, payload, c.ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to write report cache")
	}

	return nil
}

// Flush drops every cached report. Called after any successful write, so
// reports never serve data older than the last mutation plus the TTL.
func (c *RedisReportCache) Flush(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, reportKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return errors.Wrap(err, "failed to flush report cache")
		}
	}
	if err := iter.Err(); err != nil {
		return errors.Wrap(err, "failed to scan report cache")
	}

	return nil
}
