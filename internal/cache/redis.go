package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Domenick1991/flightsinfo/config"
	"github.com/Domenick1991/flightsinfo/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisCache holds the airport and aircraft lists used to populate selection inputs.
// A miss is reported as a nil slice with a nil error.
type RedisCache struct {
	client       *redis.Client
	referenceTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, referenceTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:       redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		referenceTTL: referenceTTL,
	}
}

func (c *RedisCache) GetAirports(ctx context.Context) ([]domain.Airport, error) {
	var airports []domain.Airport
	if err := c.getJSON(ctx, airportsKey(), &airports); err != nil {
		return nil, err
	}
	return airports, nil
}

func (c *RedisCache) SetAirports(ctx context.Context, airports []domain.Airport) error {
	return c.setJSON(ctx, airportsKey(), airports)
}

func (c *RedisCache) GetAircraft(ctx context.Context) ([]domain.Aircraft, error) {
	var aircraft []domain.Aircraft
	if err := c.getJSON(ctx, aircraftKey(), &aircraft); err != nil {
		return nil, err
	}
	return aircraft, nil
}

func (c *RedisCache) SetAircraft(ctx context.Context, aircraft []domain.Aircraft) error {
	return c.setJSON(ctx, aircraftKey(), aircraft)
}

// InvalidateReference drops both reference lists, used after seeding.
func (c *RedisCache) InvalidateReference(ctx context.Context) error {
	return c.client.Del(ctx, airportsKey(), aircraftKey()).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func (c *RedisCache) getJSON(ctx context.Context, key string, dst any) error {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return err
	}
	return json.Unmarshal(data, dst)
}

func (c *RedisCache) setJSON(ctx context.Context, key string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, payload, c.referenceTTL).Err()
}

func airportsKey() string {
	return "cache:reference:airports"
}

func aircraftKey() string {
	return "cache:reference:aircraft"
}
