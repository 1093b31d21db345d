package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/barber-shop/internal/config"
	domain "github.com/BruksfildServices01/barber-shop/internal/domain/cart"
)

// Store guarda o carrinho da sessão no redis, um JSON por usuário.
// O TTL acompanha a vida da sessão: carrinho some junto com ela.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

func NewClient(cfg *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

func (s *Store) key(userID uint) string {
	return fmt.Sprintf("cart:%d", userID)
}

func (s *Store) Get(ctx context.Context, userID uint) (domain.Cart, error) {
	val, err := s.rdb.Get(ctx, s.key(userID)).Result()
	if err == redis.Nil {
		return domain.Cart{}, nil
	}
	if err != nil {
		return domain.Cart{}, fmt.Errorf("cart get: %w", err)
	}

	var c domain.Cart
	if err := json.Unmarshal([]byte(val), &c); err != nil {
		return domain.Cart{}, fmt.Errorf("cart decode: %w", err)
	}
	return c, nil
}

func (s *Store) Save(ctx context.Context, userID uint, c domain.Cart) error {
	b, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("cart encode: %w", err)
	}
	return s.rdb.Set(ctx, s.key(userID), b, s.ttl).Err()
}

func (s *Store) Clear(ctx context.Context, userID uint) error {
	return s.rdb.Del(ctx, s.key(userID)).Err()
}
