// cache — опциональный реестр активных refresh-токенов в Redis.
//
// По умолчанию refresh-токены чисто stateless: ротация не отзывает
// ранее выданный токен до его собственного истечения. Когда реестр
// сконфигурирован, jti каждого выданного refresh-токена кладётся в
// Redis с TTL, а обновление/выход атомарно изымают его — это закрывает
// окно повторного использования украденного токена.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RefreshRegister — минимальный контракт реестра refresh-токенов.
type RefreshRegister interface {
	// Put регистрирует выданный jti с TTL до истечения токена.
	Put(ctx context.Context, jti string, userID uuid.UUID, ttl time.Duration) error
	// Consume атомарно изымает jti; false — токен не зарегистрирован
	// (уже использован, отозван или истёк).
	Consume(ctx context.Context, jti string) (bool, error)
	// Revoke удаляет jti; идемпотентен.
	Revoke(ctx context.Context, jti string) error
	// Close закрывает клиент Redis.
	Close() error
}

type redisRegister struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisRegister создаёт клиент Redis из URL (например, redis://:pass@host:6379/0).
// Если prefix пустой — используется "auth:rt:".
func NewRedisRegister(redisURL, prefix string) (RefreshRegister, error) {
	if prefix == "" {
		prefix = "auth:rt:"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)

	// Fail-fast на старте.
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &redisRegister{rdb: rdb, prefix: prefix}, nil
}

func (c *redisRegister) key(jti string) string { return c.prefix + jti }

func (c *redisRegister) Put(ctx context.Context, jti string, userID uuid.UUID, ttl time.Duration) error {
	return c.rdb.Set(ctx, c.key(jti), userID.String(), ttl).Err()
}

func (c *redisRegister) Consume(ctx context.Context, jti string) (bool, error) {
	_, err := c.rdb.GetDel(ctx, c.key(jti)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

func (c *redisRegister) Revoke(ctx context.Context, jti string) error {
	return c.rdb.Del(ctx, c.key(jti)).Err()
}

func (c *redisRegister) Close() error { return c.rdb.Close() }
