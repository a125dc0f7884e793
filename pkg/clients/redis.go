package clients

import (
	"context"
	"time"

	"github.com/jimlawless/whereami"
	"github.com/nutricart-tech/go-backend/internal/cfg"
	"github.com/nutricart-tech/go-backend/pkg/e"
	r "github.com/redis/go-redis/v9"
)

const pingTimeout = 5 * time.Second

// RedisClient — клиент кеша карточек товаров. Кеш не является источником
// истины: промах означает поход в PostgreSQL, не ошибку.
type RedisClient struct {
	Client *r.Client
}

// NewRedisClient создаёт клиента по конфигурации. Соединение ленивое,
// доступность сервера проверяется отдельным вызовом Ping при старте приложения.
func NewRedisClient(cfg *cfg.RedisCfg) *RedisClient {
	client := r.NewClient(&r.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		Username:     cfg.User,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
	})

	return &RedisClient{
		Client: client,
	}
}

// Ping проверяет доступность Redis с собственным таймаутом.
func (rc *RedisClient) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := rc.Client.Ping(ctx).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
