package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/yourusername/millionaire-api/internal/config"
)

// Время на первый PING при старте
const redisPingTimeout = 5 * time.Second

// Режимы подключения к Redis
const (
	RedisModeSingle   = "single"
	RedisModeSentinel = "sentinel"
	RedisModeCluster  = "cluster"
)

// NewUniversalRedisClient подключается к Redis в режиме single, sentinel или cluster
// и проверяет соединение.
func NewUniversalRedisClient(cfg config.RedisConfig) (redis.UniversalClient, error) {
	options, mode, err := redisOptions(cfg)
	if err != nil {
		return nil, err
	}

	client := redis.NewUniversalClient(options)

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis (mode: %s, addrs: %v): %w", mode, options.Addrs, err)
	}

	log.Printf("[Redis] Подключение установлено: режим %s, адреса %v", mode, options.Addrs)
	return client, nil
}

// redisOptions собирает опции клиента из конфигурации.
// NewUniversalClient выбирает тип клиента сам: MasterName даёт sentinel,
// несколько адресов без MasterName дают cluster.
func redisOptions(cfg config.RedisConfig) (*redis.UniversalOptions, string, error) {
	addrs := cfg.Addrs
	if len(addrs) == 0 && cfg.Addr != "" {
		addrs = []string{cfg.Addr}
	}
	if len(addrs) == 0 {
		return nil, "", fmt.Errorf("redis configuration error: Addrs or Addr must be provided")
	}

	mode := cfg.Mode
	if mode == "" {
		mode = RedisModeSingle
	}

	options := &redis.UniversalOptions{
		Addrs:           addrs,
		Password:        cfg.Password,
		DB:              cfg.DB,
		MaxRetries:      cfg.MaxRetries,
		MinRetryBackoff: time.Duration(cfg.MinRetryBackoff) * time.Millisecond,
		MaxRetryBackoff: time.Duration(cfg.MaxRetryBackoff) * time.Millisecond,
	}

	switch mode {
	case RedisModeSingle:
		// Лишние адреса превратили бы клиент в кластерный
		options.Addrs = addrs[:1]
	case RedisModeSentinel:
		if cfg.MasterName == "" {
			return nil, "", fmt.Errorf("redis sentinel mode requires MasterName")
		}
		options.MasterName = cfg.MasterName
	case RedisModeCluster:
		if cfg.DB != 0 {
			return nil, "", fmt.Errorf("redis cluster mode supports only DB 0, got %d", cfg.DB)
		}
	default:
		return nil, "", fmt.Errorf("unsupported redis mode: %s", mode)
	}

	return options, mode, nil
}
