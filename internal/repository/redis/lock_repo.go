package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// releaseScript удаляет ключ, только если в нём лежит токен владельца
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// LockRepo реализует repository.LockRepository на SETNX с токеном владельца
type LockRepo struct {
	client redis.UniversalClient
	ctx    context.Context
}

// NewLockRepo создает репозиторий блокировок
func NewLockRepo(client redis.UniversalClient) (*LockRepo, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client cannot be nil for LockRepo")
	}
	return &LockRepo{
		client: client,
		ctx:    context.Background(),
	}, nil
}

// Acquire занимает ключ на ttl и возвращает токен владельца
func (r *LockRepo) Acquire(key string, ttl time.Duration) (string, bool, error) {
	token := uuid.NewString()
	ok, err := r.client.SetNX(r.ctx, key, token, ttl).Result()
	if err != nil {
		return "", false, err
	}
	if !ok {
		return "", false, nil
	}
	return token, true, nil
}

// Release снимает блокировку владельца; чужую или истёкшую блокировку не трогает
func (r *LockRepo) Release(key, token string) error {
	err := releaseScript.Run(r.ctx, r.client, []string{key}, token).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	return nil
}
