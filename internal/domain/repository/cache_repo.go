package repository

import (
	"time"
)

// CacheRepository — кеш для данных, которые можно пересчитать из базы.
// Промах кеша возвращает ErrNotFound.
type CacheRepository interface {
	SetJSON(key string, value interface{}, expiration time.Duration) error
	GetJSON(key string, dest interface{}) error
	Delete(key string) error
}

// LockRepository — распределённая блокировка с токеном владельца
type LockRepository interface {
	// Acquire пытается занять ключ; ok=false, если ключ занят другим владельцем
	Acquire(key string, ttl time.Duration) (token string, ok bool, err error)
	// Release снимает блокировку, только если она всё ещё принадлежит token
	Release(key, token string) error
}
