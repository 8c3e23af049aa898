// Package cache defines the cache port for the notes service.
package cache

import (
	"context"
	"time"
)

// Cache определяет интерфейс кэша. Отсутствие значения по ключу
// возвращается как пустая строка без ошибки.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
