package garage

import (
	"context"
)

// KeyValue - хранилище "ключ-значение", в котором гараж лежит одним блобом
type KeyValue interface {
	// Get возвращает значение и признак его наличия
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
