package vehicle

import "context"

// Catalog - внешний справочник марок и моделей
type Catalog interface {
	Makes(ctx context.Context) ([]string, error)
	Models(ctx context.Context, makeName string) ([]string, error)
}
