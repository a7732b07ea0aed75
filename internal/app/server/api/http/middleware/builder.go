package middleware

import (
	"github.com/danielgtaylor/huma/v2"
)

type Middleware = func(ctx huma.Context, next func(huma.Context))

// Container собирает цепочки мидлварей для групп операций.
// Общие мидлвари идут первыми в каждой цепочке, добавленные через Add -
// только в ближайшую.
type Container struct {
	common huma.Middlewares
	extra  huma.Middlewares
}

func NewContainer(common ...Middleware) *Container {
	c := &Container{}
	for _, m := range common {
		c.common = append(c.common, m)
	}
	return c
}

// Add добавляет мидлвари в следующую цепочку
func (c *Container) Add(mws ...Middleware) {
	for _, m := range mws {
		c.extra = append(c.extra, m)
	}
}

// GetAllAndClear возвращает цепочку (общие + добавленные) и сбрасывает добавленные
func (c *Container) GetAllAndClear() huma.Middlewares {
	result := make(huma.Middlewares, 0, len(c.common)+len(c.extra))
	result = append(result, c.common...)
	result = append(result, c.extra...)
	c.extra = nil
	return result
}
