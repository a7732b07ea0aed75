package client

import (
	"context"
	"errors"
)

type ctxKey struct{}

var ErrNoApp = errors.New("приложение не инициализировано")

// WithApp кладет App в контекст команды
func WithApp(ctx context.Context, app *App) context.Context {
	return context.WithValue(ctx, ctxKey{}, app)
}

// FromContext достает App, положенный WithApp
func FromContext(ctx context.Context) (*App, error) {
	app, ok := ctx.Value(ctxKey{}).(*App)
	if !ok || app == nil {
		return nil, ErrNoApp
	}
	return app, nil
}
