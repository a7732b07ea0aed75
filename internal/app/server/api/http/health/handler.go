package health

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

const (
	StatusOK       = "OK"
	StatusDegraded = "DEGRADED"
)

// Probe проверяет доступность хранилища гаража
type Probe func(ctx context.Context) error

type Handler struct {
	log        *slog.Logger
	probe      Probe
	middleware huma.Middlewares
}

func NewHandler(log *slog.Logger, probe Probe, middleware huma.Middlewares) *Handler {
	return &Handler{
		log:        log,
		probe:      probe,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
}

// Сервис отвечает 200 даже при недоступном хранилище: Load гаража все равно
// деградирует до пустого списка, поэтому статус только информирует.
func (h *Handler) healthCheck(ctx context.Context, _ *Input) (*Output, error) {
	h.log.Debug("health check request received")

	resp := Response{Status: StatusOK, Storage: StatusOK}
	if h.probe != nil {
		if err := h.probe(ctx); err != nil {
			h.log.Warn("storage probe failed", "error", err)
			resp.Status = StatusDegraded
			resp.Storage = StatusDegraded
			resp.Error = err.Error()
		}
	}

	return &Output{Body: resp}, nil
}
