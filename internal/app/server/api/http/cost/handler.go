package cost

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"carcost/internal/domain/cost"
)

type Handler struct {
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.estimateOp(), h.estimate)
}

func (h *Handler) estimate(_ context.Context, input *estimateInput) (*estimateOutput, error) {
	breakdown := cost.ComputeMonthlyCost(input.Body.Input())
	h.log.Debug("cost estimated", "total", breakdown.Total)

	return &estimateOutput{Body: breakdown}, nil
}
