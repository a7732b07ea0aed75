package vehicle

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"carcost/internal/domain/vehicle"
)

type Handler struct {
	service    vehicle.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service vehicle.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.makesOp(), h.makes)
	huma.Register(api, h.modelsOp(), h.models)
}

func (h *Handler) makes(ctx context.Context, _ *struct{}) (*makesOutput, error) {
	makes, err := h.service.Makes(ctx)
	if err != nil {
		return nil, huma.Error502BadGateway(vehicle.MakesPlaceholder, err)
	}

	return &makesOutput{Body: toNames(makes)}, nil
}

func (h *Handler) models(ctx context.Context, input *modelsInput) (*modelsOutput, error) {
	models, err := h.service.Models(ctx, input.Make)
	if err != nil {
		if errors.Is(err, vehicle.ErrEmptyMake) {
			return nil, huma.Error400BadRequest(err.Error())
		}
		return nil, huma.Error502BadGateway(vehicle.ModelsPlaceholder, err)
	}

	return &modelsOutput{Body: toNames(models)}, nil
}
