package garage

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"carcost/internal/domain/cost"
	"carcost/internal/domain/garage"
)

type Handler struct {
	store       garage.Servicer
	assumptions cost.Input
	log         *slog.Logger
	middleware  huma.Middlewares
}

func NewHandler(store garage.Servicer, assumptions cost.Input, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		store:       store,
		assumptions: assumptions,
		log:         log,
		middleware:  mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.addOp(), h.add)
	huma.Register(api, h.replaceOp(), h.replace)
	huma.Register(api, h.clearOp(), h.clear)
	huma.Register(api, h.chartOp(), h.chart)
	huma.Register(api, h.removeOp(), h.remove)
	huma.Register(api, h.saveCostOp(), h.saveCost)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	return &listOutput{Body: toListResponse(h.store.Load(ctx))}, nil
}

func (h *Handler) add(ctx context.Context, input *addInput) (*addOutput, error) {
	v := garage.Vehicle{
		Make:  input.Body.Make,
		Model: input.Body.Model,
		Year:  input.Body.Year,
	}

	if err := h.store.Add(ctx, v); err != nil {
		return nil, mapError(err)
	}

	return &addOutput{Body: toListResponse(h.store.Load(ctx))}, nil
}

func (h *Handler) replace(ctx context.Context, input *replaceInput) (*listOutput, error) {
	items := make([]garage.Vehicle, 0, len(input.Body.Vehicles))
	for _, v := range input.Body.Vehicles {
		normalized, err := garage.Normalize(v)
		if err != nil {
			return nil, mapError(err)
		}
		items = append(items, normalized)
	}

	if err := h.store.Save(ctx, items); err != nil {
		return nil, mapError(err)
	}

	return &listOutput{Body: toListResponse(h.store.Load(ctx))}, nil
}

func (h *Handler) remove(ctx context.Context, input *indexInput) (*listOutput, error) {
	if err := h.store.RemoveAt(ctx, input.Index); err != nil {
		return nil, mapError(err)
	}

	return &listOutput{Body: toListResponse(h.store.Load(ctx))}, nil
}

func (h *Handler) clear(ctx context.Context, _ *struct{}) (*struct{}, error) {
	if err := h.store.Clear(ctx); err != nil {
		return nil, mapError(err)
	}

	return nil, nil
}

func (h *Handler) saveCost(ctx context.Context, input *costInput) (*costOutput, error) {
	b := cost.ComputeMonthlyCost(input.Body.Input())

	if err := h.store.SaveCost(ctx, input.Index, garage.CostBreakdown{
		Fixed:       b.Fixed,
		Fuel:        b.Fuel,
		Maintenance: b.Maintenance,
		Total:       b.Total,
	}); err != nil {
		return nil, mapError(err)
	}

	// Отдаем сохраненную версию, чтобы клиент получил updatedAt
	items := h.store.Load(ctx)
	if input.Index >= len(items) || items[input.Index].MonthlyCost == nil {
		return nil, huma.Error404NotFound("vehicle disappeared after save")
	}

	return &costOutput{Body: *items[input.Index].MonthlyCost}, nil
}

func (h *Handler) chart(ctx context.Context, _ *struct{}) (*chartOutput, error) {
	items := h.store.Load(ctx)

	labels := make([]string, len(items))
	for i, v := range items {
		labels[i] = v.Title()
	}

	return &chartOutput{Body: cost.EstimateGarage(labels, h.assumptions)}, nil
}

func mapError(err error) error {
	switch {
	case errors.Is(err, garage.ErrNotFound):
		return huma.Error404NotFound(err.Error())
	case errors.Is(err, garage.ErrInvalidVehicle):
		return huma.Error422UnprocessableEntity(err.Error())
	default:
		return huma.Error500InternalServerError("garage storage error", err)
	}
}
