package vehicle

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) makesOp() huma.Operation {
	return huma.Operation{
		OperationID: "vehicles-makes",
		Method:      http.MethodGet,
		Path:        "/api/v1/vehicles/makes",
		Summary:     "Справочник марок",
		Description: "Марки легковых автомобилей из vPIC, отсортированные без учета регистра.",
		Tags:        []string{"vehicles"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) modelsOp() huma.Operation {
	return huma.Operation{
		OperationID: "vehicles-models",
		Method:      http.MethodGet,
		Path:        "/api/v1/vehicles/makes/{make}/models",
		Summary:     "Справочник моделей марки",
		Tags:        []string{"vehicles"},
		Middlewares: h.middleware,
	}
}
