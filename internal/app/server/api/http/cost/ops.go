package cost

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) estimateOp() huma.Operation {
	return huma.Operation{
		OperationID: "cost-estimate",
		Method:      http.MethodPost,
		Path:        "/api/v1/cost/estimate",
		Summary:     "Рассчитать ежемесячные расходы",
		Description: "Чистый расчет без сохранения: fixed = insurance + loan + parking, fuel = kms/100 * л/100км * цена, total = fixed + fuel + maintenance.",
		Tags:        []string{"cost"},
		Middlewares: h.middleware,
	}
}
