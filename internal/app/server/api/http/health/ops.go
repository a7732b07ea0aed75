package health

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) healthCheckOp() huma.Operation {
	return huma.Operation{
		OperationID: "health-check",
		Method:      http.MethodGet,
		Path:        "/api/v1/health",
		Summary:     "Состояние сервиса",
		Description: "Всегда 200. При недоступном хранилище status и storage равны DEGRADED.",
		Tags:        []string{"health"},
		Middlewares: h.middleware,
	}
}
