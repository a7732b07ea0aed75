package garage

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "garage-list",
		Method:      http.MethodGet,
		Path:        "/api/v1/garage",
		Summary:     "Список автомобилей гаража",
		Tags:        []string{"garage"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) addOp() huma.Operation {
	return huma.Operation{
		OperationID:   "garage-add",
		Method:        http.MethodPost,
		Path:          "/api/v1/garage",
		Summary:       "Добавить автомобиль",
		Description:   "Добавляет автомобиль в начало гаража. Марка и модель обязательны.",
		Tags:          []string{"garage"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) replaceOp() huma.Operation {
	return huma.Operation{
		OperationID: "garage-replace",
		Method:      http.MethodPut,
		Path:        "/api/v1/garage",
		Summary:     "Заменить гараж целиком",
		Description: "Сохраняет список одной записью. Каждый автомобиль проверяется так же, как при добавлении.",
		Tags:        []string{"garage"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) removeOp() huma.Operation {
	return huma.Operation{
		OperationID: "garage-remove",
		Method:      http.MethodDelete,
		Path:        "/api/v1/garage/{index}",
		Summary:     "Удалить автомобиль по позиции",
		Tags:        []string{"garage"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) clearOp() huma.Operation {
	return huma.Operation{
		OperationID:   "garage-clear",
		Method:        http.MethodDelete,
		Path:          "/api/v1/garage",
		Summary:       "Очистить гараж",
		Tags:          []string{"garage"},
		DefaultStatus: http.StatusNoContent,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) saveCostOp() huma.Operation {
	return huma.Operation{
		OperationID: "garage-save-cost",
		Method:      http.MethodPut,
		Path:        "/api/v1/garage/{index}/cost",
		Summary:     "Рассчитать и сохранить расходы автомобиля",
		Description: "Нечисловые и бесконечные значения считаются нулем. Предыдущий расчет перезаписывается.",
		Tags:        []string{"garage", "cost"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) chartOp() huma.Operation {
	return huma.Operation{
		OperationID: "garage-chart",
		Method:      http.MethodGet,
		Path:        "/api/v1/garage/chart",
		Summary:     "Сводная оценка расходов по гаражу",
		Description: "Строится по типовым значениям, а не по сохраненным расчетам.",
		Tags:        []string{"garage", "cost"},
		Middlewares: h.middleware,
	}
}
