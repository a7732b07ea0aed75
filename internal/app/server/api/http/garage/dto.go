package garage

import (
	costAPI "carcost/internal/app/server/api/http/cost"
	"carcost/internal/domain/cost"
	"carcost/internal/domain/garage"
)

type listOutput struct {
	Body listResponse
}

type listResponse struct {
	Vehicles []item `json:"vehicles" doc:"Автомобили гаража, новые первыми"`
	Count    int    `json:"count"`
}

// item - запись гаража вместе с ее позицией, которая служит идентификатором
type item struct {
	Index int `json:"index" doc:"Позиция в гараже"`
	garage.Vehicle
}

type addInput struct {
	Body addRequest
}

type addRequest struct {
	Make  string `json:"make" example:"HONDA" doc:"Марка" minLength:"1"`
	Model string `json:"model" example:"Civic" doc:"Модель" minLength:"1"`
	Year  string `json:"year,omitempty" example:"2020" doc:"Год выпуска, необязателен"`
}

type addOutput struct {
	Body listResponse
}

type replaceInput struct {
	Body replaceRequest
}

type replaceRequest struct {
	Vehicles []garage.Vehicle `json:"vehicles" doc:"Новое содержимое гаража целиком, в порядке отображения"`
}

type indexInput struct {
	Index int `path:"index" minimum:"0" example:"0" doc:"Позиция в гараже"`
}

type costInput struct {
	Index int `path:"index" minimum:"0" example:"0" doc:"Позиция в гараже"`
	Body  costAPI.Form
}

type costOutput struct {
	Body garage.CostBreakdown
}

type chartOutput struct {
	Body cost.Chart
}

func toListResponse(vehicles []garage.Vehicle) listResponse {
	items := make([]item, len(vehicles))
	for i, v := range vehicles {
		items[i] = item{Index: i, Vehicle: v}
	}
	return listResponse{Vehicles: items, Count: len(items)}
}
