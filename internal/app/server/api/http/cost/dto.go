package cost

import (
	"encoding/json"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"carcost/internal/domain/cost"
)

// Amount принимает число, строку или null. Все, что не разбирается в конечное
// число, становится нулем, поэтому схема не ограничивает тип значения.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*a = Amount(cost.ParseAmount(strings.TrimSpace(string(data))))
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = Amount(cost.ParseAmount(s))
		return nil
	}

	*a = 0
	return nil
}

func (a Amount) Schema(_ huma.Registry) *huma.Schema {
	return &huma.Schema{
		Description: "Число или строка с числом; нечисловое значение считается нулем",
		Examples:    []any{100, "1.70"},
	}
}

// Form - поля формы расчета расходов
type Form struct {
	Insurance      Amount `json:"insurance,omitempty" doc:"Страховка в месяц"`
	Loan           Amount `json:"loan,omitempty" doc:"Платеж по кредиту в месяц"`
	Parking        Amount `json:"parking,omitempty" doc:"Парковка в месяц"`
	Kms            Amount `json:"kms,omitempty" doc:"Пробег, км"`
	LitersPer100Km Amount `json:"litersPer100km,omitempty" doc:"Расход, л/100 км"`
	PricePerLiter  Amount `json:"pricePerLiter,omitempty" doc:"Цена литра"`
	Maintenance    Amount `json:"maintenance,omitempty" doc:"Обслуживание в месяц"`
}

func (f Form) Input() cost.Input {
	return cost.Input{
		Insurance:      float64(f.Insurance),
		Loan:           float64(f.Loan),
		Parking:        float64(f.Parking),
		Kms:            float64(f.Kms),
		LitersPer100Km: float64(f.LitersPer100Km),
		PricePerLiter:  float64(f.PricePerLiter),
		Maintenance:    float64(f.Maintenance),
	}
}

type estimateInput struct {
	Body Form
}

type estimateOutput struct {
	Body cost.Breakdown
}
