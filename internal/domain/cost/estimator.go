// Package cost считает ежемесячные расходы на автомобиль.
package cost

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Input - исходные данные расчета за месяц
type Input struct {
	Insurance      float64 `json:"insurance"`
	Loan           float64 `json:"loan"`
	Parking        float64 `json:"parking"`
	Kms            float64 `json:"kms"`
	LitersPer100Km float64 `json:"litersPer100km"`
	PricePerLiter  float64 `json:"pricePerLiter"`
	Maintenance    float64 `json:"maintenance"`
}

// Breakdown - разбивка расходов. Отметку времени ставит вызывающий код.
type Breakdown struct {
	Fixed       float64 `json:"fixed"`
	Fuel        float64 `json:"fuel"`
	Maintenance float64 `json:"maintenance"`
	Total       float64 `json:"total"`
}

var hundred = decimal.NewFromInt(100)

// ComputeMonthlyCost:
//
//	fixed = insurance + loan + parking
//	fuel  = kms/100 * litersPer100km * pricePerLiter
//	total = fixed + fuel + maintenance
//
// NaN and infinite inputs count as 0. Fixed, fuel and maintenance are rounded
// to cents, and total is the sum of the rounded parts.
func ComputeMonthlyCost(in Input) Breakdown {
	insurance := amount(in.Insurance)
	loan := amount(in.Loan)
	parking := amount(in.Parking)
	kms := amount(in.Kms)
	consumption := amount(in.LitersPer100Km)
	price := amount(in.PricePerLiter)
	maintenance := amount(in.Maintenance)

	fixed := insurance.Add(loan).Add(parking).Round(2)
	fuel := kms.Div(hundred).Mul(consumption).Mul(price).Round(2)
	maintenance = maintenance.Round(2)

	return Breakdown{
		Fixed:       money(fixed),
		Fuel:        money(fuel),
		Maintenance: money(maintenance),
		Total:       money(fixed.Add(fuel).Add(maintenance)),
	}
}

// ParseAmount разбирает пользовательский ввод. Все, что не является конечным
// числом, превращается в 0. Запятая принимается как десятичный разделитель.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, ",", ".")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ParseInput собирает Input из текстовых полей формы
func ParseInput(insurance, loan, parking, kms, litersPer100km, pricePerLiter, maintenance string) Input {
	return Input{
		Insurance:      ParseAmount(insurance),
		Loan:           ParseAmount(loan),
		Parking:        ParseAmount(parking),
		Kms:            ParseAmount(kms),
		LitersPer100Km: ParseAmount(litersPer100km),
		PricePerLiter:  ParseAmount(pricePerLiter),
		Maintenance:    ParseAmount(maintenance),
	}
}

func amount(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}

func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
