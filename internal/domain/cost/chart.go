package cost

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// DefaultAssumptions - типовые месячные значения для сводного графика.
// График строится по ним, а не по сохраненным расчетам автомобилей.
var DefaultAssumptions = Input{
	Insurance:      120,
	Loan:           250,
	Parking:        60,
	Kms:            1250,
	LitersPer100Km: 7.5,
	PricePerLiter:  1.7,
	Maintenance:    50,
}

// Bar - один столбец графика
type Bar struct {
	Label     string    `json:"label"`
	Breakdown Breakdown `json:"breakdown"`
}

// Chart - оценка расходов по всему гаражу
type Chart struct {
	Bars  []Bar     `json:"bars"`
	Total Breakdown `json:"total"`
}

// EstimateGarage строит график: по столбцу на автомобиль и сумму по гаражу
func EstimateGarage(labels []string, assumptions Input) Chart {
	per := ComputeMonthlyCost(assumptions)

	chart := Chart{Bars: make([]Bar, 0, len(labels))}
	fixed, fuel, maintenance := decimal.Zero, decimal.Zero, decimal.Zero
	for _, label := range labels {
		chart.Bars = append(chart.Bars, Bar{Label: label, Breakdown: per})
		fixed = fixed.Add(decimal.NewFromFloat(per.Fixed))
		fuel = fuel.Add(decimal.NewFromFloat(per.Fuel))
		maintenance = maintenance.Add(decimal.NewFromFloat(per.Maintenance))
	}

	chart.Total = Breakdown{
		Fixed:       money(fixed),
		Fuel:        money(fuel),
		Maintenance: money(maintenance),
		Total:       money(fixed.Add(fuel).Add(maintenance)),
	}

	return chart
}

// RenderBars рисует горизонтальный текстовый график заново при каждом вызове.
// width - длина самого длинного столбца в символах.
func RenderBars(w io.Writer, chart Chart, width int) error {
	if width <= 0 {
		width = 40
	}

	if len(chart.Bars) == 0 {
		_, err := fmt.Fprintln(w, "No cars yet.")
		return err
	}

	labelWidth := 0
	maxTotal := 0.0
	for _, b := range chart.Bars {
		if n := utf8.RuneCountInString(b.Label); n > labelWidth {
			labelWidth = n
		}
		if b.Breakdown.Total > maxTotal {
			maxTotal = b.Breakdown.Total
		}
	}

	for _, b := range chart.Bars {
		n := 0
		if maxTotal > 0 {
			n = int(b.Breakdown.Total / maxTotal * float64(width))
		}
		pad := strings.Repeat(" ", labelWidth-utf8.RuneCountInString(b.Label))
		if _, err := fmt.Fprintf(w, "%s%s | %s %.2f\n", b.Label, pad, strings.Repeat("█", n), b.Breakdown.Total); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "%s | total %.2f (fixed %.2f, fuel %.2f, maintenance %.2f)\n",
		strings.Repeat(" ", labelWidth),
		chart.Total.Total, chart.Total.Fixed, chart.Total.Fuel, chart.Total.Maintenance)
	return err
}
