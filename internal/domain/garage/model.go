package garage

// Vehicle - запись гаража. Идентичность позиционная: индекс в списке.
type Vehicle struct {
	Make        string         `json:"make"`
	Model       string         `json:"model"`
	Year        string         `json:"year"`
	MonthlyCost *CostBreakdown `json:"monthlyCost,omitempty"`
}

// CostBreakdown - сохраненная разбивка ежемесячных расходов автомобиля
type CostBreakdown struct {
	Fixed       float64 `json:"fixed"`
	Fuel        float64 `json:"fuel"`
	Maintenance float64 `json:"maintenance"`
	Total       float64 `json:"total"`
	UpdatedAt   string  `json:"updatedAt"`
}

// Title возвращает подпись вида "Make Model Year" без лишних пробелов
func (v Vehicle) Title() string {
	title := v.Make + " " + v.Model
	if v.Year != "" {
		title += " " + v.Year
	}
	return title
}
