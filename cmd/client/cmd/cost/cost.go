package cost

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"carcost/cmd/client/cmd/output"
)

// CostCmd - родительская команда для расчета расходов
var CostCmd = &cobra.Command{
	Use:   "cost",
	Short: "Ежемесячные расходы на автомобиль",
	Long: `Расчет ежемесячных расходов: фиксированные (страховка, кредит, парковка),
топливо и обслуживание. Нечисловые значения считаются нулем.`,
}

func init() {
	CostCmd.AddCommand(CalcCmd)
	CostCmd.AddCommand(ShowCmd)
}

type breakdown struct {
	Fixed       float64
	Fuel        float64
	Maintenance float64
	Total       float64
}

func printBreakdown(out io.Writer, b breakdown) {
	fmt.Fprintf(out, "Фиксированные: %s\n", output.Money(fmt.Sprintf("%.2f", b.Fixed)))
	fmt.Fprintf(out, "Топливо:       %s\n", output.Money(fmt.Sprintf("%.2f", b.Fuel)))
	fmt.Fprintf(out, "Обслуживание:  %s\n", output.Money(fmt.Sprintf("%.2f", b.Maintenance)))
	fmt.Fprintf(out, "Итого в месяц: %s\n", output.Title(fmt.Sprintf("%.2f", b.Total)))
}
