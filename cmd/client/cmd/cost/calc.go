// cmd/client/cmd/cost/calc.go
package cost

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"carcost/cmd/client/cmd/output"
	"carcost/internal/app/client"
	"carcost/internal/domain/cost"
)

var (
	insurance      string
	loan           string
	parking        string
	kms            string
	litersPer100km string
	pricePerLiter  string
	maintenance    string
)

var CalcCmd = &cobra.Command{
	Use:   "calc [номер]",
	Short: "Рассчитать расходы",
	Long: `Считает ежемесячные расходы по введенным значениям.

С номером автомобиля результат сохраняется в гараже и заменяет прежний расчет.
Без номера только выводится.`,
	Example: `  carcost cost calc 0 --insurance 100 --loan 200 --parking 50 \
    --kms 1250 --l100 7.5 --price 1.70 --maintenance 60`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := cost.ParseInput(insurance, loan, parking, kms, litersPer100km, pricePerLiter, maintenance)

		if len(args) == 0 {
			b := cost.ComputeMonthlyCost(in)
			if output.IsJSON(cmd) {
				return output.PrintJSON(cmd.OutOrStdout(), b)
			}
			printBreakdown(cmd.OutOrStdout(), breakdown(b))
			return nil
		}

		index, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("номер должен быть целым числом: %q", args[0])
		}

		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		saved, err := app.CalculateCost(cmd.Context(), index, in)
		if err != nil {
			return err
		}

		if output.IsJSON(cmd) {
			return output.PrintJSON(cmd.OutOrStdout(), saved)
		}

		printBreakdown(cmd.OutOrStdout(), breakdown{
			Fixed:       saved.Fixed,
			Fuel:        saved.Fuel,
			Maintenance: saved.Maintenance,
			Total:       saved.Total,
		})
		fmt.Fprintf(cmd.OutOrStdout(), "Сохранено: %s\n", output.Muted(saved.UpdatedAt))
		return nil
	},
}

func init() {
	f := CalcCmd.Flags()
	f.StringVar(&insurance, "insurance", "", "страховка в месяц")
	f.StringVar(&loan, "loan", "", "платеж по кредиту в месяц")
	f.StringVar(&parking, "parking", "", "парковка в месяц")
	f.StringVar(&kms, "kms", "", "пробег в месяц, км")
	f.StringVar(&litersPer100km, "l100", "", "расход, л/100 км")
	f.StringVar(&pricePerLiter, "price", "", "цена литра топлива")
	f.StringVar(&maintenance, "maintenance", "", "обслуживание в месяц")
}
