package cmd

import (
	"github.com/spf13/cobra"

	"carcost/cmd/client/cmd/output"
	"carcost/internal/app/client"
	"carcost/internal/domain/cost"
)

var chartWidth int

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Сводный график расходов по гаражу",
	Long: `Строит оценку расходов для каждого автомобиля по типовым значениям
(страховка 120, кредит 250, парковка 60, 1250 км при 7.5 л/100 км по 1.7,
обслуживание 50) и общую сумму. Сохраненные расчеты не учитываются.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		chart := app.Chart(cmd.Context())
		if output.IsJSON(cmd) {
			return output.PrintJSON(cmd.OutOrStdout(), chart)
		}
		return cost.RenderBars(cmd.OutOrStdout(), chart, chartWidth)
	},
}

func init() {
	chartCmd.Flags().IntVar(&chartWidth, "width", 40, "длина самого длинного столбца")
}
