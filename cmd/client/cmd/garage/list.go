// cmd/client/cmd/garage/list.go
package garage

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"carcost/cmd/client/cmd/output"
	"carcost/internal/app/client"
	"carcost/internal/domain/garage"
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список автомобилей",
	Long: `Показывает автомобили гаража, новые первыми.

Номер в первой колонке используется командами remove, cost calc и cost show.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		items := app.Garage(cmd.Context())
		if output.IsJSON(cmd) {
			return output.PrintJSON(cmd.OutOrStdout(), items)
		}
		return printTable(cmd.OutOrStdout(), items)
	},
}

func printTable(out io.Writer, items []garage.Vehicle) error {
	if len(items) == 0 {
		fmt.Fprintln(out, "Гараж пуст")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "#\tМарка\tМодель\tГод\tВ месяц\tОбновлено\t\n")
	fmt.Fprintf(w, "---\t---\t---\t---\t---\t---\t\n")

	for i, v := range items {
		year := v.Year
		if year == "" {
			year = "-"
		}

		total, updated := "-", "-"
		if v.MonthlyCost != nil {
			total = fmt.Sprintf("%.2f", v.MonthlyCost.Total)
			updated = v.MonthlyCost.UpdatedAt
		}

		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t\n", i, v.Make, v.Model, year, total, updated)
	}

	return w.Flush()
}
