package cost

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"carcost/cmd/client/cmd/output"
	"carcost/internal/app/client"
	"carcost/internal/domain/garage"
)

var ShowCmd = &cobra.Command{
	Use:   "show <номер>",
	Short: "Показать сохраненный расчет",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("номер должен быть целым числом: %q", args[0])
		}

		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		items := app.Garage(cmd.Context())
		if index < 0 || index >= len(items) {
			return fmt.Errorf("%w: номер %d", garage.ErrNotFound, index)
		}

		v := items[index]
		if output.IsJSON(cmd) {
			return output.PrintJSON(cmd.OutOrStdout(), v)
		}

		fmt.Fprintln(cmd.OutOrStdout(), output.Title(v.Title()))
		if v.MonthlyCost == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "Расчет еще не выполнялся")
			return nil
		}

		c := v.MonthlyCost
		printBreakdown(cmd.OutOrStdout(), breakdown{
			Fixed:       c.Fixed,
			Fuel:        c.Fuel,
			Maintenance: c.Maintenance,
			Total:       c.Total,
		})
		fmt.Fprintf(cmd.OutOrStdout(), "Обновлено: %s\n", output.Muted(c.UpdatedAt))
		return nil
	},
}
