// cmd/client/cmd/garage/add.go
package garage

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"carcost/cmd/client/cmd/output"
	"carcost/internal/app/client"
	"carcost/internal/domain/garage"
)

var (
	addMake  string
	addModel string
	addYear  string
)

var AddCmd = &cobra.Command{
	Use:   "add",
	Short: "Добавить автомобиль",
	Long: `Добавляет автомобиль в начало гаража.

Если --make или --model не заданы и ввод идет с терминала, марка и модель
выбираются интерактивно из справочника vPIC.`,
	Example: `  carcost garage add --make HONDA --model Civic --year 2020
  carcost garage add`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		v := garage.Vehicle{Make: addMake, Model: addModel, Year: addYear}

		if v.Make == "" || v.Model == "" {
			if !term.IsTerminal(int(os.Stdin.Fd())) {
				return fmt.Errorf("укажите --make и --model")
			}

			v, err = promptVehicle(cmd.Context(), app, bufio.NewReader(cmd.InOrStdin()), cmd.OutOrStdout(), v)
			if err != nil {
				return err
			}
		}

		if err := app.AddVehicle(cmd.Context(), v); err != nil {
			return err
		}

		items := app.Garage(cmd.Context())
		if output.IsJSON(cmd) {
			return output.PrintJSON(cmd.OutOrStdout(), items)
		}

		added := v
		if len(items) > 0 {
			added = items[0]
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Добавлен: %s (в гараже: %d)\n", output.Title(added.Title()), len(items))
		return nil
	},
}

func init() {
	AddCmd.Flags().StringVar(&addMake, "make", "", "марка")
	AddCmd.Flags().StringVar(&addModel, "model", "", "модель")
	AddCmd.Flags().StringVar(&addYear, "year", "", "год выпуска (необязательно)")
}
