package vehicles

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"carcost/cmd/client/cmd/output"
	"carcost/internal/app/client"
	"carcost/internal/domain/vehicle"
)

// VehiclesCmd - справочник марок и моделей NHTSA vPIC
var VehiclesCmd = &cobra.Command{
	Use:   "vehicles",
	Short: "Справочник марок и моделей",
}

var MakesCmd = &cobra.Command{
	Use:   "makes",
	Short: "Список марок",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		makes, err := app.Makes(cmd.Context())
		return printNames(cmd, makes, err, vehicle.MakesPlaceholder)
	},
}

var ModelsCmd = &cobra.Command{
	Use:     "models <марка>",
	Short:   "Список моделей марки",
	Example: `  carcost vehicles models "LAND ROVER"`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		models, err := app.Models(cmd.Context(), args[0])
		return printNames(cmd, models, err, vehicle.ModelsPlaceholder)
	},
}

func init() {
	VehiclesCmd.AddCommand(MakesCmd)
	VehiclesCmd.AddCommand(ModelsCmd)
}

// printNames выводит список; при ошибке загрузки вместо списка печатается заглушка
func printNames(cmd *cobra.Command, names []string, err error, placeholder string) error {
	out := cmd.OutOrStdout()

	if err != nil {
		fmt.Fprintln(out, output.Failed(placeholder))
		return err
	}

	if output.IsJSON(cmd) {
		if names == nil {
			names = []string{}
		}
		return output.PrintJSON(out, names)
	}

	writeNames(out, names)
	return nil
}

func writeNames(out io.Writer, names []string) {
	for _, n := range names {
		fmt.Fprintln(out, n)
	}
	fmt.Fprintln(out, output.Muted(fmt.Sprintf("Всего: %d", len(names))))
}
