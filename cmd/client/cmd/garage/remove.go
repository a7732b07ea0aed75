package garage

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"carcost/internal/app/client"
)

var RemoveCmd = &cobra.Command{
	Use:   "remove <номер>",
	Short: "Удалить автомобиль",
	Long:  `Удаляет автомобиль по номеру из garage list. Несуществующий номер ничего не меняет.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		index, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("номер должен быть целым числом: %q", args[0])
		}

		before := len(app.Garage(cmd.Context()))
		if err := app.RemoveVehicle(cmd.Context(), index); err != nil {
			return err
		}

		if index < 0 || index >= before {
			fmt.Fprintf(cmd.OutOrStdout(), "Автомобиля с номером %d нет, гараж не изменился\n", index)
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Автомобиль %d удален\n", index)
		return nil
	},
}
