package garage

import (
	"fmt"

	"github.com/spf13/cobra"

	"carcost/internal/app/client"
)

var clearYes bool

var ClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Удалить все автомобили",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		if !clearYes {
			return fmt.Errorf("подтвердите очистку флагом --yes")
		}

		if err := app.ClearGarage(cmd.Context()); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Гараж очищен")
		return nil
	},
}

func init() {
	ClearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "не спрашивать подтверждение")
}
