package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"carcost/cmd/client/cmd/output"
	"carcost/internal/app/client"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Режим работы и доступность сервера",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if !app.IsRemote() {
			fmt.Fprintf(out, "Режим: локальный (%s)\n", cfg.DataPath)
			fmt.Fprintf(out, "Автомобилей в гараже: %d\n", len(app.Garage(cmd.Context())))
			return nil
		}

		fmt.Fprintf(out, "Режим: сервер %s\n", cfg.ServerURL())
		if err := app.CheckConnection(cmd.Context()); err != nil {
			fmt.Fprintln(out, output.Failed("Сервер недоступен"))
			return err
		}

		fmt.Fprintln(out, output.Money("Сервер доступен"))
		fmt.Fprintf(out, "Автомобилей в гараже: %d\n", len(app.Garage(cmd.Context())))
		return nil
	},
}
