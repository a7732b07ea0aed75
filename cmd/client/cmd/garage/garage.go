package garage

import (
	"github.com/spf13/cobra"
)

// GarageCmd - родительская команда для операций с гаражом
var GarageCmd = &cobra.Command{
	Use:   "garage",
	Short: "Управление гаражом",
	Long:  `Просмотр, добавление и удаление автомобилей. Новые автомобили добавляются в начало списка.`,
}

func init() {
	GarageCmd.AddCommand(ListCmd)
	GarageCmd.AddCommand(AddCmd)
	GarageCmd.AddCommand(RemoveCmd)
	GarageCmd.AddCommand(ClearCmd)
}
