// cmd/client/cmd/root.go
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slog"

	"carcost/cmd/client/cmd/cost"
	"carcost/cmd/client/cmd/garage"
	"carcost/cmd/client/cmd/vehicles"
	"carcost/internal/app/client"
	"carcost/internal/app/client/config"
	"carcost/internal/utils/logger"
)

var (
	cfgFile    string
	cfg        *config.Config
	log        *slog.Logger
	app        *client.App
	debug      bool
	jsonOutput bool
	serverURL  string
	remote     bool
)

var rootCmd = &cobra.Command{
	Use:   "carcost",
	Short: "Carcost - гараж и расчет ежемесячных расходов на автомобиль",
	Long: `Carcost хранит список ваших автомобилей и считает, во что обходится
каждый из них в месяц: страховка, кредит, парковка, топливо и обслуживание.

Марки и модели берутся из открытого справочника NHTSA vPIC. Гараж хранится
локально в SQLite или на сервере carcost (флаг --remote).`,
	PersistentPreRunE:  setupApp,
	PersistentPostRunE: closeApp,
	SilenceUsage:       true,
	SilenceErrors:      true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	// Загружаем конфигурацию
	var err error
	cfg, err = loadConfig()
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	// Переопределяем настройки из флагов командной строки
	if serverURL != "" {
		cfg.ServerAddress = serverURL
		cfg.Remote = true
	}
	if remote {
		cfg.Remote = true
	}

	// Настраиваем логгер
	level := cfg.LogLevel
	if debug {
		level = "debug"
	}
	log = logger.WithLevel(cfg.Env, level)

	// Создаем приложение
	app, err = client.New(cmd.Context(), cfg, log)
	if err != nil {
		return fmt.Errorf("ошибка инициализации приложения: %w", err)
	}

	cmd.SetContext(client.WithApp(cmd.Context(), app))
	return nil
}

func closeApp(_ *cobra.Command, _ []string) error {
	if app == nil {
		return nil
	}
	return app.Close()
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Ищем конфиг в стандартных местах
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}

		configDir := filepath.Join(home, ".carcost")
		viper.AddConfigPath(configDir)
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// Конфиг не найден, используем значения по умолчанию
	}

	return config.Load()
}

func init() {
	// Глобальные флаги
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "конфигурационный файл")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "включить отладочный режим")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "вывод в формате JSON")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "адрес сервера carcost (включает --remote)")
	rootCmd.PersistentFlags().BoolVar(&remote, "remote", false, "работать с гаражом на сервере")

	rootCmd.AddCommand(garage.GarageCmd)
	rootCmd.AddCommand(cost.CostCmd)
	rootCmd.AddCommand(vehicles.VehiclesCmd)
	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(statusCmd)
}
