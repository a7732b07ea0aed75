package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath  = ".env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	DefaultStorageKey  = "car_cost_snapshot_garage"
	DefaultVPICBaseURL = "https://vpic.nhtsa.dot.gov/api/vehicles"
	DefaultRunAddress  = ":8080"
	DefaultDataPath    = "carcost.db"
	defaultVPICTimeout = 15
)

type Config struct {
	Env     string
	DB      db
	Server  server
	Logger  logger
	Garage  garage
	Catalog catalog
}

type db struct {
	DatabaseURI string `env:"DATABASE_URI"`
	DataPath    string `env:"DATA_PATH"`
}

type server struct {
	RunAddress string `env:"RUN_ADDRESS"`
}

type logger struct {
	LogLevel string `env:"LOG_LEVEL"`
}

type garage struct {
	StorageKey string `env:"GARAGE_STORAGE_KEY"`
}

type catalog struct {
	BaseURL string        `env:"VPIC_BASE_URL"`
	Timeout time.Duration `env:"VPIC_TIMEOUT_SECONDS"`
}

// MustLoad загружает конфигурацию сервера из окружения (и .env, если он есть)
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	return cfg
}

// Load читает конфигурацию и проверяет ее
func Load() (*Config, error) {
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			log.Printf("failed to load %s: %v", envPath, err)
		}
	}

	viper.AutomaticEnv()
	SetDefaults()

	config := &Config{
		Env: viper.GetString("app_env"),
		DB: db{
			DatabaseURI: viper.GetString("database_uri"),
			DataPath:    viper.GetString("data_path"),
		},
		Server: server{RunAddress: viper.GetString("run_address")},
		Logger: logger{LogLevel: viper.GetString("log_level")},
		Garage: garage{StorageKey: viper.GetString("garage_storage_key")},
		Catalog: catalog{
			BaseURL: viper.GetString("vpic_base_url"),
			Timeout: time.Duration(viper.GetInt("vpic_timeout_seconds")) * time.Second,
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// SetDefaults регистрирует значения по умолчанию, общие для клиента и сервера
func SetDefaults() {
	viper.SetDefault("app_env", EnvLocal)
	// Пустой уровень - уровень по умолчанию для APP_ENV
	viper.SetDefault("log_level", "")
	viper.SetDefault("run_address", DefaultRunAddress)
	viper.SetDefault("data_path", DefaultDataPath)
	viper.SetDefault("garage_storage_key", DefaultStorageKey)
	viper.SetDefault("vpic_base_url", DefaultVPICBaseURL)
	viper.SetDefault("vpic_timeout_seconds", defaultVPICTimeout)
}

func (c *Config) Validate() error {
	if c.Garage.StorageKey == "" {
		return fmt.Errorf("garage_storage_key must not be empty")
	}
	if c.Catalog.BaseURL == "" {
		return fmt.Errorf("vpic_base_url must not be empty")
	}
	if c.Catalog.Timeout <= 0 {
		return fmt.Errorf("vpic_timeout_seconds must be positive")
	}
	if c.DB.DatabaseURI == "" && c.DB.DataPath == "" {
		return fmt.Errorf("either database_uri or data_path must be set")
	}
	return nil
}

// UsePostgres сообщает, нужно ли хранить гараж в PostgreSQL вместо SQLite
func (c *Config) UsePostgres() bool {
	return c.DB.DatabaseURI != ""
}
