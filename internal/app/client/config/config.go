package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	shared "carcost/internal/config"
)

const (
	defaultServerAddress = "localhost:8080"
	defaultConfigDir     = ".carcost"
	defaultDataFile      = "garage.db"
)

type Config struct {
	Env           string        `mapstructure:"app_env"`
	LogLevel      string        `mapstructure:"log_level"`
	ConfigDir     string        `mapstructure:"config_dir"`
	DataPath      string        `mapstructure:"data_path"`
	StorageKey    string        `mapstructure:"garage_storage_key"`
	VPICBaseURL   string        `mapstructure:"vpic_base_url"`
	VPICTimeout   time.Duration `mapstructure:"vpic_timeout_seconds"`
	ServerAddress string        `mapstructure:"server_address"`
	Remote        bool          `mapstructure:"remote"`
	EnableTLS     bool          `mapstructure:"enable_tls"`
}

// Load читает .env, переменные окружения и уже прочитанный viper конфиг-файл
func Load() (*Config, error) {
	// Определяем путь к .env файлу (относительно места запуска)
	envPath := ".env"
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		// Пробуем найти .env в родительской директории
		envPath = "../.env"
	}

	// Загружаем .env файл если существует
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			fmt.Printf("Ошибка загрузки .env файла: %v\n", err)
		}
	}

	viper.AutomaticEnv()

	// Устанавливаем значения по умолчанию
	shared.SetDefaults()
	viper.SetDefault("server_address", defaultServerAddress)
	viper.SetDefault("config_dir", defaultConfigDir)
	viper.SetDefault("remote", false)
	viper.SetDefault("enable_tls", false)

	// Получаем домашнюю директорию пользователя
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	// Вычисляем пути для хранения данных
	configDir := viper.GetString("config_dir")
	if configDir == defaultConfigDir {
		configDir = filepath.Join(homeDir, configDir)
	}

	// Создаем директории если их нет
	if err := os.MkdirAll(configDir, 0700); err != nil {
		fmt.Printf("Ошибка создания директории конфигурации: %v\n", err)
	}

	// Путь к базе по умолчанию общий с сервером; клиент хранит ее в своей директории
	dataPath := viper.GetString("data_path")
	if dataPath == shared.DefaultDataPath {
		dataPath = filepath.Join(configDir, defaultDataFile)
	}

	config := &Config{
		Env:           viper.GetString("app_env"),
		LogLevel:      viper.GetString("log_level"),
		ConfigDir:     configDir,
		DataPath:      dataPath,
		StorageKey:    viper.GetString("garage_storage_key"),
		VPICBaseURL:   viper.GetString("vpic_base_url"),
		VPICTimeout:   time.Duration(viper.GetInt("vpic_timeout_seconds")) * time.Second,
		ServerAddress: viper.GetString("server_address"),
		Remote:        viper.GetBool("remote"),
		EnableTLS:     viper.GetBool("enable_tls"),
	}

	// Валидация конфигурации
	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.StorageKey == "" {
		return fmt.Errorf("garage_storage_key не может быть пустым")
	}
	if c.VPICBaseURL == "" {
		return fmt.Errorf("vpic_base_url не может быть пустым")
	}
	if c.Remote && c.ServerAddress == "" {
		return fmt.Errorf("server_address не может быть пустым в режиме remote")
	}
	return nil
}

// ServerURL возвращает базовый URL сервера с учетом TLS
func (c *Config) ServerURL() string {
	scheme := "http://"
	if c.EnableTLS {
		scheme = "https://"
	}
	return scheme + c.ServerAddress
}
