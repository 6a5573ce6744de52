package config

import (
	"errors"
	"fmt"
	"time"

	"offboardadmin/internal/apiclient"
	"offboardadmin/pkg/logger"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Settings agrupa as configurações lidas do ambiente e do arquivo opcional
// config.yaml. Variáveis de ambiente têm precedência sobre o arquivo.
type Settings struct {
	APIBaseURL    string        `mapstructure:"api_base_url"`
	APITimeout    time.Duration `mapstructure:"api_timeout"`
	PerPage       int           `mapstructure:"per_page"`
	LogLevel      string        `mapstructure:"log_level"`
	LogFile       string        `mapstructure:"log_file"`
	LogConsole    bool          `mapstructure:"log_console"`
	StubPort      string        `mapstructure:"stub_port"`
	StubCertFile  string        `mapstructure:"stub_cert_file"`
	StubKeyFile   string        `mapstructure:"stub_key_file"`
	DashboardMes  int           `mapstructure:"dashboard_meses"`
	AtividadesMax int           `mapstructure:"atividades_max"`
}

// App - a struct that holds the shared application dependencies
type App struct {
	Settings Settings
	Logger   *zap.Logger
	API      *apiclient.Client
}

// Load lê as configurações com defaults sensatos para desenvolvimento local.
func Load() (Settings, error) {
	v := viper.New()

	v.SetDefault("api_base_url", "http://localhost:8080")
	v.SetDefault("api_timeout", 30*time.Second)
	v.SetDefault("per_page", 20)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "logs/offboardadmin.log")
	v.SetDefault("log_console", true)
	v.SetDefault("stub_port", "8080")
	v.SetDefault("dashboard_meses", 6)
	v.SetDefault("atividades_max", 10)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("lendo config.yaml: %w", err)
		}
	}

	v.SetEnvPrefix("OFFBOARD")
	v.AutomaticEnv()

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decodificando configuração: %w", err)
	}
	return s, nil
}

// NewApp - a function that builds the shared dependencies from settings
func NewApp() (*App, error) {
	settings, err := Load()
	if err != nil {
		return nil, err
	}

	log := logger.New(logger.Config{
		Level:      settings.LogLevel,
		File:       settings.LogFile,
		MaxSizeMB:  50,
		MaxBackups: 5,
		MaxAgeDays: 30,
		Console:    settings.LogConsole,
	})

	api, err := apiclient.New(apiclient.Config{
		BaseURL: settings.APIBaseURL,
		Timeout: settings.APITimeout,
	}, log)
	if err != nil {
		return nil, err
	}

	return &App{
		Settings: settings,
		Logger:   log,
		API:      api,
	}, nil
}

// CloseAll - a function that flushes pending log output
func (cfg *App) CloseAll() {
	if cfg.Logger != nil {
		_ = cfg.Logger.Sync()
	}
}
