package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	AdsAPI           AdsAPI           `mapstructure:",squash"`
	Auth             Auth             `mapstructure:",squash"`
	PortfolioRefresh PortfolioRefresh `mapstructure:",squash"`
	ServingProbe     ServingProbe     `mapstructure:",squash"`
	Retention        Retention        `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type AdsAPI struct {
	BaseURL        string `mapstructure:"ads_api_base_url"`
	AccessToken    string `mapstructure:"ads_api_access_token"`
	TimeoutSeconds int    `mapstructure:"ads_api_timeout_seconds"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type PortfolioRefresh struct {
	IntervalMinutes       int  `mapstructure:"portfolio_refresh_interval_minutes"`
	MaxConcurrentAccounts int  `mapstructure:"portfolio_refresh_max_concurrent_accounts"`
	Enabled               bool `mapstructure:"portfolio_refresh_enabled"`
}

type ServingProbe struct {
	ReconcileDelaySeconds int `mapstructure:"serving_probe_reconcile_delay_seconds"`
}

type Retention struct {
	CronSchedule string `mapstructure:"retention_cron"`
	SnapshotDays int    `mapstructure:"retention_snapshot_days"`
	ProbeDays    int    `mapstructure:"retention_probe_days"`
	Enabled      bool   `mapstructure:"retention_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/account_health")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("ADS_API_BASE_URL", "https://ads-gateway.internal/api/v1")
	viper.SetDefault("ADS_API_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL
	viper.SetDefault("ADS_API_TIMEOUT_SECONDS", 30)

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	// Defaults do ciclo de atualização do portfólio
	viper.SetDefault("PORTFOLIO_REFRESH_INTERVAL_MINUTES", 15)       // A cada 15 minutos
	viper.SetDefault("PORTFOLIO_REFRESH_MAX_CONCURRENT_ACCOUNTS", 8) // 8 contas em paralelo
	viper.SetDefault("PORTFOLIO_REFRESH_ENABLED", true)

	// Espera antes da releitura de reconciliação da sonda de veiculação
	viper.SetDefault("SERVING_PROBE_RECONCILE_DELAY_SECONDS", 2)

	// Defaults da limpeza de retenção
	viper.SetDefault("RETENTION_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("RETENTION_SNAPSHOT_DAYS", 90)
	viper.SetDefault("RETENTION_PROBE_DAYS", 7)
	viper.SetDefault("RETENTION_ENABLED", true)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
