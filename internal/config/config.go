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
	App                 App                 `mapstructure:",squash"`
	Server              Server              `mapstructure:",squash"`
	Database            Database            `mapstructure:",squash"`
	BalanceSnapshotSync BalanceSnapshotSync `mapstructure:",squash"`
	CompanyGoals        CompanyGoals        `mapstructure:",squash"`
	Projection          Projection          `mapstructure:",squash"`
	Cors                Cors                `mapstructure:",squash"`
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

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type BalanceSnapshotSync struct {
	CronSchedule  string `mapstructure:"balance_snapshot_sync_cron"`
	Enabled       bool   `mapstructure:"balance_snapshot_sync_enabled"`
	MonthLookBack int    `mapstructure:"balance_snapshot_sync_month_lookback"`
}

// CompanyGoals são as metas anuais usadas quando o ano não tem meta salva
type CompanyGoals struct {
	DefaultAnnualRevenue int64 `mapstructure:"company_goal_default_annual_revenue"`
	DefaultAnnualCash    int64 `mapstructure:"company_goal_default_annual_cash"`
}

type Projection struct {
	DefaultHorizonMonths int `mapstructure:"projection_default_horizon_months"`
	MaxHorizonMonths     int `mapstructure:"projection_max_horizon_months"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/medgm?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	// Snapshot dos saldos de fechamento
	viper.SetDefault("BALANCE_SNAPSHOT_SYNC_CRON", "0 2 1 * *") // No primeiro dia de cada mês às 2h da manhã
	viper.SetDefault("BALANCE_SNAPSHOT_SYNC_ENABLED", false)    // Habilitar snapshot de saldos
	viper.SetDefault("BALANCE_SNAPSHOT_SYNC_MONTH_LOOKBACK", 1) // Meses fechados a salvar a cada execução

	viper.SetDefault("COMPANY_GOAL_DEFAULT_ANNUAL_REVENUE", 5000000)
	viper.SetDefault("COMPANY_GOAL_DEFAULT_ANNUAL_CASH", 1000000)

	viper.SetDefault("PROJECTION_DEFAULT_HORIZON_MONTHS", 3)
	viper.SetDefault("PROJECTION_MAX_HORIZON_MONTHS", 12)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")

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
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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

	if err := config.Validate(); err != nil {
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

// Validate confere os limites que os casos de uso assumem
func (c *Config) Validate() error {
	if c.Projection.MaxHorizonMonths < 1 {
		return fmt.Errorf("PROJECTION_MAX_HORIZON_MONTHS deve ser maior que zero: %d", c.Projection.MaxHorizonMonths)
	}
	if c.Projection.DefaultHorizonMonths < 1 || c.Projection.DefaultHorizonMonths > c.Projection.MaxHorizonMonths {
		return fmt.Errorf("PROJECTION_DEFAULT_HORIZON_MONTHS fora do intervalo 1..%d: %d",
			c.Projection.MaxHorizonMonths, c.Projection.DefaultHorizonMonths)
	}
	if c.BalanceSnapshotSync.MonthLookBack < 1 {
		return fmt.Errorf("BALANCE_SNAPSHOT_SYNC_MONTH_LOOKBACK deve ser maior que zero: %d", c.BalanceSnapshotSync.MonthLookBack)
	}
	if c.CompanyGoals.DefaultAnnualRevenue < 0 || c.CompanyGoals.DefaultAnnualCash < 0 {
		return fmt.Errorf("metas anuais padrão não podem ser negativas")
	}
	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
