package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	DataSourceMock     = "mock"
	DataSourcePostgres = "postgres"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Redis         Redis         `mapstructure:",squash"`
	Auth          Auth          `mapstructure:",squash"`
	Chart         Chart         `mapstructure:",squash"`
	Labels        Labels        `mapstructure:",squash"`
	Mock          Mock          `mapstructure:",squash"`
	SeriesRefresh SeriesRefresh `mapstructure:",squash"`
	ViewSweep     ViewSweep     `mapstructure:",squash"`
	SecretKey     string        `mapstructure:"secret_key"`
}

type App struct {
	LogLevel   string `mapstructure:"log_level"`
	DataSource string `mapstructure:"data_source"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Redis struct {
	Addr     string        `mapstructure:"redis_addr"`
	Password string        `mapstructure:"redis_password"`
	DB       int           `mapstructure:"redis_db"`
	CacheTTL time.Duration `mapstructure:"redis_cache_ttl"`
}

type Auth struct {
	Enabled          bool          `mapstructure:"auth_enabled"`
	ClientID         string        `mapstructure:"auth_client_id"`
	ClientSecretHash string        `mapstructure:"auth_client_secret_hash"`
	Scopes           []string      `mapstructure:"auth_client_scopes"`
	TokenTTL         time.Duration `mapstructure:"auth_token_ttl"`
}

// Chart controla a formatação e as dimensões do gráfico
type Chart struct {
	Locale                 string  `mapstructure:"chart_locale"`
	CurrencyCode           string  `mapstructure:"chart_currency_code"`
	CurrencySymbol         string  `mapstructure:"chart_currency_symbol"`
	CurrencyFractionDigits int     `mapstructure:"chart_currency_fraction_digits"`
	DateLayout             string  `mapstructure:"chart_date_layout"`
	Width                  int     `mapstructure:"chart_width"`
	Height                 int     `mapstructure:"chart_height"`
	ROASMax                float64 `mapstructure:"chart_roas_max"`
}

// Labels são os textos exibidos; não influenciam a formatação
type Labels struct {
	Revenue string `mapstructure:"label_revenue"`
	Spend   string `mapstructure:"label_spend"`
	ROAS    string `mapstructure:"label_roas"`
	Daily   string `mapstructure:"label_daily"`
	Weekly  string `mapstructure:"label_weekly"`
}

// Mock configura o gerador de séries de demonstração
type Mock struct {
	Days      int    `mapstructure:"mock_days"`
	Weeks     int    `mapstructure:"mock_weeks"`
	StartDate string `mapstructure:"mock_start_date"`
	Seed      int64  `mapstructure:"mock_seed"`
}

type SeriesRefresh struct {
	CronSchedule string `mapstructure:"series_refresh_cron"`
	Enabled      bool   `mapstructure:"series_refresh_enabled"`
}

type ViewSweep struct {
	CronSchedule string        `mapstructure:"view_sweep_cron"`
	Enabled      bool          `mapstructure:"view_sweep_enabled"`
	MaxIdle      time.Duration `mapstructure:"view_max_idle"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("DATA_SOURCE", DataSourceMock)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/dashboard?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("REDIS_ADDR", "") // vazio desabilita o cache
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("REDIS_CACHE_TTL", "10m")

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_ENABLED", false)
	viper.SetDefault("AUTH_CLIENT_ID", "dashboard")
	viper.SetDefault("AUTH_CLIENT_SECRET_HASH", "")
	viper.SetDefault("AUTH_CLIENT_SCOPES", "views,cron")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	viper.SetDefault("CHART_LOCALE", "zh-TW")
	viper.SetDefault("CHART_CURRENCY_CODE", "TWD")
	viper.SetDefault("CHART_CURRENCY_SYMBOL", "$")
	viper.SetDefault("CHART_CURRENCY_FRACTION_DIGITS", 0)
	viper.SetDefault("CHART_DATE_LAYOUT", "1/2")
	viper.SetDefault("CHART_WIDTH", 960)
	viper.SetDefault("CHART_HEIGHT", 400)
	viper.SetDefault("CHART_ROAS_MAX", 1.5)

	viper.SetDefault("LABEL_REVENUE", "營收")
	viper.SetDefault("LABEL_SPEND", "廣告花費")
	viper.SetDefault("LABEL_ROAS", "ROAS")
	viper.SetDefault("LABEL_DAILY", "日")
	viper.SetDefault("LABEL_WEEKLY", "週")

	viper.SetDefault("MOCK_DAYS", 30)
	viper.SetDefault("MOCK_WEEKS", 12)
	viper.SetDefault("MOCK_START_DATE", "2024-01-01")
	viper.SetDefault("MOCK_SEED", 42)

	viper.SetDefault("SERIES_REFRESH_CRON", "*/15 * * * *") // A cada 15 minutos
	viper.SetDefault("SERIES_REFRESH_ENABLED", false)

	viper.SetDefault("VIEW_SWEEP_CRON", "*/5 * * * *") // A cada 5 minutos
	viper.SetDefault("VIEW_SWEEP_ENABLED", true)
	viper.SetDefault("VIEW_MAX_IDLE", "30m")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

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

// Validate verifica combinações de configuração que impedem a inicialização
func (c *Config) Validate() error {
	c.App.DataSource = strings.ToLower(strings.TrimSpace(c.App.DataSource))
	switch c.App.DataSource {
	case DataSourceMock, DataSourcePostgres:
	default:
		return fmt.Errorf("config: DATA_SOURCE inválido: %q", c.App.DataSource)
	}

	if c.Chart.ROASMax <= 0 {
		return fmt.Errorf("config: CHART_ROAS_MAX deve ser positivo")
	}

	if c.Chart.CurrencyFractionDigits < 0 {
		return fmt.Errorf("config: CHART_CURRENCY_FRACTION_DIGITS não pode ser negativo")
	}

	if c.Auth.Enabled && c.SecretKey == "" {
		return fmt.Errorf("config: SECRET_KEY é obrigatório com AUTH_ENABLED")
	}

	if c.Auth.Enabled && c.Auth.ClientSecretHash == "" {
		return fmt.Errorf("config: AUTH_CLIENT_SECRET_HASH é obrigatório com AUTH_ENABLED")
	}

	return nil
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado; usando apenas variáveis de ambiente")
}
