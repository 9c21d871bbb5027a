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
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	GoogleAds    GoogleAds    `mapstructure:",squash"`
	OpenAI       OpenAI       `mapstructure:",squash"`
	Insights     Insights     `mapstructure:",squash"`
	AccountSync  AccountSync  `mapstructure:",squash"`
	CacheCleanup CacheCleanup `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
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

type GoogleAds struct {
	BaseURL        string `mapstructure:"google_ads_base_url"`
	Version        string `mapstructure:"google_ads_version"`
	URL            string `mapstructure:"-"`
	DeveloperToken string `mapstructure:"google_ads_developer_token"`
	ClientID       string `mapstructure:"google_ads_client_id"`
	ClientSecret   string `mapstructure:"google_ads_client_secret"`
	RefreshToken   string `mapstructure:"google_ads_refresh_token"`
	TokenURL       string `mapstructure:"google_ads_token_url"`
}

type OpenAI struct {
	APIKey      string  `mapstructure:"openai_api_key"`
	Model       string  `mapstructure:"openai_model"`
	MaxTokens   int     `mapstructure:"openai_max_tokens"`
	Temperature float64 `mapstructure:"openai_temperature"`
}

// Insights carrega os limiares das heurísticas. Os valores padrão são os
// usados em produção; não há base empírica declarada para eles, por isso
// ficam configuráveis em vez de fixos no código.
type Insights struct {
	HighConversionRate     float64 `mapstructure:"insights_high_conversion_rate"`
	MediumConversionRate   float64 `mapstructure:"insights_medium_conversion_rate"`
	LowConversionRate      float64 `mapstructure:"insights_low_conversion_rate"`
	LowCostPerConversion   float64 `mapstructure:"insights_low_cost_per_conversion"`
	HighCostPerConversion  float64 `mapstructure:"insights_high_cost_per_conversion"`
	BudgetAdjustmentFactor float64 `mapstructure:"insights_budget_adjustment_factor"`
	KeywordMinClicks       int64   `mapstructure:"insights_keyword_min_clicks"`
	KeywordLowCPC          float64 `mapstructure:"insights_keyword_low_cpc"`
	KeywordHighCPC         float64 `mapstructure:"insights_keyword_high_cpc"`
	CacheTTLHours          int     `mapstructure:"insights_cache_ttl_hours"`
}

type AccountSync struct {
	CronSchedule        string `mapstructure:"account_sync_cron"`
	BatchSize           int    `mapstructure:"account_sync_batch_size"`
	RequestDelaySeconds int    `mapstructure:"account_sync_request_delay_seconds"`
	Enabled             bool   `mapstructure:"account_sync_enabled"`
}

type CacheCleanup struct {
	CronSchedule       string `mapstructure:"cache_cleanup_cron"`
	DailyRetentionDays int    `mapstructure:"cache_cleanup_daily_retention_days"`
	Enabled            bool   `mapstructure:"cache_cleanup_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/ads_assistant")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("GOOGLE_ADS_BASE_URL", "https://googleads.googleapis.com")
	viper.SetDefault("GOOGLE_ADS_VERSION", "v16")
	viper.SetDefault("GOOGLE_ADS_DEVELOPER_TOKEN", "your_developer_token")
	viper.SetDefault("GOOGLE_ADS_CLIENT_ID", "your_client_id")
	viper.SetDefault("GOOGLE_ADS_CLIENT_SECRET", "your_client_secret")
	viper.SetDefault("GOOGLE_ADS_REFRESH_TOKEN", "your_refresh_token")
	viper.SetDefault("GOOGLE_ADS_TOKEN_URL", "https://oauth2.googleapis.com/token")

	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	viper.SetDefault("OPENAI_MAX_TOKENS", 1024)
	viper.SetDefault("OPENAI_TEMPERATURE", 0.4)

	// Limiares das heurísticas de insights
	viper.SetDefault("INSIGHTS_HIGH_CONVERSION_RATE", 0.05)
	viper.SetDefault("INSIGHTS_MEDIUM_CONVERSION_RATE", 0.02)
	viper.SetDefault("INSIGHTS_LOW_CONVERSION_RATE", 0.01)
	viper.SetDefault("INSIGHTS_LOW_COST_PER_CONVERSION", 50.0)
	viper.SetDefault("INSIGHTS_HIGH_COST_PER_CONVERSION", 100.0)
	viper.SetDefault("INSIGHTS_BUDGET_ADJUSTMENT_FACTOR", 0.2)
	viper.SetDefault("INSIGHTS_KEYWORD_MIN_CLICKS", 10)
	viper.SetDefault("INSIGHTS_KEYWORD_LOW_CPC", 2.0)
	viper.SetDefault("INSIGHTS_KEYWORD_HIGH_CPC", 5.0)
	viper.SetDefault("INSIGHTS_CACHE_TTL_HOURS", 1) // TTL das listagens de entidades

	// Defaults para sincronização periódica de contas
	viper.SetDefault("ACCOUNT_SYNC_CRON", "0 3 * * *")        // Todos os dias às 3h da manhã
	viper.SetDefault("ACCOUNT_SYNC_BATCH_SIZE", 3)            // 3 contas por lote para respeitar rate limit
	viper.SetDefault("ACCOUNT_SYNC_REQUEST_DELAY_SECONDS", 2) // 2 segundos entre lotes
	viper.SetDefault("ACCOUNT_SYNC_ENABLED", false)

	// Defaults para limpeza do cache
	viper.SetDefault("CACHE_CLEANUP_CRON", "0 */6 * * *")      // A cada 6 horas
	viper.SetDefault("CACHE_CLEANUP_DAILY_RETENTION_DAYS", 90) // Retenção do histórico diário
	viper.SetDefault("CACHE_CLEANUP_ENABLED", true)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
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

	config.GoogleAds.URL = fmt.Sprintf("%s/%s", config.GoogleAds.BaseURL, config.GoogleAds.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile carrega o arquivo .env usando godotenv
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

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
