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
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Database   Database   `mapstructure:",squash"`
	Shopify    Shopify    `mapstructure:",squash"`
	Telegram   Telegram   `mapstructure:",squash"`
	Margin     Margin     `mapstructure:",squash"`
	IntakeSync IntakeSync `mapstructure:",squash"`
	SecretKey  string     `mapstructure:"secret_key"`
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

type Shopify struct {
	URL         string `mapstructure:"-"`
	BaseURL     string `mapstructure:"shopify_base_url"`
	ShopName    string `mapstructure:"shopify_shop_name"`
	APIVersion  string `mapstructure:"shopify_api_version"`
	AccessToken string `mapstructure:"shopify_access_token"`
}

type Telegram struct {
	URL         string `mapstructure:"telegram_url"`
	BotToken    string `mapstructure:"telegram_bot_token"`
	OwnerChatID string `mapstructure:"telegram_owner_chat_id"`
	OpsChatID   string `mapstructure:"telegram_ops_chat_id"`
}

// Margin contém o modelo de custo do fornecedor e os limites de aceitação de pedidos
type Margin struct {
	CostRatio    float64 `mapstructure:"margin_cost_ratio"`
	MinProfitAbs float64 `mapstructure:"margin_min_profit_abs"`
	MinMarginPct float64 `mapstructure:"margin_min_margin_pct"`
}

type IntakeSync struct {
	CronSchedule        string `mapstructure:"intake_sync_cron"`
	Enabled             bool   `mapstructure:"intake_sync_enabled"`
	FetchTimeoutSeconds int    `mapstructure:"intake_sync_fetch_timeout_seconds"`
}

// Validate garante que o modelo de custo é utilizável. Valores fora da faixa
// são erro fatal na inicialização, nunca substituídos silenciosamente.
func (m Margin) Validate() error {
	if m.CostRatio < 0 || m.CostRatio >= 1 {
		return fmt.Errorf("configuração inválida: margin_cost_ratio deve estar em [0, 1), recebido %v", m.CostRatio)
	}

	if m.MinProfitAbs < 0 {
		return fmt.Errorf("configuração inválida: margin_min_profit_abs não pode ser negativo, recebido %v", m.MinProfitAbs)
	}

	if m.MinMarginPct < 0 {
		return fmt.Errorf("configuração inválida: margin_min_margin_pct não pode ser negativo, recebido %v", m.MinMarginPct)
	}

	return nil
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/lumenaura")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SHOPIFY_BASE_URL", "https://%s.myshopify.com")
	viper.SetDefault("SHOPIFY_SHOP_NAME", "your_shop")
	viper.SetDefault("SHOPIFY_API_VERSION", "2024-01")
	viper.SetDefault("SHOPIFY_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL

	viper.SetDefault("TELEGRAM_URL", "https://api.telegram.org")
	viper.SetDefault("TELEGRAM_BOT_TOKEN", "")
	viper.SetDefault("TELEGRAM_OWNER_CHAT_ID", "")
	viper.SetDefault("TELEGRAM_OPS_CHAT_ID", "")

	// Modelo de custo do fornecedor e limites de aceitação
	viper.SetDefault("MARGIN_COST_RATIO", 0.40)
	viper.SetDefault("MARGIN_MIN_PROFIT_ABS", 2.0)
	viper.SetDefault("MARGIN_MIN_MARGIN_PCT", 20.0)

	viper.SetDefault("INTAKE_SYNC_CRON", "*/15 * * * *") // A cada 15 minutos
	viper.SetDefault("INTAKE_SYNC_ENABLED", false)
	viper.SetDefault("INTAKE_SYNC_FETCH_TIMEOUT_SECONDS", 10)

	viper.SetDefault("SECRET_KEY", "your_secret_key")

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

	// Modelo de custo inválido impede a inicialização do sistema
	if err := config.Margin.Validate(); err != nil {
		return nil, err
	}

	config.Shopify.URL = fmt.Sprintf(config.Shopify.BaseURL, config.Shopify.ShopName)

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
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
