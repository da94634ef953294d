package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// Configはアプリ全体の設定
type Config struct {
	// API
	APIBaseURL       string        `envconfig:"API_BASE_URL" default:"https://fakestoreapi.com"`
	APITimeout       time.Duration `envconfig:"API_TIMEOUT" default:"10s"`
	APIRetryAttempts int           `envconfig:"API_RETRY_ATTEMPTS" default:"3"` // 宣言のみ（gatewayはリトライしない）

	// アプリ情報
	AppName     string `envconfig:"APP_NAME" default:"E-Commerce App"`
	AppVersion  string `envconfig:"APP_VERSION" default:"1.0.0"`
	Environment string `envconfig:"APP_ENV" default:"development"`

	// 機能フラグ
	EnableAnalytics bool `envconfig:"ENABLE_ANALYTICS" default:"false"`
	EnableDebug     bool `envconfig:"ENABLE_DEBUG" default:"false"`
	EnableMockData  bool `envconfig:"ENABLE_MOCK_DATA" default:"false"`

	// 認証トークンの保存キー
	AuthTokenKey        string `envconfig:"AUTH_TOKEN_KEY" default:"auth_token"`
	AuthRefreshTokenKey string `envconfig:"AUTH_REFRESH_TOKEN_KEY" default:"refresh_token"`

	// UI
	DefaultLanguage    string   `envconfig:"DEFAULT_LANGUAGE" default:"en"`
	SupportedLanguages []string `envconfig:"SUPPORTED_LANGUAGES" default:"en,my"`
	Currency           string   `envconfig:"CURRENCY" default:"USD"`
	CurrencySymbol     string   `envconfig:"CURRENCY_SYMBOL" default:"$"`
	PageSize           int      `envconfig:"PAGE_SIZE" default:"12"`
	FeaturedLimit      int      `envconfig:"FEATURED_LIMIT" default:"8"`

	// チェックアウト
	TaxRate               string `envconfig:"TAX_RATE" default:"0.08"`
	ShippingFee           string `envconfig:"SHIPPING_FEE" default:"9.99"`
	FreeShippingThreshold string `envconfig:"FREE_SHIPPING_THRESHOLD" default:"100"`

	// サーバー
	Port          string        `envconfig:"PORT" default:"8080"`
	SessionCookie string        `envconfig:"SESSION_COOKIE" default:"sf_session"`
	SessionTTL    time.Duration `envconfig:"SESSION_TTL" default:"24h"`

	// ローカルストレージ（sqlite / postgres / redis / memory）
	StorageDriver string `envconfig:"STORAGE_DRIVER" default:"sqlite"`
	SQLitePath    string `envconfig:"SQLITE_PATH" default:"storefront.db"`
	DatabaseURL   string `envconfig:"DATABASE_URL"`
	RedisURL      string `envconfig:"REDIS_URL"`
}

// Loadは .env（あれば）と環境変数から読む
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("process env: %w", err)
	}
	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// 必須チェック
func (c Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("API_BASE_URL is required")
	}
	if c.APITimeout <= 0 {
		return fmt.Errorf("API_TIMEOUT must be > 0")
	}
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.PageSize < 1 {
		return fmt.Errorf("PAGE_SIZE must be >= 1")
	}
	if c.FeaturedLimit < 1 {
		return fmt.Errorf("FEATURED_LIMIT must be >= 1")
	}
	if len(c.SupportedLanguages) == 0 {
		return fmt.Errorf("SUPPORTED_LANGUAGES is required")
	}
	if !c.SupportsLanguage(c.DefaultLanguage) {
		return fmt.Errorf("DEFAULT_LANGUAGE %q is not in SUPPORTED_LANGUAGES", c.DefaultLanguage)
	}
	for key, v := range map[string]string{
		"TAX_RATE":                c.TaxRate,
		"SHIPPING_FEE":            c.ShippingFee,
		"FREE_SHIPPING_THRESHOLD": c.FreeShippingThreshold,
	} {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return fmt.Errorf("%s must be number: %w", key, err)
		}
		if d.IsNegative() {
			return fmt.Errorf("%s must be >= 0", key)
		}
	}

	switch c.StorageDriver {
	case "sqlite":
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required")
		}
	case "postgres":
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required")
		}
	case "redis":
		if c.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required")
		}
	case "memory":
	default:
		return fmt.Errorf("STORAGE_DRIVER must be sqlite, postgres, redis or memory")
	}
	return nil
}

func (c Config) Env() Environment {
	return ParseEnvironment(c.Environment)
}

func (c Config) SupportsLanguage(lng string) bool {
	for _, l := range c.SupportedLanguages {
		if l == lng {
			return true
		}
	}
	return false
}

// Validate済みの値を前提にする
func (c Config) Tax() decimal.Decimal {
	return decimal.RequireFromString(c.TaxRate)
}

func (c Config) Shipping() decimal.Decimal {
	return decimal.RequireFromString(c.ShippingFee)
}

func (c Config) FreeShippingOver() decimal.Decimal {
	return decimal.RequireFromString(c.FreeShippingThreshold)
}
