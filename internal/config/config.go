package config

import (
	"log"
	"time"

	"github.com/spf13/viper"

	"pdv-client/pkg/money"
)

type Config struct {
	App       AppConfig
	Backend   BackendConfig
	Session   SessionConfig
	Store     StoreConfig
	Currency  CurrencyConfig
	Printer   PrinterConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

// BackendConfig points at the PDV REST backend. The base URL is a single
// externally supplied value; nothing else in the client hardcodes a host
// or port.
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

type SessionConfig struct {
	CookieName string
	TTL        time.Duration
}

// StoreConfig is the header printed on receipts.
type StoreConfig struct {
	Name    string
	Tagline string
}

type CurrencyConfig struct {
	Symbol    string
	Decimal   string
	Thousands string
}

// Locale builds the money locale from the configured separators.
func (c *CurrencyConfig) Locale() money.Locale {
	return money.Locale{
		Symbol:        c.Symbol,
		Decimal:       c.Decimal,
		Thousands:     c.Thousands,
		FractionDigit: 2,
	}
}

type PrinterConfig struct {
	Type         string // usb, network, none
	USBPath      string
	Address      string
	SpoolCommand string // empty resolves lp/lpr from PATH
	PaperWidth   int    // characters per line, 32 for 58mm paper
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "pdv-client")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "3000")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("BACKEND_BASE_URL", "http://localhost:8080/api/v1")
	viper.SetDefault("BACKEND_TIMEOUT_SECONDS", 15)
	viper.SetDefault("SESSION_COOKIE_NAME", "pdv_session")
	viper.SetDefault("SESSION_TTL_HOURS", 12)
	viper.SetDefault("STORE_NAME", "SISTEMA PDV")
	viper.SetDefault("STORE_TAGLINE", "Ponto de Venda")
	viper.SetDefault("CURRENCY_SYMBOL", "R$")
	viper.SetDefault("CURRENCY_DECIMAL", ",")
	viper.SetDefault("CURRENCY_THOUSANDS", ".")
	viper.SetDefault("PRINTER_TYPE", "none")
	viper.SetDefault("PRINTER_USB_PATH", "/dev/usb/lp0")
	viper.SetDefault("PRINTER_ADDRESS", "")
	viper.SetDefault("PRINTER_SPOOL_COMMAND", "")
	viper.SetDefault("PRINTER_PAPER_WIDTH", 32)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Backend: BackendConfig{
			BaseURL: viper.GetString("BACKEND_BASE_URL"),
			Timeout: time.Duration(viper.GetInt("BACKEND_TIMEOUT_SECONDS")) * time.Second,
		},
		Session: SessionConfig{
			CookieName: viper.GetString("SESSION_COOKIE_NAME"),
			TTL:        time.Duration(viper.GetInt("SESSION_TTL_HOURS")) * time.Hour,
		},
		Store: StoreConfig{
			Name:    viper.GetString("STORE_NAME"),
			Tagline: viper.GetString("STORE_TAGLINE"),
		},
		Currency: CurrencyConfig{
			Symbol:    viper.GetString("CURRENCY_SYMBOL"),
			Decimal:   viper.GetString("CURRENCY_DECIMAL"),
			Thousands: viper.GetString("CURRENCY_THOUSANDS"),
		},
		Printer: PrinterConfig{
			Type:         viper.GetString("PRINTER_TYPE"),
			USBPath:      viper.GetString("PRINTER_USB_PATH"),
			Address:      viper.GetString("PRINTER_ADDRESS"),
			SpoolCommand: viper.GetString("PRINTER_SPOOL_COMMAND"),
			PaperWidth:   viper.GetInt("PRINTER_PAPER_WIDTH"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
	}
}
