package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	AppPort string `envconfig:"APP_PORT" default:"8080"`
	AppEnv  string `envconfig:"APP_ENV" default:"development"`

	// Document store backend: redis, postgres or memory
	StoreBackend string `envconfig:"STORE_BACKEND" default:"redis"`

	// Redis
	RedisURL      string `envconfig:"REDIS_URL" default:"redis://localhost:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD" default:""`

	// Database (postgres backend)
	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD" default:"postgres"`
	DBName     string `envconfig:"DB_NAME" default:"tales_of_brownies"`
	DBURL      string `envconfig:"DB_URL"`

	// Admin panel. The credential check is presentational only, the
	// same fixed gate the storefront always had; it is not a security
	// boundary. ADMIN_PASSWORD_HASH (bcrypt) takes precedence when set.
	AdminUsername     string `envconfig:"ADMIN_USERNAME" default:"Tales of brownies"`
	AdminPassword     string `envconfig:"ADMIN_PASSWORD" default:"TOB12345"`
	AdminPasswordHash string `envconfig:"ADMIN_PASSWORD_HASH"`
	JWTSecret         string `envconfig:"JWT_SECRET" default:"change-this-secret-in-production"`

	// UPI payment handoff
	UPIVPA       string `envconfig:"UPI_VPA" default:"talesofbrownies@upi"`
	UPIPayeeName string `envconfig:"UPI_PAYEE_NAME" default:"Tales of Brownies"`

	// WhatsApp handoff. ShopWhatsAppNumber receives the prefilled order
	// message; the Cloud API credentials are optional and only enable
	// the push notification to the shop.
	ShopWhatsAppNumber    string `envconfig:"SHOP_WHATSAPP_NUMBER" default:"917904101599"`
	WhatsAppToken         string `envconfig:"WHATSAPP_TOKEN"`
	WhatsAppPhoneNumberID string `envconfig:"WHATSAPP_PHONE_NUMBER_ID"`
}

var instance *Config

// Load initializes and returns the singleton Config instance
func Load() (*Config, error) {
	if instance != nil {
		return instance, nil
	}

	// Load .env file if it exists (for local development)
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("error processing environment variables: %w", err)
	}

	// Check for the platform's DATABASE_URL if DB_URL is not set
	if cfg.DBURL == "" {
		if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
			cfg.DBURL = databaseURL
		}
	}

	// Build DBURL if still not provided
	if cfg.DBURL == "" {
		cfg.DBURL = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
			cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)
	}

	instance = cfg
	return instance, nil
}

// Get returns the singleton Config instance (must call Load first)
func Get() *Config {
	if instance == nil {
		panic("config not loaded: call config.Load() first")
	}
	return instance
}
