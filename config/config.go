package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	// TrustedProxies may set X-Forwarded-For; empty means use the socket address.
	TrustedProxies []string `mapstructure:"TRUSTED_PROXIES"`

	// MongoDB.
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Redis configuration.
	RedisAddr     string        `mapstructure:"REDIS_ADDR"`
	RedisPassword string        `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int           `mapstructure:"REDIS_CACHE_DB"`
	VenueCacheTTL time.Duration `mapstructure:"VENUE_CACHE_TTL"`

	// Payment.
	PaymentScheme         string   `mapstructure:"PAYMENT_SCHEME"`
	PaymentDisabledVenues []string `mapstructure:"PAYMENT_DISABLED_VENUES"`
	QRServiceURL          string   `mapstructure:"QR_SERVICE_URL"`
	QRSize                int      `mapstructure:"QR_SIZE"`

	// Venue price bands, in PKR.
	CategoryLowMax    float64 `mapstructure:"CATEGORY_LOW_MAX"`
	CategoryMiddleMax float64 `mapstructure:"CATEGORY_MIDDLE_MAX"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func setDefaults() {
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("TRUSTED_PROXIES", []string{})
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "venuebook")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("VENUE_CACHE_TTL", "5m")
	viper.SetDefault("PAYMENT_SCHEME", "easypaisa")
	viper.SetDefault("PAYMENT_DISABLED_VENUES", []string{})
	viper.SetDefault("QR_SERVICE_URL", "https://api.qrserver.com/v1/create-qr-code/")
	viper.SetDefault("QR_SIZE", 200)
	viper.SetDefault("CATEGORY_LOW_MAX", 50000)
	viper.SetDefault("CATEGORY_MIDDLE_MAX", 150000)
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
