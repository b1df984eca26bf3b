package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Single configured user; the password is stored as a bcrypt hash.
	AppUsername     string
	AppPasswordHash string

	// Requests per minute per client IP.
	RateLimit int

	// ECB daily reference rates feed; empty uses the published URL.
	ECBRatesURL string

	// Cron spec for materializing due recurring transactions.
	RecurringCronSpec string
}

// LoadConfig loads configuration from environment variables and a .env file
// if present. Environment variables win over the .env file.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "finanzas-backend")
	viper.SetDefault("APP_USERNAME", "admin")
	viper.SetDefault("APP_PASSWORD_HASH", "")
	viper.SetDefault("RATE_LIMIT", 120)
	viper.SetDefault("ECB_RATES_URL", "")
	viper.SetDefault("RECURRING_CRON_SPEC", "0 1 * * *")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION (%q). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration)
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.AppUsername = viper.GetString("APP_USERNAME")
	cfg.AppPasswordHash = viper.GetString("APP_PASSWORD_HASH")
	if cfg.AppPasswordHash == "" {
		log.Println("Warning: APP_PASSWORD_HASH not set. Login will reject all credentials.")
	}

	cfg.RateLimit = viper.GetInt("RATE_LIMIT")
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = 120
	}

	cfg.ECBRatesURL = viper.GetString("ECB_RATES_URL")
	cfg.RecurringCronSpec = viper.GetString("RECURRING_CRON_SPEC")

	return cfg, nil
}
