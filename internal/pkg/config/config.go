package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/sployal/fine-back-sub000/internal/pkg/models"
)

// InitConfig loads configuration from the environment. For local runs the
// given env file is loaded first; in deployed environments the variables are
// expected to be present already.
func InitConfig(configPath string) *models.Config {
	env := GetEnv("APP_ENV", "local")
	if env == "local" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "fine-back")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", false)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 8080)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 30)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 30)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)

	// Supabase Postgres config
	configs.Database.URL = GetEnv("SUPABASE_DB_URL", "")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 10)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 2)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "localhost")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 10)

	// NSQ config
	configs.NSQ.Address = GetEnv("NSQ_ADDRESS", "")
	configs.NSQ.Topic = GetEnv("NSQ_TOPIC", "payments.events")
	configs.NSQ.Enabled = GetEnvAsBool("NSQ_ENABLED", false)

	// Auth config
	configs.Auth.JWTSecret = GetEnv("SUPABASE_JWT_SECRET", "")
	configs.Auth.Issuer = GetEnv("SUPABASE_JWT_ISSUER", "supabase")

	// Cloudinary config
	configs.Cloudinary.CloudName = GetEnv("CLOUDINARY_CLOUD_NAME", "")
	configs.Cloudinary.APIKey = GetEnv("CLOUDINARY_API_KEY", "")
	configs.Cloudinary.APISecret = GetEnv("CLOUDINARY_API_SECRET", "")
	configs.Cloudinary.Folder = GetEnv("CLOUDINARY_FOLDER", "fine-back")

	// M-Pesa Daraja config
	configs.Mpesa.BaseURL = GetEnv("MPESA_BASE_URL", "https://sandbox.safaricom.co.ke")
	configs.Mpesa.ConsumerKey = GetEnv("MPESA_CONSUMER_KEY", "")
	configs.Mpesa.ConsumerSecret = GetEnv("MPESA_CONSUMER_SECRET", "")
	configs.Mpesa.ShortCode = GetEnv("MPESA_SHORT_CODE", "")
	configs.Mpesa.Passkey = GetEnv("MPESA_PASSKEY", "")
	configs.Mpesa.CallbackURL = GetEnv("MPESA_CALLBACK_URL", "")
	configs.Mpesa.ValidationURL = GetEnv("MPESA_VALIDATION_URL", "")
	configs.Mpesa.ConfirmationURL = GetEnv("MPESA_CONFIRMATION_URL", "")
	configs.Mpesa.TimeoutSeconds = GetEnvAsInt("MPESA_TIMEOUT_SECONDS", 30)

	// Rate limit config
	configs.RateLimit.Limit = GetEnvAsInt("RATE_LIMIT_REQUESTS", 10)
	configs.RateLimit.PeriodSeconds = GetEnvAsInt("RATE_LIMIT_PERIOD_SECONDS", 60)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")

	return configs
}

// Validate checks that the credentials the service cannot run without are
// present. Absence of the data store or CDN credentials is fatal at startup.
func Validate(cfg *models.Config) error {
	if cfg.Database.URL == "" {
		return fmt.Errorf("SUPABASE_DB_URL is required")
	}
	if cfg.Cloudinary.CloudName == "" || cfg.Cloudinary.APIKey == "" || cfg.Cloudinary.APISecret == "" {
		return fmt.Errorf("cloudinary credentials are required (CLOUDINARY_CLOUD_NAME, CLOUDINARY_API_KEY, CLOUDINARY_API_SECRET)")
	}
	return nil
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
