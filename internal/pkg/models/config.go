package models

// Config represents application configuration
type Config struct {
	App        AppConfig
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	NSQ        NSQConfig
	Auth       AuthConfig
	Cloudinary CloudinaryConfig
	Mpesa      MpesaConfig
	RateLimit  RateLimitConfig
	Logger     LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains the Supabase Postgres connection configuration.
// URL is the pooled connection string issued by the project dashboard.
type DatabaseConfig struct {
	URL       string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains NSQ daemon configuration for payment lifecycle events
type NSQConfig struct {
	Address string
	Topic   string
	Enabled bool
}

// AuthConfig contains bearer-token verification configuration. Tokens are
// issued by the Supabase auth service and verified locally against the
// project JWT secret.
type AuthConfig struct {
	JWTSecret string
	Issuer    string
}

// CloudinaryConfig contains image CDN credentials
type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
}

// MpesaConfig contains Daraja gateway configuration
type MpesaConfig struct {
	BaseURL         string
	ConsumerKey     string
	ConsumerSecret  string
	ShortCode       string
	Passkey         string
	CallbackURL     string
	ValidationURL   string
	ConfirmationURL string
	TimeoutSeconds  int
}

// RateLimitConfig contains the per-route request throttle settings
type RateLimitConfig struct {
	Limit         int
	PeriodSeconds int
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level string
}
