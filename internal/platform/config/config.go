package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultAccessTokenSecret  = "a-very-secret-access-key-should-be-longer-and-random"
	defaultRefreshTokenSecret = "default_insecure_refresh_secret_please_change_this_!@#$"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// Access token
	AccessTokenSecret string
	AccessTokenExpiry time.Duration
	JWTIssuer         string

	// Refresh token
	RefreshTokenSecret string
	RefreshTokenExpiry time.Duration

	// Session cookies and policy
	CookieSecure                   bool
	RevokeSessionsOnPasswordChange bool

	// HTTP limits
	CORSOrigins          []string
	LoginRateLimit       string
	JSONBodyLimitBytes   int64
	MaxUploadBytes       int64
	MultipartMemoryBytes int64

	// Error tracking
	SentryDSN         string
	SentryEnvironment string

	// External OAuth Providers
	GoogleClientID     string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `mapstructure:"GOOGLE_REDIRECT_URL"`

	Media MediaConfig
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", true)
	viper.SetDefault("ACCESS_TOKEN_SECRET", defaultAccessTokenSecret)
	viper.SetDefault("ACCESS_TOKEN_EXPIRY", "24h")
	viper.SetDefault("REFRESH_TOKEN_SECRET", defaultRefreshTokenSecret)
	viper.SetDefault("REFRESH_TOKEN_EXPIRY", "240h")
	viper.SetDefault("JWT_ISSUER", "videotube-backend")
	viper.SetDefault("COOKIE_SECURE", true)
	viper.SetDefault("REVOKE_SESSIONS_ON_PASSWORD_CHANGE", false)
	viper.SetDefault("CORS_ORIGIN", "*")
	viper.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	viper.SetDefault("JSON_BODY_LIMIT_BYTES", 20*1024)
	viper.SetDefault("MAX_UPLOAD_BYTES", 100<<20)
	viper.SetDefault("MULTIPART_MEMORY_BYTES", 32<<20)
	viper.SetDefault("SENTRY_DSN", "")
	viper.SetDefault("SENTRY_ENVIRONMENT", "development")
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_REDIRECT_URL", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.AccessTokenSecret = viper.GetString("ACCESS_TOKEN_SECRET")
	if cfg.AccessTokenSecret == "" || cfg.AccessTokenSecret == defaultAccessTokenSecret {
		cfg.AccessTokenSecret = defaultAccessTokenSecret
		log.Println("Warning: ACCESS_TOKEN_SECRET not set. Using default insecure key.")
	}

	cfg.RefreshTokenSecret = viper.GetString("REFRESH_TOKEN_SECRET")
	if cfg.RefreshTokenSecret == "" || cfg.RefreshTokenSecret == defaultRefreshTokenSecret {
		cfg.RefreshTokenSecret = defaultRefreshTokenSecret
		log.Println("Warning: REFRESH_TOKEN_SECRET not set. Using default insecure key. THIS IS NOT FOR PRODUCTION.")
	}

	cfg.AccessTokenExpiry = parseDuration("ACCESS_TOKEN_EXPIRY", 24*time.Hour)
	cfg.RefreshTokenExpiry = parseDuration("REFRESH_TOKEN_EXPIRY", 10*24*time.Hour)

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = "videotube-backend"
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", cfg.JWTIssuer)
	}

	cfg.CORSOrigins = splitList(viper.GetString("CORS_ORIGIN"))
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{"*"}
	}

	cfg.LoginRateLimit = viper.GetString("LOGIN_RATE_LIMIT")
	cfg.JSONBodyLimitBytes = viper.GetInt64("JSON_BODY_LIMIT_BYTES")
	cfg.MaxUploadBytes = viper.GetInt64("MAX_UPLOAD_BYTES")
	cfg.MultipartMemoryBytes = viper.GetInt64("MULTIPART_MEMORY_BYTES")

	cfg.GoogleClientID = viper.GetString("GOOGLE_CLIENT_ID")
	cfg.GoogleClientSecret = viper.GetString("GOOGLE_CLIENT_SECRET")
	cfg.GoogleRedirectURL = viper.GetString("GOOGLE_REDIRECT_URL")
	if cfg.GoogleClientID == "" {
		log.Println("Warning: GOOGLE_CLIENT_ID not set. Google sign-in will not function.")
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.CookieSecure = viper.GetBool("COOKIE_SECURE")
	cfg.RevokeSessionsOnPasswordChange = viper.GetBool("REVOKE_SESSIONS_ON_PASSWORD_CHANGE")
	cfg.SentryDSN = viper.GetString("SENTRY_DSN")
	cfg.SentryEnvironment = viper.GetString("SENTRY_ENVIRONMENT")

	media, err := LoadMediaConfig()
	if err != nil {
		return nil, err
	}
	cfg.Media = *media

	return cfg, nil
}

func parseDuration(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback.String())
		}
		return fallback
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
