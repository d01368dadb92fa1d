package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWT   JWTConfig
	Auth  AuthConfig
	Admin AdminConfig
	Mongo MongoConfig
	Redis RedisConfig
	SMTP  SMTPConfig
}

type JWTConfig struct {
	Secret string        `env:"JWT_SECRET"`
	TTL    time.Duration `env:"JWT_TTL, default=24h"`
}

type AuthConfig struct {
	// AllowAnonymous preserves the legacy gate behavior: requests with no
	// Authorization header at all pass through to non-auth endpoints.
	// Invalid or malformed tokens are always rejected.
	AllowAnonymous bool `env:"AUTH_ALLOW_ANONYMOUS, default=true"`
	// PlaintextPasswords is the legacy storage policy: passwords are kept
	// and compared verbatim. Disable to store bcrypt hashes instead.
	PlaintextPasswords  bool          `env:"AUTH_PLAINTEXT_PASSWORDS, default=true"`
	ResetTokenTTL       time.Duration `env:"RESET_TOKEN_TTL,          default=1h"`
	FrontendBaseURL     string        `env:"FRONTEND_BASE_URL,        default=http://localhost:5173"`
	DefaultUserPassword string        `env:"DEFAULT_USER_PASSWORD,    default=welcome123"`
}

type AdminConfig struct {
	Username string `env:"ADMIN_USERNAME, default=admin"`
	Email    string `env:"ADMIN_EMAIL,    default=admin@peoplehub.local"`
	Password string `env:"ADMIN_PASSWORD, default=admin123"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=employee_system"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type SMTPConfig struct {
	Host     string `env:"SMTP_HOST, default=localhost"`
	Port     int    `env:"SMTP_PORT, default=587"`
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"SMTP_FROM, default=no-reply@peoplehub.local"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
