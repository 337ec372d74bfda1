package configs

import (
	"fmt"
	"time"

	env "github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

const defaultDatabase = "Sahayata"

// Config holds every setting the service reads from the environment.
type Config struct {
	Port                string        `env:"PORT,default=5000"`
	MongoURI            string        `env:"MONGO_URI,default=mongodb://localhost:27017/Sahayata"`
	RedisURL            string        `env:"REDIS_URL"`
	NotificationChannel string        `env:"NOTIFICATION_CHANNEL,default=donation-events"`
	LogLevel            string        `env:"LOG_LEVEL,default=info"`
	LogFormat           string        `env:"LOG_FORMAT,default=json"`
	ConnectTimeout      time.Duration `env:"CONNECT_TIMEOUT,default=10s"`
	ShutdownTimeout     time.Duration `env:"SHUTDOWN_TIMEOUT,default=30s"`
}

// LoadConfig reads an optional .env file and then the process environment.
// Values already present in the environment win over the .env file.
func LoadConfig() (Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if cfg.Port == "" {
		return Config{}, fmt.Errorf("config error: PORT must not be empty")
	}
	if cfg.MongoURI == "" {
		return Config{}, fmt.Errorf("config error: MONGO_URI must not be empty")
	}
	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}

// EventsEnabled reports whether a Redis URL was configured.
func (c Config) EventsEnabled() bool {
	return c.RedisURL != ""
}
