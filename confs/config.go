package confs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// Network
	HTTPAddr string `envconfig:"HTTP_ADDR" default:"0.0.0.0:3536"`
	// BaseURL is the public origin embedded in verification links.
	BaseURL string `envconfig:"BASE_URL" default:"http://localhost:3536"`
	// Store: DB_URL selects hosted Postgres, otherwise SQLite at SQLITE_PATH.
	DatabaseURL string `envconfig:"DB_URL"`
	SQLitePath  string `envconfig:"SQLITE_PATH" default:"booking.db"`
	// Auth
	JWTSecret    string `envconfig:"JWT_SECRET" required:"true"`
	JWTExpireMin int    `envconfig:"JWT_EXPIRE_MIN" default:"1440"`
	// ServiceKey gates the demo bootstrap user listing.
	ServiceKey string `envconfig:"SERVICE_KEY"`
	// Notifications
	PollInterval time.Duration `envconfig:"NOTIFY_POLL_INTERVAL" default:"30s"`
}

func (c Config) JWTExpiry() time.Duration {
	return time.Duration(c.JWTExpireMin) * time.Minute
}

// LoadConfig loads environment variables from a .env file if present and
// populates the typed config.
func LoadConfig() (Config, error) {
	// Load .env if it exists; ignore error if file not found
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("warning: could not load .env: %v", err)
		}
	}
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
