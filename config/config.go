package config

import (
	"fmt"
	"log"
	"sync"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents an app config.
type Config struct {
	Currency       Currency
	HTTP           HTTP
	PostgreSQL     PostgreSQL
	CurrencyBeacon CurrencyBeacon
	Logger         Logger
}

// Currency represents currency definitions configuration.
type Currency struct {
	// DefinitionsFile overrides bundled definitions when set.
	DefinitionsFile string `env:"CURRENCY_DEFINITIONS_FILE" env-default:""`
}

// HTTP represents a http server configuration.
type HTTP struct {
	ServerAddress string `env:"HTTP_SERVER_ADDRESS" env-default:":8080"`
}

// PostgreSQL represents a PostgreSQL database configuration.
// Currencies are not persisted when Host is empty.
type PostgreSQL struct {
	User     string `env:"POSTGRES_USER" env-default:"postgres"`
	Password string `env:"POSTGRES_PASSWORD" env-default:"postgres"`
	Database string `env:"POSTGRES_DATABASE" env-default:"currencies"`
	Host     string `env:"POSTGRES_HOST" env-default:""`
	Port     string `env:"POSTGRES_PORT" env-default:"5432"`
	SSLMode  string `env:"POSTGRES_SSL_MODE" env-default:"disable"`
}

// CurrencyBeacon represents a Currency Beacon API configuration.
// Reconciliation is skipped when APIKey is empty.
type CurrencyBeacon struct {
	APIURL string `env:"CURRENCY_BEACON_API_URL" env-default:"https://api.currencybeacon.com"`
	APIKey string `env:"CURRENCY_BEACON_API_KEY" env-default:""`
}

// Logger represents a logger configuration.
type Logger struct {
	LogLevel        string `env:"LOGGER_LOG_LEVEL" env-default:"debug"`
	LogFilename     string `env:"LOGGER_LOG_FILENAME" env-default:""`
	PrettyLogOutput bool   `env:"LOGGER_PRETTY_LOG_OUTPUT" env-default:"false"`
}

var (
	config Config
	once   sync.Once
)

// Load reads config from environment variables.
func Load() (*Config, error) {
	var cfg Config

	err := cleanenv.ReadEnv(&cfg)
	if err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	return &cfg, nil
}

// Get returns an app config, it's read only once.
func Get() *Config {
	once.Do(func() {
		cfg, err := Load()
		if err != nil {
			log.Fatalf("load config: %v", err)
		}

		config = *cfg
	})

	return &config
}
