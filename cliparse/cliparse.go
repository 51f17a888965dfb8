package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Supported database types
const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

const (
	defaultPort       = 3318
	defaultSQLiteURL  = "file:freightdesk.db"
	defaultEnvFile    = ".env"
	defaultSessionTTL = 30 * time.Minute
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	EnvFile      string
	SessionTTL   time.Duration
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("freight-desk", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.EnvFile, "env", "", "Dotenv file to load before reading env")
	fs.DurationVar(&cfg.SessionTTL, "session-ttl", 0, "Idle wizard session lifetime")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Env file goes first so its values act as environment
	if err := loadEnvFile(cfg.EnvFile); err != nil {
		return Config{}, err
	}

	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = defaultPort
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = DatabaseSQLite
		}
	}
	if cfg.DatabaseType != DatabaseSQLite && cfg.DatabaseType != DatabasePostgres {
		return Config{}, fmt.Errorf("unsupported database type %q (use sqlite or postgres)", cfg.DatabaseType)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == DatabasePostgres {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = defaultSQLiteURL
	}

	if cfg.SessionTTL == 0 {
		if ttlStr := os.Getenv("WIZARD_SESSION_TTL"); ttlStr != "" {
			ttl, err := time.ParseDuration(ttlStr)
			if err != nil {
				return Config{}, errors.New("invalid WIZARD_SESSION_TTL env variable")
			}
			cfg.SessionTTL = ttl
		} else {
			cfg.SessionTTL = defaultSessionTTL
		}
	}
	if cfg.SessionTTL < 0 {
		return Config{}, errors.New("session TTL must be positive")
	}

	return cfg, nil
}

// loadEnvFile loads an explicit dotenv file, or the default .env when present.
// Existing environment variables win over file values.
func loadEnvFile(path string) error {
	explicit := path != ""
	if !explicit {
		path = os.Getenv("ENV_FILE")
		explicit = path != ""
	}
	if !explicit {
		path = defaultEnvFile
	}

	err := godotenv.Load(path)
	if err == nil {
		return nil
	}
	if !explicit && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("loading env file %s: %w", path, err)
}
