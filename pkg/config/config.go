package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	StoreSQL    = "sql"
	StoreMemory = "memory"

	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

type Config struct {
	Port                    string        `env:"PORT" envDefault:"8080"`
	Env                     string        `env:"ENV" envDefault:"development"`
	Store                   string        `env:"STORE" envDefault:"sql"`
	DBDriver                string        `env:"DB_DRIVER" envDefault:"postgres"`
	PostgresConnStr         string        `env:"POSTGRES_CONN_STR"`
	MySQLDSN                string        `env:"MYSQL_DSN"`
	MongoURI                string        `env:"MONGO_URI"`
	MongoDatabase           string        `env:"MONGO_DATABASE" envDefault:"medishare"`
	JWTSecret               string        `env:"JWT_SECRET"`
	TokenTTL                time.Duration `env:"TOKEN_TTL" envDefault:"72h"`
	FirebaseCredentialsPath string        `env:"FIREBASE_CREDENTIALS_PATH"`
	RedisAddr               string        `env:"REDIS_ADDR"`
	RedisPassword           string        `env:"REDIS_PASSWORD"`
	LogLevel                string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat               string        `env:"LOG_FORMAT" envDefault:"json"`
	CORSAllowOrigins        []string      `env:"CORS_ALLOW_ORIGINS" envSeparator:"," envDefault:"*"`
}

// developmentJWTSecret is only accepted when ENV=development.
const developmentJWTSecret = "supersecretjwtkey"

// Load reads .env (if any) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found, using process environment")
	}
	return Parse()
}

// Parse reads the process environment only.
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if cfg.JWTSecret == "" && cfg.IsDevelopment() {
		cfg.JWTSecret = developmentJWTSecret
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must be set when ENV=%s", c.Env)
	}
	switch c.Store {
	case StoreMemory:
		return nil
	case StoreSQL:
	default:
		return fmt.Errorf("STORE must be %q or %q, got %q", StoreSQL, StoreMemory, c.Store)
	}
	switch c.DBDriver {
	case DriverPostgres:
		if c.PostgresConnStr == "" {
			return fmt.Errorf("POSTGRES_CONN_STR environment variable not set")
		}
	case DriverMySQL:
		if c.MySQLDSN == "" {
			return fmt.Errorf("MYSQL_DSN environment variable not set")
		}
	default:
		return fmt.Errorf("DB_DRIVER must be %q or %q, got %q", DriverPostgres, DriverMySQL, c.DBDriver)
	}
	if c.MongoURI == "" {
		return fmt.Errorf("MONGO_URI environment variable not set")
	}
	return nil
}
