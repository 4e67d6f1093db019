package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	EnvDev  = "dev"
	EnvProd = "prod"

	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

type Config struct {
	Env           string `mapstructure:"ENV"`
	ServerAddress string `mapstructure:"SERVER_ADDRESS"`
	DBSource      string `mapstructure:"DB_SOURCE"`
	Store         string `mapstructure:"STORE"`

	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	UserServiceURL    string        `mapstructure:"USER_SERVICE_URL"`
	VendorServiceURL  string        `mapstructure:"VENDOR_SERVICE_URL"`
	HTTPClientTimeout time.Duration `mapstructure:"HTTP_CLIENT_TIMEOUT"`

	LogLevel     string `mapstructure:"LOG_LEVEL"`
	LogFormat    string `mapstructure:"LOG_FORMAT"`
	SeedFakeData bool   `mapstructure:"SEED_FAKE_DATA"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDev)
	v.SetDefault("SERVER_ADDRESS", ":8080")
	v.SetDefault("DB_SOURCE", "")
	v.SetDefault("STORE", StoreMemory)
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("USER_SERVICE_URL", "http://localhost:8081")
	v.SetDefault("VENDOR_SERVICE_URL", "http://localhost:8082")
	v.SetDefault("HTTP_CLIENT_TIMEOUT", "5s")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("SEED_FAKE_DATA", true)
}

// LoadConfig reads app.env from path, if present, and overlays environment variables
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	setDefaults(v)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		log.Debug().Str("path", path).Msg("no app.env file found, using environment")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Env {
	case EnvDev, EnvProd:
	default:
		return fmt.Errorf("config: unknown ENV %q", c.Env)
	}

	switch c.Store {
	case StoreMemory:
	case StorePostgres:
		if c.DBSource == "" {
			return errors.New("config: DB_SOURCE is required when STORE=postgres")
		}
	default:
		return fmt.Errorf("config: unknown STORE %q", c.Store)
	}

	return nil
}

// IsDev reports whether the in-process fakes should stand in for external services
func (c *Config) IsDev() bool {
	return c.Env == EnvDev
}
