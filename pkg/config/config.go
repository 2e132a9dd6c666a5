package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Server    ServerConfig
	Catalog   CatalogConfig
	Database  DatabaseConfig
	Recommend RecommendConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port string
}

// CatalogConfig selects where the one-time catalog load reads from.
type CatalogConfig struct {
	Source string // "csv" or "postgres"
	Path   string // CSV file path, only used when Source == "csv"
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type RecommendConfig struct {
	DefaultTopN  int
	DefaultAlpha float64
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	defaultTopN, err := strconv.Atoi(getEnv("RECOMMEND_DEFAULT_N", "5"))
	if err != nil {
		return nil, errors.New("invalid RECOMMEND_DEFAULT_N")
	}

	defaultAlpha, err := strconv.ParseFloat(getEnv("RECOMMEND_DEFAULT_ALPHA", "0.5"), 64)
	if err != nil {
		return nil, errors.New("invalid RECOMMEND_DEFAULT_ALPHA")
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Brew Compass API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Catalog: CatalogConfig{
			Source: getEnv("CATALOG_SOURCE", "csv"),
			Path:   getEnv("CATALOG_PATH", "datasets/coffee_catalog.csv"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "brew_compass"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Recommend: RecommendConfig{
			DefaultTopN:  defaultTopN,
			DefaultAlpha: defaultAlpha,
		},
	}

	switch cfg.Catalog.Source {
	case "csv":
		if cfg.Catalog.Path == "" {
			return nil, errors.New("missing catalog path")
		}
	case "postgres":
		if cfg.Database.Password == "" {
			return nil, errors.New("missing database password")
		}
	default:
		return nil, errors.New("catalog source must be csv or postgres")
	}

	if cfg.Recommend.DefaultTopN <= 0 {
		return nil, errors.New("RECOMMEND_DEFAULT_N must be positive")
	}

	if cfg.Recommend.DefaultAlpha < 0 || cfg.Recommend.DefaultAlpha > 1 {
		return nil, errors.New("RECOMMEND_DEFAULT_ALPHA must be in [0,1]")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}
