package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Catalog gateway configuration
	CatalogBaseURL    string `mapstructure:"CATALOG_BASE_URL"`
	CatalogAPIKey     string `mapstructure:"CATALOG_API_KEY"`
	CatalogTimeoutSec int    `mapstructure:"CATALOG_TIMEOUT_SEC"`

	// Allocation constraints. Team ids at or below ReservedTeamMaxID are
	// virtual pools exempt from validity rules. A zero ceiling means
	// unbounded; the historical 5-pilot/3-drone cap was intentionally
	// relaxed and can be reinstated here without a code change.
	ReservedTeamMaxID int `mapstructure:"RESERVED_TEAM_MAX_ID"`
	PoolTeamID        int `mapstructure:"POOL_TEAM_ID"`
	MaxPilotsPerTeam  int `mapstructure:"MAX_PILOTS_PER_TEAM"`
	MaxDronesPerTeam  int `mapstructure:"MAX_DRONES_PER_TEAM"`

	// Audit database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7010")
	viper.SetDefault("LOG_LEVEL", "info")

	// Catalog gateway defaults
	viper.SetDefault("CATALOG_BASE_URL", "http://localhost:9080")
	viper.SetDefault("CATALOG_API_KEY", "")
	viper.SetDefault("CATALOG_TIMEOUT_SEC", 15)

	// Allocation defaults
	viper.SetDefault("RESERVED_TEAM_MAX_ID", 9)
	viper.SetDefault("POOL_TEAM_ID", 1)
	viper.SetDefault("MAX_PILOTS_PER_TEAM", 0)
	viper.SetDefault("MAX_DRONES_PER_TEAM", 0)

	// Audit database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "drone_allocation")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.CatalogBaseURL == "" {
		return fmt.Errorf("CATALOG_BASE_URL is required")
	}

	if config.Environment == "production" && config.CatalogAPIKey == "" {
		return fmt.Errorf("CATALOG_API_KEY must be set in production")
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	if config.PoolTeamID < 1 || config.PoolTeamID > config.ReservedTeamMaxID {
		return fmt.Errorf("POOL_TEAM_ID must be a reserved team id (1-%d)", config.ReservedTeamMaxID)
	}

	if config.MaxPilotsPerTeam < 0 || config.MaxDronesPerTeam < 0 {
		return fmt.Errorf("team capacity ceilings must be zero (unbounded) or positive")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
