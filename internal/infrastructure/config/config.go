package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	App    AppConfig
	Log    LogConfig
	Data   DataConfig
	Orders OrdersConfig
	Alerts AlertsConfig
	Seed   SeedConfig
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, discard, or file path
}

// AppConfig holds application-level configuration
type AppConfig struct {
	Name string
	Env  string
}

// DataConfig holds the data file settings
type DataConfig struct {
	File     string // Path of the JSON data file used by save and load
	AutoLoad bool   // Load the data file at startup
	AutoSave bool   // Save the data file on exit
}

// OrdersConfig holds order placement settings
type OrdersConfig struct {
	// Atomic validates all order lines before touching stock.
	// When false a failing line leaves earlier lines committed.
	Atomic bool
}

// AlertsConfig holds stock alert settings
type AlertsConfig struct {
	LowStockThreshold int // Alert when a sale leaves stock at or below this level
}

// SeedConfig holds demo data generation settings
type SeedConfig struct {
	Products  int
	Customers int
	Seed      int64 // 0 picks a random seed
}

// maxSeedCount bounds generated demo data
const maxSeedCount = 10000

// Load reads configuration from config.toml and STOREFRONT_ prefixed
// environment variables. configFile, when not empty, replaces the search paths.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Read config file (optional, env vars take precedence)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || configFile != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Environment variables override config file
	v.SetEnvPrefix("STOREFRONT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		Data: DataConfig{
			File:     v.GetString("data.file"),
			AutoLoad: v.GetBool("data.auto_load"),
			AutoSave: v.GetBool("data.auto_save"),
		},
		Orders: OrdersConfig{
			Atomic: v.GetBool("orders.atomic"),
		},
		Alerts: AlertsConfig{
			LowStockThreshold: v.GetInt("alerts.low_stock_threshold"),
		},
		Seed: SeedConfig{
			Products:  v.GetInt("seed.products"),
			Customers: v.GetInt("seed.customers"),
			Seed:      v.GetInt64("seed.seed"),
		},
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setDefaults registers defaults for keys where zero is a meaningful value,
// so an explicit 0 in the file or environment is kept
func setDefaults(v *viper.Viper) {
	v.SetDefault("alerts.low_stock_threshold", 3)
	v.SetDefault("seed.products", 10)
	v.SetDefault("seed.customers", 5)
}

// applyDefaults sets default values for empty string fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "storefront"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stderr"
	}
	if strings.TrimSpace(cfg.Data.File) == "" {
		cfg.Data.File = "data.json"
	}
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	switch strings.ToLower(c.Log.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("log.format must be json or console, got %q", c.Log.Format)
	}

	if c.Alerts.LowStockThreshold < 0 {
		return fmt.Errorf("alerts.low_stock_threshold cannot be negative")
	}

	if c.Seed.Products < 0 || c.Seed.Products > maxSeedCount {
		return fmt.Errorf("seed.products must be between 0 and %d, got %d", maxSeedCount, c.Seed.Products)
	}
	if c.Seed.Customers < 0 || c.Seed.Customers > maxSeedCount {
		return fmt.Errorf("seed.customers must be between 0 and %d, got %d", maxSeedCount, c.Seed.Customers)
	}

	return nil
}
