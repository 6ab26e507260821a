package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	Path string `mapstructure:"path"`
}

// Reports holds the tunable reporting thresholds. The defaults match
// the platform's historical values.
type Reports struct {
	NearGoalPercent     float64 `mapstructure:"near_goal_percent"`
	LargeDonationAmount float64 `mapstructure:"large_donation_amount"`
	TopProjectCount     int     `mapstructure:"top_project_count"`
}

type Config struct {
	Server   Server   `mapstructure:"server"`
	Database Database `mapstructure:"database"`
	Reports  Reports  `mapstructure:"reports"`
}

// Load reads configuration from path, falling back to defaults for
// anything unset. An empty path returns the defaults alone.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "8080")
	v.SetDefault("database.path", "donation-atlas.db")
	v.SetDefault("reports.near_goal_percent", 90)
	v.SetDefault("reports.large_donation_amount", 1000)
	v.SetDefault("reports.top_project_count", 5)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
