package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Local    LocalConfig    `mapstructure:"local"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

// DatabaseConfig points at the remote MongoDB backend. An empty URI
// runs the tracker in local-only mode; the SQLite store then serves
// everything instead of acting as a mirror.
type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

// LocalConfig locates the embedded SQLite store used as the offline
// fallback and mirror.
type LocalConfig struct {
	Path string `mapstructure:"path"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// server.address -> SERVER_ADDRESS, database.uri -> DATABASE_URI
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("database.uri", "")
	viper.SetDefault("database.name", "calis_tracker")
	viper.SetDefault("local.path", "data/calis-tracker.db")

	err = viper.ReadInConfig()
	// A missing config file is fine; defaults plus env vars are enough
	// to run.
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		err = nil
	} else if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	return config, nil
}
