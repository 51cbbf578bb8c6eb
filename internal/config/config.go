package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds the runtime configuration for the catalog service
type Config struct {
	ServerAddr   string
	DatabaseURL  string
	DatabaseFile string
	ImportDir    string
}

// LoadConfig reads configuration from config.yaml (if present) and the
// environment. Environment variables use underscores, e.g. DATABASE_URL
// overrides database.url.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.addr", "127.0.0.1:8000")
	v.SetDefault("database.url", "")
	v.SetDefault("database.file", "database.db")
	v.SetDefault("import.dir", "carjsons")

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; env and defaults cover everything
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	return &Config{
		ServerAddr:   v.GetString("server.addr"),
		DatabaseURL:  v.GetString("database.url"),
		DatabaseFile: v.GetString("database.file"),
		ImportDir:    v.GetString("import.dir"),
	}, nil
}
