package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Load reads configurations from a TOML file. Secrets can be overridden with
// environment variables so they stay out of the config file in production.
func Load(path string) (Configs, error) {
	cfg := defaultConfigs()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Configs{}, err
		}
	}

	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}

	if v := os.Getenv("TOKEN_SECRET"); v != "" {
		cfg.Auth.TokenSecret = v
	}

	if v := os.Getenv("ADMIN_PASSWORD"); v != "" {
		cfg.Admin.Password = v
	}

	return cfg, nil
}

func defaultConfigs() Configs {
	return Configs{
		Env: "local",
		ApiServer: ServerConfigs{
			Host:         "0.0.0.0",
			Port:         "8080",
			MaxLimit:     50,
			DefaultLimit: 10,
		},
		Database: DatabaseConfigs{
			Driver: "sqlite",
		},
	}
}
