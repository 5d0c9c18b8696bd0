package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type API struct {
	Base string `mapstructure:"base"`
}
type Server struct {
	Listen string `mapstructure:"listen"`
}
type Coach struct {
	Rules string `mapstructure:"rules"`
}
type Log struct {
	Level string `mapstructure:"level"`
}

type Root struct {
	API    API    `mapstructure:"api"`
	Server Server `mapstructure:"server"`
	Coach  Coach  `mapstructure:"coach"`
	Log    Log    `mapstructure:"log"`
}

// Load reads config/config.yaml (or ./config.yaml) when present and applies
// OHCR_* environment overrides on top, e.g. OHCR_API_BASE for api.base.
func Load() (*Root, error) {
	v := viper.New()
	v.SetDefault("api.base", "http://localhost:8000")
	v.SetDefault("server.listen", ":8080")
	v.SetDefault("coach.rules", "")
	v.SetDefault("log.level", "info")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("config")
	v.AddConfigPath(".")

	v.SetEnvPrefix("OHCR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Root
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}
