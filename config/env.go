package config

import (
	"strings"

	"github.com/spf13/viper"
)

const EnvPrefix = "SESSIONSHEETS"

// LoadEnv reads SESSIONSHEETS_CONFIG and SESSIONSHEETS_LOG_LEVEL.
func LoadEnv() (Env, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("log_level", "warn")
	if err := v.BindEnv("config"); err != nil {
		return Env{}, err
	}
	if err := v.BindEnv("log_level"); err != nil {
		return Env{}, err
	}

	path := v.GetString("config")
	if path == "" {
		def, err := DefaultPath()
		if err != nil {
			return Env{}, err
		}
		path = def
	}

	return Env{
		ConfigPath: path,
		LogLevel:   v.GetString("log_level"),
	}, nil
}
