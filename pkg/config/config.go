package config

import (
	"strings"

	"github.com/spf13/viper"
)

// envKeyReplacer maps nested config keys to env var segments,
// e.g. github.token -> SHIELDS_GITHUB_TOKEN.
var envKeyReplacer = strings.NewReplacer(".", "_")

// GitHub holds settings for the GitHub content API client.
type GitHub struct {
	// Token is a personal access token. Empty means anonymous access,
	// which is subject to much stricter rate limits.
	Token string `mapstructure:"token"`
}

// Server holds settings for the HTTP listener.
type Server struct {
	ListenAddress string `mapstructure:"listen_address"`
}

type Config struct {
	Server Server `mapstructure:"server"`
	GitHub GitHub `mapstructure:"github"`
}

// Load reads configuration from the given file (optional) and from the
// environment. Environment variables use the SHIELDS_ prefix, e.g.
// SHIELDS_GITHUB_TOKEN overrides github.token.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetDefault("server.listen_address", ":8080")
	v.SetDefault("github.token", "")

	v.SetEnvPrefix("shields")
	v.SetEnvKeyReplacer(envKeyReplacer)
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
