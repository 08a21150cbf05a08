// Package config holds process configuration, bound to environment
// variables with sane defaults.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Known configuration keys.
const (
	KeyDebug        = "debug"
	KeyVariant      = "variant"
	KeySeed         = "seed"
	KeyHistoryLimit = "history-limit"
	KeyStatsDB      = "stats-db"
	KeyPlayer       = "player"
)

// Config wraps a viper instance with the engine's defaults. Environment
// variables use the PATIENCE_ prefix with dashes mapped to underscores,
// e.g. PATIENCE_HISTORY_LIMIT.
type Config struct {
	v *viper.Viper
}

// New creates a config with defaults applied and the environment bound.
func New() *Config {
	v := viper.New()
	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyVariant, "klondike")
	v.SetDefault(KeySeed, int64(0))
	v.SetDefault(KeyHistoryLimit, 5000)
	v.SetDefault(KeyStatsDB, "patience-stats.db")
	v.SetDefault(KeyPlayer, "player1")

	v.SetEnvPrefix("patience")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return &Config{v: v}
}

// Set overrides a key, taking precedence over the environment. Used by
// flag parsing in main.
func (c *Config) Set(key string, value any) {
	c.v.Set(key, value)
}

func (c *Config) GetString(key string) string { return c.v.GetString(key) }
func (c *Config) GetBool(key string) bool     { return c.v.GetBool(key) }
func (c *Config) GetInt(key string) int       { return c.v.GetInt(key) }
func (c *Config) GetInt64(key string) int64   { return c.v.GetInt64(key) }
