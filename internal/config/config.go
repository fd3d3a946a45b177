// Package config loads the program settings with viper: defaults, an optional
// space.yaml, then SPACE_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// FileName is the config file looked up in the config directory.
const FileName = "space"

// EnvPrefix prefixes environment overrides, e.g. SPACE_WINDOW_WIDTH.
const EnvPrefix = "SPACE"

// WindowConfig holds window settings.
type WindowConfig struct {
	Width         int  `mapstructure:"width"`
	Height        int  `mapstructure:"height"`
	TPS           int  `mapstructure:"tps"`
	CaptureCursor bool `mapstructure:"captureCursor"`
}

// AssetsConfig holds asset locations and failure handling.
type AssetsConfig struct {
	Root         string `mapstructure:"root"`
	Placeholders bool   `mapstructure:"placeholders"`
}

// RenderConfig holds renderer switches.
type RenderConfig struct {
	Lighting bool `mapstructure:"lighting"`
}

// HUDConfig holds overlay settings.
type HUDConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// HeadlessConfig holds the no-window runner settings.
type HeadlessConfig struct {
	Hz       int    `mapstructure:"hz"`
	Ticks    uint64 `mapstructure:"ticks"`
	Realtime bool   `mapstructure:"realtime"`
}

// Config is the full program configuration.
type Config struct {
	LogLevel string         `mapstructure:"logLevel"`
	Window   WindowConfig   `mapstructure:"window"`
	Assets   AssetsConfig   `mapstructure:"assets"`
	Render   RenderConfig   `mapstructure:"render"`
	HUD      HUDConfig      `mapstructure:"hud"`
	Headless HeadlessConfig `mapstructure:"headless"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")

	v.SetDefault("window.width", 800)
	v.SetDefault("window.height", 800)
	v.SetDefault("window.tps", 60)
	v.SetDefault("window.captureCursor", true)

	v.SetDefault("assets.root", ".")
	v.SetDefault("assets.placeholders", true)

	v.SetDefault("render.lighting", false)

	v.SetDefault("hud.enabled", false)

	v.SetDefault("headless.hz", 60)
	v.SetDefault("headless.ticks", 0)
	v.SetDefault("headless.realtime", false)
}

// Load reads configuration from configDir. A missing config file is not an
// error; a malformed one is.
func Load(configDir string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configDir != "" {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(configDir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}
	return cfg, nil
}
