package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	configName = "gravityshift"
	envPrefix  = "GRAVITYSHIFT"
)

type WindowConfig struct {
	Title   string `mapstructure:"title"`
	Monitor int    `mapstructure:"monitor"`
	Width   int    `mapstructure:"width"`
	Height  int    `mapstructure:"height"`
}

type PhysicsConfig struct {
	FixedDeltaTime float64 `mapstructure:"fixedDeltaTime"`
	// MaxFixedSteps caps the fixed passes run in a single frame.
	MaxFixedSteps int `mapstructure:"maxFixedSteps"`
}

type AudioConfig struct {
	Volume float64 `mapstructure:"volume"`
}

// Config is the runtime configuration. Gameplay tuning lives in prefabs.
type Config struct {
	LogLevel     string        `mapstructure:"logLevel"`
	Debug        bool          `mapstructure:"debug"`
	Level        string        `mapstructure:"level"`
	SkipMainMenu bool          `mapstructure:"skipMainMenu"`
	HotReload    bool          `mapstructure:"hotReload"`
	TPS          int           `mapstructure:"tps"`
	Window       WindowConfig  `mapstructure:"window"`
	Physics      PhysicsConfig `mapstructure:"physics"`
	Audio        AudioConfig   `mapstructure:"audio"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("debug", false)
	v.SetDefault("level", "")
	v.SetDefault("skipMainMenu", false)
	v.SetDefault("hotReload", true)
	v.SetDefault("tps", 60)

	v.SetDefault("window.title", "Gravity Shift")
	v.SetDefault("window.monitor", 0)
	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 720)

	v.SetDefault("physics.fixedDeltaTime", 0.02)
	v.SetDefault("physics.maxFixedSteps", 5)

	v.SetDefault("audio.volume", -1)
}

// Load reads gravityshift.yaml from configDir when present and applies
// GRAVITYSHIFT_* environment overrides. A missing file is not an error.
func Load(configDir string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	if configDir != "" {
		v.AddConfigPath(configDir)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read %s: %w", configName, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Physics.FixedDeltaTime <= 0 {
		return fmt.Errorf("config: physics.fixedDeltaTime must be positive, got %v", c.Physics.FixedDeltaTime)
	}
	if c.Physics.MaxFixedSteps < 1 {
		return fmt.Errorf("config: physics.maxFixedSteps must be at least 1, got %d", c.Physics.MaxFixedSteps)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("config: tps must be positive, got %d", c.TPS)
	}
	return nil
}
