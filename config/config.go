package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

const (
	ModePlay     = "play"
	ModeSelfPlay = "selfplay"

	VerbosityAll     = "all"
	VerbosityCompact = "compact"

	envPrefix = "SKIRMISH"
)

var ErrArgFormat = errors.New("arguments must have the form key=value with a known key")

type SelfPlayConfig struct {
	Games     int    `mapstructure:"games"`
	MaxTurns  int    `mapstructure:"maxTurns"`
	OutputDir string `mapstructure:"outputDir"`
	SQLite    string `mapstructure:"sqlite"`
}

type Config struct {
	Seed      int64          `mapstructure:"seed"`
	Deck      string         `mapstructure:"deck"`
	Units     string         `mapstructure:"units"`
	Verbosity string         `mapstructure:"verbosity"`
	LogLevel  string         `mapstructure:"logLevel"`
	Mode      string         `mapstructure:"mode"`
	SelfPlay  SelfPlayConfig `mapstructure:"selfplay"`
}

// keys accepted on the command line, besides "config".
var keys = []string{
	"seed", "deck", "units", "verbosity", "logLevel", "mode",
	"selfplay.games", "selfplay.maxTurns", "selfplay.outputDir", "selfplay.sqlite",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("verbosity", VerbosityAll)
	v.SetDefault("logLevel", "warn")
	v.SetDefault("mode", ModePlay)

	v.SetDefault("selfplay.games", 10)
	v.SetDefault("selfplay.maxTurns", 300)
	v.SetDefault("selfplay.outputDir", "experiments")
	v.SetDefault("selfplay.sqlite", "")
}

// Load resolves the configuration from defaults, an optional config file
// named by "config=<path>", SKIRMISH_* environment variables and finally the
// key=value arguments themselves.
func Load(args []string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	overrides := map[string]string{}
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return Config{}, fmt.Errorf("%w: %q", ErrArgFormat, arg)
		}
		if key != "config" && !slices.Contains(keys, key) {
			return Config{}, fmt.Errorf("%w: unknown key %q", ErrArgFormat, key)
		}
		overrides[key] = value
	}

	if path, ok := overrides["config"]; ok {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
		delete(overrides, "config")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range keys {
		// AutomaticEnv alone does not reach Unmarshal for keys without a default
		if err := v.BindEnv(key); err != nil {
			return Config{}, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	for key, value := range overrides {
		v.Set(key, value)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.validate(v.IsSet("seed")); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate(hasSeed bool) error {
	switch c.Mode {
	case ModePlay:
		if !hasSeed {
			return errors.New("seed is required")
		}
	case ModeSelfPlay:
		if c.SelfPlay.Games <= 0 {
			return fmt.Errorf("selfplay.games must be positive, got %d", c.SelfPlay.Games)
		}
		if c.SelfPlay.MaxTurns <= 0 {
			return fmt.Errorf("selfplay.maxTurns must be positive, got %d", c.SelfPlay.MaxTurns)
		}
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}

	if c.Deck == "" || c.Units == "" {
		return errors.New("deck and units files are required")
	}
	if c.Verbosity != VerbosityAll && c.Verbosity != VerbosityCompact {
		return fmt.Errorf("verbosity must be %q or %q, got %q", VerbosityAll, VerbosityCompact, c.Verbosity)
	}
	return nil
}
