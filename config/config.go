// Package config resolves runtime settings from the session prefab, the
// environment and command-line flags, in that order of precedence.
package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/milk9111/ringrush/prefabs"
	"github.com/milk9111/ringrush/session"
)

type Config struct {
	Level       string  `env:"RINGRUSH_LEVEL" envDefault:"level1.json"`
	Debug       bool    `env:"RINGRUSH_DEBUG"`
	TimeScale   float64 `env:"RINGRUSH_TIME_SCALE" envDefault:"1"`
	ScenePolicy string  `env:"RINGRUSH_SCENE_POLICY"`
	Monitor     int     `env:"RINGRUSH_MONITOR"`
	Watch       bool    `env:"RINGRUSH_WATCH"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads the environment on top of the session prefab defaults.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.ScenePolicy == "" {
		if spec, err := prefabs.LoadSessionSpec(); err == nil {
			cfg.ScenePolicy = spec.Policy
		}
	}
	return cfg, nil
}

// BindFlags registers flags whose defaults are the current values, so a flag
// only wins when it is given explicitly.
func (c *Config) BindFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Level, "level", c.Level, "level file to load")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "log missing collaborators and draw colliders")
	fs.IntVar(&c.Monitor, "m", c.Monitor, "monitor index to open the window on")
	fs.StringVar(&c.ScenePolicy, "scenes", c.ScenePolicy, "scene policy: info or direct")
	fs.BoolVar(&c.Watch, "watch", c.Watch, "hot reload prefabs, scripts and levels")
	fs.Float64Var(&c.TimeScale, "timescale", c.TimeScale, "simulation time scale")
}

func (c Config) Validate() error {
	if c.Level == "" {
		return fmt.Errorf("config: level is required")
	}
	if c.TimeScale <= 0 {
		return fmt.Errorf("config: time scale must be positive, got %g", c.TimeScale)
	}
	if c.Monitor < 0 {
		return fmt.Errorf("config: monitor index must not be negative, got %d", c.Monitor)
	}
	if _, err := session.ParsePolicy(c.ScenePolicy); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// SessionConfig builds the session rules from the prefab with this
// configuration applied.
func (c Config) SessionConfig() (session.Config, error) {
	out := session.DefaultConfig()
	if spec, err := prefabs.LoadSessionSpec(); err == nil {
		if spec.Lives > 0 {
			out.Lives = spec.Lives
		}
		if spec.TimeLimit > 0 {
			out.TimeLimit = spec.TimeLimit
		}
		if spec.InfoDelay > 0 {
			out.InfoDelay = spec.InfoDelay
		}
		if spec.Title != "" {
			out.Title = spec.Title
		}
	} else if c.Debug {
		fmt.Printf("config: session prefab unavailable: %v\n", err)
	}

	policy, err := session.ParsePolicy(c.ScenePolicy)
	if err != nil {
		return session.Config{}, fmt.Errorf("config: %w", err)
	}
	out.Policy = policy
	out.Debug = c.Debug
	return out, nil
}
