package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"petverse/internal/domain/pet"
)

// Duration is a time.Duration that unmarshals from yaml strings like
// "30s" or "2h".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Tuning   TuningConfig   `yaml:"tuning"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type DatabaseConfig struct {
	// Driver is "postgres", "sqlite" or "memory".
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

type TuningConfig struct {
	TickPeriod       Duration `yaml:"tick_period"`
	HungerDeathGrace Duration `yaml:"hunger_death_grace"`
	HealthDeathGrace Duration `yaml:"health_death_grace"`
	ComboDeathGrace  Duration `yaml:"combo_death_grace"`
	SleepDuration    Duration `yaml:"sleep_duration"`
}

func Default() Config {
	return Config{
		Server:   ServerConfig{Addr: ":8080"},
		Database: DatabaseConfig{Driver: "memory"},
	}
}

// Load reads the yaml file at path on top of the defaults. A missing
// path is not an error: the defaults run as-is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// PetTuning folds the configured overrides onto the default tuning; an
// unset field keeps the default.
func (c Config) PetTuning() pet.Tuning {
	t := pet.DefaultTuning()
	if c.Tuning.TickPeriod > 0 {
		t.TickPeriod = time.Duration(c.Tuning.TickPeriod)
	}
	if c.Tuning.HungerDeathGrace > 0 {
		t.HungerDeathGrace = time.Duration(c.Tuning.HungerDeathGrace)
	}
	if c.Tuning.HealthDeathGrace > 0 {
		t.HealthDeathGrace = time.Duration(c.Tuning.HealthDeathGrace)
	}
	if c.Tuning.ComboDeathGrace > 0 {
		t.ComboDeathGrace = time.Duration(c.Tuning.ComboDeathGrace)
	}
	if c.Tuning.SleepDuration > 0 {
		t.SleepDuration = time.Duration(c.Tuning.SleepDuration)
	}
	return t
}
