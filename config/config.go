// Package config loads CLI settings from defaults, an optional casegen.toml,
// a .env file and CASEGEN_* environment variables, in increasing precedence.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// FileName is the config file searched for when no path is given.
const FileName = "casegen.toml"

// EnvPrefix prefixes every environment override, e.g. CASEGEN_LOG_LEVEL.
const EnvPrefix = "CASEGEN"

// Config holds every setting the CLI reads.
type Config struct {
	Generate GenerateConfig `mapstructure:"generate"`
	Log      LogConfig      `mapstructure:"log"`
	Output   OutputConfig   `mapstructure:"output"`
}

// GenerateConfig tunes engine.Generate.
type GenerateConfig struct {
	Count    int   `mapstructure:"count"`
	Seed     int64 `mapstructure:"seed"` // 0 picks a time based seed
	Workers  int   `mapstructure:"workers"`
	MaxCount int   `mapstructure:"max_count"`
	// PlanCacheSize bounds the generation order cache; 0 disables it.
	PlanCacheSize int `mapstructure:"plan_cache_size"`
}

// LogConfig selects the zap logger.
type LogConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

// OutputConfig selects the export encoding.
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// SetDefaults registers the default of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("generate.count", 1)
	v.SetDefault("generate.seed", 0)
	v.SetDefault("generate.workers", 4)
	v.SetDefault("generate.max_count", 10000)
	v.SetDefault("generate.plan_cache_size", 64)

	v.SetDefault("log.level", "warn")
	v.SetDefault("log.json", false)

	v.SetDefault("output.format", "text")
}

// New builds a viper instance with defaults and environment binding.
// When path is empty, casegen.toml is looked up in the working directory
// and then in $HOME/.config/casegen.
func New(path string) *viper.Viper {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(strings.TrimSuffix(FileName, filepath.Ext(FileName)))
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "casegen"))
		}
	}
	v.SetConfigType("toml")

	return v
}

// Load reads the configuration. A missing file is only an error when path
// names it explicitly.
func Load(path string) (*Config, error) {
	v := New(path)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, errors.Wrapf(err, "config: read %s", describe(path))
		}
	}

	return Decode(v)
}

// Decode unmarshals a prepared viper instance and checks the values.
func Decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "config: unmarshal")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects values the engine would panic on.
func (c *Config) Validate() error {
	switch {
	case c.Generate.Count < 1:
		return errors.Newf("config: generate.count must be positive, got %d", c.Generate.Count)
	case c.Generate.Workers < 1:
		return errors.Newf("config: generate.workers must be positive, got %d", c.Generate.Workers)
	case c.Generate.MaxCount < 1:
		return errors.Newf("config: generate.max_count must be positive, got %d", c.Generate.MaxCount)
	case c.Generate.PlanCacheSize < 0:
		return errors.Newf("config: generate.plan_cache_size must not be negative, got %d", c.Generate.PlanCacheSize)
	}

	return nil
}

func describe(path string) string {
	if path == "" {
		return FileName
	}
	return path
}
