// Package config loads command-line tool settings.
//
// Defaults come from default.yaml embedded in this package, then a user
// config file, then ENTROPY_* environment variables, then command-line
// flags, each overriding the last.
package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/simonhull/entropy/internal/log"
	"github.com/simonhull/entropy/internal/types"
)

// EnvPrefix is prepended to every environment override, e.g. ENTROPY_SCAN_WORKERS.
const EnvPrefix = "ENTROPY"

//go:embed default.yaml
var defaultConfig []byte

type Config struct {
	Measure   string `mapstructure:"measure"`
	Log       Log    `mapstructure:"log"`
	Scan      Scan   `mapstructure:"scan"`
	Precision int    `mapstructure:"precision"`
}

type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type Scan struct {
	ChunkSize int `mapstructure:"chunk_size"`
	Workers   int `mapstructure:"workers"`
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"measure":    "measure",
	"precision":  "precision",
	"log-level":  "log.level",
	"log-format": "log.format",
	"chunk-size": "scan.chunk_size",
	"workers":    "scan.workers",
}

// Load reads the configuration.
//
// path names an optional config file; "" skips it. Flags present in flags
// are bound to their keys and only override when set on the command line.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	// always override from environment
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// load defaults
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewBuffer(defaultConfig)); err != nil {
		return Config{}, fmt.Errorf("read default config: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	return cfg, cfg.Validate()
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if _, err := types.ParseMeasure(c.Measure); err != nil {
		return err
	}
	if c.Precision < 0 || c.Precision > 17 {
		return fmt.Errorf("precision %d out of range [0, 17]", c.Precision)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case log.FormatConsole, log.FormatJSON:
	default:
		return fmt.Errorf("unknown log format %q (want console or json)", c.Log.Format)
	}
	if c.Scan.ChunkSize <= 0 {
		return fmt.Errorf("scan.chunk_size must be positive, got %d", c.Scan.ChunkSize)
	}
	if c.Scan.Workers <= 0 {
		return fmt.Errorf("scan.workers must be positive, got %d", c.Scan.Workers)
	}
	return nil
}

// MeasureValue returns the configured measure.
func (c Config) MeasureValue() types.Measure {
	m, _ := types.ParseMeasure(c.Measure)
	return m
}
