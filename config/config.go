// Package config resolves roadtime settings from defaults, an optional
// roadtime.toml, ROADTIME_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// DefaultFile is the optional config file read from the working directory.
const DefaultFile = "roadtime.toml"

// EnvPrefix prefixes environment overrides, e.g. ROADTIME_PORT=9090 or
// ROADTIME_DELAY_FROM=Erode.
const EnvPrefix = "ROADTIME_"

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds all configuration for the application
type Config struct {
	Network   string  `koanf:"network"`
	From      string  `koanf:"from"`
	To        string  `koanf:"to"`
	DelayFrom string  `koanf:"delay-from"`
	DelayTo   string  `koanf:"delay-to"`
	Delay     float64 `koanf:"delay"`
	Serve     bool    `koanf:"serve"`
	Port      int     `koanf:"port"`
	Watch     bool    `koanf:"watch"`
	Verbosity string  `koanf:"verbosity"`
	JSONLogs  bool    `koanf:"json-logs"`
}

// Interactive reports whether the caller should prompt for the places.
func (c *Config) Interactive() bool {
	return !c.Serve && c.From == "" && c.To == ""
}

// HasDelay reports whether a traffic delay was requested.
func (c *Config) HasDelay() bool {
	return c.DelayFrom != "" || c.DelayTo != ""
}

// Validate checks cross-field constraints that flags alone cannot express.
func (c *Config) Validate() error {
	switch {
	case (c.From == "") != (c.To == ""):
		return fmt.Errorf("%w: --from and --to must be given together", ErrInvalidConfig)
	case (c.DelayFrom == "") != (c.DelayTo == ""):
		return fmt.Errorf("%w: --delay-from and --delay-to must be given together", ErrInvalidConfig)
	case c.Delay < 0 || math.IsNaN(c.Delay) || math.IsInf(c.Delay, 0):
		return fmt.Errorf("%w: delay must be a non-negative number of minutes, got %v", ErrInvalidConfig, c.Delay)
	case c.Serve && (c.Port <= 0 || c.Port > 65535):
		return fmt.Errorf("%w: port %d out of range", ErrInvalidConfig, c.Port)
	case c.Watch && c.Network == "":
		return fmt.Errorf("%w: --watch needs a --network file", ErrInvalidConfig)
	}

	return nil
}

// Flags returns the command-line flag set. Flag names double as config keys.
func Flags() *pflag.FlagSet {
	f := pflag.NewFlagSet("roadtime", pflag.ContinueOnError)
	f.String("network", "", "TOML road network file (default: built-in Erode district map)")
	f.String("from", "", "starting place (non-interactive)")
	f.String("to", "", "destination place (non-interactive)")
	f.String("delay-from", "", "one end of the road to delay")
	f.String("delay-to", "", "other end of the road to delay")
	f.Float64("delay", 0, "extra minutes of traffic on the delayed road")
	f.Bool("serve", false, "start the HTTP API instead of the console")
	f.Int("port", 8080, "HTTP port (with --serve)")
	f.Bool("watch", false, "reload --network when the file changes (with --serve)")
	f.StringP("verbosity", "v", "", "log level: debug, info, warn, error")
	f.Bool("json-logs", false, "emit logs as JSON")
	return f
}

// Load loads configuration from defaults, the default config file,
// environment variables, and flags.
func Load(f *pflag.FlagSet) (*Config, error) {
	return LoadFile(DefaultFile, f)
}

// LoadFile is Load with an explicit config file path.
// Priority: Flags > Env > Config File > Defaults
func LoadFile(path string, f *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]interface{}{
		"network":    "",
		"from":       "",
		"to":         "",
		"delay-from": "",
		"delay-to":   "",
		"delay":      0.0,
		"serve":      false,
		"port":       8080,
		"watch":      false,
		"verbosity":  "",
		"json-logs":  false,
	}
	if err := k.Load(makeMapProvider(defaults), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// The file is optional; a missing one is not an error.
	if path != "" {
		_ = k.Load(file.Provider(path), toml.Parser())
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(
			strings.TrimPrefix(s, EnvPrefix)), "_", "-")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if f != nil {
		if err := k.Load(posflag.Provider(f, ".", k), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// mapProvider feeds a plain map into koanf.
type mapProvider struct {
	m map[string]interface{}
}

func makeMapProvider(m map[string]interface{}) *mapProvider {
	return &mapProvider{m: m}
}

func (p *mapProvider) Read() (map[string]interface{}, error) {
	return p.m, nil
}

func (p *mapProvider) ReadBytes() ([]byte, error) {
	return nil, errors.New("not implemented")
}
