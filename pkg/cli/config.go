package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/biolimbo/lip-sync-engine/pkg/lexcast"
	"github.com/biolimbo/lip-sync-engine/pkg/lipsync"
	"github.com/biolimbo/lip-sync-engine/pkg/lipsync/export"
	"github.com/biolimbo/lip-sync-engine/pkg/platform"
)

const (
	// DefaultBaseDir is the base configuration directory name
	DefaultBaseDir = ".lipsync"
	// DefaultConfigFile is the default configuration filename
	DefaultConfigFile = "config.yaml"

	// RecognizerEnergy selects lipsync.EnergyRecognizer.
	RecognizerEnergy = "energy"
	// RecognizerSpectral selects lipsync.SpectralRecognizer.
	RecognizerSpectral = "spectral"

	// EnvPrefix prefixes the environment overrides, e.g. LIPSYNC_THRESHOLD.
	EnvPrefix = "LIPSYNC_"
)

// Config holds the tool's settings.
type Config struct {
	// ModelsPath is passed to the engine's init call
	ModelsPath string `yaml:"models_path,omitempty"`

	// Recognizer is "energy" (default) or "spectral"
	Recognizer string `yaml:"recognizer,omitempty"`

	// Threshold is the voicing level: an RMS level in [0, 1] for the
	// energy recognizer, dB above the noise floor for the spectral one
	Threshold float64 `yaml:"threshold,omitempty"`

	// FrameMs is the analysis frame length in milliseconds (optional)
	FrameMs int `yaml:"frame_ms,omitempty"`

	// Shapes lists the extended mouth shapes to target, e.g. "GHX"
	Shapes string `yaml:"shapes,omitempty"`

	// Format is the default export format
	Format string `yaml:"format,omitempty"`

	// LogLevel is debug, info, warn or error
	LogLevel string `yaml:"log_level,omitempty"`

	// configPath is the path to the config file
	configPath string
}

// keys maps setting names to their setters. The names are the YAML keys;
// the environment variable is EnvPrefix plus the upper-cased name.
var keys = map[string]func(c *Config, v string) error{
	"models_path": func(c *Config, v string) error {
		c.ModelsPath = v
		return nil
	},
	"recognizer": func(c *Config, v string) error {
		if v != "" && v != RecognizerEnergy && v != RecognizerSpectral {
			return fmt.Errorf("want %s or %s, got %q", RecognizerEnergy, RecognizerSpectral, v)
		}
		c.Recognizer = v
		return nil
	},
	"threshold": func(c *Config, v string) error {
		f, err := lexcast.Parse[float64](v)
		if err != nil {
			return err
		}
		if f < 0 || math.IsInf(f, 0) || math.IsNaN(f) {
			return fmt.Errorf("threshold %v must be a non-negative number", f)
		}
		c.Threshold = f
		return nil
	},
	"frame_ms": func(c *Config, v string) error {
		n, err := lexcast.Parse[int](v)
		if err != nil {
			return err
		}
		if n <= 0 {
			return fmt.Errorf("frame_ms must be positive, got %d", n)
		}
		c.FrameMs = n
		return nil
	},
	"shapes": func(c *Config, v string) error {
		if _, err := lipsync.ParseShapeSet(v); err != nil {
			return err
		}
		c.Shapes = v
		return nil
	},
	"format": func(c *Config, v string) error {
		if v != "" {
			if _, err := export.ByName(v); err != nil {
				return err
			}
		}
		c.Format = v
		return nil
	},
	"log_level": func(c *Config, v string) error {
		if _, err := lexcast.ParseText[slog.Level](v); err != nil {
			return err
		}
		c.LogLevel = v
		return nil
	},
}

// Keys returns the setting names accepted by Set, sorted.
func Keys() []string {
	names := make([]string, 0, len(keys))
	for k := range keys {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// LoadConfig loads the configuration at path, or at the default location
// when path is empty. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		paths, err := NewPaths()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		path = paths.ConfigFile()
	}

	cfg := &Config{configPath: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.configPath = path
	return cfg, nil
}

// Set parses and stores one setting by name.
func (c *Config) Set(key, value string) error {
	set, ok := keys[key]
	if !ok {
		return fmt.Errorf("unknown config key %q", key)
	}
	if err := set(c, value); err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	return nil
}

// ApplyEnv overrides settings from environment variables found by lookup,
// normally os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	for _, key := range Keys() {
		name := EnvPrefix + upperASCII(key)
		v, ok := lookup(name)
		if !ok {
			continue
		}
		if err := c.Set(key, v); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

// Save writes the configuration to its path, creating the directory.
func (c *Config) Save() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(c.configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Path returns the config file path
func (c *Config) Path() string {
	return c.configPath
}

// Models returns the models path, defaulting to the platform resources
// path.
func (c *Config) Models() string {
	if c.ModelsPath != "" {
		return c.ModelsPath
	}
	return platform.ResourcesPath
}

// ShapeSet returns the target shapes.
func (c *Config) ShapeSet() (lipsync.ShapeSet, error) {
	return lipsync.ParseShapeSet(c.Shapes)
}

// NewRecognizer returns the configured recognizer. frame_ms only applies
// to the energy recognizer.
func (c *Config) NewRecognizer(logger *slog.Logger) lipsync.Recognizer {
	if c.Recognizer == RecognizerSpectral {
		return &lipsync.SpectralRecognizer{Threshold: c.Threshold, Logger: logger}
	}
	return &lipsync.EnergyRecognizer{
		Threshold:     c.Threshold,
		FrameDuration: time.Duration(c.FrameMs) * time.Millisecond,
		Logger:        logger,
	}
}

// Level returns the configured log level, Info when unset.
func (c *Config) Level() (slog.Level, error) {
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	return lexcast.ParseText[slog.Level](c.LogLevel)
}

func upperASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}
