// Package config loads chatscreen settings from defaults, a YAML file, the
// environment and finally command-line flags, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"chatscreen/internal/chat"

	env "github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

const (
	// AppDir is the directory under the user config dir holding config.yaml.
	AppDir = "chatscreen"
	// FileName is the config file name.
	FileName = "config.yaml"
	// DefaultServiceName is reported to OTLP when no service name is configured.
	DefaultServiceName = "chatscreen"
)

// Config holds every setting the screen reads at startup.
type Config struct {
	Platform    string          `yaml:"platform"`
	Locale      string          `yaml:"locale" validate:"required"`
	TimeZone    string          `yaml:"timezone"`
	RejectBlank bool            `yaml:"reject_blank"`
	Mouse       bool            `yaml:"mouse"`
	AltScreen   bool            `yaml:"alt_screen"`
	Log         LogConfig       `yaml:"log"`
	Telemetry   TelemetryConfig `yaml:"telemetry"`
}

// LogConfig controls the rotating log file. An empty File disables logging.
type LogConfig struct {
	File       string `yaml:"file"`
	Level      string `yaml:"level" validate:"oneof=debug info warn error"`
	MaxSizeMB  int    `yaml:"max_size_mb" validate:"gte=1"`
	MaxBackups int    `yaml:"max_backups" validate:"gte=0"`
}

// TelemetryConfig controls OTLP trace export. An empty Endpoint disables it.
type TelemetryConfig struct {
	Endpoint    string `yaml:"endpoint" validate:"omitempty,hostname_port|url"`
	ServiceName string `yaml:"service_name" validate:"required"`
	Insecure    bool   `yaml:"insecure"`
}

// envOverrides mirrors Config as flat environment variables. Variables that are
// not set leave the corresponding field untouched.
type envOverrides struct {
	Platform        string `env:"CHATSCREEN_PLATFORM"`
	Locale          string `env:"CHATSCREEN_LOCALE"`
	TimeZone        string `env:"CHATSCREEN_TIMEZONE"`
	RejectBlank     bool   `env:"CHATSCREEN_REJECT_BLANK"`
	Mouse           bool   `env:"CHATSCREEN_MOUSE"`
	AltScreen       bool   `env:"CHATSCREEN_ALT_SCREEN"`
	LogFile         string `env:"CHATSCREEN_LOG_FILE"`
	LogLevel        string `env:"CHATSCREEN_LOG_LEVEL"`
	LogMaxSizeMB    int    `env:"CHATSCREEN_LOG_MAX_SIZE_MB"`
	LogMaxBackups   int    `env:"CHATSCREEN_LOG_MAX_BACKUPS"`
	OTLPEndpoint    string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTELServiceName string `env:"OTEL_SERVICE_NAME"`
	OTLPInsecure    bool   `env:"CHATSCREEN_TELEMETRY_INSECURE"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Locale:    "en",
		Mouse:     true,
		AltScreen: true,
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  16,
			MaxBackups: 3,
		},
		Telemetry: TelemetryConfig{
			ServiceName: DefaultServiceName,
			Insecure:    true,
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/chatscreen/config.yaml (or the platform equivalent).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppDir, FileName), nil
}

// Load builds a Config from defaults, the YAML file at path, a .env file in the
// working directory and the process environment. An empty path means
// DefaultPath, where a missing file is not an error; an explicit path must exist.
// The result is not validated; call Validate after applying flags.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err == nil {
			path = p
		}
	}
	if path != "" {
		if err := cfg.mergeFile(path, explicit); err != nil {
			return Default(), err
		}
	}

	_ = godotenv.Load()
	if err := cfg.mergeEnv(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string, mustExist bool) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) && !mustExist {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %q: %w", path, err)
	}
	return nil
}

func (c *Config) mergeEnv() error {
	o := envOverrides{
		Platform:        c.Platform,
		Locale:          c.Locale,
		TimeZone:        c.TimeZone,
		RejectBlank:     c.RejectBlank,
		Mouse:           c.Mouse,
		AltScreen:       c.AltScreen,
		LogFile:         c.Log.File,
		LogLevel:        c.Log.Level,
		LogMaxSizeMB:    c.Log.MaxSizeMB,
		LogMaxBackups:   c.Log.MaxBackups,
		OTLPEndpoint:    c.Telemetry.Endpoint,
		OTELServiceName: c.Telemetry.ServiceName,
		OTLPInsecure:    c.Telemetry.Insecure,
	}
	if _, err := env.UnmarshalFromEnviron(&o); err != nil {
		return fmt.Errorf("read environment: %w", err)
	}
	c.Platform = o.Platform
	c.Locale = o.Locale
	c.TimeZone = o.TimeZone
	c.RejectBlank = o.RejectBlank
	c.Mouse = o.Mouse
	c.AltScreen = o.AltScreen
	c.Log.File = o.LogFile
	c.Log.Level = o.LogLevel
	c.Log.MaxSizeMB = o.LogMaxSizeMB
	c.Log.MaxBackups = o.LogMaxBackups
	c.Telemetry.Endpoint = o.OTLPEndpoint
	c.Telemetry.ServiceName = o.OTELServiceName
	c.Telemetry.Insecure = o.OTLPInsecure
	return nil
}

// Validate checks struct constraints plus the locale tag and time zone name.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := c.LanguageTag(); err != nil {
		return fmt.Errorf("invalid config: locale %q: %w", c.Locale, err)
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("invalid config: timezone %q: %w", c.TimeZone, err)
	}
	return nil
}

// LanguageTag parses Locale as a BCP 47 tag.
func (c Config) LanguageTag() (language.Tag, error) {
	return language.Parse(c.Locale)
}

// Location resolves TimeZone. Empty means the local zone.
func (c Config) Location() (*time.Location, error) {
	if c.TimeZone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.TimeZone)
}

// SendPolicy maps RejectBlank to the chat send policy.
func (c Config) SendPolicy() chat.SendPolicy {
	if c.RejectBlank {
		return chat.PolicyRejectBlank
	}
	return chat.PolicyAllowEmpty
}
