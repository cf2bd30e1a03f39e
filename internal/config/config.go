package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration. None of it changes the form
// itself; fields, initial values and the submit/reset rules are fixed.
type Config struct {
	UI     UIConfig
	Log    LogConfig
	Prompt PromptConfig
}

// UIConfig holds presentation settings for the full-screen front end.
type UIConfig struct {
	AltScreen bool `mapstructure:"alt_screen"`
	Width     int
	Theme     ThemeConfig
}

// ThemeConfig overrides individual colors. Empty values keep the defaults.
type ThemeConfig struct {
	Title      string
	Frame      string
	Label      string
	Value      string
	Hint       string
	Button     string
	ButtonText string `mapstructure:"button_text"`
	Focus      string
}

// LogConfig holds logger settings. An empty Path disables logging.
type LogConfig struct {
	Level  string
	Format string
	Path   string
}

// PromptConfig holds settings for the line-oriented front end.
type PromptConfig struct {
	Output string
}

var (
	ErrInvalidLogLevel  = errors.New("config: invalid log level")
	ErrInvalidLogFormat = errors.New("config: invalid log format")
	ErrInvalidOutput    = errors.New("config: invalid prompt output format")
)

// Load reads configuration from file and env. Env var overrides use prefix
// INPUTFORM_. path, when non-empty, wins over INPUTFORM_CONFIG.
func Load(path string) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("ui.width", 48)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.path", filepath.Join(os.Getenv("HOME"), ".local", "state", "inputform", "inputform.log"))
	v.SetDefault("prompt.output", "pretty")
	for _, key := range []string{"title", "frame", "label", "value", "hint", "button", "button_text", "focus"} {
		v.SetDefault("ui.theme."+key, "")
	}

	v.SetConfigType("toml")

	cfgPath := path
	if cfgPath == "" {
		cfgPath = os.Getenv("INPUTFORM_CONFIG")
	}
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "inputform"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("INPUTFORM")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks the enumerated settings.
func (c Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.Log.Format)
	}
	switch strings.ToLower(c.Prompt.Output) {
	case "pretty", "json", "yaml":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidOutput, c.Prompt.Output)
	}
	return nil
}
