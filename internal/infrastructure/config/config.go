package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultEndpoint is the hosted classification endpoint
const DefaultEndpoint = "https://phishing-website-detection-based-on.onrender.com/predict"

// Configuration errors
var (
	ErrMissingEndpoint = errors.New("classifier endpoint is required")
	ErrInvalidEndpoint = errors.New("classifier endpoint must be an absolute http(s) URL")
)

// Config holds all application configuration
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Classifier ClassifierConfig `mapstructure:"classifier"`
	UI         UIConfig         `mapstructure:"ui"`
	Log        LogConfig        `mapstructure:"log"`
}

// ServerConfig holds web form server configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// ClassifierConfig holds classification endpoint configuration
type ClassifierConfig struct {
	Endpoint string        `mapstructure:"endpoint"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// UIConfig holds form behavior configuration
type UIConfig struct {
	DetailsToggle  bool   `mapstructure:"details_toggle"`
	StaleResponses string `mapstructure:"stale_responses"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// Load reads configuration from config.yaml (if present) and PHISHGUARD_* environment variables
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	setDefaults(v)

	v.SetEnvPrefix("PHISHGUARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")

	// No controller-level timeout beyond the transport's own
	v.SetDefault("classifier.endpoint", DefaultEndpoint)
	v.SetDefault("classifier.timeout", 30*time.Second)

	v.SetDefault("ui.details_toggle", true)
	v.SetDefault("ui.stale_responses", "last_writer_wins")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.file", "")
}

// Validate checks the settings that make startup impossible
func (c *Config) Validate() error {
	endpoint := strings.TrimSpace(c.Classifier.Endpoint)
	if endpoint == "" {
		return ErrMissingEndpoint
	}

	u, err := url.Parse(endpoint)
	if err != nil || !u.IsAbs() || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: %q", ErrInvalidEndpoint, endpoint)
	}

	return nil
}
