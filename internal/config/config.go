package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	EnvPrefix     = "STARTRIGHT"
	ConfigPathEnv = "STARTRIGHT_CONFIG"

	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
)

// Config is the full service configuration.
type Config struct {
	Server      ServerConfig      `yaml:"server" mapstructure:"server"`
	Log         LogConfig         `yaml:"log" mapstructure:"log"`
	Generation  GenerationConfig  `yaml:"generation" mapstructure:"generation"`
	Mail        MailConfig        `yaml:"mail" mapstructure:"mail"`
	Business    BusinessConfig    `yaml:"business" mapstructure:"business"`
	Entitlement EntitlementConfig `yaml:"entitlement" mapstructure:"entitlement"`
}

type ServerConfig struct {
	Port              string        `yaml:"port" mapstructure:"port"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout" mapstructure:"read_header_timeout"`
	ReadTimeout       time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout      time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`
	IdleTimeout       time.Duration `yaml:"idle_timeout" mapstructure:"idle_timeout"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}

type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level"`
}

// GenerationConfig selects the text-generation backend.
// Budgets are keyed by artifact kind and override the built-in token ceilings.
type GenerationConfig struct {
	Provider string         `yaml:"provider" mapstructure:"provider"`
	Model    string         `yaml:"model" mapstructure:"model"`
	BaseURL  string         `yaml:"base_url" mapstructure:"base_url"`
	Budgets  map[string]int `yaml:"budgets" mapstructure:"budgets"`
	Chat     int            `yaml:"chat_max_tokens" mapstructure:"chat_max_tokens"`
}

type MailConfig struct {
	From    string   `yaml:"from" mapstructure:"from"`
	To      []string `yaml:"to" mapstructure:"to"`
	BaseURL string   `yaml:"base_url" mapstructure:"base_url"`
}

// BusinessConfig names the business on generated documents and prompts.
type BusinessConfig struct {
	Issuer   string `yaml:"issuer" mapstructure:"issuer"`
	Reviewer string `yaml:"reviewer" mapstructure:"reviewer"`
}

// EntitlementConfig points at a Rego module replacing the embedded package policy.
type EntitlementConfig struct {
	PolicyFile string `yaml:"policy_file" mapstructure:"policy_file"`
}

var defaults = map[string]any{
	"server.port":                            "8080",
	"server.read_header_timeout":             5 * time.Second,
	"server.read_timeout":                    10 * time.Second,
	"server.write_timeout":                   5 * time.Minute,
	"server.idle_timeout":                    60 * time.Second,
	"server.shutdown_timeout":                30 * time.Second,
	"log.level":                              "info",
	"generation.provider":                    ProviderAnthropic,
	"generation.model":                       "",
	"generation.base_url":                    "",
	"generation.budgets.study":               3000,
	"generation.budgets.plan":                4000,
	"generation.budgets.name-suggestions":    1500,
	"generation.budgets.advice":              2000,
	"generation.budgets.formation-checklist": 1500,
	"generation.chat_max_tokens":             1024,
	"mail.from":                              "StartRight Orders <orders@start-right.uk>",
	"mail.to":                                []string{"info@start-right.uk"},
	"mail.base_url":                          "",
	"business.issuer":                        "StartRight UK",
	"business.reviewer":                      "William",
	"entitlement.policy_file":                "",
}

// Load builds the configuration from defaults, an optional YAML file and STARTRIGHT_* environment variables.
// When path is empty the file named by STARTRIGHT_CONFIG is used, if any.
func Load(path string) (*Config, error) {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("server.port", EnvPrefix+"_SERVER_PORT", "PORT"); err != nil {
		return nil, fmt.Errorf("failed to bind port: %w", err)
	}

	if path == "" {
		path = os.Getenv(ConfigPathEnv)
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values that cannot be defaulted.
func (c *Config) Validate() error {
	var errs []error

	switch c.Generation.Provider {
	case ProviderAnthropic, ProviderGemini:
	default:
		errs = append(errs, fmt.Errorf("unknown generation provider %q", c.Generation.Provider))
	}

	if _, err := c.Log.SlogLevel(); err != nil {
		errs = append(errs, err)
	}

	if strings.TrimSpace(c.Mail.From) == "" {
		errs = append(errs, errors.New("mail.from is required"))
	}

	if len(c.Mail.To) == 0 {
		errs = append(errs, errors.New("mail.to is required"))
	}

	for kind, budget := range c.Generation.Budgets {
		if budget < 0 {
			errs = append(errs, fmt.Errorf("generation.budgets.%s must not be negative", kind))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}

	return nil
}

// SlogLevel parses the configured level name.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", l.Level, err)
	}

	return level, nil
}
