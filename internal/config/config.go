package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (VAANI_*). Credentials and the listen
// port may additionally come from their conventional environment
// variables (TELEGRAM_BOT_TOKEN, OPENAI_API_KEY, ..., PORT).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables. A double underscore descends into a
	// nested section so single underscores survive as part of the key:
	// VAANI_LOG_LEVEL -> log_level, VAANI_SERVER__PORT -> server.port,
	// VAANI_TELEGRAM__BASE_URL -> telegram.base_url.
	if err := k.Load(env.Provider("VAANI_", ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, "VAANI_"))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	// Conventional env vars take precedence over file values so that
	// secrets never have to live in the YAML.
	if tok := os.Getenv("TELEGRAM_BOT_TOKEN"); tok != "" {
		cfg.Telegram.Token = tok
	}
	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", port, err)
		}
		cfg.Server.Port = p
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validProviders is the set of recognized provider values.
var validProviders = map[ProviderType]bool{
	ProviderOpenAI:      true,
	ProviderOpenRouter:  true,
	ProviderHuggingFace: true,
}

// Validate checks that the configuration contains valid values. The bot
// token is required: without it the relay cannot acknowledge or answer
// anything, so startup must fail.
func (c *Config) Validate() error {
	if c.Telegram.Token == "" {
		return fmt.Errorf("telegram bot token is required (set TELEGRAM_BOT_TOKEN or telegram.token)")
	}
	if c.Telegram.BaseURL == "" {
		return fmt.Errorf("telegram base_url is required")
	}
	if c.Server.Port <= 0 {
		return fmt.Errorf("server port must be positive, got %d", c.Server.Port)
	}
	for i, p := range c.Providers {
		if !validProviders[p.Name] {
			return fmt.Errorf("invalid provider %q at providers[%d]: must be one of openai, openrouter, huggingface", p.Name, i)
		}
		if p.Model == "" {
			return fmt.Errorf("provider %q at providers[%d] has no model", p.Name, i)
		}
	}
	return nil
}

// APIKeyEnvVar returns the conventional environment variable name for
// the API key of the given provider.
func APIKeyEnvVar(provider ProviderType) string {
	switch provider {
	case ProviderOpenAI:
		return "OPENAI_API_KEY"
	case ProviderOpenRouter:
		return "OPENROUTER_API_KEY"
	case ProviderHuggingFace:
		return "HF_API_KEY"
	default:
		return ""
	}
}

// ResolveAPIKey returns the provider's credential: the explicit config
// value if set, otherwise the conventional environment variable.
func (p ProviderConfig) ResolveAPIKey() string {
	if p.APIKey != "" {
		return p.APIKey
	}
	if v := APIKeyEnvVar(p.Name); v != "" {
		return os.Getenv(v)
	}
	return ""
}
