package config

// ProviderType identifies a completion provider.
type ProviderType string

const (
	ProviderOpenAI      ProviderType = "openai"
	ProviderOpenRouter  ProviderType = "openrouter"
	ProviderHuggingFace ProviderType = "huggingface"
)

// TelegramConfig holds Telegram Bot API settings.
type TelegramConfig struct {
	Token   string `yaml:"token" koanf:"token"`
	BaseURL string `yaml:"base_url" koanf:"base_url"`
}

// ServerConfig holds webhook server settings.
type ServerConfig struct {
	Port     int  `yaml:"port" koanf:"port"`
	AllowAll bool `yaml:"allow_all" koanf:"allow_all"` // allow all CORS origins (dev mode)
}

// ProviderConfig describes one completion provider. A provider is only
// activated at startup when its credential resolves to a non-empty value.
type ProviderConfig struct {
	Name        ProviderType `yaml:"name" koanf:"name"`
	APIKey      string       `yaml:"api_key" koanf:"api_key"`
	BaseURL     string       `yaml:"base_url" koanf:"base_url"`
	Model       string       `yaml:"model" koanf:"model"`
	Temperature float64      `yaml:"temperature" koanf:"temperature"`
	MaxTokens   int          `yaml:"max_tokens" koanf:"max_tokens"`
}

// Config is the top-level vaani configuration, corresponding to .vaani.yml.
type Config struct {
	Telegram  TelegramConfig   `yaml:"telegram" koanf:"telegram"`
	Server    ServerConfig     `yaml:"server" koanf:"server"`
	Providers []ProviderConfig `yaml:"providers" koanf:"providers"`
	LogLevel  string           `yaml:"log_level" koanf:"log_level"`
}
