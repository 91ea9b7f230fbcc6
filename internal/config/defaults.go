package config

const (
	// DefaultPort is used when neither the config file nor PORT set one.
	DefaultPort = 3000

	// DefaultTelegramBaseURL is the public Bot API endpoint.
	DefaultTelegramBaseURL = "https://api.telegram.org"

	// DefaultHuggingFaceBaseURL is the hosted Inference API endpoint.
	DefaultHuggingFaceBaseURL = "https://api-inference.huggingface.co"
)

// defaultModels maps each provider to the model used when the config
// does not name one explicitly.
var defaultModels = map[ProviderType]string{
	ProviderOpenAI:      "gpt-4o-mini",
	ProviderOpenRouter:  "minimax/minimax-m2.5",
	ProviderHuggingFace: "HuggingFaceH4/zephyr-7b-beta",
}

// DefaultModel returns the default model for the given provider.
func DefaultModel(provider ProviderType) string {
	return defaultModels[provider]
}

// DefaultConfig returns a Config with sensible defaults. The provider
// list names the supported providers in preference order; only those
// whose credential is present at startup are activated.
func DefaultConfig() *Config {
	return &Config{
		Telegram: TelegramConfig{
			BaseURL: DefaultTelegramBaseURL,
		},
		Server: ServerConfig{
			Port: DefaultPort,
		},
		Providers: []ProviderConfig{
			{
				Name:        ProviderOpenAI,
				Model:       defaultModels[ProviderOpenAI],
				Temperature: 0.7,
				MaxTokens:   512,
			},
			{
				Name:        ProviderHuggingFace,
				BaseURL:     DefaultHuggingFaceBaseURL,
				Model:       defaultModels[ProviderHuggingFace],
				Temperature: 0.7,
				MaxTokens:   512,
			},
		},
		LogLevel: "info",
	}
}
