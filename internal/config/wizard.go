package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to the given path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to vaani! Let's configure your bot.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Primary provider selection.
	providerPrompt := promptui.Select{
		Label: "Select primary completion provider",
		Items: []string{"openai", "openrouter", "huggingface"},
	}
	_, primaryStr, err := providerPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("provider selection: %w", err)
	}
	primary := ProviderType(primaryStr)

	// 2. Optional fallback provider.
	fallbackPrompt := promptui.Select{
		Label: "Select fallback provider (tried once when the primary fails)",
		Items: []string{"none", "openai", "openrouter", "huggingface"},
	}
	_, fallbackStr, err := fallbackPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("fallback selection: %w", err)
	}

	// 3. Model override for the primary.
	modelPrompt := promptui.Prompt{
		Label:   "Model for the primary provider",
		Default: DefaultModel(primary),
	}
	model, err := modelPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("model: %w", err)
	}

	// 4. Listen port.
	portPrompt := promptui.Prompt{
		Label:   "Listen port",
		Default: strconv.Itoa(DefaultPort),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 {
				return fmt.Errorf("port must be a positive number")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	port, _ := strconv.Atoi(portStr)

	providers := []ProviderConfig{newProviderConfig(primary, model)}
	if fallbackStr != "none" && fallbackStr != primaryStr {
		fb := ProviderType(fallbackStr)
		providers = append(providers, newProviderConfig(fb, DefaultModel(fb)))
	}

	cfg.Providers = providers
	cfg.Server.Port = port

	// Point out the credentials the relay will look for at startup.
	if os.Getenv("TELEGRAM_BOT_TOKEN") == "" {
		fmt.Println("\nNote: Set TELEGRAM_BOT_TOKEN in your environment before running vaani serve.")
	}
	for _, p := range providers {
		if envVar := APIKeyEnvVar(p.Name); envVar != "" && p.ResolveAPIKey() == "" {
			fmt.Printf("Note: Set %s to activate the %s provider.\n", envVar, p.Name)
		}
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func newProviderConfig(name ProviderType, model string) ProviderConfig {
	pc := ProviderConfig{
		Name:        name,
		Model:       model,
		Temperature: 0.7,
		MaxTokens:   512,
	}
	if name == ProviderHuggingFace {
		pc.BaseURL = DefaultHuggingFaceBaseURL
	}
	return pc
}
