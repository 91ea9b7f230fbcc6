package llm

import (
	"context"
	"fmt"

	"github.com/souravmalhi93-eng/Vaani-backend/internal/config"
)

// FromConfig builds the active provider list from configuration. A
// provider is activated only when its credential resolves to a non-empty
// value at startup; config order decides primary vs fallback. The
// selection is static for the life of the process.
func FromConfig(cfgs []config.ProviderConfig) ([]Provider, error) {
	var providers []Provider
	for _, pc := range cfgs {
		apiKey := pc.ResolveAPIKey()
		if apiKey == "" {
			continue
		}

		var p Provider
		switch pc.Name {
		case config.ProviderOpenAI:
			p = NewOpenAIProvider(apiKey, pc.Model)

		case config.ProviderOpenRouter:
			p = NewOpenRouterProvider(apiKey, pc.Model, pc.BaseURL)

		case config.ProviderHuggingFace:
			baseURL := pc.BaseURL
			if baseURL == "" {
				baseURL = config.DefaultHuggingFaceBaseURL
			}
			p = NewHuggingFaceProvider(baseURL, apiKey, pc.Model)

		default:
			return nil, fmt.Errorf("unsupported provider type: %s", pc.Name)
		}

		providers = append(providers, &configuredProvider{
			Provider:    p,
			temperature: pc.Temperature,
			maxTokens:   pc.MaxTokens,
		})
	}
	return providers, nil
}

// configuredProvider applies the generation parameters from the provider's
// config entry to requests that leave them unset.
type configuredProvider struct {
	Provider
	temperature float64
	maxTokens   int
}

func (c *configuredProvider) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	if req.Temperature == 0 {
		req.Temperature = c.temperature
	}
	if req.MaxTokens == 0 {
		req.MaxTokens = c.maxTokens
	}
	return c.Provider.Complete(ctx, req)
}
