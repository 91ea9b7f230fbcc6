package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// HuggingFaceProvider implements Provider using direct HTTP calls to the
// hosted Inference API. Unlike the chat-completion providers, the API is
// text-generation style: a raw input string in, a loosely shaped JSON
// document out, normalized by ExtractText.
type HuggingFaceProvider struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
}

// NewHuggingFaceProvider creates a new Hugging Face provider.
func NewHuggingFaceProvider(baseURL string, apiKey string, model string) *HuggingFaceProvider {
	return &HuggingFaceProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		client:  &http.Client{},
	}
}

func (p *HuggingFaceProvider) Name() string {
	return "huggingface"
}

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
}

type hfParameters struct {
	Temperature    float64 `json:"temperature,omitempty"`
	MaxNewTokens   int     `json:"max_new_tokens,omitempty"`
	ReturnFullText bool    `json:"return_full_text"`
}

func (p *HuggingFaceProvider) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	model := req.Model
	if model == "" {
		model = p.model
	}

	hfReq := hfRequest{
		Inputs: joinUserContent(req.Messages),
		Parameters: hfParameters{
			Temperature:    req.Temperature,
			MaxNewTokens:   req.MaxTokens,
			ReturnFullText: false,
		},
	}

	body, err := json.Marshal(hfReq)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal huggingface request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s", p.baseURL, model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if p.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	httpResp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("huggingface request failed: %w", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read huggingface response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("huggingface returned status %d: %s", httpResp.StatusCode, string(respBody))
	}

	return &CompletionResponse{
		Content: ExtractText(respBody),
		Model:   model,
	}, nil
}

// joinUserContent flattens conversation messages into the single input
// string the text-generation API expects.
func joinUserContent(messages []Message) string {
	var parts []string
	for _, msg := range messages {
		if msg.Content != "" {
			parts = append(parts, msg.Content)
		}
	}
	return strings.Join(parts, "\n")
}
