package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.5-pro"

// GeminiClient calls the Gemini API through the genai SDK.
type GeminiClient struct {
	settings Settings
	client   *genai.Client
}

// GeminiOption adjusts the SDK client config before it is built.
type GeminiOption func(*genai.ClientConfig)

// WithGeminiBaseURL overrides the API endpoint.
func WithGeminiBaseURL(url string) GeminiOption {
	return func(cfg *genai.ClientConfig) {
		cfg.HTTPOptions.BaseURL = url
	}
}

func NewGeminiClient(ctx context.Context, apiKey string, settings Settings, opts ...GeminiOption) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key required")
	}
	if settings.Model == "" {
		settings.Model = defaultGeminiModel
	}
	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiClient{settings: settings, client: client}, nil
}

func (g *GeminiClient) Model() string { return g.settings.Model }

func (g *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	if g == nil || g.client == nil {
		return "", fmt.Errorf("nil gemini client")
	}
	temperature := g.settings.Temperature
	topP := g.settings.TopP
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		TopP:            &topP,
		MaxOutputTokens: g.settings.MaxOutputTokens,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.settings.Model, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}
	if resp == nil {
		return "", fmt.Errorf("gemini: nil response")
	}
	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("gemini: no text in response")
	}
	return text, nil
}
