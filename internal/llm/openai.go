package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// OpenAIClient calls the OpenAI Chat Completions API.
type OpenAIClient struct {
	settings Settings
	client   *openai.Client
}

// NewOpenAIClient builds a client against api.openai.com. Extra options
// are appended after the key, which lets tests point it at a local server.
// Retries are disabled: a failed generation is reported, not repeated.
func NewOpenAIClient(apiKey string, settings Settings, opts ...option.RequestOption) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key required")
	}
	if settings.Model == "" {
		settings.Model = string(openai.ChatModelGPT4oMini)
	}
	reqOpts := append([]option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}, opts...)
	cli := openai.NewClient(reqOpts...)
	return &OpenAIClient{
		settings: settings,
		client:   &cli,
	}, nil
}

func (c *OpenAIClient) Model() string { return c.settings.Model }

func (c *OpenAIClient) Generate(ctx context.Context, prompt string) (string, error) {
	if c == nil || c.client == nil {
		return "", fmt.Errorf("nil openai client")
	}
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.settings.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			{
				OfUser: &openai.ChatCompletionUserMessageParam{
					Content: openai.ChatCompletionUserMessageParamContentUnion{
						OfString: openai.String(prompt),
					},
				},
			},
		},
		Temperature: openai.Float(float64(c.settings.Temperature)),
		TopP:        openai.Float(float64(c.settings.TopP)),
	}
	if c.settings.MaxOutputTokens > 0 {
		params.MaxCompletionTokens = openai.Int(int64(c.settings.MaxOutputTokens))
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai: no choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}
