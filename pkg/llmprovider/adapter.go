package llmprovider

import (
	"context"
	"fmt"
	"strings"

	"ai-notes/pkg/gemini"

	openai "github.com/sashabaranov/go-openai"
)

// Default endpoints for OpenAI-compatible providers.
var defaultBaseURLs = map[string]string{
	"github":   "https://models.github.ai/inference",
	"openai":   "https://api.openai.com/v1",
	"deepseek": "https://api.deepseek.com/v1",
	"qwen":     "https://dashscope-intl.aliyuncs.com/compatible-mode/v1",
}

// OpenAIAdapter adapts any OpenAI-compatible chat completion endpoint to the
// Provider interface.
type OpenAIAdapter struct {
	name   string
	model  string
	client *openai.Client
}

// NewOpenAIAdapter creates an adapter for the named provider. An empty baseURL
// falls back to the provider's public endpoint.
func NewOpenAIAdapter(name, apiKey, baseURL, model string) *OpenAIAdapter {
	if baseURL == "" {
		baseURL = defaultBaseURLs[name]
	}

	clientConfig := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		clientConfig.BaseURL = strings.TrimRight(baseURL, "/")
	}

	return &OpenAIAdapter{
		name:   name,
		model:  model,
		client: openai.NewClientWithConfig(clientConfig),
	}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	chatReq := openai.ChatCompletionRequest{
		Model:       a.model,
		Messages:    convertToOpenAIMessages(req),
		Temperature: float32(req.Temperature),
		MaxTokens:   req.MaxTokens,
	}

	resp, err := a.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, &ProviderError{Provider: a.name, Err: err}
	}
	if len(resp.Choices) == 0 {
		return nil, &ProviderError{Provider: a.name, Err: ErrEmptyResponse}
	}

	return &Response{
		Content: Message{
			Role:  RoleAssistant,
			Parts: []Part{{Text: resp.Choices[0].Message.Content}},
		},
		ProviderName: a.name,
		ModelName:    a.model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *OpenAIAdapter) Name() string {
	return a.name
}

// Model returns model name
func (a *OpenAIAdapter) Model() string {
	return a.model
}

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.Client
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.Client) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		Messages:    convertToGeminiMessages(req.Messages),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.SystemInstruction != nil {
		geminiReq.SystemInstruction = req.SystemInstruction.Text()
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}

	return &Response{
		Content: Message{
			Role:  RoleAssistant,
			Parts: []Part{{Text: resp.Text}},
		},
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

func convertToOpenAIMessages(req *Request) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(req.Messages)+1)
	if req.SystemInstruction != nil {
		out = append(out, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.SystemInstruction.Text(),
		})
	}
	for _, msg := range req.Messages {
		out = append(out, openai.ChatCompletionMessage{
			Role:    openAIRole(msg.Role),
			Content: msg.Text(),
		})
	}
	return out
}

func openAIRole(role string) string {
	switch role {
	case RoleAssistant:
		return openai.ChatMessageRoleAssistant
	case RoleSystem:
		return openai.ChatMessageRoleSystem
	default:
		return openai.ChatMessageRoleUser
	}
}

// Gemini calls the assistant role "model".
func convertToGeminiMessages(msgs []Message) []gemini.Message {
	out := make([]gemini.Message, len(msgs))
	for i, msg := range msgs {
		role := "user"
		if msg.Role == RoleAssistant {
			role = "model"
		}
		out[i] = gemini.Message{Role: role, Text: msg.Text()}
	}
	return out
}

func describeProvider(p Provider) string {
	return fmt.Sprintf("%s/%s", p.Name(), p.Model())
}
