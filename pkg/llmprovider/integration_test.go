package llmprovider_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ai-notes/config"
	"ai-notes/pkg/llmprovider"
	"ai-notes/pkg/log"
)

func TestInitializeProviders(t *testing.T) {
	ctx := context.Background()

	t.Run("sorted by priority, disabled skipped", func(t *testing.T) {
		cfg := &config.LLMConfig{
			Providers: []config.ProviderConfig{
				{Name: "gemini", Enabled: true, Priority: 2, APIKey: "g", Model: "gemini-2.5-flash"},
				{Name: "github", Enabled: true, Priority: 1, APIKey: "t", Model: "openai/gpt-4.1-mini"},
				{Name: "deepseek", Enabled: false, Priority: 0, APIKey: "d", Model: "deepseek-chat"},
			},
		}

		providers, err := llmprovider.InitializeProviders(ctx, cfg, log.NewNop())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(providers) != 2 {
			t.Fatalf("got %d providers, want 2", len(providers))
		}
		if providers[0].Name() != "github" || providers[1].Name() != "gemini" {
			t.Errorf("order = %s, %s", providers[0].Name(), providers[1].Name())
		}
		if providers[0].Model() != "openai/gpt-4.1-mini" {
			t.Errorf("model = %s", providers[0].Model())
		}
	})

	t.Run("bad providers are skipped", func(t *testing.T) {
		cfg := &config.LLMConfig{
			Providers: []config.ProviderConfig{
				{Name: "mystery", Enabled: true, Priority: 1, APIKey: "x", Model: "m"},
				{Name: "openai", Enabled: true, Priority: 2, APIKey: "", Model: "gpt-4o-mini"},
				{Name: "qwen", Enabled: true, Priority: 3, APIKey: "q", Model: "qwen-plus"},
			},
		}

		providers, err := llmprovider.InitializeProviders(ctx, cfg, log.NewNop())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(providers) != 1 || providers[0].Name() != "qwen" {
			t.Fatalf("providers = %v", providers)
		}
	})

	t.Run("none enabled", func(t *testing.T) {
		_, err := llmprovider.InitializeProviders(ctx, &config.LLMConfig{}, log.NewNop())
		if !errors.Is(err, llmprovider.ErrNoProvidersConfigured) {
			t.Fatalf("err = %v, want ErrNoProvidersConfigured", err)
		}
	})

	t.Run("nil config", func(t *testing.T) {
		if _, err := llmprovider.InitializeProviders(ctx, nil, log.NewNop()); err == nil {
			t.Fatalf("expected error for nil config")
		}
	})
}

func TestOpenAIAdapter_GenerateContent(t *testing.T) {
	var gotMessages []map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var body struct {
			Model    string           `json:"model"`
			Messages []map[string]any `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		gotMessages = body.Messages

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"model": "` + body.Model + `",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "{\"Title\":\"Standup\"}"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 12, "completion_tokens": 4, "total_tokens": 16}
		}`))
	}))
	defer ts.Close()

	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "github", Enabled: true, Priority: 1, APIKey: "test-token", BaseURL: ts.URL + "/", Model: "openai/gpt-4.1-mini"},
		},
		RetryAttempts: 1,
		RetryDelay:    "10ms",
	}

	manager, err := llmprovider.NewManagerFromConfig(context.Background(), cfg, log.NewNop())
	if err != nil {
		t.Fatalf("NewManagerFromConfig: %v", err)
	}

	resp, err := manager.GenerateContent(context.Background(), llmprovider.NewTextRequest("extract a note", "standup at 9"))
	if err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}

	if resp.Text() != `{"Title":"Standup"}` {
		t.Errorf("Text() = %q", resp.Text())
	}
	if resp.ProviderName != "github" || resp.ModelName != "openai/gpt-4.1-mini" {
		t.Errorf("provider/model = %s/%s", resp.ProviderName, resp.ModelName)
	}
	if resp.Usage == nil || resp.Usage.TotalTokens != 16 {
		t.Errorf("usage = %+v", resp.Usage)
	}

	if len(gotMessages) != 2 {
		t.Fatalf("sent %d messages, want 2", len(gotMessages))
	}
	if gotMessages[0]["role"] != "system" || gotMessages[0]["content"] != "extract a note" {
		t.Errorf("system message = %v", gotMessages[0])
	}
	if gotMessages[1]["role"] != "user" || gotMessages[1]["content"] != "standup at 9" {
		t.Errorf("user message = %v", gotMessages[1])
	}
}

func TestGeminiAdapter_GenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"Bonjour"}]}}],"usageMetadata":{"promptTokenCount":3,"candidatesTokenCount":1,"totalTokenCount":4}}`))
	}))
	defer ts.Close()

	providers, err := llmprovider.InitializeProviders(context.Background(), &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "gemini", Enabled: true, Priority: 1, APIKey: "k", BaseURL: ts.URL, Model: "gemini-2.5-flash"},
		},
	}, log.NewNop())
	if err != nil {
		t.Fatalf("InitializeProviders: %v", err)
	}

	resp, err := providers[0].GenerateContent(context.Background(), llmprovider.NewTextRequest("translate", "Hello"))
	if err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}
	if resp.Text() != "Bonjour" || resp.ProviderName != "gemini" {
		t.Errorf("resp = %+v", resp)
	}
	if resp.Usage.InputTokens != 3 {
		t.Errorf("InputTokens = %d, want 3", resp.Usage.InputTokens)
	}
}
