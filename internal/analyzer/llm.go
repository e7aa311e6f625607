package analyzer

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/deepseek"
	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/alakhsharma22/Financial-Sentiment-Analyst-Agent/config"
)

// NewChatModel builds the chat model for the configured provider.
func NewChatModel(ctx context.Context, cfg *config.Config) (model.BaseChatModel, error) {
	switch cfg.LLMProvider {
	case "openai":
		maxTokens := 2000
		chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
			BaseURL:   cfg.BackendURL,
			APIKey:    cfg.OpenAIAPIKey,
			Model:     cfg.LLMModel,
			MaxTokens: &maxTokens,
		})
		if err != nil {
			return nil, fmt.Errorf("create openai chat model: %w", err)
		}
		return chatModel, nil
	case "deepseek", "":
		chatModel, err := deepseek.NewChatModel(ctx, &deepseek.ChatModelConfig{
			APIKey:    cfg.DeepSeekAPIKey,
			Model:     cfg.LLMModel,
			MaxTokens: 2000,
		})
		if err != nil {
			return nil, fmt.Errorf("create deepseek chat model: %w", err)
		}
		return chatModel, nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.LLMProvider)
	}
}

// ChatGenerator adapts an eino chat model to the Generator interface used by
// the classifier and synthesizer.
type ChatGenerator struct {
	chatModel model.BaseChatModel
}

func NewChatGenerator(chatModel model.BaseChatModel) *ChatGenerator {
	return &ChatGenerator{chatModel: chatModel}
}

// Generate sends the prompt as a single user message and returns the model's
// text content. An empty reply is reported as an error so callers treat it
// like any other call failure.
func (g *ChatGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	msg, err := g.chatModel.Generate(ctx, []*schema.Message{schema.UserMessage(prompt)})
	if err != nil {
		return "", fmt.Errorf("chat model generate: %w", err)
	}
	if msg == nil || msg.Content == "" {
		return "", fmt.Errorf("empty response from chat model")
	}
	return msg.Content, nil
}
