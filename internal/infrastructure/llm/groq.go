package llm

import (
	"context"
	"errors"
	"log/slog"

	"github.com/sashabaranov/go-openai"

	"github.com/priyansh/carmitra/internal/model"
)

// GroqClient talks to Groq's OpenAI-compatible chat completion API.
// One synchronous request per call: no retries, no streaming.
type GroqClient struct {
	client      *openai.Client
	modelName   string
	temperature float32
	maxTokens   int
	topP        float32
}

// NewGroqClient builds a client against an OpenAI-compatible base URL.
func NewGroqClient(apiKey, baseURL, modelName string, temperature float32, maxTokens int, topP float32) *GroqClient {
	config := openai.DefaultConfig(apiKey)
	config.BaseURL = baseURL

	return &GroqClient{
		client:      openai.NewClientWithConfig(config),
		modelName:   modelName,
		temperature: temperature,
		maxTokens:   maxTokens,
		topP:        topP,
	}
}

// Complete sends the conversation and returns the first choice's content.
func (g *GroqClient) Complete(ctx context.Context, messages []model.ChatMessage) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       g.modelName,
		Messages:    toOpenAI(messages),
		Temperature: g.temperature,
		MaxTokens:   g.maxTokens,
		TopP:        g.topP,
		Stream:      false,
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		slog.Error("completion request failed", "model", g.modelName, "error", err)
		return "", &CompletionError{Cause: err}
	}
	if len(resp.Choices) == 0 {
		return "", &CompletionError{Cause: errors.New("empty choices in response")}
	}
	return resp.Choices[0].Message.Content, nil
}

func toOpenAI(messages []model.ChatMessage) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, len(messages))
	for i, m := range messages {
		out[i] = openai.ChatCompletionMessage{Role: m.Role, Content: m.Content}
	}
	return out
}
