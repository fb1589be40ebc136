package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const (
	geminiDefaultModel = "gemini-2.5-flash"
	geminiProviderName = "Gemini"
)

// GeminiClient is the fallback provider, used when no xAI key is
// configured.
type GeminiClient struct {
	client    *genai.Client
	modelName string
}

func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = geminiDefaultModel
	}
	return &GeminiClient{client: client, modelName: model}, nil
}

func (c *GeminiClient) Provider() string { return geminiProviderName }

func (c *GeminiClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (Completion, error) {
	if c == nil || c.client == nil {
		return Completion{}, ErrUnavailable
	}
	userPrompt = strings.TrimSpace(userPrompt)
	if userPrompt == "" {
		return Completion{}, errors.New("empty prompt")
	}

	var cfg *genai.GenerateContentConfig
	if systemPrompt = strings.TrimSpace(systemPrompt); systemPrompt != "" {
		cfg = &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemPrompt}}},
		}
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.modelName, genai.Text(userPrompt), cfg)
	if err != nil {
		return Completion{}, fmt.Errorf("generate content: %w", err)
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}

	text := strings.TrimSpace(builder.String())
	if text == "" {
		return Completion{}, errors.New("gemini returned empty response")
	}

	tokens := 0
	if resp.UsageMetadata != nil {
		tokens = int(resp.UsageMetadata.TotalTokenCount)
	}

	return Completion{Text: text, Provider: geminiProviderName, TokensUsed: tokens}, nil
}
