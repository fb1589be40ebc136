package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

const (
	grokDefaultBaseURL = "https://api.x.ai/v1"
	grokDefaultModel   = "grok-beta"
	grokProviderName   = "xAI Grok"
)

// GrokClient talks to the xAI chat-completions REST API. There is no Go
// SDK worth pulling in for a single JSON POST.
type GrokClient struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
	logger  *log.Logger
}

func NewGrokClient(apiKey, model string, logger *log.Logger) *GrokClient {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil
	}
	if model = strings.TrimSpace(model); model == "" {
		model = grokDefaultModel
	}
	return &GrokClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: grokDefaultBaseURL,
		client:  &http.Client{Timeout: 60 * time.Second},
		logger:  logger,
	}
}

func (c *GrokClient) Provider() string { return grokProviderName }

type grokMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type grokChatRequest struct {
	Model     string        `json:"model"`
	Messages  []grokMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
}

type grokChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage struct {
		TotalTokens int `json:"total_tokens"`
	} `json:"usage"`
}

func (c *GrokClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (Completion, error) {
	if c == nil || c.client == nil {
		return Completion{}, ErrUnavailable
	}
	userPrompt = strings.TrimSpace(userPrompt)
	if userPrompt == "" {
		return Completion{}, errors.New("empty prompt")
	}

	msgs := make([]grokMessage, 0, 2)
	if systemPrompt = strings.TrimSpace(systemPrompt); systemPrompt != "" {
		msgs = append(msgs, grokMessage{Role: "system", Content: systemPrompt})
	}
	msgs = append(msgs, grokMessage{Role: "user", Content: userPrompt})

	body, err := json.Marshal(grokChatRequest{Model: c.model, Messages: msgs, MaxTokens: 800})
	if err != nil {
		return Completion{}, err
	}

	endpoint := c.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return Completion{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return Completion{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		bodyStr := strings.TrimSpace(string(rb))
		if c.logger != nil {
			c.logger.Printf("[AI] grok completion failed status=%d body=%q", resp.StatusCode, bodyStr)
		}
		return Completion{}, fmt.Errorf("grok completion failed: status=%d", resp.StatusCode)
	}

	var out grokChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Completion{}, err
	}
	if len(out.Choices) == 0 {
		return Completion{}, errors.New("grok returned no choices")
	}

	text := strings.TrimSpace(out.Choices[0].Message.Content)
	if text == "" {
		return Completion{}, errors.New("grok returned empty content")
	}

	return Completion{Text: text, Provider: grokProviderName, TokensUsed: out.Usage.TotalTokens}, nil
}
