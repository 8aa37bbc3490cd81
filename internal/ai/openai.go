package ai

import (
	"context"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

const maxCompletionTokens = 2000

// OpenAIChat calls an OpenAI-compatible chat-completions endpoint.
type OpenAIChat struct {
	client *resty.Client
	model  string
}

func NewOpenAIChat(baseURL, apiKey, model string) *OpenAIChat {
	c := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(2 * time.Minute)
	return &OpenAIChat{client: c, model: model}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model               string        `json:"model"`
	Messages            []chatMessage `json:"messages"`
	MaxCompletionTokens int           `json:"max_completion_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *OpenAIChat) Complete(ctx context.Context, system, user string) (string, error) {
	req := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		MaxCompletionTokens: maxCompletionTokens,
	}

	var out chatResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(&req).
		SetResult(&out).
		Post("/v1/chat/completions")
	if err != nil {
		return "", errors.Wrap(err, "completion request")
	}
	if resp.StatusCode() != http.StatusOK {
		return "", errors.Errorf("completion api: status %d: %s", resp.StatusCode(), resp.String())
	}
	if len(out.Choices) == 0 {
		return "", errors.New("completion api: empty choices")
	}
	return out.Choices[0].Message.Content, nil
}
