package speech

import (
	"context"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// OpenAITTS calls an OpenAI-compatible audio-speech endpoint and returns the
// raw audio bytes.
type OpenAITTS struct {
	client *resty.Client
	model  string
}

func NewOpenAITTS(baseURL, apiKey, model string) *OpenAITTS {
	c := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(2 * time.Minute)
	return &OpenAITTS{client: c, model: model}
}

type speechRequest struct {
	Model string `json:"model"`
	Voice string `json:"voice"`
	Input string `json:"input"`
}

func (s *OpenAITTS) Synthesize(ctx context.Context, text, voice string) ([]byte, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(&speechRequest{Model: s.model, Voice: voice, Input: text}).
		Post("/v1/audio/speech")
	if err != nil {
		return nil, errors.Wrap(err, "speech request")
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, errors.Errorf("speech api: status %d: %s", resp.StatusCode(), resp.String())
	}
	return resp.Body(), nil
}
