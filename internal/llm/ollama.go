package llm

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ollama/ollama/api"
	"github.com/ollama/ollama/envconfig"
)

const (
	// DefaultTimeout bounds a single completion call. The reference
	// behavior had no deadline; expiry here is treated like any other
	// fallback failure.
	DefaultTimeout = 30 * time.Second

	DefaultMaxTokens   = 800
	DefaultTemperature = 0.3
)

// OllamaLLM handles interactions with the Ollama LLM API.
type OllamaLLM struct {
	Client      *api.Client
	Model       string
	Timeout     time.Duration
	MaxTokens   int
	Temperature float64
}

// NewOllamaLLM creates a new Ollama LLM client. An empty host falls back to
// the OLLAMA_HOST environment variable.
func NewOllamaLLM(host string, model string) (*OllamaLLM, error) {
	hostURL := envconfig.Host()
	if host != "" {
		parsed, err := url.Parse(host)
		if err != nil {
			return nil, fmt.Errorf("invalid ollama host %q: %w", host, err)
		}
		hostURL = parsed
	}
	client := api.NewClient(hostURL, http.DefaultClient)

	return &OllamaLLM{
		Client:      client,
		Model:       model,
		Timeout:     DefaultTimeout,
		MaxTokens:   DefaultMaxTokens,
		Temperature: DefaultTemperature,
	}, nil
}

// Complete sends the system instructions and user prompt to the model and
// returns the completion text.
func (o *OllamaLLM) Complete(ctx context.Context, system, prompt string) (string, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.Timeout)
	defer cancel()

	stream := false
	req := api.ChatRequest{
		Model: o.Model,
		Messages: []api.Message{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
		Stream: &stream,
		Options: map[string]interface{}{
			"temperature": o.Temperature,
			"num_predict": o.MaxTokens,
		},
	}

	var responseBuilder strings.Builder

	err := o.Client.Chat(ctxWithTimeout, &req, func(resp api.ChatResponse) error {
		_, err := responseBuilder.WriteString(resp.Message.Content)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate response: %w", err)
	}

	return responseBuilder.String(), nil
}
