// Package anthropic shapes summary requests for the Anthropic Messages API.
package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/fwojciec/pagesum"
	"github.com/tidwall/gjson"
)

const (
	// DefaultBaseURL is the Anthropic API endpoint.
	DefaultBaseURL = "https://api.anthropic.com"

	// Model is the model used for summaries.
	Model = "claude-3-sonnet-20240229"

	// APIVersion is sent in the anthropic-version header.
	APIVersion = "2023-06-01"

	// MaxTokens caps the length of a summary.
	MaxTokens = 2048

	// Temperature favors faithful, deterministic summaries.
	Temperature = 0.2

	// GenericError is reported when a failed response carries no message.
	GenericError = "Claude API request failed"
)

var _ pagesum.Adapter = (*Adapter)(nil)

// Adapter implements pagesum.Adapter for Claude.
// The credential travels in the x-api-key header.
type Adapter struct {
	baseURL string
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithBaseURL overrides the API endpoint.
func WithBaseURL(u string) Option {
	return func(a *Adapter) {
		a.baseURL = strings.TrimRight(u, "/")
	}
}

// NewAdapter creates a new Adapter.
func NewAdapter(opts ...Option) *Adapter {
	a := &Adapter{baseURL: DefaultBaseURL}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Provider returns pagesum.ProviderClaude.
func (a *Adapter) Provider() pagesum.Provider {
	return pagesum.ProviderClaude
}

type requestBody struct {
	Model       string    `json:"model"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
	Messages    []message `json:"messages"`
}

type message struct {
	Role    string         `json:"role"`
	Content []contentBlock `json:"content"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// BuildBody returns the JSON request body for prompt.
func BuildBody(prompt string) ([]byte, error) {
	return json.Marshal(requestBody{
		Model:       Model,
		MaxTokens:   MaxTokens,
		Temperature: Temperature,
		Messages: []message{{
			Role:    "user",
			Content: []contentBlock{{Type: "text", Text: prompt}},
		}},
	})
}

// NewRequest builds the messages request for prompt.
func (a *Adapter) NewRequest(ctx context.Context, prompt, credential string) (*http.Request, error) {
	body, err := BuildBody(prompt)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/v1/messages", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", credential)
	req.Header.Set("anthropic-version", APIVersion)
	return req, nil
}

// ParseSummary returns content[0].text, or pagesum.NoSummary when it is
// missing or empty.
func (a *Adapter) ParseSummary(body []byte) (string, error) {
	if !gjson.ValidBytes(body) {
		return "", pagesum.Errorf(pagesum.EPROVIDER, "%s: invalid JSON response", GenericError)
	}
	if text := gjson.GetBytes(body, "content.0.text").String(); text != "" {
		return text, nil
	}
	return pagesum.NoSummary, nil
}

// ParseError returns error.message from a failed response body.
func (a *Adapter) ParseError(body []byte) string {
	if !gjson.ValidBytes(body) {
		return GenericError
	}
	if msg := gjson.GetBytes(body, "error.message").String(); msg != "" {
		return msg
	}
	return GenericError
}
