// Package openai shapes summary requests for the OpenAI chat completions API.
package openai

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
	// DefaultBaseURL is the OpenAI API endpoint.
	DefaultBaseURL = "https://api.openai.com"

	// Model is the model used for summaries.
	Model = "gpt-4o"

	// Temperature favors faithful, deterministic summaries.
	Temperature = 0.2

	// SystemPrompt sets the assistant role for every request.
	SystemPrompt = "You are a helpful assistant that summarizes text."

	// GenericError is reported when a failed response carries no message.
	GenericError = "ChatGPT API request failed"
)

var _ pagesum.Adapter = (*Adapter)(nil)

// Adapter implements pagesum.Adapter for ChatGPT.
// The credential travels as a bearer token.
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

// Provider returns pagesum.ProviderChatGPT.
func (a *Adapter) Provider() pagesum.Provider {
	return pagesum.ProviderChatGPT
}

type requestBody struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature float64   `json:"temperature"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// BuildBody returns the JSON request body for prompt.
func BuildBody(prompt string) ([]byte, error) {
	return json.Marshal(requestBody{
		Model: Model,
		Messages: []message{
			{Role: "system", Content: SystemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: Temperature,
	})
}

// NewRequest builds the chat completions request for prompt.
func (a *Adapter) NewRequest(ctx context.Context, prompt, credential string) (*http.Request, error) {
	body, err := BuildBody(prompt)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+credential)
	return req, nil
}

// ParseSummary returns choices[0].message.content, or pagesum.NoSummary
// when it is missing or empty.
func (a *Adapter) ParseSummary(body []byte) (string, error) {
	if !gjson.ValidBytes(body) {
		return "", pagesum.Errorf(pagesum.EPROVIDER, "%s: invalid JSON response", GenericError)
	}
	if text := gjson.GetBytes(body, "choices.0.message.content").String(); text != "" {
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
