// Package gemini shapes summary requests for the Google Gemini API.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/fwojciec/pagesum"
	"github.com/tidwall/gjson"
)

const (
	// DefaultBaseURL is the Gemini API endpoint.
	DefaultBaseURL = "https://generativelanguage.googleapis.com"

	// Model is the model used for summaries.
	Model = "gemini-2.0-flash"

	// Temperature favors faithful, deterministic summaries.
	Temperature = 0.2

	// GenericError is reported when a failed response carries no message.
	GenericError = "Gemini API request failed"
)

// Ensure Adapter implements pagesum.Adapter at compile time.
var _ pagesum.Adapter = (*Adapter)(nil)

// Adapter implements pagesum.Adapter for Gemini.
// The credential travels in the "key" query parameter.
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

// Provider returns pagesum.ProviderGemini.
func (a *Adapter) Provider() pagesum.Provider {
	return pagesum.ProviderGemini
}

type requestBody struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature float64 `json:"temperature"`
}

// BuildBody returns the JSON request body for prompt.
func BuildBody(prompt string) ([]byte, error) {
	return json.Marshal(requestBody{
		Contents:         []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{Temperature: Temperature},
	})
}

// NewRequest builds the generateContent request for prompt.
func (a *Adapter) NewRequest(ctx context.Context, prompt, credential string) (*http.Request, error) {
	body, err := BuildBody(prompt)
	if err != nil {
		return nil, err
	}

	endpoint := a.baseURL + "/v1beta/models/" + Model + ":generateContent?" + url.Values{"key": {credential}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// ParseSummary returns candidates[0].content.parts[0].text.
// Only a missing field yields pagesum.NoSummary; an empty string is
// returned as is.
func (a *Adapter) ParseSummary(body []byte) (string, error) {
	if !gjson.ValidBytes(body) {
		return "", pagesum.Errorf(pagesum.EPROVIDER, "%s: invalid JSON response", GenericError)
	}
	text := gjson.GetBytes(body, "candidates.0.content.parts.0.text")
	if !text.Exists() || text.Type == gjson.Null {
		return pagesum.NoSummary, nil
	}
	return text.String(), nil
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
