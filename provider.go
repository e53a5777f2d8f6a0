package pagesum

import (
	"context"
	"net/http"
	"strings"
)

// Provider identifies a remote text-generation service.
type Provider string

// Supported providers.
const (
	ProviderUnknown Provider = ""
	ProviderGemini  Provider = "gemini"
	ProviderChatGPT Provider = "chatgpt"
	ProviderClaude  Provider = "claude"
)

// DefaultProvider is used when no provider has been selected.
const DefaultProvider = ProviderGemini

// Providers returns all supported providers in display order.
func Providers() []Provider {
	return []Provider{ProviderGemini, ProviderChatGPT, ProviderClaude}
}

// ParseProvider returns the provider named by s.
// Returns EINVALID if s does not name a supported provider.
func ParseProvider(s string) (Provider, error) {
	p := Provider(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return ProviderUnknown, Errorf(EINVALID, "unknown provider %q (supported: gemini, chatgpt, claude)", s)
	}
	return p, nil
}

// Valid reports whether p is a supported provider.
func (p Provider) Valid() bool {
	switch p {
	case ProviderGemini, ProviderChatGPT, ProviderClaude:
		return true
	}
	return false
}

// String returns the provider name.
func (p Provider) String() string {
	return string(p)
}

// NoSummary is returned in place of a summary when a successful provider
// response does not carry the expected text field.
const NoSummary = "No summary available."

// Adapter shapes requests for one provider and reads its responses.
// Implementations are pure: they perform no I/O and never panic on
// malformed input.
type Adapter interface {
	// Provider returns the provider this adapter serves.
	Provider() Provider

	// NewRequest builds the HTTP request sending prompt to the provider,
	// authenticated with credential.
	NewRequest(ctx context.Context, prompt, credential string) (*http.Request, error)

	// ParseSummary extracts the summary text from a successful response
	// body. It returns NoSummary if the expected field is absent and an
	// EPROVIDER error if the body is not valid JSON.
	ParseSummary(body []byte) (string, error)

	// ParseError extracts a human-readable message from a failed response
	// body, falling back to the provider's generic failure message.
	// ParseError(nil) returns the generic failure message.
	ParseError(body []byte) string
}

// AdapterRegistry selects adapters by provider.
type AdapterRegistry interface {
	// Get returns the adapter registered for provider.
	// Returns nil if no adapter is registered for the provider.
	Get(provider Provider) Adapter

	// Register adds an adapter, replacing any adapter for the same provider.
	Register(adapter Adapter)

	// List returns all registered providers.
	List() []Provider
}
