package pagesum

import "context"

// SummaryRequest is everything a provider needs to produce one summary.
type SummaryRequest struct {
	Text       string
	Style      Style
	Provider   Provider
	Credential string
}

// Validate returns an error if the request must not be dispatched.
func (r *SummaryRequest) Validate() error {
	if !r.Provider.Valid() {
		return Errorf(EINVALID, "unknown provider %q", r.Provider)
	}
	if r.Credential == "" {
		return MissingCredentialError(r.Provider)
	}
	if r.Text == "" {
		return Errorf(EINVALID, "article text required")
	}
	return nil
}

// MissingCredentialError returns the configuration error reported when no
// API key is stored for provider.
func MissingCredentialError(provider Provider) *Error {
	return Errorf(ECONFIG, "API key for %s not found. Run 'pagesum key set %s <key>' to set it.", provider, provider)
}

// Summarizer produces a summary from a validated request.
type Summarizer interface {
	// Summarize sends exactly one request to the selected provider.
	// Returns EPROVIDER for transport, HTTP status, and response decoding
	// failures.
	Summarize(ctx context.Context, req *SummaryRequest) (string, error)
}
