package mock

import (
	"context"
	"net/http"

	"github.com/fwojciec/pagesum"
)

var (
	_ pagesum.Summarizer = (*Summarizer)(nil)
	_ pagesum.Adapter    = (*Adapter)(nil)
)

// Summarizer is a mock implementation of pagesum.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, req *pagesum.SummaryRequest) (string, error)
}

func (s *Summarizer) Summarize(ctx context.Context, req *pagesum.SummaryRequest) (string, error) {
	return s.SummarizeFn(ctx, req)
}

// Adapter is a mock implementation of pagesum.Adapter.
type Adapter struct {
	ProviderFn     func() pagesum.Provider
	NewRequestFn   func(ctx context.Context, prompt, credential string) (*http.Request, error)
	ParseSummaryFn func(body []byte) (string, error)
	ParseErrorFn   func(body []byte) string
}

func (a *Adapter) Provider() pagesum.Provider {
	return a.ProviderFn()
}

func (a *Adapter) NewRequest(ctx context.Context, prompt, credential string) (*http.Request, error) {
	return a.NewRequestFn(ctx, prompt, credential)
}

func (a *Adapter) ParseSummary(body []byte) (string, error) {
	return a.ParseSummaryFn(body)
}

func (a *Adapter) ParseError(body []byte) string {
	return a.ParseErrorFn(body)
}
