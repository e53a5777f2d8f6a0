// Package summarize sends article text to text-generation providers and
// orchestrates one summarization end to end.
package summarize

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/fwojciec/pagesum"
)

// maxResponseBytes bounds how much of a provider response is read.
const maxResponseBytes = 8 << 20

// Ensure Client implements pagesum.Summarizer at compile time.
var _ pagesum.Summarizer = (*Client)(nil)

// Client implements pagesum.Summarizer by sending one HTTP request through
// the adapter registered for the requested provider. It never retries.
type Client struct {
	adapters pagesum.AdapterRegistry
	http     *http.Client
}

// NewClient creates a new Client. A nil httpClient uses http.DefaultClient.
func NewClient(adapters pagesum.AdapterRegistry, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{adapters: adapters, http: httpClient}
}

// Summarize validates req, builds the prompt, and dispatches it.
func (c *Client) Summarize(ctx context.Context, req *pagesum.SummaryRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	adapter := c.adapters.Get(req.Provider)
	if adapter == nil {
		return "", pagesum.Errorf(pagesum.EINVALID, "no adapter registered for provider %q", req.Provider)
	}

	prompt := pagesum.BuildPrompt(req.Text, req.Style)
	httpReq, err := adapter.NewRequest(ctx, prompt, req.Credential)
	if err != nil {
		return "", fmt.Errorf("building %s request: %w", req.Provider, err)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", pagesum.Errorf(pagesum.EPROVIDER, "%s: %s", adapter.ParseError(nil), transportMessage(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", pagesum.Errorf(pagesum.EPROVIDER, "%s: reading response: %v", adapter.ParseError(nil), err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", pagesum.Errorf(pagesum.EPROVIDER, "%s", adapter.ParseError(body))
	}

	return adapter.ParseSummary(body)
}

// transportMessage returns the underlying cause of a transport error
// without the request URL, which may carry a credential.
func transportMessage(err error) string {
	var uerr *url.Error
	if errors.As(err, &uerr) && uerr.Err != nil {
		return uerr.Err.Error()
	}
	return err.Error()
}
