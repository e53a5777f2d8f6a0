package summarize

import (
	"context"

	"github.com/fwojciec/pagesum"
)

// NoArticleMessage is reported when a page has no usable article text.
const NoArticleMessage = "Could not extract article text from this page."

// Options selects how a page is summarized.
type Options struct {
	// Provider overrides the stored provider selection when set.
	Provider pagesum.Provider

	// Style selects the prompt template.
	Style pagesum.Style
}

// Dispatcher runs one summarization: credential check, article
// extraction, then a single provider call. Each step completes before the
// next begins and a failure ends the run.
//
// Dispatcher keeps no state between runs; concurrent calls are independent.
type Dispatcher struct {
	Preferences pagesum.PreferenceService
	Articles    pagesum.ArticleSource
	Summarizer  pagesum.Summarizer
}

// Summarize returns the summary of the page at pageURL.
//
// Returns ECONFIG if no credential is stored for the provider and
// ENOTFOUND if the page has no usable article text; in both cases no
// provider request is made.
func (d *Dispatcher) Summarize(ctx context.Context, pageURL string, opts Options) (string, error) {
	provider, err := d.resolveProvider(ctx, opts.Provider)
	if err != nil {
		return "", err
	}

	credential, err := d.Preferences.Credential(ctx, provider)
	if err != nil {
		return "", err
	}
	if credential == "" {
		return "", pagesum.MissingCredentialError(provider)
	}

	resp, err := d.Articles.RequestArticle(ctx, pagesum.Message{
		Type: pagesum.MessageGetArticleText,
		URL:  pageURL,
	})
	if err != nil {
		return "", err
	}
	if resp == nil || resp.Text == nil || *resp.Text == "" {
		return "", pagesum.Errorf(pagesum.ENOTFOUND, NoArticleMessage)
	}

	return d.Summarizer.Summarize(ctx, &pagesum.SummaryRequest{
		Text:       *resp.Text,
		Style:      opts.Style,
		Provider:   provider,
		Credential: credential,
	})
}

func (d *Dispatcher) resolveProvider(ctx context.Context, p pagesum.Provider) (pagesum.Provider, error) {
	if p == pagesum.ProviderUnknown {
		return d.Preferences.SelectedProvider(ctx)
	}
	if !p.Valid() {
		return pagesum.ProviderUnknown, pagesum.Errorf(pagesum.EINVALID, "unknown provider %q", p)
	}
	return p, nil
}
