package summarize_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fwojciec/pagesum"
	"github.com/fwojciec/pagesum/mock"
	"github.com/fwojciec/pagesum/summarize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// prefs returns a PreferenceService with the given selection and credentials.
func prefs(selected pagesum.Provider, creds map[pagesum.Provider]string) *mock.PreferenceService {
	return &mock.PreferenceService{
		SelectedProviderFn: func(context.Context) (pagesum.Provider, error) {
			return selected, nil
		},
		CredentialFn: func(_ context.Context, p pagesum.Provider) (string, error) {
			return creds[p], nil
		},
	}
}

func articles(text *string) *mock.ArticleSource {
	return &mock.ArticleSource{
		RequestArticleFn: func(context.Context, pagesum.Message) (*pagesum.ArticleResponse, error) {
			return &pagesum.ArticleResponse{Text: text}, nil
		},
	}
}

func ptr(s string) *string { return &s }

func TestDispatcher_Summarize(t *testing.T) {
	t.Parallel()

	t.Run("runs pipeline in order with stored provider", func(t *testing.T) {
		t.Parallel()

		var steps []string
		article := strings.Repeat("word ", 40)
		d := &summarize.Dispatcher{
			Preferences: &mock.PreferenceService{
				SelectedProviderFn: func(context.Context) (pagesum.Provider, error) {
					steps = append(steps, "select")
					return pagesum.ProviderClaude, nil
				},
				CredentialFn: func(_ context.Context, p pagesum.Provider) (string, error) {
					steps = append(steps, "credential:"+string(p))
					return "claude-key", nil
				},
			},
			Articles: &mock.ArticleSource{
				RequestArticleFn: func(_ context.Context, msg pagesum.Message) (*pagesum.ArticleResponse, error) {
					steps = append(steps, "article:"+msg.Type+":"+msg.URL)
					return &pagesum.ArticleResponse{Text: &article}, nil
				},
			},
			Summarizer: &mock.Summarizer{
				SummarizeFn: func(_ context.Context, req *pagesum.SummaryRequest) (string, error) {
					steps = append(steps, "summarize")
					assert.Equal(t, &pagesum.SummaryRequest{
						Text:       article,
						Style:      pagesum.StyleBullets,
						Provider:   pagesum.ProviderClaude,
						Credential: "claude-key",
					}, req)
					return "- summary", nil
				},
			},
		}

		summary, err := d.Summarize(context.Background(), "https://example.com/a", summarize.Options{Style: pagesum.StyleBullets})

		require.NoError(t, err)
		assert.Equal(t, "- summary", summary)
		assert.Equal(t, []string{
			"select",
			"credential:claude",
			"article:GET_ARTICLE_TEXT:https://example.com/a",
			"summarize",
		}, steps)
	})

	t.Run("explicit provider overrides stored selection", func(t *testing.T) {
		t.Parallel()

		d := &summarize.Dispatcher{
			Preferences: &mock.PreferenceService{
				CredentialFn: func(_ context.Context, p pagesum.Provider) (string, error) {
					assert.Equal(t, pagesum.ProviderChatGPT, p)
					return "openai-key", nil
				},
			},
			Articles: articles(ptr("article text")),
			Summarizer: &mock.Summarizer{
				SummarizeFn: func(_ context.Context, req *pagesum.SummaryRequest) (string, error) {
					return string(req.Provider), nil
				},
			},
		}

		summary, err := d.Summarize(context.Background(), "https://example.com", summarize.Options{Provider: pagesum.ProviderChatGPT})

		require.NoError(t, err)
		assert.Equal(t, "chatgpt", summary)
	})

	t.Run("missing credential stops before extraction", func(t *testing.T) {
		t.Parallel()

		d := &summarize.Dispatcher{
			Preferences: prefs(pagesum.ProviderGemini, nil),
			Articles: &mock.ArticleSource{
				RequestArticleFn: func(context.Context, pagesum.Message) (*pagesum.ArticleResponse, error) {
					t.Error("article must not be requested")
					return nil, nil
				},
			},
			Summarizer: &mock.Summarizer{
				SummarizeFn: func(context.Context, *pagesum.SummaryRequest) (string, error) {
					t.Error("provider must not be called")
					return "", nil
				},
			},
		}

		_, err := d.Summarize(context.Background(), "https://example.com", summarize.Options{})

		require.Error(t, err)
		assert.Equal(t, pagesum.ECONFIG, pagesum.ErrorCode(err))
		assert.Contains(t, pagesum.ErrorMessage(err), "gemini")
		assert.Contains(t, pagesum.ErrorMessage(err), "pagesum key set")
	})

	t.Run("no article text stops before provider call", func(t *testing.T) {
		t.Parallel()

		d := &summarize.Dispatcher{
			Preferences: prefs(pagesum.ProviderGemini, map[pagesum.Provider]string{pagesum.ProviderGemini: "k"}),
			Articles:    articles(nil),
			Summarizer: &mock.Summarizer{
				SummarizeFn: func(context.Context, *pagesum.SummaryRequest) (string, error) {
					t.Error("provider must not be called")
					return "", nil
				},
			},
		}

		_, err := d.Summarize(context.Background(), "https://example.com", summarize.Options{})

		require.Error(t, err)
		assert.Equal(t, pagesum.ENOTFOUND, pagesum.ErrorCode(err))
		assert.Equal(t, summarize.NoArticleMessage, pagesum.ErrorMessage(err))
	})

	t.Run("rejects unknown explicit provider", func(t *testing.T) {
		t.Parallel()

		d := &summarize.Dispatcher{Preferences: prefs(pagesum.ProviderGemini, nil)}

		_, err := d.Summarize(context.Background(), "https://example.com", summarize.Options{Provider: "perplexity"})

		require.Error(t, err)
		assert.Equal(t, pagesum.EINVALID, pagesum.ErrorCode(err))
	})

	t.Run("propagates article source errors", func(t *testing.T) {
		t.Parallel()

		d := &summarize.Dispatcher{
			Preferences: prefs(pagesum.ProviderGemini, map[pagesum.Provider]string{pagesum.ProviderGemini: "k"}),
			Articles: &mock.ArticleSource{
				RequestArticleFn: func(context.Context, pagesum.Message) (*pagesum.ArticleResponse, error) {
					return nil, errors.New("HTTP 500 for https://example.com")
				},
			},
		}

		_, err := d.Summarize(context.Background(), "https://example.com", summarize.Options{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP 500")
	})

	t.Run("propagates provider errors", func(t *testing.T) {
		t.Parallel()

		d := &summarize.Dispatcher{
			Preferences: prefs(pagesum.ProviderGemini, map[pagesum.Provider]string{pagesum.ProviderGemini: "k"}),
			Articles:    articles(ptr("text")),
			Summarizer: &mock.Summarizer{
				SummarizeFn: func(context.Context, *pagesum.SummaryRequest) (string, error) {
					return "", pagesum.Errorf(pagesum.EPROVIDER, "quota exceeded")
				},
			},
		}

		_, err := d.Summarize(context.Background(), "https://example.com", summarize.Options{})

		require.Error(t, err)
		assert.Equal(t, pagesum.EPROVIDER, pagesum.ErrorCode(err))
		assert.Equal(t, "quota exceeded", pagesum.ErrorMessage(err))
	})
}
