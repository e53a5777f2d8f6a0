package pagesum_test

import (
	"testing"

	"github.com/fwojciec/pagesum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProvider(t *testing.T) {
	t.Parallel()

	t.Run("parses supported providers", func(t *testing.T) {
		t.Parallel()

		for _, name := range []string{"gemini", "chatgpt", "claude", " Claude "} {
			p, err := pagesum.ParseProvider(name)
			require.NoError(t, err, name)
			assert.True(t, p.Valid())
		}
	})

	t.Run("rejects retired and unknown providers", func(t *testing.T) {
		t.Parallel()

		for _, name := range []string{"perplexity", "", "gpt"} {
			_, err := pagesum.ParseProvider(name)
			require.Error(t, err, name)
			assert.Equal(t, pagesum.EINVALID, pagesum.ErrorCode(err))
		}
	})
}

func TestProviders_AllValid(t *testing.T) {
	t.Parallel()

	providers := pagesum.Providers()

	require.Len(t, providers, 3)
	for _, p := range providers {
		assert.True(t, p.Valid(), p)
	}
}

func TestParseStyle(t *testing.T) {
	t.Parallel()

	tests := map[string]pagesum.Style{
		"":         pagesum.StyleDefault,
		"default":  pagesum.StyleDefault,
		"brief":    pagesum.StyleBrief,
		"Detailed": pagesum.StyleDetailed,
		"bullets":  pagesum.StyleBullets,
	}
	for in, want := range tests {
		got, err := pagesum.ParseStyle(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := pagesum.ParseStyle("haiku")
	require.Error(t, err)
	assert.Equal(t, pagesum.EINVALID, pagesum.ErrorCode(err))
}

func TestSummaryRequest_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts complete request", func(t *testing.T) {
		t.Parallel()

		req := &pagesum.SummaryRequest{Text: "text", Provider: pagesum.ProviderClaude, Credential: "key"}

		assert.NoError(t, req.Validate())
	})

	t.Run("rejects empty credential as configuration error naming provider", func(t *testing.T) {
		t.Parallel()

		req := &pagesum.SummaryRequest{Text: "text", Provider: pagesum.ProviderChatGPT}

		err := req.Validate()

		require.Error(t, err)
		assert.Equal(t, pagesum.ECONFIG, pagesum.ErrorCode(err))
		assert.Contains(t, pagesum.ErrorMessage(err), "chatgpt")
	})

	t.Run("rejects empty text", func(t *testing.T) {
		t.Parallel()

		req := &pagesum.SummaryRequest{Provider: pagesum.ProviderGemini, Credential: "key"}

		err := req.Validate()

		require.Error(t, err)
		assert.Equal(t, pagesum.EINVALID, pagesum.ErrorCode(err))
	})

	t.Run("rejects unknown provider", func(t *testing.T) {
		t.Parallel()

		req := &pagesum.SummaryRequest{Text: "text", Provider: "perplexity", Credential: "key"}

		err := req.Validate()

		require.Error(t, err)
		assert.Equal(t, pagesum.EINVALID, pagesum.ErrorCode(err))
	})
}
