package openai_test

import (
	"context"
	"io"
	"testing"

	"github.com/fwojciec/pagesum"
	"github.com/fwojciec/pagesum/openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapter_Provider(t *testing.T) {
	t.Parallel()

	assert.Equal(t, pagesum.ProviderChatGPT, openai.NewAdapter().Provider())
}

func TestAdapter_NewRequest(t *testing.T) {
	t.Parallel()

	req, err := openai.NewAdapter().NewRequest(context.Background(), "Summarize this", "sk-test")
	require.NoError(t, err)

	assert.Equal(t, "POST", req.Method)
	assert.Equal(t, "https://api.openai.com/v1/chat/completions", req.URL.String())
	assert.Equal(t, "Bearer sk-test", req.Header.Get("Authorization"))
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))

	body, err := io.ReadAll(req.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"model": "gpt-4o",
		"messages": [
			{"role": "system", "content": "You are a helpful assistant that summarizes text."},
			{"role": "user", "content": "Summarize this"}
		],
		"temperature": 0.2
	}`, string(body))
}

func TestAdapter_ParseSummary(t *testing.T) {
	t.Parallel()

	a := openai.NewAdapter()

	t.Run("extracts first choice content", func(t *testing.T) {
		t.Parallel()

		body := `{"id":"chatcmpl-1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"- point one\n- point two"},"finish_reason":"stop"}]}`

		text, err := a.ParseSummary([]byte(body))

		require.NoError(t, err)
		assert.Equal(t, "- point one\n- point two", text)
	})

	t.Run("returns placeholder when content is missing or empty", func(t *testing.T) {
		t.Parallel()

		for _, body := range []string{`{}`, `{"choices":[]}`, `{"choices":[{"message":{"content":""}}]}`} {
			text, err := a.ParseSummary([]byte(body))
			require.NoError(t, err, body)
			assert.Equal(t, pagesum.NoSummary, text, body)
		}
	})

	t.Run("rejects invalid JSON", func(t *testing.T) {
		t.Parallel()

		_, err := a.ParseSummary([]byte(`{"choices":`))

		require.Error(t, err)
		assert.Equal(t, pagesum.EPROVIDER, pagesum.ErrorCode(err))
	})
}

func TestAdapter_ParseError(t *testing.T) {
	t.Parallel()

	a := openai.NewAdapter()

	assert.Equal(t, "Incorrect API key provided: sk-test.",
		a.ParseError([]byte(`{"error":{"message":"Incorrect API key provided: sk-test.","type":"invalid_request_error","code":"invalid_api_key"}}`)))
	assert.Equal(t, openai.GenericError, a.ParseError([]byte(`{"error":"nope"}`)))
	assert.Equal(t, openai.GenericError, a.ParseError([]byte(`upstream connect error`)))
}
