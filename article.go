package pagesum

import "context"

// MessageGetArticleText asks a page agent for the article text of a page.
const MessageGetArticleText = "GET_ARTICLE_TEXT"

// MinArticleChars is the length an extracted text must exceed to be handed
// to a provider. Shorter results are reported as "no usable text".
const MinArticleChars = 100

// Message is a request sent across the boundary between the dispatcher and
// the page agent.
type Message struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

// ArticleResponse answers a GET_ARTICLE_TEXT message.
// Text is nil when the page has no usable article text.
type ArticleResponse struct {
	Text *string `json:"text"`
}

// ArticleSource answers messages on behalf of a loaded page.
type ArticleSource interface {
	// RequestArticle handles msg and returns the article text of the page.
	// A nil Text in the response is a normal outcome, not an error.
	// Returns EINVALID for unknown message types.
	RequestArticle(ctx context.Context, msg Message) (*ArticleResponse, error)
}
