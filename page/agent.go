// Package page answers article text requests on behalf of a loaded page.
package page

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/pagesum"
)

// Ensure Agent implements pagesum.ArticleSource at compile time.
var _ pagesum.ArticleSource = (*Agent)(nil)

// Agent loads pages with a Fetcher and extracts their article text.
// It holds no per-request state and is safe for concurrent use when its
// Fetcher and Extractor are.
type Agent struct {
	Fetcher   pagesum.Fetcher
	Extractor pagesum.TextExtractor
}

// RequestArticle handles a GET_ARTICLE_TEXT message.
// Text shorter than or equal to pagesum.MinArticleChars is reported as a
// nil Text rather than an error.
func (a *Agent) RequestArticle(ctx context.Context, msg pagesum.Message) (*pagesum.ArticleResponse, error) {
	if msg.Type != pagesum.MessageGetArticleText {
		return nil, pagesum.Errorf(pagesum.EINVALID, "unsupported message type %q", msg.Type)
	}
	if strings.TrimSpace(msg.URL) == "" {
		return nil, pagesum.Errorf(pagesum.EINVALID, "page URL required")
	}

	html, err := a.Fetcher.Fetch(ctx, msg.URL)
	if err != nil {
		return nil, err
	}

	text, err := a.Extractor.ExtractText(html)
	if err != nil {
		return nil, err
	}

	if text == "" || utf8.RuneCountInString(text) <= pagesum.MinArticleChars {
		return &pagesum.ArticleResponse{}, nil
	}
	return &pagesum.ArticleResponse{Text: &text}, nil
}
