package slog

import (
	"context"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/pagesum"
)

// Ensure LoggingArticleSource implements pagesum.ArticleSource.
var _ pagesum.ArticleSource = (*LoggingArticleSource)(nil)

// LoggingArticleSource wraps an ArticleSource and logs each message exchange.
type LoggingArticleSource struct {
	next   pagesum.ArticleSource
	logger *slog.Logger
}

// NewLoggingArticleSource creates a new LoggingArticleSource.
func NewLoggingArticleSource(next pagesum.ArticleSource, logger *slog.Logger) *LoggingArticleSource {
	return &LoggingArticleSource{next: next, logger: logger}
}

// RequestArticle logs the message type, whether text was found and its length.
func (s *LoggingArticleSource) RequestArticle(ctx context.Context, msg pagesum.Message) (resp *pagesum.ArticleResponse, err error) {
	defer func(begin time.Time) {
		found := resp != nil && resp.Text != nil
		chars := 0
		if found {
			chars = utf8.RuneCountInString(*resp.Text)
		}
		s.logger.Info("article",
			"type", msg.Type,
			"url", msg.URL,
			"found", found,
			"chars", chars,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.RequestArticle(ctx, msg)
}
