package mock

import (
	"context"

	"github.com/fwojciec/pagesum"
)

var _ pagesum.ArticleSource = (*ArticleSource)(nil)

// ArticleSource is a mock implementation of pagesum.ArticleSource.
type ArticleSource struct {
	RequestArticleFn func(ctx context.Context, msg pagesum.Message) (*pagesum.ArticleResponse, error)
}

func (s *ArticleSource) RequestArticle(ctx context.Context, msg pagesum.Message) (*pagesum.ArticleResponse, error) {
	return s.RequestArticleFn(ctx, msg)
}
