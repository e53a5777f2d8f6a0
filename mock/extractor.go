package mock

import "github.com/fwojciec/pagesum"

var _ pagesum.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of pagesum.TextExtractor.
type TextExtractor struct {
	ExtractTextFn func(html string) (string, error)
}

func (e *TextExtractor) ExtractText(html string) (string, error) {
	return e.ExtractTextFn(html)
}
