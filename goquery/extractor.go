package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagesum"
)

// DefaultSelectors lists the content containers tried by the Extractor,
// from most to least semantically specific.
var DefaultSelectors = []string{
	"article",
	"main",
	`[role="main"]`,
	"#content",
	"#main",
	".post",
	".entry",
}

// DefaultMinContainerChars is the length a container's text must exceed
// for the container to be accepted.
const DefaultMinContainerChars = 200

// noiseSelector matches elements stripped from a container before its text
// is read.
const noiseSelector = `script, style, noscript, a[aria-hidden="true"]`

// Ensure Extractor implements pagesum.TextExtractor at compile time.
var _ pagesum.TextExtractor = (*Extractor)(nil)

// Extractor finds the main article text of a page using an ordered list of
// structural selectors, then falls back to paragraph and body text.
type Extractor struct {
	selectors []string
	minChars  int
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithSelectors replaces the ordered list of container selectors.
func WithSelectors(selectors ...string) Option {
	return func(e *Extractor) {
		e.selectors = selectors
	}
}

// WithMinContainerChars sets the length a container's text must exceed.
// Defaults to DefaultMinContainerChars.
func WithMinContainerChars(n int) Option {
	return func(e *Extractor) {
		e.minChars = n
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		selectors: DefaultSelectors,
		minChars:  DefaultMinContainerChars,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractText parses raw HTML and returns the main article text.
//
// For each selector, in order, only the first matching element is
// considered. Its text is read from a detached copy with scripts, styles
// and decorative links removed, so the document itself is left intact.
// The first container whose text is long enough wins. Otherwise all
// paragraphs are joined with blank lines, and if the page has no
// paragraphs the whole body text is returned.
func (e *Extractor) ExtractText(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", pagesum.Errorf(pagesum.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", pagesum.Errorf(pagesum.EINVALID, "failed to parse HTML: %v", err)
	}

	for _, selector := range e.selectors {
		container := doc.Find(selector).First()
		if container.Length() == 0 {
			continue
		}
		text := containerText(container)
		if utf8.RuneCountInString(text) > e.minChars {
			return text, nil
		}
	}

	if paragraphs := doc.Find("p"); paragraphs.Length() > 0 {
		parts := make([]string, 0, paragraphs.Length())
		paragraphs.Each(func(_ int, p *goquery.Selection) {
			parts = append(parts, strings.TrimSpace(VisibleText(p)))
		})
		return strings.Join(parts, "\n\n"), nil
	}

	return CollapseWhitespace(VisibleText(doc.Find("body"))), nil
}

// containerText returns the cleaned text of a container without modifying
// the document it belongs to.
func containerText(sel *goquery.Selection) string {
	clone := sel.Clone()
	clone.Find(noiseSelector).Remove()
	return CollapseWhitespace(VisibleText(clone))
}
