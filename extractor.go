package pagesum

// TextExtractor extracts the main readable text from HTML pages.
type TextExtractor interface {
	// ExtractText parses raw HTML and returns the plain text believed to be
	// the main article content. It returns an empty string when the page has
	// no text at all.
	ExtractText(html string) (string, error)
}
