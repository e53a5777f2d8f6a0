package goquery_test

import (
	"strings"
	"testing"

	gq "github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagesum/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, html string) *gq.Document {
	t.Helper()
	doc, err := gq.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestVisibleText(t *testing.T) {
	t.Parallel()

	t.Run("skips hidden and non-rendered elements", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><body><div>shown<span hidden>secret</span><template>tpl</template><!-- note --></div></body></html>`)

		assert.Equal(t, "shown", strings.TrimSpace(goquery.VisibleText(doc.Find("div"))))
	})

	t.Run("breaks lines at block elements and br", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><body><div>one<br>two<p>three</p><span>four</span></div></body></html>`)

		assert.Equal(t, "one\ntwo\nthree\nfour", goquery.CollapseWhitespace(goquery.VisibleText(doc.Find("div"))))
	})

	t.Run("keeps inline text on one line", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><body><p>Hello <b>bold</b> <a href="/x">world</a></p></body></html>`)

		assert.Equal(t, "Hello bold world", strings.TrimSpace(goquery.VisibleText(doc.Find("p"))))
	})

	t.Run("collapses non-breaking spaces", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, "<html><body><p>a&nbsp;&nbsp;b</p></body></html>")

		assert.Equal(t, "a\nb", goquery.CollapseWhitespace(goquery.VisibleText(doc.Find("p"))))
	})

	t.Run("collapses source whitespace to single spaces", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, "<html><body><p>\n    one\n    two\t\tthree <b> four </b> five\n</p></body></html>")

		assert.Equal(t, "\none two three four five\n", goquery.VisibleText(doc.Find("p")))
	})

	t.Run("drops whitespace around line breaks", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, "<html><body><p>first   <br>   second</p></body></html>")

		assert.Equal(t, "\nfirst\nsecond\n", goquery.VisibleText(doc.Find("p")))
	})

	t.Run("preserves whitespace in pre", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, "<html><body><div><pre>a  b\n  c</pre></div></body></html>")

		assert.Equal(t, "a  b\n  c", strings.TrimSpace(goquery.VisibleText(doc.Find("div"))))
	})
}
