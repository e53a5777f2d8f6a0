package goquery

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// whitespaceRun matches two or more consecutive whitespace characters,
// including Unicode space separators and the BOM.
var whitespaceRun = regexp.MustCompile(`[\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}]{2,}`)

// CollapseWhitespace trims s and replaces every run of two or more
// whitespace characters with a single newline.
func CollapseWhitespace(s string) string {
	return whitespaceRun.ReplaceAllString(strings.TrimSpace(s), "\n")
}

// VisibleText returns the text a reader would see for the selection.
// Non-rendered elements (script, style, noscript, template, head, and
// anything carrying the hidden attribute) are skipped; block-level
// elements and <br> contribute line breaks. Outside pre and textarea,
// source whitespace collapses to single spaces and is dropped at line
// boundaries, as browsers lay it out.
func VisibleText(sel *goquery.Selection) string {
	var w textWriter
	for _, n := range sel.Nodes {
		w.walk(n)
	}
	return string(w.buf)
}

// textWriter accumulates visible text. pre counts enclosing elements that
// preserve whitespace.
type textWriter struct {
	buf []byte
	pre int
}

func (w *textWriter) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		if w.pre > 0 {
			w.buf = append(w.buf, n.Data...)
		} else {
			w.writeCollapsed(n.Data)
		}
		return
	case html.CommentNode, html.DoctypeNode:
		return
	case html.ElementNode:
		if !rendered(n) {
			return
		}
		if n.DataAtom == atom.Br {
			w.newline()
			return
		}
	}

	preserve := n.Type == html.ElementNode && (n.DataAtom == atom.Pre || n.DataAtom == atom.Textarea)
	if preserve {
		w.pre++
	}
	block := n.Type == html.ElementNode && isBlock(n.DataAtom)
	if block {
		w.newline()
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c)
	}
	if block {
		w.newline()
	}
	if preserve {
		w.pre--
	}
}

// writeCollapsed appends s with each run of HTML whitespace replaced by a
// single space. No space is written at the start of a line or after
// another space.
func (w *textWriter) writeCollapsed(s string) {
	for _, r := range s {
		if isHTMLSpace(r) {
			if len(w.buf) == 0 {
				continue
			}
			if last := w.buf[len(w.buf)-1]; last == ' ' || last == '\n' {
				continue
			}
			w.buf = append(w.buf, ' ')
			continue
		}
		w.buf = utf8.AppendRune(w.buf, r)
	}
}

// newline ends the current line, dropping a trailing collapsed space.
func (w *textWriter) newline() {
	if w.pre == 0 && len(w.buf) > 0 && w.buf[len(w.buf)-1] == ' ' {
		w.buf = w.buf[:len(w.buf)-1]
	}
	w.buf = append(w.buf, '\n')
}

// isHTMLSpace reports whether r is collapsible document whitespace.
// Non-breaking spaces are content and are kept.
func isHTMLSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}

// rendered reports whether an element produces visible text.
func rendered(n *html.Node) bool {
	switch n.DataAtom {
	case atom.Script, atom.Style, atom.Noscript, atom.Template, atom.Head, atom.Iframe, atom.Object:
		return false
	}
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == "hidden" {
			return false
		}
	}
	return true
}

func isBlock(a atom.Atom) bool {
	switch a {
	case atom.Address, atom.Article, atom.Aside, atom.Blockquote, atom.Body,
		atom.Dd, atom.Details, atom.Dialog, atom.Div, atom.Dl, atom.Dt,
		atom.Fieldset, atom.Figcaption, atom.Figure, atom.Footer, atom.Form,
		atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6,
		atom.Header, atom.Hgroup, atom.Hr, atom.Li, atom.Main, atom.Nav,
		atom.Ol, atom.P, atom.Pre, atom.Section, atom.Summary, atom.Table,
		atom.Tr, atom.Td, atom.Th, atom.Caption, atom.Ul:
		return true
	}
	return false
}
