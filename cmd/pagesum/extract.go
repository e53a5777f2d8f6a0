package main

import (
	"fmt"

	"github.com/fwojciec/pagesum"
	"github.com/fwojciec/pagesum/summarize"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	resp, err := deps.Articles.RequestArticle(deps.Ctx, pagesum.Message{
		Type: pagesum.MessageGetArticleText,
		URL:  c.URL,
	})
	if err != nil {
		return reportError(deps.Stderr, err)
	}
	if resp.Text == nil {
		err := pagesum.Errorf(pagesum.ENOTFOUND, summarize.NoArticleMessage)
		return reportError(deps.Stderr, err)
	}

	fmt.Fprintln(deps.Stdout, *resp.Text)
	return nil
}
