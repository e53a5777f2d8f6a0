package main

import (
	"fmt"

	"github.com/fwojciec/pagesum"
	"github.com/fwojciec/pagesum/summarize"
	"golang.org/x/sync/errgroup"
)

// Run executes the summarize command. Each URL is an independent
// invocation; a failure on one page does not stop the others.
func (c *SummarizeCmd) Run(deps *Dependencies) error {
	opts, err := c.options()
	if err != nil {
		return reportError(deps.Stderr, err)
	}
	if c.Concurrency < 1 {
		err := pagesum.Errorf(pagesum.EINVALID, "concurrency must be at least 1")
		return reportError(deps.Stderr, err)
	}

	type result struct {
		summary string
		err     error
	}
	results := make([]result, len(c.URLs))

	var g errgroup.Group
	g.SetLimit(c.Concurrency)
	for i, u := range c.URLs {
		g.Go(func() error {
			summary, err := deps.Dispatcher.Summarize(deps.Ctx, u, opts)
			results[i] = result{summary: summary, err: err}
			return nil
		})
	}
	_ = g.Wait()

	var firstErr error
	for i, r := range results {
		if len(c.URLs) > 1 {
			if i > 0 {
				fmt.Fprintln(deps.Stdout)
			}
			fmt.Fprintf(deps.Stdout, "== %s ==\n", c.URLs[i])
		}
		if r.err != nil {
			if len(c.URLs) > 1 {
				fmt.Fprintf(deps.Stderr, "%s: ", c.URLs[i])
			}
			reported := reportError(deps.Stderr, r.err)
			if firstErr == nil {
				firstErr = reported
			}
			continue
		}
		fmt.Fprintln(deps.Stdout, r.summary)
	}

	return firstErr
}

func (c *SummarizeCmd) options() (summarize.Options, error) {
	var opts summarize.Options
	if c.Provider != "" {
		p, err := pagesum.ParseProvider(c.Provider)
		if err != nil {
			return opts, err
		}
		opts.Provider = p
	}
	style, err := pagesum.ParseStyle(c.Style)
	if err != nil {
		return opts, err
	}
	opts.Style = style
	return opts, nil
}
