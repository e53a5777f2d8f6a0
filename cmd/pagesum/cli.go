package main

import (
	"context"
	"io"

	"github.com/fwojciec/pagesum"
	"github.com/fwojciec/pagesum/summarize"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	Preferences pagesum.PreferenceService
	Articles    pagesum.ArticleSource
	Dispatcher  *summarize.Dispatcher
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log each step to stderr"`

	Summarize SummarizeCmd `cmd:"" help:"Summarize one or more web pages"`
	Extract   ExtractCmd   `cmd:"" help:"Print the article text found on a page"`
	Key       KeyCmd       `cmd:"" help:"Manage provider API keys"`
	Provider  ProviderCmd  `cmd:"" help:"Show or select the default provider"`
}

// SummarizeCmd is the "summarize" subcommand.
type SummarizeCmd struct {
	URLs        []string `arg:"" name:"url" help:"Page URLs to summarize"`
	Provider    string   `short:"p" help:"Provider to use (gemini, chatgpt, claude); defaults to the selected provider"`
	Style       string   `short:"s" default:"default" help:"Summary style (default, brief, detailed, bullets)"`
	Render      bool     `short:"r" help:"Render pages in headless Chrome before extracting text"`
	Concurrency int      `short:"c" default:"3" help:"How many pages to summarize at once"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL    string `arg:"" help:"Page URL"`
	Render bool   `short:"r" help:"Render the page in headless Chrome before extracting text"`
}

// KeyCmd groups the API key subcommands.
type KeyCmd struct {
	Set    KeySetCmd    `cmd:"" help:"Store the API key for a provider"`
	Show   KeyShowCmd   `cmd:"" help:"Show stored API keys, masked"`
	Delete KeyDeleteCmd `cmd:"" help:"Remove the API key for a provider"`
}

// KeySetCmd is the "key set" subcommand.
type KeySetCmd struct {
	Provider string `arg:"" help:"Provider name"`
	Key      string `arg:"" help:"API key"`
}

// KeyShowCmd is the "key show" subcommand.
type KeyShowCmd struct {
	Provider string `arg:"" optional:"" help:"Provider name; all providers when omitted"`
}

// KeyDeleteCmd is the "key delete" subcommand.
type KeyDeleteCmd struct {
	Provider string `arg:"" help:"Provider name"`
}

// ProviderCmd groups the provider selection subcommands.
type ProviderCmd struct {
	Use  ProviderUseCmd  `cmd:"" help:"Select the default provider"`
	Show ProviderShowCmd `cmd:"" help:"Show the selected provider"`
}

// ProviderUseCmd is the "provider use" subcommand.
type ProviderUseCmd struct {
	Provider string `arg:"" help:"Provider name"`
}

// ProviderShowCmd is the "provider show" subcommand.
type ProviderShowCmd struct{}

// reportedError marks an error that has already been written to stderr.
type reportedError struct{ error }

func (e reportedError) Unwrap() error { return e.error }

// reportError writes err to w the way the user should see it and returns it
// marked as reported. Provider failures carry an "Error: " prefix; other
// failures without an application message are shown as is.
func reportError(w io.Writer, err error) error {
	var msg string
	switch pagesum.ErrorCode(err) {
	case pagesum.EPROVIDER:
		msg = "Error: " + pagesum.ErrorMessage(err)
	case pagesum.EINTERNAL:
		msg = err.Error()
	default:
		msg = pagesum.ErrorMessage(err)
	}
	_, _ = io.WriteString(w, msg+"\n")
	return reportedError{err}
}
