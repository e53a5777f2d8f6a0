package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/pagesum"
)

// Run executes the key set command.
func (c *KeySetCmd) Run(deps *Dependencies) error {
	p, err := pagesum.ParseProvider(c.Provider)
	if err != nil {
		return reportError(deps.Stderr, err)
	}
	if strings.TrimSpace(c.Key) == "" {
		err := pagesum.Errorf(pagesum.EINVALID, "API key required")
		return reportError(deps.Stderr, err)
	}

	if err := deps.Preferences.SetCredential(deps.Ctx, p, c.Key); err != nil {
		return reportError(deps.Stderr, err)
	}

	fmt.Fprintf(deps.Stdout, "Saved API key for %s\n", p)
	return nil
}

// Run executes the key show command.
func (c *KeyShowCmd) Run(deps *Dependencies) error {
	providers := pagesum.Providers()
	if c.Provider != "" {
		p, err := pagesum.ParseProvider(c.Provider)
		if err != nil {
			return reportError(deps.Stderr, err)
		}
		providers = []pagesum.Provider{p}
	}

	for _, p := range providers {
		credential, err := deps.Preferences.Credential(deps.Ctx, p)
		if err != nil {
			return reportError(deps.Stderr, err)
		}
		shown := "(not set)"
		if credential != "" {
			shown = pagesum.MaskCredential(credential)
		}
		fmt.Fprintf(deps.Stdout, "%-8s %s\n", p, shown)
	}
	return nil
}

// Run executes the key delete command.
func (c *KeyDeleteCmd) Run(deps *Dependencies) error {
	p, err := pagesum.ParseProvider(c.Provider)
	if err != nil {
		return reportError(deps.Stderr, err)
	}

	if err := deps.Preferences.SetCredential(deps.Ctx, p, ""); err != nil {
		return reportError(deps.Stderr, err)
	}

	fmt.Fprintf(deps.Stdout, "Deleted API key for %s\n", p)
	return nil
}
