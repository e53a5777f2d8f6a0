package main

import (
	"fmt"

	"github.com/fwojciec/pagesum"
)

// Run executes the provider use command.
func (c *ProviderUseCmd) Run(deps *Dependencies) error {
	p, err := pagesum.ParseProvider(c.Provider)
	if err != nil {
		return reportError(deps.Stderr, err)
	}

	if err := deps.Preferences.SelectProvider(deps.Ctx, p); err != nil {
		return reportError(deps.Stderr, err)
	}

	fmt.Fprintf(deps.Stdout, "Selected provider %s\n", p)
	return nil
}

// Run executes the provider show command. The selected provider is marked
// with an asterisk.
func (c *ProviderShowCmd) Run(deps *Dependencies) error {
	selected, err := deps.Preferences.SelectedProvider(deps.Ctx)
	if err != nil {
		return reportError(deps.Stderr, err)
	}

	for _, p := range pagesum.Providers() {
		marker := " "
		if p == selected {
			marker = "*"
		}
		fmt.Fprintf(deps.Stdout, "%s %s\n", marker, p)
	}
	return nil
}
