package main

import (
	"fmt"

	"github.com/fwojciec/ideaminer"
	"github.com/fwojciec/ideaminer/chrome"
)

// Run executes the detect command.
func (c *DetectCmd) Run(deps *Dependencies) error {
	path, err := chrome.Locate()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ideaminer.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, path)
	return nil
}
