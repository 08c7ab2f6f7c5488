package main

import (
	"fmt"

	"github.com/jobscout/jobscout"
)

// Run executes the keywords command.
func (c *KeywordsCmd) Run(deps *Dependencies) error {
	for _, kw := range jobscout.FitKeywords() {
		fmt.Fprintln(deps.Stdout, kw)
	}
	return nil
}
