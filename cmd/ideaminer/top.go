package main

import (
	"fmt"

	"github.com/fwojciec/ideaminer"
)

// Run executes the top command.
func (c *TopCmd) Run(deps *Dependencies) error {
	var category *string
	if c.Category != "" {
		category = &c.Category
	}

	ideas, err := deps.Finder.FindIdeas(deps.Ctx, ideaminer.IdeaFilter{
		Category:     category,
		FeasibleOnly: !c.All,
		Limit:        c.Limit,
	})
	if err != nil {
		if ideaminer.ErrorCode(err) == ideaminer.ENOTFOUND {
			fmt.Fprintln(deps.Stdout, "No mining runs recorded. Use 'ideaminer mine' to create one.")
			return nil
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", ideaminer.ErrorMessage(err))
		return err
	}

	if len(ideas) == 0 {
		fmt.Fprintln(deps.Stdout, "No ideas matched.")
		return nil
	}

	for i, idea := range ideas {
		marker := " "
		if idea.WeekendFeasible {
			marker = "*"
		}
		fmt.Fprintf(deps.Stdout, "%2d. [%.2f]%s %s (%s)\n      %s\n", i+1, idea.BuildableScore, marker, idea.Title, idea.Category, idea.URL)
	}

	return nil
}
