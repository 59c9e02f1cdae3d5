package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/ideaminer"
	"github.com/fwojciec/ideaminer/chrome"
	"github.com/fwojciec/ideaminer/fs"
	"github.com/fwojciec/ideaminer/netscape"
	"github.com/fwojciec/ideaminer/xbel"
	"golang.org/x/sync/errgroup"
)

// Run executes the mine command.
func (c *MineCmd) Run(deps *Dependencies) error {
	path := c.File
	if path == "" {
		if c.Source != "chrome" {
			return ideaminer.Errorf(ideaminer.EINVALID, "--file is required for source %q", c.Source)
		}
		located, err := chrome.Locate()
		if err != nil {
			fmt.Fprintln(deps.Stderr, "Hint: use --file to point at a bookmarks file")
			return err
		}
		path = located
	}

	tree, roots, err := parseTree(c.Source, path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ideaminer.ErrorMessage(err))
		return err
	}

	bookmarks := ideaminer.Flatten(tree, roots)
	deps.Logger.Info().Str("file", path).Int("bookmarks", len(bookmarks)).Msg("parsed bookmarks")

	ideas := ideaminer.Analyze(bookmarks, c.Buildable)
	report := ideaminer.NewReport(ideas, time.Now().UTC())
	deps.Logger.Info().
		Int("ideas", report.TotalIdeas).
		Int("weekend_feasible", report.WeekendFeasible).
		Msg("analyzed bookmarks")

	if err := os.MkdirAll(c.Output, 0755); err != nil {
		return err
	}

	type sink struct {
		name   string
		writer ideaminer.ReportWriter
	}
	var sinks []sink
	if c.Format == "json" || c.Format == "all" {
		jsonPath := filepath.Join(c.Output, "project-ideas.json")
		sinks = append(sinks, sink{jsonPath, fs.NewJSONWriter(jsonPath)})
	}
	if c.Format == "markdown" || c.Format == "all" {
		mdPath := filepath.Join(c.Output, "project-ideas.md")
		sinks = append(sinks, sink{mdPath, fs.NewMarkdownWriter(mdPath)})
	}
	if c.Format == "sqlite" || c.Format == "all" {
		sinks = append(sinks, sink{"database", deps.Runs})
	}

	// Sinks are independent, so write them concurrently.
	g, gctx := errgroup.WithContext(deps.Ctx)
	for _, s := range sinks {
		s := s
		g.Go(func() error {
			return s.writer.WriteReport(gctx, report)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, s := range sinks {
		fmt.Fprintf(deps.Stdout, "Saved report to %s\n", s.name)
	}
	fmt.Fprintf(deps.Stdout, "%d ideas (%d weekend-feasible)\n", report.TotalIdeas, report.WeekendFeasible)

	return nil
}

// parseTree opens and parses a bookmarks file, returning the tree and the
// root allow-list appropriate for the source format.
func parseTree(source, path string) (*ideaminer.Tree, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	switch source {
	case "chrome":
		tree, err := chrome.Parse(f)
		return tree, chrome.DefaultRoots, err
	case "html":
		tree, err := netscape.Parse(f)
		return tree, netscape.Roots, err
	case "xbel":
		tree, err := xbel.Parse(f)
		return tree, xbel.Roots, err
	}
	return nil, nil, ideaminer.Errorf(ideaminer.EINVALID, "unknown source %q", source)
}
