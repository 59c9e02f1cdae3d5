// Package fs writes mining reports to the local filesystem.
package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/fwojciec/ideaminer"
)

// Ensure JSONWriter implements ideaminer.ReportWriter at compile time.
var _ ideaminer.ReportWriter = (*JSONWriter)(nil)

// JSONWriter writes a report as an indented JSON file.
type JSONWriter struct {
	path string
}

// NewJSONWriter creates a JSONWriter that writes to the given path.
func NewJSONWriter(path string) *JSONWriter {
	return &JSONWriter{path: path}
}

// WriteReport writes the report as JSON.
func (w *JSONWriter) WriteReport(_ context.Context, report *ideaminer.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(w.path, append(data, '\n'), 0644)
}

// Ensure MarkdownWriter implements ideaminer.ReportWriter at compile time.
var _ ideaminer.ReportWriter = (*MarkdownWriter)(nil)

// MarkdownWriter writes a report as a category-grouped Markdown file.
type MarkdownWriter struct {
	path string
}

// NewMarkdownWriter creates a MarkdownWriter that writes to the given path.
func NewMarkdownWriter(path string) *MarkdownWriter {
	return &MarkdownWriter{path: path}
}

// WriteReport writes the report as Markdown.
func (w *MarkdownWriter) WriteReport(_ context.Context, report *ideaminer.Report) error {
	return os.WriteFile(w.path, []byte(FormatReport(report)), 0644)
}

// FormatReport renders a report as readable Markdown. Ideas are grouped by
// category (categories sorted alphabetically) and keep their ranked order
// within each group.
func FormatReport(report *ideaminer.Report) string {
	var b strings.Builder
	b.WriteString("# Bookmark-Mined Project Ideas\n")
	fmt.Fprintf(&b, "\n**Generated:** %s\n", report.GeneratedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "\n**Total Ideas:** %d\n", report.TotalIdeas)
	fmt.Fprintf(&b, "**Weekend-Feasible:** %d\n", report.WeekendFeasible)
	b.WriteString("\n---\n")

	byCategory := make(map[string][]*ideaminer.ProjectIdea)
	for _, idea := range report.Ideas {
		byCategory[idea.Category] = append(byCategory[idea.Category], idea)
	}

	categories := make([]string, 0, len(byCategory))
	for category := range byCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, category := range categories {
		ideas := byCategory[category]
		fmt.Fprintf(&b, "\n## %s (%d ideas)\n", strings.ToUpper(category), len(ideas))
		for i, idea := range ideas {
			emoji := "⏰"
			if idea.WeekendFeasible {
				emoji = "✅"
			}
			fmt.Fprintf(&b, "\n### %d. %s %s\n", i+1, idea.Title, emoji)
			fmt.Fprintf(&b, "**Buildability:** `%s` (%.2f)\n", scoreBar(idea.BuildableScore), idea.BuildableScore)
			fmt.Fprintf(&b, "**URL:** %s\n", idea.URL)
			fmt.Fprintf(&b, "**Concepts:** %s\n", strings.Join(idea.Concepts, ", "))
			fmt.Fprintf(&b, "**Reasoning:** %s\n", idea.Reasoning)
		}
	}

	return b.String()
}

// scoreBar renders a ten-segment bar for a [0,1] score.
func scoreBar(score float64) string {
	filled := int(score * 10)
	if filled > 10 {
		filled = 10
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
}
