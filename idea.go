package ideaminer

import (
	"context"
	"sort"
	"time"
)

// ProjectIdea is the analysis result for exactly one bookmark. Ideas are
// never merged: every idea maps 1:1 to its source bookmark.
type ProjectIdea struct {
	Title           string   `json:"title"`
	URL             string   `json:"url"`
	Category        string   `json:"category"`
	Concepts        []string `json:"concepts"`
	BuildableScore  float64  `json:"buildable_score"`
	WeekendFeasible bool     `json:"weekend_feasible"`
	Reasoning       string   `json:"reasoning"`
	SourceBookmark  string   `json:"source_bookmark"`
}

// Analyze turns bookmarks into ranked project ideas. Each bookmark is
// categorized, mined for concepts and scored in sequence, then the ideas are
// stable-sorted by buildability score descending, so ties keep input order.
// With buildableOnly set, ideas below the weekend threshold are dropped
// entirely rather than hidden. An empty input yields an empty result.
func Analyze(bookmarks []*Bookmark, buildableOnly bool) []*ProjectIdea {
	ideas := make([]*ProjectIdea, 0, len(bookmarks))

	for _, b := range bookmarks {
		category := Categorize(b)
		concepts := ExtractConcepts(b)
		score, reasoning := ScoreBuildability(b, category)
		feasible := score >= WeekendThreshold

		if buildableOnly && !feasible {
			continue
		}

		ideas = append(ideas, &ProjectIdea{
			Title:           b.CleanName,
			URL:             b.URL,
			Category:        category,
			Concepts:        concepts,
			BuildableScore:  score,
			WeekendFeasible: feasible,
			Reasoning:       reasoning,
			SourceBookmark:  b.Name,
		})
	}

	sort.SliceStable(ideas, func(i, j int) bool {
		return ideas[i].BuildableScore > ideas[j].BuildableScore
	})

	return ideas
}

// Report is the final output of one mining run.
type Report struct {
	GeneratedAt     time.Time      `json:"generated_at"`
	TotalIdeas      int            `json:"total_ideas"`
	WeekendFeasible int            `json:"weekend_feasible"`
	Ideas           []*ProjectIdea `json:"ideas"`
}

// NewReport wraps analyzed ideas with derived summary counts.
func NewReport(ideas []*ProjectIdea, generatedAt time.Time) *Report {
	feasible := 0
	for _, idea := range ideas {
		if idea.WeekendFeasible {
			feasible++
		}
	}
	return &Report{
		GeneratedAt:     generatedAt,
		TotalIdeas:      len(ideas),
		WeekendFeasible: feasible,
		Ideas:           ideas,
	}
}

// ReportWriter persists a finished report to an output sink. Writers have no
// influence on analysis: the pipeline is a pure function of its input.
type ReportWriter interface {
	WriteReport(ctx context.Context, report *Report) error
}

// IdeaFilter selects ideas when reading them back from a report sink.
type IdeaFilter struct {
	Category     *string
	FeasibleOnly bool
	Limit        int
}

// IdeaFinder reads ideas back from a report sink.
type IdeaFinder interface {
	// FindIdeas retrieves ideas from the most recent run matching the
	// filter, in ranked order. Returns ENOTFOUND if no run exists.
	FindIdeas(ctx context.Context, filter IdeaFilter) ([]*ProjectIdea, error)
}
