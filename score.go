package ideaminer

import (
	"fmt"
	"strings"
)

// WeekendThreshold is the buildability score at or above which an idea is
// considered weekend-feasible. This is a fixed design constant.
const WeekendThreshold = 0.6

// defaultReasoning is used when no scoring factor triggers.
const defaultReasoning = "Standard project complexity"

// easyIndicators raise the buildability score by 0.10 each.
var easyIndicators = []string{"cli", "script", "bot", "scraper", "parser", "converter", "simple", "basic"}

// hardIndicators lower the buildability score by 0.15 each.
var hardIndicators = []string{"platform", "enterprise", "scale", "infrastructure", "distributed", "complex"}

// weekendCategories get a flat +0.15. "cli" is not a label the category
// table can produce, so that entry never fires; it is kept to match the
// original scoring table.
var weekendCategories = map[string]bool{
	CategoryTools: true,
	"cli":         true,
	CategoryWeb:   true,
}

// slowCategories get a flat -0.20. "infrastructure" and "platform" are not
// labels the category table can produce; kept to match the original scoring
// table.
var slowCategories = map[string]bool{
	CategoryHardware: true,
	"infrastructure": true,
	"platform":       true,
}

// ScoreBuildability computes a clamped [0,1] weekend-buildability score for
// a bookmark in the given category, plus a human-readable reasoning string
// listing the factors that fired. Each indicator counts once per keyword, not
// per occurrence.
func ScoreBuildability(b *Bookmark, category string) (float64, string) {
	text := strings.ToLower(b.Name + " " + b.URL)
	score := 0.5
	var reasons []string

	easyCount := 0
	for _, ind := range easyIndicators {
		if strings.Contains(text, ind) {
			easyCount++
		}
	}
	if easyCount > 0 {
		score += 0.1 * float64(easyCount)
		reasons = append(reasons, fmt.Sprintf("Contains %d easy-build indicators", easyCount))
	}

	hardCount := 0
	for _, ind := range hardIndicators {
		if strings.Contains(text, ind) {
			hardCount++
		}
	}
	if hardCount > 0 {
		score -= 0.15 * float64(hardCount)
		reasons = append(reasons, fmt.Sprintf("Contains %d complex indicators", hardCount))
	}

	switch {
	case weekendCategories[category]:
		score += 0.15
		reasons = append(reasons, "Category is weekend-friendly")
	case slowCategories[category]:
		score -= 0.2
		reasons = append(reasons, "Category typically requires more time")
	}

	if strings.Contains(strings.ToLower(b.Domain), "github.com") {
		score += 0.1
		reasons = append(reasons, "GitHub project (likely has code reference)")
	}

	score = max(0.0, min(1.0, score))

	if len(reasons) == 0 {
		return score, defaultReasoning
	}
	return score, strings.Join(reasons, "; ")
}
