package ideaminer

import "strings"

// Category labels assigned by Categorize.
const (
	CategoryTools    = "tools"
	CategorySaaS     = "saas"
	CategoryGames    = "games"
	CategoryHardware = "hardware"
	CategoryWeb      = "web"
	CategoryAIML     = "ai_ml"
	CategoryData     = "data"
	CategoryCreative = "creative"
	CategoryDevOps   = "dev_ops"
	CategoryMobile   = "mobile"

	// CategoryOther is the sentinel for bookmarks matching no keywords.
	CategoryOther = "other"
)

// categoryDef pairs a category label with its keyword list. The table is a
// slice, not a map: score ties between categories break to the earliest
// entry, so declaration order is part of the contract.
type categoryDef struct {
	label    string
	keywords []string
}

// categoryTable is the fixed categorization table. Keywords are matched as
// lowercase substrings of the bookmark's name, URL and domain.
var categoryTable = []categoryDef{
	{CategoryTools, []string{"tool", "editor", "ide", "cli", "terminal", "utility", "app", "software"}},
	{CategorySaaS, []string{"dashboard", "platform", "service", "api", "cloud", "app", "automation"}},
	{CategoryGames, []string{"game", "unity", "unreal", "godot", "phaser", "pygame", "engine"}},
	{CategoryHardware, []string{"arduino", "raspberry", "pi", "iot", "sensor", "esp32", "microcontroller"}},
	{CategoryWeb, []string{"html", "css", "javascript", "react", "vue", "svelte", "frontend", "backend"}},
	{CategoryAIML, []string{"ai", "ml", "machine learning", "neural", "gpt", "llm", "model", "tensorflow"}},
	{CategoryData, []string{"database", "sql", "nosql", "analytics", "visualization", "dashboard"}},
	{CategoryCreative, []string{"design", "art", "music", "video", "generator", "creator"}},
	{CategoryDevOps, []string{"docker", "kubernetes", "ci/cd", "deploy", "infrastructure", "monitoring"}},
	{CategoryMobile, []string{"ios", "android", "mobile", "app", "flutter", "react native"}},
}

// Categories returns the category labels in table order, excluding the
// CategoryOther sentinel.
func Categories() []string {
	labels := make([]string, 0, len(categoryTable))
	for _, def := range categoryTable {
		labels = append(labels, def.label)
	}
	return labels
}

// Categorize assigns a category label to a bookmark by counting distinct
// keyword substring hits in its name, URL and domain. Each keyword counts at
// most once regardless of repeat occurrences. The strictly highest score
// wins, ties break to the category declared first, and zero hits yield
// CategoryOther.
func Categorize(b *Bookmark) string {
	text := strings.ToLower(b.Name + " " + b.URL + " " + b.Domain)

	best := CategoryOther
	bestScore := 0
	for _, def := range categoryTable {
		score := 0
		for _, kw := range def.keywords {
			if strings.Contains(text, kw) {
				score++
			}
		}
		if score > bestScore {
			best = def.label
			bestScore = score
		}
	}
	return best
}
