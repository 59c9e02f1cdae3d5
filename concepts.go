package ideaminer

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// maxConcepts caps the number of concepts attached to an idea.
const maxConcepts = 8

// conceptRe matches capitalized words or lowercase words of length >= 4.
var conceptRe = regexp.MustCompile(`\b[A-Z][a-z]+\b|\b[a-z]{4,}\b`)

// ExtractConcepts derives up to 8 descriptive keywords for a bookmark from
// its clean title and domain. Candidates are the first five title tokens
// plus the first domain label with any leading "www." stripped; everything
// is lowercased, deduplicated, filtered to length > 3 and sorted
// lexicographically so the result is deterministic. Concepts are display
// metadata only and never feed back into categorization or scoring.
func ExtractConcepts(b *Bookmark) []string {
	candidates := conceptRe.FindAllString(b.CleanName, -1)
	if len(candidates) > 5 {
		candidates = candidates[:5]
	}

	domain := strings.TrimPrefix(b.Domain, "www.")
	if parts := strings.Split(domain, "."); len(parts) > 0 {
		candidates = append(candidates, parts[0])
	}

	seen := make(map[string]bool, len(candidates))
	concepts := make([]string, 0, len(candidates))
	for _, c := range candidates {
		c = strings.ToLower(c)
		if utf8.RuneCountInString(c) <= 3 || seen[c] {
			continue
		}
		seen[c] = true
		concepts = append(concepts, c)
	}

	sort.Strings(concepts)
	if len(concepts) > maxConcepts {
		concepts = concepts[:maxConcepts]
	}
	return concepts
}
