package ideaminer

import (
	"net/url"
	"regexp"
	"strings"
)

// suffixRe matches a trailing separator-delimited suffix such as " - YouTube"
// or " | GitHub". Letters and digits match Unicode-aware so non-English site
// names (" - Википедия") strip too. Only the final suffix can match because
// the word class cannot span a second separator.
var suffixRe = regexp.MustCompile(`\s*[-|]\s*[\p{L}\p{N}_\s]+$`)

// Bookmark represents a single bookmark flattened out of a browser's
// bookmark tree. Domain and CleanName are derived once at construction and a
// Bookmark is never mutated afterwards.
type Bookmark struct {
	Name       string `json:"name"`
	URL        string `json:"url"`
	DateAdded  string `json:"dateAdded,omitempty"`
	FolderPath string `json:"folderPath"`

	// Derived fields, computed by NewBookmark.
	Domain    string `json:"domain"`
	CleanName string `json:"cleanName"`
}

// NewBookmark creates a Bookmark and computes its derived fields.
// An empty name defaults to "Untitled".
func NewBookmark(name, rawURL, dateAdded, folderPath string) *Bookmark {
	if name == "" {
		name = "Untitled"
	}
	return &Bookmark{
		Name:       name,
		URL:        rawURL,
		DateAdded:  dateAdded,
		FolderPath: folderPath,
		Domain:     ParseDomain(rawURL),
		CleanName:  CleanTitle(name),
	}
}

// CleanTitle strips a single trailing " - Site" / " | Site" style suffix
// from a bookmark title. If stripping empties the string the trimmed
// original is returned instead.
func CleanTitle(name string) string {
	cleaned := strings.TrimSpace(suffixRe.ReplaceAllString(name, ""))
	if cleaned == "" {
		return strings.TrimSpace(name)
	}
	return cleaned
}

// ParseDomain returns the network-location component of a URL verbatim
// (host, optionally with port), or "" if the URL cannot be parsed or has no
// host. No normalization is applied; "www." stripping happens only during
// concept extraction.
func ParseDomain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}
