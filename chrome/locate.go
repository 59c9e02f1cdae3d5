package chrome

import (
	"os"
	"path/filepath"

	"github.com/fwojciec/ideaminer"
)

// candidatePaths are the known Chrome/Chromium bookmark file locations,
// relative to the user's home directory.
var candidatePaths = []string{
	".config/google-chrome/Default/Bookmarks",
	".config/chromium/Default/Bookmarks",
	"Library/Application Support/Google/Chrome/Default/Bookmarks",
	"AppData/Local/Google/Chrome/User Data/Default/Bookmarks",
}

// Locate auto-detects the Chrome bookmarks file for the current user.
// Returns ENOTFOUND if no known location exists.
func Locate() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return LocateIn(home)
}

// LocateIn checks the known bookmark file locations under the given home
// directory and returns the first that exists.
func LocateIn(home string) (string, error) {
	for _, rel := range candidatePaths {
		path := filepath.Join(home, filepath.FromSlash(rel))
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", ideaminer.Errorf(ideaminer.ENOTFOUND, "no Chrome bookmarks file found")
}
