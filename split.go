package searchpath

import (
	"path/filepath"
	"strings"
)

// ColonSplitter splits path lists on ":" regardless of platform.
//
// It is the minimal fallback behavior; prefer PlatformSplitter unless the
// list is known to use ":" on every platform the program runs on.
type ColonSplitter struct{}

// Split implements ListSplitter. Splitting an empty list yields a single
// blank entry, as the contract requires.
func (ColonSplitter) Split(list string) []string {
	return strings.Split(list, ":")
}

// PlatformSplitter splits path lists using the platform's list separator
// conventions.
type PlatformSplitter struct{}

// Split implements ListSplitter.
func (PlatformSplitter) Split(list string) []string {
	if list == "" {
		// filepath.SplitList returns no entries for an empty list, but an
		// empty path list means "search the current directory".
		return []string{""}
	}

	return filepath.SplitList(list)
}
