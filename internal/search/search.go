// Package search provides fuzzy quick-search over joined entries for
// the CLI path. The main view's list filter is a plain substring match
// and lives in the view package; this one ranks.
package search

import (
	"github.com/sahilm/fuzzy"

	"github.com/linknest/linknest/internal/model"
)

// Result represents a fuzzy search match.
type Result struct {
	Entry          model.JoinedEntry
	MatchedIndexes []int
	Score          int
}

// entryTitles implements fuzzy.Source for a joined entry slice.
type entryTitles []model.JoinedEntry

func (et entryTitles) String(i int) string {
	return et[i].Title
}

func (et entryTitles) Len() int {
	return len(et)
}

// FuzzySearchEntries searches entries by title using fuzzy matching.
// Returns results sorted by match score (best first).
func FuzzySearchEntries(entries []model.JoinedEntry, query string) []Result {
	if query == "" {
		return nil
	}

	matches := fuzzy.FindFrom(query, entryTitles(entries))

	results := make([]Result, len(matches))
	for i, m := range matches {
		results[i] = Result{
			Entry:          entries[m.Index],
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}

	return results
}
