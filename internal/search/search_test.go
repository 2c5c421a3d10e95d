package search_test

import (
	"testing"

	"github.com/linknest/linknest/internal/model"
	"github.com/linknest/linknest/internal/search"
)

func entries(titles ...string) []model.JoinedEntry {
	out := make([]model.JoinedEntry, len(titles))
	for i, title := range titles {
		out[i] = model.JoinedEntry{
			ID:    title,
			Title: title,
			URL:   "https://example.com",
		}
	}
	return out
}

func TestFuzzySearchEntries_EmptyQuery(t *testing.T) {
	results := search.FuzzySearchEntries(entries("GitHub"), "")
	if len(results) != 0 {
		t.Errorf("expected 0 results for empty query, got %d", len(results))
	}
}

func TestFuzzySearchEntries_ExactMatch(t *testing.T) {
	results := search.FuzzySearchEntries(entries("GitHub", "GitLab"), "GitHub")

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Entry.Title != "GitHub" {
		t.Errorf("expected GitHub, got %s", results[0].Entry.Title)
	}
}

func TestFuzzySearchEntries_FuzzyMatch(t *testing.T) {
	results := search.FuzzySearchEntries(entries("TanStack Router", "React Router"), "tanrou")

	if len(results) < 1 {
		t.Fatalf("expected at least 1 result for 'tanrou', got %d", len(results))
	}
	if results[0].Entry.Title != "TanStack Router" {
		t.Errorf("expected TanStack Router as first result, got %s", results[0].Entry.Title)
	}
}

func TestFuzzySearchEntries_MultipleMatches(t *testing.T) {
	results := search.FuzzySearchEntries(entries("GitHub", "GitLab", "Gitea"), "git")

	if len(results) != 3 {
		t.Errorf("expected 3 results for 'git', got %d", len(results))
	}
}

func TestFuzzySearchEntries_NoMatch(t *testing.T) {
	results := search.FuzzySearchEntries(entries("GitHub"), "xyz123")

	if len(results) != 0 {
		t.Errorf("expected 0 results for 'xyz123', got %d", len(results))
	}
}

func TestFuzzySearchEntries_SortedByScore(t *testing.T) {
	results := search.FuzzySearchEntries(entries("React Router Documentation", "Router"), "router")

	if len(results) < 2 {
		t.Fatalf("expected at least 2 results, got %d", len(results))
	}
	// "Router" should rank higher (exact match)
	if results[0].Entry.Title != "Router" {
		t.Errorf("expected 'Router' as first result (exact match), got %s", results[0].Entry.Title)
	}
}
