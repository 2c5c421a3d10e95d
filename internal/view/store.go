// Package view is the synchronized view model: it flattens the
// hierarchical bookmark tree into an ordered list, joins each entry
// with its externally stored tag, reconciles the joined view against
// asynchronous store mutations and cross-context creation
// notifications, and drives the inline editing state machine.
package view

import (
	"context"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/linknest/linknest/internal/bookmarks"
	"github.com/linknest/linknest/internal/model"
	"github.com/linknest/linknest/internal/tags"
)

// Draft holds the in-progress edit of one entry.
type Draft struct {
	Title string
	URL   string
	Tag   string
}

// State is the single view state instance for the presentation
// session. At most one entry is highlighted and at most one is being
// edited at a time; "" means none.
type State struct {
	Entries     []model.JoinedEntry
	SearchQuery string
	HighlightID string
	EditingID   string
	Draft       *Draft
}

// Store owns the State and derives Entries from the two external
// stores. It belongs to a single cooperative execution context; all
// methods must be called from that context.
type Store struct {
	bookmarks bookmarks.Service
	tags      tags.Store
	collator  *collate.Collator

	state State

	// highlightGen identifies the current highlight request so a
	// replaced timer cannot clear a newer highlight.
	highlightGen int
}

// NewStore creates a Store deriving from the given services, sorting
// titles with the collation rules of the given BCP 47 locale.
func NewStore(svc bookmarks.Service, tagStore tags.Store, locale string) *Store {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &Store{
		bookmarks: svc,
		tags:      tagStore,
		collator:  collate.New(tag, collate.Loose),
	}
}

// Refresh re-derives Entries from scratch: one tree read, one bulk tag
// read, flatten, join, re-sort. The sort order is recomputed fully on
// every refresh, never incrementally maintained. Search, highlight,
// and editing state are left untouched; overlapping refreshes follow a
// last-writer-wins policy.
func (s *Store) Refresh(ctx context.Context) error {
	forest, err := s.bookmarks.GetTree(ctx)
	if err != nil {
		return err
	}
	snapshot, err := s.tags.GetAll(ctx)
	if err != nil {
		return err
	}

	joined := model.Join(model.Flatten(forest), snapshot)
	sort.SliceStable(joined, func(i, j int) bool {
		return s.collator.CompareString(joined[i].Title, joined[j].Title) < 0
	})

	s.state.Entries = joined
	return nil
}

// State returns the current view state.
func (s *Store) State() State {
	return s.state
}

// Entries returns the current joined, sorted entry list.
func (s *Store) Entries() []model.JoinedEntry {
	return s.state.Entries
}

// EntryByID returns the entry with the given ID, or nil.
func (s *Store) EntryByID(id string) *model.JoinedEntry {
	for i := range s.state.Entries {
		if s.state.Entries[i].ID == id {
			return &s.state.Entries[i]
		}
	}
	return nil
}

// SetSearch sets the search query. Pure state transition.
func (s *Store) SetSearch(query string) {
	s.state.SearchQuery = query
}

// SetHighlight marks one entry as highlighted, replacing any previous
// highlight, and returns a generation token for the expiry timer.
// The previous timer's token is thereby invalidated: expiries replace,
// never stack.
func (s *Store) SetHighlight(id string) int {
	s.state.HighlightID = id
	s.highlightGen++
	return s.highlightGen
}

// ExpireHighlight clears the highlight if gen still identifies the
// current highlight request. Stale tokens are ignored.
func (s *Store) ExpireHighlight(gen int) {
	if gen == s.highlightGen {
		s.state.HighlightID = ""
	}
}

// SetEditing records which entry is being edited and its draft. Pure
// state transition; pass "" and nil to clear.
func (s *Store) SetEditing(id string, draft *Draft) {
	s.state.EditingID = id
	s.state.Draft = draft
}

// Filtered returns Entries narrowed by the current search query.
func (s *Store) Filtered() []model.JoinedEntry {
	return Filter(s.state.Entries, s.state.SearchQuery)
}
