package model

// FlatEntry is a read-only projection of a leaf node. It is recreated
// on every flatten pass and never persisted.
type FlatEntry struct {
	ID    string
	Title string
	URL   string
}

// JoinedEntry is a FlatEntry merged with its externally stored tag.
// Tag is nil when no tag record exists for the entry; an empty string
// tag is distinct from absent.
type JoinedEntry struct {
	ID    string
	Title string
	URL   string
	Tag   *string
}

// TagKey derives the tag-store key for a bookmark ID.
func TagKey(id string) string {
	return "tag-" + id
}

// Flatten walks a bookmark forest in pre-order and returns one
// FlatEntry per leaf node. Folder nodes are never emitted, but their
// descendants are. The walk is pure and runs in time proportional to
// the tree size.
func Flatten(forest []Node) []FlatEntry {
	var entries []FlatEntry
	for _, node := range forest {
		if node.URL != "" {
			entries = append(entries, FlatEntry{
				ID:    node.ID,
				Title: node.Title,
				URL:   node.URL,
			})
		}
		if len(node.Children) > 0 {
			entries = append(entries, Flatten(node.Children)...)
		}
	}
	return entries
}

// Join merges each flat entry with its tag from a full tag-store
// snapshot, looked up under TagKey(id). The result has the same length
// and order as the input; missing keys map to a nil Tag.
func Join(entries []FlatEntry, tags map[string]string) []JoinedEntry {
	joined := make([]JoinedEntry, len(entries))
	for i, e := range entries {
		joined[i] = JoinedEntry{
			ID:    e.ID,
			Title: e.Title,
			URL:   e.URL,
		}
		if tag, ok := tags[TagKey(e.ID)]; ok {
			joined[i].Tag = &tag
		}
	}
	return joined
}
