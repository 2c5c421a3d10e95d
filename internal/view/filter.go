package view

import (
	"strings"

	"github.com/linknest/linknest/internal/model"
)

// Filter narrows entries by a query string. An entry passes if the
// query is a case-insensitive substring of its title, or of its tag
// when one is present. The empty query passes everything. Order is
// inherited unchanged; there is no ranking.
func Filter(entries []model.JoinedEntry, query string) []model.JoinedEntry {
	if query == "" {
		return entries
	}

	q := strings.ToLower(query)
	var out []model.JoinedEntry
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Title), q) {
			out = append(out, e)
			continue
		}
		if e.Tag != nil && strings.Contains(strings.ToLower(*e.Tag), q) {
			out = append(out, e)
		}
	}
	return out
}
