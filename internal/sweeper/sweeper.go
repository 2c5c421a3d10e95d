// Package sweeper removes orphaned tag records. Deleting a bookmark
// never removes its tag-store key, so orphans accumulate; they are
// harmless lookup misses, but a sweep keeps long-lived stores tidy.
package sweeper

import (
	"context"
	"fmt"
	"strings"

	"github.com/linknest/linknest/internal/bookmarks"
	"github.com/linknest/linknest/internal/model"
	"github.com/linknest/linknest/internal/tags"
)

// Result reports what a sweep removed.
type Result struct {
	Scanned int      // tag records examined
	Removed []string // orphaned keys deleted
}

// Summary returns a one-line human-readable report.
func (r Result) Summary() string {
	return fmt.Sprintf("Scanned %d tag records, removed %d orphans", r.Scanned, len(r.Removed))
}

// Sweep deletes every tag record whose bookmark no longer exists in
// the tree. Keys not following the tag-<id> form are left alone.
func Sweep(ctx context.Context, svc bookmarks.Service, tagStore tags.Store) (Result, error) {
	forest, err := svc.GetTree(ctx)
	if err != nil {
		return Result{}, err
	}
	snapshot, err := tagStore.GetAll(ctx)
	if err != nil {
		return Result{}, err
	}

	live := make(map[string]bool)
	var walk func(nodes []model.Node)
	walk = func(nodes []model.Node) {
		for _, n := range nodes {
			live[n.ID] = true
			walk(n.Children)
		}
	}
	walk(forest)

	result := Result{Scanned: len(snapshot)}
	for key := range snapshot {
		id, ok := strings.CutPrefix(key, "tag-")
		if !ok {
			continue
		}
		if live[id] {
			continue
		}
		if err := tagStore.Delete(ctx, key); err != nil {
			return result, err
		}
		result.Removed = append(result.Removed, key)
	}

	return result, nil
}
