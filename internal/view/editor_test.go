package view_test

import (
	"context"
	"errors"
	"testing"

	"github.com/linknest/linknest/internal/bookmarks"
	"github.com/linknest/linknest/internal/model"
	"github.com/linknest/linknest/internal/tags"
	"github.com/linknest/linknest/internal/view"
)

// editorFixture builds an editor over memory services with one tagged
// and one untagged bookmark, refreshed and ready.
func editorFixture(t *testing.T) (*view.Editor, *view.Store, *bookmarks.MemoryService, *tags.MemoryStore) {
	t.Helper()

	svc := bookmarks.NewMemoryService([]model.Node{
		{ID: "b1", Title: "GitHub", URL: "https://github.com"},
		{ID: "b2", Title: "Go Docs", URL: "https://go.dev/doc"},
	})
	tagStore := tags.NewMemoryStore()
	if err := tagStore.Set(context.Background(), "tag-b1", "work"); err != nil {
		t.Fatal(err)
	}

	store := view.NewStore(svc, tagStore, "en")
	ctrl := view.NewController(store)
	editor := view.NewEditor(ctrl, svc, tagStore)

	if err := store.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}
	return editor, store, svc, tagStore
}

func TestEditor_StartLoadsDraft(t *testing.T) {
	editor, store, _, _ := editorFixture(t)

	if !editor.Start("b1") {
		t.Fatal("expected editing to start")
	}
	if editor.Phase() != view.PhaseEditing {
		t.Errorf("expected PhaseEditing, got %v", editor.Phase())
	}

	draft := editor.Draft()
	if draft == nil {
		t.Fatal("expected a draft")
	}
	if draft.Title != "GitHub" || draft.URL != "https://github.com" || draft.Tag != "work" {
		t.Errorf("unexpected draft: %+v", draft)
	}
	if store.State().EditingID != "b1" {
		t.Errorf("expected editing ID b1, got %q", store.State().EditingID)
	}
}

func TestEditor_StartDefaultsMissingTagToEmpty(t *testing.T) {
	editor, _, _, _ := editorFixture(t)

	editor.Start("b2")
	if draft := editor.Draft(); draft == nil || draft.Tag != "" {
		t.Errorf("expected empty tag for untagged entry, got %+v", draft)
	}
}

func TestEditor_StartToggles(t *testing.T) {
	editor, store, _, _ := editorFixture(t)

	editor.Start("b1")
	if editor.Start("b1") {
		t.Error("starting the active entry should toggle editing off")
	}
	if editor.Phase() != view.PhaseIdle {
		t.Errorf("expected PhaseIdle after toggle, got %v", editor.Phase())
	}
	if store.State().EditingID != "" {
		t.Errorf("expected no editing ID, got %q", store.State().EditingID)
	}
}

func TestEditor_StartReplacesActiveEdit(t *testing.T) {
	editor, store, _, _ := editorFixture(t)

	editor.Start("b1")
	editor.Start("b2")

	if store.State().EditingID != "b2" {
		t.Errorf("expected active edit replaced by b2, got %q", store.State().EditingID)
	}
	if draft := editor.Draft(); draft == nil || draft.Title != "Go Docs" {
		t.Errorf("expected b2 draft, got %+v", draft)
	}
}

func TestEditor_StartRequestsScroll(t *testing.T) {
	svc := bookmarks.NewMemoryService([]model.Node{
		{ID: "b1", Title: "GitHub", URL: "https://github.com"},
	})
	tagStore := tags.NewMemoryStore()
	store := view.NewStore(svc, tagStore, "en")
	ctrl := view.NewController(store)

	var scrolls []view.ScrollRequest
	ctrl.OnScroll = func(req view.ScrollRequest) { scrolls = append(scrolls, req) }

	editor := view.NewEditor(ctrl, svc, tagStore)
	if err := store.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}

	editor.Start("b1")
	if len(scrolls) != 1 || scrolls[0].ID != "b1" {
		t.Errorf("expected scroll request for b1, got %v", scrolls)
	}
}

func TestEditor_SaveRejectsLongCustomTag(t *testing.T) {
	editor, store, svc, tagStore := editorFixture(t)
	ctx := context.Background()

	editor.Start("b1")
	editor.SetDraft(view.Draft{Title: "Renamed", URL: "https://github.com", Tag: "a b c d"})

	err := editor.Save(ctx, "b1")
	if err == nil {
		t.Fatal("expected validation error for 4-word tag")
	}
	var verr *model.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}

	// Editing stays active; no store write occurred
	if editor.Phase() != view.PhaseEditing {
		t.Errorf("expected PhaseEditing after rejected save, got %v", editor.Phase())
	}
	forest, _ := svc.GetTree(ctx)
	if forest[0].Title != "GitHub" {
		t.Errorf("bookmark store must be untouched, got title %q", forest[0].Title)
	}
	all, _ := tagStore.GetAll(ctx)
	if all["tag-b1"] != "work" {
		t.Errorf("tag store must be untouched, got %q", all["tag-b1"])
	}
	if store.State().EditingID != "b1" {
		t.Error("editing state must survive a rejected save")
	}
}

func TestEditor_SaveRejectsEmptyRequiredFields(t *testing.T) {
	tests := []struct {
		name  string
		draft view.Draft
		field string
	}{
		{"empty title", view.Draft{Title: "", URL: "https://github.com", Tag: "work"}, "title"},
		{"blank title", view.Draft{Title: "   ", URL: "https://github.com", Tag: "work"}, "title"},
		{"empty url", view.Draft{Title: "GitHub", URL: "", Tag: "work"}, "url"},
		{"blank url", view.Draft{Title: "GitHub", URL: "  ", Tag: "work"}, "url"},
		{"both empty", view.Draft{}, "title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			editor, store, svc, _ := editorFixture(t)
			ctx := context.Background()

			editor.Start("b1")
			editor.SetDraft(tt.draft)

			err := editor.Save(ctx, "b1")
			if err == nil {
				t.Fatal("expected validation error for empty required field")
			}
			var verr *model.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %T", err)
			}
			if verr.Field != tt.field {
				t.Errorf("expected field %q, got %q", tt.field, verr.Field)
			}

			if editor.Phase() != view.PhaseEditing {
				t.Errorf("expected PhaseEditing after rejected save, got %v", editor.Phase())
			}
			// No write happened: the entry keeps its URL and stays a
			// leaf, so it never drops out of the flattened view.
			forest, _ := svc.GetTree(ctx)
			if forest[0].Title != "GitHub" || forest[0].URL != "https://github.com" {
				t.Errorf("bookmark store must be untouched, got %+v", forest[0])
			}
			if forest[0].IsFolder() {
				t.Error("entry must not degrade into a folder")
			}
			if err := store.Refresh(ctx); err != nil {
				t.Fatal(err)
			}
			if store.EntryByID("b1") == nil {
				t.Error("entry must survive in the flattened view")
			}
		})
	}
}

func TestEditor_SaveCommitsBothStores(t *testing.T) {
	editor, store, svc, tagStore := editorFixture(t)
	ctx := context.Background()

	editor.Start("b1")
	editor.SetDraft(view.Draft{Title: "Renamed", URL: "https://renamed.example", Tag: "a b c"})

	if err := editor.Save(ctx, "b1"); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if editor.Phase() != view.PhaseIdle {
		t.Errorf("expected PhaseIdle after save, got %v", editor.Phase())
	}
	forest, _ := svc.GetTree(ctx)
	if forest[0].Title != "Renamed" || forest[0].URL != "https://renamed.example" {
		t.Errorf("bookmark store not updated: %+v", forest[0])
	}
	all, _ := tagStore.GetAll(ctx)
	if all["tag-b1"] != "a b c" {
		t.Errorf("tag store not updated: %q", all["tag-b1"])
	}

	// Post-save feedback: highlight set and view refreshed
	if store.State().HighlightID != "b1" {
		t.Errorf("expected highlight on saved entry, got %q", store.State().HighlightID)
	}
	entry := store.EntryByID("b1")
	if entry == nil || entry.Title != "Renamed" {
		t.Error("expected refreshed entry with new title")
	}
	if store.State().EditingID != "" {
		t.Error("expected editing cleared after save")
	}
}

func TestEditor_SavePresetTagAlwaysPasses(t *testing.T) {
	editor, _, _, tagStore := editorFixture(t)
	ctx := context.Background()

	editor.Start("b1")
	editor.SetDraft(view.Draft{Title: "GitHub", URL: "https://github.com", Tag: "Personal"})

	if err := editor.Save(ctx, "b1"); err != nil {
		t.Fatalf("preset tag save failed: %v", err)
	}
	all, _ := tagStore.GetAll(ctx)
	if all["tag-b1"] != "Personal" {
		t.Errorf("expected 'Personal', got %q", all["tag-b1"])
	}
}

func TestEditor_SaveWrapsStoreWriteError(t *testing.T) {
	svc := &failingService{MemoryService: bookmarks.NewMemoryService([]model.Node{
		{ID: "b1", Title: "GitHub", URL: "https://github.com"},
	})}
	tagStore := tags.NewMemoryStore()
	store := view.NewStore(svc, tagStore, "en")
	ctrl := view.NewController(store)
	editor := view.NewEditor(ctrl, svc, tagStore)
	ctx := context.Background()
	if err := store.Refresh(ctx); err != nil {
		t.Fatal(err)
	}

	editor.Start("b1")
	editor.SetDraft(view.Draft{Title: "X", URL: "https://x.example", Tag: "work"})

	err := editor.Save(ctx, "b1")
	if err == nil {
		t.Fatal("expected store write error")
	}
	var serr *model.StoreWriteError
	if !errors.As(err, &serr) {
		t.Fatalf("expected StoreWriteError, got %T", err)
	}
	if serr.Op != "bookmarks.update" {
		t.Errorf("unexpected op: %q", serr.Op)
	}

	// Failed dual-write: user can retry from the editing state
	if editor.Phase() != view.PhaseEditing {
		t.Errorf("expected PhaseEditing after failed save, got %v", editor.Phase())
	}
	// The tag store was never written
	all, _ := tagStore.GetAll(ctx)
	if len(all) != 0 {
		t.Errorf("tag store must stay untouched when the bookmark write fails, got %v", all)
	}
}

func TestEditor_Cancel(t *testing.T) {
	editor, store, svc, _ := editorFixture(t)
	ctx := context.Background()

	editor.Start("b1")
	editor.SetDraft(view.Draft{Title: "Scrapped", URL: "https://nowhere.example", Tag: "x"})
	editor.Cancel()

	if editor.Phase() != view.PhaseIdle {
		t.Errorf("expected PhaseIdle, got %v", editor.Phase())
	}
	if store.State().Draft != nil {
		t.Error("expected draft discarded")
	}
	forest, _ := svc.GetTree(ctx)
	if forest[0].Title != "GitHub" {
		t.Error("cancel must not write to the store")
	}
}

func TestEditor_DeleteLeavesTagOrphaned(t *testing.T) {
	editor, store, svc, tagStore := editorFixture(t)
	ctx := context.Background()

	if err := editor.Delete(ctx, "b1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	forest, _ := svc.GetTree(ctx)
	if len(forest) != 1 {
		t.Fatalf("expected 1 node left, got %d", len(forest))
	}
	if store.EntryByID("b1") != nil {
		t.Error("expected b1 gone from the view after refresh")
	}

	// The orphaned tag record stays; cleanup is the sweeper's job
	all, _ := tagStore.GetAll(ctx)
	if all["tag-b1"] != "work" {
		t.Error("delete must not remove the tag record")
	}
}

// failingService fails every Update call.
type failingService struct {
	*bookmarks.MemoryService
}

func (s *failingService) Update(ctx context.Context, id string, params bookmarks.UpdateParams) error {
	return errors.New("store unavailable")
}

func TestEditor_SaveEmptyTagClearsRecord(t *testing.T) {
	editor, store, _, tagStore := editorFixture(t)
	ctx := context.Background()

	editor.Start("b1")
	editor.SetDraft(view.Draft{Title: "GitHub", URL: "https://github.com", Tag: ""})
	if err := editor.Save(ctx, "b1"); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	all, _ := tagStore.GetAll(ctx)
	if _, ok := all["tag-b1"]; ok {
		t.Error("expected tag record deleted for empty draft tag")
	}
	if entry := store.EntryByID("b1"); entry == nil || entry.Tag != nil {
		t.Errorf("expected nil joined tag, got %+v", entry)
	}
}
