package view

import (
	"context"
	"strings"

	"github.com/linknest/linknest/internal/bookmarks"
	"github.com/linknest/linknest/internal/model"
	"github.com/linknest/linknest/internal/tags"
)

// Phase is the edit state machine phase. Only one entry may be in
// Editing or Saving at a time.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseEditing
	PhaseSaving
)

// Editor governs inline editing of one entry: draft loading, tag
// validation, and the dual-store write on commit. Saves re-enter the
// Controller's refresh path.
type Editor struct {
	store     *Store
	bookmarks bookmarks.Service
	tags      tags.Store
	ctrl      *Controller

	phase Phase
}

// NewEditor creates an Editor issuing writes to the given services and
// routing post-save feedback through the controller.
func NewEditor(ctrl *Controller, svc bookmarks.Service, tagStore tags.Store) *Editor {
	return &Editor{
		store:     ctrl.Store(),
		bookmarks: svc,
		tags:      tagStore,
		ctrl:      ctrl,
	}
}

// Phase returns the current state machine phase.
func (e *Editor) Phase() Phase {
	return e.phase
}

// Start begins editing the entry with the given ID. If that entry is
// already being edited, editing stops instead (toggle semantics).
// Starting on another entry while one is active replaces the active
// edit with no merge and no warning. Returns true if editing is now
// active.
func (e *Editor) Start(id string) bool {
	if e.store.State().EditingID == id {
		e.store.SetEditing("", nil)
		e.phase = PhaseIdle
		return false
	}

	entry := e.store.EntryByID(id)
	if entry == nil {
		return false
	}

	draft := &Draft{Title: entry.Title, URL: entry.URL}
	if entry.Tag != nil {
		draft.Tag = *entry.Tag
	}
	e.store.SetEditing(id, draft)
	e.phase = PhaseEditing
	e.ctrl.scroll(id)
	return true
}

// Draft returns the current draft, or nil when idle.
func (e *Editor) Draft() *Draft {
	return e.store.State().Draft
}

// SetDraft replaces the draft while editing.
func (e *Editor) SetDraft(draft Draft) {
	if e.phase != PhaseEditing {
		return
	}
	e.store.SetEditing(e.store.State().EditingID, &draft)
}

// Save validates the draft and commits it: an update to the bookmark
// store and a set to the tag store, two independent writes with no
// transaction across them. A ValidationError aborts before any write
// and editing stays active. A write failure is wrapped in
// StoreWriteError; no compensating rollback is attempted, so a failed
// tag write after a successful bookmark write leaves an untagged (or
// stale-tagged) bookmark. On success the entry is highlighted, the
// view refreshed, a scroll requested, and the machine returns to idle.
func (e *Editor) Save(ctx context.Context, id string) error {
	if e.phase != PhaseEditing || e.store.State().EditingID != id {
		return nil
	}
	draft := e.store.State().Draft
	if draft == nil {
		return nil
	}

	if strings.TrimSpace(draft.Title) == "" {
		return &model.ValidationError{Field: "title", Message: "title is required"}
	}
	if strings.TrimSpace(draft.URL) == "" {
		return &model.ValidationError{Field: "url", Message: "URL is required"}
	}
	if err := model.ValidateTag(draft.Tag); err != nil {
		return err
	}

	e.phase = PhaseSaving

	err := e.bookmarks.Update(ctx, id, bookmarks.UpdateParams{
		Title: &draft.Title,
		URL:   &draft.URL,
	})
	if err != nil {
		e.phase = PhaseEditing
		return &model.StoreWriteError{Op: "bookmarks.update", Err: err}
	}

	// An empty draft clears the tag record rather than storing the
	// empty string, so absent and empty stay distinguishable.
	if draft.Tag == "" {
		if err := e.tags.Delete(ctx, model.TagKey(id)); err != nil {
			e.phase = PhaseEditing
			return &model.StoreWriteError{Op: "tags.delete", Err: err}
		}
	} else if err := e.tags.Set(ctx, model.TagKey(id), draft.Tag); err != nil {
		e.phase = PhaseEditing
		return &model.StoreWriteError{Op: "tags.set", Err: err}
	}

	e.ctrl.highlight(id)
	if err := e.store.Refresh(ctx); err != nil {
		// Writes are committed; only the feedback cycle degrades.
		e.store.SetEditing("", nil)
		e.phase = PhaseIdle
		return err
	}
	e.ctrl.scroll(id)

	e.store.SetEditing("", nil)
	e.phase = PhaseIdle
	return nil
}

// Cancel discards the draft with no external writes.
func (e *Editor) Cancel() {
	e.store.SetEditing("", nil)
	e.phase = PhaseIdle
}

// Delete removes the entry from the bookmark store and refreshes. The
// entry's tag record is intentionally left behind: an orphaned key is
// a harmless lookup miss, never a collision with a future ID.
func (e *Editor) Delete(ctx context.Context, id string) error {
	if err := e.bookmarks.Remove(ctx, id); err != nil {
		return &model.StoreWriteError{Op: "bookmarks.remove", Err: err}
	}
	if e.store.State().EditingID == id {
		e.store.SetEditing("", nil)
		e.phase = PhaseIdle
	}
	return e.store.Refresh(ctx)
}
