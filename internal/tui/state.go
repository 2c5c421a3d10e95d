package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/linknest/linknest/internal/model"
	"github.com/linknest/linknest/internal/tui/layout"
	"github.com/linknest/linknest/internal/view"
)

// Mode identifies which input mode the app is in.
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
	ModeEdit
	ModeConfirmDelete
	ModeHelp
)

// Edit form field indices, in tab order.
const (
	fieldTitle = iota
	fieldURL
	fieldTag
	fieldCount
)

// EditFormState holds state for the inline edit form.
type EditFormState struct {
	TitleInput textinput.Model
	URLInput   textinput.Model
	TagInput   textinput.Model
	Focus      int // fieldTitle, fieldURL, or fieldTag
}

// NewEditFormState creates a new EditFormState with initialized inputs.
func NewEditFormState(cfg layout.LayoutConfig) EditFormState {
	titleInput := textinput.New()
	titleInput.Placeholder = "Title"
	titleInput.CharLimit = cfg.Input.TitleCharLimit
	titleInput.Width = cfg.Input.StandardWidth

	urlInput := textinput.New()
	urlInput.Placeholder = "URL"
	urlInput.CharLimit = cfg.Input.URLCharLimit
	urlInput.Width = cfg.Input.StandardWidth

	tagInput := textinput.New()
	tagInput.Placeholder = "reading, videos, work, school, personal, or custom"
	tagInput.CharLimit = cfg.Input.TagCharLimit
	tagInput.Width = cfg.Input.StandardWidth

	return EditFormState{
		TitleInput: titleInput,
		URLInput:   urlInput,
		TagInput:   tagInput,
	}
}

// Load fills the form inputs from a draft and focuses the title field.
func (f *EditFormState) Load(draft view.Draft) {
	f.TitleInput.SetValue(draft.Title)
	f.URLInput.SetValue(draft.URL)
	f.TagInput.SetValue(draft.Tag)
	f.Focus = fieldTitle
	f.applyFocus()
}

// Draft returns the current form values as a draft.
func (f *EditFormState) Draft() view.Draft {
	return view.Draft{
		Title: strings.TrimSpace(f.TitleInput.Value()),
		URL:   strings.TrimSpace(f.URLInput.Value()),
		Tag:   strings.TrimSpace(f.TagInput.Value()),
	}
}

// Reset clears the form for a new session.
func (f *EditFormState) Reset() {
	f.TitleInput.Reset()
	f.URLInput.Reset()
	f.TagInput.Reset()
	f.Focus = fieldTitle
	f.applyFocus()
}

// FocusNext moves focus to the next field, wrapping around.
func (f *EditFormState) FocusNext() {
	f.Focus = (f.Focus + 1) % fieldCount
	f.applyFocus()
}

// FocusPrev moves focus to the previous field, wrapping around.
func (f *EditFormState) FocusPrev() {
	f.Focus = (f.Focus + fieldCount - 1) % fieldCount
	f.applyFocus()
}

// CyclePreset replaces the tag input with the next preset tag. Starting
// from a custom or empty tag it selects the first preset.
func (f *EditFormState) CyclePreset() {
	current := strings.ToLower(strings.TrimSpace(f.TagInput.Value()))
	next := model.PresetTags[0]
	for i, preset := range model.PresetTags {
		if preset == current {
			next = model.PresetTags[(i+1)%len(model.PresetTags)]
			break
		}
	}
	f.TagInput.SetValue(next)
	f.TagInput.CursorEnd()
}

func (f *EditFormState) applyFocus() {
	f.TitleInput.Blur()
	f.URLInput.Blur()
	f.TagInput.Blur()
	switch f.Focus {
	case fieldTitle:
		f.TitleInput.Focus()
	case fieldURL:
		f.URLInput.Focus()
	case fieldTag:
		f.TagInput.Focus()
	}
}

// SearchState holds state for the search input.
type SearchState struct {
	Input textinput.Model
}

// NewSearchState creates a new SearchState with an initialized input.
func NewSearchState(cfg layout.LayoutConfig) SearchState {
	input := textinput.New()
	input.Placeholder = "Search title or tag..."
	input.CharLimit = cfg.Input.SearchCharLimit
	input.Width = cfg.Input.SearchWidth
	return SearchState{Input: input}
}
