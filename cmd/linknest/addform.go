package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/linknest/linknest/internal/bookmarks"
	"github.com/linknest/linknest/internal/model"
	"github.com/linknest/linknest/internal/notify"
)

var (
	formTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("99")).
			Bold(true).
			MarginBottom(1)

	formLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	formErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	formHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			MarginTop(1)
)

// Creation form field indices, in tab order.
const (
	addFieldURL = iota
	addFieldTitle
	addFieldTag
	addFieldCount
)

// addForm is the creation window: a standalone form that writes the
// bookmark and its tag, then reports the new ID to any running TUI.
type addForm struct {
	urlInput   textinput.Model
	titleInput textinput.Model
	tagInput   textinput.Model
	focus      int

	errMsg    string
	submitted bool
	cancelled bool
}

func newAddForm(prefillURL, prefillTitle string) addForm {
	urlInput := textinput.New()
	urlInput.Placeholder = "example.com"
	urlInput.CharLimit = 500
	urlInput.Width = 50
	urlInput.SetValue(prefillURL)
	urlInput.Focus()

	titleInput := textinput.New()
	titleInput.Placeholder = "Title"
	titleInput.CharLimit = 100
	titleInput.Width = 50
	titleInput.SetValue(prefillTitle)

	tagInput := textinput.New()
	tagInput.Placeholder = "reading, videos, work, school, personal, or custom"
	tagInput.CharLimit = 60
	tagInput.Width = 50

	return addForm{
		urlInput:   urlInput,
		titleInput: titleInput,
		tagInput:   tagInput,
	}
}

// Init implements tea.Model.
func (f addForm) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (f addForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f.updateFocused(msg)
	}

	switch keyMsg.Type {
	case tea.KeyEsc, tea.KeyCtrlC:
		f.cancelled = true
		return f, tea.Quit

	case tea.KeyTab:
		f.focus = (f.focus + 1) % addFieldCount
		f.applyFocus()
		return f, nil

	case tea.KeyShiftTab:
		f.focus = (f.focus + addFieldCount - 1) % addFieldCount
		f.applyFocus()
		return f, nil

	case tea.KeyCtrlP:
		f.cyclePreset()
		return f, nil

	case tea.KeyEnter:
		if err := f.validate(); err != nil {
			f.errMsg = err.Error()
			return f, nil
		}
		f.submitted = true
		return f, tea.Quit
	}

	f.errMsg = ""
	return f.updateFocused(msg)
}

func (f addForm) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch f.focus {
	case addFieldURL:
		f.urlInput, cmd = f.urlInput.Update(msg)
	case addFieldTitle:
		f.titleInput, cmd = f.titleInput.Update(msg)
	case addFieldTag:
		f.tagInput, cmd = f.tagInput.Update(msg)
	}
	return f, cmd
}

func (f *addForm) applyFocus() {
	f.urlInput.Blur()
	f.titleInput.Blur()
	f.tagInput.Blur()
	switch f.focus {
	case addFieldURL:
		f.urlInput.Focus()
	case addFieldTitle:
		f.titleInput.Focus()
	case addFieldTag:
		f.tagInput.Focus()
	}
}

// cyclePreset replaces the tag value with the next preset tag.
func (f *addForm) cyclePreset() {
	current := strings.ToLower(strings.TrimSpace(f.tagInput.Value()))
	next := model.PresetTags[0]
	for i, preset := range model.PresetTags {
		if preset == current {
			next = model.PresetTags[(i+1)%len(model.PresetTags)]
			break
		}
	}
	f.tagInput.SetValue(next)
	f.tagInput.CursorEnd()
	f.focus = addFieldTag
	f.applyFocus()
}

// validate checks required fields and the tag word limit.
func (f addForm) validate() error {
	if strings.TrimSpace(f.urlInput.Value()) == "" {
		return &model.ValidationError{Field: "url", Message: "URL is required"}
	}
	if strings.TrimSpace(f.titleInput.Value()) == "" {
		return &model.ValidationError{Field: "title", Message: "title is required"}
	}
	tag := strings.TrimSpace(f.tagInput.Value())
	if tag == "" {
		return &model.ValidationError{Field: "tag", Message: "tag is required"}
	}
	return model.ValidateTag(tag)
}

// View implements tea.Model.
func (f addForm) View() string {
	var b strings.Builder
	b.WriteString(formTitleStyle.Render("Add bookmark"))
	b.WriteString("\n")
	b.WriteString(formLabelStyle.Render("URL   ") + f.urlInput.View())
	b.WriteString("\n")
	b.WriteString(formLabelStyle.Render("Title ") + f.titleInput.View())
	b.WriteString("\n")
	b.WriteString(formLabelStyle.Render("Tag   ") + f.tagInput.View())
	b.WriteString("\n")
	if f.errMsg != "" {
		b.WriteString(formErrorStyle.Render(f.errMsg))
		b.WriteString("\n")
	}
	b.WriteString(formHelpStyle.Render("Tab: next field  Ctrl+p: preset tag  Enter: save  Esc: cancel"))
	b.WriteString("\n")
	return b.String()
}

// runAdd opens the creation window. Optional args prefill the URL and
// title.
func runAdd(args []string) {
	var prefillURL, prefillTitle string
	if len(args) >= 1 {
		prefillURL = args[0]
	}
	if len(args) >= 2 {
		prefillTitle = strings.Join(args[1:], " ")
	}

	e, err := setup()
	if err != nil {
		fatal("Error: %v", err)
	}
	defer e.close()

	program := tea.NewProgram(newAddForm(prefillURL, prefillTitle))
	finalModel, err := program.Run()
	if err != nil {
		fatal("Error running form: %v", err)
	}

	form := finalModel.(addForm)
	if form.cancelled || !form.submitted {
		os.Exit(0)
	}

	ctx := context.Background()
	url := model.NormalizeURL(strings.TrimSpace(form.urlInput.Value()))
	title := strings.TrimSpace(form.titleInput.Value())
	tag := strings.TrimSpace(form.tagInput.Value())

	node, err := e.svc.Create(ctx, bookmarks.CreateParams{Title: title, URL: url})
	if err != nil {
		fatal("Error creating bookmark: %v", err)
	}

	// The form requires a tag, so this always writes one record.
	if err := e.tagStore.Set(ctx, model.TagKey(node.ID), tag); err != nil {
		// The bookmark is committed; report the partial write and move on.
		fmt.Fprintf(os.Stderr, "Warning: bookmark saved but tag write failed: %v\n", err)
		e.log.Error().Err(err).Str("id", node.ID).Msg("tag write failed after create")
	}

	// Best-effort: no listener just means no TUI is running.
	if err := notify.Notify(e.cfg.NotifyAddr, notify.Message{
		Type:       notify.TypeBookmarkAdded,
		BookmarkID: node.ID,
	}); err != nil {
		e.log.Debug().Err(err).Msg("no notify listener")
	}

	fmt.Printf("Added: %s\n", title)
}
