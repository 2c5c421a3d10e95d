package tui

import (
	"context"
	"errors"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/linknest/linknest/internal/bookmarks"
	"github.com/linknest/linknest/internal/model"
	"github.com/linknest/linknest/internal/tui/layout"
	"github.com/linknest/linknest/internal/view"
)

// BookmarkAddedMsg is sent into the program when another process
// reports a newly created bookmark over the notify channel.
type BookmarkAddedMsg struct {
	ID string
}

// StoreEventMsg is sent when the bookmark store reports an out-of-band
// mutation (removed, changed, moved).
type StoreEventMsg struct {
	Event bookmarks.Event
}

// HighlightExpiredMsg fires when a highlight timer elapses. The token
// identifies which highlight the timer was armed for; stale tokens are
// ignored.
type HighlightExpiredMsg struct {
	Token int
}

// ScrollSettleMsg fires after the scroll settle delay, once the list is
// expected to contain the target entry. If the entry is not in the
// current rows the request is dropped.
type ScrollSettleMsg struct {
	ID string
}

// effects collects highlight tokens and scroll requests emitted by the
// controller during an Update call, so they can be turned into timer
// commands afterwards. Shared by pointer across App copies.
type effects struct {
	highlights []int
	scrolls    []view.ScrollRequest
}

// App is the main bubbletea model for the bookmark list.
type App struct {
	ctrl   *view.Controller
	editor *view.Editor
	events <-chan bookmarks.Event
	keys   KeyMap
	styles Styles
	cfg    layout.LayoutConfig
	log    zerolog.Logger

	mode   Mode
	cursor int
	rows   []model.JoinedEntry // filtered, sorted entries currently shown

	search    SearchState
	form      EditFormState
	confirmID string // entry pending delete confirmation

	status      string
	statusIsErr bool

	fx *effects

	openURL        func(string) error
	writeClipboard func(string) error

	// For gg command
	lastKeyWasG bool

	// Window dimensions
	width  int
	height int
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	Controller *view.Controller
	Editor     *view.Editor

	// Events delivers bookmark store change notifications. Optional;
	// without it the list only refreshes on explicit actions.
	Events <-chan bookmarks.Event

	Keys         *KeyMap              // optional, uses default if nil
	Styles       *Styles              // optional, uses default if nil
	LayoutConfig *layout.LayoutConfig // optional, uses default if nil
	Logger       *zerolog.Logger      // optional, discards if nil

	OpenURL        func(string) error // optional, opens system browser if nil
	WriteClipboard func(string) error // optional, uses system clipboard if nil
}

// NewApp creates a new App with the given parameters.
func NewApp(params AppParams) App {
	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	styles := DefaultStyles()
	if params.Styles != nil {
		styles = *params.Styles
	}

	cfg := layout.DefaultConfig()
	if params.LayoutConfig != nil {
		cfg = *params.LayoutConfig
	}

	log := zerolog.Nop()
	if params.Logger != nil {
		log = *params.Logger
	}

	openURL := params.OpenURL
	if openURL == nil {
		openURL = openBrowser
	}

	writeClipboard := params.WriteClipboard
	if writeClipboard == nil {
		writeClipboard = clipboard.WriteAll
	}

	fx := &effects{}
	params.Controller.OnHighlight = func(token int) {
		fx.highlights = append(fx.highlights, token)
	}
	params.Controller.OnScroll = func(req view.ScrollRequest) {
		fx.scrolls = append(fx.scrolls, req)
	}

	app := App{
		ctrl:           params.Controller,
		editor:         params.Editor,
		events:         params.Events,
		keys:           keys,
		styles:         styles,
		cfg:            cfg,
		log:            log,
		search:         NewSearchState(cfg),
		form:           NewEditFormState(cfg),
		fx:             fx,
		openURL:        openURL,
		writeClipboard: writeClipboard,
		width:          80,
		height:         24,
	}

	if err := app.ctrl.Store().Refresh(context.Background()); err != nil {
		app.log.Error().Err(err).Msg("initial refresh failed")
		app.status = err.Error()
		app.statusIsErr = true
	}
	app.syncRows()
	return app
}

// Cursor returns the current cursor position.
func (a App) Cursor() int {
	return a.cursor
}

// Rows returns the entries currently shown.
func (a App) Rows() []model.JoinedEntry {
	return a.rows
}

// Mode returns the current input mode.
func (a App) Mode() Mode {
	return a.mode
}

// Status returns the transient status line.
func (a App) Status() string {
	return a.status
}

// WithDimensions returns a copy of the app with fixed dimensions.
func (a App) WithDimensions(width, height int) App {
	a.width = width
	a.height = height
	return a
}

// syncRows rebuilds the visible rows from the view store and clamps the
// cursor.
func (a *App) syncRows() {
	a.rows = a.ctrl.Store().Filtered()
	if a.cursor >= len(a.rows) {
		a.cursor = len(a.rows) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

// setError records an error on the status line.
func (a *App) setError(err error) {
	a.status = err.Error()
	a.statusIsErr = true
}

// setStatus records an informational status line.
func (a *App) setStatus(s string) {
	a.status = s
	a.statusIsErr = false
}

// pendingCmds converts collected controller effects into timer commands.
func (a *App) pendingCmds() []tea.Cmd {
	var cmds []tea.Cmd
	for _, token := range a.fx.highlights {
		token := token
		cmds = append(cmds, tea.Tick(view.HighlightDuration, func(time.Time) tea.Msg {
			return HighlightExpiredMsg{Token: token}
		}))
	}
	for _, req := range a.fx.scrolls {
		id := req.ID
		cmds = append(cmds, tea.Tick(view.ScrollSettleDelay, func(time.Time) tea.Msg {
			return ScrollSettleMsg{ID: id}
		}))
	}
	a.fx.highlights = nil
	a.fx.scrolls = nil
	return cmds
}

// waitForEvent blocks on the store event channel and delivers the next
// event as a message.
func waitForEvent(ch <-chan bookmarks.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return StoreEventMsg{Event: ev}
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	if a.events == nil {
		return nil
	}
	return waitForEvent(a.events)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case BookmarkAddedMsg:
		a.log.Debug().Str("id", msg.ID).Msg("bookmark added elsewhere")
		if err := a.ctrl.HandleBookmarkAdded(context.Background(), msg.ID); err != nil {
			a.setError(err)
		}
		a.syncRows()
		return a, tea.Batch(a.pendingCmds()...)

	case StoreEventMsg:
		a.log.Debug().Int("kind", int(msg.Event.Kind)).Str("id", msg.Event.ID).Msg("store event")
		if err := a.ctrl.HandleStoreEvent(context.Background(), msg.Event); err != nil {
			a.setError(err)
		}
		a.syncRows()
		return a, waitForEvent(a.events)

	case HighlightExpiredMsg:
		a.ctrl.ExpireHighlight(msg.Token)
		return a, nil

	case ScrollSettleMsg:
		for i := range a.rows {
			if a.rows[i].ID == msg.ID {
				a.cursor = i
				break
			}
		}
		return a, nil

	case tea.KeyMsg:
		switch a.mode {
		case ModeSearch:
			return a.updateSearch(msg)
		case ModeEdit:
			return a.updateEdit(msg)
		case ModeConfirmDelete:
			return a.updateConfirmDelete(msg)
		case ModeHelp:
			return a.updateHelp(msg)
		default:
			return a.updateNormal(msg)
		}
	}

	return a, nil
}

// updateNormal handles keys in the main list mode.
func (a App) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle gg sequence
	if key.Matches(msg, a.keys.Top) {
		if a.lastKeyWasG {
			a.cursor = 0
			a.lastKeyWasG = false
			return a, nil
		}
		a.lastKeyWasG = true
		return a, nil
	}
	a.lastKeyWasG = false

	// A new action clears the previous status line.
	a.status = ""
	a.statusIsErr = false

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Down):
		if len(a.rows) > 0 && a.cursor < len(a.rows)-1 {
			a.cursor++
		}

	case key.Matches(msg, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}

	case key.Matches(msg, a.keys.Bottom):
		if len(a.rows) > 0 {
			a.cursor = len(a.rows) - 1
		}

	case key.Matches(msg, a.keys.Open):
		if entry := a.selectedEntry(); entry != nil {
			if err := a.openURL(entry.URL); err != nil {
				a.setError(err)
			}
		}

	case key.Matches(msg, a.keys.YankURL):
		if entry := a.selectedEntry(); entry != nil {
			if err := a.writeClipboard(entry.URL); err != nil {
				a.setError(err)
			} else {
				a.setStatus("URL copied")
			}
		}

	case key.Matches(msg, a.keys.Edit):
		if entry := a.selectedEntry(); entry != nil {
			a.editor.Start(entry.ID)
			if a.editor.Phase() == view.PhaseEditing {
				a.form.Load(*a.editor.Draft())
				a.mode = ModeEdit
				return a, tea.Batch(a.pendingCmds()...)
			}
		}

	case key.Matches(msg, a.keys.Delete):
		if entry := a.selectedEntry(); entry != nil {
			a.confirmID = entry.ID
			a.mode = ModeConfirmDelete
		}

	case key.Matches(msg, a.keys.Search):
		a.search.Input.SetValue(a.ctrl.Store().State().SearchQuery)
		a.search.Input.CursorEnd()
		a.search.Input.Focus()
		a.mode = ModeSearch

	case key.Matches(msg, a.keys.Cancel):
		if a.ctrl.Store().State().SearchQuery != "" {
			a.ctrl.Store().SetSearch("")
			a.syncRows()
		}

	case key.Matches(msg, a.keys.Refresh):
		if err := a.ctrl.Store().Refresh(context.Background()); err != nil {
			a.setError(err)
		}
		a.syncRows()

	case key.Matches(msg, a.keys.Help):
		a.mode = ModeHelp
	}

	return a, nil
}

// updateSearch handles keys while the search input is focused. The
// filter is applied live on every keystroke.
func (a App) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Confirm):
		a.search.Input.Blur()
		a.mode = ModeNormal
		return a, nil

	case key.Matches(msg, a.keys.Cancel):
		a.search.Input.Reset()
		a.search.Input.Blur()
		a.ctrl.Store().SetSearch("")
		a.syncRows()
		a.mode = ModeNormal
		return a, nil
	}

	var cmd tea.Cmd
	a.search.Input, cmd = a.search.Input.Update(msg)
	a.ctrl.Store().SetSearch(a.search.Input.Value())
	a.syncRows()
	return a, cmd
}

// updateEdit handles keys while the inline edit form is open.
func (a App) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Cancel):
		a.editor.Cancel()
		a.form.Reset()
		a.status = ""
		a.statusIsErr = false
		a.mode = ModeNormal
		return a, nil

	case key.Matches(msg, a.keys.NextField):
		a.form.FocusNext()
		return a, nil

	case key.Matches(msg, a.keys.PrevField):
		a.form.FocusPrev()
		return a, nil

	case key.Matches(msg, a.keys.CycleTag):
		a.form.CyclePreset()
		return a, nil

	case key.Matches(msg, a.keys.Confirm):
		return a.saveEdit()
	}

	var cmd tea.Cmd
	switch a.form.Focus {
	case fieldTitle:
		a.form.TitleInput, cmd = a.form.TitleInput.Update(msg)
	case fieldURL:
		a.form.URLInput, cmd = a.form.URLInput.Update(msg)
	case fieldTag:
		a.form.TagInput, cmd = a.form.TagInput.Update(msg)
	}
	return a, cmd
}

// saveEdit commits the edit form. Validation and write failures keep
// the form open so the user can correct and retry.
func (a App) saveEdit() (tea.Model, tea.Cmd) {
	id := a.ctrl.Store().State().EditingID
	if id == "" {
		a.mode = ModeNormal
		return a, nil
	}

	draft := a.form.Draft()
	if url := strings.TrimSpace(draft.URL); url != "" {
		draft.URL = model.NormalizeURL(url)
	}
	a.editor.SetDraft(draft)

	err := a.editor.Save(context.Background(), id)
	if err != nil {
		var verr *model.ValidationError
		if errors.As(err, &verr) {
			a.setError(verr)
			return a, nil
		}
		a.log.Error().Err(err).Str("id", id).Msg("save failed")
		a.setError(err)
		if a.editor.Phase() != view.PhaseEditing {
			// Writes committed but the refresh failed; close the form.
			a.form.Reset()
			a.mode = ModeNormal
			a.syncRows()
		}
		return a, tea.Batch(a.pendingCmds()...)
	}

	a.form.Reset()
	a.status = ""
	a.statusIsErr = false
	a.mode = ModeNormal
	a.syncRows()
	return a, tea.Batch(a.pendingCmds()...)
}

// updateConfirmDelete handles the delete confirmation prompt.
func (a App) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "y", key.Matches(msg, a.keys.Confirm):
		id := a.confirmID
		a.confirmID = ""
		a.mode = ModeNormal
		if err := a.editor.Delete(context.Background(), id); err != nil {
			a.setError(err)
		} else {
			a.setStatus("bookmark deleted")
		}
		a.syncRows()
		return a, nil

	case msg.String() == "n", key.Matches(msg, a.keys.Cancel):
		a.confirmID = ""
		a.mode = ModeNormal
		return a, nil
	}
	return a, nil
}

// updateHelp handles keys while the help overlay is shown.
func (a App) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Help),
		key.Matches(msg, a.keys.Quit),
		key.Matches(msg, a.keys.Cancel):
		a.mode = ModeNormal
	}
	return a, nil
}

// selectedEntry returns the entry under the cursor, or nil.
func (a App) selectedEntry() *model.JoinedEntry {
	if len(a.rows) == 0 || a.cursor >= len(a.rows) {
		return nil
	}
	return &a.rows[a.cursor]
}

// View implements tea.Model.
func (a App) View() string {
	return a.renderView()
}

// openBrowser opens a URL with the platform's default handler.
func openBrowser(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return exec.Command("xdg-open", url).Start()
	}
}
