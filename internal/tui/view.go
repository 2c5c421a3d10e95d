package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/linknest/linknest/internal/model"
	"github.com/linknest/linknest/internal/tui/layout"
)

// renderView assembles the full screen.
func (a App) renderView() string {
	var b strings.Builder

	b.WriteString(a.renderHeader())
	b.WriteString("\n")
	b.WriteString(a.renderSearchBar())
	b.WriteString("\n")

	switch a.mode {
	case ModeHelp:
		b.WriteString(a.renderHelpOverlay())
	case ModeConfirmDelete:
		b.WriteString(a.renderConfirmDelete())
	default:
		b.WriteString(a.renderList())
	}

	b.WriteString("\n")
	b.WriteString(a.renderStatus())
	b.WriteString("\n")
	b.WriteString(a.styles.Help.Render(a.renderHints(a.getContextualHints())))

	return a.styles.App.Render(b.String())
}

// renderHeader renders the title line with the entry count.
func (a App) renderHeader() string {
	total := len(a.ctrl.Store().Entries())
	shown := len(a.rows)

	count := fmt.Sprintf("%d bookmarks", total)
	if shown != total {
		count = fmt.Sprintf("%d of %d bookmarks", shown, total)
	}

	return a.styles.Title.Render("linknest") + "  " + a.styles.Count.Render(count)
}

// renderSearchBar renders the search input or the active query.
func (a App) renderSearchBar() string {
	if a.mode == ModeSearch {
		return a.styles.SearchPrompt.Render("/") + a.search.Input.View()
	}
	if query := a.ctrl.Store().State().SearchQuery; query != "" {
		return a.styles.SearchPrompt.Render("/") + a.styles.Count.Render(query)
	}
	return ""
}

// renderList renders the visible slice of the entry list, with the
// inline edit form expanded below the entry being edited.
func (a App) renderList() string {
	height := layout.CalculateListHeight(a.height, a.cfg.List)
	rowWidth := layout.CalculateRowWidth(a.width, a.cfg.List)

	if len(a.rows) == 0 {
		if a.ctrl.Store().State().SearchQuery != "" {
			return a.styles.Empty.Render("  No matches")
		}
		return a.styles.Empty.Render("  No bookmarks yet. Run 'linknest add' to create one.")
	}

	visible := height
	if a.mode == ModeEdit {
		visible -= a.cfg.List.EditFormLines
		if visible < 1 {
			visible = 1
		}
	}

	start, end := layout.CalculateVisibleRange(visible, a.cursor, len(a.rows))
	editingID := a.ctrl.Store().State().EditingID

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(a.renderRow(i, rowWidth))
		b.WriteString("\n")
		if a.mode == ModeEdit && a.rows[i].ID == editingID {
			b.WriteString(a.renderEditForm())
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderRow renders one entry line: title, tag badge, dimmed URL.
func (a App) renderRow(i, rowWidth int) string {
	entry := a.rows[i]

	badge := ""
	badgeWidth := 0
	if entry.Tag != nil && *entry.Tag != "" {
		badge = a.styles.TagBadge.
			Background(lipgloss.Color(model.TagColor(*entry.Tag))).
			Render(*entry.Tag)
		badgeWidth = layout.VisibleLength(badge) + 1
	}

	// Title gets up to half the row, URL the rest.
	titleWidth := rowWidth/2 - badgeWidth
	if titleWidth < 8 {
		titleWidth = 8
	}
	title, _ := layout.TruncateText(entry.Title, titleWidth, a.cfg.Text)

	urlWidth := rowWidth - layout.VisibleLength(title) - badgeWidth - 3
	url, _ := layout.TruncateText(entry.URL, urlWidth, a.cfg.Text)

	line := title
	if badge != "" {
		line += " " + badge
	}
	line += "  " + a.styles.URL.Render(url)

	switch {
	case a.ctrl.Store().State().HighlightID == entry.ID:
		return a.styles.ItemHighlight.Render(line)
	case i == a.cursor && a.mode != ModeEdit:
		return a.styles.ItemSelected.Render(line)
	default:
		return a.styles.Item.Render(line)
	}
}

// renderEditForm renders the inline three-field edit form.
func (a App) renderEditForm() string {
	label := func(s string, focused bool) string {
		if focused {
			return a.styles.Title.Render(s)
		}
		return a.styles.FormLabel.Render(s)
	}

	lines := []string{
		label("Title ", a.form.Focus == fieldTitle) + a.form.TitleInput.View(),
		label("URL   ", a.form.Focus == fieldURL) + a.form.URLInput.View(),
		label("Tag   ", a.form.Focus == fieldTag) + a.form.TagInput.View(),
	}
	return a.styles.FormBox.Render(strings.Join(lines, "\n"))
}

// renderConfirmDelete renders the delete confirmation prompt.
func (a App) renderConfirmDelete() string {
	title := a.confirmID
	if entry := a.ctrl.Store().EntryByID(a.confirmID); entry != nil {
		title = entry.Title
	}

	width := layout.CalculateModalWidth(a.width, a.cfg.Modal.DefaultWidthPercent, a.cfg.Modal)
	content := fmt.Sprintf("Delete %q?\n\n", title) +
		a.styles.HintKey.Render("y/Enter") + " " + a.styles.HintDesc.Render("delete") + "  " +
		a.styles.HintKey.Render("n/Esc") + " " + a.styles.HintDesc.Render("keep")

	modal := a.styles.Modal.Width(width).Render(content)
	height := layout.CalculateListHeight(a.height, a.cfg.List)
	return lipgloss.Place(a.width, height, lipgloss.Center, lipgloss.Center, modal)
}

// renderHelpOverlay renders the full key reference.
func (a App) renderHelpOverlay() string {
	rows := []Hint{
		{Key: "j/k", Desc: "move down/up"},
		{Key: "gg/G", Desc: "go to top/bottom"},
		{Key: "Enter", Desc: "open in browser"},
		{Key: "y", Desc: "copy URL"},
		{Key: "/", Desc: "search title or tag"},
		{Key: "e", Desc: "edit title, URL, tag"},
		{Key: "d", Desc: "delete bookmark"},
		{Key: "r", Desc: "refresh"},
		{Key: "q", Desc: "quit"},
	}

	leftWidth := a.cfg.Modal.HelpLeftColumnWidth
	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Keys"))
	b.WriteString("\n\n")
	for _, h := range rows {
		b.WriteString(a.styles.HintKey.Render(padRight(h.Key, leftWidth)))
		b.WriteString(a.styles.HintDesc.Render(h.Desc))
		b.WriteString("\n")
	}

	width := layout.CalculateModalWidth(a.width, a.cfg.Modal.DefaultWidthPercent, a.cfg.Modal)
	modal := a.styles.Modal.Width(width).Render(strings.TrimRight(b.String(), "\n"))
	height := layout.CalculateListHeight(a.height, a.cfg.List)
	return lipgloss.Place(a.width, height, lipgloss.Center, lipgloss.Center, modal)
}

// renderStatus renders the transient status line.
func (a App) renderStatus() string {
	if a.status == "" {
		return ""
	}
	if a.statusIsErr {
		return a.styles.Error.Render(a.status)
	}
	return a.styles.Status.Render(a.status)
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
