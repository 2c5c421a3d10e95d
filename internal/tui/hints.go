package tui

import "strings"

// Hint represents a single keybind hint for display.
type Hint struct {
	Key  string // Display key (e.g., "j/k", "Enter")
	Desc string // Short description (e.g., "move", "open")
}

// renderHint renders a single hint as "key:desc" with styling.
func (a App) renderHint(h Hint) string {
	return a.styles.HintKey.Render(h.Key) + ":" + a.styles.HintDesc.Render(h.Desc)
}

// renderHints renders hints in horizontal format for the bottom bar: "j/k:move /:search e:edit"
func (a App) renderHints(hints HintSet) string {
	allHints := hints.All()
	if len(allHints) == 0 {
		return ""
	}

	parts := make([]string, len(allHints))
	for i, h := range allHints {
		parts[i] = a.renderHint(h)
	}
	return strings.Join(parts, " ")
}

// HintSet is an ordered collection of hints by group.
type HintSet struct {
	Nav    []Hint // Navigation hints (j/k, gg, G)
	Action []Hint // Action hints (Enter, Tab, etc.)
	Edit   []Hint // Edit hints (e, d, y)
	System []Hint // System hints (?, q, Esc)
}

// All returns all hints flattened in display order: Nav + Action + Edit + System.
func (h HintSet) All() []Hint {
	result := make([]Hint, 0, len(h.Nav)+len(h.Action)+len(h.Edit)+len(h.System))
	result = append(result, h.Nav...)
	result = append(result, h.Action...)
	result = append(result, h.Edit...)
	result = append(result, h.System...)
	return result
}

// getContextualHints returns the appropriate hints for the current mode.
func (a App) getContextualHints() HintSet {
	switch a.mode {
	case ModeNormal:
		return HintSet{
			Nav: []Hint{
				{Key: "j/k", Desc: "move"},
			},
			Action: []Hint{
				{Key: "Enter", Desc: "open"},
				{Key: "/", Desc: "search"},
			},
			Edit: []Hint{
				{Key: "e", Desc: "edit"},
				{Key: "d", Desc: "del"},
				{Key: "y", Desc: "yank"},
			},
			System: []Hint{
				{Key: "?", Desc: "help"},
				{Key: "q", Desc: "quit"},
			},
		}
	case ModeSearch:
		return HintSet{
			Nav: []Hint{
				{Key: "type", Desc: "filter"},
			},
			Action: []Hint{
				{Key: "Enter", Desc: "apply"},
			},
			System: []Hint{
				{Key: "Esc", Desc: "clear"},
			},
		}
	case ModeEdit:
		return HintSet{
			Nav: []Hint{
				{Key: "Tab", Desc: "next field"},
			},
			Action: []Hint{
				{Key: "Ctrl+p", Desc: "preset tag"},
				{Key: "Enter", Desc: "save"},
			},
			System: []Hint{
				{Key: "Esc", Desc: "cancel"},
			},
		}
	case ModeConfirmDelete:
		return HintSet{
			Action: []Hint{
				{Key: "y/Enter", Desc: "delete"},
			},
			System: []Hint{
				{Key: "n/Esc", Desc: "keep"},
			},
		}
	case ModeHelp:
		return HintSet{
			System: []Hint{{Key: "?/q/Esc", Desc: "close"}},
		}
	default:
		return HintSet{}
	}
}
