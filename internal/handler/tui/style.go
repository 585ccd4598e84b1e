package tui

import (
	"TUI_playlist_sorter/internal/core/domain"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	doc           lipgloss.Style
	title         lipgloss.Style
	prompt        lipgloss.Style
	listHeader    lipgloss.Style
	listItem      lipgloss.Style
	selectedItem  lipgloss.Style
	carriedItem   lipgloss.Style
	meta          lipgloss.Style
	statusMessage lipgloss.Style
	errorMessage  lipgloss.Style
	url           lipgloss.Style
	alert         lipgloss.Style
	badge         lipgloss.Style
}

// newStyles derives every style from the theme so a toggle restyles the
// whole app.
func newStyles(t domain.Theme) styles {
	return styles{
		doc: lipgloss.NewStyle().
			Margin(1, 2),
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Accent)).
			Padding(1, 0),
		prompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),
		listHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Text)).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color(t.Border)).
			MarginBottom(1).
			PaddingBottom(1),
		listItem: lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(lipgloss.Color(t.Text)),
		selectedItem: lipgloss.NewStyle().
			PaddingLeft(1).
			Foreground(lipgloss.Color(t.Selected)).
			SetString("> "),
		carriedItem: lipgloss.NewStyle().
			PaddingLeft(1).
			Bold(true).
			Foreground(lipgloss.Color(t.Success)).
			SetString("≡ "),
		meta: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),
		statusMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)),
		errorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Error)),
		url: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Link)).
			Underline(true),
		alert: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Accent)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(1, 3),
		badge: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Background)).
			Background(lipgloss.Color(t.Accent)).
			Padding(0, 1),
	}
}

func newHelp(t domain.Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text))
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted))
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Border))
	return h
}
