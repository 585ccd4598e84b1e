package domain

// Theme is the presentation palette derived from the dark mode preference.
type Theme struct {
	Dark bool

	Accent     string
	Text       string
	Muted      string
	Border     string
	Success    string
	Error      string
	Link       string
	Selected   string
	Background string
}

// Mode returns "dark" or "light".
func (t Theme) Mode() string {
	if t.Dark {
		return "dark"
	}
	return "light"
}

// NewTheme builds the palette for the given mode.
func NewTheme(dark bool) Theme {
	if dark {
		return Theme{
			Dark:       true,
			Accent:     "#7D56F4",
			Text:       "#E4E4E4",
			Muted:      "#777777",
			Border:     "#444444",
			Success:    "#04B575",
			Error:      "#FF5F87",
			Link:       "#5FAFFF",
			Selected:   "#AD8CFF",
			Background: "#1C1C1C",
		}
	}

	return Theme{
		Dark:       false,
		Accent:     "#5A3FC0",
		Text:       "#1C1C1C",
		Muted:      "#A49FA5",
		Border:     "#D0D0D0",
		Success:    "#02864F",
		Error:      "#D70000",
		Link:       "#005FD7",
		Selected:   "#5A3FC0",
		Background: "#FFFFFF",
	}
}
