package screen

import "github.com/charmbracelet/lipgloss"

// Theme holds the configurable colors, as lipgloss color strings.
type Theme struct {
	Selection string `toml:"selection"`
	Status    string `toml:"status"`
}

func DefaultTheme() Theme {
	return Theme{Selection: "237", Status: "236"}
}

// Styles is the set of styles a frame is drawn with.
type Styles struct {
	Normal    lipgloss.Style
	Selection lipgloss.Style
	Status    lipgloss.Style
	Cursor    lipgloss.Style
}

// NewStyles builds styles bound to r. A nil r uses the default renderer.
func NewStyles(r *lipgloss.Renderer, theme Theme) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	def := DefaultTheme()
	if theme.Selection == "" {
		theme.Selection = def.Selection
	}
	if theme.Status == "" {
		theme.Status = def.Status
	}
	return Styles{
		Normal:    r.NewStyle(),
		Selection: r.NewStyle().Background(lipgloss.Color(theme.Selection)),
		Status:    r.NewStyle().Background(lipgloss.Color(theme.Status)).Bold(true),
		Cursor:    r.NewStyle().Reverse(true),
	}
}

func DefaultStyles() Styles {
	return NewStyles(nil, DefaultTheme())
}

func (s Styles) get(id StyleID) lipgloss.Style {
	switch id {
	case StyleSelection:
		return s.Selection
	case StyleStatus:
		return s.Status
	default:
		return s.Normal
	}
}
