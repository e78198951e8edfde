package ui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a named color palette.
type Theme struct {
	Name       string
	Primary    string
	Secondary  string
	Accent     string
	Star       string
	Text       string
	Subtle     string
	Background string
	Error      string
	Success    string
}

// Themes holds every palette the UI can cycle through.
var Themes = map[string]Theme{
	"default": {
		Name:       "default",
		Primary:    "#7D56F4",
		Secondary:  "#04B575",
		Accent:     "#3B82F6",
		Star:       "#FACC15",
		Text:       "#FAFAFA",
		Subtle:     "#737373",
		Background: "#1A1A1A",
		Error:      "#FF5F5F",
		Success:    "#04B575",
	},
	"catppuccin": {
		Name:       "catppuccin",
		Primary:    "#CBA6F7",
		Secondary:  "#A6E3A1",
		Accent:     "#89B4FA",
		Star:       "#F9E2AF",
		Text:       "#CDD6F4",
		Subtle:     "#6C7086",
		Background: "#1E1E2E",
		Error:      "#F38BA8",
		Success:    "#A6E3A1",
	},
	"dracula": {
		Name:       "dracula",
		Primary:    "#BD93F9",
		Secondary:  "#50FA7B",
		Accent:     "#8BE9FD",
		Star:       "#F1FA8C",
		Text:       "#F8F8F2",
		Subtle:     "#6272A4",
		Background: "#282A36",
		Error:      "#FF5555",
		Success:    "#50FA7B",
	},
	"nord": {
		Name:       "nord",
		Primary:    "#88C0D0",
		Secondary:  "#A3BE8C",
		Accent:     "#81A1C1",
		Star:       "#EBCB8B",
		Text:       "#ECEFF4",
		Subtle:     "#4C566A",
		Background: "#2E3440",
		Error:      "#BF616A",
		Success:    "#A3BE8C",
	},
	"gruvbox": {
		Name:       "gruvbox",
		Primary:    "#FE8019",
		Secondary:  "#B8BB26",
		Accent:     "#83A598",
		Star:       "#FABD2F",
		Text:       "#EBDBB2",
		Subtle:     "#928374",
		Background: "#282828",
		Error:      "#FB4934",
		Success:    "#B8BB26",
	},
}

// GetThemeNames returns the theme names with "default" first and the rest
// sorted.
func GetThemeNames() []string {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		if name != "default" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return append([]string{"default"}, names...)
}

// Styles holds all the UI styles
type Styles struct {
	theme Theme

	Title     lipgloss.Style
	Normal    lipgloss.Style
	Help      lipgloss.Style
	HelpKey   lipgloss.Style
	HelpDesc  lipgloss.Style
	HelpSep   lipgloss.Style
	Highlight lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
	Border    lipgloss.Style
	HeaderBar lipgloss.Style
	FooterBar lipgloss.Style

	Card         lipgloss.Style
	CardSelected lipgloss.Style
	Avatar       lipgloss.Style
	Author       lipgloss.Style
	Date         lipgloss.Style
	StarFilled   lipgloss.Style
	StarEmpty    lipgloss.Style
	ReviewTitle  lipgloss.Style
	Content      lipgloss.Style
	Stat         lipgloss.Style
	StatLabel    lipgloss.Style
	Badge        lipgloss.Style
}

// NewStyles builds the style set for theme.
func NewStyles(theme Theme) Styles {
	primary := lipgloss.Color(theme.Primary)
	subtle := lipgloss.Color(theme.Subtle)
	text := lipgloss.Color(theme.Text)

	return Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary),

		Normal: lipgloss.NewStyle().
			Foreground(text),

		Help: lipgloss.NewStyle().
			Foreground(subtle).
			Italic(true),

		HelpKey: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary),

		HelpDesc: lipgloss.NewStyle().
			Foreground(subtle),

		HelpSep: lipgloss.NewStyle().
			Foreground(subtle),

		Highlight: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.Secondary)),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Error)),

		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Success)),

		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(1, 3),

		HeaderBar: lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(subtle),

		FooterBar: lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(subtle),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(subtle).
			Padding(0, 1),

		CardSelected: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(0, 1),

		Avatar: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.Background)).
			Background(lipgloss.Color(theme.Accent)).
			Padding(0, 1),

		Author: lipgloss.NewStyle().
			Bold(true).
			Foreground(text),

		Date: lipgloss.NewStyle().
			Foreground(subtle),

		StarFilled: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Star)),

		StarEmpty: lipgloss.NewStyle().
			Foreground(subtle),

		ReviewTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(text),

		Content: lipgloss.NewStyle().
			Foreground(text),

		Stat: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary),

		StatLabel: lipgloss.NewStyle().
			Foreground(subtle),

		Badge: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Background)).
			Background(lipgloss.Color(theme.Secondary)).
			Padding(0, 1),
	}
}

// DefaultStyles returns the default style set
func DefaultStyles() Styles {
	return NewStyles(Themes["default"])
}
