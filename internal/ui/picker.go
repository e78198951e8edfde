package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/mcao2/reviews-browser/internal/config"
)

// pickerClosedMsg is emitted by the picker form when it completes or is
// aborted.
type pickerClosedMsg struct{}

// QuickPicker is a huh select over the configured quick apps, embedded in
// the main program.
type QuickPicker struct {
	form   *huh.Form
	choice string
}

// NewQuickPicker returns nil when there is nothing to pick from.
func NewQuickPicker(apps []config.QuickApp, theme Theme) *QuickPicker {
	if len(apps) == 0 {
		return nil
	}

	p := &QuickPicker{choice: apps[0].ID}

	options := make([]huh.Option[string], 0, len(apps))
	for _, app := range apps {
		options = append(options, huh.NewOption(app.Label(), app.ID))
	}

	p.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Quick apps").
				Description("Pick an app to load its reviews").
				Options(options...).
				Value(&p.choice),
		),
	).WithTheme(pickerTheme(theme)).WithShowHelp(true)

	closed := func() tea.Msg { return pickerClosedMsg{} }
	p.form.SubmitCmd = closed
	p.form.CancelCmd = closed

	return p
}

func pickerTheme(theme Theme) *huh.Theme {
	if theme.Name == "catppuccin" {
		return huh.ThemeCatppuccin()
	}
	if theme.Name == "dracula" {
		return huh.ThemeDracula()
	}
	return huh.ThemeCharm()
}

func (p *QuickPicker) Init() tea.Cmd {
	return p.form.Init()
}

func (p *QuickPicker) Update(msg tea.Msg) tea.Cmd {
	model, cmd := p.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		p.form = f
	}
	return cmd
}

func (p *QuickPicker) View() string {
	return p.form.View()
}

// Done reports whether the form has finished, either way.
func (p *QuickPicker) Done() bool {
	return p.form.State != huh.StateNormal
}

// Selected returns the chosen app id once the form completed.
func (p *QuickPicker) Selected() (string, bool) {
	if p.form.State != huh.StateCompleted {
		return "", false
	}
	return p.choice, true
}
