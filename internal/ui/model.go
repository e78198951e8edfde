package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/mcao2/reviews-browser/internal/browse"
	"github.com/mcao2/reviews-browser/internal/config"
	"github.com/mcao2/reviews-browser/internal/reviews"
)

// Fetcher loads the reviews of one app.
type Fetcher interface {
	FetchByApp(ctx context.Context, appID string) ([]reviews.Review, error)
}

// Options configures a Model.
type Options struct {
	Config  *config.Config
	Fetcher Fetcher
	Logger  *zap.Logger

	// Location is used to display timestamps. Defaults to time.Local.
	Location *time.Location

	// InitialAppID is submitted as soon as the program starts.
	InitialAppID string

	// Clipboard replaces the system clipboard writer.
	Clipboard func(string) error
}

// ReviewsFetchedMsg carries the outcome of one dispatched request.
type ReviewsFetchedMsg struct {
	Seq     uint64
	AppID   string
	Reviews []reviews.Review
	Err     error
}

type Model struct {
	state  browse.State
	width  int
	height int
	styles Styles
	keys   KeyMap

	themeIndex int
	showHelp   bool
	compact    bool

	input    textinput.Model
	spinner  spinner.Model
	viewport viewport.Model
	listView ListView
	picker   *QuickPicker

	// cardOffsets[i] is the first viewport line of card i.
	cardOffsets []int

	cfg     *config.Config
	fetcher Fetcher
	logger  *zap.Logger
	loc     *time.Location
	cancel  context.CancelFunc

	initialAppID   string
	notice         string
	noticeIsError  bool
	clipboardWrite func(string) error
}

func NewModel(opts Options) *Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	write := opts.Clipboard
	if write == nil {
		write = clipboard.WriteAll
	}

	themeNames := GetThemeNames()
	themeIndex := 0
	for i, name := range themeNames {
		if name == cfg.Theme {
			themeIndex = i
			break
		}
	}
	theme := Themes[themeNames[themeIndex]]

	ti := textinput.New()
	ti.Placeholder = "Enter App ID (e.g., com.example.app)"
	ti.Prompt = "App ID › "
	ti.CharLimit = 256
	ti.Width = 48
	ti.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot

	m := &Model{
		state:          browse.New(),
		keys:           DefaultKeyMap(),
		themeIndex:     themeIndex,
		input:          ti,
		spinner:        s,
		viewport:       viewport.New(80, visibleRowsFor(24)+2),
		listView:       NewListView(80, 24),
		cfg:            cfg,
		fetcher:        opts.Fetcher,
		logger:         logger,
		loc:            loc,
		initialAppID:   strings.TrimSpace(opts.InitialAppID),
		clipboardWrite: write,
	}
	m.applyTheme(theme)
	return m
}

func (m *Model) applyTheme(theme Theme) {
	m.styles = NewStyles(theme)
	m.listView.UpdateTableStyles(theme)
	m.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Primary))
	m.input.PromptStyle = m.styles.HelpKey
	m.input.TextStyle = m.styles.Normal
	m.input.PlaceholderStyle = m.styles.HelpDesc
	m.renderCards()
}

func (m *Model) cycleTheme() {
	themeNames := GetThemeNames()
	m.themeIndex = (m.themeIndex + 1) % len(themeNames)
	newTheme := themeNames[m.themeIndex]
	m.applyTheme(Themes[newTheme])

	if m.cfg != nil {
		m.cfg.Theme = newTheme
		if err := m.cfg.Save(); err != nil {
			m.logger.Warn("failed to save theme", zap.Error(err))
		}
	}
}

// State returns the current query state.
func (m *Model) State() browse.State {
	return m.state
}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.initialAppID != "" {
		m.input.SetValue(m.initialAppID)
		m.state = m.state.SetDraft(m.initialAppID)
		cmds = append(cmds, m.submit(m.initialAppID))
	}
	return tea.Batch(cmds...)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.listView.SetWidthHeight(msg.Width, msg.Height)
		m.viewport.Width = msg.Width
		m.viewport.Height = visibleRowsFor(msg.Height) + 2
		m.renderCards()
		return m, nil

	case spinner.TickMsg:
		if !m.state.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ReviewsFetchedMsg:
		return m, m.resolve(msg)

	case pickerClosedMsg:
		return m, m.closePicker()

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		if m.picker == nil && !m.compact {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	if m.picker != nil {
		return m, m.picker.Update(msg)
	}
	if m.input.Focused() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// submit validates id and dispatches a fetch. Any request still in flight
// is canceled; its response would be discarded anyway.
func (m *Model) submit(id string) tea.Cmd {
	return m.dispatch(m.state.Submit(id))
}

// dispatch applies the outcome of Submit or Refresh and starts the fetch.
func (m *Model) dispatch(next browse.State, req browse.Request, err error) tea.Cmd {
	m.cancelInFlight()
	m.state = next
	m.notice = ""

	if err != nil {
		m.logger.Debug("rejected app id", zap.String("draft", next.DraftID))
		m.input.Focus()
		m.syncCards()
		return nil
	}
	if m.fetcher == nil {
		next, _ = m.state.Resolve(req.Seq, nil, fmt.Errorf("no backend configured"))
		m.state = next
		m.syncCards()
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.input.Blur()

	m.logger.Info("fetching reviews", zap.String("app_id", req.AppID), zap.Uint64("seq", req.Seq))
	return tea.Batch(m.spinner.Tick, fetchReviews(ctx, m.fetcher, req))
}

func (m *Model) cancelInFlight() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

// fetchReviews always yields a ReviewsFetchedMsg, even when the fetcher
// panics, so the loading phase is always left.
func fetchReviews(ctx context.Context, f Fetcher, req browse.Request) tea.Cmd {
	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				msg = ReviewsFetchedMsg{Seq: req.Seq, AppID: req.AppID, Err: fmt.Errorf("fetch panicked: %v", r)}
			}
		}()

		list, err := f.FetchByApp(ctx, req.AppID)
		return ReviewsFetchedMsg{Seq: req.Seq, AppID: req.AppID, Reviews: list, Err: err}
	}
}

func (m *Model) resolve(msg ReviewsFetchedMsg) tea.Cmd {
	next, applied := m.state.Resolve(msg.Seq, msg.Reviews, msg.Err)
	if !applied {
		m.logger.Debug("discarding stale response", zap.String("app_id", msg.AppID), zap.Uint64("seq", msg.Seq))
		return nil
	}
	m.state = next
	m.cancelInFlight()

	if msg.Err != nil {
		m.logger.Warn("failed to fetch reviews", zap.String("app_id", msg.AppID), zap.Error(msg.Err))
	} else {
		m.logger.Info("reviews loaded", zap.String("app_id", msg.AppID), zap.Int("count", len(next.Reviews)))
	}

	m.syncCards()
	if len(m.state.Reviews) == 0 {
		m.input.Focus()
		return textinput.Blink
	}
	return nil
}

// syncCards rebuilds the card list from the current state.
func (m *Model) syncCards() {
	var cards []Card
	if m.state.Phase == browse.PhaseLoaded {
		cards = make([]Card, len(m.state.Reviews))
		for i, r := range m.state.Reviews {
			cards[i] = NewCard(r, m.loc)
		}
	}
	m.listView.SetCards(cards)
	m.viewport.GotoTop()
	m.renderCards()
}

// renderCards redraws the viewport content for card mode.
func (m *Model) renderCards() {
	width := m.width - 1
	if width <= 0 {
		width = 80
	}

	var b strings.Builder
	m.cardOffsets = m.cardOffsets[:0]
	line := 0
	for i, c := range m.listView.cards {
		rendered := RenderCard(c, m.styles, width, i == m.listView.Cursor())
		m.cardOffsets = append(m.cardOffsets, line)
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(rendered)
		line += lipgloss.Height(rendered)
	}
	m.viewport.SetContent(b.String())
	m.scrollToCursor()
}

func (m *Model) scrollToCursor() {
	cursor := m.listView.Cursor()
	if cursor < 0 || cursor >= len(m.cardOffsets) {
		return
	}
	top := m.cardOffsets[cursor]
	bottom := m.viewport.TotalLineCount()
	if cursor+1 < len(m.cardOffsets) {
		bottom = m.cardOffsets[cursor+1]
	}

	switch {
	case top < m.viewport.YOffset:
		m.viewport.SetYOffset(top)
	case bottom > m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(bottom - m.viewport.Height)
	}
}

func (m *Model) openPicker() tea.Cmd {
	picker := NewQuickPicker(m.cfg.QuickApps, m.styles.theme)
	if picker == nil {
		m.setNotice("No quick apps configured", true)
		return nil
	}
	m.picker = picker
	m.input.Blur()
	return picker.Init()
}

// closePicker submits the picked app, if any, and drops the form.
func (m *Model) closePicker() tea.Cmd {
	if m.picker == nil {
		return nil
	}
	id, ok := m.picker.Selected()
	m.picker = nil
	if !ok {
		return nil
	}
	m.input.SetValue(id)
	m.state = m.state.SetDraft(id)
	return m.submit(id)
}

func (m *Model) setNotice(text string, isError bool) {
	m.notice = text
	m.noticeIsError = isError
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.cancelInFlight()
		return m, tea.Quit
	}

	if m.picker != nil {
		if keyMatches(msg, m.keys.Back) {
			m.picker = nil
			return m, nil
		}
		cmd := m.picker.Update(msg)
		if m.picker.Done() {
			return m, tea.Batch(cmd, m.closePicker())
		}
		return m, cmd
	}

	if m.input.Focused() {
		return m.handleInputKeys(msg)
	}
	return m.handleBrowseKeys(msg)
}

func (m *Model) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case keyMatches(msg, m.keys.Enter):
		if m.state.Loading() {
			return m, nil
		}
		return m, m.submit(m.input.Value())
	case msg.Type == tea.KeyEsc, msg.Type == tea.KeyTab:
		m.input.Blur()
		return m, nil
	}

	if m.state.Loading() {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.state = m.state.SetDraft(m.input.Value())
	return m, cmd
}

func (m *Model) handleBrowseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""

	switch {
	case keyMatches(msg, m.keys.Quit):
		m.cancelInFlight()
		return m, tea.Quit
	case keyMatches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
	case keyMatches(msg, m.keys.Focus), keyMatches(msg, m.keys.Enter):
		if !m.state.Loading() {
			m.input.Focus()
			return m, textinput.Blink
		}
	case keyMatches(msg, m.keys.Refresh):
		if !m.state.Loading() && m.state.CommittedID != "" {
			m.input.SetValue(m.state.CommittedID)
			m.state = m.state.SetDraft(m.state.CommittedID)
			return m, m.dispatch(m.state.Refresh())
		}
	case keyMatches(msg, m.keys.ToggleMode):
		m.compact = !m.compact
		m.renderCards()
	case keyMatches(msg, m.keys.CycleTheme):
		m.cycleTheme()
	case keyMatches(msg, m.keys.Pick):
		if !m.state.Loading() {
			return m, m.openPicker()
		}
	case keyMatches(msg, m.keys.Up):
		m.listView.MoveCursor(-1)
		m.renderCards()
	case keyMatches(msg, m.keys.Down):
		m.listView.MoveCursor(1)
		m.renderCards()
	case keyMatches(msg, m.keys.Copy):
		if err := m.copyCurrentReview(); err != nil {
			m.setNotice(err.Error(), true)
		} else {
			m.setNotice("Review copied to clipboard", false)
		}
	case keyMatches(msg, m.keys.Export):
		if m.state.Phase != browse.PhaseLoaded {
			m.setNotice("Nothing to export yet", true)
		} else if err := m.exportToClipboard(); err != nil {
			m.setNotice(fmt.Sprintf("Export failed: %v", err), true)
		} else {
			m.setNotice(fmt.Sprintf("Exported %d reviews to clipboard", len(m.state.Reviews)), false)
		}
	default:
		if !m.compact {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m *Model) View() string {
	header := m.renderHeader()
	inputLine := m.input.View()
	if m.state.Loading() {
		inputLine += " " + m.spinner.View()
	}

	var body string
	switch {
	case m.picker != nil:
		body = m.styles.Border.Render(m.picker.View())
	case m.showHelp:
		body = m.renderFullHelp()
	default:
		body = m.renderBody()
	}

	parts := []string{header, inputLine, "", body}
	if m.notice != "" {
		style := m.styles.Success
		if m.noticeIsError {
			style = m.styles.Error
		}
		parts = append(parts, style.Render("  "+m.notice))
	}
	parts = append(parts, m.renderFooter())

	content := strings.Join(parts, "\n")

	// Pad output to exactly m.height lines so the alternate screen buffer
	// repaints cleanly and doesn't leave stale content from previous frames.
	if m.height > 0 {
		rendered := strings.Split(content, "\n")
		for len(rendered) < m.height {
			rendered = append(rendered, "")
		}
		return strings.Join(rendered[:m.height], "\n")
	}
	return content
}

func (m *Model) renderHeader() string {
	headerLeft := m.styles.HelpKey.Render("App Reviews")
	right := m.styles.theme.Name
	if m.state.CommittedID != "" {
		right = m.state.CommittedID + " · " + right
	}
	headerRight := m.styles.HelpDesc.Render(right)

	headerGap := " "
	if m.width > 0 {
		gap := m.width - lipgloss.Width(headerLeft) - lipgloss.Width(headerRight) - 4
		if gap > 0 {
			headerGap = strings.Repeat(" ", gap)
		}
	}

	bar := m.styles.HeaderBar
	if m.width > 0 {
		bar = bar.Width(m.width - 1)
	}
	return bar.Render(headerLeft + headerGap + headerRight)
}

// renderBody renders the phase-specific area. Loading takes precedence
// over everything else.
func (m *Model) renderBody() string {
	switch m.state.Phase {
	case browse.PhaseLoading:
		req, _ := m.state.Pending()
		return m.styles.Normal.Render(fmt.Sprintf("%s Loading reviews for %s...", m.spinner.View(), req.AppID))

	case browse.PhaseFailed:
		return m.styles.Error.Render("⚠  " + m.state.Message)

	case browse.PhaseLoaded:
		summary, ok := m.state.Summary()
		if !ok {
			return lipgloss.JoinVertical(lipgloss.Left,
				m.styles.Normal.Render("No reviews found for this app."),
				m.styles.Help.Render("Try a different App ID"),
			)
		}
		list := m.viewport.View()
		if m.compact {
			list = m.listView.View()
		}
		return lipgloss.JoinVertical(lipgloss.Left, RenderSummary(summary, m.styles), "", list)

	default:
		return lipgloss.JoinVertical(lipgloss.Left,
			m.styles.Normal.Render("Enter an App ID to load reviews"),
			m.styles.Help.Render("Example: com.example.app, com.company.awesomeapp"),
		)
	}
}

// Help rendering

type helpEntry struct {
	key  string
	desc string
}

func (m *Model) renderHelpLine(entries []helpEntry) string {
	var parts []string
	sep := m.styles.HelpSep.Render(" · ")
	for _, e := range entries {
		parts = append(parts, m.styles.HelpKey.Render(e.key)+" "+m.styles.HelpDesc.Render(e.desc))
	}
	return strings.Join(parts, sep)
}

func (m *Model) renderFooter() string {
	var entries []helpEntry
	switch {
	case m.picker != nil:
		entries = []helpEntry{{"↑/↓", "choose"}, {"enter", "load"}, {"esc", "close"}}
	case m.input.Focused():
		entries = []helpEntry{{"enter", "fetch"}, {"tab", "browse"}, {"ctrl+c", "quit"}}
	default:
		entries = []helpEntry{
			{"j/k", "navigate"},
			{"tab", "app id"},
			{"r", "refresh"},
			{"p", "quick apps"},
			{"m", "mode"},
			{"y", "copy"},
			{"e", "export"},
			{"t", "theme"},
			{"?", "help"},
			{"q", "quit"},
		}
	}

	bar := m.styles.FooterBar
	if m.width > 0 {
		bar = bar.Width(m.width - 1)
	}
	return bar.Render(m.renderHelpLine(entries))
}

func (m *Model) renderFullHelp() string {
	sections := []struct {
		title   string
		entries []helpEntry
	}{
		{"Navigation", []helpEntry{
			{"j / ↓", "next review"},
			{"k / ↑", "previous review"},
			{"pgup / pgdn", "scroll cards"},
			{"tab / /", "edit app id"},
		}},
		{"Operations", []helpEntry{
			{"enter", "fetch reviews"},
			{"r", "refresh current app"},
			{"p", "pick a quick app"},
			{"m", "toggle cards / compact list"},
			{"y", "copy review to clipboard"},
			{"e", "export reviews as JSON"},
			{"t", "cycle theme"},
		}},
		{"General", []helpEntry{
			{"?", "toggle this help"},
			{"q / ctrl+c", "quit"},
		}},
	}

	var lines []string
	for _, sec := range sections {
		lines = append(lines, m.styles.HelpKey.Render("  "+sec.title))
		for _, e := range sec.entries {
			lines = append(lines, fmt.Sprintf("    %s  %s",
				m.styles.HelpKey.Render(fmt.Sprintf("%-12s", e.key)),
				m.styles.HelpDesc.Render(e.desc),
			))
		}
	}
	return strings.Join(lines, "\n")
}

func keyMatches(msg tea.KeyMsg, target key.Binding) bool {
	for _, k := range target.Keys() {
		if msg.String() == k {
			return true
		}
	}
	return false
}
