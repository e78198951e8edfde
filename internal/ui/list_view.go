package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// ListView is the compact one-row-per-review mode.
type ListView struct {
	table       table.Model
	cards       []Card
	cursor      int
	width       int
	height      int
	visibleRows int // number of data rows visible (excluding header)

	// Styles for custom rendering
	headerStyle   lipgloss.Style
	cellStyle     lipgloss.Style
	selectedStyle lipgloss.Style
	columns       []table.Column
}

// chromeHeight is the number of screen lines used around the table:
// header bar (2), input (1), summary (3), gap (1), footer (3).
const chromeHeight = 10

func listColumns(width int) []table.Column {
	// Each cell has Padding(0,1) adding 2 chars per column (4 columns = 8 extra).
	// Subtract 2 more to avoid hitting exact terminal width (causes implicit wraps).
	fixedWidth := 5 + 16 + 22
	padding := 4*2 + 2
	titleWidth := width - fixedWidth - padding
	if titleWidth < 20 {
		titleWidth = 20
	}
	return []table.Column{
		{Title: "Rating", Width: 5},
		{Title: "Author", Width: 16},
		{Title: "Date", Width: 22},
		{Title: "Review", Width: titleWidth},
	}
}

func visibleRowsFor(height int) int {
	// Subtract 2 for the table header (text + border)
	rows := height - chromeHeight - 2
	if rows < 3 {
		rows = 3
	}
	return rows
}

func NewListView(width, height int) ListView {
	columns := listColumns(width)
	visibleRows := visibleRowsFor(height)

	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(visibleRows+2),
		table.WithFocused(true),
	)

	lv := ListView{
		table:       t,
		width:       width,
		height:      height,
		visibleRows: visibleRows,
		cellStyle:   lipgloss.NewStyle().Padding(0, 1),
		columns:     columns,
	}
	lv.UpdateTableStyles(Themes["default"])
	return lv
}

// UpdateTableStyles updates the styles to match the current theme
func (lv *ListView) UpdateTableStyles(theme Theme) {
	lv.headerStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(theme.Subtle)).
		BorderBottom(true).
		Bold(true).
		Foreground(lipgloss.Color(theme.Primary))
	lv.selectedStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Background)).
		Background(lipgloss.Color(theme.Primary)).
		Bold(false)

	s := table.DefaultStyles()
	s.Header = lv.headerStyle
	s.Selected = lv.selectedStyle
	lv.table.SetStyles(s)
}

// SetCards replaces the rows and resets the cursor to the first one.
func (lv *ListView) SetCards(cards []Card) {
	lv.cards = cards
	lv.cursor = 0
	lv.updateRows()
	lv.table.SetCursor(0)
}

func (lv *ListView) updateRows() {
	rows := make([]table.Row, len(lv.cards))
	for i, c := range lv.cards {
		rows[i] = table.Row{
			plainStars(c.Rating),
			c.Author,
			c.Date,
			rowSummary(c),
		}
	}
	lv.table.SetRows(rows)
}

// rowSummary is the title when present, otherwise the first line of the
// content.
func rowSummary(c Card) string {
	if c.Title != "" {
		return c.Title
	}
	first, _, _ := strings.Cut(c.Content, "\n")
	return first
}

func Truncate(s string, maxLen int) string {
	if maxLen < 1 {
		return ""
	}
	if runewidth.StringWidth(s) > maxLen {
		return runewidth.Truncate(s, maxLen, "…")
	}
	return s
}

func (lv ListView) Cursor() int {
	return lv.cursor
}

func (lv ListView) Len() int {
	return len(lv.cards)
}

func (lv *ListView) SetCursor(pos int) {
	if pos >= 0 && pos < len(lv.cards) {
		lv.cursor = pos
		lv.table.SetCursor(pos)
	}
}

func (lv *ListView) MoveCursor(delta int) {
	lv.SetCursor(lv.cursor + delta)
}

// Current returns the card under the cursor.
func (lv ListView) Current() (Card, bool) {
	if lv.cursor >= 0 && lv.cursor < len(lv.cards) {
		return lv.cards[lv.cursor], true
	}
	return Card{}, false
}

// renderCell renders a single cell value with the given column width.
func (lv *ListView) renderCell(value string, colWidth int) string {
	style := lipgloss.NewStyle().Width(colWidth).MaxWidth(colWidth).Inline(true)
	return lv.cellStyle.Render(style.Render(runewidth.Truncate(value, colWidth, "…")))
}

// View renders the table with our own scrolling logic, bypassing the
// bubbles table viewport which has broken YOffset calculations.
func (lv ListView) View() string {
	rows := lv.table.Rows()

	headerCells := make([]string, 0, len(lv.columns))
	for _, col := range lv.columns {
		style := lipgloss.NewStyle().Width(col.Width).MaxWidth(col.Width).Inline(true)
		cell := style.Render(runewidth.Truncate(col.Title, col.Width, "…"))
		headerCells = append(headerCells, lv.headerStyle.Render(lv.cellStyle.Render(cell)))
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, headerCells...)

	visibleRows := lv.visibleRows
	if visibleRows <= 0 {
		visibleRows = 10
	}

	start := 0
	if lv.cursor >= visibleRows {
		start = lv.cursor - visibleRows + 1
	}
	end := start + visibleRows
	if end > len(rows) {
		end = len(rows)
		start = end - visibleRows
		if start < 0 {
			start = 0
		}
	}

	renderedRows := make([]string, 0, visibleRows)
	for i := start; i < end; i++ {
		cells := make([]string, 0, len(lv.columns))
		for ci, value := range rows[i] {
			cells = append(cells, lv.renderCell(value, lv.columns[ci].Width))
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
		if i == lv.cursor {
			row = lv.selectedStyle.Render(row)
		}
		renderedRows = append(renderedRows, row)
	}

	return header + "\n" + strings.Join(renderedRows, "\n")
}

func (lv *ListView) SetWidthHeight(width, height int) {
	lv.width = width
	lv.height = height
	lv.columns = listColumns(width)
	lv.visibleRows = visibleRowsFor(height)

	lv.table.SetHeight(lv.visibleRows + 2)
	lv.table.SetColumns(lv.columns)
}
