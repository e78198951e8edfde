package ui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/mcao2/reviews-browser/internal/reviews"
)

// RenderSummary draws the statistics block: total, average and the
// non-empty rating buckets.
func RenderSummary(s reviews.Summary, styles Styles) string {
	total := lipgloss.JoinVertical(lipgloss.Left,
		styles.StatLabel.Render("Total Reviews"),
		styles.Stat.Render(strconv.Itoa(s.Count)),
	)
	average := lipgloss.JoinVertical(lipgloss.Left,
		styles.StatLabel.Render("Average Rating"),
		styles.Stat.Render(s.AverageLabel()),
	)

	badges := make([]string, 0, len(s.Distribution)*2)
	for i, b := range s.Distribution {
		if i > 0 {
			badges = append(badges, " ")
		}
		badges = append(badges, styles.Badge.Render(b.Label()))
	}
	distribution := lipgloss.JoinVertical(lipgloss.Left,
		styles.StatLabel.Render("Rating Distribution"),
		lipgloss.JoinHorizontal(lipgloss.Top, badges...),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		total, "    ", average, "    ", distribution,
	)
}
