package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/mcao2/reviews-browser/internal/reviews"
)

const (
	anonymousAuthor  = "Anonymous"
	anonymousInitial = "U"
)

// Card is the display form of one review.
type Card struct {
	Key     string
	Initial string
	Author  string
	Date    string
	Rating  int
	Stars   []bool
	Title   string
	Content string
}

// NewCard maps a review to its card fields. Timestamps are shown in loc.
func NewCard(r reviews.Review, loc *time.Location) Card {
	// Only a missing author falls back; anything else is shown as received.
	author, initial := anonymousAuthor, anonymousInitial
	if r.Author != "" {
		author = r.Author
		first, _ := utf8.DecodeRuneInString(author)
		initial = string(unicode.ToUpper(first))
	}

	return Card{
		Key:     string(r.ID),
		Initial: initial,
		Author:  author,
		Date:    reviews.FormatTimestamp(r.CreatedAt, loc),
		Rating:  r.Rating,
		Stars:   StarRating(r.Rating),
		Title:   r.Title,
		Content: r.Content,
	}
}

// Text is the clipboard form of a card.
func (c Card) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s (%d/5)\n", c.Author, plainStars(c.Rating), c.Rating)
	fmt.Fprintf(&b, "%s\n", c.Date)
	if c.Title != "" {
		fmt.Fprintf(&b, "\n%s\n", c.Title)
	}
	fmt.Fprintf(&b, "\n%s\n", c.Content)
	return b.String()
}

// RenderCard draws c in a bordered box of the given outer width.
func RenderCard(c Card, styles Styles, width int, selected bool) string {
	box := styles.Card
	if selected {
		box = styles.CardSelected
	}

	// border (2) + padding (2)
	inner := width - 4
	if inner < 20 {
		inner = 20
	}

	avatar := styles.Avatar.Render(c.Initial)
	meta := lipgloss.JoinVertical(lipgloss.Left,
		styles.Author.Render(Truncate(c.Author, inner-8)),
		styles.Date.Render(c.Date),
	)
	header := lipgloss.JoinHorizontal(lipgloss.Top, avatar, " ", meta)

	rating := RenderStars(c.Rating, styles) + " " + styles.Badge.Render(strconv.Itoa(c.Rating))
	lines := []string{header, rating}
	if c.Title != "" {
		lines = append(lines, styles.ReviewTitle.Width(inner).Render(c.Title))
	}
	lines = append(lines, styles.Content.Width(inner).Render(c.Content))

	return box.Width(inner + 2).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
