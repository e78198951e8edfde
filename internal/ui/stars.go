package ui

import "strings"

// MaxStars is the width of every star row.
const MaxStars = 5

// StarRating returns one indicator per star; star i (1-indexed) is filled
// when i <= rating. Ratings outside 1..5 are not clamped.
func StarRating(rating int) []bool {
	stars := make([]bool, MaxStars)
	for i := range stars {
		stars[i] = i+1 <= rating
	}
	return stars
}

// RenderStars draws a star row as ★ and ☆.
func RenderStars(rating int, styles Styles) string {
	var b strings.Builder
	for _, filled := range StarRating(rating) {
		if filled {
			b.WriteString(styles.StarFilled.Render("★"))
		} else {
			b.WriteString(styles.StarEmpty.Render("☆"))
		}
	}
	return b.String()
}

// plainStars is RenderStars without styling, for clipboard text and
// table cells.
func plainStars(rating int) string {
	var b strings.Builder
	for _, filled := range StarRating(rating) {
		if filled {
			b.WriteString("★")
		} else {
			b.WriteString("☆")
		}
	}
	return b.String()
}
