package ui

import (
	"strings"
	"testing"
)

func sampleCards() []Card {
	return []Card{
		{Key: "1", Author: "Sam", Rating: 5, Title: "Great", Content: "Works well", Date: "Mar 4, 2025, 09:30 PM"},
		{Key: "2", Author: "Anonymous", Rating: 2, Content: "Slow on launch\nand drains battery", Date: "Mar 3, 2025, 08:00 AM"},
		{Key: "3", Author: "Meg", Rating: 4, Title: "Nice", Content: "Clean UI", Date: "Mar 2, 2025, 07:15 PM"},
	}
}

func TestListView_SetCards(t *testing.T) {
	lv := NewListView(80, 20)
	lv.SetCards(sampleCards())

	if lv.Len() != 3 {
		t.Errorf("expected 3 cards, got %d", lv.Len())
	}
	card, ok := lv.Current()
	if !ok || card.Key != "1" {
		t.Errorf("expected first card under cursor, got %+v", card)
	}
}

func TestListView_SetCardsResetsCursor(t *testing.T) {
	lv := NewListView(80, 20)
	lv.SetCards(sampleCards())
	lv.MoveCursor(2)

	lv.SetCards(sampleCards()[:1])
	if lv.Cursor() != 0 {
		t.Errorf("expected cursor reset to 0, got %d", lv.Cursor())
	}
}

func TestListView_CursorBoundary(t *testing.T) {
	lv := NewListView(80, 24)
	lv.SetCards(sampleCards()[:2])

	lv.SetCursor(10)
	if lv.Cursor() != 0 {
		t.Errorf("expected cursor 0 after out-of-bounds set, got %d", lv.Cursor())
	}

	lv.MoveCursor(-1)
	if lv.Cursor() != 0 {
		t.Errorf("expected cursor 0 after negative move, got %d", lv.Cursor())
	}

	lv.MoveCursor(1)
	lv.MoveCursor(1)
	if lv.Cursor() != 1 {
		t.Errorf("expected cursor 1 (boundary), got %d", lv.Cursor())
	}
}

func TestListView_Empty(t *testing.T) {
	lv := NewListView(80, 24)
	lv.SetCards(nil)

	if _, ok := lv.Current(); ok {
		t.Error("expected no current card in an empty list")
	}
	if view := lv.View(); !strings.Contains(view, "Author") {
		t.Error("expected header row in empty view")
	}
}

func TestListView_View(t *testing.T) {
	lv := NewListView(120, 24)
	lv.SetCards(sampleCards())
	view := lv.View()

	for _, want := range []string{"★★★★★", "Sam", "Great", "Slow on launch"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
	if strings.Contains(view, "drains battery") {
		t.Error("expected only the first content line in compact rows")
	}
}

func TestListView_SetWidthHeight(t *testing.T) {
	lv := NewListView(80, 24)
	lv.SetCards(sampleCards())

	lv.SetWidthHeight(120, 40)
	if lv.width != 120 {
		t.Errorf("expected width 120, got %d", lv.width)
	}
	if lv.height != 40 {
		t.Errorf("expected height 40, got %d", lv.height)
	}
	if lv.visibleRows != 40-chromeHeight-2 {
		t.Errorf("unexpected visible rows %d", lv.visibleRows)
	}

	lv.SetWidthHeight(40, 5)
	if lv.visibleRows != 3 {
		t.Errorf("expected minimum of 3 visible rows, got %d", lv.visibleRows)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input    string
		max      int
		expected string
	}{
		{"Hello World", 5, "Hell…"},
		{"Hello", 10, "Hello"},
		{"こんにちは", 5, "こん…"},
		{"anything", 0, ""},
	}

	for _, tt := range tests {
		got := Truncate(tt.input, tt.max)
		if got != tt.expected {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.expected)
		}
	}
}

func TestRowSummary(t *testing.T) {
	if got := rowSummary(Card{Title: "Title", Content: "Body"}); got != "Title" {
		t.Errorf("expected title, got %q", got)
	}
	if got := rowSummary(Card{Content: "first\nsecond"}); got != "first" {
		t.Errorf("expected first content line, got %q", got)
	}
}
