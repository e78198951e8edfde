package demo

import (
	"time"

	"github.com/mcao2/reviews-browser/internal/config"
	"github.com/mcao2/reviews-browser/internal/reviews"
)

// Demo app identifiers.
const (
	AppWeather = "12345678"
	AppNotes   = "com.example.notes"
	AppQuiet   = "com.example.quiet"
	AppNull    = "com.example.null"
	AppBroken  = "bad.id"
)

// QuickApps is what the picker offers in demo mode.
var QuickApps = []config.QuickApp{
	{ID: AppWeather, Name: "Weather Now"},
	{ID: AppNotes, Name: "Pocket Notes"},
	{ID: AppQuiet, Name: "Quiet (no reviews)"},
	{ID: AppNull, Name: "Null payload"},
	{ID: AppBroken, Name: "Broken backend"},
}

func stamp(base time.Time, ago time.Duration) string {
	return base.Add(-ago).UTC().Format(time.RFC3339)
}

// catalog builds the canned reviews relative to now so they look recent.
func catalog(now time.Time) map[string][]reviews.Review {
	return map[string][]reviews.Review{
		AppWeather: {
			{ID: "1", Author: "skyward_sam", Rating: 5, Title: "Finally accurate", Content: "Forecasts match what I see out the window. The hourly view is great.", CreatedAt: stamp(now, 2*time.Hour)},
			{ID: "2", Author: "Meg", Rating: 4, Title: "Good but chatty", Content: "Love the radar. Too many notifications by default.", CreatedAt: stamp(now, 5*time.Hour)},
			{ID: "3", Rating: 3, Content: "Widget stopped refreshing after the last update.", CreatedAt: stamp(now, 9*time.Hour)},
			{ID: "4", Author: "órla", Rating: 5, Title: "Beautiful", Content: "Clean design, no clutter.", CreatedAt: stamp(now, 20*time.Hour)},
			{ID: "5", Author: "dev_null", Rating: 1, Title: "Crashes on launch", Content: "iPad, latest OS. Crashes every time I open it.", CreatedAt: stamp(now, 31*time.Hour)},
		},
		AppNotes: {
			{ID: "n-1", Author: "Kai", Rating: 4, Title: "Fast", Content: "Syncs quickly between devices.", CreatedAt: stamp(now, 1*time.Hour)},
			{ID: "n-2", Author: "Priya", Rating: 4, Content: "Would like folders.", CreatedAt: stamp(now, 7*time.Hour)},
		},
		AppQuiet: {},
	}
}
