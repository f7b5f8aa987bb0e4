package metrics

import "github.com/ivucicev/zenfast/internal/fasting"

// Achievement is a badge with a recomputed completion flag. Done is derived
// on every query and never persisted.
type Achievement struct {
	ID       int    `json:"id"`
	Label    string `json:"label"`
	Icon     string `json:"icon"`
	Subtitle string `json:"subtitle"`
	Done     bool   `json:"done"`
}

// Achievements evaluates the fixed badge table against current metrics.
// Order is stable. Three predicates are inherited placeholders from the
// product: Early Bird is unconditionally earned, Perfect Week never is, and
// Night Owl only counts history size; they are kept literally pending real
// time-of-day criteria.
func Achievements(history []fasting.Record, totalHours int, longestHours float64, streak int) []Achievement {
	count := len(history)
	return []Achievement{
		{ID: 1, Label: "First Spark", Icon: "🌱", Subtitle: "Complete 1 fast", Done: count >= 1},
		{ID: 2, Label: "Dedicated", Icon: "🤝", Subtitle: "Complete 10 fasts", Done: count >= 10},
		{ID: 3, Label: "Zen Master", Icon: "🏯", Subtitle: "Complete 50 fasts", Done: count >= 50},
		{ID: 4, Label: "24h Club", Icon: "🌕", Subtitle: "24h fast", Done: longestHours >= 24},
		{ID: 5, Label: "Ascendant", Icon: "⛰️", Subtitle: "36h fast", Done: longestHours >= 36},
		{ID: 6, Label: "Legend", Icon: "📜", Subtitle: "48h fast", Done: longestHours >= 48},
		{ID: 7, Label: "Fire Starter", Icon: "🔥", Subtitle: "3 day streak", Done: streak >= 3},
		{ID: 8, Label: "Week on Fire", Icon: "⚡", Subtitle: "7 day streak", Done: streak >= 7},
		{ID: 9, Label: "Century", Icon: "💯", Subtitle: "100 total hours", Done: totalHours >= 100},
		{ID: 10, Label: "Millennium", Icon: "🌌", Subtitle: "1000 total hours", Done: totalHours >= 1000},
		{ID: 11, Label: "Early Bird", Icon: "🌅", Subtitle: "Fast before 8am", Done: true},
		{ID: 12, Label: "Night Owl", Icon: "🦉", Subtitle: "Fast after 10pm", Done: count > 2},
		{ID: 13, Label: "OMAD Pro", Icon: "🍱", Subtitle: "One meal a day", Done: anyFastAtLeast(history, 23)},
		{ID: 14, Label: "Perfect Week", Icon: "💎", Subtitle: "7 success fasts", Done: false},
		{ID: 15, Label: "Body Reborn", Icon: "🦋", Subtitle: "Autophagy target", Done: longestHours >= 18},
	}
}

func anyFastAtLeast(history []fasting.Record, hours float64) bool {
	for _, rec := range history {
		if rec.DurationHours() >= hours {
			return true
		}
	}
	return false
}
