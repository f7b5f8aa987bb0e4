package plan

import (
	"fmt"
	"regexp"
	"strconv"
)

// Plan is a named fasting protocol: how many hours to fast and how many
// hours the eating window lasts.
type Plan struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	FastHours   float64 `json:"fast_hours"`
	EatHours    float64 `json:"eat_hours"`
	Description string  `json:"description"`
}

// DefaultID is the preset every unresolvable id degrades to.
const DefaultID = "16-8"

var presets = []Plan{
	{ID: "12-12", Name: "12:12", FastHours: 12, EatHours: 12, Description: "Gentle start"},
	{ID: "16-8", Name: "16:8", FastHours: 16, EatHours: 8, Description: "LeanGains - The standard"},
	{ID: "18-6", Name: "18:6", FastHours: 18, EatHours: 6, Description: "Advanced metabolic health"},
	{ID: "20-4", Name: "20:4", FastHours: 20, EatHours: 4, Description: "The Warrior Diet"},
	{ID: "23-1", Name: "23:1", FastHours: 23, EatHours: 1, Description: "OMAD (One Meal A Day)"},
	{ID: "24-0", Name: "24:0", FastHours: 24, EatHours: 0, Description: "Full day metabolic reset"},
}

var customIDPattern = regexp.MustCompile(`^custom-([0-9]+)$`)

// Resolve maps any id to a plan. Custom ids of the form custom-<hours> are
// synthesized on demand; unknown ids fall back to the default preset rather
// than erroring.
func Resolve(id string) Plan {
	if m := customIDPattern.FindStringSubmatch(id); m != nil {
		hours, err := strconv.Atoi(m[1])
		if err == nil && hours > 0 {
			return Plan{
				ID:          id,
				Name:        fmt.Sprintf("%d:0", hours),
				FastHours:   float64(hours),
				EatHours:    0,
				Description: "Custom Protocol",
			}
		}
	}
	for _, p := range presets {
		if p.ID == id {
			return p
		}
	}
	return Default()
}

// Default returns the fallback preset.
func Default() Plan {
	for _, p := range presets {
		if p.ID == DefaultID {
			return p
		}
	}
	return presets[0]
}

// Presets returns the fixed protocol catalog in display order.
func Presets() []Plan {
	out := make([]Plan, len(presets))
	copy(out, presets)
	return out
}

// CustomID builds the id for an ad-hoc protocol of the given fast length.
func CustomID(hours int) string {
	return fmt.Sprintf("custom-%d", hours)
}
