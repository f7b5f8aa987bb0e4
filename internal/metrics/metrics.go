package metrics

import (
	"math"

	"github.com/ivucicev/zenfast/internal/fasting"
)

// TotalFastedHours sums completed history durations plus the live elapsed
// hours of any in-progress fast, floored to whole hours.
func TotalFastedHours(history []fasting.Record, liveElapsedHours float64) int {
	total := liveElapsedHours
	for _, rec := range history {
		total += rec.DurationHours()
	}
	return int(math.Floor(total))
}

// LongestFastHours is the longest fast on record, counting the currently
// running fast; an in-progress fast can hold the record before it ends.
func LongestFastHours(history []fasting.Record, liveElapsedHours float64) float64 {
	longest := liveElapsedHours
	for _, rec := range history {
		if d := rec.DurationHours(); d > longest {
			longest = d
		}
	}
	return longest
}

// PlaceholderStreak reproduces the provisional streak rule inherited from
// the product: the history count, capped at 4 once more than three records
// exist. Real consecutive-day semantics are pending product clarification;
// callers must treat this as a stand-in, not a calendar streak.
func PlaceholderStreak(history []fasting.Record) int {
	if len(history) > 3 {
		return 4
	}
	return len(history)
}
