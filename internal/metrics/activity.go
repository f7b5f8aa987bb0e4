package metrics

import (
	"time"

	"github.com/ivucicev/zenfast/internal/fasting"
)

// DayActivity is the fasted total for one calendar day, bucketed by fast
// start date.
type DayActivity struct {
	Date  string  `json:"date"`
	Label string  `json:"label"`
	Hours float64 `json:"hours"`
	Fasts int     `json:"fasts"`
}

// DailyActivity buckets finished fasts into the last `days` calendar days
// ending at today, oldest first. Days without fasts appear with zero hours
// so the result always has exactly `days` entries.
func DailyActivity(history []fasting.Record, today time.Time, days int) []DayActivity {
	if days <= 0 {
		return nil
	}
	byDate := make(map[string]int, days)
	out := make([]DayActivity, days)
	for i := 0; i < days; i++ {
		d := today.AddDate(0, 0, i-(days-1))
		key := d.Format("2006-01-02")
		byDate[key] = i
		out[i] = DayActivity{Date: key, Label: d.Format("Mon")}
	}
	for _, rec := range history {
		if rec.Active() {
			continue
		}
		key := time.UnixMilli(rec.StartTime).In(today.Location()).Format("2006-01-02")
		i, ok := byDate[key]
		if !ok {
			continue
		}
		out[i].Hours += rec.DurationHours()
		out[i].Fasts++
	}
	return out
}
