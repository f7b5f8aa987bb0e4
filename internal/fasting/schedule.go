package fasting

import "fmt"

// Schedule maps a weekday (0=Sunday .. 6=Saturday) to a plan id. It
// marshals with string day keys, matching the persisted snapshot schema.
type Schedule map[int]string

// DefaultSchedule assigns the fallback plan to every day of the week.
func DefaultSchedule(planID string) Schedule {
	s := make(Schedule, 7)
	for day := 0; day < 7; day++ {
		s[day] = planID
	}
	return s
}

// Assign returns a copy of the schedule with one day replaced. Days outside
// 0..6 are a caller error.
func (s Schedule) Assign(day int, planID string) (Schedule, error) {
	if day < 0 || day > 6 {
		return nil, fmt.Errorf("weekday must be between 0 and 6, got %d", day)
	}
	out := make(Schedule, len(s)+1)
	for d, id := range s {
		out[d] = id
	}
	out[day] = planID
	return out, nil
}

// PlanFor resolves the plan id for a day, falling back when the day has no
// assignment.
func (s Schedule) PlanFor(day int, fallbackID string) string {
	if id, ok := s[day]; ok && id != "" {
		return id
	}
	return fallbackID
}
