package fasting

import "github.com/ivucicev/zenfast/internal/plan"

// HistoryLimit caps the number of retained records; the oldest is evicted
// first.
const HistoryLimit = 50

// State is the single persisted snapshot. CurrentFast, when set, is never
// also present in History; it moves there exactly once, at stop time.
type State struct {
	CurrentFast    *Record  `json:"currentFast"`
	ActivePlanID   string   `json:"activePlanId"`
	History        []Record `json:"history"`
	WeeklySchedule Schedule `json:"weeklySchedule"`
}

// DefaultState is the snapshot used when no prior state exists or the
// stored one could not be read: idle, default plan on every weekday, empty
// history.
func DefaultState() State {
	return State{
		CurrentFast:    nil,
		ActivePlanID:   plan.DefaultID,
		History:        []Record{},
		WeeklySchedule: DefaultSchedule(plan.DefaultID),
	}
}

// Fasting reports whether a fast is currently in progress.
func (s State) Fasting() bool {
	return s.CurrentFast != nil
}

// WithStart begins a fast. Starting while one is already active is a no-op
// that preserves the in-progress record.
func (s State) WithStart(p plan.Plan, now int64) (State, bool) {
	if s.Fasting() {
		return s, false
	}
	rec := Start(p, now)
	s.CurrentFast = &rec
	return s, true
}

// WithStop ends the active fast, moving the finalized record to the front
// of history. Stopping while idle is a no-op.
func (s State) WithStop(now int64) (State, Record, bool) {
	if !s.Fasting() {
		return s, Record{}, false
	}
	done := Stop(*s.CurrentFast, now)
	s.CurrentFast = nil
	s.History = prependHistory(s.History, done)
	return s, done, true
}

// WithScheduleDay replaces one weekday's plan assignment.
func (s State) WithScheduleDay(day int, planID string) (State, error) {
	sched, err := s.WeeklySchedule.Assign(day, planID)
	if err != nil {
		return s, err
	}
	s.WeeklySchedule = sched
	return s, nil
}

// PlanIDFor resolves the plan id scheduled for a weekday, falling back to
// the active plan.
func (s State) PlanIDFor(day int) string {
	return s.WeeklySchedule.PlanFor(day, s.ActivePlanID)
}

func prependHistory(history []Record, rec Record) []Record {
	out := make([]Record, 0, len(history)+1)
	out = append(out, rec)
	out = append(out, history...)
	if len(out) > HistoryLimit {
		out = out[:HistoryLimit]
	}
	return out
}
