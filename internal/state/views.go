package state

import (
	"time"

	"github.com/ivucicev/zenfast/internal/fasting"
	"github.com/ivucicev/zenfast/internal/metrics"
	"github.com/ivucicev/zenfast/internal/plan"
	"github.com/ivucicev/zenfast/internal/stage"
)

// Status is the live timer projection. While idle the countdown reports the
// full target of today's scheduled plan at zero percent.
type Status struct {
	Fasting     bool        `json:"fasting"`
	Plan        plan.Plan   `json:"plan"`
	StartTime   int64       `json:"start_time,omitempty"`
	ElapsedMs   int64       `json:"elapsed_ms"`
	RemainingMs int64       `json:"remaining_ms"`
	Percent     float64     `json:"percent"`
	Stage       stage.Stage `json:"stage"`
}

// Report aggregates every derived statistic for display. All values are
// recomputed from the snapshot on each call; nothing here is cached or
// persisted.
type Report struct {
	TotalHours   int                   `json:"total_hours"`
	LongestHours float64               `json:"longest_hours"`
	Streak       int                   `json:"streak"`
	Fasts        int                   `json:"fasts"`
	Achievements []metrics.Achievement `json:"achievements"`
	Activity     []metrics.DayActivity `json:"activity"`
}

// Status computes the live timer view. It is a pure read; ticking callers
// may invoke it every second without mutating committed state.
func (m *Manager) Status() (Status, error) {
	st, err := m.load()
	if err != nil {
		return Status{}, err
	}
	now := m.clock()
	out := Status{
		Fasting: st.Fasting(),
		Plan:    plan.Resolve(st.PlanIDFor(m.today())),
	}
	if !st.Fasting() {
		out.RemainingMs = int64(out.Plan.FastHours * fasting.MillisPerHour)
		out.Stage = stage.Classify(0)
		return out, nil
	}
	rec := *st.CurrentFast
	out.Plan = planForRecord(st, rec)
	out.StartTime = rec.StartTime
	out.ElapsedMs = rec.Elapsed(now)
	out.RemainingMs = rec.Remaining(now)
	out.Percent = rec.PercentComplete(now)
	out.Stage = stage.Classify(rec.ElapsedHours(now))
	return out, nil
}

// Metrics computes the full statistics report, including the live fast.
func (m *Manager) Metrics() (Report, error) {
	st, err := m.load()
	if err != nil {
		return Report{}, err
	}
	now := m.clock()
	live := 0.0
	if st.Fasting() {
		live = st.CurrentFast.ElapsedHours(now)
	}
	total := metrics.TotalFastedHours(st.History, live)
	longest := metrics.LongestFastHours(st.History, live)
	streak := metrics.PlaceholderStreak(st.History)
	return Report{
		TotalHours:   total,
		LongestHours: longest,
		Streak:       streak,
		Fasts:        len(st.History),
		Achievements: metrics.Achievements(st.History, total, longest, streak),
		Activity:     metrics.DailyActivity(st.History, time.UnixMilli(now).In(time.Local), 7),
	}, nil
}

// planForRecord recovers the protocol a running fast was started against.
// The record only stores its target, so match it back to a plan by length.
func planForRecord(st fasting.State, rec fasting.Record) plan.Plan {
	hours := float64(rec.TargetDuration) / fasting.MillisPerHour
	for _, p := range plan.Presets() {
		if p.FastHours == hours {
			return p
		}
	}
	if hours > 0 && hours == float64(int(hours)) {
		return plan.Resolve(plan.CustomID(int(hours)))
	}
	return plan.Resolve(st.ActivePlanID)
}
