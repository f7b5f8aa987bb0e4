package state_test

import (
	"errors"
	"testing"
	"time"

	"github.com/ivucicev/zenfast/internal/fasting"
	"github.com/ivucicev/zenfast/internal/state"
)

const hour = int64(fasting.MillisPerHour)

func todayWeekday(ms int64) int {
	return int(time.UnixMilli(ms).In(time.Local).Weekday())
}

// memStore is an in-memory Store double. found stays false until the first
// save, mimicking a fresh install.
type memStore struct {
	st      fasting.State
	found   bool
	saves   int
	saveErr error
}

func (m *memStore) Load() (fasting.State, bool, error) {
	return m.st, m.found, nil
}

func (m *memStore) Save(st fasting.State) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.st = st
	m.found = true
	m.saves++
	return nil
}

func fixedClock(at *int64) state.Clock {
	return func() int64 { return *at }
}

func TestStartStopPersistsEachCommand(t *testing.T) {
	t.Parallel()
	store := &memStore{}
	now := int64(1_700_000_000_000)
	m := state.New(store, fixedClock(&now))

	rec, started, err := m.StartFast("")
	if err != nil || !started {
		t.Fatalf("start: started=%v err=%v", started, err)
	}
	if rec.TargetDuration != 16*hour {
		t.Fatalf("default plan target = %d, want 16h", rec.TargetDuration)
	}
	if store.saves != 1 {
		t.Fatalf("start must persist, saves=%d", store.saves)
	}

	// Second start is a no-op and does not persist.
	again, started, err := m.StartFast("24-0")
	if err != nil || started {
		t.Fatalf("start while active: started=%v err=%v", started, err)
	}
	if again.ID != rec.ID {
		t.Fatal("start while active must return the running fast")
	}
	if store.saves != 1 {
		t.Fatal("no-op start must not persist")
	}

	now += 17 * hour
	done, stopped, err := m.StopFast()
	if err != nil || !stopped {
		t.Fatalf("stop: stopped=%v err=%v", stopped, err)
	}
	if !done.Completed {
		t.Fatal("17h on 16h target must be completed")
	}
	if store.saves != 2 {
		t.Fatal("stop must persist")
	}
	if store.st.Fasting() || len(store.st.History) != 1 {
		t.Fatalf("persisted state wrong: %+v", store.st)
	}

	_, stopped, err = m.StopFast()
	if err != nil || stopped {
		t.Fatalf("stop while idle: stopped=%v err=%v", stopped, err)
	}
}

func TestStartUsesScheduledPlanForToday(t *testing.T) {
	t.Parallel()
	store := &memStore{}
	now := int64(1_700_000_000_000)
	m := state.New(store, fixedClock(&now))

	today := todayWeekday(now)
	if err := m.SetScheduleDay(today, "custom-20"); err != nil {
		t.Fatalf("set schedule: %v", err)
	}
	rec, started, err := m.StartFast("")
	if err != nil || !started {
		t.Fatalf("start: %v", err)
	}
	if rec.TargetDuration != 20*hour {
		t.Fatalf("scheduled custom plan target = %d, want 20h", rec.TargetDuration)
	}
}

func TestStartWithExplicitPlanOverride(t *testing.T) {
	t.Parallel()
	store := &memStore{}
	now := int64(1_700_000_000_000)
	m := state.New(store, fixedClock(&now))

	rec, _, err := m.StartFast("24-0")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if rec.TargetDuration != 24*hour {
		t.Fatalf("override target = %d, want 24h", rec.TargetDuration)
	}
}

func TestSetScheduleDayRejectsOutOfRange(t *testing.T) {
	t.Parallel()
	store := &memStore{}
	now := int64(1_700_000_000_000)
	m := state.New(store, fixedClock(&now))
	for _, day := range []int{-1, 7} {
		if err := m.SetScheduleDay(day, "16-8"); err == nil {
			t.Fatalf("day %d must be rejected", day)
		}
	}
	if store.saves != 0 {
		t.Fatal("rejected command must not persist")
	}
}

func TestMissingStateFallsBackToDefaults(t *testing.T) {
	t.Parallel()
	store := &memStore{}
	now := int64(1_700_000_000_000)
	m := state.New(store, fixedClock(&now))

	st, err := m.Snapshot()
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if st.Fasting() || st.ActivePlanID != "16-8" || len(st.History) != 0 {
		t.Fatalf("default state wrong: %+v", st)
	}
	for day := 0; day < 7; day++ {
		if st.PlanIDFor(day) != "16-8" {
			t.Fatalf("default schedule day %d = %q", day, st.PlanIDFor(day))
		}
	}
}

func TestSaveFailureSurfacesAsError(t *testing.T) {
	t.Parallel()
	store := &memStore{saveErr: errors.New("disk full")}
	now := int64(1_700_000_000_000)
	m := state.New(store, fixedClock(&now))
	if _, _, err := m.StartFast(""); err == nil {
		t.Fatal("save failure must surface")
	}
}

func TestStatusProjection(t *testing.T) {
	t.Parallel()
	store := &memStore{}
	now := int64(1_700_000_000_000)
	m := state.New(store, fixedClock(&now))

	idle, err := m.Status()
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if idle.Fasting || idle.Percent != 0 || idle.RemainingMs != 16*hour {
		t.Fatalf("idle status wrong: %+v", idle)
	}
	if idle.Stage.Label != "Blood Sugar Rising" {
		t.Fatalf("idle stage = %q", idle.Stage.Label)
	}

	if _, _, err := m.StartFast(""); err != nil {
		t.Fatalf("start: %v", err)
	}
	now += 13 * hour
	live, err := m.Status()
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if !live.Fasting || live.ElapsedMs != 13*hour || live.RemainingMs != 3*hour {
		t.Fatalf("live status wrong: %+v", live)
	}
	if live.Stage.Label != "Fat Burning" {
		t.Fatalf("stage at 13h = %q", live.Stage.Label)
	}
	if live.Plan.ID != "16-8" {
		t.Fatalf("live plan = %q", live.Plan.ID)
	}
	if live.Percent != 100*13/16.0 {
		t.Fatalf("percent = %v", live.Percent)
	}
}

func TestMetricsProjection(t *testing.T) {
	t.Parallel()
	store := &memStore{}
	now := int64(1_700_000_000_000)
	m := state.New(store, fixedClock(&now))

	// Two finished fasts of 10h and 20h.
	for _, hours := range []int64{10, 20} {
		if _, _, err := m.StartFast(""); err != nil {
			t.Fatalf("start: %v", err)
		}
		now += hours * hour
		if _, _, err := m.StopFast(); err != nil {
			t.Fatalf("stop: %v", err)
		}
		now += 4 * hour
	}
	report, err := m.Metrics()
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}
	if report.TotalHours != 30 {
		t.Fatalf("total = %d, want 30", report.TotalHours)
	}
	if report.LongestHours != 20 {
		t.Fatalf("longest = %v, want 20", report.LongestHours)
	}
	if report.Streak != 2 || report.Fasts != 2 {
		t.Fatalf("streak=%d fasts=%d", report.Streak, report.Fasts)
	}
	if len(report.Achievements) != 15 || len(report.Activity) != 7 {
		t.Fatalf("achievements=%d activity=%d", len(report.Achievements), len(report.Activity))
	}

	// A 25h live fast takes over the longest slot.
	if _, _, err := m.StartFast("24-0"); err != nil {
		t.Fatalf("start: %v", err)
	}
	now += 25 * hour
	report, err = m.Metrics()
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}
	if report.LongestHours != 25 {
		t.Fatalf("longest with live fast = %v, want 25", report.LongestHours)
	}
	if report.TotalHours != 55 {
		t.Fatalf("total with live fast = %d, want 55", report.TotalHours)
	}
}
