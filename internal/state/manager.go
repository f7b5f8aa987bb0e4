package state

import (
	"fmt"
	"time"

	"github.com/ivucicev/zenfast/internal/fasting"
	"github.com/ivucicev/zenfast/internal/plan"
)

// Store persists the application snapshot. Load reports found=false when no
// usable prior state exists; the manager then falls back to defaults.
type Store interface {
	Load() (fasting.State, bool, error)
	Save(fasting.State) error
}

// Clock supplies the current time as epoch milliseconds.
type Clock func() int64

// Manager owns the snapshot's read-modify-write-persist cycle. Every
// command loads current state, applies a pure transition, and saves the
// result; commands never leave the state machine in an invalid state.
type Manager struct {
	store Store
	clock Clock
}

func New(store Store, clock Clock) *Manager {
	if clock == nil {
		clock = func() int64 { return time.Now().UnixMilli() }
	}
	return &Manager{store: store, clock: clock}
}

func (m *Manager) load() (fasting.State, error) {
	st, found, err := m.store.Load()
	if err != nil {
		return fasting.State{}, fmt.Errorf("load state: %w", err)
	}
	if !found {
		return fasting.DefaultState(), nil
	}
	return st, nil
}

// Snapshot returns the current persisted state, or defaults when none
// exists.
func (m *Manager) Snapshot() (fasting.State, error) {
	return m.load()
}

// ActivePlan resolves today's scheduled protocol.
func (m *Manager) ActivePlan() (plan.Plan, error) {
	st, err := m.load()
	if err != nil {
		return plan.Plan{}, err
	}
	return plan.Resolve(st.PlanIDFor(m.today())), nil
}

// StartFast begins a fast against today's scheduled plan, or planID when
// given. Returns started=false without error if a fast is already running.
func (m *Manager) StartFast(planID string) (fasting.Record, bool, error) {
	st, err := m.load()
	if err != nil {
		return fasting.Record{}, false, err
	}
	if planID == "" {
		planID = st.PlanIDFor(m.today())
	}
	st, started := st.WithStart(plan.Resolve(planID), m.clock())
	if !started {
		return *st.CurrentFast, false, nil
	}
	if err := m.store.Save(st); err != nil {
		return fasting.Record{}, false, fmt.Errorf("save state: %w", err)
	}
	return *st.CurrentFast, true, nil
}

// StopFast finalizes the running fast and archives it. Returns
// stopped=false without error if no fast is active.
func (m *Manager) StopFast() (fasting.Record, bool, error) {
	st, err := m.load()
	if err != nil {
		return fasting.Record{}, false, err
	}
	st, done, stopped := st.WithStop(m.clock())
	if !stopped {
		return fasting.Record{}, false, nil
	}
	if err := m.store.Save(st); err != nil {
		return fasting.Record{}, false, fmt.Errorf("save state: %w", err)
	}
	return done, true, nil
}

// SetScheduleDay assigns a plan to one weekday (0=Sunday .. 6=Saturday).
func (m *Manager) SetScheduleDay(day int, planID string) error {
	st, err := m.load()
	if err != nil {
		return err
	}
	st, err = st.WithScheduleDay(day, planID)
	if err != nil {
		return err
	}
	if err := m.store.Save(st); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

func (m *Manager) today() int {
	return int(time.UnixMilli(m.clock()).In(time.Local).Weekday())
}
