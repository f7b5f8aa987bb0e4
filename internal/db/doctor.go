package db

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/ivucicev/zenfast/internal/fasting"
)

type DoctorReport struct {
	StateRows         int  `json:"state_rows"`
	CorruptState      bool `json:"corrupt_state"`
	HistoryOverflow   int  `json:"history_overflow"`
	CurrentInHistory  bool `json:"current_in_history"`
	ZeroTargetRecords int  `json:"zero_target_records"`
	BadScheduleDays   int  `json:"bad_schedule_days"`
}

// Healthy reports whether every invariant check passed.
func (r DoctorReport) Healthy() bool {
	return !r.CorruptState && r.HistoryOverflow == 0 && !r.CurrentInHistory &&
		r.ZeroTargetRecords == 0 && r.BadScheduleDays == 0
}

// RunDoctor checks the stored snapshot against the state invariants: the
// blob parses, history stays within its bound, the active fast is not
// duplicated into history, targets are positive, and schedule keys are real
// weekdays.
func RunDoctor(sqldb *sql.DB) (DoctorReport, error) {
	report := DoctorReport{}

	var raw string
	err := sqldb.QueryRow(`SELECT data FROM app_state WHERE key = ?`, snapshotKey).Scan(&raw)
	if err == sql.ErrNoRows {
		return report, nil
	}
	if err != nil {
		return report, fmt.Errorf("read state snapshot: %w", err)
	}
	report.StateRows = 1

	var st fasting.State
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		report.CorruptState = true
		return report, nil
	}

	if len(st.History) > fasting.HistoryLimit {
		report.HistoryOverflow = len(st.History) - fasting.HistoryLimit
	}
	for _, rec := range st.History {
		if st.CurrentFast != nil && rec.ID == st.CurrentFast.ID {
			report.CurrentInHistory = true
		}
		if rec.TargetDuration <= 0 {
			report.ZeroTargetRecords++
		}
	}
	if st.CurrentFast != nil && st.CurrentFast.TargetDuration <= 0 {
		report.ZeroTargetRecords++
	}
	for day := range st.WeeklySchedule {
		if day < 0 || day > 6 {
			report.BadScheduleDays++
		}
	}
	return report, nil
}
