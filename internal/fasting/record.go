package fasting

// MillisPerHour converts between the snapshot's epoch-millisecond
// timestamps and hour-based display values.
const MillisPerHour = 3600000

// Record is one fasting attempt. Timestamps are epoch milliseconds; an
// EndTime of zero means the fast is still running. A record is created by
// Start, finalized exactly once by Stop, and immutable afterwards.
type Record struct {
	ID             string `json:"id"`
	StartTime      int64  `json:"startTime"`
	EndTime        int64  `json:"endTime,omitempty"`
	TargetDuration int64  `json:"targetDuration"`
	Completed      bool   `json:"completed"`
}

// Active reports whether the record has not been finalized yet.
func (r Record) Active() bool {
	return r.EndTime == 0
}

// Duration is the finalized length of the fast in milliseconds. Zero while
// the fast is still active.
func (r Record) Duration() int64 {
	if r.Active() {
		return 0
	}
	return r.EndTime - r.StartTime
}

// DurationHours is the finalized length in hours.
func (r Record) DurationHours() float64 {
	return float64(r.Duration()) / MillisPerHour
}

// Elapsed is the time accrued so far, clamped to zero for clock skew.
func (r Record) Elapsed(now int64) int64 {
	d := now - r.StartTime
	if d < 0 {
		return 0
	}
	return d
}

// ElapsedHours is Elapsed expressed in hours.
func (r Record) ElapsedHours(now int64) float64 {
	return float64(r.Elapsed(now)) / MillisPerHour
}

// Remaining is the time left until the target, never negative.
func (r Record) Remaining(now int64) int64 {
	left := r.TargetDuration - r.Elapsed(now)
	if left < 0 {
		return 0
	}
	return left
}

// PercentComplete is progress toward the target capped at 100. A zero
// target counts as already complete.
func (r Record) PercentComplete(now int64) float64 {
	if r.TargetDuration <= 0 {
		return 100
	}
	pct := 100 * float64(r.Elapsed(now)) / float64(r.TargetDuration)
	if pct > 100 {
		return 100
	}
	return pct
}
