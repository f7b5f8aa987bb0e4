package fasting

import (
	"github.com/google/uuid"

	"github.com/ivucicev/zenfast/internal/plan"
)

// Start creates a fresh in-progress record for the given protocol. The
// target is fixed at creation time; changing the schedule later does not
// retarget a running fast.
func Start(p plan.Plan, now int64) Record {
	return Record{
		ID:             uuid.NewString(),
		StartTime:      now,
		TargetDuration: int64(p.FastHours * MillisPerHour),
	}
}

// Stop finalizes a record. Completed captures whether the target was met at
// the moment of stopping. Stopping an already-finalized record returns it
// unchanged.
func Stop(r Record, now int64) Record {
	if !r.Active() {
		return r
	}
	r.EndTime = now
	r.Completed = (now - r.StartTime) >= r.TargetDuration
	return r
}
