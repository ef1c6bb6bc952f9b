// Package annotation derives task status and progress from status events.
package annotation

import "annotation-review/internal/domain"

// flags records which recognized states appear among a task's events.
type flags struct {
	verified  bool
	rejected  bool
	completed bool
}

// scan collects state flags; unrecognized and assigned events set nothing.
func scan(events []domain.StatusEvent) flags {
	var f flags
	for _, event := range events {
		switch event.State {
		case domain.StatusStateVerified:
			f.verified = true
		case domain.StatusStateRejected:
			f.rejected = true
		case domain.StatusStateCompleted:
			f.completed = true
		}
	}
	return f
}

// Classify maps status events to a canonical status.
// Precedence is rejected, verified, completed, then pending.
func Classify(events []domain.StatusEvent) domain.CanonicalStatus {
	f := scan(events)
	switch {
	case f.rejected:
		return domain.CanonicalStatusRejected
	case f.verified:
		return domain.CanonicalStatusVerified
	case f.completed:
		return domain.CanonicalStatusCompleted
	default:
		return domain.CanonicalStatusPending
	}
}

// TaskStatus classifies the status events of one task.
func TaskStatus(task domain.Task) domain.CanonicalStatus {
	return Classify(task.StatusEvents)
}
