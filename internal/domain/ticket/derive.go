package ticket

import (
	vo "norte/internal/domain/ticket/valueobjects"
)

// DeriveStatus computes the ticket status that should follow from the
// aggregate completion state of its tasks.
//
// The rule only toggles between Programado, En proceso and Completado.
// Manual statuses (En espera, Revisión, Cancelado) are never produced here
// and are never overridden by it: a ticket parked by an operator stays
// parked no matter what happens to its checklist.
//
// The regression side is intentionally asymmetric: Completado rolls back to
// Programado when every task is un-completed (or the last task is deleted),
// but En proceso does not roll back to Programado when its completed count
// drops to zero. That matches the production behavior this rule was lifted
// from; do not "fix" it without a product decision.
func DeriveStatus(current vo.Status, tasks []*Task) vo.Status {
	total := len(tasks)
	completed := 0
	for _, t := range tasks {
		if t.IsCompleted() {
			completed++
		}
	}

	if total > 0 {
		switch {
		case completed == total:
			return vo.StatusCompleted
		case completed > 0 && current == vo.StatusScheduled:
			return vo.StatusInProgress
		case completed == 0 && current == vo.StatusCompleted:
			return vo.StatusScheduled
		}
	} else if current == vo.StatusCompleted {
		// Last task removed from a completed ticket.
		return vo.StatusScheduled
	}

	return current
}

// Progress returns the completion percentage of the task set, rounded to the
// nearest whole percent. An empty checklist is 0%.
func Progress(tasks []*Task) int {
	total := len(tasks)
	if total == 0 {
		return 0
	}

	completed := 0
	for _, t := range tasks {
		if t.IsCompleted() {
			completed++
		}
	}

	return int(float64(completed)/float64(total)*100 + 0.5)
}
