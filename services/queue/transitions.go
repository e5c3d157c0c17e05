package queue

import "salonq/models"

// allowedTransitions maps a current status to the statuses it may move to.
// Terminal statuses (completed, cancelled, rejected) have no entry.
var allowedTransitions = map[string][]string{
	models.StatusPendingApproval: {models.StatusConfirmed, models.StatusRejected, models.StatusCancelled},
	models.StatusWaiting:         {models.StatusConfirmed, models.StatusInProgress, models.StatusCancelled},
	models.StatusConfirmed:       {models.StatusInProgress, models.StatusCompleted, models.StatusCancelled},
	models.StatusInProgress:      {models.StatusCompleted, models.StatusCancelled},
}

// ValidStatus reports whether s is a known queue entry status.
func ValidStatus(s string) bool {
	switch s {
	case models.StatusPendingApproval, models.StatusWaiting, models.StatusConfirmed,
		models.StatusInProgress, models.StatusCompleted, models.StatusCancelled,
		models.StatusRejected:
		return true
	}
	return false
}

// CanTransition reports whether an entry may move from one status to another.
func CanTransition(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// sourcesFor returns every status from which `to` is reachable. Used as the
// guarded-update filter so a transition only lands when the entry is still in a
// state that permits it.
func sourcesFor(to string) []string {
	var from []string
	for status, nexts := range allowedTransitions {
		for _, next := range nexts {
			if next == to {
				from = append(from, status)
				break
			}
		}
	}
	return from
}

// nonTerminalStatuses is the set of statuses counted toward a salon's live queue.
func nonTerminalStatuses() []string {
	return []string{
		models.StatusPendingApproval,
		models.StatusWaiting,
		models.StatusConfirmed,
		models.StatusInProgress,
	}
}
