package queue

import (
	"sort"
	"testing"

	"salonq/models"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from string
		to   string
		want bool
	}{
		{models.StatusPendingApproval, models.StatusConfirmed, true},
		{models.StatusPendingApproval, models.StatusRejected, true},
		{models.StatusPendingApproval, models.StatusCancelled, true},
		{models.StatusPendingApproval, models.StatusInProgress, false},
		{models.StatusPendingApproval, models.StatusCompleted, false},

		{models.StatusWaiting, models.StatusConfirmed, true},
		{models.StatusWaiting, models.StatusInProgress, true},
		{models.StatusWaiting, models.StatusCancelled, true},
		{models.StatusWaiting, models.StatusCompleted, false},
		{models.StatusWaiting, models.StatusRejected, false},

		{models.StatusConfirmed, models.StatusInProgress, true},
		{models.StatusConfirmed, models.StatusCompleted, true},
		{models.StatusConfirmed, models.StatusCancelled, true},
		{models.StatusConfirmed, models.StatusRejected, false},

		{models.StatusInProgress, models.StatusCompleted, true},
		{models.StatusInProgress, models.StatusCancelled, true},
		{models.StatusInProgress, models.StatusConfirmed, false},

		// Terminal statuses admit nothing.
		{models.StatusCompleted, models.StatusCancelled, false},
		{models.StatusCancelled, models.StatusConfirmed, false},
		{models.StatusRejected, models.StatusConfirmed, false},

		{"bogus", models.StatusConfirmed, false},
	}
	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{
		models.StatusPendingApproval, models.StatusWaiting, models.StatusConfirmed,
		models.StatusInProgress, models.StatusCompleted, models.StatusCancelled,
		models.StatusRejected,
	} {
		if !ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "pending", "done", "CONFIRMED"} {
		if ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = true, want false", s)
		}
	}
}

func TestSourcesFor(t *testing.T) {
	got := sourcesFor(models.StatusCompleted)
	sort.Strings(got)
	want := []string{models.StatusConfirmed, models.StatusInProgress}
	if len(got) != len(want) {
		t.Fatalf("sourcesFor(completed) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sourcesFor(completed) = %v, want %v", got, want)
		}
	}

	if got := sourcesFor(models.StatusWaiting); len(got) != 0 {
		t.Errorf("sourcesFor(waiting) = %v, want empty", got)
	}
}

func TestTransitionTableMatchesTerminalSet(t *testing.T) {
	// Every status with outgoing transitions must be non-terminal and vice versa.
	for status := range allowedTransitions {
		if models.IsTerminalStatus(status) {
			t.Errorf("terminal status %q has outgoing transitions", status)
		}
	}
	for _, status := range nonTerminalStatuses() {
		if _, ok := allowedTransitions[status]; !ok {
			t.Errorf("non-terminal status %q has no outgoing transitions", status)
		}
	}
}
