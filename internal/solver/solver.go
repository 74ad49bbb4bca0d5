// Package solver provides the exact-solving substrate shared by the
// layout optimizers: a wall-clock budget, an explicit solve status, and
// an exact bipartite assignment maximizer.
//
// Every optimizer runs a two-phase attempt: an exact phase under a
// budget whose outcome is reported as a Status, followed by a
// deterministic heuristic when the exact phase reports Infeasible or
// Fault. The exact phase never panics into the caller; internal faults
// surface as StatusFault.
package solver

import "time"

// Status is the outcome of an exact solve attempt.
type Status int

const (
	// StatusSolved means an optimal or feasible solution was found
	// within the budget.
	StatusSolved Status = iota
	// StatusInfeasible means the constraints admit no solution, or the
	// budget expired before a feasible solution was found.
	StatusInfeasible
	// StatusFault means the solver hit an internal error.
	StatusFault
)

func (s Status) String() string {
	switch s {
	case StatusSolved:
		return "solved"
	case StatusInfeasible:
		return "infeasible"
	default:
		return "fault"
	}
}

// Budget is a wall-clock deadline checked cooperatively inside solve
// loops. The zero value never expires.
type Budget struct {
	deadline time.Time
}

// NewBudget returns a budget expiring after d. A non-positive d yields
// a budget that never expires.
func NewBudget(d time.Duration) Budget {
	if d <= 0 {
		return Budget{}
	}
	return Budget{deadline: time.Now().Add(d)}
}

// Expired reports whether the budget has run out.
func (b Budget) Expired() bool {
	return !b.deadline.IsZero() && time.Now().After(b.deadline)
}
