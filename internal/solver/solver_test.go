package solver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusString(t *testing.T) {
	assert.Equal(t, "solved", StatusSolved.String())
	assert.Equal(t, "infeasible", StatusInfeasible.String())
	assert.Equal(t, "fault", StatusFault.String())
}

func TestBudget_ZeroNeverExpires(t *testing.T) {
	assert.False(t, NewBudget(0).Expired())
	assert.False(t, NewBudget(-time.Second).Expired())
	assert.False(t, Budget{}.Expired())
}

func TestBudget_Expires(t *testing.T) {
	b := NewBudget(time.Nanosecond)
	time.Sleep(time.Millisecond)
	assert.True(t, b.Expired())
}

func allAllowed(a, t int) bool { return true }

func TestSolveAssignment_Empty(t *testing.T) {
	assignment, status := SolveAssignment(AssignmentProblem{}, NewBudget(0))
	require.Equal(t, StatusSolved, status)
	assert.Empty(t, assignment)
}

func TestSolveAssignment_MoreAgentsThanTasks(t *testing.T) {
	p := AssignmentProblem{
		Agents:  3,
		Tasks:   2,
		Score:   func(a, t int) float64 { return 1 },
		Allowed: allAllowed,
	}
	assignment, status := SolveAssignment(p, NewBudget(0))
	assert.Equal(t, StatusInfeasible, status)
	assert.Nil(t, assignment)
}

func TestSolveAssignment_AgentWithNoAllowedTask(t *testing.T) {
	p := AssignmentProblem{
		Agents: 2,
		Tasks:  2,
		Score:  func(a, t int) float64 { return 1 },
		Allowed: func(a, t int) bool {
			return a != 1
		},
	}
	_, status := SolveAssignment(p, NewBudget(0))
	assert.Equal(t, StatusInfeasible, status)
}

func TestSolveAssignment_BeatsGreedy(t *testing.T) {
	// Greedy gives agent 0 its best task 0 (9), forcing agent 1 onto
	// task 1 (1) for a total of 10. Optimal is 8 + 7 = 15.
	scores := [][]float64{
		{9, 8},
		{7, 1},
	}
	p := AssignmentProblem{
		Agents:  2,
		Tasks:   2,
		Score:   func(a, t int) float64 { return scores[a][t] },
		Allowed: allAllowed,
	}

	assignment, status := SolveAssignment(p, NewBudget(0))
	require.Equal(t, StatusSolved, status)
	require.Len(t, assignment, 2)
	assert.Equal(t, 1, assignment[0])
	assert.Equal(t, 0, assignment[1])
}

func TestSolveAssignment_RespectsAllowed(t *testing.T) {
	// Task 0 carries the highest score everywhere but only agent 1 may
	// take it.
	scores := [][]float64{
		{100, 2, 3},
		{100, 5, 4},
	}
	p := AssignmentProblem{
		Agents: 2,
		Tasks:  3,
		Score:  func(a, t int) float64 { return scores[a][t] },
		Allowed: func(a, t int) bool {
			return t != 0 || a == 1
		},
	}

	assignment, status := SolveAssignment(p, NewBudget(0))
	require.Equal(t, StatusSolved, status)
	assert.Equal(t, 0, assignment[1])
	assert.NotEqual(t, 0, assignment[0])
}

func TestSolveAssignment_ExpiredBudgetIsInfeasible(t *testing.T) {
	b := NewBudget(time.Nanosecond)
	time.Sleep(time.Millisecond)

	p := AssignmentProblem{
		Agents:  2,
		Tasks:   2,
		Score:   func(a, t int) float64 { return 1 },
		Allowed: allAllowed,
	}
	_, status := SolveAssignment(p, b)
	assert.Equal(t, StatusInfeasible, status)
}

func TestSolveAssignment_Deterministic(t *testing.T) {
	scores := [][]float64{
		{5, 5, 3},
		{5, 5, 2},
		{1, 2, 2},
	}
	p := AssignmentProblem{
		Agents:  3,
		Tasks:   3,
		Score:   func(a, t int) float64 { return scores[a][t] },
		Allowed: allAllowed,
	}

	first, status := SolveAssignment(p, NewBudget(0))
	require.Equal(t, StatusSolved, status)
	for i := 0; i < 5; i++ {
		next, status := SolveAssignment(p, NewBudget(0))
		require.Equal(t, StatusSolved, status)
		assert.Equal(t, first, next)
	}
}
