package solver

import "sort"

// AssignmentProblem is a bipartite assignment maximization: every agent
// must take exactly one allowed task, no task serves two agents, and
// the total score is maximized. Slotting maps products to agents and
// storage locations to tasks.
type AssignmentProblem struct {
	Agents int
	Tasks  int
	// Score returns the objective contribution of pairing agent a with
	// task t. Only called for allowed pairs.
	Score func(a, t int) float64
	// Allowed reports whether agent a may take task t.
	Allowed func(a, t int) bool
}

// Assignment maps each agent index to its task index.
type Assignment []int

const boundEpsilon = 1e-9

// SolveAssignment finds a maximum-score complete assignment by
// branch-and-bound. It returns StatusInfeasible when no complete
// assignment exists (more agents than tasks, an agent with no allowed
// task, or budget expiry before the first incumbent), and StatusSolved
// with the best assignment found otherwise. The search is deterministic
// for identical inputs.
func SolveAssignment(p AssignmentProblem, budget Budget) (Assignment, Status) {
	if p.Agents == 0 {
		return Assignment{}, StatusSolved
	}
	if p.Agents > p.Tasks {
		return nil, StatusInfeasible
	}

	// Candidate tasks per agent, best score first. Ties break on task
	// index so repeated runs explore identically.
	type candidate struct {
		task  int
		score float64
	}
	candidates := make([][]candidate, p.Agents)
	bestPer := make([]float64, p.Agents)
	for a := 0; a < p.Agents; a++ {
		for t := 0; t < p.Tasks; t++ {
			if p.Allowed(a, t) {
				candidates[a] = append(candidates[a], candidate{task: t, score: p.Score(a, t)})
			}
		}
		if len(candidates[a]) == 0 {
			return nil, StatusInfeasible
		}
		sort.SliceStable(candidates[a], func(i, j int) bool {
			return candidates[a][i].score > candidates[a][j].score
		})
		bestPer[a] = candidates[a][0].score
	}

	// suffixBound[a] is the loosest possible score from agents a..end.
	suffixBound := make([]float64, p.Agents+1)
	for a := p.Agents - 1; a >= 0; a-- {
		suffixBound[a] = suffixBound[a+1] + bestPer[a]
	}

	taken := make([]bool, p.Tasks)
	current := make(Assignment, p.Agents)
	var best Assignment
	bestScore := 0.0
	expired := false

	var search func(agent int, score float64)
	search = func(agent int, score float64) {
		if expired {
			return
		}
		if budget.Expired() {
			expired = true
			return
		}
		if agent == p.Agents {
			if best == nil || score > bestScore+boundEpsilon {
				best = append(Assignment(nil), current...)
				bestScore = score
			}
			return
		}
		if best != nil && score+suffixBound[agent] <= bestScore+boundEpsilon {
			return
		}
		for _, c := range candidates[agent] {
			if taken[c.task] {
				continue
			}
			taken[c.task] = true
			current[agent] = c.task
			search(agent+1, score+c.score)
			taken[c.task] = false
			if expired {
				return
			}
		}
	}
	search(0, 0)

	if best == nil {
		return nil, StatusInfeasible
	}
	return best, StatusSolved
}
