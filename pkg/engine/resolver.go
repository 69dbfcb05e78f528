// Package engine turns approved plans into streamed execution: it resolves
// subtask dependencies, executes one subtask per call, and suspends on tool
// calls and approvals.
package engine

import (
	"fmt"

	"github.com/maestro-ai/maestro/pkg/models"
)

// ReadySet returns the subtasks that may execute now: status PENDING with
// every dependency DONE. Subtasks behind a failed dependency are excluded.
func ReadySet(plan *models.Plan) []*models.Subtask {
	ready := make([]*models.Subtask, 0)
	for _, st := range plan.Subtasks {
		if st.Status != models.SubtaskStatusPending {
			continue
		}
		if dependenciesDone(plan, st) {
			ready = append(ready, st)
		}
	}
	return ready
}

func dependenciesDone(plan *models.Plan, st *models.Subtask) bool {
	for _, depID := range st.Dependencies {
		dep := plan.SubtaskByID(depID)
		if dep == nil || dep.Status != models.SubtaskStatusDone {
			return false
		}
	}
	return true
}

// Validate checks the plan's dependency graph: unknown references,
// self-loops and cycles. Returns all problems found.
func Validate(plan *models.Plan) []error {
	var errs []error

	for _, st := range plan.Subtasks {
		for _, depID := range st.Dependencies {
			if depID == st.ID {
				errs = append(errs, fmt.Errorf("subtask %s depends on itself", st.ID))
				continue
			}
			if plan.SubtaskByID(depID) == nil {
				errs = append(errs, fmt.Errorf("subtask %s depends on unknown subtask %s", st.ID, depID))
			}
		}
	}

	// Cycle detection by DFS three-coloring. Unknown references were
	// reported above and are skipped here.
	const (
		white = 0 // unvisited
		gray  = 1 // on the current DFS path
		black = 2 // fully explored
	)
	colors := make(map[string]int, len(plan.Subtasks))

	var visit func(id string) bool
	visit = func(id string) bool {
		colors[id] = gray
		st := plan.SubtaskByID(id)
		for _, depID := range st.Dependencies {
			if plan.SubtaskByID(depID) == nil || depID == id {
				continue
			}
			switch colors[depID] {
			case gray:
				return true
			case white:
				if visit(depID) {
					return true
				}
			}
		}
		colors[id] = black
		return false
	}

	for _, st := range plan.Subtasks {
		if colors[st.ID] == white && visit(st.ID) {
			errs = append(errs, fmt.Errorf("circular dependencies involving subtask %s", st.ID))
		}
	}
	return errs
}

// ExecutionLevels layers the plan topologically: level 0 holds subtasks
// with no dependencies; level k holds subtasks whose dependencies all sit
// in earlier levels. A cyclic plan returns an error.
func ExecutionLevels(plan *models.Plan) ([][]*models.Subtask, error) {
	if errs := Validate(plan); len(errs) > 0 {
		return nil, fmt.Errorf("invalid plan: %v", errs[0])
	}

	levelOf := make(map[string]int, len(plan.Subtasks))
	placed := 0
	var levels [][]*models.Subtask

	for placed < len(plan.Subtasks) {
		var level []*models.Subtask
		for _, st := range plan.Subtasks {
			if _, done := levelOf[st.ID]; done {
				continue
			}
			eligible := true
			for _, depID := range st.Dependencies {
				if _, done := levelOf[depID]; !done {
					eligible = false
					break
				}
			}
			if eligible {
				level = append(level, st)
			}
		}
		if len(level) == 0 {
			return nil, fmt.Errorf("invalid plan: circular dependencies")
		}
		for _, st := range level {
			levelOf[st.ID] = len(levels)
		}
		placed += len(level)
		levels = append(levels, level)
	}
	return levels, nil
}

// NextSubtask picks the single subtask to execute this call: the first
// ready subtask in plan order, or nil when nothing is ready.
func NextSubtask(plan *models.Plan) *models.Subtask {
	ready := ReadySet(plan)
	if len(ready) == 0 {
		return nil
	}
	return ready[0]
}
