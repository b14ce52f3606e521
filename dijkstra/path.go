package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Reconstruct returns the cells from the start to goal by following parent
// links in idx from goal back to the parentless start entry.
//
// goal must have been reached by a search that produced idx. A missing goal,
// a parent that is not itself in idx, or a chain that never reaches a
// parentless entry yields ErrPreconditionViolation.
//
// Complexity: O(path length).
func Reconstruct(goal grid.Cell, idx *VisitedIndex) ([]grid.Cell, error) {
	if idx == nil {
		return nil, fmt.Errorf("%w: nil visited index", ErrPreconditionViolation)
	}
	e, ok := idx.Entry(goal)
	if !ok {
		return nil, fmt.Errorf("%w: goal %s has no visited entry", ErrPreconditionViolation, goal)
	}

	path := []grid.Cell{goal}
	// A valid chain visits each entry at most once.
	for steps := 0; e.HasParent; steps++ {
		if steps >= idx.Len() {
			return nil, fmt.Errorf("%w: parent chain from %s does not terminate", ErrPreconditionViolation, goal)
		}
		parent := e.Parent
		if e, ok = idx.Entry(parent); !ok {
			return nil, fmt.Errorf("%w: parent %s missing from visited index", ErrPreconditionViolation, parent)
		}
		path = append(path, parent)
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
