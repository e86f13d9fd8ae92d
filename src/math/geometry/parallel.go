package geometry

import "fmt"

// ParallelGroup lists, for one distinct line, the positions of every other
// input line parallel to it.
type ParallelGroup struct {
	Line Line
	// Index is the position of the first occurrence of Line in the input.
	Index int
	// Members holds the positions found parallel to each occurrence of
	// Line, in input order. An occurrence never lists itself, but it does
	// list the other occurrences of the same line.
	Members []int
}

// GroupParallel builds one group per distinct line, in order of first
// appearance. Lines are keyed by their coefficient triple, so repeated
// lines share a group and their member lists accumulate.
func GroupParallel(lines []Line) ([]ParallelGroup, error) {
	byLine := make(map[Line]int, len(lines))
	groups := make([]ParallelGroup, 0, len(lines))

	for i, l1 := range lines {
		g, ok := byLine[l1]
		if !ok {
			g = len(groups)
			byLine[l1] = g
			groups = append(groups, ParallelGroup{Line: l1, Index: i, Members: []int{}})
		}

		for j, l2 := range lines {
			if i == j {
				continue
			}
			parallel, err := l1.IsParallel(l2)
			if err != nil {
				return nil, fmt.Errorf("grouping line %d: %w", i, err)
			}
			if parallel {
				groups[g].Members = append(groups[g].Members, j)
			}
		}
	}
	return groups, nil
}
