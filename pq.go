package astar

// PriorityQueueItem is one open-set entry. A cell may have several entries
// in the queue at once; entries for closed cells are discarded on pop.
type PriorityQueueItem struct {
	Cell   Cell
	GScore float64
	FCost  float64
}

// PriorityQueue implements heap.Interface ordered by (FCost, GScore, Cell).
// It never updates an entry in place.
type PriorityQueue []PriorityQueueItem

func (queue PriorityQueue) Len() int { return len(queue) }

func (queue PriorityQueue) Less(i, j int) bool {
	a, b := queue[i], queue[j]
	if a.FCost != b.FCost {
		return a.FCost < b.FCost
	}
	if a.GScore != b.GScore {
		return a.GScore < b.GScore
	}
	return a.Cell.Less(b.Cell)
}

func (queue PriorityQueue) Swap(i, j int) { queue[i], queue[j] = queue[j], queue[i] }

func (queue *PriorityQueue) Push(x any) {
	*queue = append(*queue, x.(PriorityQueueItem))
}

func (queue *PriorityQueue) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	*queue = oldQueue[:n-1]
	return item
}

// Cells returns the distinct cells currently queued, sorted by Cell.Less.
func (queue PriorityQueue) Cells() []Cell {
	seen := make(map[Cell]struct{}, len(queue))
	out := make([]Cell, 0, len(queue))
	for _, item := range queue {
		if _, dup := seen[item.Cell]; dup {
			continue
		}
		seen[item.Cell] = struct{}{}
		out = append(out, item.Cell)
	}
	sortCells(out)
	return out
}
