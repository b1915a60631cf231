package reach

import "container/heap"

// runHeap is the Dijkstra variant: vertices are expanded in non-decreasing
// distance order, each at most once. It records exactly the same distances as
// runWorklist.
func (r *runner) runHeap(source int) error {
	visited := make(map[int]bool)
	pq := make(nodePQ, 0, 16)
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: source, dist: 0})

	push := func(n int, d int64) {
		heap.Push(&pq, &nodeItem{id: n, dist: d})
	}

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		// Stale entry from a lazy decrease-key.
		if visited[item.id] {
			continue
		}
		visited[item.id] = true

		if err := r.relax(item.id, push); err != nil {
			return err
		}
	}

	return nil
}

// nodeItem is a heap entry: a vertex and the distance it was pushed with.
type nodeItem struct {
	id   int
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then id. Outdated entries
// stay in the heap and are skipped when popped.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop is called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
