package pathfind

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/pixelgrid/geom"
	"github.com/katalvlaran/pixelgrid/pixmap"
)

// FindPath searches for a cheapest path from start to goal over the
// map's traversable leaves. Edge weight between two leaves is the
// Euclidean distance between their clipped centers times the cost of
// the leaf being entered. ok is false when either endpoint is
// impassable or no path exists; an endpoint outside the logical bounds
// is an error.
func FindPath[T comparable](m *pixmap.Map[T], start, goal geom.Point, cost CostFunc[T], opts ...Option) (Result, bool, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	startLeaf, err := leafAt(m, start)
	if err != nil {
		return Result{}, false, err
	}
	goalLeaf, err := leafAt(m, goal)
	if err != nil {
		return Result{}, false, err
	}
	if !passable(cost(startLeaf.Value())) || !passable(cost(goalLeaf.Value())) {
		return Result{}, false, nil
	}

	startKey := startLeaf.Region().Min()
	goalKey := goalLeaf.Region().Min()
	if startKey == goalKey {
		return Result{
			Path:       []geom.Point{start, goal},
			Cost:       geom.Dist(start, goal) * cost(startLeaf.Value()),
			Considered: 1,
		}, true, nil
	}

	dirs := geom.CardinalDirections
	if o.Diagonals {
		dirs = geom.AllDirections
	}

	// Leaves are keyed by the min corner of their region; the tree never
	// holds two leaves with the same corner.
	nodes := map[geom.Point]*pixmap.Node[T]{startKey: startLeaf}
	gScore := map[geom.Point]float64{startKey: 0}
	prev := make(map[geom.Point]geom.Point)
	closed := make(map[geom.Point]bool)

	pq := &nodePQ{}
	heap.Init(pq)
	seq := 0
	push := func(key geom.Point, f float64) {
		heap.Push(pq, &pqItem{key: key, f: f, seq: seq})
		seq++
	}
	push(startKey, o.Metric.Dist(leafCenter(m, startLeaf), goal))

	considered := 0
	for pq.Len() > 0 {
		item := heap.Pop(pq).(*pqItem)
		if closed[item.key] {
			// Stale duplicate from a lazy decrease-key.
			continue
		}
		closed[item.key] = true
		considered++
		if item.key == goalKey {
			return Result{
				Path:       buildPath(m, nodes, prev, startKey, goalKey, start, goal),
				Cost:       gScore[goalKey],
				Considered: considered,
			}, true, nil
		}

		curRect := leafRect(m, nodes[item.key])
		curCenter := curRect.Center()
		curG := gScore[item.key]
		for _, d := range dirs {
			m.VisitNeighbors(curRect, d,
				func(n *pixmap.Node[T], _ geom.Rect) bool {
					return passable(cost(n.Value()))
				},
				func(n *pixmap.Node[T], _ geom.Rect) {
					key := n.Region().Min()
					if closed[key] {
						return
					}
					nodes[key] = n
					center := leafCenter(m, n)
					tentative := curG + geom.Dist(curCenter, center)*cost(n.Value())
					if old, known := gScore[key]; known && tentative >= old {
						return
					}
					gScore[key] = tentative
					prev[key] = item.key
					push(key, tentative+o.Metric.Dist(center, goal))
				})
		}
	}

	return Result{Considered: considered}, false, nil
}

// buildPath walks prev links back from the goal leaf and assembles the
// waypoint list: the start pixel, intermediate leaf centers, the goal
// pixel.
func buildPath[T comparable](
	m *pixmap.Map[T],
	nodes map[geom.Point]*pixmap.Node[T],
	prev map[geom.Point]geom.Point,
	startKey, goalKey geom.Point,
	start, goal geom.Point,
) []geom.Point {
	keys := []geom.Point{goalKey}
	for k := goalKey; k != startKey; {
		k = prev[k]
		keys = append(keys, k)
	}

	path := make([]geom.Point, len(keys))
	for i, k := range keys {
		path[len(keys)-1-i] = leafCenter(m, nodes[k])
	}
	path[0] = start
	path[len(path)-1] = goal

	return path
}

// leafAt resolves the leaf containing p.
func leafAt[T comparable](m *pixmap.Map[T], p geom.Point) (*pixmap.Node[T], error) {
	path, err := m.PathTo(p)
	if err != nil {
		return nil, err
	}

	return m.NodeAt(path)
}

// leafRect returns the leaf's region clipped to the logical bounds.
func leafRect[T comparable](m *pixmap.Map[T], n *pixmap.Node[T]) geom.Rect {
	return n.Region().Rect().Intersect(m.Bounds())
}

// leafCenter returns the center of the leaf's clipped region.
func leafCenter[T comparable](m *pixmap.Map[T], n *pixmap.Node[T]) geom.Point {
	return leafRect(m, n).Center()
}

// passable reports whether a per-unit cost permits traversal.
func passable(c float64) bool {
	return c > 0 && !math.IsInf(c, 1)
}

// pqItem is one frontier entry. Duplicates for the same leaf may coexist
// in the heap; stale ones are discarded on pop.
type pqItem struct {
	key   geom.Point
	f     float64
	seq   int
	index int
}

// nodePQ is a binary min-heap on f, with insertion order breaking ties
// so results are deterministic.
type nodePQ []*pqItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *nodePQ) Push(x any) {
	item := x.(*pqItem)
	item.index = len(*pq)
	*pq = append(*pq, item)
}

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
