package astar

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/wardgrid/costgrid"
	"github.com/katalvlaran/wardgrid/grid"
)

// node is one entry of the planner's index-addressed search table.
// Nodes are allocated once per grid cell and reset in place per search.
type node struct {
	g      int  // best-known cost from start; math.MaxInt when unseen
	h      int  // Manhattan heuristic to the goal
	f      int  // g + h
	parent int  // predecessor cell index, -1 for none
	closed bool // settled; stale heap entries for it are skipped
}

// openItem is a lazy open-set entry: the f value and insertion sequence are
// captured at push time, so later improvements simply push a fresher entry.
type openItem struct {
	idx int // cell index into the node table
	f   int // priority at push time
	seq int // insertion sequence number; the deterministic tie-break
}

// openHeap is a min-heap of openItem ordered by (f, seq) ascending. The
// secondary key makes pop order — and therefore returned paths — identical
// across runs with identical grid state.
type openHeap []openItem

func (h openHeap) Len() int { return len(h) }

func (h openHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}

	return h[i].seq < h[j].seq
}

func (h openHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *openHeap) Push(x interface{}) { *h = append(*h, x.(openItem)) }

func (h *openHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// Planner answers shortest-path queries over a CostGrid. It is reusable
// across many queries and sessions of cost mutation; it holds no locks
// because exactly one session owns it (see package doc).
type Planner struct {
	costs         *costgrid.CostGrid
	width, height int
	nodes         []node
	pq            openHeap
	seq           int
	stats         Stats
}

// NewPlanner constructs a Planner over cg, allocating the node table once.
// Returns ErrNilCostGrid for a nil cost grid.
// Complexity: O(W×H) time and memory.
func NewPlanner(cg *costgrid.CostGrid) (*Planner, error) {
	if cg == nil {
		return nil, ErrNilCostGrid
	}

	return &Planner{
		costs:  cg,
		width:  cg.Width(),
		height: cg.Height(),
		nodes:  make([]node, cg.Width()*cg.Height()),
		pq:     make(openHeap, 0, cg.Width()+cg.Height()),
	}, nil
}

// Stats returns the diagnostic counters of the most recent FindPath call.
func (p *Planner) Stats() Stats { return p.stats }

// FindPath returns the minimum-cost cell sequence from start to goal over
// the current CostGrid state, inclusive of both endpoints. The path's total
// cost is the sum of the cost of every cell entered after start, and no
// cheaper path exists.
//
// Returns ErrUntraversable when either endpoint is out of bounds or
// non-traversable, and ErrNoPath when no route exists. Both are normal,
// recoverable outcomes.
//
// Two calls with identical cost state and endpoints return identical
// sequences: the open set breaks f ties by insertion order.
func (p *Planner) FindPath(start, goal grid.Cell) ([]grid.Cell, error) {
	// 1) Endpoint screening. A blocked endpoint is game state, not an
	//    invariant violation, so it maps to an error value rather than a
	//    panic.
	if !p.walkable(start) || !p.walkable(goal) {
		p.stats = Stats{}

		return nil, ErrUntraversable
	}

	// 2) Reset the node table in place: one O(cells) sweep, no allocation.
	p.reset()

	// 3) Seed the open set with the start node.
	startIdx := p.index(start)
	goalIdx := p.index(goal)
	p.nodes[startIdx].g = 0
	p.nodes[startIdx].h = grid.Manhattan(start, goal)
	p.nodes[startIdx].f = p.nodes[startIdx].h
	p.push(startIdx)

	// 4) Main loop: settle the cheapest open node, stop at the goal.
	var item openItem
	var curIdx int
	for p.pq.Len() > 0 {
		item = heap.Pop(&p.pq).(openItem)
		curIdx = item.idx
		if p.nodes[curIdx].closed {
			continue // stale lazy entry; a cheaper one was settled earlier
		}
		p.nodes[curIdx].closed = true
		p.stats.NodesExpanded++

		if curIdx == goalIdx {
			path := p.reconstruct(curIdx)
			p.stats.LastPathLength = len(path)

			return path, nil
		}

		p.relaxNeighbors(curIdx, goal)
	}

	// 5) Frontier exhausted without reaching the goal.
	return nil, ErrNoPath
}

// relaxNeighbors attempts to improve the four orthogonal neighbors of the
// settled cell curIdx.
func (p *Planner) relaxNeighbors(curIdx int, goal grid.Cell) {
	cx, cy := curIdx%p.width, curIdx/p.width
	var nx, ny, nIdx, tentative int
	for _, d := range grid.Directions4 {
		nx, ny = cx+d.X, cy+d.Y
		if !p.walkable(grid.Cell{X: nx, Y: ny}) {
			continue
		}
		nIdx = ny*p.width + nx
		if p.nodes[nIdx].closed {
			continue
		}
		p.stats.NodesEvaluated++

		// Cost model: entering a cell costs that cell's CostGrid value.
		tentative = p.nodes[curIdx].g + p.costs.Cost(nx, ny)
		if tentative >= p.nodes[nIdx].g {
			continue
		}

		p.nodes[nIdx].parent = curIdx
		p.nodes[nIdx].g = tentative
		p.nodes[nIdx].h = grid.Manhattan(grid.Cell{X: nx, Y: ny}, goal)
		p.nodes[nIdx].f = tentative + p.nodes[nIdx].h
		// Lazy decrease-key: push a fresh entry even if one is already in
		// the heap; the stale one is skipped when popped.
		p.push(nIdx)
	}
}

// push appends a heap entry for node idx with the next sequence number.
func (p *Planner) push(idx int) {
	heap.Push(&p.pq, openItem{idx: idx, f: p.nodes[idx].f, seq: p.seq})
	p.seq++
}

// reconstruct follows parent links from end back to the start and returns
// the path in start→end order.
func (p *Planner) reconstruct(end int) []grid.Cell {
	var path []grid.Cell
	for idx := end; idx != -1; idx = p.nodes[idx].parent {
		path = append(path, grid.Cell{X: idx % p.width, Y: idx / p.width})
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// reset sweeps the node table back to its pristine state and clears the
// open set and counters for a fresh search.
func (p *Planner) reset() {
	for i := range p.nodes {
		p.nodes[i] = node{g: math.MaxInt, h: 0, f: math.MaxInt, parent: -1}
	}
	p.pq = p.pq[:0]
	p.seq = 0
	p.stats = Stats{}
}

// walkable reports whether c is in bounds and traversable under the current
// cost state.
func (p *Planner) walkable(c grid.Cell) bool {
	if c.X < 0 || c.X >= p.width || c.Y < 0 || c.Y >= p.height {
		return false
	}

	return p.costs.Traversable(c.X, c.Y)
}

// index maps a cell to its row-major node-table index.
func (p *Planner) index(c grid.Cell) int { return c.Y*p.width + c.X }
