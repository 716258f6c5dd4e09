package grid

// Components finds all contiguous regions of passable cells according to
// conn. Each component lists its cells in BFS discovery order; components
// are ordered by their first cell in row-major order.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Components(conn Connectivity) [][]Coord {
	seen := make([]bool, len(g.cells))
	var comps [][]Coord

	for i0, k := range g.cells {
		if k == Wall || seen[i0] {
			continue
		}
		seen[i0] = true
		queue := []int{i0}
		var comp []Coord

		for qi := 0; qi < len(queue); qi++ {
			u := g.Coordinate(queue[qi])
			comp = append(comp, u)
			for _, v := range g.Neighbors(u, conn) {
				vi := g.index(v)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps
}

// Reachable reports whether to can be reached from from through passable
// cells under conn. Both endpoints must themselves be passable.
// Complexity: O(W·H·d) worst case; stops as soon as to is discovered.
func (g *Grid) Reachable(from, to Coord, conn Connectivity) bool {
	if !g.IsPassable(from) || !g.IsPassable(to) {
		return false
	}
	if from == to {
		return true
	}
	seen := make([]bool, len(g.cells))
	seen[g.index(from)] = true
	queue := []Coord{from}
	for qi := 0; qi < len(queue); qi++ {
		for _, v := range g.Neighbors(queue[qi], conn) {
			if v == to {
				return true
			}
			vi := g.index(v)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, v)
			}
		}
	}

	return false
}
