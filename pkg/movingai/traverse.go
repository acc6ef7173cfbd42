package movingai

// neighborOffsets lists the 8 neighbour offsets as (dRow, dCol) in
// row-major order, which fixes the order of Neighbors output.
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// IsTraversable reports whether the tile at c can be occupied.
// A coordinate outside the map is reported as not traversable; use
// CheckBounds to tell the two cases apart.
func (m *Map) IsTraversable(c Coords) bool {
	return m.InBounds(c) && m.tile(c).IsTraversable()
}

// IsTraversableFrom reports whether a single step from one tile to an
// adjacent one is legal. The destination must be traversable and within one
// row and one column of the origin. A diagonal step additionally needs both
// corner tiles, (from.Row, to.Col) and (to.Row, from.Col), to be traversable,
// so a move can never cut past a blocked corner.
//
// Out-of-bounds origins or destinations are reported as false.
func (m *Map) IsTraversableFrom(from, to Coords) bool {
	if !m.InBounds(from) || !m.IsTraversable(to) {
		return false
	}

	dRow, dCol := to.Row-from.Row, to.Col-from.Col
	if dRow < -1 || dRow > 1 || dCol < -1 || dCol > 1 || (dRow == 0 && dCol == 0) {
		return false
	}

	if dRow != 0 && dCol != 0 {
		return m.tile(Coords{Row: from.Row, Col: to.Col}).IsTraversable() &&
			m.tile(Coords{Row: to.Row, Col: from.Col}).IsTraversable()
	}
	return true
}

// Neighbors returns the coordinates reachable from c in one legal step,
// in row-major order. The result is empty when c is out of bounds, when c
// itself is not traversable, or when every move is blocked.
func (m *Map) Neighbors(c Coords) []Coords {
	return m.AppendNeighbors(make([]Coords, 0, len(neighborOffsets)), c)
}

// AppendNeighbors appends the legal neighbours of c to dst and returns the
// extended slice. It lets search loops reuse one buffer across calls.
func (m *Map) AppendNeighbors(dst []Coords, c Coords) []Coords {
	if !m.IsTraversable(c) {
		return dst
	}
	for _, off := range neighborOffsets {
		n := c.Add(off[0], off[1])
		if m.IsTraversableFrom(c, n) {
			dst = append(dst, n)
		}
	}
	return dst
}
