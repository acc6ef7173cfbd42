// Package movingai parses and queries grid maps and scenario files in the
// MovingAI benchmark format.
//
// A Map is immutable once built, so a single instance may be shared by any
// number of goroutines without locking.
package movingai

import (
	"fmt"
	"math"
)

// TypeOctile is the only map type tag accepted by the parser.
const TypeOctile = "octile"

// Map is a parsed MovingAI grid stored row-major.
type Map struct {
	typ    string
	height int
	width  int
	tiles  []Tile
}

// NewMap builds a map from row-major tiles. The tile slice is copied.
// The type must be TypeOctile and every tile must belong to the MovingAI
// alphabet.
func NewMap(typ string, height, width int, tiles []Tile) (*Map, error) {
	if typ != TypeOctile {
		return nil, fmt.Errorf("%w: type %q", ErrInvalidHeader, typ)
	}
	if height <= 0 || width <= 0 || width > math.MaxInt/height {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, height, width)
	}
	if len(tiles) != height*width {
		return nil, fmt.Errorf("%w: %d tiles for %dx%d", ErrShapeMismatch, len(tiles), height, width)
	}
	for i, t := range tiles {
		if _, err := ParseTile(byte(t)); err != nil {
			return nil, fmt.Errorf("tile %d: %w", i, err)
		}
	}

	stored := make([]Tile, len(tiles))
	copy(stored, tiles)
	return &Map{typ: typ, height: height, width: width, tiles: stored}, nil
}

// Type returns the map type tag from the header.
func (m *Map) Type() string { return m.typ }

// Height returns the number of rows.
func (m *Map) Height() int { return m.height }

// Width returns the number of columns.
func (m *Map) Width() int { return m.width }

// Len returns the number of stored tiles (Width * Height).
func (m *Map) Len() int { return len(m.tiles) }

// InBounds reports whether c lies inside the map.
func (m *Map) InBounds(c Coords) bool {
	return c.Row >= 0 && c.Row < m.height && c.Col >= 0 && c.Col < m.width
}

// CheckBounds returns a *BoundsError if c lies outside the map.
func (m *Map) CheckBounds(c Coords) error {
	if !m.InBounds(c) {
		return &BoundsError{Coords: c, Height: m.height, Width: m.width}
	}
	return nil
}

// Get returns the tile at c.
func (m *Map) Get(c Coords) (Tile, error) {
	if err := m.CheckBounds(c); err != nil {
		return 0, err
	}
	return m.tiles[m.index(c)], nil
}

// At returns the tile at (row, col). It applies the same bounds check as Get.
func (m *Map) At(row, col int) (Tile, error) {
	return m.Get(Coords{Row: row, Col: col})
}

// FreeStates counts the traversable tiles of the map.
func (m *Map) FreeStates() int {
	n := 0
	for _, t := range m.tiles {
		if t.IsTraversable() {
			n++
		}
	}
	return n
}

// TileCounts returns the number of tiles for each code present in the map.
func (m *Map) TileCounts() map[Tile]int {
	counts := make(map[Tile]int)
	for _, t := range m.tiles {
		counts[t]++
	}
	return counts
}

// Row returns a copy of the tiles of one row.
func (m *Map) Row(row int) ([]Tile, error) {
	if row < 0 || row >= m.height {
		return nil, &BoundsError{Coords: Coords{Row: row}, Height: m.height, Width: m.width}
	}
	out := make([]Tile, m.width)
	copy(out, m.tiles[row*m.width:(row+1)*m.width])
	return out, nil
}

func (m *Map) index(c Coords) int {
	return c.Row*m.width + c.Col
}

// tile returns the tile at c without a bounds check.
func (m *Map) tile(c Coords) Tile {
	return m.tiles[m.index(c)]
}
