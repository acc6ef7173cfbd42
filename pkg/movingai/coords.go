package movingai

import (
	"fmt"
	"iter"
)

// Coords is a grid position. Row is the y axis, Col the x axis.
type Coords struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// String returns the coordinate as "(row, col)".
func (c Coords) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Less orders coordinates in row-major order.
func (c Coords) Less(o Coords) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}
	return c.Col < o.Col
}

// Add returns c shifted by the given row and column offsets.
func (c Coords) Add(dRow, dCol int) Coords {
	return Coords{Row: c.Row + dRow, Col: c.Col + dCol}
}

// Point is a scenario position in (x, y) order, where x is the column and
// y is the row.
type Point struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Coords converts the point to grid coordinates.
func (p Point) Coords() Coords {
	return Coords{Row: p.Y, Col: p.X}
}

// String returns the point as "x,y".
func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Coords returns every coordinate of the map in row-major order.
// The sequence is restartable: each range over it starts again at (0, 0).
func (m *Map) Coords() iter.Seq[Coords] {
	return func(yield func(Coords) bool) {
		for row := 0; row < m.height; row++ {
			for col := 0; col < m.width; col++ {
				if !yield(Coords{Row: row, Col: col}) {
					return
				}
			}
		}
	}
}
