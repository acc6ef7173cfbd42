package movingai

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMap(t *testing.T) {
	tiles := []Tile{'.', '.', '@', '.', 'T', 'S'}
	m, err := NewMap(TypeOctile, 2, 3, tiles)
	require.NoError(t, err)

	assert.Equal(t, TypeOctile, m.Type())
	assert.Equal(t, 2, m.Height())
	assert.Equal(t, 3, m.Width())
	assert.Equal(t, 6, m.Len())

	// The input slice is copied.
	tiles[0] = TileTree
	tile, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, TileGround, tile)
}

func TestNewMap_Errors(t *testing.T) {
	cases := []struct {
		name          string
		height, width int
		tiles         []Tile
		err           error
	}{
		{"ZeroHeight", 0, 2, nil, ErrInvalidDimension},
		{"NegativeWidth", 2, -1, nil, ErrInvalidDimension},
		{"ShortBuffer", 2, 2, []Tile{'.', '.', '.'}, ErrShapeMismatch},
		{"UnknownTile", 1, 2, []Tile{'.', 'x'}, ErrUnknownTile},
		{"AreaOverflow", math.MaxInt/2 + 1, 2, nil, ErrInvalidDimension},
		{"AreaOverflowWide", 3, math.MaxInt / 2, nil, ErrInvalidDimension},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewMap(TypeOctile, tc.height, tc.width, tc.tiles)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewMap error = %v; want %v", err, tc.err)
			}
		})
	}
}

func TestNewMap_Type(t *testing.T) {
	tiles := []Tile{'.', '.'}
	for _, typ := range []string{"", "tile", "Octile", "octile "} {
		_, err := NewMap(typ, 1, 2, tiles)
		assert.ErrorIs(t, err, ErrInvalidHeader, "type %q", typ)
	}

	m, err := NewMap(TypeOctile, 1, 2, tiles)
	require.NoError(t, err)
	text, err := m.MarshalText()
	require.NoError(t, err)
	parsed, err := ParseMap(text)
	require.NoError(t, err)
	assert.Equal(t, m, parsed)
}

func TestMap_Get(t *testing.T) {
	m := mustMap(t,
		".T.",
		"@.W",
	)

	tile, err := m.Get(Coords{Row: 0, Col: 1})
	require.NoError(t, err)
	assert.Equal(t, TileTree, tile)

	tile, err = m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, TileWater, tile)

	for _, c := range []Coords{{-1, 0}, {0, -1}, {2, 0}, {0, 3}, {5, 5}} {
		_, err := m.Get(c)
		require.ErrorIs(t, err, ErrOutOfBounds, "Get(%s)", c)

		var be *BoundsError
		require.ErrorAs(t, err, &be)
		assert.Equal(t, c, be.Coords)
		assert.Equal(t, 2, be.Height)
		assert.Equal(t, 3, be.Width)
	}
}

func TestMap_CheckBounds(t *testing.T) {
	m := mustMap(t, "..", "..")
	assert.NoError(t, m.CheckBounds(Coords{Row: 1, Col: 1}))
	assert.ErrorIs(t, m.CheckBounds(Coords{Row: 2, Col: 1}), ErrOutOfBounds)
	assert.True(t, m.InBounds(Coords{}))
	assert.False(t, m.InBounds(Coords{Row: 0, Col: 2}))
}

func TestMap_Row(t *testing.T) {
	m := mustMap(t, ".T", "W@")

	row, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []Tile{TileWater, TileOutOfBounds}, row)

	_, err = m.Row(2)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestMap_FreeStates(t *testing.T) {
	m := mustMap(t,
		".....",
		"..@..",
		".....",
	)
	assert.Equal(t, m.Width()*m.Height()-1, m.FreeStates())
	// Stable across calls.
	assert.Equal(t, m.FreeStates(), m.FreeStates())

	mixed := mustMap(t, ".GSW", "@OT.")
	assert.Equal(t, 5, mixed.FreeStates())
}

func TestMap_TileCounts(t *testing.T) {
	m := mustMap(t, ".@.", "TT.")
	counts := m.TileCounts()
	assert.Equal(t, 3, counts[TileGround])
	assert.Equal(t, 1, counts[TileOutOfBounds])
	assert.Equal(t, 2, counts[TileTree])
	assert.Zero(t, counts[TileWater])
}

func TestMap_Coords(t *testing.T) {
	m := mustMap(t,
		"....",
		"....",
		"....",
	)

	var got []Coords
	for c := range m.Coords() {
		got = append(got, c)
	}
	require.Len(t, got, m.Width()*m.Height())

	seen := make(map[Coords]bool)
	for i, c := range got {
		assert.True(t, m.InBounds(c))
		assert.False(t, seen[c], "duplicate %s", c)
		seen[c] = true
		assert.Equal(t, Coords{Row: i / m.Width(), Col: i % m.Width()}, c)
		if i > 0 {
			assert.True(t, got[i-1].Less(c))
		}
	}

	// A second pass yields the same sequence.
	var again []Coords
	for c := range m.Coords() {
		again = append(again, c)
	}
	assert.Equal(t, got, again)
}

func TestMap_CoordsEarlyExit(t *testing.T) {
	m := mustMap(t, "...", "...")
	n := 0
	for range m.Coords() {
		n++
		if n == 4 {
			break
		}
	}
	assert.Equal(t, 4, n)
}

func TestPoint_Coords(t *testing.T) {
	p := Point{X: 7, Y: 2}
	assert.Equal(t, Coords{Row: 2, Col: 7}, p.Coords())
	assert.Equal(t, "7,2", p.String())
}
