package movingai

import "fmt"

// Tile is a single map cell, stored as its validated character code.
// The code is kept (rather than only the category) so a parsed map can be
// written back byte for byte.
type Tile byte

// Tile codes of the MovingAI alphabet.
const (
	TileGround         Tile = '.' // Passable terrain
	TileGroundAlt      Tile = 'G' // Passable terrain
	TileOutOfBounds    Tile = '@' // Out of bounds
	TileOutOfBoundsAlt Tile = 'O' // Out of bounds
	TileTree           Tile = 'T' // Trees (unpassable)
	TileSwamp          Tile = 'S' // Swamp (passable, costly)
	TileWater          Tile = 'W' // Water (passable from water only in some variants)
)

// Kind is the terrain category of a tile.
type Kind uint8

// Terrain categories.
const (
	KindGround Kind = iota
	KindOutOfBounds
	KindTree
	KindSwamp
	KindWater
)

// String returns a human-readable category name.
func (k Kind) String() string {
	switch k {
	case KindGround:
		return "Ground"
	case KindOutOfBounds:
		return "OutOfBounds"
	case KindTree:
		return "Tree"
	case KindSwamp:
		return "Swamp"
	case KindWater:
		return "Water"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// ParseTile converts a character code into a Tile.
// Codes outside the alphabet are rejected with ErrUnknownTile.
func ParseTile(c byte) (Tile, error) {
	switch t := Tile(c); t {
	case TileGround, TileGroundAlt, TileOutOfBounds, TileOutOfBoundsAlt,
		TileTree, TileSwamp, TileWater:
		return t, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownTile, c)
	}
}

// Kind returns the terrain category of the tile.
func (t Tile) Kind() Kind {
	switch t {
	case TileGround, TileGroundAlt:
		return KindGround
	case TileOutOfBounds, TileOutOfBoundsAlt:
		return KindOutOfBounds
	case TileTree:
		return KindTree
	case TileSwamp:
		return KindSwamp
	case TileWater:
		return KindWater
	default:
		// Unreachable for tiles produced by ParseTile.
		return KindOutOfBounds
	}
}

// IsTraversable reports whether the tile can be occupied on its own.
// Ground, swamp and water are traversable; out-of-bounds and trees are not.
func (t Tile) IsTraversable() bool {
	switch t.Kind() {
	case KindGround, KindSwamp, KindWater:
		return true
	default:
		return false
	}
}

// IsGround reports whether the tile is plain open ground.
func (t Tile) IsGround() bool {
	return t.Kind() == KindGround
}

// String returns the tile's character code.
func (t Tile) String() string {
	return string(rune(t))
}
