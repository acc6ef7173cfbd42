package movingai

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTile(t *testing.T) {
	tests := []struct {
		code        byte
		kind        Kind
		traversable bool
	}{
		{'.', KindGround, true},
		{'G', KindGround, true},
		{'@', KindOutOfBounds, false},
		{'O', KindOutOfBounds, false},
		{'T', KindTree, false},
		{'S', KindSwamp, true},
		{'W', KindWater, true},
	}

	for _, tc := range tests {
		t.Run(string(tc.code), func(t *testing.T) {
			tile, err := ParseTile(tc.code)
			require.NoError(t, err)
			assert.Equal(t, Tile(tc.code), tile)
			assert.Equal(t, tc.kind, tile.Kind())
			assert.Equal(t, tc.traversable, tile.IsTraversable())
			assert.Equal(t, string(tc.code), tile.String())
		})
	}
}

func TestParseTile_Unknown(t *testing.T) {
	for _, c := range []byte{'x', ' ', '#', 'g', 0} {
		_, err := ParseTile(c)
		if !errors.Is(err, ErrUnknownTile) {
			t.Errorf("ParseTile(%q) error = %v; want ErrUnknownTile", c, err)
		}
	}
}

func TestTile_IsGround(t *testing.T) {
	assert.True(t, TileGround.IsGround())
	assert.True(t, TileGroundAlt.IsGround())
	assert.False(t, TileSwamp.IsGround())
	assert.False(t, TileTree.IsGround())
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindGround, "Ground"},
		{KindOutOfBounds, "OutOfBounds"},
		{KindTree, "Tree"},
		{KindSwamp, "Swamp"},
		{KindWater, "Water"},
		{Kind(42), "Unknown(42)"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, tc.kind.String())
	}
}
