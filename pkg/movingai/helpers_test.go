package movingai

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// mapText renders rows as a complete .map file.
func mapText(rows ...string) string {
	width := 0
	if len(rows) > 0 {
		width = len(rows[0])
	}
	return fmt.Sprintf("type octile\nheight %d\nwidth %d\nmap\n%s\n", len(rows), width, strings.Join(rows, "\n"))
}

// mustMap parses rows into a Map, failing the test on error.
func mustMap(t testing.TB, rows ...string) *Map {
	t.Helper()
	m, err := ParseMap([]byte(mapText(rows...)))
	require.NoError(t, err)
	return m
}
