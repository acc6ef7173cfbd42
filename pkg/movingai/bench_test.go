package movingai

import (
	"strings"
	"testing"
)

// benchMap builds a 512x512 map with a regular obstacle pattern.
func benchMap(b *testing.B) *Map {
	b.Helper()
	rows := make([]string, 512)
	var sb strings.Builder
	for r := range rows {
		sb.Reset()
		for c := 0; c < 512; c++ {
			switch {
			case r%32 == 0 && c%7 != 0:
				sb.WriteByte('@')
			case c%32 == 16 && r%5 != 0:
				sb.WriteByte('T')
			default:
				sb.WriteByte('.')
			}
		}
		rows[r] = sb.String()
	}
	return mustMap(b, rows...)
}

func BenchmarkNeighbors_AllTraversable(b *testing.B) {
	m := benchMap(b)
	var coords []Coords
	for c := range m.Coords() {
		if m.IsTraversable(c) {
			coords = append(coords, c)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, c := range coords {
			_ = m.Neighbors(c)
		}
	}
}

func BenchmarkAppendNeighbors(b *testing.B) {
	m := benchMap(b)
	buf := make([]Coords, 0, 8)
	c := Coords{Row: 1, Col: 1}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf = m.AppendNeighbors(buf[:0], c)
	}
}

func BenchmarkParseMap(b *testing.B) {
	text, _ := benchMap(b).MarshalText()

	b.SetBytes(int64(len(text)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ParseMap(text); err != nil {
			b.Fatal(err)
		}
	}
}
