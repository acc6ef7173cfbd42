package movingai

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Map file section tags.
const (
	headerTag  = "type " + TypeOctile
	heightKey  = "height"
	widthKey   = "width"
	sectionTag = "map"
)

// ParseMap parses the full contents of a .map file.
//
// The header must be exactly:
//
//	type octile
//	height <H>
//	width <W>
//	map
//
// followed by H lines of exactly W tile codes. Parsing stops at the first
// violation and returns a *ParseError; no partial map is ever returned.
// Both "\n" and "\r\n" terminators are accepted, and empty lines after the
// last row are ignored.
func ParseMap(data []byte) (*Map, error) {
	lines := splitLines(string(data))

	if err := expectLiteral(lines, 0, headerTag, ErrInvalidHeader); err != nil {
		return nil, err
	}
	height, err := parseDimension(lines, 1, heightKey)
	if err != nil {
		return nil, err
	}
	width, err := parseDimension(lines, 2, widthKey)
	if err != nil {
		return nil, err
	}
	if err := expectLiteral(lines, 3, sectionTag, ErrInvalidSection); err != nil {
		return nil, err
	}

	body := lines[4:]
	// Bound the allocation by the input size so a lying header cannot force
	// a huge (or overflowing) buffer before the body is checked.
	capacity := len(data)
	if height <= len(data) && width <= len(data) {
		capacity = min(capacity, height*width)
	}
	tiles := make([]Tile, 0, capacity)

	for row := 0; row < height; row++ {
		lineNo := 5 + row
		if row >= len(body) {
			return nil, &ParseError{
				Line:     lineNo,
				Expected: fmt.Sprintf("%d map rows", height),
				Found:    fmt.Sprintf("%d rows", len(body)),
				Err:      ErrShapeMismatch,
			}
		}

		line := body[row]
		if len(line) != width {
			return nil, &ParseError{
				Line:     lineNo,
				Expected: fmt.Sprintf("%d tiles", width),
				Found:    line,
				Err:      ErrShapeMismatch,
			}
		}

		for col := 0; col < len(line); col++ {
			t, err := ParseTile(line[col])
			if err != nil {
				return nil, &ParseError{
					Line:     lineNo,
					Column:   col + 1,
					Expected: "one of .G@OTSW",
					Found:    line[col : col+1],
					Err:      ErrUnknownTile,
				}
			}
			tiles = append(tiles, t)
		}
	}

	if len(body) > height {
		return nil, &ParseError{
			Line:     5 + height,
			Expected: "end of map",
			Found:    body[height],
			Err:      ErrShapeMismatch,
		}
	}

	return &Map{typ: TypeOctile, height: height, width: width, tiles: tiles}, nil
}

// ParseMapFile parses a .map file from disk.
func ParseMapFile(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading map file: %w", err)
	}
	m, err := ParseMap(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// splitLines splits text into lines, dropping "\r" terminators and any
// empty lines at the end of the input.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func expectLiteral(lines []string, i int, want string, kind error) error {
	found := ""
	if i < len(lines) {
		found = lines[i]
	}
	if found != want {
		return &ParseError{Line: i + 1, Expected: strconv.Quote(want), Found: found, Err: kind}
	}
	return nil
}

// parseDimension reads a "<key> <N>" header line with N > 0.
func parseDimension(lines []string, i int, key string) (int, error) {
	found := ""
	if i < len(lines) {
		found = lines[i]
	}

	name, value, ok := strings.Cut(found, " ")
	if !ok || name != key {
		return 0, &ParseError{Line: i + 1, Expected: strconv.Quote(key + " <N>"), Found: found, Err: ErrInvalidHeader}
	}

	bad := &ParseError{Line: i + 1, Expected: "positive integer " + key, Found: value, Err: ErrInvalidDimension}
	if !isDecimal(value) {
		return 0, bad
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return 0, bad
	}
	return n, nil
}

// isDecimal reports whether s is a plain decimal number: ASCII digits only,
// no sign, no leading zero.
func isDecimal(s string) bool {
	if s == "" || s[0] == '0' {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
