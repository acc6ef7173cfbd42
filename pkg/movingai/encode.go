package movingai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

// mapDocument is the structured form of a Map used for JSON and YAML.
type mapDocument struct {
	Type   string   `json:"type" yaml:"type"`
	Height int      `json:"height" yaml:"height"`
	Width  int      `json:"width" yaml:"width"`
	Rows   []string `json:"rows" yaml:"rows"`
}

// MarshalText encodes the map in the .map text format.
// ParseMap on the result yields an identical map.
func (m *Map) MarshalText() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(32 + m.height*(m.width+1))

	buf.WriteString("type " + m.typ + "\n")
	buf.WriteString(heightKey + " " + strconv.Itoa(m.height) + "\n")
	buf.WriteString(widthKey + " " + strconv.Itoa(m.width) + "\n")
	buf.WriteString(sectionTag + "\n")
	for row := 0; row < m.height; row++ {
		for _, t := range m.tiles[row*m.width : (row+1)*m.width] {
			buf.WriteByte(byte(t))
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// WriteTo writes the map in the .map text format.
func (m *Map) WriteTo(w io.Writer) (int64, error) {
	data, err := m.MarshalText()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	return int64(n), err
}

func (m *Map) document() mapDocument {
	doc := mapDocument{Type: m.typ, Height: m.height, Width: m.width, Rows: make([]string, m.height)}
	row := make([]byte, m.width)
	for r := 0; r < m.height; r++ {
		for c, t := range m.tiles[r*m.width : (r+1)*m.width] {
			row[c] = byte(t)
		}
		doc.Rows[r] = string(row)
	}
	return doc
}

// fromDocument validates a decoded document with the same rules ParseMap
// applies to text.
func fromDocument(doc mapDocument) (*Map, error) {
	if doc.Type != TypeOctile {
		return nil, fmt.Errorf("%w: type %q", ErrInvalidHeader, doc.Type)
	}
	if doc.Height <= 0 || doc.Width <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, doc.Height, doc.Width)
	}
	if len(doc.Rows) != doc.Height {
		return nil, fmt.Errorf("%w: %d rows for height %d", ErrShapeMismatch, len(doc.Rows), doc.Height)
	}

	for r, line := range doc.Rows {
		if len(line) != doc.Width {
			return nil, fmt.Errorf("%w: row %d has %d tiles, want %d", ErrShapeMismatch, r, len(line), doc.Width)
		}
	}

	// Every row now has Width bytes, so the product is bounded by the input.
	tiles := make([]Tile, 0, doc.Height*doc.Width)
	for r, line := range doc.Rows {
		for c := 0; c < len(line); c++ {
			t, err := ParseTile(line[c])
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", r, c, err)
			}
			tiles = append(tiles, t)
		}
	}
	return &Map{typ: doc.Type, height: doc.Height, width: doc.Width, tiles: tiles}, nil
}

// MarshalJSON encodes the map as {"type", "height", "width", "rows"}.
func (m *Map) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.document())
}

// UnmarshalJSON decodes and validates a map produced by MarshalJSON.
func (m *Map) UnmarshalJSON(data []byte) error {
	var doc mapDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	parsed, err := fromDocument(doc)
	if err != nil {
		return err
	}
	*m = *parsed
	return nil
}

// MarshalYAML encodes the map with the same fields as MarshalJSON.
func (m *Map) MarshalYAML() (interface{}, error) {
	return m.document(), nil
}

// UnmarshalYAML decodes and validates a map produced by MarshalYAML.
func (m *Map) UnmarshalYAML(value *yaml.Node) error {
	var doc mapDocument
	if err := value.Decode(&doc); err != nil {
		return err
	}
	parsed, err := fromDocument(doc)
	if err != nil {
		return err
	}
	*m = *parsed
	return nil
}
