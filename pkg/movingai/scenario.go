package movingai

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

const versionKey = "version"

// SceneRecord is one benchmark problem of a .scen file.
// Start and Goal use the (x, y) convention: x is the column, y the row.
type SceneRecord struct {
	Bucket        uint32  `json:"bucket" yaml:"bucket"`
	MapFile       string  `json:"map_file" yaml:"map_file"`
	MapWidth      int     `json:"map_width" yaml:"map_width"`
	MapHeight     int     `json:"map_height" yaml:"map_height"`
	Start         Point   `json:"start" yaml:"start"`
	Goal          Point   `json:"goal" yaml:"goal"`
	OptimalLength float64 `json:"optimal_length" yaml:"optimal_length"`
}

// Validate checks the record against the map it refers to: the declared
// dimensions must match, and start and goal must be traversable.
func (r SceneRecord) Validate(m *Map) error {
	if r.MapWidth != m.Width() || r.MapHeight != m.Height() {
		return fmt.Errorf("%w: record declares %dx%d, map is %dx%d",
			ErrShapeMismatch, r.MapWidth, r.MapHeight, m.Width(), m.Height())
	}
	for _, p := range []struct {
		name string
		pt   Point
	}{{"start", r.Start}, {"goal", r.Goal}} {
		c := p.pt.Coords()
		if err := m.CheckBounds(c); err != nil {
			return fmt.Errorf("%s %s: %w", p.name, p.pt, err)
		}
		if !m.IsTraversable(c) {
			return fmt.Errorf("%w: %s %s is %s", ErrInvalidScenario, p.name, p.pt, m.tile(c).Kind())
		}
	}
	return nil
}

// Scenario is a parsed .scen file. Records keep file order.
type Scenario struct {
	Version string        `json:"version" yaml:"version"`
	Records []SceneRecord `json:"records" yaml:"records"`
}

// Bucket groups the records sharing a bucket id.
type Bucket struct {
	ID      uint32
	Records []SceneRecord
}

// Buckets groups records by bucket id. Buckets appear in the order their
// first record appears, and records keep file order within a bucket.
func (s *Scenario) Buckets() []Bucket {
	var out []Bucket
	index := make(map[uint32]int)
	for _, r := range s.Records {
		i, ok := index[r.Bucket]
		if !ok {
			i = len(out)
			index[r.Bucket] = i
			out = append(out, Bucket{ID: r.Bucket})
		}
		out[i].Records = append(out[i].Records, r)
	}
	return out
}

// ParseScen parses the full contents of a .scen file: a "version <V>" line
// followed by one record per line with nine whitespace-separated fields
//
//	<bucket> <map> <width> <height> <start-x> <start-y> <goal-x> <goal-y> <optimal-length>
//
// Blank lines are skipped. Parsing stops at the first malformed line.
func ParseScen(data []byte) (*Scenario, error) {
	lines := splitLines(string(data))
	if len(lines) == 0 {
		return nil, &ParseError{Line: 1, Expected: `"version <V>"`, Err: ErrInvalidHeader}
	}

	key, value, ok := strings.Cut(lines[0], " ")
	value = strings.TrimSpace(value)
	if !ok || key != versionKey {
		return nil, &ParseError{Line: 1, Expected: `"version <V>"`, Found: lines[0], Err: ErrInvalidHeader}
	}
	if _, err := strconv.ParseFloat(value, 64); err != nil {
		return nil, &ParseError{Line: 1, Expected: "numeric version", Found: value, Err: ErrInvalidHeader}
	}

	scen := &Scenario{Version: value}
	for i, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec, err := parseSceneRecord(line, i+2)
		if err != nil {
			return nil, err
		}
		scen.Records = append(scen.Records, rec)
	}
	return scen, nil
}

// ParseScenFile parses a .scen file from disk.
func ParseScenFile(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}
	s, err := ParseScen(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func parseSceneRecord(line string, lineNo int) (SceneRecord, error) {
	fields := strings.Fields(line)
	if len(fields) != 9 {
		return SceneRecord{}, &ParseError{
			Line:     lineNo,
			Expected: "9 fields",
			Found:    line,
			Err:      ErrInvalidScenario,
		}
	}

	fieldErr := func(i int, what string) error {
		return &ParseError{Line: lineNo, Column: i + 1, Expected: what, Found: fields[i], Err: ErrInvalidScenario}
	}

	bucket, err := strconv.ParseUint(fields[0], 10, 32)
	if err != nil {
		return SceneRecord{}, fieldErr(0, "bucket index")
	}

	var ints [6]int
	names := [6]string{"map width", "map height", "start x", "start y", "goal x", "goal y"}
	for k := range ints {
		n, err := strconv.Atoi(fields[2+k])
		if err != nil || n < 0 || (k < 2 && n == 0) {
			return SceneRecord{}, fieldErr(2+k, names[k])
		}
		ints[k] = n
	}

	optimal, err := strconv.ParseFloat(fields[8], 64)
	if err != nil || optimal < 0 || math.IsNaN(optimal) || math.IsInf(optimal, 0) {
		return SceneRecord{}, fieldErr(8, "optimal length")
	}

	rec := SceneRecord{
		Bucket:        uint32(bucket),
		MapFile:       fields[1],
		MapWidth:      ints[0],
		MapHeight:     ints[1],
		Start:         Point{X: ints[2], Y: ints[3]},
		Goal:          Point{X: ints[4], Y: ints[5]},
		OptimalLength: optimal,
	}

	if rec.Start.X >= rec.MapWidth || rec.Start.Y >= rec.MapHeight {
		return SceneRecord{}, fieldErr(4, fmt.Sprintf("start inside %dx%d", rec.MapWidth, rec.MapHeight))
	}
	if rec.Goal.X >= rec.MapWidth || rec.Goal.Y >= rec.MapHeight {
		return SceneRecord{}, fieldErr(6, fmt.Sprintf("goal inside %dx%d", rec.MapWidth, rec.MapHeight))
	}
	return rec, nil
}
