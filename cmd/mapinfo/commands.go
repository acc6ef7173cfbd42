package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/movingai/internal/config"
	"github.com/Faultbox/movingai/internal/logger"
	"github.com/Faultbox/movingai/pkg/movingai"
)

// mapSummary is the structured result of the info command.
type mapSummary struct {
	File       string         `json:"file" yaml:"file"`
	Type       string         `json:"type" yaml:"type"`
	Width      int            `json:"width" yaml:"width"`
	Height     int            `json:"height" yaml:"height"`
	FreeStates int            `json:"free_states" yaml:"free_states"`
	Tiles      map[string]int `json:"tiles" yaml:"tiles"`
}

func loadMap(path string) (*movingai.Map, error) {
	start := time.Now()
	m, err := movingai.ParseMapFile(path)
	if err != nil {
		return nil, err
	}
	logger.Named("parser").Debug("parsed map",
		zap.String("file", path),
		zap.Int("width", m.Width()),
		zap.Int("height", m.Height()),
		zap.Duration("took", time.Since(start)))
	return m, nil
}

func cmdInfo(cfg *config.Config, args []string) int {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: mapinfo info <file.map>")
		return 1
	}

	m, err := loadMap(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	summary := mapSummary{
		File:       args[0],
		Type:       m.Type(),
		Width:      m.Width(),
		Height:     m.Height(),
		FreeStates: m.FreeStates(),
		Tiles:      make(map[string]int),
	}
	for tile, n := range m.TileCounts() {
		summary.Tiles[tile.String()] = n
	}

	if cfg.Output.Format != config.FormatText {
		return emit(cfg, summary)
	}

	fmt.Printf("Map:         %s\n", summary.File)
	fmt.Printf("Type:        %s\n", summary.Type)
	fmt.Printf("Size:        %dx%d (%d tiles)\n", summary.Width, summary.Height, m.Len())
	fmt.Printf("Free states: %d\n", summary.FreeStates)
	fmt.Println()
	fmt.Println("Tiles:")

	for _, code := range sortedTileCodes(summary.Tiles) {
		tile := movingai.Tile(code[0])
		fmt.Printf("  %s %-12s %d\n", code, tile.Kind(), summary.Tiles[code])
	}
	return 0
}

// sortedTileCodes orders codes by descending count, then by code.
func sortedTileCodes(counts map[string]int) []string {
	codes := make([]string, 0, len(counts))
	for code := range counts {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool {
		if counts[codes[i]] != counts[codes[j]] {
			return counts[codes[i]] > counts[codes[j]]
		}
		return codes[i] < codes[j]
	})
	return codes
}

func cmdDump(cfg *config.Config, args []string) int {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: mapinfo dump <file.map>")
		return 1
	}

	m, err := loadMap(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if cfg.Output.Format != config.FormatText {
		return emit(cfg, m)
	}
	if _, err := m.WriteTo(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func cmdNeighbors(cfg *config.Config, args []string) int {
	if len(args) < 3 {
		fmt.Fprintln(os.Stderr, "Usage: mapinfo neighbors <file.map> <row> <col>")
		return 1
	}

	row, errRow := strconv.Atoi(args[1])
	col, errCol := strconv.Atoi(args[2])
	if errRow != nil || errCol != nil {
		fmt.Fprintln(os.Stderr, "Error: row and col must be integers")
		return 1
	}

	m, err := loadMap(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	c := movingai.Coords{Row: row, Col: col}
	tile, err := m.Get(c)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	neighbors := m.Neighbors(c)
	if cfg.Output.Format != config.FormatText {
		return emit(cfg, neighbors)
	}

	fmt.Printf("%s %s (%s)\n", c, tile, tile.Kind())
	for _, n := range neighbors {
		t, _ := m.Get(n)
		fmt.Printf("  -> %s %s\n", n, t)
	}
	if len(neighbors) == 0 {
		fmt.Fprintln(os.Stderr, "No legal moves")
	}
	return 0
}

// parseScenArgs reads "<file.scen>" with an optional -n N placed before or
// after the path.
func parseScenArgs(args []string) (path string, limit int, err error) {
	fs := flag.NewFlagSet("scen", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	n := fs.Int("n", 0, "Limit output to N records (0 = all)")

	if err := fs.Parse(args); err != nil {
		return "", 0, err
	}
	if fs.NArg() < 1 {
		return "", 0, errors.New("missing scenario file")
	}
	path = fs.Arg(0)
	if err := fs.Parse(fs.Args()[1:]); err != nil {
		return "", 0, err
	}
	if fs.NArg() > 0 {
		return "", 0, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	if *n < 0 {
		return "", 0, fmt.Errorf("-n must not be negative, got %d", *n)
	}
	return path, *n, nil
}

// limitRecords returns the first n records, or all of them when n is 0.
func limitRecords(records []movingai.SceneRecord, n int) []movingai.SceneRecord {
	if n > 0 && n < len(records) {
		return records[:n]
	}
	return records
}

func cmdScen(cfg *config.Config, args []string) int {
	path, limit, err := parseScenArgs(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Usage: mapinfo scen <file.scen> [-n N]")
		return 1
	}

	scen, err := movingai.ParseScenFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	records := limitRecords(scen.Records, limit)

	if cfg.Output.Format != config.FormatText {
		return emit(cfg, &movingai.Scenario{Version: scen.Version, Records: records})
	}

	fmt.Printf("Version %s, %d records, %d buckets\n", scen.Version, len(scen.Records), len(scen.Buckets()))
	for _, r := range records {
		fmt.Printf("%4d  %-28s %4dx%-4d  %9s -> %-9s  %.8f\n",
			r.Bucket, r.MapFile, r.MapWidth, r.MapHeight, r.Start, r.Goal, r.OptimalLength)
	}
	return 0
}

// checkResult is the structured result of the check command.
type checkResult struct {
	Records int      `json:"records" yaml:"records"`
	Failed  int      `json:"failed" yaml:"failed"`
	Errors  []string `json:"errors,omitempty" yaml:"errors,omitempty"`
}

func cmdCheck(cfg *config.Config, args []string) int {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: mapinfo check <file.scen>")
		return 1
	}

	scen, err := movingai.ParseScenFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	maps := newMapCache(cfg.Data.MapDirs)
	res := checkScenario(scen, maps)

	if cfg.Output.Format != config.FormatText {
		if code := emit(cfg, res); code != 0 {
			return code
		}
	} else {
		for _, e := range res.Errors {
			fmt.Println(e)
		}
		fmt.Fprintf(os.Stderr, "\n(%d records checked, %d failed)\n", res.Records, res.Failed)
	}

	if res.Failed > 0 {
		return 1
	}
	return 0
}

// checkScenario validates every record of scen against its map.
func checkScenario(scen *movingai.Scenario, maps *mapCache) checkResult {
	log := logger.Named("check")
	res := checkResult{Records: len(scen.Records)}

	for i, r := range scen.Records {
		m, err := maps.get(r.MapFile)
		if err == nil {
			err = r.Validate(m)
		}
		if err != nil {
			res.Failed++
			res.Errors = append(res.Errors, fmt.Sprintf("record %d: %v", i, err))
			log.Warn("invalid scenario record",
				zap.Int("record", i),
				zap.String("map", r.MapFile),
				zap.Error(err))
		}
	}
	return res
}

func cmdConfig(cfg *config.Config, args []string) int {
	action := "show"
	if len(args) > 0 {
		action = args[0]
	}

	switch action {
	case "show":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		os.Stdout.Write(data)
		return 0
	case "save":
		path := ""
		if len(args) > 1 {
			path = args[1]
		}
		written, err := saveConfig(cfg, path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		logger.Info("saved config", zap.String("path", written))
		fmt.Printf("Saved %s\n", written)
		return 0
	default:
		fmt.Fprintln(os.Stderr, "Usage: mapinfo config [show | save [path]]")
		return 1
	}
}

// saveConfig writes the effective config to path, or to the user config
// directory when path is empty, and returns where it was written.
func saveConfig(cfg *config.Config, path string) (string, error) {
	if path == "" {
		return config.DefaultPath(), cfg.Save()
	}
	return path, cfg.SaveTo(path)
}
