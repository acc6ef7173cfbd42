// mapinfo is a CLI utility for inspecting MovingAI maps and scenarios.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/movingai/internal/config"
	"github.com/Faultbox/movingai/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	args := config.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	command := args[0]
	args = args[1:]
	logger.Debug("running command",
		zap.String("command", command),
		zap.Strings("args", args),
		zap.String("format", cfg.Output.Format),
		zap.Strings("map_dirs", cfg.Data.MapDirs))

	var code int
	switch command {
	case "info":
		code = cmdInfo(cfg, args)
	case "dump":
		code = cmdDump(cfg, args)
	case "neighbors", "nb":
		code = cmdNeighbors(cfg, args)
	case "scen", "ls":
		code = cmdScen(cfg, args)
	case "check":
		code = cmdCheck(cfg, args)
	case "config":
		code = cmdConfig(cfg, args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		code = 1
	}

	if code != 0 {
		logger.Info("command failed", zap.String("command", command), zap.Int("exit_code", code))
	}
	logger.Sync()
	os.Exit(code)
}

func printUsage() {
	fmt.Println(`mapinfo - MovingAI benchmark map and scenario utility

Usage:
  mapinfo [flags] <command> [options]

Flags:
  -config <file>   Config file (default ./movingai.yaml or user config dir)
  -format <fmt>    Output format: text, json, yaml
  -maps <dirs>     Map directories used to resolve scenario map files
  -debug           Enable debug logging

Commands:
  info <file.map>                    Show map dimensions and tile statistics
  dump <file.map>                    Print the map (text, json or yaml)
  neighbors <file.map> <row> <col>   List legal moves from a tile
  scen <file.scen> [-n N]            List scenario records (-n may go before or after the file)
  check <file.scen>                  Validate records against their maps
  config [show | save [path]]        Print the effective config or write it as YAML

Examples:
  mapinfo info maps/dao/arena.map
  mapinfo -format json dump maps/dao/arena.map
  mapinfo neighbors maps/dao/arena.map 5 2
  mapinfo scen scens/arena.map.scen -n 10
  mapinfo -maps maps/dao check scens/arena.map.scen
  mapinfo -format yaml -maps maps/dao config save`)
}
