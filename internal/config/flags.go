package config

import (
	"flag"
	"path/filepath"
	"strings"
)

var (
	flagConfig = flag.String("config", "", "Path to config file")
	flagDebug  = flag.Bool("debug", false, "Enable debug logging")
	flagFormat = flag.String("format", "", "Output format: text, json or yaml")
	flagMaps   = flag.String("maps", "", "Map directories, separated by the OS list separator")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the non-flag arguments left after ParseFlags.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagFormat != "" {
		cfg.Output.Format = strings.ToLower(*flagFormat)
	}
	if *flagMaps != "" {
		cfg.Data.MapDirs = filepath.SplitList(*flagMaps)
	}
}
