package main

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/movingai/internal/config"
)

// emit writes v to stdout in the configured structured format.
func emit(cfg *config.Config, v interface{}) int {
	var err error
	switch cfg.Output.Format {
	case config.FormatJSON:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		err = enc.Encode(v)
	case config.FormatYAML:
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		err = enc.Encode(v)
		if err == nil {
			err = enc.Close()
		}
	default:
		err = fmt.Errorf("format %q has no structured encoding", cfg.Output.Format)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
