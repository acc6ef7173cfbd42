package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Faultbox/movingai/internal/logger"
	"github.com/Faultbox/movingai/pkg/movingai"
)

// mapCache resolves scenario map references against a list of directories
// and parses each map at most once.
type mapCache struct {
	dirs []string
	maps map[string]*movingai.Map
	errs map[string]error
}

func newMapCache(dirs []string) *mapCache {
	return &mapCache{
		dirs: dirs,
		maps: make(map[string]*movingai.Map),
		errs: make(map[string]error),
	}
}

func (c *mapCache) get(ref string) (*movingai.Map, error) {
	if m, ok := c.maps[ref]; ok {
		return m, nil
	}
	if err, ok := c.errs[ref]; ok {
		return nil, err
	}

	path, err := resolveMap(c.dirs, ref)
	if err == nil {
		logger.Sugar.Debugf("resolved map %s to %s", ref, path)
		var m *movingai.Map
		if m, err = loadMap(path); err == nil {
			c.maps[ref] = m
			return m, nil
		}
	}
	c.errs[ref] = err
	return nil, err
}

// resolveMap finds the file a scenario record refers to. Scenario files
// usually carry a path relative to the benchmark root (maps/dao/arena.map),
// so each directory is tried with the full reference and then with its base
// name.
func resolveMap(dirs []string, ref string) (string, error) {
	ref = filepath.FromSlash(ref)
	for _, dir := range dirs {
		for _, candidate := range []string{
			filepath.Join(dir, ref),
			filepath.Join(dir, filepath.Base(ref)),
		} {
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			} else if !errors.Is(err, fs.ErrNotExist) {
				return "", err
			}
		}
	}
	return "", fmt.Errorf("map %s not found in %v: %w", ref, dirs, fs.ErrNotExist)
}
