package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/unbound-force/cursecov/internal/fault"
)

var configFilenames = []string{
	".cursecov.yaml",
	".cursecov.yml",
	".cursecov.toml",
	".cursecov.json",
}

// Find locates the config file for a run started in dir. An explicit
// path must exist and be a regular file. Otherwise the first known
// config name found walking up from dir is returned, or "" if none.
func Find(dir, explicitPath string) (string, error) {
	if explicit := strings.TrimSpace(explicitPath); explicit != "" {
		candidate, err := filepath.Abs(explicit)
		if err != nil {
			return "", fault.New(fault.Config, explicit, err)
		}
		info, err := os.Stat(candidate)
		if err != nil {
			return "", fault.New(fault.Config, explicit, err)
		}
		if info.IsDir() {
			return "", fault.Newf(fault.Config, explicit, "config path points to a directory")
		}
		return candidate, nil
	}

	start := strings.TrimSpace(dir)
	if start == "" {
		start = "."
	}
	current, err := filepath.Abs(start)
	if err != nil {
		return "", fault.New(fault.Filesystem, start, err)
	}
	for {
		for _, name := range configFilenames {
			candidate := filepath.Join(current, name)
			if fileExists(candidate) {
				return candidate, nil
			}
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", nil
		}
		current = parent
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
