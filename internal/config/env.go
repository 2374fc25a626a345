package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/unbound-force/cursecov/internal/fault"
)

// Environment variables read by FromEnv.
const (
	EnvIncludePattern = "CURSECOV_INCLUDE_PATTERN"
	EnvIgnorePattern  = "CURSECOV_IGNORE_PATTERN"
	EnvMinCoverage    = "CURSECOV_MIN_COVERAGE"
	EnvVerbose        = "CURSECOV_VERBOSE"
	EnvFormat         = "CURSECOV_FORMAT"
	EnvJobs           = "CURSECOV_JOBS"
)

// LoadDotEnv loads dir/.env into the process environment. Variables
// already set are kept, and a missing file is not an error.
func LoadDotEnv(dir string) error {
	path := filepath.Join(dir, ".env")
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fault.New(fault.Config, path, err)
	}
	return nil
}

// FromEnv builds a layer from CURSECOV_* variables. Empty or blank
// variables are treated as unset.
func FromEnv(getenv func(string) string) (Layer, error) {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	var layer Layer
	var errs []error

	setString := func(target **string, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		*target = &raw
	}
	setBool := func(target **bool, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		v, err := parseBool(raw, key)
		if err != nil {
			errs = append(errs, err)
			return
		}
		*target = &v
	}
	setInt := func(target **int, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid integer value for %s: %q", key, raw))
			return
		}
		*target = &v
	}
	setFloat := func(target **float64, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid number for %s: %q", key, raw))
			return
		}
		*target = &v
	}

	setString(&layer.IncludePattern, EnvIncludePattern)
	setString(&layer.IgnorePattern, EnvIgnorePattern)
	setFloat(&layer.MinCoverage, EnvMinCoverage)
	setBool(&layer.Verbose, EnvVerbose)
	setString(&layer.Format, EnvFormat)
	setInt(&layer.Jobs, EnvJobs)

	if len(errs) > 0 {
		return Layer{}, fault.New(fault.Config, "environment", errors.Join(errs...))
	}
	return layer, nil
}
