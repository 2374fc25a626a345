package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/unbound-force/cursecov/internal/fault"
)

// Load decodes the config file at path by its extension. An empty
// path yields an empty layer. Unknown keys are rejected.
func Load(path string) (Layer, error) {
	var layer Layer
	path = strings.TrimSpace(path)
	if path == "" {
		return layer, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return layer, fault.New(fault.Filesystem, path, err)
	}

	var raw map[string]any
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	case ".toml":
		err = toml.Unmarshal(data, &raw)
	case ".json":
		err = json.Unmarshal(data, &raw)
	default:
		return layer, fault.Newf(fault.Config, path, "unsupported config extension: %q", ext)
	}
	if err != nil {
		return layer, fault.New(fault.Config, path, fmt.Errorf("parse: %w", err))
	}

	if err := decodeLayer(raw, &layer); err != nil {
		return Layer{}, fault.New(fault.Config, path, err)
	}
	return layer, nil
}

func decodeLayer(raw map[string]any, dst *Layer) error {
	for key, value := range raw {
		switch normalizeKey(key) {
		case "include_pattern":
			s, err := expectString(value, key)
			if err != nil {
				return err
			}
			dst.IncludePattern = &s
		case "ignore_pattern":
			s, err := expectString(value, key)
			if err != nil {
				return err
			}
			dst.IgnorePattern = &s
		case "min_coverage":
			f, err := expectFloat(value, key)
			if err != nil {
				return err
			}
			dst.MinCoverage = &f
		case "verbose":
			b, err := expectBool(value, key)
			if err != nil {
				return err
			}
			dst.Verbose = &b
		case "format":
			s, err := expectString(value, key)
			if err != nil {
				return err
			}
			dst.Format = &s
		case "jobs":
			n, err := expectInt(value, key)
			if err != nil {
				return err
			}
			dst.Jobs = &n
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
	}
	return nil
}

func expectString(value any, field string) (string, error) {
	if value == nil {
		return "", fmt.Errorf("%s cannot be null", field)
	}
	if s, ok := value.(string); ok {
		return s, nil
	}
	return "", fmt.Errorf("expected string for %s, got %T", field, value)
}

func expectBool(value any, field string) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		return parseBool(v, field)
	default:
		return false, fmt.Errorf("expected bool for %s, got %T", field, value)
	}
}

func expectInt(value any, field string) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("expected integer for %s, got %v", field, value)
		}
		return int(v), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("invalid integer value for %s: %q", field, v)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("expected integer for %s, got %T", field, value)
	}
}

func expectFloat(value any, field string) (float64, error) {
	switch v := value.(type) {
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case float64:
		return v, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("invalid number for %s: %q", field, v)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("expected number for %s, got %T", field, value)
	}
}

func parseBool(raw, field string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on":
		return true, nil
	case "0", "false", "no", "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean value for %s: %q", field, raw)
	}
}

func normalizeKey(key string) string {
	norm := strings.ToLower(strings.TrimSpace(key))
	return strings.ReplaceAll(norm, "-", "_")
}
