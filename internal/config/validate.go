package config

import (
	"math"

	"github.com/unbound-force/cursecov/internal/fault"
)

// Validate checks resolved settings. It performs no I/O, so an invalid
// minimum is reported before any source file is touched.
func Validate(s Settings) error {
	if math.IsNaN(s.MinCoverage) || s.MinCoverage < 0 || s.MinCoverage > 100 {
		return fault.Newf(fault.Config, "min_coverage",
			"must be between 0 and 100, got %v", s.MinCoverage)
	}
	switch s.Format {
	case FormatText, FormatJSON:
	default:
		return fault.Newf(fault.Config, "format",
			"must be %q or %q, got %q", FormatText, FormatJSON, s.Format)
	}
	if s.Jobs < 1 {
		return fault.Newf(fault.Config, "jobs", "must be at least 1, got %d", s.Jobs)
	}
	return nil
}

// ValidateLayer checks only the fields set in l. The CLI runs it on its
// flags so a bad flag fails before the .env or config file is read.
func ValidateLayer(l Layer) error {
	return Validate(Merge(Default(), l))
}
