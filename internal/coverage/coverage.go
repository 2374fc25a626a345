// Package coverage computes curse-word coverage for source files by
// combining comment extraction with the curse vocabulary.
//
// The coverage formula: coverage(curse, total) = floor(100 * curse / (total + ε))
// where ε = 0.0001, so a file or run with zero comments has coverage 0
// and fails any positive threshold.
//
// The total coverage of a run is computed from the summed counts of all
// files (weighted by comment volume), never from the mean of per-file
// percentages.
package coverage

import (
	"fmt"
	"math"
	"strconv"
)

// Epsilon guards the zero-comment case of Formula.
const Epsilon = 0.0001

// FileAnalysis holds the comment counts of a single file.
type FileAnalysis struct {
	// Path is the file path as resolved from the include patterns.
	Path string `json:"path"`

	// Comments is the number of comments in the file.
	Comments int `json:"comments"`

	// CurseComments is the number of comments containing at least one
	// curse word. Always <= Comments.
	CurseComments int `json:"curse_comments"`

	// Coverage is Formula(CurseComments, Comments).
	Coverage int `json:"coverage"`
}

// Summary holds the totals of a run.
type Summary struct {
	Files         int `json:"files"`
	Comments      int `json:"comments"`
	CurseComments int `json:"curse_comments"`
	Coverage      int `json:"coverage"`
}

// Report is the complete coverage analysis output.
type Report struct {
	// Files is sorted by path.
	Files   []FileAnalysis `json:"files"`
	Summary Summary        `json:"summary"`
}

// Formula computes floor(100 * curse / (total + Epsilon)).
func Formula(curse, total int) int {
	return int(math.Floor(100 * float64(curse) / (float64(total) + Epsilon)))
}

// ThresholdError reports a run whose total coverage is below the
// required minimum. It is an expected negative outcome, not a fault.
type ThresholdError struct {
	Expected float64
	Actual   int
}

func (e *ThresholdError) Error() string {
	return fmt.Sprintf("Insufficient curse word coverage: expected %s%% but was %d%%.",
		strconv.FormatFloat(e.Expected, 'f', -1, 64), e.Actual)
}

// Check returns nil if the report's total coverage is at least min,
// and a *ThresholdError otherwise.
func Check(report *Report, min float64) error {
	if float64(report.Summary.Coverage) >= min {
		return nil
	}
	return &ThresholdError{Expected: min, Actual: report.Summary.Coverage}
}
