// Package report provides output formatters for curse coverage
// reports in JSON and human-readable text formats.
package report

import (
	"encoding/json"
	"io"

	"github.com/unbound-force/cursecov/internal/coverage"
)

// JSONReport is the top-level JSON output structure.
type JSONReport struct {
	Version     string                  `json:"version"`
	MinCoverage float64                 `json:"min_coverage"`
	Passed      bool                    `json:"passed"`
	Files       []coverage.FileAnalysis `json:"files"`
	Summary     coverage.Summary        `json:"summary"`
}

// WriteJSON writes the report as formatted JSON to the writer.
func WriteJSON(w io.Writer, rpt *coverage.Report, opts Options) error {
	files := rpt.Files
	if files == nil {
		files = []coverage.FileAnalysis{}
	}
	out := JSONReport{
		Version:     opts.Version,
		MinCoverage: opts.MinCoverage,
		Passed:      coverage.Check(rpt, opts.MinCoverage) == nil,
		Files:       files,
		Summary:     rpt.Summary,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
