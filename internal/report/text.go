package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/unbound-force/cursecov/internal/coverage"
)

// DefaultPathWidth is the widest FILE cell before paths are elided.
// With the three count columns and borders the table fits 80 columns.
const DefaultPathWidth = 50

// Options controls report rendering.
type Options struct {
	// Version is embedded in JSON output.
	Version string

	// MinCoverage selects the pass/fail coloring of coverage cells and
	// the "passed" field of JSON output.
	MinCoverage float64

	// PathWidth is the display width above which paths are elided.
	// Zero or less disables elision.
	PathWidth int
}

// DefaultOptions returns rendering options with the default path width.
func DefaultOptions() Options {
	return Options{PathWidth: DefaultPathWidth}
}

// WriteText writes the report as a styled table followed by the total
// coverage line. Output uses lipgloss for color and formatting when
// the output is a TTY; degrades gracefully for pipes and CI.
func WriteText(w io.Writer, rpt *coverage.Report, opts Options) error {
	s := DefaultStyles()

	if len(rpt.Files) == 0 {
		fmt.Fprintln(w, s.Muted.Render("No files analyzed."))
	} else {
		fmt.Fprintln(w, fileTable(rpt.Files, opts, s))
	}

	_, err := fmt.Fprintln(w, s.Header.Render(
		fmt.Sprintf("Total curse coverage: %d%%", rpt.Summary.Coverage)))
	return err
}

func fileTable(files []coverage.FileAnalysis, opts Options, s Styles) *table.Table {
	rows := make([][]string, 0, len(files))
	for _, f := range files {
		rows = append(rows, []string{
			ElidePath(f.Path, opts.PathWidth),
			strconv.Itoa(f.CurseComments),
			strconv.Itoa(f.Comments),
			strconv.Itoa(f.Coverage),
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.Border).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.TableHeader
			}
			switch {
			case col == 0:
				return s.TableCell
			case col == 3 && row >= 0 && row < len(files):
				return s.CoverageStyle(files[row].Coverage, opts.MinCoverage)
			default:
				return s.Number
			}
		}).
		Headers("FILE", "# CURSE", "# TOTAL", "%").
		Rows(rows...)
}
