package report

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles defines the visual theme for terminal report output.
// Lipgloss automatically degrades to no-color when output is not a TTY.
type Styles struct {
	// Header is used for the total coverage line.
	Header lipgloss.Style

	// TableHeader styles the header row of tables.
	TableHeader lipgloss.Style

	// TableCell styles regular table cells.
	TableCell lipgloss.Style

	// Number styles right-aligned count columns.
	Number lipgloss.Style

	// Pass styles coverage at or above the minimum.
	Pass lipgloss.Style

	// Fail styles coverage below the minimum.
	Fail lipgloss.Style

	// Border is used for table borders.
	Border lipgloss.Style

	// Muted is used for de-emphasized text.
	Muted lipgloss.Style
}

// DefaultStyles returns the default color scheme for terminal reports.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),

		TableHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")).Padding(0, 1),
		TableCell:   lipgloss.NewStyle().Padding(0, 1),
		Number:      lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right),

		Pass: lipgloss.NewStyle().Foreground(lipgloss.Color("40")).Bold(true).Padding(0, 1).Align(lipgloss.Right),
		Fail: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true).Padding(0, 1).Align(lipgloss.Right),

		Border: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),

		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// CoverageStyle returns Pass when coverage meets min and Fail otherwise.
func (s Styles) CoverageStyle(coverage int, min float64) lipgloss.Style {
	if float64(coverage) >= min {
		return s.Pass
	}
	return s.Fail
}
