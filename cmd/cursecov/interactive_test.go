package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/unbound-force/cursecov/internal/coverage"
)

func sampleReport() *coverage.Report {
	return &coverage.Report{
		Files: []coverage.FileAnalysis{
			{Path: "foo/hello2.js", Comments: 2, CurseComments: 2, Coverage: 99},
			{Path: "hello.js", Comments: 2, CurseComments: 0, Coverage: 0},
		},
		Summary: coverage.Summary{Files: 2, Comments: 4, CurseComments: 2, Coverage: 49},
	}
}

// TestRenderReportContent_EmptyReport verifies that an empty report
// states that no files were analyzed and fails any positive minimum.
func TestRenderReportContent_EmptyReport(t *testing.T) {
	output := renderReportContent(&coverage.Report{}, 30)

	if !strings.Contains(output, "0 file(s)") {
		t.Errorf("expected output to contain '0 file(s)', got:\n%s", output)
	}
	if !strings.Contains(output, "No files analyzed.") {
		t.Errorf("expected output to contain 'No files analyzed.', got:\n%s", output)
	}
	if !strings.Contains(output, "FAIL") {
		t.Errorf("expected output to contain 'FAIL', got:\n%s", output)
	}
}

// TestRenderReportContent_WithFiles verifies that every file row and
// the totals are rendered.
func TestRenderReportContent_WithFiles(t *testing.T) {
	output := renderReportContent(sampleReport(), 30)

	for _, want := range []string{"foo/hello2.js", "hello.js", "# CURSE", "# TOTAL", "49% total", "min 30%", "PASS"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, output)
		}
	}
}

// TestRenderReportContent_BelowMinimum verifies the verdict follows
// the minimum.
func TestRenderReportContent_BelowMinimum(t *testing.T) {
	output := renderReportContent(sampleReport(), 50)

	if !strings.Contains(output, "FAIL") {
		t.Errorf("expected output to contain 'FAIL', got:\n%s", output)
	}
	if strings.Contains(output, "PASS") {
		t.Errorf("expected no 'PASS' verdict, got:\n%s", output)
	}
}

// TestRenderReportContent_LongPathElided verifies that long paths keep
// their file name but lose their middle.
func TestRenderReportContent_LongPathElided(t *testing.T) {
	long := "packages/" + strings.Repeat("nested/", 12) + "Component.tsx"
	rpt := &coverage.Report{
		Files:   []coverage.FileAnalysis{{Path: long, Comments: 1, CurseComments: 1, Coverage: 99}},
		Summary: coverage.Summary{Files: 1, Comments: 1, CurseComments: 1, Coverage: 99},
	}

	output := renderReportContent(rpt, 30)

	if strings.Contains(output, long) {
		t.Error("expected long path to be elided, but full path found in output")
	}
	if !strings.Contains(output, "...") || !strings.Contains(output, "Component.tsx") {
		t.Errorf("expected elided path with file name, got:\n%s", output)
	}
}

func TestReportModel_InitializesOnWindowSize(t *testing.T) {
	m := newReportModel(sampleReport(), 30)
	if got := m.View(); got != "Initializing..." {
		t.Errorf("View before sizing = %q, want Initializing...", got)
	}

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	rm := updated.(reportModel)
	if !rm.ready {
		t.Fatal("expected model to be ready after WindowSizeMsg")
	}
	if !strings.Contains(rm.View(), "hello.js") {
		t.Errorf("expected viewport to show the report, got:\n%s", rm.View())
	}
}

func TestReportModel_QuitAndHelpKeys(t *testing.T) {
	m := newReportModel(sampleReport(), 30)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	updated, _ = updated.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	if !updated.(reportModel).help.ShowAll {
		t.Error("expected '?' to toggle full help")
	}

	_, cmd := updated.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected a quit command for 'q'")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected 'q' to produce tea.QuitMsg")
	}
}
