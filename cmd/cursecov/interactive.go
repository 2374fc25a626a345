package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/unbound-force/cursecov/internal/coverage"
	"github.com/unbound-force/cursecov/internal/report"
)

// keyMap defines keybindings for the interactive TUI.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Quit     key.Binding
	Help     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit, k.Help}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Quit, k.Help},
	}
}

var defaultKeyMap = keyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("^/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("v/j", "down")),
	PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
	PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
}

// Styles for the TUI.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")).
			MarginBottom(1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	tuiHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63"))

	tuiBorderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("63"))

	passStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("40"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// pathWidth bounds the FILE column in the TUI.
const pathWidth = 60

// reportModel is the Bubble Tea model for browsing a coverage report.
type reportModel struct {
	report   *coverage.Report
	viewport viewport.Model
	help     help.Model
	keys     keyMap
	ready    bool
	content  string
}

func newReportModel(rpt *coverage.Report, min float64) reportModel {
	return reportModel{
		report:  rpt,
		help:    help.New(),
		keys:    defaultKeyMap,
		content: renderReportContent(rpt, min),
	}
}

func renderReportContent(rpt *coverage.Report, min float64) string {
	var sb strings.Builder

	verdict := passStyle.Render("PASS")
	if coverage.Check(rpt, min) != nil {
		verdict = failStyle.Render("FAIL")
	}
	sb.WriteString(titleStyle.Render(
		fmt.Sprintf("Curse Coverage: %d file(s), %d comment(s), %d%% total (min %s%%)",
			rpt.Summary.Files, rpt.Summary.Comments, rpt.Summary.Coverage,
			strconv.FormatFloat(min, 'f', -1, 64))))
	sb.WriteString("\n")
	sb.WriteString(verdict)
	sb.WriteString("\n\n")

	if len(rpt.Files) == 0 {
		sb.WriteString(statusStyle.Render("No files analyzed."))
		sb.WriteString("\n")
		return sb.String()
	}

	rows := make([][]string, 0, len(rpt.Files))
	for _, f := range rpt.Files {
		rows = append(rows, []string{
			report.ElidePath(f.Path, pathWidth),
			strconv.Itoa(f.CurseComments),
			strconv.Itoa(f.Comments),
			strconv.Itoa(f.Coverage),
		})
	}

	files := rpt.Files
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tuiBorderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tuiHeaderStyle
			}
			if col == 3 && row >= 0 && row < len(files) {
				if float64(files[row].Coverage) >= min {
					return passStyle
				}
				return failStyle
			}
			return lipgloss.NewStyle()
		}).
		Headers("FILE", "# CURSE", "# TOTAL", "%").
		Rows(rows...)

	sb.WriteString(t.String())
	sb.WriteString("\n")

	return sb.String()
}

func (m reportModel) Init() tea.Cmd {
	return nil
}

func (m reportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		footerHeight := 2

		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-footerHeight)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - footerHeight
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m reportModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	footer := statusStyle.Render(
		fmt.Sprintf(" %3.f%% ", m.viewport.ScrollPercent()*100)) +
		" " + m.help.View(m.keys)

	return m.viewport.View() + "\n" + footer
}

// runInteractiveReport launches the Bubble Tea TUI for browsing the
// coverage report. The threshold decision is made after it exits.
func runInteractiveReport(rpt *coverage.Report, min float64) error {
	model := newReportModel(rpt, min)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
