package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dd0wney/cluso-routerank/pkg/algorithms"
	"github.com/dd0wney/cluso-routerank/pkg/analysis"
	"github.com/dd0wney/cluso-routerank/pkg/report"
	"github.com/dd0wney/cluso-routerank/pkg/validation"
)

type view int

const (
	overviewView view = iota
	degreeView
	closenessView
	betweennessView
	eigenvectorView
	viewCount
)

var viewNames = [viewCount]string{"Overview", "Degree", "Closeness", "Betweenness", "Eigenvector"}

// measure returns the centrality measure a ranking view shows
func (v view) measure() (algorithms.Measure, bool) {
	if v <= overviewView || v >= viewCount {
		return 0, false
	}
	return algorithms.Measures[v-1], true
}

// loadFunc runs the analysis the browser displays
type loadFunc func(ctx context.Context) (*analysis.Run, error)

type runLoadedMsg struct {
	run *analysis.Run
	err error
}

type model struct {
	load       loadFunc
	input      string
	run        *analysis.Run
	loadErr    error
	current    view
	tables     map[algorithms.Measure]*table.Model
	lookup     textinput.Model
	airport    *analysis.AirportScores
	help       help.Model
	keys       keyMap
	width      int
	height     int
	message    string
	messageErr bool
}

func initialModel(input string, load loadFunc) model {
	ti := textinput.New()
	ti.Placeholder = "ORD"
	ti.CharLimit = 8
	ti.Width = 12

	return model{
		load:    load,
		input:   input,
		current: overviewView,
		tables:  make(map[algorithms.Measure]*table.Model, len(algorithms.Measures)),
		lookup:  ti,
		help:    help.New(),
		keys:    keys,
	}
}

func (m model) Init() tea.Cmd {
	load := m.load
	return func() tea.Msg {
		run, err := load(context.Background())
		return runLoadedMsg{run: run, err: err}
	}
}

func newRankingTable(run *analysis.Run, measure algorithms.Measure, height int) *table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Airport", Width: 10},
		{Title: "Score", Width: 14},
		{Title: "Population", Width: 14},
	}

	var rows []table.Row
	ranked, err := run.Top(measure, 0)
	if err == nil {
		rows = make([]table.Row, len(ranked))
		for i, node := range ranked {
			pop := ""
			if n, err := run.Graph.Node(node.ID); err == nil {
				pop = fmt.Sprintf("%.0f", n.Population)
			}
			rows[i] = table.Row{fmt.Sprintf("%d", i+1), node.ID, report.FormatScore(node.Score), pop}
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#00FFFF")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#FF00FF")).
		Bold(false)
	t.SetStyles(s)

	return &t
}

// tableHeight leaves room for the title, tabs and help lines
func (m model) tableHeight() int {
	if h := m.height - 12; h > 5 {
		return h
	}
	return 10
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		for _, t := range m.tables {
			t.SetHeight(m.tableHeight())
		}
		return m, nil

	case runLoadedMsg:
		m.run, m.loadErr = msg.run, msg.err
		if m.run != nil {
			for _, measure := range algorithms.Measures {
				m.tables[measure] = newRankingTable(m.run, measure, m.tableHeight())
			}
		}
		return m, nil

	case tea.KeyMsg:
		if m.lookup.Focused() {
			switch {
			case key.Matches(msg, m.keys.Enter):
				m.lookupAirport()
				m.lookup.Blur()
				return m, nil
			case key.Matches(msg, m.keys.Escape):
				m.lookup.Blur()
				return m, nil
			}
			m.lookup, cmd = m.lookup.Update(msg)
			return m, cmd
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.current = (m.current + 1) % viewCount
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.current = (m.current + viewCount - 1) % viewCount
			return m, nil
		case key.Matches(msg, m.keys.Lookup):
			if m.run == nil {
				return m, nil
			}
			m.current = overviewView
			m.lookup.SetValue("")
			return m, m.lookup.Focus()
		}
	}

	if measure, ok := m.current.measure(); ok {
		if t := m.tables[measure]; t != nil {
			*t, cmd = t.Update(msg)
		}
	}
	return m, cmd
}

func (m *model) lookupAirport() {
	code := strings.TrimSpace(m.lookup.Value())
	if err := validation.ValidateAirportCode(code); err != nil {
		m.airport = nil
		m.message = err.Error()
		m.messageErr = true
		return
	}

	airport, err := m.run.Airport(code)
	if err != nil {
		m.airport = nil
		m.message = err.Error()
		m.messageErr = true
		return
	}

	m.airport = airport
	m.message = fmt.Sprintf("Found %s with %d neighbors", airport.ID, airport.Neighbors)
	m.messageErr = false
}

func (m model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("✈ RouteRank - Airport Centrality"))
	s.WriteString("\n\n")

	switch {
	case m.loadErr != nil:
		s.WriteString(contentStyle.Render(errorStyle.Render("✗ Analysis failed: " + m.loadErr.Error())))
		s.WriteString("\n\n")
		s.WriteString(helpStyle.Render("Press q to quit"))
		return s.String()
	case m.run == nil:
		s.WriteString(contentStyle.Render("Running analysis on " + m.input + " ..."))
		return s.String()
	}

	s.WriteString(m.renderTabs())
	s.WriteString("\n\n")

	if measure, ok := m.current.measure(); ok {
		s.WriteString(m.renderRanking(measure))
	} else {
		s.WriteString(m.renderOverview())
	}

	if m.message != "" {
		s.WriteString("\n\n")
		if m.messageErr {
			s.WriteString(errorStyle.Render("✗ " + m.message))
		} else {
			s.WriteString(successStyle.Render("✓ " + m.message))
		}
	}

	s.WriteString("\n\n")
	s.WriteString(helpStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp())))

	return s.String()
}

func (m model) renderTabs() string {
	rendered := make([]string, 0, viewCount)
	for i, name := range viewNames {
		if measure, ok := view(i).measure(); ok && m.run.Result.Errors[measure] != nil {
			name += " !"
		}
		if view(i) == m.current {
			rendered = append(rendered, activeTabStyle.Render(name))
		} else {
			rendered = append(rendered, inactiveTabStyle.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m model) renderOverview() string {
	run := m.run
	stats := fmt.Sprintf(`Graph
━━━━━━━━━━━━━━━
Source:      %s
Weight:      %s
Airports:    %d
Routes:      %d
Self-loops:  %d
Parallel:    %d
Components:  %d
Computed in: %s`,
		run.Source,
		run.Attribute,
		run.Stats.NodeCount,
		run.Stats.EdgeCount,
		run.Stats.SelfLoops,
		run.Stats.ParallelEdges,
		run.Components,
		run.Duration.Round(time.Millisecond),
	)
	if ev := run.Result.Eigenvector; ev != nil {
		stats += fmt.Sprintf("\nEigenvector: %d iterations", ev.Iterations)
	}

	var lookup strings.Builder
	lookup.WriteString("Airport lookup\n━━━━━━━━━━━━━━━\n")
	lookup.WriteString(m.lookup.View())
	lookup.WriteString("\n\n")
	if a := m.airport; a != nil {
		fmt.Fprintf(&lookup, "%s  population %.0f, %d neighbors\n", a.ID, a.Population, a.Neighbors)
		for _, measure := range algorithms.Measures {
			if msg, failed := a.Errors[measure]; failed {
				fmt.Fprintf(&lookup, "%-12s %s\n", measure, errorStyle.Render("failed: "+msg))
				continue
			}
			fmt.Fprintf(&lookup, "%-12s %s\n", measure, report.FormatScore(a.Scores[measure]))
		}
	} else {
		lookup.WriteString("Press / and type a code")
	}

	return contentStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top,
		statsBoxStyle.Render(stats),
		statsBoxStyle.Render(lookup.String()),
	))
}

func (m model) renderRanking(measure algorithms.Measure) string {
	var s strings.Builder

	s.WriteString(headerStyle.Render(viewNames[m.current] + " centrality"))
	s.WriteString("\n\n")

	if err := m.run.Result.Errors[measure]; err != nil {
		s.WriteString(errorStyle.Render("✗ " + err.Error()))
		return contentStyle.Render(s.String())
	}
	if t := m.tables[measure]; t != nil {
		s.WriteString(t.View())
	}

	return contentStyle.Render(s.String())
}
