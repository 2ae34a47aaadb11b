package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/dd0wney/cluso-routerank/pkg/algorithms"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Write renders r in the named format
func Write(w io.Writer, r *Report, format string) error {
	switch format {
	case FormatJSON:
		return r.WriteJSON(w)
	case FormatText, "":
		return r.WriteText(w)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

// WriteJSON writes the report as indented JSON
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

type styles struct {
	title   lipgloss.Style
	label   lipgloss.Style
	header  lipgloss.Style
	cell    lipgloss.Style
	missing lipgloss.Style
	failed  lipgloss.Style
}

func newStyles(re *lipgloss.Renderer) styles {
	return styles{
		title:   re.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF00FF")),
		label:   re.NewStyle().Foreground(lipgloss.Color("#888888")),
		header:  re.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FFFF")).Padding(0, 1),
		cell:    re.NewStyle().Padding(0, 1),
		missing: re.NewStyle().Foreground(lipgloss.Color("#666666")).Padding(0, 1),
		failed:  re.NewStyle().Foreground(lipgloss.Color("#FF0000")).Bold(true),
	}
}

// WriteText writes a human-readable report. Colors are only emitted when w
// is a terminal.
func (r *Report) WriteText(w io.Writer) error {
	re := lipgloss.NewRenderer(w)
	st := newStyles(re)

	var b strings.Builder
	fmt.Fprintln(&b, st.title.Render("Route centrality"))
	fmt.Fprintf(&b, "%s %s\n", st.label.Render("Using data file:"), r.Source)
	fmt.Fprintf(&b, "%s %d\n", st.label.Render("Number of nodes/unique airport codes:"), r.Nodes)
	fmt.Fprintf(&b, "%s %d using weight from %s\n", st.label.Render("Total number of flights/edges:"), r.Edges, r.Attribute)
	fmt.Fprintf(&b, "%s %d self-loops, %d parallel edges, %d components\n",
		st.label.Render("Shape:"), r.SelfLoops, r.ParallelEdges, r.Components)

	for _, m := range algorithms.Measures {
		if msg, ok := r.Failed[m]; ok {
			fmt.Fprintf(&b, "%s %s\n", st.failed.Render(m.String()+" failed:"), msg)
		}
	}

	if len(r.Rows) > 0 {
		b.WriteString("\n")
		b.WriteString(r.airportTable(st))
		b.WriteString("\n")
	}

	for _, ranking := range r.Rankings {
		b.WriteString("\n")
		fmt.Fprintln(&b, st.title.Render(fmt.Sprintf("Top %d by %s centrality", len(ranking.Airports), ranking.Measure)))
		b.WriteString(rankingTable(st, ranking))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func (r *Report) airportTable(st styles) string {
	headers := []string{"Airport"}
	for _, m := range algorithms.Measures {
		headers = append(headers, m.String())
	}

	missing := make(map[int]bool)
	rows := make([][]string, 0, len(r.Rows))
	for i, row := range r.Rows {
		cells := []string{row.Airport}
		for _, m := range algorithms.Measures {
			switch {
			case row.Missing:
				cells = append(cells, "not found")
			case r.Failed[m] != "":
				cells = append(cells, "failed")
			default:
				cells = append(cells, FormatScore(row.Scores[m]))
			}
		}
		if row.Missing {
			missing[i] = true
		}
		rows = append(rows, cells)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return st.header
			case missing[row]:
				return st.missing
			default:
				return st.cell
			}
		})
	return t.Render()
}

func rankingTable(st styles, ranking Ranking) string {
	rows := make([][]string, 0, len(ranking.Airports))
	for i, n := range ranking.Airports {
		rows = append(rows, []string{strconv.Itoa(i + 1), n.ID, FormatScore(n.Score)})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "Airport", "Score").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return st.header
			}
			return st.cell
		})
	return t.Render()
}

// FormatScore prints a score with six significant digits
func FormatScore(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
