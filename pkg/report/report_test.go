package report

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/cluso-routerank/pkg/algorithms"
	"github.com/dd0wney/cluso-routerank/pkg/analysis"
	"github.com/dd0wney/cluso-routerank/pkg/routes"
)

func analyze(t *testing.T, rows []routes.Record) *analysis.Run {
	t.Helper()
	a := analysis.NewAnalyzer(routes.AttributeFlights, algorithms.DefaultOptions())
	run, err := a.Run(context.Background(), &routes.SliceSource{Name: "test.csv", Rows: rows})
	require.NoError(t, err)
	return run
}

func rec(from, to string) routes.Record {
	return routes.Record{Origin: from, Destination: to, Flights: 1, OriginPopulation: 10, DestinationPopulation: 20}
}

func connected() []routes.Record {
	return []routes.Record{rec("ORD", "ATL"), rec("ATL", "DCA"), rec("DCA", "ORD"), rec("ORD", "CMI")}
}

func TestAssemble(t *testing.T) {
	run := analyze(t, connected())

	r, err := Assemble(run, []string{"ORD", "PDX", "CMI"}, 2)
	require.NoError(t, err)

	assert.Equal(t, run.ID.String(), r.RunID)
	assert.Equal(t, "test.csv", r.Source)
	assert.Equal(t, "Flights", r.Attribute)
	assert.Equal(t, 4, r.Nodes)
	assert.Equal(t, 4, r.Edges)
	assert.Empty(t, r.Failed)

	require.Len(t, r.Rows, 3)
	assert.Equal(t, "ORD", r.Rows[0].Airport)
	assert.False(t, r.Rows[0].Missing)
	assert.InDelta(t, 1.0, r.Rows[0].Scores[algorithms.MeasureDegree], 1e-12)
	assert.Equal(t, 3, r.Rows[0].Neighbors)

	assert.Equal(t, "PDX", r.Rows[1].Airport)
	assert.True(t, r.Rows[1].Missing)
	assert.Empty(t, r.Rows[1].Scores)

	require.Len(t, r.Rankings, len(algorithms.Measures))
	for _, ranking := range r.Rankings {
		assert.Len(t, ranking.Airports, 2, ranking.Measure.String())
	}
	assert.Equal(t, "ORD", r.Rankings[0].Airports[0].ID)
}

func TestAssemble_FailedMeasure(t *testing.T) {
	run := analyze(t, append(connected(), rec("FLL", "PDX")))

	r, err := Assemble(run, []string{"FLL"}, 3)
	require.NoError(t, err)

	require.Contains(t, r.Failed, algorithms.MeasureEigenvector)
	assert.Contains(t, r.Failed[algorithms.MeasureEigenvector], "disconnected")
	assert.NotContains(t, r.Rows[0].Scores, algorithms.MeasureEigenvector)
	assert.Len(t, r.Rankings, len(algorithms.Measures)-1)
}

func TestAssemble_NoRankings(t *testing.T) {
	r, err := Assemble(analyze(t, connected()), nil, 0)
	require.NoError(t, err)
	assert.Empty(t, r.Rankings)
	assert.Empty(t, r.Rows)
}

func TestAssemble_IncompleteRun(t *testing.T) {
	_, err := Assemble(nil, nil, 0)
	assert.Error(t, err)
	_, err = Assemble(&analysis.Run{}, nil, 0)
	assert.Error(t, err)
}

func TestWriteText(t *testing.T) {
	run := analyze(t, append(connected(), rec("FLL", "PDX")))
	r, err := Assemble(run, []string{"ORD", "XYZ"}, 2)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, r, FormatText))
	out := buf.String()

	assert.Contains(t, out, "Using data file: test.csv")
	assert.Contains(t, out, "Number of nodes/unique airport codes: 6")
	assert.Contains(t, out, "Total number of flights/edges: 5 using weight from Flights")
	assert.Contains(t, out, "eigenvector failed:")
	assert.Contains(t, out, "not found")
	assert.Contains(t, out, "Top 2 by degree centrality")
	assert.False(t, strings.Contains(out, "\x1b["), "non-terminal output must not carry ANSI escapes")
}

func TestWriteJSON(t *testing.T) {
	r, err := Assemble(analyze(t, connected()), []string{"ATL"}, 1)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, r, FormatJSON))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "Flights", decoded["weight_attribute"])

	airports := decoded["airports"].([]any)
	require.Len(t, airports, 1)
	scores := airports[0].(map[string]any)["scores"].(map[string]any)
	assert.Contains(t, scores, "betweenness")
	assert.Contains(t, scores, "eigenvector")
}

func TestWrite_UnknownFormat(t *testing.T) {
	r, err := Assemble(analyze(t, connected()), nil, 0)
	require.NoError(t, err)
	assert.Error(t, Write(&bytes.Buffer{}, r, "xml"))
}

func TestFormatScore(t *testing.T) {
	assert.Equal(t, "0.333333", FormatScore(1.0/3))
	assert.Equal(t, "1", FormatScore(1))
	assert.Equal(t, "0", FormatScore(0))
}
