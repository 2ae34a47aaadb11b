package graphql

import (
	"errors"
	"fmt"

	"github.com/graphql-go/graphql"

	"github.com/dd0wney/cluso-routerank/pkg/algorithms"
	"github.com/dd0wney/cluso-routerank/pkg/analysis"
	"github.com/dd0wney/cluso-routerank/pkg/validation"
)

// RunProvider returns the analysis run queries are answered from. It may
// return nil before the first run completes.
type RunProvider func() *analysis.Run

// ErrNoRun is returned by every query while no analysis is loaded
var ErrNoRun = errors.New("no analysis loaded")

// rankedAirport is the source value of the RankedAirport type
type rankedAirport struct {
	run  *analysis.Run
	rank int
	node algorithms.RankedNode
}

// measureError is the source value of the MeasureError type
type measureError struct {
	measure algorithms.Measure
	message string
}

var measureEnum = graphql.NewEnum(graphql.EnumConfig{
	Name:        "Measure",
	Description: "Centrality measure",
	Values: graphql.EnumValueConfigMap{
		"DEGREE":      &graphql.EnumValueConfig{Value: algorithms.MeasureDegree},
		"CLOSENESS":   &graphql.EnumValueConfig{Value: algorithms.MeasureCloseness},
		"BETWEENNESS": &graphql.EnumValueConfig{Value: algorithms.MeasureBetweenness},
		"EIGENVECTOR": &graphql.EnumValueConfig{Value: algorithms.MeasureEigenvector},
	},
})

var measureErrorType = graphql.NewObject(graphql.ObjectConfig{
	Name: "MeasureError",
	Fields: graphql.Fields{
		"measure": &graphql.Field{
			Type: graphql.NewNonNull(measureEnum),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return p.Source.(measureError).measure, nil
			},
		},
		"message": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return p.Source.(measureError).message, nil
			},
		},
	},
})

// scoreField resolves one measure of an AirportScores source; failed
// measures resolve to null
func scoreField(m algorithms.Measure) *graphql.Field {
	return &graphql.Field{
		Type: graphql.Float,
		Resolve: func(p graphql.ResolveParams) (any, error) {
			s := p.Source.(*analysis.AirportScores)
			if v, ok := s.Scores[m]; ok {
				return v, nil
			}
			return nil, nil
		},
	}
}

var scoresType = graphql.NewObject(graphql.ObjectConfig{
	Name:        "Scores",
	Description: "Centrality scores of one airport; null where the measure failed",
	Fields: graphql.Fields{
		"degree":      scoreField(algorithms.MeasureDegree),
		"closeness":   scoreField(algorithms.MeasureCloseness),
		"betweenness": scoreField(algorithms.MeasureBetweenness),
		"eigenvector": scoreField(algorithms.MeasureEigenvector),
	},
})

var airportType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Airport",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return p.Source.(*analysis.AirportScores).ID, nil
			},
		},
		"population": &graphql.Field{
			Type: graphql.Float,
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return p.Source.(*analysis.AirportScores).Population, nil
			},
		},
		"neighbors": &graphql.Field{
			Type:        graphql.Int,
			Description: "Distinct airports connected by at least one route",
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return p.Source.(*analysis.AirportScores).Neighbors, nil
			},
		},
		"scores": &graphql.Field{
			Type: graphql.NewNonNull(scoresType),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return p.Source, nil
			},
		},
		"errors": &graphql.Field{
			Type: graphql.NewList(graphql.NewNonNull(measureErrorType)),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				s := p.Source.(*analysis.AirportScores)
				out := make([]measureError, 0, len(s.Errors))
				for _, m := range algorithms.Measures {
					if msg, ok := s.Errors[m]; ok {
						out = append(out, measureError{measure: m, message: msg})
					}
				}
				return out, nil
			},
		},
	},
})

var rankedAirportType = graphql.NewObject(graphql.ObjectConfig{
	Name: "RankedAirport",
	Fields: graphql.Fields{
		"rank": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return p.Source.(rankedAirport).rank, nil
			},
		},
		"id": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return p.Source.(rankedAirport).node.ID, nil
			},
		},
		"score": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Float),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return p.Source.(rankedAirport).node.Score, nil
			},
		},
		"airport": &graphql.Field{
			Type: graphql.NewNonNull(airportType),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				r := p.Source.(rankedAirport)
				return r.run.Airport(r.node.ID)
			},
		},
	},
})

var eigenvectorType = graphql.NewObject(graphql.ObjectConfig{
	Name: "EigenvectorRun",
	Fields: graphql.Fields{
		"iterations": &graphql.Field{
			Type: graphql.Int,
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return p.Source.(*algorithms.EigenvectorResult).Iterations, nil
			},
		},
		"converged": &graphql.Field{
			Type: graphql.Boolean,
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return p.Source.(*algorithms.EigenvectorResult).Converged, nil
			},
		},
		"componentSize": &graphql.Field{
			Type: graphql.Int,
			Resolve: func(p graphql.ResolveParams) (any, error) {
				return p.Source.(*algorithms.EigenvectorResult).ComponentSize, nil
			},
		},
	},
})

func runField(typ graphql.Output, get func(*analysis.Run) any) *graphql.Field {
	return &graphql.Field{
		Type: typ,
		Resolve: func(p graphql.ResolveParams) (any, error) {
			return get(p.Source.(*analysis.Run)), nil
		},
	}
}

var graphType = graphql.NewObject(graphql.ObjectConfig{
	Name:        "Graph",
	Description: "The route graph of the loaded analysis",
	Fields: graphql.Fields{
		"runId":           runField(graphql.NewNonNull(graphql.String), func(r *analysis.Run) any { return r.ID.String() }),
		"source":          runField(graphql.NewNonNull(graphql.String), func(r *analysis.Run) any { return r.Source }),
		"weightAttribute": runField(graphql.NewNonNull(graphql.String), func(r *analysis.Run) any { return r.Attribute.String() }),
		"startedAt":       runField(graphql.DateTime, func(r *analysis.Run) any { return r.StartedAt }),
		"nodes":           runField(graphql.NewNonNull(graphql.Int), func(r *analysis.Run) any { return r.Stats.NodeCount }),
		"edges":           runField(graphql.NewNonNull(graphql.Int), func(r *analysis.Run) any { return r.Stats.EdgeCount }),
		"selfLoops":       runField(graphql.NewNonNull(graphql.Int), func(r *analysis.Run) any { return r.Stats.SelfLoops }),
		"parallelEdges":   runField(graphql.NewNonNull(graphql.Int), func(r *analysis.Run) any { return r.Stats.ParallelEdges }),
		"components":      runField(graphql.NewNonNull(graphql.Int), func(r *analysis.Run) any { return r.Components }),
		"eigenvector": &graphql.Field{
			Type: eigenvectorType,
			Resolve: func(p graphql.ResolveParams) (any, error) {
				if ev := p.Source.(*analysis.Run).Result.Eigenvector; ev != nil {
					return ev, nil
				}
				return nil, nil
			},
		},
		"failedMeasures": &graphql.Field{
			Type: graphql.NewList(graphql.NewNonNull(measureErrorType)),
			Resolve: func(p graphql.ResolveParams) (any, error) {
				run := p.Source.(*analysis.Run)
				var out []measureError
				for _, m := range algorithms.Measures {
					if err := run.Result.Errors[m]; err != nil {
						out = append(out, measureError{measure: m, message: err.Error()})
					}
				}
				return out, nil
			},
		},
	},
})

// NewSchema builds the query schema over the runs returned by provider
func NewSchema(provider RunProvider, limits *LimitConfig) (graphql.Schema, error) {
	if limits == nil {
		limits = DefaultLimitConfig()
	}
	if err := ValidateLimitConfig(limits); err != nil {
		return graphql.Schema{}, err
	}

	current := func() (*analysis.Run, error) {
		run := provider()
		if run == nil || run.Result == nil {
			return nil, ErrNoRun
		}
		return run, nil
	}

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"airport": &graphql.Field{
				Type:        airportType,
				Description: "Scores of one airport",
				Args: graphql.FieldConfigArgument{
					"code": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					run, err := current()
					if err != nil {
						return nil, err
					}
					code, _ := p.Args["code"].(string)
					if err := validation.ValidateAirportCode(code); err != nil {
						return nil, err
					}
					return run.Airport(code)
				},
			},
			"top": &graphql.Field{
				Type:        graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(rankedAirportType))),
				Description: "Highest scoring airports under one measure",
				Args: graphql.FieldConfigArgument{
					"measure": &graphql.ArgumentConfig{Type: graphql.NewNonNull(measureEnum)},
					"limit":   &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					run, err := current()
					if err != nil {
						return nil, err
					}
					m, ok := p.Args["measure"].(algorithms.Measure)
					if !ok {
						return nil, fmt.Errorf("%w: %v", algorithms.ErrUnknownMeasure, p.Args["measure"])
					}
					requested := -1
					if v, ok := p.Args["limit"].(int); ok {
						requested = v
					}
					limit := applyLimit(requested, limits)
					if limit == 0 {
						return []rankedAirport{}, nil
					}

					ranked, err := run.Top(m, limit)
					if err != nil {
						return nil, err
					}
					out := make([]rankedAirport, len(ranked))
					for i, n := range ranked {
						out[i] = rankedAirport{run: run, rank: i + 1, node: n}
					}
					return out, nil
				},
			},
			"graph": &graphql.Field{
				Type: graphql.NewNonNull(graphType),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return current()
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query: queryType,
	})
}
