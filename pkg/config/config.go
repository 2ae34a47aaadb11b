// Package config assembles the settings of a routerank run. Values are
// layered: built-in defaults, an optional YAML file, a .env file, ROUTERANK_*
// environment variables, and finally command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-routerank/pkg/algorithms"
	"github.com/dd0wney/cluso-routerank/pkg/report"
	"github.com/dd0wney/cluso-routerank/pkg/routes"
	"github.com/dd0wney/cluso-routerank/pkg/validation"
)

// DefaultTargets are the airports reported when none are configured
var DefaultTargets = []string{"ORD", "CMI", "FLL", "ATL", "DCA", "PDX"}

type ClosenessConfig struct {
	Weighted   bool `yaml:"weighted"`
	WFImproved bool `yaml:"wf_improved"`
}

type BetweennessConfig struct {
	Weighted   bool `yaml:"weighted"`
	Normalized bool `yaml:"normalized"`
	Endpoints  bool `yaml:"endpoints"`
}

type EigenvectorConfig struct {
	Weighted      bool    `yaml:"weighted"`
	MaxIterations int     `yaml:"max_iterations"`
	Tolerance     float64 `yaml:"tolerance"`
	Disconnected  string  `yaml:"disconnected"` // fail | largest-component
}

type ReportConfig struct {
	Targets []string `yaml:"targets"`
	Top     int      `yaml:"top"`
	Format  string   `yaml:"format"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	CORSOrigins     []string      `yaml:"cors_origins"`
}

type PostgresConfig struct {
	Query string `yaml:"query"`
}

type S3Config struct {
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Config is the complete configuration of one process
type Config struct {
	Input    string `yaml:"input"`
	Weight   string `yaml:"weight"`
	Workers  int    `yaml:"workers"`
	Parallel bool   `yaml:"parallel"` // Run the four measures concurrently

	Closeness   ClosenessConfig   `yaml:"closeness"`
	Betweenness BetweennessConfig `yaml:"betweenness"`
	Eigenvector EigenvectorConfig `yaml:"eigenvector"`
	Report      ReportConfig      `yaml:"report"`
	Server      ServerConfig      `yaml:"server"`
	Postgres    PostgresConfig    `yaml:"postgres"`
	S3          S3Config          `yaml:"s3"`
	Log         LogConfig         `yaml:"log"`
}

// Default returns the built-in configuration
func Default() *Config {
	algo := algorithms.DefaultOptions()

	return &Config{
		Weight:  routes.DefaultWeightAttribute.String(),
		Workers: runtime.NumCPU(),
		Closeness: ClosenessConfig{
			Weighted:   algo.Closeness.Weighted,
			WFImproved: algo.Closeness.WFImproved,
		},
		Betweenness: BetweennessConfig{
			Weighted:   algo.Betweenness.Weighted,
			Normalized: algo.Betweenness.Normalized,
			Endpoints:  algo.Betweenness.Endpoints,
		},
		Eigenvector: EigenvectorConfig{
			Weighted:      algo.Eigenvector.Weighted,
			MaxIterations: algo.Eigenvector.MaxIterations,
			Tolerance:     algo.Eigenvector.Tolerance,
			Disconnected:  algo.Eigenvector.Disconnected.String(),
		},
		Report: ReportConfig{
			Targets: append([]string(nil), DefaultTargets...),
			Top:     10,
			Format:  report.FormatText,
		},
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    60 * time.Second,
			ShutdownTimeout: 30 * time.Second,
		},
		Postgres: PostgresConfig{
			Query: routes.DefaultPostgresQuery,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// LoadFile overlays a YAML file onto cfg. Keys missing from the file keep
// their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// Attribute resolves the weight selector. ok is false when the selector is
// unknown and the default attribute is used instead.
func (c *Config) Attribute() (routes.WeightAttribute, bool) {
	return routes.ParseWeightAttribute(c.Weight)
}

// AlgorithmOptions converts the measure sections into ComputeAll options
func (c *Config) AlgorithmOptions() algorithms.Options {
	policy, _ := algorithms.ParseDisconnectedPolicy(c.Eigenvector.Disconnected)

	return algorithms.Options{
		Closeness: algorithms.ClosenessOptions{
			Weighted:   c.Closeness.Weighted,
			WFImproved: c.Closeness.WFImproved,
			Workers:    c.Workers,
		},
		Betweenness: algorithms.BetweennessOptions{
			Weighted:   c.Betweenness.Weighted,
			Normalized: c.Betweenness.Normalized,
			Endpoints:  c.Betweenness.Endpoints,
			Workers:    c.Workers,
		},
		Eigenvector: algorithms.EigenvectorOptions{
			Weighted:      c.Eigenvector.Weighted,
			MaxIterations: c.Eigenvector.MaxIterations,
			Tolerance:     c.Eigenvector.Tolerance,
			Disconnected:  policy,
		},
		Parallel: c.Parallel,
	}
}

// SourceOptions returns the settings used by routes.Open
func (c *Config) SourceOptions() routes.Options {
	return routes.Options{
		PostgresQuery: c.Postgres.Query,
		S3Region:      c.S3.Region,
		S3Endpoint:    c.S3.Endpoint,
		S3AccessKey:   c.S3.AccessKey,
		S3SecretKey:   c.S3.SecretKey,
	}
}

// Validate checks every section and reports all problems at once
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config cannot be nil")
	}

	cv := validation.NewConfigValidator("Config")
	cv.Positive("Workers", c.Workers).
		RangeInt("Eigenvector.MaxIterations", c.Eigenvector.MaxIterations, 1, 1_000_000).
		PositiveFloat("Eigenvector.Tolerance", c.Eigenvector.Tolerance).
		Custom("Eigenvector.Disconnected", func() error {
			if _, ok := algorithms.ParseDisconnectedPolicy(c.Eigenvector.Disconnected); !ok {
				return fmt.Errorf("unknown policy %q (want fail or largest-component)", c.Eigenvector.Disconnected)
			}
			return nil
		}).
		RangeInt("Report.Top", c.Report.Top, 0, validation.MaxRankingLimit).
		OneOf("Report.Format", c.Report.Format, []string{report.FormatText, report.FormatJSON}).
		Custom("Report.Targets", func() error {
			for _, code := range c.Report.Targets {
				if err := validation.ValidateAirportCode(code); err != nil {
					return err
				}
			}
			return nil
		}).
		Required("Server.Addr", c.Server.Addr).
		PositiveDuration("Server.ReadTimeout", c.Server.ReadTimeout).
		PositiveDuration("Server.WriteTimeout", c.Server.WriteTimeout).
		PositiveDuration("Server.ShutdownTimeout", c.Server.ShutdownTimeout).
		OneOf("Log.Level", strings.ToLower(c.Log.Level), []string{"debug", "info", "warn", "warning", "error"}).
		OneOf("Log.Format", c.Log.Format, []string{"json", "text"}).
		When(c.S3.AccessKey != "", func(v *validation.ConfigValidator) {
			v.Required("S3.SecretKey", c.S3.SecretKey)
		})

	return cv.Validate()
}
