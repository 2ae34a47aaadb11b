package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// setting binds one configuration value to its flag and environment names.
// An empty flag name means the value is only read from the environment.
type setting struct {
	flag   string
	env    []string
	usage  string
	isBool bool
	set    func(c *Config, value string) error
}

func stringSetting(flagName, env, usage string, field func(*Config) *string) setting {
	return setting{flag: flagName, env: []string{env}, usage: usage, set: func(c *Config, v string) error {
		*field(c) = v
		return nil
	}}
}

func intSetting(flagName, env, usage string, field func(*Config) *int) setting {
	return setting{flag: flagName, env: []string{env}, usage: usage, set: func(c *Config, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		*field(c) = n
		return nil
	}}
}

func floatSetting(flagName, env, usage string, field func(*Config) *float64) setting {
	return setting{flag: flagName, env: []string{env}, usage: usage, set: func(c *Config, v string) error {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		*field(c) = f
		return nil
	}}
}

func boolSetting(flagName, env, usage string, field func(*Config) *bool) setting {
	return setting{flag: flagName, env: []string{env}, usage: usage, isBool: true, set: func(c *Config, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		*field(c) = b
		return nil
	}}
}

func durationSetting(flagName, env, usage string, field func(*Config) *time.Duration) setting {
	return setting{flag: flagName, env: []string{env}, usage: usage, set: func(c *Config, v string) error {
		d, err := time.ParseDuration(v)
		if err != nil {
			return err
		}
		*field(c) = d
		return nil
	}}
}

var settings = []setting{
	stringSetting("input", "ROUTERANK_INPUT", "Route table: CSV path (.sz for snappy), s3://bucket/key or postgres:// URL",
		func(c *Config) *string { return &c.Input }),
	stringSetting("weight", "ROUTERANK_WEIGHT", "Weight attribute: Numtimes, Passengers, Seats, Flights or Distance",
		func(c *Config) *string { return &c.Weight }),
	intSetting("workers", "ROUTERANK_WORKERS", "Workers for closeness and betweenness",
		func(c *Config) *int { return &c.Workers }),
	boolSetting("parallel", "ROUTERANK_PARALLEL", "Compute the four measures concurrently",
		func(c *Config) *bool { return &c.Parallel }),

	boolSetting("closeness-weighted", "ROUTERANK_CLOSENESS_WEIGHTED", "Closeness uses weights as distances",
		func(c *Config) *bool { return &c.Closeness.Weighted }),
	boolSetting("wf-improved", "ROUTERANK_CLOSENESS_WF_IMPROVED", "Scale closeness by reachable fraction",
		func(c *Config) *bool { return &c.Closeness.WFImproved }),

	boolSetting("betweenness-weighted", "ROUTERANK_BETWEENNESS_WEIGHTED", "Betweenness uses weighted shortest paths",
		func(c *Config) *bool { return &c.Betweenness.Weighted }),
	boolSetting("normalized", "ROUTERANK_BETWEENNESS_NORMALIZED", "Normalize betweenness",
		func(c *Config) *bool { return &c.Betweenness.Normalized }),
	boolSetting("endpoints", "ROUTERANK_BETWEENNESS_ENDPOINTS", "Count endpoints in betweenness",
		func(c *Config) *bool { return &c.Betweenness.Endpoints }),

	boolSetting("eigen-weighted", "ROUTERANK_EIGENVECTOR_WEIGHTED", "Eigenvector uses summed route weights",
		func(c *Config) *bool { return &c.Eigenvector.Weighted }),
	intSetting("eigen-max-iter", "ROUTERANK_EIGENVECTOR_MAX_ITERATIONS", "Eigenvector iteration limit",
		func(c *Config) *int { return &c.Eigenvector.MaxIterations }),
	floatSetting("eigen-tol", "ROUTERANK_EIGENVECTOR_TOLERANCE", "Eigenvector per-node tolerance",
		func(c *Config) *float64 { return &c.Eigenvector.Tolerance }),
	stringSetting("eigen-disconnected", "ROUTERANK_EIGENVECTOR_DISCONNECTED", "Disconnected graphs: fail or largest-component",
		func(c *Config) *string { return &c.Eigenvector.Disconnected }),

	{
		flag:  "targets",
		env:   []string{"ROUTERANK_REPORT_TARGETS"},
		usage: "Comma-separated airports to report",
		set: func(c *Config, v string) error {
			c.Report.Targets = splitList(v)
			return nil
		},
	},
	intSetting("top", "ROUTERANK_REPORT_TOP", "Top-N airports per measure (0 disables rankings)",
		func(c *Config) *int { return &c.Report.Top }),
	stringSetting("format", "ROUTERANK_REPORT_FORMAT", "Report format: text or json",
		func(c *Config) *string { return &c.Report.Format }),

	stringSetting("addr", "ROUTERANK_SERVER_ADDR", "HTTP listen address",
		func(c *Config) *string { return &c.Server.Addr }),
	durationSetting("read-timeout", "ROUTERANK_SERVER_READ_TIMEOUT", "HTTP read timeout",
		func(c *Config) *time.Duration { return &c.Server.ReadTimeout }),
	durationSetting("write-timeout", "ROUTERANK_SERVER_WRITE_TIMEOUT", "HTTP write timeout",
		func(c *Config) *time.Duration { return &c.Server.WriteTimeout }),
	{
		flag:  "cors-origins",
		env:   []string{"ROUTERANK_SERVER_CORS_ORIGINS"},
		usage: "Comma-separated origins allowed to call the API",
		set: func(c *Config, v string) error {
			c.Server.CORSOrigins = splitList(v)
			return nil
		},
	},
	durationSetting("shutdown-timeout", "ROUTERANK_SERVER_SHUTDOWN_TIMEOUT", "Graceful shutdown timeout",
		func(c *Config) *time.Duration { return &c.Server.ShutdownTimeout }),

	stringSetting("postgres-query", "ROUTERANK_POSTGRES_QUERY", "Query for postgres:// inputs",
		func(c *Config) *string { return &c.Postgres.Query }),
	stringSetting("s3-region", "ROUTERANK_S3_REGION", "AWS region for s3:// inputs",
		func(c *Config) *string { return &c.S3.Region }),
	stringSetting("s3-endpoint", "ROUTERANK_S3_ENDPOINT", "Custom S3 endpoint",
		func(c *Config) *string { return &c.S3.Endpoint }),
	stringSetting("", "ROUTERANK_S3_ACCESS_KEY", "",
		func(c *Config) *string { return &c.S3.AccessKey }),
	stringSetting("", "ROUTERANK_S3_SECRET_KEY", "",
		func(c *Config) *string { return &c.S3.SecretKey }),

	{
		flag:  "log-level",
		env:   []string{"ROUTERANK_LOG_LEVEL", "LOG_LEVEL"},
		usage: "Log level: debug, info, warn or error",
		set: func(c *Config, v string) error {
			c.Log.Level = v
			return nil
		},
	},
	stringSetting("log-format", "ROUTERANK_LOG_FORMAT", "Log format: json or text",
		func(c *Config) *string { return &c.Log.Format }),
}

// ApplyEnv overlays ROUTERANK_* environment variables. A .env file in the
// working directory is loaded first; it never overrides variables that are
// already set.
func (c *Config) ApplyEnv() error {
	_ = godotenv.Load()

	for _, s := range settings {
		for _, key := range s.env {
			value, ok := getEnv(key)
			if !ok {
				continue
			}
			if err := s.set(c, value); err != nil {
				return fmt.Errorf("invalid %s=%q: %w", key, value, err)
			}
			break
		}
	}
	return nil
}

// RegisterFlags defines one flag per setting on fs, plus -config. Flag
// defaults are empty; only flags given on the command line are applied.
func RegisterFlags(fs *flag.FlagSet) {
	fs.String("config", "", "YAML configuration file")
	for _, s := range settings {
		if s.flag == "" {
			continue
		}
		if s.isBool {
			fs.Bool(s.flag, false, s.usage)
		} else {
			fs.String(s.flag, "", s.usage)
		}
	}
}

// ApplyFlags overlays every flag that was set on fs
func (c *Config) ApplyFlags(fs *flag.FlagSet) error {
	byFlag := make(map[string]setting, len(settings))
	for _, s := range settings {
		if s.flag != "" {
			byFlag[s.flag] = s
		}
	}

	var firstErr error
	fs.Visit(func(f *flag.Flag) {
		s, ok := byFlag[f.Name]
		if !ok || firstErr != nil {
			return
		}
		if err := s.set(c, f.Value.String()); err != nil {
			firstErr = fmt.Errorf("invalid -%s=%q: %w", f.Name, f.Value.String(), err)
		}
	})
	return firstErr
}

// Load builds the configuration from every layer and validates it. fs must
// have been populated by RegisterFlags and parsed; it may be nil.
func Load(fs *flag.FlagSet) (*Config, error) {
	cfg := Default()

	path, _ := getEnv("ROUTERANK_CONFIG")
	if fs != nil {
		if f := fs.Lookup("config"); f != nil && f.Value.String() != "" {
			path = f.Value.String()
		}
	}
	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if fs != nil {
		if err := cfg.ApplyFlags(fs); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getEnv(key string) (string, bool) {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value, true
	}
	return "", false
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
