package health

import (
	"time"

	"github.com/dd0wney/cluso-routerank/pkg/analysis"
)

// SimpleCheck creates a simple health check that always returns healthy
func SimpleCheck(name string) Check {
	return Check{
		Name:        name,
		Status:      StatusHealthy,
		LastChecked: time.Now(),
	}
}

// RunCheck reports on the analysis run being served. No run is unhealthy;
// a run with failed measures is degraded since the remaining scores are
// still served.
func RunCheck(current func() *analysis.Run) CheckFunc {
	return func() Check {
		check := Check{
			Name:    "analysis",
			Details: make(map[string]any),
		}

		run := current()
		if run == nil || run.Result == nil {
			check.Status = StatusUnhealthy
			check.Message = "No analysis loaded"
			return check
		}

		check.Details["run_id"] = run.ID.String()
		check.Details["source"] = run.Source
		check.Details["weight_attribute"] = run.Attribute.String()
		check.Details["nodes"] = run.Stats.NodeCount
		check.Details["edges"] = run.Stats.EdgeCount
		check.Details["age_seconds"] = time.Since(run.StartedAt).Seconds()

		if run.Result.Failed() {
			failed := make(map[string]string, len(run.Result.Errors))
			for m, err := range run.Result.Errors {
				failed[m.String()] = err.Error()
			}
			check.Details["failed_measures"] = failed
			check.Status = StatusDegraded
			check.Message = "Some measures failed"
			return check
		}

		check.Status = StatusHealthy
		check.Message = "All measures computed"
		return check
	}
}

// SourceCheck creates a health check for a remote route source
func SourceCheck(name string, ping func() error) CheckFunc {
	return func() Check {
		check := Check{
			Name: name,
		}

		if err := ping(); err != nil {
			check.Status = StatusDegraded
			check.Message = err.Error()
		} else {
			check.Status = StatusHealthy
			check.Message = "Reachable"
		}

		return check
	}
}

// MemoryCheck creates a health check for memory usage
func MemoryCheck(getUsage func() (alloc, sys uint64)) CheckFunc {
	return func() Check {
		check := Check{
			Name:    "memory",
			Details: make(map[string]any),
		}

		alloc, sys := getUsage()

		check.Details["alloc_bytes"] = alloc
		check.Details["sys_bytes"] = sys

		if sys == 0 {
			check.Status = StatusHealthy
			check.Message = "Memory usage unknown"
			return check
		}

		// Degraded once the heap holds most of what the runtime obtained
		usagePercent := float64(alloc) / float64(sys) * 100
		check.Details["usage_percent"] = usagePercent

		if usagePercent > 90 {
			check.Status = StatusDegraded
			check.Message = "High memory usage"
		} else {
			check.Status = StatusHealthy
			check.Message = "Memory usage normal"
		}

		return check
	}
}
