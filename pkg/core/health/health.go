// Package health runs named checks concurrently and serves the combined
// report as JSON.
package health

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"sync"
	"time"
)

// Status is the outcome of a check or of a whole report
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusDegraded  Status = "degraded"
	StatusUnhealthy Status = "unhealthy"
)

// rank orders statuses from best to worst
var rank = map[Status]int{StatusHealthy: 0, StatusDegraded: 1, StatusUnhealthy: 2}

// CheckResult is what a check reports. Name, Duration and Timestamp are
// filled in by the registry.
type CheckResult struct {
	Name      string                 `json:"name"`
	Status    Status                 `json:"status"`
	Message   string                 `json:"message,omitempty"`
	Duration  time.Duration          `json:"duration_ns"`
	Timestamp time.Time              `json:"timestamp"`
	Details   map[string]interface{} `json:"details,omitempty"`
}

// CheckFunc probes one component
type CheckFunc func(ctx context.Context) CheckResult

// Report combines every check; its status is the worst check status
type Report struct {
	Service   string        `json:"service"`
	Version   string        `json:"version"`
	Status    Status        `json:"status"`
	Uptime    time.Duration `json:"uptime_ns"`
	Timestamp time.Time     `json:"timestamp"`
	Checks    []CheckResult `json:"checks"`
}

// Registry holds the checks of one service
type Registry struct {
	mu      sync.RWMutex
	checks  map[string]CheckFunc
	service string
	version string
	started time.Time
}

// NewRegistry creates an empty registry
func NewRegistry(service, version string) *Registry {
	return &Registry{
		checks:  make(map[string]CheckFunc),
		service: service,
		version: version,
		started: time.Now(),
	}
}

// RegisterFunc adds or replaces the check called name
func (r *Registry) RegisterFunc(name string, fn CheckFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checks[name] = fn
}

// Check runs every check concurrently. Results are sorted by name.
func (r *Registry) Check(ctx context.Context) *Report {
	r.mu.RLock()
	names := make([]string, 0, len(r.checks))
	for name := range r.checks {
		names = append(names, name)
	}
	checks := make([]CheckFunc, len(names))
	sort.Strings(names)
	for i, name := range names {
		checks[i] = r.checks[name]
	}
	r.mu.RUnlock()

	report := &Report{
		Service:   r.service,
		Version:   r.version,
		Status:    StatusHealthy,
		Uptime:    time.Since(r.started),
		Timestamp: time.Now(),
		Checks:    make([]CheckResult, len(checks)),
	}

	var wg sync.WaitGroup
	for i := range checks {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			start := time.Now()
			result := checks[i](ctx)
			result.Name = names[i]
			result.Duration = time.Since(start)
			result.Timestamp = time.Now()
			report.Checks[i] = result
		}(i)
	}
	wg.Wait()

	for _, result := range report.Checks {
		if rank[result.Status] > rank[report.Status] {
			report.Status = result.Status
		}
	}
	return report
}

// Handler serves Check as JSON, bounding each request by timeout.
// Unhealthy reports use status 503.
func (r *Registry) Handler(timeout time.Duration) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ctx, cancel := context.WithTimeout(req.Context(), timeout)
		defer cancel()

		report := r.Check(ctx)
		code := http.StatusOK
		if report.Status == StatusUnhealthy {
			code = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		json.NewEncoder(w).Encode(report)
	})
}
