package health

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func fixed(status Status) CheckFunc {
	return func(ctx context.Context) CheckResult {
		return CheckResult{Status: status}
	}
}

func TestRegistryCheck(t *testing.T) {
	tests := []struct {
		name     string
		statuses map[string]Status
		want     Status
	}{
		{"empty", map[string]Status{}, StatusHealthy},
		{"all healthy", map[string]Status{"a": StatusHealthy, "b": StatusHealthy}, StatusHealthy},
		{"one degraded", map[string]Status{"a": StatusHealthy, "b": StatusDegraded}, StatusDegraded},
		{"unhealthy wins", map[string]Status{"a": StatusUnhealthy, "b": StatusDegraded}, StatusUnhealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := NewRegistry("fynk-playground", "0.2.0")
			for name, status := range tt.statuses {
				registry.RegisterFunc(name, fixed(status))
			}

			report := registry.Check(context.Background())
			if report.Status != tt.want {
				t.Errorf("Expected status %s, got %s", tt.want, report.Status)
			}
			if len(report.Checks) != len(tt.statuses) {
				t.Errorf("Expected %d checks, got %d", len(tt.statuses), len(report.Checks))
			}
			if report.Service != "fynk-playground" || report.Version != "0.2.0" {
				t.Errorf("Expected service metadata, got %s %s", report.Service, report.Version)
			}
		})
	}
}

func TestRegistryCheckFillsNamesInOrder(t *testing.T) {
	registry := NewRegistry("svc", "1")
	registry.RegisterFunc("zeta", func(ctx context.Context) CheckResult {
		return CheckResult{Name: "ignored", Status: StatusHealthy}
	})
	registry.RegisterFunc("alpha", fixed(StatusHealthy))
	registry.RegisterFunc("alpha", fixed(StatusDegraded))

	report := registry.Check(context.Background())
	if len(report.Checks) != 2 {
		t.Fatalf("Expected 2 checks, got %d", len(report.Checks))
	}
	if report.Checks[0].Name != "alpha" || report.Checks[1].Name != "zeta" {
		t.Errorf("Expected alpha, zeta got %s, %s", report.Checks[0].Name, report.Checks[1].Name)
	}
	if report.Checks[0].Status != StatusDegraded {
		t.Errorf("Expected re-registered check to replace the first, got %s", report.Checks[0].Status)
	}
	if report.Checks[0].Timestamp.IsZero() {
		t.Error("Expected timestamp to be set")
	}
}

func TestRegistryChecksRunConcurrently(t *testing.T) {
	registry := NewRegistry("svc", "1")
	var running, peak int32
	for _, name := range []string{"a", "b", "c"} {
		registry.RegisterFunc(name, func(ctx context.Context) CheckResult {
			n := atomic.AddInt32(&running, 1)
			for {
				p := atomic.LoadInt32(&peak)
				if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
					break
				}
			}
			time.Sleep(20 * time.Millisecond)
			atomic.AddInt32(&running, -1)
			return CheckResult{Status: StatusHealthy}
		})
	}

	registry.Check(context.Background())
	if got := atomic.LoadInt32(&peak); got < 2 {
		t.Errorf("Expected concurrent checks, peak was %d", got)
	}
}

func TestHandler(t *testing.T) {
	tests := []struct {
		name     string
		status   Status
		wantCode int
	}{
		{"healthy", StatusHealthy, http.StatusOK},
		{"degraded", StatusDegraded, http.StatusOK},
		{"unhealthy", StatusUnhealthy, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := NewRegistry("svc", "1")
			registry.RegisterFunc("engine", fixed(tt.status))

			rec := httptest.NewRecorder()
			registry.Handler(time.Second).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

			if rec.Code != tt.wantCode {
				t.Errorf("Expected code %d, got %d", tt.wantCode, rec.Code)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Expected application/json, got %s", ct)
			}

			var report Report
			if err := json.NewDecoder(rec.Body).Decode(&report); err != nil {
				t.Fatalf("Expected JSON report, got error: %v", err)
			}
			if report.Status != tt.status {
				t.Errorf("Expected status %s, got %s", tt.status, report.Status)
			}
		})
	}
}

func TestHandlerTimeout(t *testing.T) {
	registry := NewRegistry("svc", "1")
	registry.RegisterFunc("slow", func(ctx context.Context) CheckResult {
		select {
		case <-ctx.Done():
			return CheckResult{Status: StatusUnhealthy, Message: ctx.Err().Error()}
		case <-time.After(time.Second):
			return CheckResult{Status: StatusHealthy}
		}
	})

	rec := httptest.NewRecorder()
	registry.Handler(10*time.Millisecond).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected 503 after the timeout, got %d", rec.Code)
	}
}
