package playground

import (
	"context"
	"fmt"

	"github.com/fynk-lang/fynk/pkg/core/health"
)

// canarySource is parsed by the engine check on every /healthz request
const canarySource = "x = 1 + 2;"

func (s *Server) registerChecks(registry *health.Registry) {
	registry.RegisterFunc("engine", func(ctx context.Context) health.CheckResult {
		result, err := s.handler.engine.Check("<healthz>", canarySource)
		if err != nil {
			return health.CheckResult{Status: health.StatusUnhealthy, Message: err.Error()}
		}
		if !result.OK() {
			return health.CheckResult{
				Status:  health.StatusUnhealthy,
				Message: fmt.Sprintf("canary source produced %d diagnostics", len(result.Diagnostics)),
			}
		}
		return health.CheckResult{
			Status:  health.StatusHealthy,
			Details: map[string]interface{}{"tokens": result.Tokens.Len()},
		}
	})

	registry.RegisterFunc("cache", func(ctx context.Context) health.CheckResult {
		results := s.handler.results
		if results == nil {
			return health.CheckResult{Status: health.StatusHealthy, Message: "disabled"}
		}
		stats := results.Stats()
		return health.CheckResult{
			Status: health.StatusHealthy,
			Details: map[string]interface{}{
				"size":     stats.Size,
				"hits":     stats.Hits,
				"misses":   stats.Misses,
				"hit_rate": stats.HitRate,
			},
		}
	})
}
