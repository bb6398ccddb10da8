package usecase

import (
	"context"
	"log/slog"
	"sort"

	"textconv/src/core/ports"
)

// HealthService aggregates the health of the registered components.
type HealthService struct {
	log        *slog.Logger
	components map[string]ports.HealthChecker
}

// NewHealthService creates a new HealthService.
func NewHealthService(log *slog.Logger) *HealthService {
	return &HealthService{
		log:        log,
		components: make(map[string]ports.HealthChecker),
	}
}

// Register adds a named component to the detailed check.
// It must be called before the server starts serving.
func (s *HealthService) Register(name string, c ports.HealthChecker) {
	s.components[name] = c
}

// HealthStatus represents the health of the application.
type HealthStatus struct {
	Status     string                     `json:"status"`
	Components map[string]ComponentHealth `json:"components,omitempty"`
}

// ComponentHealth represents the health of a single component.
type ComponentHealth struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Check performs a health check of all application components.
// Any unhealthy component marks the whole status as degraded.
func (s *HealthService) Check(ctx context.Context) *HealthStatus {
	status := &HealthStatus{
		Status:     "ok",
		Components: make(map[string]ComponentHealth, len(s.components)),
	}

	names := make([]string, 0, len(s.components))
	for name := range s.components {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := s.components[name].Health(ctx); err != nil {
			status.Status = "degraded"
			status.Components[name] = ComponentHealth{
				Status:  "unhealthy",
				Message: err.Error(),
			}
			if s.log != nil {
				s.log.Warn("component unhealthy", "component", name, "error", err)
			}
			continue
		}
		status.Components[name] = ComponentHealth{Status: "healthy"}
	}

	return status
}
