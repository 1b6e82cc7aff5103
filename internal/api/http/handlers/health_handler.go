package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/socialdev/internal/api/dto"
	"github.com/spec-kit/socialdev/internal/observability"
	"github.com/spec-kit/socialdev/internal/persistence"
)

const welcomeMessage = "Welcome to SocialDev API! Visit /api for documentation."

// Pinger is a dependency that can report its reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler responds to liveness, readiness and metrics probes.
type HealthHandler struct {
	serviceName string
	version     string
	deps        map[string]Pinger
	metrics     *observability.Metrics
	now         func() time.Time
}

// NewHealthHandler returns a new handler instance. deps is keyed by the name
// reported in readiness output.
func NewHealthHandler(serviceName, version string, deps map[string]Pinger, metrics *observability.Metrics) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		deps:        deps,
		metrics:     metrics,
		now:         time.Now,
	}
}

// Welcome handles GET /api.
func (h *HealthHandler) Welcome(c *fiber.Ctx) error {
	return c.SendString(welcomeMessage)
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{
		Status:    "ok",
		Timestamp: h.now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
	})
}

// Ready reports service readiness by checking dependencies. A dependency
// switched off by configuration is reported but does not fail the probe.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	checks := make(map[string]string, len(h.deps))
	ready := true
	for name, dep := range h.deps {
		err := dep.Ping(ctx)
		switch {
		case err == nil:
			checks[name] = "ok"
		case errors.Is(err, persistence.ErrRedisDisabled):
			checks[name] = "disabled"
		default:
			checks[name] = err.Error()
			ready = false
		}
	}

	if ready {
		return c.JSON(dto.ReadinessResponse{Status: "ready", Checks: checks})
	}
	return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ReadinessResponse{Status: "unavailable", Checks: checks})
}

// Metrics returns the request counters.
func (h *HealthHandler) Metrics(c *fiber.Ctx) error {
	return c.JSON(h.metrics.Snapshot())
}
