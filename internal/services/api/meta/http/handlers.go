// Package http provides meta endpoints
package http

import (
	"net/http"
	"time"

	"exposure/internal/core/version"
	"exposure/internal/modkit/httpkit"
	dsdomain "exposure/internal/services/datasets/domain"
)

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Datasets    dsdomain.ServicePort
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
}

// HealthResponse is the health payload
type HealthResponse struct {
	OK      bool   `json:"ok"      example:"true"`
	Service string `json:"service" example:"exposure-api"`
	Started string `json:"started" example:"2026-08-01T13:00:00Z"`
	Now     string `json:"now"     example:"2026-08-01T13:05:00Z"`
}

// ServiceResponse describes service info and the session store
type ServiceResponse struct {
	Name    string              `json:"name"    example:"exposure-api"`
	Started string              `json:"started" example:"2026-08-01T13:00:00Z"`
	Uptime  int64               `json:"uptime"  example:"300"`
	Store   dsdomain.StoreStats `json:"store"`
}

func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

func (h *handlers) service(r *http.Request) (any, error) {
	var stats dsdomain.StoreStats
	if h.deps.Datasets != nil {
		stats = h.deps.Datasets.Stats(r.Context())
	}
	uptime := time.Since(h.deps.StartedAt)
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(uptime / time.Second),
		Store:   stats,
	}, nil
}
