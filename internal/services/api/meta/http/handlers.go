// Package http provides meta endpoints
package http

import (
	"net/http"
	"time"

	"batakh/internal/core/langpack"
	"batakh/internal/core/version"
	phttp "batakh/internal/platform/net/http"
)

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Pack        *langpack.Pack
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r phttp.Router, d Deps) {
	h := &handlers{deps: d}

	phttp.GetJSON(r, "/health", h.health)
	phttp.GetJSON(r, "/version", h.version)
	phttp.GetJSON(r, "/service", h.service)
	phttp.GetJSON(r, "/pack", h.pack)
}

// HealthResponse is the health payload
type HealthResponse struct {
	OK      bool   `json:"ok"       example:"true"`
	Service string `json:"service"  example:"batakh-api"`
	Started string `json:"started"  example:"2026-08-28T13:00:00Z"`
	Now     string `json:"now"      example:"2026-08-28T13:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string `json:"name"    example:"batakh-api"`
	Started string `json:"started" example:"2026-08-28T13:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// PackResponse reports the loaded language pack and build info
type PackResponse struct {
	PackVersion int               `json:"pack_version" example:"1"`
	Meta        map[string]string `json:"meta"`
	Numbers     int               `json:"numbers"`
	Months      int               `json:"months"`
	Weekdays    int               `json:"weekdays"`
	Units       int               `json:"units"`
	Build       version.BuildInfo `json:"build"`
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

func (h *handlers) service(_ *http.Request) (any, error) {
	uptime := time.Since(h.deps.StartedAt)
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(uptime / time.Second),
	}, nil
}

func (h *handlers) pack(_ *http.Request) (any, error) {
	p := h.deps.Pack
	return PackResponse{
		PackVersion: p.Version,
		Meta:        p.Meta,
		Numbers:     len(p.Numbers),
		Months:      len(p.Months),
		Weekdays:    len(p.Weekdays),
		Units:       len(p.Units),
		Build:       version.Info(),
	}, nil
}
