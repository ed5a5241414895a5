// Package http provides the Duckling-compatible transport for the parser.
// Bodies on this surface are bare JSON (no response envelope) so unmodified
// downstream consumers can talk to it byte-for-byte.
package http

import (
	stdhttp "net/http"

	phttp "batakh/internal/platform/net/http"
	"batakh/internal/platform/net/http/bind"
	"batakh/internal/services/api/parse/domain"
	svc "batakh/internal/services/api/parse/service"
)

// Register mounts the protocol endpoints at the router root
func Register(r phttp.Router, s svc.Service) {
	h := &handlers{svc: s}

	r.Post("/parse", h.parse)
	r.Get("/", h.greeting)
	r.Get("/health", h.health)
}

type handlers struct{ svc svc.Service }

// parse accepts the form-encoded protocol request and responds with the bare
// JSON array of zero or one entities. Only a malformed reftime is a request
// failure; unparseable text is an empty array.
func (h *handlers) parse(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	var in domain.ParseRequest
	if err := bind.Form(r, &in); err != nil {
		phttp.RespondError(w, r, err)
		return
	}

	entities, err := h.svc.Parse(r.Context(), in)
	if err != nil {
		phttp.RespondError(w, r, err)
		return
	}

	phttp.JSON(w, stdhttp.StatusOK, entities)
}

func (h *handlers) greeting(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	phttp.JSON(w, stdhttp.StatusOK, map[string]string{
		"message": "quack! (Hindi temporal parser, Duckling compatible)",
	})
}

func (h *handlers) health(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	phttp.JSON(w, stdhttp.StatusOK, map[string]string{"status": "ok"})
}
