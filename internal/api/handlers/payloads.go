// Package handlers contains the HTTP handlers for the payload API.
package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"wnspush/internal/core"
	"wnspush/internal/notifications/wns"
	"wnspush/internal/render"
)

// Renderer is the service contract of PayloadHandler. *render.Service
// implements it.
type Renderer interface {
	Render(ctx context.Context, req *render.Request) (*render.Result, error)
}

// PayloadHandler exposes payload rendering over HTTP.
type PayloadHandler struct {
	renderer Renderer
	logger   *slog.Logger
}

// NewPayloadHandler creates a PayloadHandler.
func NewPayloadHandler(renderer Renderer, logger *slog.Logger) *PayloadHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PayloadHandler{renderer: renderer, logger: logger}
}

// RegisterRoutes mounts the payload endpoints. main mounts the handler at
// /v1/payloads.
func (h *PayloadHandler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.HandleRender)
	r.Post("/preview", h.HandlePreview)
}

// HandleRender handles POST /v1/payloads. The rendered payload and its
// delivery headers are returned inside the standard JSON envelope.
func (h *PayloadHandler) HandleRender(w http.ResponseWriter, r *http.Request) {
	result, ok := h.render(w, r)
	if !ok {
		return
	}
	core.JSON(w, r, http.StatusOK, core.APIResponse{Data: result})
}

// HandlePreview handles POST /v1/payloads/preview. The response is the push
// body exactly as the transport would send it to WNS, with the delivery
// headers set on the response.
func (h *PayloadHandler) HandlePreview(w http.ResponseWriter, r *http.Request) {
	result, ok := h.render(w, r)
	if !ok {
		return
	}

	for name, value := range result.Headers {
		w.Header()[name] = []string{value}
	}
	w.Header().Set(wns.HeaderContentType, result.ContentType)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(result.Payload)); err != nil {
		h.logger.Warn("failed to write preview body", "error", err)
	}
}

func (h *PayloadHandler) render(w http.ResponseWriter, r *http.Request) (*render.Result, bool) {
	var req render.Request
	if err := core.DecodeJSON(w, r, &req); err != nil {
		core.Error(w, r, err)
		return nil, false
	}

	result, err := h.renderer.Render(r.Context(), &req)
	if err != nil {
		core.Error(w, r, err)
		return nil, false
	}
	return result, true
}
