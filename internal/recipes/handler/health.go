package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	httputil "misteri/pkg/http"
	"misteri/pkg/logger"
)

const readinessTimeout = 2 * time.Second

type HealthResponse struct {
	Status   string            `json:"status"`
	Upstream map[string]string `json:"upstream,omitempty"`
}

// Pinger reports whether an upstream dependency answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	upstreams map[string]Pinger
	log       *logger.Logger
}

func NewHealthHandler(upstreams map[string]Pinger, log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		upstreams: upstreams,
		log:       log,
	}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Health", "operation", "WriteJSON", "error", err)
	}
}

func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	status := http.StatusOK
	resp := HealthResponse{Status: "ready", Upstream: make(map[string]string, len(h.upstreams))}

	for name, p := range h.upstreams {
		if err := p.Ping(ctx); err != nil {
			h.log.Error("Upstream health check failed",
				"upstream", name,
				"error", err,
				"path", r.URL.Path,
			)
			resp.Upstream[name] = "error"
			resp.Status = "unavailable"
			status = http.StatusServiceUnavailable
			continue
		}
		resp.Upstream[name] = "ok"
	}

	if err := httputil.WriteJSON(w, status, resp); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Ready", "operation", "WriteJSON", "error", err)
	}
}

func (h *HealthHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
}
