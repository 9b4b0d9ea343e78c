package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"misteri/internal/recipes/service"
	httputil "misteri/pkg/http"
	"misteri/pkg/logger"
)

type ProfileHandler struct {
	service service.ProfileService
	log     *logger.Logger
}

func NewProfileHandler(service service.ProfileService, log *logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		service: service,
		log:     log,
	}
}

func (h *ProfileHandler) GetByLogin(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	profile, err := h.service.GetByLogin(r.Context(), ps.ByName("login"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByLogin", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, profile); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByLogin", "operation", "WriteSuccess", "error", err)
	}
}

func (h *ProfileHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/profiles/:login", h.GetByLogin)
}
