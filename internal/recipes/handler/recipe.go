package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"misteri/internal/recipes/service"
	httputil "misteri/pkg/http"
	"misteri/pkg/logger"
)

type RecipeHandler struct {
	service service.RecipeService
	log     *logger.Logger
}

func NewRecipeHandler(service service.RecipeService, log *logger.Logger) *RecipeHandler {
	return &RecipeHandler{
		service: service,
		log:     log,
	}
}

func (h *RecipeHandler) Categories(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	categories, err := h.service.Categories(r.Context())
	if err != nil {
		h.writeError(w, "Categories", err)
		return
	}

	if err := httputil.WriteList(w, categories); err != nil {
		h.log.Error("failed to write list response", "handler", "Categories", "operation", "WriteList", "error", err)
	}
}

func (h *RecipeHandler) ByCategory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	summaries, err := h.service.RecipesByCategory(r.Context(), ps.ByName("name"))
	if err != nil {
		h.writeError(w, "ByCategory", err)
		return
	}

	if err := httputil.WriteList(w, summaries); err != nil {
		h.log.Error("failed to write list response", "handler", "ByCategory", "operation", "WriteList", "error", err)
	}
}

func (h *RecipeHandler) Search(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	recipes, err := h.service.Search(r.Context(), r.URL.Query().Get("s"))
	if err != nil {
		h.writeError(w, "Search", err)
		return
	}

	if err := httputil.WriteList(w, recipes); err != nil {
		h.log.Error("failed to write list response", "handler", "Search", "operation", "WriteList", "error", err)
	}
}

func (h *RecipeHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	recipe, err := h.service.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "GetByID", err)
		return
	}

	if err := httputil.WriteSuccess(w, recipe); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "operation", "WriteSuccess", "error", err)
	}
}

func (h *RecipeHandler) Random(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	count, err := httputil.QueryInt(r, "count", 0)
	if err != nil {
		h.writeError(w, "Random", err)
		return
	}

	recipes, err := h.service.Gacha(r.Context(), count)
	if err != nil {
		h.writeError(w, "Random", err)
		return
	}

	if err := httputil.WriteList(w, recipes); err != nil {
		h.log.Error("failed to write list response", "handler", "Random", "operation", "WriteList", "error", err)
	}
}

func (h *RecipeHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}

func (h *RecipeHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/categories", h.Categories)
	router.GET("/api/v1/categories/:name/recipes", h.ByCategory)
	router.GET("/api/v1/recipes/search", h.Search)
	router.GET("/api/v1/recipes/id/:id", h.GetByID)
	router.GET("/api/v1/recipes/random", h.Random)
}
