package handlers

import (
	"net/http"

	"recyclehub-server/internal/services"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
)

type CategoryHandler struct {
	categoryService *services.CategoryService
	logger          zerolog.Logger
}

func NewCategoryHandler(database *mongo.Database, logger zerolog.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryService: services.NewCategoryService(database, logger),
		logger:          logger,
	}
}

func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryService.ListCategories(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "store_error", "Failed to list categories")
		return
	}

	respondWithJSON(w, http.StatusOK, categories)
}
