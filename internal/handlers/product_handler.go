package handlers

import (
	"net/http"

	"recyclehub-server/internal/middleware"
	"recyclehub-server/internal/models"
	"recyclehub-server/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ProductHandler struct {
	productService *services.ProductService
	validate       *validator.Validate
	logger         zerolog.Logger
}

func NewProductHandler(database *mongo.Database, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		productService: services.NewProductService(database, logger),
		validate:       validator.New(),
		logger:         logger,
	}
}

// CreateProduct inserts a listing for the authenticated seller. The payload
// sellerEmail must match the token subject; references to category and seller
// are otherwise stored as submitted.
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProductRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	callerEmail, ok := middleware.GetUserEmail(r)
	if !ok || callerEmail != req.SellerEmail {
		respondWithError(w, http.StatusForbidden, "forbidden", "You can only list products under your own email")
		return
	}

	product := models.Product{
		SellerEmail:   req.SellerEmail,
		SellerName:    req.SellerName,
		Category:      req.Category,
		Name:          req.Name,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Condition:     req.Condition,
		Description:   req.Description,
		Location:      req.Location,
		Phone:         req.Phone,
		Image:         req.Image,
		YearsUsed:     req.YearsUsed,
	}

	result, err := h.productService.CreateProduct(r.Context(), product)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "store_error", "Failed to create product")
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

func (h *ProductHandler) ListBySeller(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	products, err := h.productService.ListBySeller(r.Context(), email)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "store_error", "Failed to list products")
		return
	}

	respondWithJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	category := mux.Vars(r)["category"]

	products, err := h.productService.ListByCategory(r.Context(), category)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "store_error", "Failed to list products")
		return
	}

	respondWithJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) ListAdvertised(w http.ResponseWriter, r *http.Request) {
	products, err := h.productService.ListAdvertised(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "store_error", "Failed to list products")
		return
	}

	respondWithJSON(w, http.StatusOK, products)
}

// MarkAdvertised flips the one-way advertise flag. A malformed product id is
// the single malformed-input failure on the API, rejected with a 400.
func (h *ProductHandler) MarkAdvertised(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid_product_id", "Invalid product ID")
		return
	}

	result, err := h.productService.MarkAdvertised(r.Context(), id)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "store_error", "Failed to advertise product")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"result": result})
}
