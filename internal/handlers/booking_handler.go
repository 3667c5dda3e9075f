package handlers

import (
	"net/http"

	"recyclehub-server/internal/middleware"
	"recyclehub-server/internal/models"
	"recyclehub-server/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
)

type BookingHandler struct {
	bookingService *services.BookingService
	validate       *validator.Validate
	logger         zerolog.Logger
}

func NewBookingHandler(database *mongo.Database, logger zerolog.Logger) *BookingHandler {
	return &BookingHandler{
		bookingService: services.NewBookingService(database, logger),
		validate:       validator.New(),
		logger:         logger,
	}
}

// CreateBooking records purchase intent for the authenticated buyer. The
// referenced product is not cross-checked and may no longer exist.
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBookingRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	callerEmail, ok := middleware.GetUserEmail(r)
	if !ok || callerEmail != req.BuyerEmail {
		respondWithError(w, http.StatusForbidden, "forbidden", "You can only book under your own email")
		return
	}

	booking := models.Booking{
		BuyerEmail:      req.BuyerEmail,
		BuyerName:       req.BuyerName,
		ProductID:       req.ProductID,
		ProductName:     req.ProductName,
		Price:           req.Price,
		MeetingLocation: req.MeetingLocation,
		Phone:           req.Phone,
	}

	result, err := h.bookingService.CreateBooking(r.Context(), booking)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "store_error", "Failed to create booking")
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

func (h *BookingHandler) ListByBuyer(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	bookings, err := h.bookingService.ListByBuyer(r.Context(), email)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "store_error", "Failed to list bookings")
		return
	}

	respondWithJSON(w, http.StatusOK, bookings)
}
