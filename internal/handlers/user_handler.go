package handlers

import (
	"net/http"

	"recyclehub-server/internal/models"
	"recyclehub-server/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserHandler struct {
	userService *services.UserService
	authService *services.AuthService
	validate    *validator.Validate
	logger      zerolog.Logger
}

func NewUserHandler(database *mongo.Database, authService *services.AuthService, logger zerolog.Logger) *UserHandler {
	return &UserHandler{
		userService: services.NewUserService(database, logger),
		authService: authService,
		validate:    validator.New(),
		logger:      logger,
	}
}

// UpsertUser stores the caller's profile under the email path key and mints a
// bearer token for it. This is the login path, so it is the one mutating
// route left open.
func (h *UserHandler) UpsertUser(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	var req models.UpsertUserRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	// Only fields the client sent go into the upsert; absent ones keep
	// whatever the partial updates have stored.
	doc := bson.M{}
	if req.Name != "" {
		doc["name"] = req.Name
	}
	if req.Role != "" {
		doc["role"] = req.Role
	}
	if req.IsVerified != nil {
		doc["isVerified"] = *req.IsVerified
	}
	if req.PhotoURL != "" {
		doc["photoURL"] = req.PhotoURL
	}
	if req.Address != "" {
		doc["address"] = req.Address
	}
	if req.Phone != "" {
		doc["phone"] = req.Phone
	}

	user := models.User{
		Email:      email,
		Name:       req.Name,
		Role:       req.Role,
		IsVerified: req.IsVerified != nil && *req.IsVerified,
		PhotoURL:   req.PhotoURL,
		Address:    req.Address,
		Phone:      req.Phone,
	}

	result, err := h.userService.UpsertUser(r.Context(), email, doc)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "store_error", "Failed to save user")
		return
	}

	token, err := h.authService.IssueToken(user)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "token_error", "Failed to issue token")
		return
	}

	respondWithJSON(w, http.StatusOK, models.UpsertUserResponse{
		Result: result,
		Token:  token,
	})
}

// SetRole updates only the role field. A zero match count for an unknown
// email is reported back as-is, not as an error.
func (h *UserHandler) SetRole(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	var req models.SetRoleRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	result, err := h.userService.SetRole(r.Context(), email, req.Role)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "store_error", "Failed to update role")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"result": result})
}

func (h *UserHandler) SetVerified(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	var req models.SetVerifiedRequest
	if !decodeAndValidate(w, r, h.validate, &req) {
		return
	}

	result, err := h.userService.SetVerified(r.Context(), email, *req.IsVerified)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "store_error", "Failed to update verify status")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"result": result})
}

// GetUser returns the stored user or a JSON null for an unknown email.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	user, err := h.userService.GetByEmail(r.Context(), email)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "store_error", "Failed to look up user")
		return
	}

	respondWithJSON(w, http.StatusOK, user)
}

func (h *UserHandler) ListByRole(w http.ResponseWriter, r *http.Request) {
	role := mux.Vars(r)["role"]

	users, err := h.userService.ListByRole(r.Context(), role)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "store_error", "Failed to list users")
		return
	}

	respondWithJSON(w, http.StatusOK, users)
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	result, err := h.userService.DeleteUser(r.Context(), email)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "store_error", "Failed to delete user")
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}
