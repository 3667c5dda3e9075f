package router

import (
	"fmt"
	"net/http"

	"recyclehub-server/internal/handlers"
	"recyclehub-server/internal/middleware"
	"recyclehub-server/internal/models"
	"recyclehub-server/internal/services"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/time/rate"
)

// SetupRouter wires the route table to the store handlers. Reads are open;
// mutations go through the token authentication and role gates, except the
// user upsert which is the path that mints tokens in the first place.
func SetupRouter(database *mongo.Database, authService *services.AuthService, logger zerolog.Logger) *mux.Router {
	userHandler := handlers.NewUserHandler(database, authService, logger)
	productHandler := handlers.NewProductHandler(database, logger)
	bookingHandler := handlers.NewBookingHandler(database, logger)
	categoryHandler := handlers.NewCategoryHandler(database, logger)

	r := mux.NewRouter()

	rateLimiter := middleware.NewRateLimiter(rate.Limit(50), 100)

	r.Use(middleware.ErrorHandling(logger))
	r.Use(middleware.PerformanceMonitoring(logger))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS())
	r.Use(rateLimiter.Middleware())
	r.Use(middleware.RequestValidation())

	authenticate := middleware.Authentication(authService, logger)
	adminOnly := middleware.RequireRole(string(models.RoleAdmin))
	sellerOnly := middleware.RequireRole(string(models.RoleSeller))
	sellerOrAdmin := middleware.RequireRole(string(models.RoleSeller), string(models.RoleAdmin))
	buyerOnly := middleware.RequireRole(string(models.RoleBuyer))

	r.HandleFunc("/", func(w http.ResponseWriter, req *http.Request) {
		fmt.Fprintln(w, "Server is running!")
	}).Methods("GET")

	r.HandleFunc("/user/{email}", userHandler.UpsertUser).Methods("PUT")
	r.Handle("/userRole/{email}", authenticate(adminOnly(http.HandlerFunc(userHandler.SetRole)))).Methods("PATCH")
	r.Handle("/verifyStatus/{email}", authenticate(adminOnly(http.HandlerFunc(userHandler.SetVerified)))).Methods("PATCH")
	r.HandleFunc("/userRole/{email}", userHandler.GetUser).Methods("GET")
	r.HandleFunc("/allUser/{role}", userHandler.ListByRole).Methods("GET")
	r.Handle("/deleteUser/{email}", authenticate(adminOnly(http.HandlerFunc(userHandler.DeleteUser)))).Methods("DELETE")

	r.HandleFunc("/categories", categoryHandler.ListCategories).Methods("GET")

	r.Handle("/addProduct", authenticate(sellerOnly(http.HandlerFunc(productHandler.CreateProduct)))).Methods("POST")
	r.HandleFunc("/myProducts/{email}", productHandler.ListBySeller).Methods("GET")
	r.HandleFunc("/products/{category}", productHandler.ListByCategory).Methods("GET")
	r.Handle("/products/{id}", authenticate(sellerOrAdmin(http.HandlerFunc(productHandler.MarkAdvertised)))).Methods("PATCH")
	r.HandleFunc("/advertisedProduct", productHandler.ListAdvertised).Methods("GET")

	r.Handle("/bookings", authenticate(buyerOnly(http.HandlerFunc(bookingHandler.CreateBooking)))).Methods("POST")
	r.HandleFunc("/bookings/{email}", bookingHandler.ListByBuyer).Methods("GET")

	return r
}
