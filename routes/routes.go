package routes

import (
	"net/http"
	"time"

	"salonix/handlers"
	"salonix/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes sets up slot queries and the booking lifecycle.
// Create and cancel accept guest traffic, so auth is optional there.
func RegisterBookingRoutes(r *gin.Engine) {
	api := r.Group("/api/bookings")
	{
		api.GET("/slots", handlers.GetAvailableSlots)
		api.POST("", middleware.OptionalAuthMiddleware(), handlers.CreateBooking)
		api.DELETE("/:id", middleware.OptionalAuthMiddleware(), handlers.CancelBooking)

		api.GET("/me", middleware.JWTAuthUserMiddleware(), handlers.GetMyBookings)
		api.GET("/salon/:salonId", middleware.JWTAuthUserMiddleware(), handlers.GetSalonBookings)
		api.GET("/worker/:workerId", middleware.JWTAuthUserMiddleware(), handlers.GetWorkerBookings)
	}
}

// RegisterVoucherRoutes sets up the voucher purchase and validation endpoints.
func RegisterVoucherRoutes(r *gin.Engine) {
	api := r.Group("/api/vouchers")
	{
		api.Use(middleware.JWTAuthUserMiddleware())
		api.POST("/payment-intent", handlers.CreateVoucherPaymentIntent)
		api.POST("", handlers.CreateVoucher)
		api.GET("/me", handlers.GetMyVouchers)
		api.POST("/validate", handlers.ValidateVoucher)
	}
}

// RegisterAdminRoutes sets up maintenance endpoints.
func RegisterAdminRoutes(r *gin.Engine) {
	admin := r.Group("/api/admin")
	{
		admin.Use(middleware.AdminAuthMiddleware())
		admin.POST("/reconcile-caches", handlers.ReconcileWorkerCaches)
		admin.POST("/migrate-services", handlers.MigrateLegacyServices)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Salonix"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterBookingRoutes(r)
	RegisterVoucherRoutes(r)
	RegisterAdminRoutes(r)
}
