package routes

import (
	"net/http"
	"time"

	"salonq/handlers"
	"salonq/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/login", hb.LoginHandler)
		api.POST("/logout", hb.LogoutHandler)

		api.GET("/me", middleware.SessionAuth(), hb.MeHandler)
	}
}

// RegisterOTPRoutes registers the guest phone-verification endpoints.
func RegisterOTPRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/otp")
	{
		api.POST("/request", hb.RequestOTPHandler)
		api.POST("/verify", hb.VerifyOTPHandler)
	}
}

// RegisterQueueRoutes registers the customer queue endpoints. All of them
// require a guest token proving phone possession.
func RegisterQueueRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/queue")
	{
		api.Use(middleware.GuestAuth())
		api.POST("/check-in", hb.CheckInHandler)
		api.GET("/mine", hb.MyCheckInsHandler)
		api.GET("/:id", hb.GetEntryHandler)
		api.POST("/:id/cancel", hb.CancelHandler)
	}
}

// RegisterPaymentRoutes registers payment endpoints. Order creation requires a
// guest token; the verify callback authenticates by signature instead.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.POST("/order", middleware.GuestAuth(), hb.CreateOrderHandler)
		api.POST("/verify", hb.VerifyPaymentHandler)
	}
}

// RegisterDirectoryRoutes registers the public salon directory.
func RegisterDirectoryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/salons")
	{
		api.GET("", hb.ListSalonsHandler)
		api.GET("/nearby", hb.NearbySalonsHandler)
		api.GET("/:id", hb.GetSalonHandler)
		api.GET("/:id/services", hb.SalonServicesHandler)
		api.GET("/:id/staff", hb.SalonStaffHandler)
	}
}

// RegisterSalonRoutes registers the salon admin surface. Onboarding only needs
// a session; everything else needs a resolved salon.
func RegisterSalonRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/salon")
	{
		api.POST("/onboard", middleware.SessionAuth(), hb.OnboardHandler)

		managed := api.Group("")
		managed.Use(middleware.SalonAdminAuth(hb.UserRepo))

		managed.GET("/me", hb.MySalonHandler)
		managed.PATCH("/profile", hb.UpdateProfileHandler)

		managed.GET("/queue", hb.ListQueueHandler)
		managed.GET("/queue/pending", hb.ListPendingHandler)
		managed.POST("/queue/:id/approve", hb.ApproveHandler)
		managed.POST("/queue/:id/reject", hb.RejectHandler)
		managed.PATCH("/queue/:id/status", hb.UpdateStatusHandler)
		managed.GET("/dashboard", hb.DashboardHandler)

		managed.GET("/services", hb.ListMyServicesHandler)
		managed.POST("/services", hb.CreateServiceHandler)
		managed.PUT("/services/:id", hb.UpdateServiceHandler)
		managed.DELETE("/services/:id", hb.DeleteServiceHandler)

		managed.GET("/staff", hb.ListMyStaffHandler)
		managed.POST("/staff", hb.CreateStaffHandler)
		managed.PUT("/staff/:id", hb.UpdateStaffHandler)
		managed.DELETE("/staff/:id", hb.DeleteStaffHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for main admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.MainAdminAuth())
		adminGroup.GET("/users", hb.GetAllUsersHandler)
		adminGroup.GET("/salons", hb.AdminListSalons)
		adminGroup.PATCH("/salons/:id/status", hb.AdminSetSalonStatus)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm SalonQ"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterOTPRoutes(r, hb)
	RegisterQueueRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterDirectoryRoutes(r, hb)
	RegisterSalonRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
