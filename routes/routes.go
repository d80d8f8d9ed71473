package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/MuhammadAsgharramzan/MechaniXpress/config"
	"github.com/MuhammadAsgharramzan/MechaniXpress/controllers"
	"github.com/MuhammadAsgharramzan/MechaniXpress/models"
	"github.com/MuhammadAsgharramzan/MechaniXpress/repository"
	"github.com/MuhammadAsgharramzan/MechaniXpress/services"
	"github.com/MuhammadAsgharramzan/MechaniXpress/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter wires the controllers onto the HTTP surface. Everything the
// handlers need comes in through the store and services; nothing reaches for
// globals.
func SetupRouter(store *repository.Store, bookings *services.BookingService,
	reviews *services.ReviewService, notifications *services.NotificationService,
	payments *services.PaymentService) *gin.Engine {

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(config.RequestLogger())

	origins := []string{"http://localhost:3000"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	authController := &controllers.AuthController{Store: store}
	vehicleController := &controllers.VehicleController{Store: store}
	serviceController := &controllers.ServiceController{Store: store}
	bookingController := &controllers.BookingController{Bookings: bookings}
	reviewController := &controllers.ReviewController{Reviews: reviews}
	notificationController := &controllers.NotificationController{Notifications: notifications}
	paymentController := &controllers.PaymentController{Payments: payments, Bookings: bookings}
	adminController := &controllers.AdminController{Store: store, Notifications: notifications}

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to MechaniXpress API"})
	})

	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK", "timestamp": time.Now()})
	})

	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.GET("/me", utils.AuthMiddleware(), authController.Me)
	}

	vehicles := api.Group("/vehicles")
	vehicles.Use(utils.AuthMiddleware(), utils.RequireRole(models.RoleCustomer))
	{
		vehicles.POST("", vehicleController.AddVehicle)
		vehicles.GET("", vehicleController.GetVehicles)
		vehicles.DELETE("/:id", vehicleController.DeleteVehicle)
	}

	catalog := api.Group("/services")
	{
		catalog.GET("", serviceController.GetServices)
		catalog.POST("", utils.AuthMiddleware(), utils.RequireRole(models.RoleAdmin), serviceController.CreateService)
		catalog.PUT("/:id", utils.AuthMiddleware(), utils.RequireRole(models.RoleAdmin), serviceController.UpdateService)
	}

	bookingRoutes := api.Group("/bookings")
	bookingRoutes.Use(utils.AuthMiddleware())
	{
		// Customer routes
		bookingRoutes.POST("", utils.RequireRole(models.RoleCustomer), bookingController.CreateBooking)
		bookingRoutes.GET("/customer", utils.RequireRole(models.RoleCustomer), bookingController.GetCustomerBookings)
		bookingRoutes.PATCH("/:bookingId/cancel", utils.RequireRole(models.RoleCustomer), bookingController.CancelBooking)

		// Mechanic routes
		bookingRoutes.GET("/available", utils.RequireRole(models.RoleMechanic), bookingController.GetAvailableJobs)
		bookingRoutes.GET("/mechanic", utils.RequireRole(models.RoleMechanic), bookingController.GetMechanicBookings)
		bookingRoutes.PATCH("/:bookingId/accept", utils.RequireRole(models.RoleMechanic), bookingController.AcceptJob)
		bookingRoutes.PATCH("/:bookingId/status", utils.RequireRole(models.RoleMechanic), bookingController.UpdateJobStatus)

		// Shared route: owner, assigned mechanic or admin
		bookingRoutes.GET("/:id", bookingController.GetBookingDetails)
	}

	reviewRoutes := api.Group("/reviews")
	{
		reviewRoutes.GET("/mechanic/:mechanicId", reviewController.GetMechanicReviews)
		reviewRoutes.POST("", utils.AuthMiddleware(), utils.RequireRole(models.RoleCustomer), reviewController.CreateReview)
	}

	notificationRoutes := api.Group("/notifications")
	notificationRoutes.Use(utils.AuthMiddleware())
	{
		notificationRoutes.GET("", notificationController.GetNotifications)
		notificationRoutes.PATCH("/:id/read", notificationController.MarkAsRead)
	}

	paymentRoutes := api.Group("/payments")
	{
		paymentRoutes.POST("/initiate", utils.AuthMiddleware(), paymentController.InitiatePayment)
		paymentRoutes.POST("/callback", paymentController.PaymentCallback) // public mock IPN
	}

	admin := api.Group("/admin")
	admin.Use(utils.AuthMiddleware(), utils.RequireRole(models.RoleAdmin))
	{
		admin.GET("/dashboard", adminController.GetDashboardStats)
		admin.GET("/mechanics", adminController.GetAllMechanics)
		admin.PATCH("/mechanics/:id/approve", adminController.ApproveMechanic)
		admin.PATCH("/mechanics/:id/reject", adminController.RejectMechanic)
	}

	return r
}
