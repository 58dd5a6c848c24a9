package server

import (
	"booking-server/auth"
	"booking-server/confs"
	"booking-server/handlers"
	httpHandler "booking-server/handlers/http"
	"booking-server/kvstore"
	"booking-server/repositories"
	"booking-server/usecases"
	"booking-server/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	app   *gin.Engine
	cfg   confs.Config
	store kvstore.Store
}

func NewServer(cfg confs.Config, store kvstore.Store) *Server {
	return &Server{
		app:   gin.Default(),
		cfg:   cfg,
		store: store,
	}
}

func (s *Server) Start() {
	// Setup CORS middleware
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Service-Key"}
	s.app.Use(cors.New(config))

	// Setup healthcheck route
	s.app.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "OK",
		})
	})

	// Initialize repositories
	userRepo := repositories.NewUserKvRepository(s.store)
	bookingRepo := repositories.NewBookingKvRepository(s.store)
	catalogRepo := repositories.NewCatalogKvRepository(s.store)
	notificationRepo := repositories.NewNotificationKvRepository(s.store)

	// Notification hub and emitter
	hub := ws.NewHub()
	notificationUseCase := usecases.NewNotificationUseCase(notificationRepo, hub)
	stopPoller := notificationUseCase.StartPoller(s.cfg.PollInterval)
	defer stopPoller()

	// Initialize use cases
	authUseCase := usecases.NewAuthUseCase(userRepo)
	bookingUseCase := usecases.NewBookingUseCase(bookingRepo, notificationUseCase)

	// Token service and handlers
	tokens := auth.NewTokenService(s.cfg.JWTSecret, s.cfg.JWTExpiry())
	authHandler := httpHandler.NewAuthHandler(authUseCase, tokens, s.cfg.ServiceKey)
	bookingHandler := httpHandler.NewBookingHandler(bookingUseCase, authUseCase, s.cfg.BaseURL)
	catalogHandler := httpHandler.NewCatalogHandler(catalogRepo)
	notificationHandler := httpHandler.NewNotificationHandler(notificationUseCase)
	verifyHandler := httpHandler.NewVerifyHandler(bookingUseCase, authUseCase)
	wsHandler := handlers.NewWSHandler(hub, tokens, userRepo)

	requireAuth := httpHandler.RequireAuth(tokens, userRepo)
	requireAdmin := httpHandler.RequireAdmin()

	// Setup API routes
	api := s.app.Group("/api/v1")
	{
		// Account routes
		api.POST("/signup", authHandler.Signup)
		api.POST("/login", authHandler.Login)
		api.GET("/user", requireAuth, authHandler.GetUser)
		api.PATCH("/user/profile", requireAuth, authHandler.UpdateProfile)
		api.GET("/users", requireAuth, requireAdmin, authHandler.ListUsers)
		api.GET("/users/all", authHandler.ListAllUsers) // service-credentialed bootstrap

		// Booking routes
		bookings := api.Group("/bookings", requireAuth)
		{
			bookings.GET("", bookingHandler.List)
			bookings.POST("", bookingHandler.Create)
			bookings.PATCH("/:id/status", requireAdmin, bookingHandler.UpdateStatus)
			bookings.PATCH("/:id/schedule", bookingHandler.Reschedule)
			bookings.POST("/:id/review", bookingHandler.Review)
			bookings.GET("/:id/qrcode", bookingHandler.QRCode)
		}

		// Catalog routes
		services := api.Group("/services")
		{
			services.GET("", requireAuth, catalogHandler.GetServices)
			services.POST("", requireAuth, requireAdmin, catalogHandler.AddService)
			services.DELETE("/:name", requireAuth, requireAdmin, catalogHandler.RemoveService)
		}
		timeSlots := api.Group("/time-slots")
		{
			timeSlots.GET("", requireAuth, catalogHandler.GetTimeSlots)
			timeSlots.POST("", requireAuth, requireAdmin, catalogHandler.AddTimeSlot)
			timeSlots.DELETE("/:name", requireAuth, requireAdmin, catalogHandler.RemoveTimeSlot)
		}

		// Admin notification routes
		notifications := api.Group("/notifications", requireAuth, requireAdmin)
		{
			notifications.GET("", notificationHandler.List)
			notifications.PATCH("/read-all", notificationHandler.MarkAllRead)
			notifications.PATCH("/:id/read", notificationHandler.MarkRead)
			notifications.DELETE("/:id", notificationHandler.Delete)
		}

		// Public verification route
		api.GET("/verify/:id", verifyHandler.Verify)
	}

	s.app.GET("/ws", wsHandler.HandleNotificationsWS)

	if err := s.app.Run(s.cfg.HTTPAddr); err != nil {
		panic(err)
	}
}
