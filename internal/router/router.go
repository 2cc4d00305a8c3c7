package router

import (
	"log"
	"strconv"

	"github.com/blognity/backend/internal/ai"
	"github.com/blognity/backend/internal/handlers"
	"github.com/blognity/backend/internal/metrics"
	"github.com/blognity/backend/internal/middleware"
	"github.com/blognity/backend/internal/models"
	"github.com/blognity/backend/internal/repositories"
	"github.com/blognity/backend/internal/services"
	"github.com/blognity/backend/pkg/config"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	e.Use(requestMetrics)
	log.Println("Global middleware configured.")
}

// requestMetrics counts requests by method and response status
func requestMetrics(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := next(c)
		status := c.Response().Status
		if err != nil {
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			}
		}
		metrics.RequestsTotal.WithLabelValues(c.Request().Method, strconv.Itoa(status)).Inc()
		return err
	}
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB, cfg *config.Config, aiClient *ai.Client) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Tag{},
		&models.Like{},
		&models.Bookmark{},
		&models.Follow{},
		&models.Comment{},
		&models.Notification{},
		&models.ContactMessage{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(db)
	postRepo := repositories.NewPostgresPostRepository(db)
	tagRepo := repositories.NewPostgresTagRepository(db)
	likeRepo := repositories.NewPostgresLikeRepository(db)
	bookmarkRepo := repositories.NewPostgresBookmarkRepository(db)
	followRepo := repositories.NewPostgresFollowRepository(db)
	commentRepo := repositories.NewPostgresCommentRepository(db)
	notificationRepo := repositories.NewPostgresNotificationRepository(db)
	contactRepo := repositories.NewPostgresContactMessageRepository(db)

	// --- Initialize Services ---
	notificationService := services.NewNotificationService(notificationRepo, userRepo, postRepo)
	interactionService := services.NewInteractionService(likeRepo, bookmarkRepo, followRepo, commentRepo, postRepo, userRepo, notificationService)
	feedService := services.NewFeedService(postRepo, followRepo, likeRepo, bookmarkRepo)
	postService := services.NewPostService(postRepo, tagRepo, userRepo)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo, cfg.JWTSecret)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Public routes (token optional, used for gating and flags) ---
	public := e.Group("/api/v1")
	public.Use(middleware.OptionalJWTMiddleware(cfg.JWTSecret))

	postHandler := handlers.NewPostHandler(postService, postRepo, userRepo)
	postHandler.RegisterPublicPostRoutes(public)

	feedHandler := handlers.NewFeedHandler(feedService)
	feedHandler.RegisterPublicFeedRoutes(public)

	commentHandler := handlers.NewCommentHandler(interactionService, commentRepo, postRepo, userRepo)
	commentHandler.RegisterPublicCommentRoutes(public)

	contactHandler := handlers.NewContactHandler(contactRepo)
	contactHandler.RegisterContactRoutes(public)
	log.Println("Public routes configured.")

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	log.Println("JWT authentication middleware applied to /api/v1 group.")

	userHandler := handlers.NewUserHandler(userRepo, followRepo, postRepo, bookmarkRepo)
	userHandler.RegisterProfileRoutes(api)
	log.Println("User profile routes configured.")

	postHandler.RegisterPostRoutes(api)
	log.Println("Post routes configured.")

	feedHandler.RegisterFeedRoutes(api)
	log.Println("Feed routes configured.")

	interactionHandler := handlers.NewInteractionHandler(interactionService)
	interactionHandler.RegisterInteractionRoutes(api)
	log.Println("Interaction routes configured.")

	commentHandler.RegisterCommentRoutes(api)
	log.Println("Comment routes configured.")

	notificationHandler := handlers.NewNotificationHandler(notificationService)
	notificationHandler.RegisterNotificationRoutes(api)
	log.Println("Notification routes configured.")

	paymentHandler := handlers.NewPaymentHandler(userRepo, cfg.PaymentKeySecret)
	paymentHandler.RegisterPaymentRoutes(api)
	log.Println("Payment routes configured.")

	summarizeHandler := handlers.NewSummarizeHandler(aiClient)
	summarizeHandler.RegisterSummarizeRoutes(api)
	log.Println("Summarize routes configured.")

	// --- Admin routes ---
	admin := e.Group("/api/v1/admin")
	admin.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret), middleware.AdminOnly(userRepo))

	adminHandler := handlers.NewAdminHandler(userRepo, postRepo, contactRepo)
	adminHandler.RegisterAdminRoutes(admin)
	log.Println("Admin routes configured.")
}
