// File: /routes/routes.go
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"motolinks-api/config"
	"motolinks-api/controllers"
	"motolinks-api/middleware"
	"motolinks-api/repositories"
	"motolinks-api/services"
	"motolinks-api/utils"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, emailService *services.EmailService, log *zap.Logger) {
	// Repositories
	userRepo := repositories.NewUserRepository(db)
	motorcycleRepo := repositories.NewMotorcycleRepository(db)
	bookmarkRepo := repositories.NewBookmarkRepository(db)

	// Services
	tokenService := services.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	// Motorcycles and bookmarks redirect from the same root path, so a new
	// code must be free in both tables.
	codeGenerator := services.NewShortCodeGenerator(services.ShortCodeLength, func(code string) (bool, error) {
		if taken, err := motorcycleRepo.ShortCodeTaken(code); err != nil || taken {
			return taken, err
		}
		return bookmarkRepo.ShortCodeTaken(code)
	})

	// Controllers
	authController := controllers.NewAuthController(userRepo, tokenService, emailService, log)
	motorcycleController := controllers.NewMotorcycleController(motorcycleRepo, codeGenerator, log)
	bookmarkController := controllers.NewBookmarkController(bookmarkRepo, codeGenerator, log)
	redirectController := controllers.NewRedirectController(motorcycleRepo, bookmarkRepo, log)

	requireAccess := middleware.AuthMiddleware(tokenService, false)
	requireRefresh := middleware.AuthMiddleware(tokenService, true)

	// Short link resolution lives at the root so codes stay three characters.
	r.GET("/:code", redirectController.Redirect)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.NoRoute(func(c *gin.Context) {
		utils.SendError(c, http.StatusNotFound, "Page not found")
	})

	// API version 1
	v1 := r.Group("/api/v1")

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
		})
	})

	// Auth routes (public)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.GET("/me", requireAccess, authController.Me)
		auth.GET("/token/refresh", requireRefresh, authController.RefreshToken)
	}

	// Protected routes
	protected := v1.Group("/")
	protected.Use(requireAccess)
	{
		// Motorcycle routes
		motorcycles := protected.Group("/motorcycles")
		{
			motorcycles.GET("/", motorcycleController.GetMotorcycles)
			motorcycles.POST("/", motorcycleController.CreateMotorcycle)
			motorcycles.GET("/stats", motorcycleController.GetStats)
			motorcycles.GET("/:niv", motorcycleController.GetMotorcycle)
			motorcycles.PUT("/:niv", motorcycleController.UpdateMotorcycle)
			motorcycles.PATCH("/:niv", motorcycleController.UpdateMotorcycle)
			motorcycles.DELETE("/:niv", motorcycleController.DeleteMotorcycle)
		}

		// Bookmark routes
		bookmarks := protected.Group("/bookmarks")
		{
			bookmarks.GET("/", bookmarkController.GetBookmarks)
			bookmarks.POST("/", bookmarkController.CreateBookmark)
			bookmarks.GET("/stats", bookmarkController.GetStats)
			bookmarks.GET("/:id", bookmarkController.GetBookmark)
			bookmarks.PUT("/:id", bookmarkController.UpdateBookmark)
			bookmarks.PATCH("/:id", bookmarkController.UpdateBookmark)
			bookmarks.DELETE("/:id", bookmarkController.DeleteBookmark)
		}
	}
}
