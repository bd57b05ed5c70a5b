// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/comicden/comics-backend/internal/config"
	"github.com/comicden/comics-backend/internal/handlers"
	"github.com/comicden/comics-backend/internal/middleware"
	"github.com/comicden/comics-backend/internal/services"
	"github.com/comicden/comics-backend/internal/utils"
)

func Initialize(db *gorm.DB, publisher services.QueuePublisher, cfg *config.Config) *gin.Engine {
	// Initialize services
	authService := services.NewAuthService(db, cfg)
	catalogService := services.NewCatalogService(db)
	checkoutService := services.NewCheckoutService(publisher, cfg.AMQP.Queue)
	orderService := services.NewOrderService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	orderHandler := handlers.NewOrderHandler(orderService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// Authentication routes
	auth := r.Group("")
	auth.Use(middleware.AuthRateLimit())
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.DELETE("/logout", authHandler.Logout)
	}

	// Catalog mutations require an admin token
	create := r.Group("/create")
	create.Use(middleware.AuthRequired(), middleware.AdminRequired())
	{
		create.POST("/comic", catalogHandler.CreateComic)
		create.POST("/writer", catalogHandler.CreateWriter)
		create.POST("/artist", catalogHandler.CreateArtist)
		create.POST("/pub", catalogHandler.CreatePublisher)
	}

	del := r.Group("/delete")
	del.Use(middleware.AuthRequired(), middleware.AdminRequired())
	{
		del.DELETE("/comic", catalogHandler.DeleteComic)
		del.DELETE("/writer", catalogHandler.DeleteWriter)
		del.DELETE("/artist", catalogHandler.DeleteArtist)
		del.DELETE("/publisher", catalogHandler.DeletePublisher)
	}

	patch := r.Group("/patch")
	patch.Use(middleware.AuthRequired(), middleware.AdminRequired())
	{
		patch.PATCH("/comicamount", catalogHandler.UpdateComicAmount)
	}

	// Public catalog views
	view := r.Group("/view")
	{
		view.GET("/comics", catalogHandler.GetComics)
		view.GET("/writers", catalogHandler.GetWriters)
		view.GET("/artists", catalogHandler.GetArtists)
		view.GET("/publishers", catalogHandler.GetPublishers)
		view.GET("/orders", middleware.AuthRequired(), middleware.AdminRequired(), orderHandler.GetOrders)
	}

	// Checkout: the client email comes from the token claims
	r.POST("/buy", middleware.AuthRequired(), checkoutHandler.Buy)

	return r
}
