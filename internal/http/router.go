package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies, improving testability
// and reducing parameter count.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	healthController := NewHealthController(cfg.Database, cfg.Sweep, cfg.Version)
	router.GET("/health", healthController.Status)

	if cfg.Storage != nil && cfg.UploadsURL != "" {
		router.Static(cfg.UploadsURL, cfg.Storage.BaseDir())
	}

	requireAuth := cfg.AuthMiddleware.Handler()

	authController := NewAuthController(cfg.AuthService, cfg.Users, cfg.Boats, cfg.Storage)
	authRoutes := router.Group("/api/auth")
	{
		authRoutes.POST("/login", authController.Login)
		authRoutes.POST("/signup", authController.Signup)
		authRoutes.POST("/registerBusiness", authController.RegisterBusiness)
		authRoutes.POST("/registerCaptain", authController.RegisterCaptain)
		authRoutes.POST("/registerBoat", authController.RegisterBoat)
		authRoutes.POST("/boatLicense", authController.BoatLicense)
		authRoutes.POST("/captainLicense", authController.CaptainLicense)
		authRoutes.GET("/boat", authController.BoatsByBusiness)
		authRoutes.GET("/boat/:id", authController.BoatByID)
		authRoutes.GET("/business", authController.Businesses)
		authRoutes.GET("/captain", authController.CaptainsByBusiness)
		authRoutes.GET("/businessID", authController.BusinessID)
	}

	rentalsController := NewRentalsController(cfg.Rentals)
	rentalRoutes := router.Group("/api/rentals")
	{
		rentalRoutes.GET("/unavailable-dates", rentalsController.UnavailableDates)
		rentalRoutes.POST("/create", requireAuth, rentalsController.CreateRental)
	}

	favoritesController := NewFavoritesController(cfg.Favorites)
	favoriteRoutes := router.Group("/api/favorites", requireAuth)
	{
		favoriteRoutes.POST("", favoritesController.AddFavorite)
		favoriteRoutes.GET("", favoritesController.ListFavorites)
		favoriteRoutes.DELETE("/:id", favoritesController.RemoveFavorite)
	}

	usersController := NewUsersController(cfg.Users)
	userRoutes := router.Group("/api/users", requireAuth)
	{
		userRoutes.GET("/profile", usersController.Profile)
		userRoutes.PUT("/profile", usersController.UpdateProfile)
		userRoutes.GET("/business", usersController.Business)
	}

	listingsController := NewListingsController(cfg.Boats)
	listingRoutes := router.Group("/api/listings")
	{
		listingRoutes.GET("/listings", listingsController.ListAll)
		listingRoutes.GET("/listing/:id", listingsController.Get)
		listingRoutes.DELETE("/listing/:id", listingsController.Delete)
	}

	return router
}
