package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/selin-bardakci/waveriders/internal/auth"
	"github.com/selin-bardakci/waveriders/internal/config"
	"github.com/selin-bardakci/waveriders/internal/database"
	"github.com/selin-bardakci/waveriders/internal/database/boats"
	"github.com/selin-bardakci/waveriders/internal/database/favorites"
	"github.com/selin-bardakci/waveriders/internal/database/rentals"
	"github.com/selin-bardakci/waveriders/internal/database/users"
	http_controllers "github.com/selin-bardakci/waveriders/internal/http"
	"github.com/selin-bardakci/waveriders/internal/scheduler"
	"github.com/selin-bardakci/waveriders/internal/storage"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting WaveRiders v%s", version)

	if cfg.Auth.JWTSecret == "" {
		log.Fatalf("JWT secret is not set. Set the 'JWT_SECRET' environment variable.")
	}

	db, err := database.NewDatabase(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	userRepo := users.NewRepository(db.DB)
	boatRepo := boats.NewRepository(db.DB)
	rentalRepo := rentals.NewRepository(db.DB, cfg.Rentals.ConflictCheck)
	favoriteRepo := favorites.NewRepository(db.DB)

	if cfg.Rentals.ConflictCheck {
		log.Printf("Rental date-conflict enforcement: on")
	} else {
		log.Printf("Rental date-conflict enforcement: off (overlapping bookings allowed)")
	}

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiry)
	authService := auth.NewService(userRepo, tokens, cfg.Auth)
	authMiddleware := auth.NewMiddleware(tokens)

	store, err := storage.NewStore(cfg.Uploads.Dir, cfg.Uploads.BaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize upload storage: %v", err)
	}

	sweep := scheduler.NewRentalSweepScheduler(rentalRepo, cfg.Rentals)
	sweepCtx, sweepCancel := context.WithCancel(context.Background())
	if err := sweep.Start(sweepCtx); err != nil {
		log.Fatalf("Failed to start rental sweep scheduler: %v", err)
	}

	routerCfg := http_controllers.RouterConfig{
		Database:       db,
		Users:          userRepo,
		Boats:          boatRepo,
		Rentals:        rentalRepo,
		Favorites:      favoriteRepo,
		AuthService:    authService,
		AuthMiddleware: authMiddleware,
		Storage:        store,
		UploadsURL:     cfg.Uploads.BaseURL,
		Sweep:          sweep,
		Version:        version,
	}

	router := http_controllers.NewRouter(routerCfg)

	onShutdown := func(ctx context.Context) {
		sweep.Stop()
		sweepCancel()
	}

	Serve(router, cfg, onShutdown)
}
