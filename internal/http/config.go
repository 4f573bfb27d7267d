package http

import (
	"github.com/selin-bardakci/waveriders/internal/auth"
	"github.com/selin-bardakci/waveriders/internal/database"
	"github.com/selin-bardakci/waveriders/internal/database/boats"
	"github.com/selin-bardakci/waveriders/internal/database/favorites"
	"github.com/selin-bardakci/waveriders/internal/database/rentals"
	"github.com/selin-bardakci/waveriders/internal/database/users"
	"github.com/selin-bardakci/waveriders/internal/storage"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router. This replaces a long parameter list
// in NewRouter for better maintainability.
type RouterConfig struct {
	// Core dependencies
	Database  *database.Database
	Users     *users.Repository
	Boats     *boats.Repository
	Rentals   *rentals.Repository
	Favorites *favorites.Repository

	// Authentication
	AuthService    *auth.Service
	AuthMiddleware *auth.Middleware

	// File uploads
	Storage    *storage.Store
	UploadsURL string

	// Background rental status sweep, surfaced by the health endpoint
	Sweep SweepStatus

	// Application info
	Version string
}
