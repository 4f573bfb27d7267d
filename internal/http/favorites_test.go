package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selin-bardakci/waveriders/internal/auth"
	"github.com/selin-bardakci/waveriders/internal/database"
	"github.com/selin-bardakci/waveriders/internal/database/favorites"
	"github.com/selin-bardakci/waveriders/internal/entities"
)

func setupFavoritesRouter(t *testing.T, db *database.Database) *gin.Engine {
	t.Helper()

	controller := NewFavoritesController(favorites.NewRepository(db.DB))
	middleware := auth.NewMiddleware(testTokenManager())

	router := gin.New()
	group := router.Group("/api/favorites", middleware.Handler())
	group.POST("", controller.AddFavorite)
	group.GET("", controller.ListFavorites)
	group.DELETE("/:id", controller.RemoveFavorite)
	return router
}

func TestFavoritesController_AddFavorite(t *testing.T) {
	t.Run("saves a boat for the authenticated user", func(t *testing.T) {
		db, cleanup := setupTestDB(t, "favorites")
		defer cleanup()
		router := setupFavoritesRouter(t, db)
		customer := seedCustomer(t, db)

		payload, _ := json.Marshal(gin.H{"boat_id": 9})
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/favorites", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", bearerToken(t, customer))
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		var favorite entities.Favorite
		require.NoError(t, db.DB.First(&favorite).Error)
		assert.Equal(t, customer.ID, favorite.UserID)
		assert.Equal(t, uint(9), favorite.BoatID)
	})

	t.Run("requires boat_id", func(t *testing.T) {
		db, cleanup := setupTestDB(t, "favorites")
		defer cleanup()
		router := setupFavoritesRouter(t, db)
		customer := seedCustomer(t, db)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/favorites", bytes.NewReader([]byte(`{}`)))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", bearerToken(t, customer))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestFavoritesController_ListFavorites(t *testing.T) {
	t.Run("returns only the caller's favorites with boat details", func(t *testing.T) {
		db, cleanup := setupTestDB(t, "favorites")
		defer cleanup()
		router := setupFavoritesRouter(t, db)
		customer := seedCustomer(t, db)

		boat := &entities.Boat{
			BusinessID:   1,
			BoatName:     "Sea Breeze",
			Description:  "Day cruiser",
			TripTypes:    "day",
			PricePerHour: 120,
			Capacity:     8,
			BoatType:     "motorboat",
			Location:     "Bodrum",
		}
		require.NoError(t, db.DB.Create(boat).Error)
		require.NoError(t, db.DB.Create(&entities.Favorite{UserID: customer.ID, BoatID: boat.ID}).Error)
		require.NoError(t, db.DB.Create(&entities.Favorite{UserID: customer.ID + 1, BoatID: boat.ID}).Error)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/favorites", nil)
		req.Header.Set("Authorization", bearerToken(t, customer))
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Favorites []favorites.FavoriteWithBoat `json:"favorites"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Favorites, 1)
		assert.Equal(t, "Sea Breeze", resp.Favorites[0].BoatName)
		assert.Equal(t, "Bodrum", resp.Favorites[0].Location)
	})
}

func TestFavoritesController_RemoveFavorite(t *testing.T) {
	t.Run("deletes favorite by id", func(t *testing.T) {
		db, cleanup := setupTestDB(t, "favorites")
		defer cleanup()
		router := setupFavoritesRouter(t, db)
		customer := seedCustomer(t, db)

		favorite := &entities.Favorite{UserID: customer.ID, BoatID: 4}
		require.NoError(t, db.DB.Create(favorite).Error)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/api/favorites/1", nil)
		req.Header.Set("Authorization", bearerToken(t, customer))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var count int64
		require.NoError(t, db.DB.Model(&entities.Favorite{}).Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("reports not-found for nonexistent favorite", func(t *testing.T) {
		db, cleanup := setupTestDB(t, "favorites")
		defer cleanup()
		router := setupFavoritesRouter(t, db)
		customer := seedCustomer(t, db)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/api/favorites/999", nil)
		req.Header.Set("Authorization", bearerToken(t, customer))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
