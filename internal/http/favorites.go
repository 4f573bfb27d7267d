package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/selin-bardakci/waveriders/internal/auth"
	"github.com/selin-bardakci/waveriders/internal/database/favorites"
	"github.com/selin-bardakci/waveriders/internal/entities"
)

// FavoriteStore defines database operations for favorites management.
type FavoriteStore interface {
	Create(userID, boatID uint) (*entities.Favorite, error)
	ByUser(userID uint) ([]favorites.FavoriteWithBoat, error)
	Delete(favoriteID uint) (int64, error)
}

type FavoritesController struct {
	store FavoriteStore
}

func NewFavoritesController(store FavoriteStore) *FavoritesController {
	return &FavoritesController{store: store}
}

type addFavoriteRequest struct {
	BoatID uint `json:"boat_id"`
}

// AddFavorite saves a boat to the authenticated user's favorites.
// POST /api/favorites
func (fc *FavoritesController) AddFavorite(c *gin.Context) {
	var req addFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.BoatID == 0 {
		respondBadRequest(c, "boat_id is required")
		return
	}

	favorite, err := fc.store.Create(auth.GetUserID(c), req.BoatID)
	if err != nil {
		respondInternalError(c, err, "add favorite")
		return
	}

	respondCreated(c, gin.H{"favorite_id": favorite.ID})
}

// ListFavorites returns the authenticated user's favorites joined with
// boat details, newest first.
// GET /api/favorites
func (fc *FavoritesController) ListFavorites(c *gin.Context) {
	list, err := fc.store.ByUser(auth.GetUserID(c))
	if err != nil {
		respondInternalError(c, err, "list favorites")
		return
	}

	c.JSON(http.StatusOK, gin.H{"favorites": list})
}

// RemoveFavorite deletes a favorite by its identifier. The store-level
// delete of a missing id succeeds silently, so the route checks affected
// rows to report not-found.
// DELETE /api/favorites/:id
func (fc *FavoritesController) RemoveFavorite(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	affected, err := fc.store.Delete(id)
	if err != nil {
		respondInternalError(c, err, "remove favorite")
		return
	}
	if affected == 0 {
		respondNotFound(c, "favorite")
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "favorite removed"})
}
