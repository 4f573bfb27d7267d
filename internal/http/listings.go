package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/selin-bardakci/waveriders/internal/entities"
)

// BoatStore defines database operations for public boat listings.
type BoatStore interface {
	All() ([]entities.Boat, error)
	ByID(id uint) (*entities.Boat, error)
	Delete(id uint) (int64, error)
}

type ListingsController struct {
	store BoatStore
}

func NewListingsController(store BoatStore) *ListingsController {
	return &ListingsController{store: store}
}

// ListAll returns every boat listing.
// GET /api/listings/listings
func (lc *ListingsController) ListAll(c *gin.Context) {
	list, err := lc.store.All()
	if err != nil {
		respondInternalError(c, err, "list boats")
		return
	}

	c.JSON(http.StatusOK, gin.H{"listings": list})
}

// Get returns a single listing.
// GET /api/listings/listing/:id
func (lc *ListingsController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	boat, err := lc.store.ByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondNotFound(c, "listing")
		return
	}
	if err != nil {
		respondInternalError(c, err, "get listing")
		return
	}

	c.JSON(http.StatusOK, gin.H{"listing": boat})
}

// Delete removes a listing, reporting not-found when nothing matched.
// DELETE /api/listings/listing/:id
func (lc *ListingsController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	affected, err := lc.store.Delete(id)
	if err != nil {
		respondInternalError(c, err, "delete listing")
		return
	}
	if affected == 0 {
		respondNotFound(c, "listing")
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "listing deleted"})
}
