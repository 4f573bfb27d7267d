// Package favorites provides database operations for a user's saved boats.
package favorites

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/selin-bardakci/waveriders/internal/entities"
)

// FavoriteWithBoat is a favorite row joined with the boat attributes the
// favorites screen renders.
type FavoriteWithBoat struct {
	FavoriteID   uint      `json:"favorite_id"`
	UserID       uint      `json:"user_id"`
	BoatID       uint      `json:"boat_id"`
	CreatedAt    time.Time `json:"created_at"`
	BoatName     string    `json:"boat_name"`
	Description  string    `json:"description"`
	PricePerHour float64   `json:"price_per_hour"`
	PricePerDay  *float64  `json:"price_per_day,omitempty"`
	Capacity     int       `json:"capacity"`
	BoatType     string    `json:"boat_type"`
	Location     string    `json:"location"`
	Photos       string    `json:"photos"`
}

// Repository handles favorites persistence.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create saves a favorite. Duplicates for the same (user, boat) pair are
// not rejected here; the row simply accumulates.
func (r *Repository) Create(userID, boatID uint) (*entities.Favorite, error) {
	fav := &entities.Favorite{
		UserID: userID,
		BoatID: boatID,
	}
	if err := r.db.Create(fav).Error; err != nil {
		return nil, fmt.Errorf("failed to create favorite: %w", err)
	}
	return fav, nil
}

// ByUser returns the user's favorites joined with boat attributes,
// newest first.
func (r *Repository) ByUser(userID uint) ([]FavoriteWithBoat, error) {
	var results []FavoriteWithBoat
	err := r.db.Table("favorites AS f").
		Select("f.favorite_id, f.user_id, f.boat_id, f.created_at, "+
			"b.boat_name, b.description, b.price_per_hour, b.price_per_day, "+
			"b.capacity, b.boat_type, b.location, b.photos").
		Joins("JOIN boats AS b ON f.boat_id = b.boat_id").
		Where("f.user_id = ?", userID).
		Order("f.created_at DESC").
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch favorites: %w", err)
	}
	return results, nil
}

// ByID fetches a single favorite, or gorm.ErrRecordNotFound.
func (r *Repository) ByID(favoriteID uint) (*entities.Favorite, error) {
	var fav entities.Favorite
	err := r.db.First(&fav, favoriteID).Error
	if err != nil {
		return nil, err
	}
	return &fav, nil
}

// Delete removes a favorite by its id and reports how many rows were
// affected. Deleting an id that does not exist is not an error.
func (r *Repository) Delete(favoriteID uint) (int64, error) {
	res := r.db.Delete(&entities.Favorite{}, favoriteID)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete favorite: %w", res.Error)
	}
	return res.RowsAffected, nil
}
