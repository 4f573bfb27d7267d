// Package boats provides database operations for boat listings.
package boats

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/selin-bardakci/waveriders/internal/entities"
)

var (
	ErrBusinessRequired = errors.New("business id is required")
	ErrFieldsRequired   = errors.New("boat name, description, trip types, hourly price, capacity, type and location are required")
)

// Repository handles boat listing persistence.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create validates required listing fields and inserts the boat. Photos
// arrive already JSON-encoded; trip types arrive already comma-joined.
func (r *Repository) Create(boat *entities.Boat) error {
	if boat.BusinessID == 0 {
		return ErrBusinessRequired
	}
	if boat.BoatName == "" || boat.Description == "" || boat.TripTypes == "" ||
		boat.PricePerHour == 0 || boat.Capacity == 0 || boat.BoatType == "" || boat.Location == "" {
		return ErrFieldsRequired
	}

	if err := r.db.Create(boat).Error; err != nil {
		return fmt.Errorf("failed to create boat: %w", err)
	}
	return nil
}

// All returns every boat listing.
func (r *Repository) All() ([]entities.Boat, error) {
	var boats []entities.Boat
	err := r.db.Find(&boats).Error
	return boats, err
}

// ByID fetches a single boat, or gorm.ErrRecordNotFound.
func (r *Repository) ByID(id uint) (*entities.Boat, error) {
	var boat entities.Boat
	err := r.db.First(&boat, id).Error
	if err != nil {
		return nil, err
	}
	return &boat, nil
}

// ByBusiness returns all boats owned by a business.
func (r *Repository) ByBusiness(businessID uint) ([]entities.Boat, error) {
	var boats []entities.Boat
	err := r.db.Where("business_id = ?", businessID).Find(&boats).Error
	return boats, err
}

// UpdateLicensePath sets the boat's license document path. This is the
// only mutable listing field; everything else is written once at
// registration. Returns the number of rows affected.
func (r *Repository) UpdateLicensePath(boatID uint, path string) (int64, error) {
	res := r.db.Model(&entities.Boat{}).
		Where("boat_id = ?", boatID).
		Update("boat_license_path", path)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to update boat license path: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// Delete removes a boat by id and reports how many rows were affected.
func (r *Repository) Delete(id uint) (int64, error) {
	res := r.db.Delete(&entities.Boat{}, id)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete boat: %w", res.Error)
	}
	return res.RowsAffected, nil
}
