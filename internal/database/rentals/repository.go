// Package rentals provides database operations for rental records and
// boat availability queries.
package rentals

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/selin-bardakci/waveriders/internal/entities"
)

var (
	ErrBoatRequired      = errors.New("boat id is required")
	ErrStartDateRequired = errors.New("start date is required")
	ErrPriceRequired     = errors.New("rental price is required")
	ErrDateConflict      = errors.New("requested dates overlap an existing rental")
)

// DateRange is a booked interval reported by the availability query.
type DateRange struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// CreateParams carries the fields a customer submits when booking.
// EndDate is optional and defaults to StartDate plus one day.
type CreateParams struct {
	CustomerID uint
	BoatID     uint
	StartDate  time.Time
	EndDate    *time.Time
	Price      float64
	StartTime  *string
	EndTime    *string
}

// Repository handles rental persistence. When enforceConflicts is set,
// Create rejects date ranges that overlap an existing completed or
// ongoing rental for the same boat; otherwise inserts are unchecked and
// overlapping bookings can coexist.
type Repository struct {
	db               *gorm.DB
	enforceConflicts bool
}

func NewRepository(db *gorm.DB, enforceConflicts bool) *Repository {
	return &Repository{db: db, enforceConflicts: enforceConflicts}
}

// blockingStatuses are the rental states that make a date range
// unavailable for new bookings.
var blockingStatuses = []entities.RentalStatus{
	entities.RentalStatusCompleted,
	entities.RentalStatusOngoing,
}

// UnavailableDates returns the booked date ranges for a boat, in no
// particular order. Cancelled rentals do not block availability.
func (r *Repository) UnavailableDates(boatID uint) ([]DateRange, error) {
	if boatID == 0 {
		return nil, ErrBoatRequired
	}

	var ranges []DateRange
	err := r.db.Model(&entities.Rental{}).
		Select("start_date", "end_date").
		Where("boat_id = ? AND status IN ?", boatID, blockingStatuses).
		Find(&ranges).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch unavailable dates: %w", err)
	}
	return ranges, nil
}

// Create inserts a rental record and returns it. Missing required fields
// fail before anything is written. The stored status is always
// "completed", matching what the mobile clients expect at creation time.
func (r *Repository) Create(params CreateParams) (*entities.Rental, error) {
	if params.BoatID == 0 {
		return nil, ErrBoatRequired
	}
	if params.StartDate.IsZero() {
		return nil, ErrStartDateRequired
	}
	if params.Price == 0 {
		return nil, ErrPriceRequired
	}

	endDate := params.StartDate.Add(24 * time.Hour)
	if params.EndDate != nil {
		endDate = *params.EndDate
	}

	rental := &entities.Rental{
		CustomerID:  params.CustomerID,
		BoatID:      params.BoatID,
		StartDate:   params.StartDate,
		EndDate:     endDate,
		RentalPrice: params.Price,
		Status:      entities.RentalStatusCompleted,
		StartTime:   params.StartTime,
		EndTime:     params.EndTime,
	}

	if !r.enforceConflicts {
		if err := r.db.Create(rental).Error; err != nil {
			return nil, fmt.Errorf("failed to create rental: %w", err)
		}
		return rental, nil
	}

	// Hardened path: check and insert inside one transaction so two
	// overlapping bookings cannot both pass the check.
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&entities.Rental{}).
			Where("boat_id = ? AND status IN ?", rental.BoatID, blockingStatuses).
			Where("start_date <= ? AND end_date >= ?", rental.EndDate, rental.StartDate).
			Count(&count).Error
		if err != nil {
			return fmt.Errorf("failed to check availability: %w", err)
		}
		if count > 0 {
			return ErrDateConflict
		}
		return tx.Create(rental).Error
	})
	if err != nil {
		if errors.Is(err, ErrDateConflict) {
			return nil, ErrDateConflict
		}
		return nil, fmt.Errorf("failed to create rental: %w", err)
	}
	return rental, nil
}

// ByID fetches a single rental.
func (r *Repository) ByID(id uint) (*entities.Rental, error) {
	var rental entities.Rental
	err := r.db.First(&rental, id).Error
	if err != nil {
		return nil, err
	}
	return &rental, nil
}

// ByCustomer lists a customer's rentals, newest first.
func (r *Repository) ByCustomer(customerID uint) ([]entities.Rental, error) {
	var rentals []entities.Rental
	err := r.db.Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&rentals).Error
	return rentals, err
}

// ReconcileStatuses realigns rental statuses with the clock: rentals whose
// range includes now become ongoing, rentals fully in the past become
// completed. Cancelled rentals are never touched. Used by the optional
// scheduler sweep; returns the number of updated rows.
func (r *Repository) ReconcileStatuses(now time.Time) (int64, error) {
	var updated int64

	res := r.db.Model(&entities.Rental{}).
		Where("status = ? AND start_date <= ? AND end_date >= ?",
			entities.RentalStatusCompleted, now, now).
		Update("status", entities.RentalStatusOngoing)
	if res.Error != nil {
		return updated, fmt.Errorf("failed to mark ongoing rentals: %w", res.Error)
	}
	updated += res.RowsAffected

	res = r.db.Model(&entities.Rental{}).
		Where("status = ? AND end_date < ?", entities.RentalStatusOngoing, now).
		Update("status", entities.RentalStatusCompleted)
	if res.Error != nil {
		return updated, fmt.Errorf("failed to mark completed rentals: %w", res.Error)
	}
	updated += res.RowsAffected

	return updated, nil
}
