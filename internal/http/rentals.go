package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/selin-bardakci/waveriders/internal/auth"
	"github.com/selin-bardakci/waveriders/internal/database/rentals"
	"github.com/selin-bardakci/waveriders/internal/entities"
)

// RentalStore defines database operations for rental management.
type RentalStore interface {
	UnavailableDates(boatID uint) ([]rentals.DateRange, error)
	Create(params rentals.CreateParams) (*entities.Rental, error)
}

type RentalsController struct {
	store RentalStore
}

func NewRentalsController(store RentalStore) *RentalsController {
	return &RentalsController{store: store}
}

// UnavailableDates returns the date ranges a boat is already booked for.
// GET /api/rentals/unavailable-dates?boat_id=
func (rc *RentalsController) UnavailableDates(c *gin.Context) {
	boatID, ok := parseQueryID(c, "boat_id")
	if !ok {
		return
	}

	dates, err := rc.store.UnavailableDates(boatID)
	if err != nil {
		respondInternalError(c, err, "unavailable dates")
		return
	}

	c.JSON(http.StatusOK, gin.H{"unavailableDates": dates})
}

type createRentalRequest struct {
	BoatID      uint    `json:"boat_id"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	RentalPrice float64 `json:"rental_price"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
}

// CreateRental books a boat for the authenticated customer.
// POST /api/rentals/create
func (rc *RentalsController) CreateRental(c *gin.Context) {
	var req createRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	if req.BoatID == 0 || req.StartDate == "" || req.RentalPrice == 0 {
		respondBadRequest(c, "boat_id, start_date and rental_price are required")
		return
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		respondBadRequest(c, "invalid start_date")
		return
	}

	var endDate *time.Time
	if req.EndDate != "" {
		parsed, err := parseDate(req.EndDate)
		if err != nil {
			respondBadRequest(c, "invalid end_date")
			return
		}
		endDate = &parsed
	}

	rental, err := rc.store.Create(rentals.CreateParams{
		CustomerID: auth.GetUserID(c),
		BoatID:     req.BoatID,
		StartDate:  startDate,
		EndDate:    endDate,
		Price:      req.RentalPrice,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
	})
	switch {
	case errors.Is(err, rentals.ErrDateConflict):
		respondConflict(c, "boat is already booked for the selected dates")
		return
	case errors.Is(err, rentals.ErrBoatRequired),
		errors.Is(err, rentals.ErrStartDateRequired),
		errors.Is(err, rentals.ErrPriceRequired):
		respondBadRequest(c, err.Error())
		return
	case err != nil:
		respondInternalError(c, err, "create rental")
		return
	}

	respondCreated(c, gin.H{"rental_id": rental.ID})
}

// parseDate accepts plain dates and RFC 3339 timestamps.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
