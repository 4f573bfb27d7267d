package entities

import (
	"time"
)

type AccountType string

const (
	AccountTypeCustomer AccountType = "customer"
	AccountTypeBusiness AccountType = "business"
)

type RentalStatus string

const (
	RentalStatusCompleted RentalStatus = "completed"
	RentalStatusOngoing   RentalStatus = "ongoing"
	RentalStatusCancelled RentalStatus = "cancelled"
)

type User struct {
	ID          uint        `gorm:"primaryKey;column:user_id" json:"user_id"`
	FirstName   *string     `gorm:"size:100" json:"first_name,omitempty"`
	LastName    *string     `gorm:"size:100" json:"last_name,omitempty"`
	Email       string      `gorm:"uniqueIndex;size:255" json:"email"`
	Password    string      `gorm:"size:100" json:"-"` // bcrypt hash, never serialized
	PhoneNumber string      `gorm:"size:30" json:"phone_number"`
	DateOfBirth string      `gorm:"size:10" json:"date_of_birth"` // YYYY-MM-DD
	AccountType AccountType `gorm:"size:20;index" json:"account_type"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

type Business struct {
	ID           uint      `gorm:"primaryKey;column:business_id" json:"business_id"`
	UserID       uint      `gorm:"index" json:"user_id"`
	BusinessName *string   `gorm:"size:255" json:"business_name,omitempty"`
	User         User      `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type Captain struct {
	ID                 uint      `gorm:"primaryKey;column:captain_id" json:"captain_id"`
	FirstName          string    `gorm:"size:100" json:"first_name"`
	LastName           string    `gorm:"size:100" json:"last_name"`
	ExperienceYears    int       `json:"experience_years"`
	PhoneNumber        string    `gorm:"size:30" json:"phone_number"`
	DateOfBirth        string    `gorm:"size:10" json:"date_of_birth"`
	BusinessID         *uint     `gorm:"index" json:"business_id,omitempty"`
	RegistrationPapers *string   `gorm:"size:1024" json:"registration_papers,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

type Boat struct {
	ID              uint      `gorm:"primaryKey;column:boat_id" json:"boat_id"`
	BusinessID      uint      `gorm:"index" json:"business_id"`
	BoatName        string    `gorm:"size:255" json:"boat_name"`
	Description     string    `gorm:"type:text" json:"description"`
	TripTypes       string    `gorm:"size:100" json:"trip_types"` // comma-joined canonical names
	PricePerHour    float64   `json:"price_per_hour"`
	PricePerDay     *float64  `json:"price_per_day,omitempty"`
	Capacity        int       `json:"capacity"`
	BoatType        string    `gorm:"size:100" json:"boat_type"`
	Location        string    `gorm:"size:255" json:"location"`
	Available       bool      `gorm:"default:true" json:"available"`
	Photos          string    `gorm:"type:text" json:"photos"` // JSON-encoded URL array
	BoatLicensePath *string   `gorm:"size:1024" json:"boat_license_path,omitempty"`
	Business        Business  `gorm:"foreignKey:BusinessID" json:"-"`
	CreatedAt       time.Time `json:"created_at"`
}

// Rental links a customer to a boat for a date range. Records are
// immutable once created; status transitions happen only through the
// optional scheduler sweep.
type Rental struct {
	ID          uint         `gorm:"primaryKey;column:rental_id" json:"rental_id"`
	CustomerID  uint         `gorm:"index" json:"customer_id"`
	BoatID      uint         `gorm:"index" json:"boat_id"`
	StartDate   time.Time    `json:"start_date"`
	EndDate     time.Time    `json:"end_date"`
	RentalPrice float64      `json:"rental_price"`
	Status      RentalStatus `gorm:"size:20;index" json:"status"`
	StartTime   *string      `gorm:"size:8" json:"start_time,omitempty"` // HH:MM
	EndTime     *string      `gorm:"size:8" json:"end_time,omitempty"`
	Customer    User         `gorm:"foreignKey:CustomerID" json:"-"`
	Boat        Boat         `gorm:"foreignKey:BoatID" json:"-"`
	CreatedAt   time.Time    `json:"created_at"`
}

type Favorite struct {
	ID        uint      `gorm:"primaryKey;column:favorite_id" json:"favorite_id"`
	UserID    uint      `gorm:"index" json:"user_id"`
	BoatID    uint      `gorm:"index" json:"boat_id"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	Boat      Boat      `gorm:"foreignKey:BoatID" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

func (Business) TableName() string {
	return "businesses"
}

func (Captain) TableName() string {
	return "captains"
}

func (Boat) TableName() string {
	return "boats"
}

func (Rental) TableName() string {
	return "rentals"
}

func (Favorite) TableName() string {
	return "favorites"
}
