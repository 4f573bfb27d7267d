// Package users provides database operations for user accounts,
// businesses and captains.
package users

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/selin-bardakci/waveriders/internal/entities"
)

// Repository handles account persistence.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateUser(user *entities.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// ByEmail fetches a user by email, or gorm.ErrRecordNotFound.
func (r *Repository) ByEmail(email string) (*entities.User, error) {
	var user entities.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) ByID(id uint) (*entities.User, error) {
	var user entities.User
	err := r.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ProfileUpdate carries the editable profile fields. Nil fields are
// left unchanged.
type ProfileUpdate struct {
	FirstName   *string
	LastName    *string
	PhoneNumber *string
	DateOfBirth *string
}

// UpdateProfile overwrites the submitted fields of a user record.
func (r *Repository) UpdateProfile(userID uint, update ProfileUpdate) error {
	fields := map[string]any{}
	if update.FirstName != nil {
		fields["first_name"] = *update.FirstName
	}
	if update.LastName != nil {
		fields["last_name"] = *update.LastName
	}
	if update.PhoneNumber != nil {
		fields["phone_number"] = *update.PhoneNumber
	}
	if update.DateOfBirth != nil {
		fields["date_of_birth"] = *update.DateOfBirth
	}

	if len(fields) == 0 {
		var count int64
		if err := r.db.Model(&entities.User{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to update user: %w", err)
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	}

	res := r.db.Model(&entities.User{}).Where("user_id = ?", userID).Updates(fields)
	if res.Error != nil {
		return fmt.Errorf("failed to update user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *Repository) CreateBusiness(business *entities.Business) error {
	if err := r.db.Create(business).Error; err != nil {
		return fmt.Errorf("failed to create business: %w", err)
	}
	return nil
}

// BusinessByUserID fetches the business owned by a user.
func (r *Repository) BusinessByUserID(userID uint) (*entities.Business, error) {
	var business entities.Business
	err := r.db.Where("user_id = ?", userID).First(&business).Error
	if err != nil {
		return nil, err
	}
	return &business, nil
}

func (r *Repository) AllBusinesses() ([]entities.Business, error) {
	var businesses []entities.Business
	err := r.db.Find(&businesses).Error
	return businesses, err
}

func (r *Repository) CreateCaptain(captain *entities.Captain) error {
	if err := r.db.Create(captain).Error; err != nil {
		return fmt.Errorf("failed to create captain: %w", err)
	}
	return nil
}

// CaptainsByBusiness returns the captains attached to a business.
func (r *Repository) CaptainsByBusiness(businessID uint) ([]entities.Captain, error) {
	var captains []entities.Captain
	err := r.db.Where("business_id = ?", businessID).Find(&captains).Error
	return captains, err
}

// UpdateCaptainPapers sets the captain's registration papers path.
// Returns the number of rows affected.
func (r *Repository) UpdateCaptainPapers(captainID uint, path string) (int64, error) {
	res := r.db.Model(&entities.Captain{}).
		Where("captain_id = ?", captainID).
		Update("registration_papers", path)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to update captain papers: %w", res.Error)
	}
	return res.RowsAffected, nil
}
