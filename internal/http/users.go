package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/selin-bardakci/waveriders/internal/auth"
	"github.com/selin-bardakci/waveriders/internal/database/users"
)

type UsersController struct {
	store *users.Repository
}

func NewUsersController(store *users.Repository) *UsersController {
	return &UsersController{store: store}
}

// Profile returns the authenticated user's account details.
// GET /api/users/profile
func (uc *UsersController) Profile(c *gin.Context) {
	user, err := uc.store.ByID(auth.GetUserID(c))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondNotFound(c, "user")
		return
	}
	if err != nil {
		respondInternalError(c, err, "profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":            user.ID,
		"email":         user.Email,
		"first_name":    user.FirstName,
		"last_name":     user.LastName,
		"phone_number":  user.PhoneNumber,
		"date_of_birth": user.DateOfBirth,
		"account_type":  user.AccountType,
	})
}

type updateProfileRequest struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	PhoneNumber *string `json:"phone_number"`
	DateOfBirth *string `json:"date_of_birth"`
}

// UpdateProfile updates the authenticated user's editable profile fields.
// PUT /api/users/profile
func (uc *UsersController) UpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	err := uc.store.UpdateProfile(auth.GetUserID(c), users.ProfileUpdate{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		DateOfBirth: req.DateOfBirth,
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondNotFound(c, "user")
		return
	}
	if err != nil {
		respondInternalError(c, err, "update profile")
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "profile updated"})
}

// Business returns the business owned by the authenticated user.
// GET /api/users/business
func (uc *UsersController) Business(c *gin.Context) {
	business, err := uc.store.BusinessByUserID(auth.GetUserID(c))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondNotFound(c, "business")
		return
	}
	if err != nil {
		respondInternalError(c, err, "business profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{"business": business})
}
