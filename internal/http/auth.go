package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/selin-bardakci/waveriders/internal/auth"
	"github.com/selin-bardakci/waveriders/internal/database/boats"
	"github.com/selin-bardakci/waveriders/internal/database/users"
	"github.com/selin-bardakci/waveriders/internal/entities"
	"github.com/selin-bardakci/waveriders/internal/storage"
)

const maxBoatPhotos = 10

type AuthController struct {
	service *auth.Service
	users   *users.Repository
	boats   *boats.Repository
	storage *storage.Store
}

func NewAuthController(service *auth.Service, userRepo *users.Repository, boatRepo *boats.Repository, store *storage.Store) *AuthController {
	return &AuthController{
		service: service,
		users:   userRepo,
		boats:   boatRepo,
		storage: store,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login verifies credentials and issues a bearer token.
// POST /api/auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "email and password are required")
		return
	}

	user, token, err := ac.service.Login(req.Email, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		respondError(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if err != nil {
		respondInternalError(c, err, "login")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":           user.ID,
			"email":        user.Email,
			"account_type": user.AccountType,
		},
	})
}

type signupRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phone_number"`
	DateOfBirth string `json:"date_of_birth"`
}

// Signup registers a customer account.
// POST /api/auth/signup
func (ac *AuthController) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	user, err := ac.service.RegisterCustomer(auth.CustomerRegistration{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		DateOfBirth: req.DateOfBirth,
	})
	if err != nil {
		ac.respondRegistrationError(c, err, "signup")
		return
	}

	respondCreated(c, gin.H{"user_id": user.ID})
}

type registerBusinessRequest struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	BusinessName string `json:"business_name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	PhoneNumber  string `json:"phone_number"`
}

// RegisterBusiness registers a business owner and its business record.
// POST /api/auth/registerBusiness
func (ac *AuthController) RegisterBusiness(c *gin.Context) {
	var req registerBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	user, business, err := ac.service.RegisterBusiness(auth.BusinessRegistration{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		BusinessName: req.BusinessName,
		Email:        req.Email,
		Password:     req.Password,
		PhoneNumber:  req.PhoneNumber,
	})
	if err != nil {
		ac.respondRegistrationError(c, err, "register business")
		return
	}

	respondCreated(c, gin.H{"user_id": user.ID, "business_id": business.ID})
}

// RegisterCaptain registers a captain, optionally attached to a business
// and optionally with registration papers uploaded alongside the form.
// POST /api/auth/registerCaptain
func (ac *AuthController) RegisterCaptain(c *gin.Context) {
	firstName := c.PostForm("first_name")
	lastName := c.PostForm("last_name")
	experience := c.PostForm("experience_years")
	phone := c.PostForm("phone_number")
	birthDate := c.PostForm("date_of_birth")

	if firstName == "" || lastName == "" || experience == "" || phone == "" || birthDate == "" {
		respondBadRequest(c, "first_name, last_name, experience_years, phone_number and date_of_birth are required")
		return
	}

	years, err := strconv.Atoi(experience)
	if err != nil {
		respondBadRequest(c, "invalid experience_years")
		return
	}

	captain := &entities.Captain{
		FirstName:       firstName,
		LastName:        lastName,
		ExperienceYears: years,
		PhoneNumber:     phone,
		DateOfBirth:     birthDate,
	}

	if businessIDStr := c.PostForm("business_id"); businessIDStr != "" {
		businessID, err := strconv.ParseUint(businessIDStr, 10, 32)
		if err != nil {
			respondBadRequest(c, "invalid business_id")
			return
		}
		id := uint(businessID)
		captain.BusinessID = &id
	}

	if fh, err := c.FormFile("registration_papers"); err == nil {
		ownerID := uint(0)
		if captain.BusinessID != nil {
			ownerID = *captain.BusinessID
		}
		url, err := ac.storage.Save(fh, storage.CategoryCaptainLicenses, ownerID)
		if err != nil {
			respondInternalError(c, err, "save captain papers")
			return
		}
		captain.RegistrationPapers = &url
	}

	if err := ac.users.CreateCaptain(captain); err != nil {
		respondInternalError(c, err, "register captain")
		return
	}

	respondCreated(c, gin.H{"captain_id": captain.ID})
}

// RegisterBoat creates a boat listing with up to ten photos uploaded in
// the same multipart request. Photo URLs are JSON-encoded onto the record.
// POST /api/auth/registerBoat
func (ac *AuthController) RegisterBoat(c *gin.Context) {
	businessIDStr := c.PostForm("business_id")
	businessID, err := strconv.ParseUint(businessIDStr, 10, 32)
	if businessIDStr == "" || err != nil {
		respondBadRequest(c, "business_id is required")
		return
	}

	// Empty numeric fields fall through to the repository's required-field
	// validation; present but malformed values are rejected here by name.
	var pricePerHour float64
	if raw := c.PostForm("price_per_hour"); raw != "" {
		pricePerHour, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			respondBadRequest(c, "invalid price_per_hour")
			return
		}
	}
	var capacity int
	if raw := c.PostForm("capacity"); raw != "" {
		capacity, err = strconv.Atoi(raw)
		if err != nil {
			respondBadRequest(c, "invalid capacity")
			return
		}
	}

	boat := &entities.Boat{
		BusinessID:   uint(businessID),
		BoatName:     c.PostForm("boat_name"),
		Description:  c.PostForm("description"),
		PricePerHour: pricePerHour,
		Capacity:     capacity,
		BoatType:     c.PostForm("boat_type"),
		Location:     c.PostForm("location"),
		Available:    true,
	}

	if raw := c.PostForm("price_per_day"); raw != "" {
		dayPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			respondBadRequest(c, "invalid price_per_day")
			return
		}
		boat.PricePerDay = &dayPrice
	}

	codes := make([]int, 0)
	for _, raw := range c.PostFormArray("trip_types") {
		code, err := strconv.Atoi(raw)
		if err != nil {
			respondBadRequest(c, "invalid trip type "+raw)
			return
		}
		codes = append(codes, code)
	}
	boat.TripTypes = entities.JoinTripTypes(entities.TripTypesFromCodes(codes))

	form, err := c.MultipartForm()
	if err != nil {
		respondBadRequest(c, "invalid multipart form")
		return
	}
	photos := form.File["photos"]
	if len(photos) > maxBoatPhotos {
		respondBadRequest(c, "at most 10 photos are allowed")
		return
	}

	urls := make([]string, 0, len(photos))
	for _, fh := range photos {
		url, err := ac.storage.Save(fh, storage.CategoryBoatPhotos, boat.BusinessID)
		if err != nil {
			respondInternalError(c, err, "save boat photo")
			return
		}
		urls = append(urls, url)
	}
	encoded, err := json.Marshal(urls)
	if err != nil {
		respondInternalError(c, err, "encode photo urls")
		return
	}
	boat.Photos = string(encoded)

	if err := ac.boats.Create(boat); err != nil {
		if errors.Is(err, boats.ErrFieldsRequired) || errors.Is(err, boats.ErrBusinessRequired) {
			respondBadRequest(c, err.Error())
			return
		}
		respondInternalError(c, err, "register boat")
		return
	}

	respondCreated(c, gin.H{"boat_id": boat.ID})
}

// BoatLicense stores a license document for a boat and records its path.
// POST /api/auth/boatLicense
func (ac *AuthController) BoatLicense(c *gin.Context) {
	boatIDStr := c.PostForm("boat_id")
	boatID, err := strconv.ParseUint(boatIDStr, 10, 32)
	if boatIDStr == "" || err != nil {
		respondBadRequest(c, "boat_id is required")
		return
	}

	fh, err := c.FormFile("license")
	if err != nil {
		respondBadRequest(c, "license file is required")
		return
	}

	boat, err := ac.boats.ByID(uint(boatID))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondNotFound(c, "boat")
		return
	}
	if err != nil {
		respondInternalError(c, err, "boat license")
		return
	}

	url, err := ac.storage.Save(fh, storage.CategoryBoatLicenses, boat.BusinessID)
	if err != nil {
		respondInternalError(c, err, "save boat license")
		return
	}

	if _, err := ac.boats.UpdateLicensePath(boat.ID, url); err != nil {
		respondInternalError(c, err, "update boat license")
		return
	}

	c.JSON(http.StatusOK, gin.H{"boat_license_path": url})
}

// CaptainLicense stores registration papers for a captain.
// POST /api/auth/captainLicense
func (ac *AuthController) CaptainLicense(c *gin.Context) {
	captainIDStr := c.PostForm("captain_id")
	captainID, err := strconv.ParseUint(captainIDStr, 10, 32)
	if captainIDStr == "" || err != nil {
		respondBadRequest(c, "captain_id is required")
		return
	}

	fh, err := c.FormFile("license")
	if err != nil {
		respondBadRequest(c, "license file is required")
		return
	}

	url, err := ac.storage.Save(fh, storage.CategoryCaptainLicenses, uint(captainID))
	if err != nil {
		respondInternalError(c, err, "save captain license")
		return
	}

	affected, err := ac.users.UpdateCaptainPapers(uint(captainID), url)
	if err != nil {
		respondInternalError(c, err, "update captain license")
		return
	}
	if affected == 0 {
		respondNotFound(c, "captain")
		return
	}

	c.JSON(http.StatusOK, gin.H{"registration_papers": url})
}

// BoatsByBusiness lists a business's boats.
// GET /api/auth/boat?business_id=
func (ac *AuthController) BoatsByBusiness(c *gin.Context) {
	businessID, ok := parseQueryID(c, "business_id")
	if !ok {
		return
	}

	list, err := ac.boats.ByBusiness(businessID)
	if err != nil {
		respondInternalError(c, err, "boats by business")
		return
	}

	c.JSON(http.StatusOK, gin.H{"boats": list})
}

// BoatByID fetches a single boat.
// GET /api/auth/boat/:id
func (ac *AuthController) BoatByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	boat, err := ac.boats.ByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondNotFound(c, "boat")
		return
	}
	if err != nil {
		respondInternalError(c, err, "boat by id")
		return
	}

	c.JSON(http.StatusOK, gin.H{"boat": boat})
}

// Businesses lists all registered businesses.
// GET /api/auth/business
func (ac *AuthController) Businesses(c *gin.Context) {
	list, err := ac.users.AllBusinesses()
	if err != nil {
		respondInternalError(c, err, "list businesses")
		return
	}

	c.JSON(http.StatusOK, gin.H{"businesses": list})
}

// CaptainsByBusiness lists a business's captains.
// GET /api/auth/captain?business_id=
func (ac *AuthController) CaptainsByBusiness(c *gin.Context) {
	businessID, ok := parseQueryID(c, "business_id")
	if !ok {
		return
	}

	list, err := ac.users.CaptainsByBusiness(businessID)
	if err != nil {
		respondInternalError(c, err, "captains by business")
		return
	}

	c.JSON(http.StatusOK, gin.H{"captains": list})
}

// BusinessID resolves the business belonging to a user account.
// GET /api/auth/businessID?user_id=
func (ac *AuthController) BusinessID(c *gin.Context) {
	userID, ok := parseQueryID(c, "user_id")
	if !ok {
		return
	}

	business, err := ac.users.BusinessByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondNotFound(c, "business")
		return
	}
	if err != nil {
		respondInternalError(c, err, "business id")
		return
	}

	c.JSON(http.StatusOK, gin.H{"business_id": business.ID})
}

func (ac *AuthController) respondRegistrationError(c *gin.Context, err error, context string) {
	switch {
	case errors.Is(err, auth.ErrFieldsRequired),
		errors.Is(err, auth.ErrNameRequired),
		errors.Is(err, auth.ErrEmailInvalid),
		errors.Is(err, auth.ErrEmailTaken):
		respondBadRequest(c, err.Error())
	default:
		respondInternalError(c, err, context)
	}
}
