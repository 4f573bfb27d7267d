package auth

import (
	"errors"
	"fmt"
	"regexp"

	"gorm.io/gorm"

	"github.com/selin-bardakci/waveriders/internal/config"
	"github.com/selin-bardakci/waveriders/internal/database/users"
	"github.com/selin-bardakci/waveriders/internal/entities"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// businessBirthDatePlaceholder fills the date-of-birth column for
// business owner accounts, which register without one.
const businessBirthDatePlaceholder = "0000-00-00"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrEmailInvalid       = errors.New("invalid email format")
	ErrFieldsRequired     = errors.New("all fields are required")
	ErrNameRequired       = errors.New("either first and last names or a business name is required")
)

// Service handles registration and credential verification.
type Service struct {
	repo   *users.Repository
	tokens *TokenManager
	config config.Auth
}

func NewService(repo *users.Repository, tokens *TokenManager, cfg config.Auth) *Service {
	return &Service{repo: repo, tokens: tokens, config: cfg}
}

// CustomerRegistration carries a customer signup. Every field is required.
type CustomerRegistration struct {
	FirstName   string
	LastName    string
	Email       string
	Password    string
	PhoneNumber string
	DateOfBirth string
}

// RegisterCustomer creates a customer account with a full profile.
func (s *Service) RegisterCustomer(reg CustomerRegistration) (*entities.User, error) {
	if reg.FirstName == "" || reg.LastName == "" || reg.Email == "" ||
		reg.Password == "" || reg.PhoneNumber == "" || reg.DateOfBirth == "" {
		return nil, ErrFieldsRequired
	}
	if !emailPattern.MatchString(reg.Email) {
		return nil, ErrEmailInvalid
	}
	if err := s.checkEmailFree(reg.Email); err != nil {
		return nil, err
	}

	hash, err := HashPassword(reg.Password, s.config.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entities.User{
		FirstName:   &reg.FirstName,
		LastName:    &reg.LastName,
		Email:       reg.Email,
		Password:    hash,
		PhoneNumber: reg.PhoneNumber,
		DateOfBirth: reg.DateOfBirth,
		AccountType: entities.AccountTypeCustomer,
	}
	if err := s.repo.CreateUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

// BusinessRegistration carries a business owner signup. The owner
// provides either personal first and last names or a business name;
// email, phone and password are always required.
type BusinessRegistration struct {
	FirstName    string
	LastName     string
	BusinessName string
	Email        string
	Password     string
	PhoneNumber  string
}

// RegisterBusiness creates the owner account and its business record.
func (s *Service) RegisterBusiness(reg BusinessRegistration) (*entities.User, *entities.Business, error) {
	hasPersonalName := reg.FirstName != "" && reg.LastName != ""
	hasBusinessName := reg.BusinessName != ""
	if !hasPersonalName && !hasBusinessName {
		return nil, nil, ErrNameRequired
	}
	if reg.Email == "" || reg.PhoneNumber == "" || reg.Password == "" {
		return nil, nil, ErrFieldsRequired
	}
	if !emailPattern.MatchString(reg.Email) {
		return nil, nil, ErrEmailInvalid
	}
	if err := s.checkEmailFree(reg.Email); err != nil {
		return nil, nil, err
	}

	hash, err := HashPassword(reg.Password, s.config.BcryptCost)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entities.User{
		Email:       reg.Email,
		Password:    hash,
		PhoneNumber: reg.PhoneNumber,
		DateOfBirth: businessBirthDatePlaceholder,
		AccountType: entities.AccountTypeBusiness,
	}
	if hasPersonalName {
		user.FirstName = &reg.FirstName
		user.LastName = &reg.LastName
	}
	if err := s.repo.CreateUser(user); err != nil {
		return nil, nil, err
	}

	business := &entities.Business{UserID: user.ID}
	if hasBusinessName {
		business.BusinessName = &reg.BusinessName
	}
	if err := s.repo.CreateBusiness(business); err != nil {
		return nil, nil, err
	}

	return user, business, nil
}

// Login verifies credentials and issues a signed token. Unknown emails
// and wrong passwords both report ErrInvalidCredentials so the response
// does not reveal which part failed.
func (s *Service) Login(email, password string) (*entities.User, string, error) {
	user, err := s.repo.ByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to find user: %w", err)
	}

	if err := CheckPassword(password, user.Password); err != nil {
		if errors.Is(err, ErrInvalidPassword) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	token, err := s.tokens.Sign(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *Service) checkEmailFree(email string) error {
	_, err := s.repo.ByEmail(email)
	if err == nil {
		return ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check existing user: %w", err)
	}
	return nil
}
