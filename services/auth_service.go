package services

import (
	"errors"
	"strings"
	"time"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"
	"backend/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService handles customer registration, login and profile access.
type AuthService struct {
	custRepo  *repository.CustomerRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.CustomerRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{custRepo: repo, jwtSecret: secret, jwtTTL: ttl}
}

type RegisterIn struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	PhoneNumber string `json:"phoneNumber" binding:"required,min=10,max=20"`
	Address     string `json:"address" binding:"required,min=5"`
}

func (s *AuthService) Register(in *RegisterIn) (*entity.Customer, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	count, err := s.custRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.Conflict("customer", 0, "email %s already registered", email)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	customer := &entity.Customer{
		Name:        strings.TrimSpace(in.Name),
		Email:       email,
		Password:    string(hashed),
		PhoneNumber: strings.TrimSpace(in.PhoneNumber),
		Address:     in.Address,
		IsActive:    true,
	}
	if err := s.custRepo.Create(customer); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("customer", 0, "email %s already registered", email)
		}
		return nil, err
	}
	return customer, nil
}

func (s *AuthService) Login(email, password string) (string, *entity.Customer, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	customer, err := s.custRepo.FindByEmail(email)
	if err != nil {
		return "", nil, apperr.Authorization("customer", 0, "invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(customer.Password), []byte(password)); err != nil {
		return "", nil, apperr.Authorization("customer", 0, "invalid credentials")
	}

	token, err := utils.GenerateToken(customer.ID, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, customer, nil
}

func (s *AuthService) GetProfile(customerID uint) (*entity.Customer, error) {
	customer, err := s.custRepo.FindByID(customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("customer", customerID)
		}
		return nil, err
	}
	return customer, nil
}

// UpdateProfile applies a partial update; email and password go
// through their own flows and are dropped here.
func (s *AuthService) UpdateProfile(customerID uint, updates map[string]any) (*entity.Customer, error) {
	if _, err := s.GetProfile(customerID); err != nil {
		return nil, err
	}
	delete(updates, "email")
	delete(updates, "password")
	if err := s.custRepo.Update(customerID, updates); err != nil {
		return nil, err
	}
	return s.custRepo.FindByID(customerID)
}
