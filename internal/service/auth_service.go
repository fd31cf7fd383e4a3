package service

import (
	"errors"
	"strings"

	"go-inventory-genie/internal/model"
	"go-inventory-genie/internal/repository"
	"go-inventory-genie/pkg/jwt"

	"gorm.io/gorm"
)

const minPasswordLength = 6

type AuthService interface {
	Register(username, email, password string) (*AuthResponse, error)
	Login(email, password string) (*AuthResponse, error)
}

type AuthResponse struct {
	Token string             `json:"token"`
	User  model.UserResponse `json:"user"`
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Register(username, email, password string) (*AuthResponse, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	if username == "" || email == "" || password == "" {
		return nil, validationErrorf("username, email and password are required")
	}
	if len(password) < minPasswordLength {
		return nil, validationErrorf("password must be at least %d characters", minPasswordLength)
	}

	user := &model.User{Username: username, Email: email}
	if err := structValidationError(user); err != nil {
		return nil, err
	}

	// Uniqueness checks before insert
	if _, err := s.userRepo.FindByUsername(username); err == nil {
		return nil, ErrDuplicateUsername
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := user.SetPassword(password); err != nil {
		return nil, err
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	// Registration logs the user straight in
	token, err := jwt.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{Token: token, User: user.ToResponse()}, nil
}

func (s *authService) Login(email, password string) (*AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	token, err := jwt.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{Token: token, User: user.ToResponse()}, nil
}
