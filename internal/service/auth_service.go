// internal/service/auth_service.go
package service

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	appErrors "github.com/carpetland/crm-backend/internal/errors"
	"github.com/carpetland/crm-backend/internal/model"
	"github.com/carpetland/crm-backend/internal/repository"
)

var (
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type AuthService struct {
	ProfileRepo repository.ProfileRepositoryInterface
}

func (s *AuthService) SignUp(name, email, password string) (*model.Profile, error) {
	if email == "" {
		return nil, appErrors.NewValidation("email")
	}
	if password == "" {
		return nil, appErrors.NewValidation("password")
	}

	existing, err := s.ProfileRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	profile := &model.Profile{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.ProfileRepo.Create(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *AuthService) SignIn(email, password string) (*model.Profile, error) {
	profile, err := s.ProfileRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return profile, nil
}

// Identity resolves a session's user ID to its display profile.
func (s *AuthService) Identity(id int) (*model.Profile, error) {
	return s.ProfileRepo.GetByID(id)
}
