package services

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/russellpeiris/mocked/internal/apperr"
	"github.com/russellpeiris/mocked/internal/domain"
	"github.com/russellpeiris/mocked/internal/repos"
)

type AuthService struct {
	Users *repos.UserRepo
}

func NewAuthService(users *repos.UserRepo) *AuthService { return &AuthService{Users: users} }

type Registration struct {
	Name     string
	Email    string
	Address  string
	City     string
	Region   string
	Password string
	Role     string
}

// Register creates a user after checking email uniqueness. Email comparison
// is case-insensitive at both lookup and index level.
func (s *AuthService) Register(in Registration) (*domain.User, error) {
	if _, err := s.Users.ByEmail(in.Email); err == nil {
		return nil, apperr.Conflict("User with this email already exists.")
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.Internal(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	role := in.Role
	if role == "" {
		role = "user"
	}
	u := &domain.User{
		ID:      uuid.NewString(),
		Email:   in.Email,
		Name:    in.Name,
		Address: in.Address,
		City:    in.City,
		Region:  in.Region,
		Hash:    string(hash),
		Role:    role,
	}
	if err := s.Users.Create(u); err != nil {
		return nil, apperr.Internal(err)
	}
	return u, nil
}

// Login verifies the credential and returns the profile. The hash never
// leaves this layer (domain.User hides it from JSON).
func (s *AuthService) Login(email, password string) (*domain.User, error) {
	u, err := s.Users.ByEmail(email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("user not found")
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return nil, apperr.Auth("incorrect password")
	}
	return u, nil
}
