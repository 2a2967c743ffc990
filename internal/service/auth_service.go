package service

import (
	"strings"

	"github.com/fleetflow/fleetflow-go/internal/apperr"
	"github.com/fleetflow/fleetflow-go/internal/models"
	"github.com/fleetflow/fleetflow-go/internal/repository"
	"github.com/fleetflow/fleetflow-go/internal/validation"
	"github.com/fleetflow/fleetflow-go/pkg/auth"
)

// AuthService issues credentials and registers back-office accounts.
type AuthService struct {
	repo      *repository.UserRepository
	jwtSecret string
}

// NewAuthService creates a new auth service.
func NewAuthService(repo *repository.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{repo: repo, jwtSecret: jwtSecret}
}

// LoginResult is the response of a successful login.
type LoginResult struct {
	Token string             `json:"token"`
	User  models.UserSummary `json:"user"`
}

// Login verifies the credentials and issues a signed token. The same message
// covers an unknown email and a wrong password.
func (s *AuthService) Login(in models.LoginInput) (*LoginResult, error) {
	if in.Email == "" || in.Password == "" {
		return nil, apperr.New(apperr.Validation, "Email and password required")
	}

	user, err := s.repo.GetByEmail(strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	if user == nil || !auth.CheckPassword(in.Password, user.PasswordHash) {
		return nil, apperr.New(apperr.Unauthorized, "Invalid credentials")
	}

	token, err := auth.GenerateToken(s.jwtSecret, user.ID, user.Email, user.Name, user.Role)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token: token,
		User:  models.UserSummary{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role},
	}, nil
}

// Register validates and creates a new account.
func (s *AuthService) Register(in models.RegisterInput) (*models.UserSummary, error) {
	if err := validation.Register(in); err != nil {
		return nil, apperr.New(apperr.Validation, err.Error())
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	exists, err := s.repo.ExistsByEmail(email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.New(apperr.Conflict, "An account with this email already exists")
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		Name:         strings.TrimSpace(in.Name),
		Role:         in.Role,
	}
	if err := s.repo.Insert(user); err != nil {
		return nil, err
	}

	return &models.UserSummary{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role}, nil
}
