package service

import (
	"errors"

	"poemhub/internal/auth"
	"poemhub/internal/webapp/models"
	"poemhub/internal/webapp/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already in use")
)

type AuthService interface {
	Login(username, password string) (*models.Admin, error)
	CreateAdmin(username, password string) (*models.Admin, error)
}

type authService struct {
	adminRepo repository.AdminRepository
}

func NewAuthService(adminRepo repository.AdminRepository) AuthService {
	return &authService{adminRepo: adminRepo}
}

// Login authenticates an admin. The error never reveals whether the
// username existed or the password was wrong.
func (s *authService) Login(username, password string) (*models.Admin, error) {
	admin, err := s.adminRepo.FindByUsername(username)
	if err != nil {
		// User not found we use dummy compare to mitigate timing attacks (always take same time)
		auth.VerifyPassword("$2a$10$7EqJtq98hPqEX7fNZaFWoOHi6VbU5h6K9v8u5rO0m3j0h6dX5r8e", password)
		return nil, ErrInvalidCredentials
	}

	if err := auth.VerifyPassword(admin.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return admin, nil
}

// CreateAdmin provisions one admin account, refusing duplicate usernames.
// Reached only out-of-band (cmd/admin-cli or the env bootstrap).
func (s *authService) CreateAdmin(username, password string) (*models.Admin, error) {
	if _, err := s.adminRepo.FindByUsername(username); err == nil {
		return nil, ErrUsernameTaken
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	admin := &models.Admin{
		Username:     username,
		PasswordHash: hashedPassword,
	}
	if err := s.adminRepo.Create(admin); err != nil {
		return nil, err
	}
	return admin, nil
}
