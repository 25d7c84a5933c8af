// Package auth implements registration, login and bearer-token handling.
package auth

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"github.com/ayush/pet-qa-forum/internal/apperr"
	"github.com/ayush/pet-qa-forum/internal/models"
	"github.com/ayush/pet-qa-forum/internal/store"
)

// Service validates credentials and issues tokens.
type Service struct {
	store    store.Store
	secret   []byte
	tokenTTL time.Duration
}

func NewService(st store.Store, secret string, tokenTTL time.Duration) *Service {
	return &Service{store: st, secret: []byte(secret), tokenTTL: tokenTTL}
}

// Register validates the registration input, hashes the password and
// stores the new user. Validation failures carry the offending field tag.
func (s *Service) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	if req.Username == "" || req.Password == "" || req.ConfirmPassword == "" {
		return nil, apperr.Validation("", "All fields are required")
	}
	if len(req.Password) < 8 || !strings.ContainsFunc(req.Password, unicode.IsDigit) {
		return nil, apperr.Validation("password", "Password must be at least 8 characters and contain a number")
	}
	if req.Password != req.ConfirmPassword {
		return nil, apperr.Validation("confirmPassword", "Passwords do not match")
	}
	if !req.AcceptedTerms {
		return nil, apperr.Validation("acceptedTerms", "You must agree to the terms")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Storage("Server error", err)
	}

	u, err := s.store.CreateUser(ctx, req.Username, string(hashed))
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, apperr.Validation("username", "Username already exists / Invalid username")
		}
		return nil, apperr.Storage("Server error", err)
	}
	return u, nil
}

// Login verifies the credentials and returns a fresh bearer token. Unknown
// usernames and wrong passwords produce the same error so callers cannot
// tell which check failed.
func (s *Service) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	u, err := s.store.UserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", nil, apperr.Auth("Invalid username or password")
		}
		return "", nil, apperr.Storage("Server error", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperr.Auth("Invalid username or password")
	}
	token, err := s.IssueToken(u)
	if err != nil {
		return "", nil, apperr.Storage("Server error", err)
	}
	return token, u, nil
}
