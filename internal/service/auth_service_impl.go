package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/freshtrackhq/freshtrack/internal/auth"
	"github.com/freshtrackhq/freshtrack/internal/clock"
	"github.com/freshtrackhq/freshtrack/internal/domain"
	"github.com/freshtrackhq/freshtrack/internal/repository"
	"github.com/google/uuid"
)

type authService struct {
	users repository.UserRepo
	clock clock.Clock
}

func NewAuthService(users repository.UserRepo, clk clock.Clock) AuthService {
	return &authService{users: users, clock: clk}
}

func (s *authService) Signup(ctx context.Context, name, email, password string) (*domain.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}
	u := &domain.User{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(name),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: hash,
		CreatedAt:    s.clock.Now().UTC(),
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login verifies credentials. A missing user and a wrong password both
// report ErrInvalidCredentials.
func (s *authService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	u, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !auth.VerifyPassword(password, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}
