package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/almasbek/forum-api/internal/domain"
	"github.com/almasbek/forum-api/internal/metrics"
	"github.com/almasbek/forum-api/internal/repository"
	"github.com/google/uuid"
)

// Hasher is the one-way password hash the service depends on. Verify must
// treat malformed stored hashes as a mismatch, not a failure.
type Hasher interface {
	Hash(plaintext string) (string, error)
	Verify(hash, plaintext string) bool
}

type AuthService struct {
	users  repository.UserRepository
	hasher Hasher
}

func NewAuthService(users repository.UserRepository, hasher Hasher) *AuthService {
	return &AuthService{users: users, hasher: hasher}
}

// Register creates a user from the given credentials. Validation failures
// and a taken username come back as field errors inside the response; any
// other repository failure is returned as an error with no partial effect.
// Nothing touches the hasher or the repository until validation passes.
func (s *AuthService) Register(ctx context.Context, creds domain.Credentials) (*domain.UserResponse, error) {
	if fieldErrs := domain.ValidateCredentials(creds); len(fieldErrs) > 0 {
		metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		return &domain.UserResponse{Errors: fieldErrs}, nil
	}

	start := time.Now()
	hash, err := s.hasher.Hash(creds.Password)
	metrics.PasswordHashDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, creds.Username, hash)
	if err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
			return &domain.UserResponse{Errors: []domain.FieldError{
				{Field: "username", Message: "username already taken"},
			}}, nil
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	metrics.RegistrationsTotal.WithLabelValues("ok").Inc()
	return &domain.UserResponse{User: user}, nil
}

// Login checks the credentials against the stored hash. The distinct
// "username does not exist" and "incorrect password" messages are a
// deliberate product choice carried over from the original board.
func (s *AuthService) Login(ctx context.Context, creds domain.Credentials) (*domain.UserResponse, error) {
	user, err := s.users.FindByUsername(ctx, creds.Username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("unknown_user").Inc()
			return &domain.UserResponse{Errors: []domain.FieldError{
				{Field: "username", Message: "that username does not exist"},
			}}, nil
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	start := time.Now()
	valid := s.hasher.Verify(user.PasswordHash, creds.Password)
	metrics.PasswordHashDuration.Observe(time.Since(start).Seconds())
	if !valid {
		metrics.LoginsTotal.WithLabelValues("bad_password").Inc()
		return &domain.UserResponse{Errors: []domain.FieldError{
			{Field: "password", Message: "incorrect password"},
		}}, nil
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	return &domain.UserResponse{User: user}, nil
}

// Me resolves the user bound to the current session.
func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}
