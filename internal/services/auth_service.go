package services

import (
	"context"
	"errors"
	"fmt"

	"community-board/internal/domain/user"
	"community-board/internal/repository"
	board_errors "community-board/pkg/errors"
)

type AuthService struct {
	userRepo  repository.UserRepository
	passwords PasswordScheme
}

func NewAuthService(userRepo repository.UserRepository, passwords PasswordScheme) *AuthService {
	if passwords == nil {
		passwords = PlaintextPasswords{}
	}
	return &AuthService{
		userRepo:  userRepo,
		passwords: passwords,
	}
}

type LoginInput struct {
	Username string
	Password string
}

type RegisterInput struct {
	Name     string
	Email    string
	Username string
	Password string
}

// Login returns the user whose username and password both match exactly.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (user.Public, error) {
	if in.Username == "" || in.Password == "" {
		return user.Public{}, fmt.Errorf("%w: username and password are required", board_errors.ErrInvalidInput)
	}

	// Usernames are not unique at the store level, so every match is checked.
	candidates, err := s.userRepo.FindByUsername(ctx, in.Username)
	if err != nil {
		return user.Public{}, err
	}
	for _, u := range candidates {
		if s.passwords.Matches(u.Password, in.Password) {
			return u.Public(), nil
		}
	}
	return user.Public{}, board_errors.ErrUnauthorized
}

// Register creates a user after checking that neither the email nor the
// username is taken. The check and the insert are separate store calls, so two
// concurrent registrations can both pass the check unless the unique indexes
// from the migrate tool are installed.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (user.Public, error) {
	if in.Name == "" || in.Email == "" || in.Username == "" || in.Password == "" {
		return user.Public{}, fmt.Errorf("%w: all fields are required", board_errors.ErrInvalidInput)
	}

	_, err := s.userRepo.FindByEmailOrUsername(ctx, in.Email, in.Username)
	switch {
	case err == nil:
		return user.Public{}, board_errors.ErrConflict
	case !errors.Is(err, board_errors.ErrNotFound):
		return user.Public{}, err
	}

	stored, err := s.passwords.Hash(in.Password)
	if err != nil {
		return user.Public{}, err
	}

	u := &user.User{
		Name:     in.Name,
		Email:    in.Email,
		Username: in.Username,
		Password: stored,
	}
	if err := s.userRepo.Create(ctx, u); err != nil {
		return user.Public{}, err
	}
	return u.Public(), nil
}

func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, board_errors.ErrInvalidInput):
		return 400
	case errors.Is(err, board_errors.ErrUnauthorized):
		return 401
	case errors.Is(err, board_errors.ErrNotFound):
		return 404
	case errors.Is(err, board_errors.ErrAlreadyExists), errors.Is(err, board_errors.ErrConflict):
		return 409
	case errors.Is(err, board_errors.ErrServiceUnavailable):
		return 503
	default:
		return 500
	}
}
