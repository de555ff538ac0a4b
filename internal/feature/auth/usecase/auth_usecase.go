// Package usecase implements the business logic for the auth feature.
package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"phonebook_backend/internal/feature/auth/domain/entity"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type UserRepository interface {
	// Create persists a new user to the storage.
	// It returns ErrLoginAlreadyExists if the login is already taken.
	Create(ctx context.Context, user *entity.User) error

	// FindByLogin retrieves a user matching the given login.
	// It returns ErrUserNotFound if the user does not exist.
	FindByLogin(ctx context.Context, login string) (*entity.User, error)

	// ExistsByLogin reports whether a user with the given login exists.
	ExistsByLogin(ctx context.Context, login string) (bool, error)
}

// TokenIssuer defines the interface for bearer token generation.
type TokenIssuer interface {
	// GenerateToken creates a signed token for the given user.
	GenerateToken(userID uint, login string) (string, error)
}

// authUsecase implements registration and login.
type authUsecase struct {
	users  UserRepository
	tokens TokenIssuer
}

// NewAuthUsecase creates a new instance of authUsecase.
func NewAuthUsecase(users UserRepository, tokens TokenIssuer) *authUsecase {
	return &authUsecase{users: users, tokens: tokens}
}

// Register creates a new user with a hashed password and returns a bearer
// token for the fresh account. A login that already exists is rejected with
// DuplicateLoginError before anything is written.
func (u *authUsecase) Register(ctx context.Context, login, password string) (string, error) {
	taken, err := u.users.ExistsByLogin(ctx, login)
	if err != nil {
		return "", fmt.Errorf("failed to check login: %w", err)
	}
	if taken {
		return "", &DuplicateLoginError{Login: login}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{Login: login, Password: string(hashed), Role: entity.RoleUser}
	if err := u.users.Create(ctx, user); err != nil {
		// Race loser against a concurrent registration of the same login.
		if errors.Is(err, ErrLoginAlreadyExists) {
			return "", &DuplicateLoginError{Login: login}
		}
		return "", err
	}

	token, err := u.tokens.GenerateToken(user.ID, user.Login)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// Login authenticates the user and returns a bearer token on success.
// A bcrypt comparison runs even when the user does not exist so the response
// time does not reveal which logins are registered.
func (u *authUsecase) Login(ctx context.Context, login, password string) (string, error) {
	user, err := u.users.FindByLogin(ctx, login)

	// Dummy hash keeps bcrypt.CompareHashAndPassword on the not-found path.
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))
	if err != nil || compareErr != nil {
		return "", ErrInvalidCredentials
	}

	token, err := u.tokens.GenerateToken(user.ID, user.Login)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}
