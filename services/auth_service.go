//go:generate go run go.uber.org/mock/mockgen -source=auth_service.go -destination=../mocks/mock_auth_service.go -package=mocks
package services

import (
	"fmt"
	"log/slog"
	"time"

	"messenger/auth"
	"messenger/domain"
	"messenger/errors"
	"messenger/repositories"
	"messenger/search"
)

type IAuthService interface {
	Register(username, password, firstName, surname string) (auth.Token, error)
	Login(username, password string) (auth.Token, error)
}

// AuthService is registration and login glue around the user repository.
// It owns nothing of the message engine; it exists so the directory is
// populated with properly hashed credentials.
type AuthService struct {
	users         repositories.IUserRepository
	index         search.IUserIndex
	tokenDuration time.Duration
	log           *slog.Logger
}

func NewAuthService(users repositories.IUserRepository, index search.IUserIndex, tokenDuration time.Duration, log *slog.Logger) IAuthService {
	return &AuthService{users: users, index: index, tokenDuration: tokenDuration, log: log}
}

func (s *AuthService) Register(username, password, firstName, surname string) (auth.Token, error) {
	valReq := auth.RegisterRequest{
		Username:  username,
		Password:  password,
		FirstName: firstName,
		Surname:   surname,
	}
	// Business rules first, before any expensive cryptographic work.
	if err := auth.ValidateRegister(valReq); err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrInvalidRequest, err)
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("hashing failed: %w", err)
	}

	user, err := s.users.Create(domain.User{
		Username:     username,
		PasswordHash: hashedPassword,
		FirstName:    firstName,
		Surname:      surname,
	})
	if err != nil {
		return "", err // Propagates ErrUserAlreadyExists when the name is taken.
	}

	if err := s.index.Index(user); err != nil {
		s.log.Warn("Search index write failed for new user", "userId", user.ID, "err", err)
	}

	token, err := auth.GenerateToken(user.ID.String(), s.tokenDuration)
	if err != nil {
		return "", errors.ErrTokenGeneration
	}
	return auth.Token(token), nil
}

func (s *AuthService) Login(username, password string) (auth.Token, error) {
	user, err := s.users.GetByUsername(username)
	if err != nil {
		// Generic error to prevent user enumeration.
		return "", errors.ErrInvalidCredentials
	}

	match, err := auth.ComparePassword(password, user.PasswordHash)
	if err != nil || !match {
		return "", errors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID.String(), s.tokenDuration)
	if err != nil {
		return "", errors.ErrTokenGeneration
	}
	return auth.Token(token), nil
}
