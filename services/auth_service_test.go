package services

import (
	"log/slog"
	"testing"
	"time"

	"messenger/auth"
	"messenger/domain"
	"messenger/errors"
	"messenger/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testTokenDuration = time.Hour

func newAuthServiceFixture(t *testing.T) (IAuthService, *mocks.MockIUserRepository, *mocks.MockIUserIndex) {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := mocks.NewMockIUserRepository(ctrl)
	index := mocks.NewMockIUserIndex(ctrl)
	return NewAuthService(users, index, testTokenDuration, slog.Default()), users, index
}

func TestAuthService_Register(t *testing.T) {
	req := require.New(t)

	t.Run("should reject a weak password before touching storage", func(t *testing.T) {
		service, _, _ := newAuthServiceFixture(t)
		_, err := service.Register("alice42", "alllowercase", "Alice", "Martin")
		req.ErrorIs(err, errors.ErrInvalidRequest)
	})

	t.Run("should propagate a taken username", func(t *testing.T) {
		service, users, _ := newAuthServiceFixture(t)
		users.EXPECT().Create(gomock.Any()).Return(domain.User{}, errors.ErrUserAlreadyExists)

		_, err := service.Register("alice42", "Sup3r-Secret-Pass!", "Alice", "Martin")
		req.ErrorIs(err, errors.ErrUserAlreadyExists)
	})

	t.Run("should hash, index and hand back a token", func(t *testing.T) {
		service, users, index := newAuthServiceFixture(t)
		created := domain.User{ID: uuid.New(), Username: "alice42"}

		users.EXPECT().Create(gomock.Any()).
			DoAndReturn(func(u domain.User) (domain.User, error) {
				req.NotEqual("Sup3r-Secret-Pass!", u.PasswordHash)
				match, err := auth.ComparePassword("Sup3r-Secret-Pass!", u.PasswordHash)
				req.NoError(err)
				req.True(match)
				created.PasswordHash = u.PasswordHash
				return created, nil
			})
		index.EXPECT().Index(gomock.Any()).Return(nil)

		token, err := service.Register("alice42", "Sup3r-Secret-Pass!", "Alice", "Martin")
		req.NoError(err)
		req.NotEmpty(token)

		claims, err := auth.ValidateToken(string(token))
		req.NoError(err)
		req.Equal(created.ID.String(), claims.UserID)
	})
}

func TestAuthService_Login(t *testing.T) {
	req := require.New(t)
	password := "Sup3r-Secret-Pass!"
	hash, err := auth.HashPassword(password)
	req.NoError(err)
	account := domain.User{ID: uuid.New(), Username: "alice42", PasswordHash: hash}

	t.Run("should hide whether the user exists", func(t *testing.T) {
		service, users, _ := newAuthServiceFixture(t)
		users.EXPECT().GetByUsername("ghost").Return(domain.User{}, errors.ErrNotFound)

		_, err := service.Login("ghost", password)
		req.ErrorIs(err, errors.ErrInvalidCredentials)
	})

	t.Run("should refuse a wrong password", func(t *testing.T) {
		service, users, _ := newAuthServiceFixture(t)
		users.EXPECT().GetByUsername("alice42").Return(account, nil)

		_, err := service.Login("alice42", "wrong-password")
		req.ErrorIs(err, errors.ErrInvalidCredentials)
	})

	t.Run("should hand back a token for valid credentials", func(t *testing.T) {
		service, users, _ := newAuthServiceFixture(t)
		users.EXPECT().GetByUsername("alice42").Return(account, nil)

		token, err := service.Login("alice42", password)
		req.NoError(err)
		req.NotEmpty(token)
	})
}
