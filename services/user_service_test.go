package services

import (
	"context"
	"log/slog"
	"testing"

	"messenger/auth"
	"messenger/domain"
	"messenger/errors"
	"messenger/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newUserServiceFixture(t *testing.T) (*UserService, *mocks.MockIUserRepository, *mocks.MockIUserIndex) {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := mocks.NewMockIUserRepository(ctrl)
	index := mocks.NewMockIUserIndex(ctrl)
	return NewUserService(users, index, slog.Default()), users, index
}

func TestUserService_ChangePassword(t *testing.T) {
	req := require.New(t)
	callerID := uuid.New()
	oldPassword := "Former-Passw0rd!"
	hash, err := auth.HashPassword(oldPassword)
	req.NoError(err)
	account := domain.User{ID: callerID, Username: "alice", PasswordHash: hash}

	t.Run("should refuse a wrong old password", func(t *testing.T) {
		service, users, _ := newUserServiceFixture(t)
		users.EXPECT().GetByID(callerID).Return(account, nil)

		err := service.ChangePassword(callerID, "not-the-old-one", "New-Passw0rd!", "New-Passw0rd!")
		req.ErrorIs(err, errors.ErrAccessDenied)
	})

	t.Run("should refuse mismatched new passwords", func(t *testing.T) {
		service, users, _ := newUserServiceFixture(t)
		users.EXPECT().GetByID(callerID).Return(account, nil)

		err := service.ChangePassword(callerID, oldPassword, "New-Passw0rd!", "Other-Passw0rd!")
		req.ErrorIs(err, errors.ErrInvalidRequest)
		req.Contains(err.Error(), "you provided 2 different passwords")
	})

	t.Run("should store a fresh hash", func(t *testing.T) {
		service, users, _ := newUserServiceFixture(t)
		users.EXPECT().GetByID(callerID).Return(account, nil)
		users.EXPECT().Save(gomock.Any()).
			DoAndReturn(func(u domain.User) error {
				req.NotEqual(hash, u.PasswordHash)
				match, err := auth.ComparePassword("New-Passw0rd!", u.PasswordHash)
				req.NoError(err)
				req.True(match)
				return nil
			})

		req.NoError(service.ChangePassword(callerID, oldPassword, "New-Passw0rd!", "New-Passw0rd!"))
	})
}

func TestUserService_FindUsers(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()

	t.Run("should reject a blank phrase", func(t *testing.T) {
		service, _, _ := newUserServiceFixture(t)
		_, err := service.FindUsers(ctx, "   ")
		req.ErrorIs(err, errors.ErrInvalidRequest)
	})

	t.Run("should report when nobody matches", func(t *testing.T) {
		service, _, index := newUserServiceFixture(t)
		index.EXPECT().Search(ctx, "nobody", searchLimit).Return(nil, nil)

		_, err := service.FindUsers(ctx, "nobody")
		req.ErrorIs(err, errors.ErrNoSuchUser)
	})

	t.Run("should skip users deleted since the last index write", func(t *testing.T) {
		service, users, index := newUserServiceFixture(t)
		alive := uuid.New()
		ghost := uuid.New()
		index.EXPECT().Search(ctx, "ali", searchLimit).Return([]uuid.UUID{ghost, alive}, nil)
		users.EXPECT().GetByID(ghost).Return(domain.User{}, errors.ErrNotFound)
		users.EXPECT().GetByID(alive).Return(domain.User{ID: alive, Username: "alice"}, nil)

		results, err := service.FindUsers(ctx, "ali")
		req.NoError(err)
		req.Len(results, 1)
		req.Equal("alice", results[0].Username)
	})
}

func TestUserService_Contacts(t *testing.T) {
	req := require.New(t)
	callerID := uuid.New()
	bob := uuid.New()

	t.Run("should refuse the owner on their own list", func(t *testing.T) {
		service, users, _ := newUserServiceFixture(t)
		users.EXPECT().ExistsByID(callerID).Return(true, nil)

		_, err := service.AddContact(callerID, callerID)
		req.ErrorIs(err, errors.ErrInvalidRequest)
		req.Contains(err.Error(), "owner of the list cannot be on the list")
	})

	t.Run("should add a contact and return the updated list", func(t *testing.T) {
		service, users, _ := newUserServiceFixture(t)
		users.EXPECT().ExistsByID(bob).Return(true, nil)
		users.EXPECT().GetByID(callerID).Return(domain.User{ID: callerID, Username: "alice"}, nil)
		users.EXPECT().Save(gomock.Any()).
			DoAndReturn(func(u domain.User) error {
				req.True(u.HasContact(bob))
				return nil
			})
		// MyContacts re-reads the caller and resolves the list.
		users.EXPECT().GetByID(callerID).
			Return(domain.User{ID: callerID, Username: "alice", Contacts: []uuid.UUID{bob}}, nil)
		users.EXPECT().GetByID(bob).Return(domain.User{ID: bob, Username: "bob"}, nil)

		contacts, err := service.AddContact(callerID, bob)
		req.NoError(err)
		req.Len(contacts, 1)
		req.Equal("bob", contacts[0].Username)
	})

	t.Run("should refuse removing someone who is not on the list", func(t *testing.T) {
		service, users, _ := newUserServiceFixture(t)
		users.EXPECT().ExistsByID(bob).Return(true, nil)
		users.EXPECT().GetByID(callerID).Return(domain.User{ID: callerID}, nil)

		_, err := service.RemoveContact(callerID, bob)
		req.ErrorIs(err, errors.ErrInvalidRequest)
		req.Contains(err.Error(), "there is no such user on contact list")
	})

	t.Run("should report an empty contact list", func(t *testing.T) {
		service, users, _ := newUserServiceFixture(t)
		users.EXPECT().GetByID(callerID).Return(domain.User{ID: callerID}, nil)

		_, err := service.MyContacts(callerID)
		req.ErrorIs(err, errors.ErrEmptyList)
	})
}

func TestUserService_DeleteAccount(t *testing.T) {
	req := require.New(t)
	callerID := uuid.New()
	service, users, index := newUserServiceFixture(t)

	users.EXPECT().Delete(callerID).Return(nil)
	index.EXPECT().Remove(callerID).Return(nil)

	req.NoError(service.DeleteAccount(callerID))
}
