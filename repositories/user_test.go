package repositories

import (
	"testing"

	"messenger/domain"
	"messenger/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func openUserRepository(t *testing.T) IUserRepository {
	t.Helper()
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	t.Cleanup(func() { _ = db.Close() })
	return NewUserRepository(db)
}

func Test_User_Create_And_Lookup(t *testing.T) {
	req := require.New(t)
	repository := openUserRepository(t)

	user, err := repository.Create(domain.User{
		Username:  "Alice42",
		FirstName: "Alice",
		Surname:   "Martin",
	})
	req.NoError(err)
	req.NotEqual(uuid.Nil, user.ID)

	fetched, err := repository.GetByID(user.ID)
	req.NoError(err)
	req.Equal("Alice42", fetched.Username)

	// Username lookup is case insensitive.
	fetched, err = repository.GetByUsername("alice42")
	req.NoError(err)
	req.Equal(user.ID, fetched.ID)

	_, err = repository.GetByUsername("nobody")
	req.ErrorIs(err, errors.ErrNotFound)
}

func Test_User_Username_Uniqueness(t *testing.T) {
	req := require.New(t)
	repository := openUserRepository(t)

	_, err := repository.Create(domain.User{Username: "bob", FirstName: "Bob", Surname: "Durand"})
	req.NoError(err)

	_, err = repository.Create(domain.User{Username: "BOB", FirstName: "Robert", Surname: "Durand"})
	req.ErrorIs(err, errors.ErrUserAlreadyExists)
}

func Test_User_Delete_Frees_Username(t *testing.T) {
	req := require.New(t)
	repository := openUserRepository(t)

	user, err := repository.Create(domain.User{Username: "clara", FirstName: "Clara", Surname: "Petit"})
	req.NoError(err)

	req.NoError(repository.Delete(user.ID))

	exists, err := repository.ExistsByID(user.ID)
	req.NoError(err)
	req.False(exists)

	// The name can be claimed again once the account is gone.
	_, err = repository.Create(domain.User{Username: "clara", FirstName: "Clara", Surname: "Grand"})
	req.NoError(err)
}

func Test_User_All(t *testing.T) {
	req := require.New(t)
	repository := openUserRepository(t)

	names := []string{"alice", "bob", "clara"}
	for _, name := range names {
		_, err := repository.Create(domain.User{Username: name, FirstName: name, Surname: "Test"})
		req.NoError(err)
	}

	users, err := repository.All()
	req.NoError(err)
	req.Len(users, len(names))
}
